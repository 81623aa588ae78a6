package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrNotFound is returned when no row matches the requested key
var ErrNotFound = errors.New("record not found")

// DBTX is the subset of pgx used by the repositories. *pgxpool.Pool satisfies it.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// schema holds the DDL for every table the service owns, in dependency order
var schema = []struct {
	name string
	sql  string
}{
	{
		name: "candidates",
		sql: `
CREATE TABLE IF NOT EXISTS candidates (
    email       VARCHAR(320) PRIMARY KEY,
    full_name   VARCHAR(255) NOT NULL,
    resume_file TEXT,
    status      VARCHAR(32) NOT NULL DEFAULT 'PENDING',
    created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`,
	},
	{
		name: "candidates full_name index",
		sql:  `CREATE INDEX IF NOT EXISTS idx_candidates_full_name ON candidates(full_name)`,
	},
	{
		name: "attorneys",
		sql: `
CREATE TABLE IF NOT EXISTS attorneys (
    username        VARCHAR(150) PRIMARY KEY,
    full_name       VARCHAR(255) NOT NULL,
    email           VARCHAR(320) NOT NULL,
    hashed_password TEXT NOT NULL,
    id              BIGINT,
    created_at      TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`,
	},
	{
		name: "files",
		sql: `
CREATE TABLE IF NOT EXISTS files (
    id              UUID PRIMARY KEY,
    candidate_email VARCHAR(320) REFERENCES candidates(email),
    filename        VARCHAR(255) NOT NULL,
    mime_type       VARCHAR(255) NOT NULL,
    size            BIGINT NOT NULL,
    storage_path    TEXT NOT NULL,
    created_at      TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`,
	},
}

// EnsureSchema creates any missing tables. It is safe to run on every start.
func EnsureSchema(ctx context.Context, db DBTX) error {
	for _, stmt := range schema {
		if _, err := db.Exec(ctx, stmt.sql); err != nil {
			return fmt.Errorf("failed to create %s: %w", stmt.name, err)
		}
	}
	return nil
}

// notFound maps pgx.ErrNoRows onto ErrNotFound and leaves other errors alone
func notFound(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	return err
}
