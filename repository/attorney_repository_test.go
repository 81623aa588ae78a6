package repository

import (
	"context"
	"testing"
	"time"

	"leads-backend/models"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var attorneyCols = []string{"username", "full_name", "email", "hashed_password", "id", "created_at"}

func TestAttorneyRepository_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	now := time.Now()
	mock.ExpectQuery(`INSERT INTO attorneys`).
		WithArgs("jdoe", "Jane Doe", "jane@firm.com", "$2a$10$hash", (*int64)(nil)).
		WillReturnRows(pgxmock.NewRows(attorneyCols).
			AddRow("jdoe", "Jane Doe", "jane@firm.com", "$2a$10$hash", (*int64)(nil), now))

	repo := NewAttorneyRepository(mock)
	stored, created, err := repo.Create(context.Background(), &models.Attorney{
		Username:       "jdoe",
		FullName:       "Jane Doe",
		Email:          "jane@firm.com",
		HashedPassword: "$2a$10$hash",
	})

	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, "jdoe", stored.Username)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAttorneyRepository_Create_ExistingWins(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	now := time.Now()
	mock.ExpectQuery(`INSERT INTO attorneys`).
		WithArgs("admin", "Impostor", "x@firm.com", "$2a$10$other", (*int64)(nil)).
		WillReturnError(pgx.ErrNoRows)
	mock.ExpectQuery(`SELECT (.+) FROM attorneys WHERE username`).
		WithArgs("admin").
		WillReturnRows(pgxmock.NewRows(attorneyCols).
			AddRow("admin", "Administrator", "admin@company.com", "$2a$10$orig", (*int64)(nil), now))

	repo := NewAttorneyRepository(mock)
	stored, created, err := repo.Create(context.Background(), &models.Attorney{
		Username:       "admin",
		FullName:       "Impostor",
		Email:          "x@firm.com",
		HashedPassword: "$2a$10$other",
	})

	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, "Administrator", stored.FullName)
	assert.Equal(t, "$2a$10$orig", stored.HashedPassword)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAttorneyRepository_GetByUsername_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(`SELECT (.+) FROM attorneys WHERE username`).
		WithArgs("nobody").
		WillReturnError(pgx.ErrNoRows)

	repo := NewAttorneyRepository(mock)
	_, err = repo.GetByUsername(context.Background(), "nobody")

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestEnsureSchema(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS candidates`).WillReturnResult(pgxmock.NewResult("CREATE", 0))
	mock.ExpectExec(`CREATE INDEX IF NOT EXISTS idx_candidates_full_name`).WillReturnResult(pgxmock.NewResult("CREATE", 0))
	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS attorneys`).WillReturnResult(pgxmock.NewResult("CREATE", 0))
	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS files`).WillReturnResult(pgxmock.NewResult("CREATE", 0))

	require.NoError(t, EnsureSchema(context.Background(), mock))
	assert.NoError(t, mock.ExpectationsWereMet())
}
