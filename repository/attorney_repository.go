package repository

import (
	"context"
	"errors"
	"fmt"

	"leads-backend/models"

	"github.com/jackc/pgx/v5"
)

const attorneyColumns = `username, full_name, email, hashed_password, id, created_at`

// AttorneyRepository handles database operations for attorneys
type AttorneyRepository struct {
	db DBTX
}

// NewAttorneyRepository creates a new attorney repository
func NewAttorneyRepository(db DBTX) *AttorneyRepository {
	return &AttorneyRepository{db: db}
}

func scanAttorney(row pgx.Row) (*models.Attorney, error) {
	attorney := &models.Attorney{}
	err := row.Scan(
		&attorney.Username,
		&attorney.FullName,
		&attorney.Email,
		&attorney.HashedPassword,
		&attorney.ID,
		&attorney.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return attorney, nil
}

// Create inserts an attorney unless the username is taken, in which case the
// stored record wins and created is false.
func (r *AttorneyRepository) Create(ctx context.Context, attorney *models.Attorney) (*models.Attorney, bool, error) {
	query := `
		INSERT INTO attorneys (username, full_name, email, hashed_password, id)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (username) DO NOTHING
		RETURNING ` + attorneyColumns

	stored, err := scanAttorney(r.db.QueryRow(ctx, query,
		attorney.Username,
		attorney.FullName,
		attorney.Email,
		attorney.HashedPassword,
		attorney.ID,
	))
	if err == nil {
		return stored, true, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, false, fmt.Errorf("failed to insert attorney: %w", err)
	}

	existing, err := r.GetByUsername(ctx, attorney.Username)
	if err != nil {
		return nil, false, err
	}
	return existing, false, nil
}

// GetByUsername retrieves an attorney by username
func (r *AttorneyRepository) GetByUsername(ctx context.Context, username string) (*models.Attorney, error) {
	query := `SELECT ` + attorneyColumns + ` FROM attorneys WHERE username = $1`

	attorney, err := scanAttorney(r.db.QueryRow(ctx, query, username))
	if err != nil {
		return nil, notFound(err)
	}
	return attorney, nil
}
