package repository

import (
	"context"
	"errors"
	"fmt"

	"leads-backend/models"

	"github.com/jackc/pgx/v5"
)

const candidateColumns = `email, full_name, resume_file, status, created_at, updated_at`

// CandidateRepository handles database operations for candidates
type CandidateRepository struct {
	db DBTX
}

// NewCandidateRepository creates a new candidate repository
func NewCandidateRepository(db DBTX) *CandidateRepository {
	return &CandidateRepository{db: db}
}

func scanCandidate(row pgx.Row) (*models.Candidate, error) {
	candidate := &models.Candidate{}
	err := row.Scan(
		&candidate.Email,
		&candidate.FullName,
		&candidate.ResumeFile,
		&candidate.Status,
		&candidate.CreatedAt,
		&candidate.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return candidate, nil
}

// Create inserts a candidate unless one with the same email exists, in which
// case the stored record is returned unchanged and created is false.
func (r *CandidateRepository) Create(ctx context.Context, candidate *models.Candidate) (*models.Candidate, bool, error) {
	query := `
		INSERT INTO candidates (email, full_name, resume_file)
		VALUES ($1, $2, $3)
		ON CONFLICT (email) DO NOTHING
		RETURNING ` + candidateColumns

	stored, err := scanCandidate(r.db.QueryRow(ctx, query,
		candidate.Email,
		candidate.FullName,
		candidate.ResumeFile,
	))
	if err == nil {
		return stored, true, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, false, fmt.Errorf("failed to insert candidate: %w", err)
	}

	existing, err := r.GetByEmail(ctx, candidate.Email)
	if err != nil {
		return nil, false, err
	}
	return existing, false, nil
}

// GetByEmail retrieves a candidate by email
func (r *CandidateRepository) GetByEmail(ctx context.Context, email string) (*models.Candidate, error) {
	query := `SELECT ` + candidateColumns + ` FROM candidates WHERE email = $1`

	candidate, err := scanCandidate(r.db.QueryRow(ctx, query, email))
	if err != nil {
		return nil, notFound(err)
	}
	return candidate, nil
}

// Update applies the non-nil fields of patch to the stored candidate
func (r *CandidateRepository) Update(ctx context.Context, email string, patch models.CandidatePatch) (*models.Candidate, error) {
	if patch.Empty() {
		return r.GetByEmail(ctx, email)
	}

	var status *string
	if patch.Status != nil {
		s := string(*patch.Status)
		status = &s
	}

	query := `
		UPDATE candidates SET
			full_name = COALESCE($2, full_name),
			resume_file = COALESCE($3, resume_file),
			status = COALESCE($4, status),
			updated_at = NOW()
		WHERE email = $1
		RETURNING ` + candidateColumns

	candidate, err := scanCandidate(r.db.QueryRow(ctx, query, email, patch.FullName, patch.ResumeFile, status))
	if err != nil {
		return nil, notFound(err)
	}
	return candidate, nil
}

// List retrieves every candidate. Order is whatever the table scan yields.
func (r *CandidateRepository) List(ctx context.Context) ([]*models.Candidate, error) {
	query := `SELECT ` + candidateColumns + ` FROM candidates`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	candidates := make([]*models.Candidate, 0)
	for rows.Next() {
		candidate, err := scanCandidate(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan candidate: %w", err)
		}
		candidates = append(candidates, candidate)
	}

	return candidates, rows.Err()
}
