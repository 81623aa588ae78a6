package service

import (
	"context"
	"time"

	"leads-backend/models"

	"github.com/google/uuid"
)

// CandidateStore persists candidates. Implemented by repository.CandidateRepository.
type CandidateStore interface {
	Create(ctx context.Context, candidate *models.Candidate) (*models.Candidate, bool, error)
	GetByEmail(ctx context.Context, email string) (*models.Candidate, error)
	Update(ctx context.Context, email string, patch models.CandidatePatch) (*models.Candidate, error)
	List(ctx context.Context) ([]*models.Candidate, error)
}

// AttorneyStore persists attorneys. Implemented by repository.AttorneyRepository.
type AttorneyStore interface {
	Create(ctx context.Context, attorney *models.Attorney) (*models.Attorney, bool, error)
	GetByUsername(ctx context.Context, username string) (*models.Attorney, error)
}

// FileStore persists resume metadata. Implemented by repository.FileRepository.
type FileStore interface {
	Create(ctx context.Context, file *models.File) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.File, error)
}

// TokenIssuer issues and verifies attorney credentials. Implemented by auth.TokenService.
type TokenIssuer interface {
	Issue(username string) (string, time.Time, error)
	Validate(token string) (string, error)
}
