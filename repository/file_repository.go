package repository

import (
	"context"

	"leads-backend/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const fileColumns = `id, candidate_email, filename, mime_type, size, storage_path, created_at`

// FileRepository stores metadata for uploaded resumes. Content lives in storage.
type FileRepository struct {
	db DBTX
}

// NewFileRepository creates a new file repository
func NewFileRepository(db DBTX) *FileRepository {
	return &FileRepository{db: db}
}

func scanFile(row pgx.Row) (*models.File, error) {
	file := &models.File{}
	if err := row.Scan(
		&file.ID,
		&file.CandidateEmail,
		&file.Filename,
		&file.MimeType,
		&file.Size,
		&file.StoragePath,
		&file.CreatedAt,
	); err != nil {
		return nil, err
	}
	return file, nil
}

// Create records an uploaded resume and fills in CreatedAt
func (r *FileRepository) Create(ctx context.Context, file *models.File) error {
	return r.db.QueryRow(ctx, `
		INSERT INTO files (id, candidate_email, filename, mime_type, size, storage_path)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at`,
		file.ID, file.CandidateEmail, file.Filename, file.MimeType, file.Size, file.StoragePath,
	).Scan(&file.CreatedAt)
}

// GetByID returns ErrNotFound when no resume has the given ID
func (r *FileRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.File, error) {
	file, err := scanFile(r.db.QueryRow(ctx, `SELECT `+fileColumns+` FROM files WHERE id = $1`, id))
	if err != nil {
		return nil, notFound(err)
	}
	return file, nil
}
