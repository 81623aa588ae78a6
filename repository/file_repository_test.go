package repository

import (
	"context"
	"testing"
	"time"

	"leads-backend/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileRepository_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	id := uuid.New()
	now := time.Now()
	mock.ExpectQuery(`INSERT INTO files`).
		WithArgs(id, strPtr("ann@example.com"), "cv.pdf", "application/pdf", int64(42), "ab/cv.pdf").
		WillReturnRows(pgxmock.NewRows([]string{"created_at"}).AddRow(now))

	file := &models.File{
		ID:             id,
		CandidateEmail: strPtr("ann@example.com"),
		Filename:       "cv.pdf",
		MimeType:       "application/pdf",
		Size:           42,
		StoragePath:    "ab/cv.pdf",
	}
	require.NoError(t, NewFileRepository(mock).Create(context.Background(), file))

	assert.Equal(t, now, file.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFileRepository_GetByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	id := uuid.New()
	now := time.Now()
	cols := []string{"id", "candidate_email", "filename", "mime_type", "size", "storage_path", "created_at"}
	mock.ExpectQuery(`SELECT (.+) FROM files WHERE id`).
		WithArgs(id).
		WillReturnRows(pgxmock.NewRows(cols).
			AddRow(id, (*string)(nil), "cv.txt", "text/plain", int64(5), "ab/cv.txt", now))
	mock.ExpectQuery(`SELECT (.+) FROM files WHERE id`).
		WithArgs(id).
		WillReturnError(pgx.ErrNoRows)

	repo := NewFileRepository(mock)

	file, err := repo.GetByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "cv.txt", file.Filename)
	assert.Nil(t, file.CandidateEmail)

	_, err = repo.GetByID(context.Background(), id)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
