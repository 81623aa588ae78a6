package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"leads-backend/metrics"
	"leads-backend/models"
	"leads-backend/storage"
	"leads-backend/validation"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultMaxResumeSize is the upload limit used when none is configured
const DefaultMaxResumeSize int64 = 10 * 1024 * 1024

var allowedMimeTypes = map[string]bool{
	"application/pdf":    true,
	"text/plain":         true,
	"application/msword": true, // .doc
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true, // .docx
}

// ResumeService stores uploaded resumes and links them to candidates
type ResumeService struct {
	files      FileStore
	candidates CandidateStore
	storage    storage.Storage
	maxSize    int64
	logger     *zap.Logger
}

// NewResumeService creates a new resume service. maxSize <= 0 selects DefaultMaxResumeSize.
func NewResumeService(files FileStore, candidates CandidateStore, store storage.Storage, maxSize int64, logger *zap.Logger) *ResumeService {
	if maxSize <= 0 {
		maxSize = DefaultMaxResumeSize
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ResumeService{
		files:      files,
		candidates: candidates,
		storage:    store,
		maxSize:    maxSize,
		logger:     logger,
	}
}

// MaxSize is the largest accepted upload in bytes
func (s *ResumeService) MaxSize() int64 { return s.maxSize }

// UploadResumeRequest represents one uploaded file
type UploadResumeRequest struct {
	Filename       string
	MimeType       string // empty means infer from the extension
	Size           int64
	Data           io.Reader
	CandidateEmail *string // optional; links the file to this candidate
}

// Upload validates and stores a resume under a generated ID. The client
// filename is kept as metadata only.
func (s *ResumeService) Upload(ctx context.Context, req UploadResumeRequest) (*models.File, error) {
	file, err := s.upload(ctx, req)
	outcome := "stored"
	if err != nil {
		outcome = "rejected"
		if !errors.Is(err, ErrInvalidInput) && !errors.Is(err, ErrNotFound) {
			outcome = "failed"
		}
	}
	metrics.ResumeUploadsTotal.WithLabelValues(outcome).Inc()
	return file, err
}

func (s *ResumeService) upload(ctx context.Context, req UploadResumeRequest) (*models.File, error) {
	if req.Size > s.maxSize {
		return nil, invalidInput("file size exceeds maximum of %d bytes", s.maxSize)
	}

	mimeType := req.MimeType
	if mimeType == "" || mimeType == "application/octet-stream" {
		mimeType = storage.ContentType(req.Filename)
	}
	// Strip parameters such as "; charset=utf-8"
	if i := strings.IndexByte(mimeType, ';'); i >= 0 {
		mimeType = strings.TrimSpace(mimeType[:i])
	}
	if !allowedMimeTypes[mimeType] && !strings.HasPrefix(mimeType, "text/") {
		return nil, invalidInput("file type not allowed. Allowed types: PDF, TXT, DOC, DOCX")
	}

	if req.CandidateEmail != nil {
		if !validation.IsEmail(*req.CandidateEmail) {
			return nil, invalidInput("invalid candidate email address")
		}
		if _, err := s.candidates.GetByEmail(ctx, *req.CandidateEmail); err != nil {
			return nil, translateStoreErr(err, "email not found")
		}
	}

	fileID := uuid.New()
	storagePath, err := s.storage.Upload(ctx, fileID, req.Filename, req.Data, req.Size)
	if err != nil {
		return nil, fmt.Errorf("failed to store file: %w", err)
	}

	record := &models.File{
		ID:             fileID,
		CandidateEmail: req.CandidateEmail,
		Filename:       storage.SanitizeFilename(req.Filename),
		MimeType:       mimeType,
		Size:           req.Size,
		StoragePath:    storagePath,
	}
	if err := s.files.Create(ctx, record); err != nil {
		if delErr := s.storage.Delete(ctx, storagePath); delErr != nil {
			s.logger.Warn("failed to clean up stored file", zap.String("path", storagePath), zap.Error(delErr))
		}
		return nil, fmt.Errorf("failed to save file record: %w", err)
	}

	if req.CandidateEmail != nil {
		resumeRef := record.ID.String()
		if _, err := s.candidates.Update(ctx, *req.CandidateEmail, models.CandidatePatch{ResumeFile: &resumeRef}); err != nil {
			// The file itself is stored; the candidate can still link it with a PATCH
			s.logger.Warn("failed to link resume to candidate",
				zap.String("email", *req.CandidateEmail),
				zap.String("file_id", resumeRef),
				zap.Error(err),
			)
		}
	}

	s.logger.Info("resume stored",
		zap.String("file_id", record.ID.String()),
		zap.String("filename", record.Filename),
		zap.Int64("size", record.Size),
	)
	return record, nil
}

// Download returns the metadata and content of a stored resume. The caller closes the reader.
func (s *ResumeService) Download(ctx context.Context, id uuid.UUID) (*models.File, io.ReadCloser, error) {
	file, err := s.files.GetByID(ctx, id)
	if err != nil {
		return nil, nil, translateStoreErr(err, "file not found")
	}

	reader, err := s.storage.Download(ctx, file.StoragePath)
	if err != nil {
		if errors.Is(err, storage.ErrFileNotFound) {
			return nil, nil, fmt.Errorf("%w: file content missing", ErrNotFound)
		}
		return nil, nil, err
	}
	return file, reader, nil
}
