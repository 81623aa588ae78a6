package handlers

import (
	"fmt"
	"net/http"

	"leads-backend/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// FileHandler handles resume uploads and downloads
type FileHandler struct {
	resumeService *service.ResumeService
}

// NewFileHandler creates a new file handler
func NewFileHandler(resumeService *service.ResumeService) *FileHandler {
	return &FileHandler{
		resumeService: resumeService,
	}
}

// UploadFile handles POST /uploadfile/
func (h *FileHandler) UploadFile(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		respondError(c, http.StatusBadRequest, "MISSING_FILE", "File is required")
		return
	}

	if fileHeader.Size > h.resumeService.MaxSize() {
		respondError(c, http.StatusBadRequest, "FILE_TOO_LARGE",
			fmt.Sprintf("File size exceeds maximum of %d bytes", h.resumeService.MaxSize()))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		_ = c.Error(err)
		respondError(c, http.StatusInternalServerError, "FILE_OPEN_ERROR", "failed to read uploaded file")
		return
	}
	defer file.Close()

	var candidateEmail *string
	if email := c.PostForm("candidate_email"); email != "" {
		candidateEmail = &email
	}

	record, err := h.resumeService.Upload(c.Request.Context(), service.UploadResumeRequest{
		Filename:       fileHeader.Filename,
		MimeType:       fileHeader.Header.Get("Content-Type"),
		Size:           fileHeader.Size,
		Data:           file,
		CandidateEmail: candidateEmail,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":         record.ID,
		"filename":   record.Filename,
		"mime_type":  record.MimeType,
		"size":       record.Size,
		"created_at": record.CreatedAt,
	})
}

// GetFile handles GET /attorney/resume/:id
func (h *FileHandler) GetFile(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_ID", "Invalid file ID format")
		return
	}

	file, reader, err := h.resumeService.Download(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	defer reader.Close()

	c.DataFromReader(http.StatusOK, file.Size, file.MimeType, reader, map[string]string{
		"Content-Disposition": fmt.Sprintf("attachment; filename=%q", file.Filename),
	})
}
