package models

import (
	"time"

	"github.com/google/uuid"
)

// File represents an uploaded resume
type File struct {
	ID             uuid.UUID `json:"id"`
	CandidateEmail *string   `json:"candidate_email,omitempty"`
	Filename       string    `json:"filename"`
	MimeType       string    `json:"mime_type"`
	Size           int64     `json:"size"`
	StoragePath    string    `json:"-"`
	CreatedAt      time.Time `json:"created_at"`
}
