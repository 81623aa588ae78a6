package models

import (
	"time"
)

// CandidateStatus represents where a candidate is in the review workflow
type CandidateStatus string

const (
	StatusPending    CandidateStatus = "PENDING"
	StatusReachedOut CandidateStatus = "REACHED_OUT"
	StatusRejected   CandidateStatus = "REJECTED"
	StatusHired      CandidateStatus = "HIRED"
)

// CandidateStatuses lists every status an attorney may assign
var CandidateStatuses = []CandidateStatus{
	StatusPending,
	StatusReachedOut,
	StatusRejected,
	StatusHired,
}

// Valid reports whether s is one of the known statuses
func (s CandidateStatus) Valid() bool {
	for _, known := range CandidateStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// Candidate represents an applicant tracked through attorney review
type Candidate struct {
	Email      string          `json:"email"`
	FullName   string          `json:"full_name"`
	ResumeFile *string         `json:"resume_file"`
	Status     CandidateStatus `json:"status"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// CandidatePatch is a sparse set of field changes. Nil fields are left untouched.
type CandidatePatch struct {
	FullName   *string
	ResumeFile *string
	Status     *CandidateStatus
}

// Empty reports whether the patch changes nothing
func (p CandidatePatch) Empty() bool {
	return p.FullName == nil && p.ResumeFile == nil && p.Status == nil
}
