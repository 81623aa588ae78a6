package handlers

import (
	"net/http"

	"leads-backend/service"

	"github.com/gin-gonic/gin"
)

// CandidateHandler handles HTTP requests for candidate records
type CandidateHandler struct {
	candidateService *service.CandidateService
}

// NewCandidateHandler creates a new candidate handler
func NewCandidateHandler(candidateService *service.CandidateService) *CandidateHandler {
	return &CandidateHandler{
		candidateService: candidateService,
	}
}

// SubmitCandidateRequest represents the request body for a candidate submission
type SubmitCandidateRequest struct {
	Email      string  `json:"email"`
	FullName   string  `json:"full_name"`
	ResumeFile *string `json:"resume_file"`
}

// CandidateUpdateRequest represents a candidate's own partial update
type CandidateUpdateRequest struct {
	FullName   *string `json:"full_name"`
	ResumeFile *string `json:"resume_file"`
}

// AttorneyCandidateUpdateRequest represents an attorney's partial update
type AttorneyCandidateUpdateRequest struct {
	FullName   *string `json:"full_name"`
	ResumeFile *string `json:"resume_file"`
	Status     *string `json:"status"`
}

// SubmitCandidate handles POST /candidate/
func (h *CandidateHandler) SubmitCandidate(c *gin.Context) {
	var req SubmitCandidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	result, err := h.candidateService.Submit(c.Request.Context(), service.SubmitCandidateRequest{
		Email:      req.Email,
		FullName:   req.FullName,
		ResumeFile: req.ResumeFile,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	status := http.StatusOK
	if result.Created {
		status = http.StatusCreated
	}
	c.JSON(status, result.Candidate)
}

// GetCandidate handles GET /candidate/:email
func (h *CandidateHandler) GetCandidate(c *gin.Context) {
	candidate, err := h.candidateService.Get(c.Request.Context(), c.Param("email"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, candidate)
}

// UpdateCandidate handles PATCH /candidate/:email. A status in the body is ignored.
func (h *CandidateHandler) UpdateCandidate(c *gin.Context) {
	var req CandidateUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	candidate, err := h.candidateService.SelfUpdate(c.Request.Context(), c.Param("email"), service.CandidateSelfUpdate{
		FullName:   req.FullName,
		ResumeFile: req.ResumeFile,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, candidate)
}

// ListLeads handles GET /attorney/leads
func (h *CandidateHandler) ListLeads(c *gin.Context) {
	leads, err := h.candidateService.ListLeads(c.Request.Context(), CurrentAttorney(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, leads)
}

// AttorneyUpdateCandidate handles PATCH /attorney/candidate/:email
func (h *CandidateHandler) AttorneyUpdateCandidate(c *gin.Context) {
	var req AttorneyCandidateUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	candidate, err := h.candidateService.AttorneyUpdate(c.Request.Context(), CurrentAttorney(c), c.Param("email"), service.CandidateAttorneyUpdate{
		FullName:   req.FullName,
		ResumeFile: req.ResumeFile,
		Status:     req.Status,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, candidate)
}
