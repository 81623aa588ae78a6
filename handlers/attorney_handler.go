package handlers

import (
	"net/http"

	"leads-backend/service"

	"github.com/gin-gonic/gin"
)

// AttorneyHandler handles attorney accounts and login
type AttorneyHandler struct {
	attorneyService *service.AttorneyService
}

// NewAttorneyHandler creates a new attorney handler
func NewAttorneyHandler(attorneyService *service.AttorneyService) *AttorneyHandler {
	return &AttorneyHandler{
		attorneyService: attorneyService,
	}
}

// CreateAttorneyRequest represents the request body for creating an attorney
type CreateAttorneyRequest struct {
	Username string `json:"username"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	ID       *int64 `json:"id"`
}

// LoginRequest carries attorney credentials as a form or JSON body
type LoginRequest struct {
	Username string `form:"username" json:"username"`
	Password string `form:"password" json:"password"`
}

// CreateAttorney handles POST /attorney/create
func (h *AttorneyHandler) CreateAttorney(c *gin.Context) {
	var req CreateAttorneyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	attorney, err := h.attorneyService.Register(c.Request.Context(), CurrentAttorney(c), service.RegisterAttorneyRequest{
		Username: req.Username,
		FullName: req.FullName,
		Email:    req.Email,
		Password: req.Password,
		ID:       req.ID,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, attorney)
}

// Login handles POST /token
func (h *AttorneyHandler) Login(c *gin.Context) {
	var req LoginRequest
	// ShouldBind picks form or JSON binding from the Content-Type
	if err := c.ShouldBind(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}
	if req.Username == "" || req.Password == "" {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", "username and password are required")
		return
	}

	token, err := h.attorneyService.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, token)
}
