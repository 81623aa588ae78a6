package handlers

import (
	"errors"
	"net/http"
	"strings"

	"leads-backend/service"

	"github.com/gin-gonic/gin"
)

// respondError writes the standard error envelope and aborts the chain
func respondError(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	})
}

// respondServiceError maps a service error kind onto an HTTP status.
// Unclassified errors are attached to the context for the request logger
// and reported without detail.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		respondError(c, http.StatusBadRequest, "INVALID_INPUT", detail(err, service.ErrInvalidInput))
	case errors.Is(err, service.ErrNotFound):
		respondError(c, http.StatusNotFound, "NOT_FOUND", detail(err, service.ErrNotFound))
	case errors.Is(err, service.ErrAuthFailure):
		respondUnauthorized(c, detail(err, service.ErrAuthFailure))
	default:
		_ = c.Error(err)
		respondError(c, http.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
	}
}

func respondUnauthorized(c *gin.Context, message string) {
	c.Header("WWW-Authenticate", "Bearer")
	respondError(c, http.StatusUnauthorized, "UNAUTHORIZED", message)
}

// detail strips the kind prefix added by the service layer, so
// "not found: email not found" is reported as "email not found"
func detail(err, kind error) string {
	msg := err.Error()
	if trimmed := strings.TrimPrefix(msg, kind.Error()+": "); trimmed != "" {
		return trimmed
	}
	return msg
}
