package handlers

import (
	"context"
	"strings"

	"leads-backend/models"

	"github.com/gin-gonic/gin"
)

const attorneyContextKey = "attorney"

// IdentityResolver maps a bearer credential to an attorney. Implemented by service.AttorneyService.
type IdentityResolver interface {
	ResolveIdentity(ctx context.Context, credential string) (*models.Attorney, error)
}

// RequireAttorney rejects requests without a valid bearer credential.
// On success the resolved attorney is available through CurrentAttorney.
func RequireAttorney(identities IdentityResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		credential, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			respondUnauthorized(c, "not authenticated")
			return
		}

		attorney, err := identities.ResolveIdentity(c.Request.Context(), credential)
		if err != nil {
			respondServiceError(c, err)
			return
		}

		c.Set(attorneyContextKey, attorney)
		c.Next()
	}
}

// CurrentAttorney returns the attorney resolved by RequireAttorney, or nil
func CurrentAttorney(c *gin.Context) *models.Attorney {
	value, ok := c.Get(attorneyContextKey)
	if !ok {
		return nil
	}
	attorney, _ := value.(*models.Attorney)
	return attorney
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
