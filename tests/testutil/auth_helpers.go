package testutil

import (
	"testing"

	"github.com/auth0/go-jwt-middleware/v2/validator"
	"github.com/gin-gonic/gin"

	"github.com/salem2025/sport-store-api/config"
	"github.com/salem2025/sport-store-api/middleware"
	"github.com/salem2025/sport-store-api/models"
	"github.com/salem2025/sport-store-api/services"
)

// MockValidatedClaims creates a mock ValidatedClaims for testing
func MockValidatedClaims(subject, username, role string) *validator.ValidatedClaims {
	return &validator.ValidatedClaims{
		RegisteredClaims: validator.RegisteredClaims{
			Subject: subject,
		},
		CustomClaims: &middleware.CustomClaims{
			Username: username,
			Role:     role,
		},
	}
}

// SetMockAuthContext sets up a mock authenticated context for testing
func SetMockAuthContext(c *gin.Context, userID, username, role string) {
	c.Set("user_id", userID)
	c.Set("validated_claims", MockValidatedClaims(userID, username, role))
}

// IssueToken signs a real JWT for the given account, for tests that run
// requests through the actual validation middleware
func IssueToken(t *testing.T, cfg *config.Config, user *models.User) string {
	t.Helper()

	token, err := services.NewTokenService(cfg).IssueToken(user)
	if err != nil {
		t.Fatalf("Failed to issue test token: %v", err)
	}
	return token
}
