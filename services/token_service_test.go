package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"gopkg.in/go-jose/go-jose.v2/jwt"

	"github.com/salem2025/sport-store-api/config"
	"github.com/salem2025/sport-store-api/models"
)

func testTokenConfig() *config.Config {
	return &config.Config{
		JWTSecret:   "test-secret-which-is-long-enough",
		JWTIssuer:   "sport-store-api",
		JWTAudience: "sport-store-client",
	}
}

func TestIssueToken(t *testing.T) {
	svc := NewTokenService(testTokenConfig())
	user := &models.User{ID: 42, Username: "alice", Role: models.RoleAdmin}

	token, err := svc.IssueToken(user)
	assert.NoError(t, err)
	assert.Equal(t, 3, len(strings.Split(token, ".")), "expected a compact JWS")

	parsed, err := jwt.ParseSigned(token)
	assert.NoError(t, err)

	var claims jwt.Claims
	var custom map[string]interface{}
	err = parsed.Claims([]byte("test-secret-which-is-long-enough"), &claims, &custom)
	assert.NoError(t, err)

	assert.Equal(t, "42", claims.Subject)
	assert.Equal(t, "sport-store-api", claims.Issuer)
	assert.Contains(t, claims.Audience, "sport-store-client")
	assert.Equal(t, "alice", custom["username"])
	assert.Equal(t, models.RoleAdmin, custom["role"])
	assert.True(t, claims.Expiry.Time().After(claims.IssuedAt.Time()), "token must expire after issuance")
}

func TestIssueTokenRejectsWrongKeyOnVerify(t *testing.T) {
	svc := NewTokenService(testTokenConfig())
	user := &models.User{ID: 1, Username: "alice", Role: models.RoleUser}

	token, err := svc.IssueToken(user)
	assert.NoError(t, err)

	parsed, err := jwt.ParseSigned(token)
	assert.NoError(t, err)

	var claims jwt.Claims
	err = parsed.Claims([]byte("a-completely-different-secret!!"), &claims)
	assert.Error(t, err, "signature check with the wrong key must fail")
}
