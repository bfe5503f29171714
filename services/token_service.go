package services

import (
	"fmt"
	"strconv"
	"time"

	jose "gopkg.in/go-jose/go-jose.v2"
	"gopkg.in/go-jose/go-jose.v2/jwt"

	"github.com/salem2025/sport-store-api/config"
	"github.com/salem2025/sport-store-api/models"
)

// TokenTTL is how long issued tokens stay valid
const TokenTTL = 24 * time.Hour

// TokenService issues signed HS256 JWTs for authenticated users. The
// middleware package validates them with the same shared secret.
type TokenService struct {
	secret   []byte
	issuer   string
	audience string
}

// NewTokenService builds a token service from the application configuration
func NewTokenService(cfg *config.Config) *TokenService {
	return &TokenService{
		secret:   []byte(cfg.JWTSecret),
		issuer:   cfg.JWTIssuer,
		audience: cfg.JWTAudience,
	}
}

// IssueToken creates a signed token for the given user. The subject is the
// user id; username and role travel as custom claims.
func (s *TokenService) IssueToken(user *models.User) (string, error) {
	signer, err := jose.NewSigner(
		jose.SigningKey{Algorithm: jose.HS256, Key: s.secret},
		(&jose.SignerOptions{}).WithType("JWT"),
	)
	if err != nil {
		return "", fmt.Errorf("failed to create token signer: %w", err)
	}

	now := time.Now()
	claims := jwt.Claims{
		Subject:  strconv.FormatUint(uint64(user.ID), 10),
		Issuer:   s.issuer,
		Audience: jwt.Audience{s.audience},
		IssuedAt: jwt.NewNumericDate(now),
		Expiry:   jwt.NewNumericDate(now.Add(TokenTTL)),
	}
	custom := map[string]interface{}{
		"username": user.Username,
		"role":     user.Role,
	}

	token, err := jwt.Signed(signer).Claims(claims).Claims(custom).CompactSerialize()
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return token, nil
}
