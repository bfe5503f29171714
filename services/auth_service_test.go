package services

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/salem2025/sport-store-api/models"
)

func setupAuthServiceTest(t *testing.T) *AuthService {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	logger := logrus.New()
	logger.SetLevel(logrus.ErrorLevel)

	return NewAuthService(db, logger)
}

func TestRegisterHashesPassword(t *testing.T) {
	svc := setupAuthServiceTest(t)

	user, err := svc.Register("alice", "s3cret-pass", "Alice Example")
	assert.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, models.RoleUser, user.Role, "new accounts always start as USER")
	assert.NotEqual(t, "s3cret-pass", user.Password, "password must never be stored in clear")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("s3cret-pass")))
}

func TestRegisterRejectsDuplicateUsername(t *testing.T) {
	svc := setupAuthServiceTest(t)

	_, err := svc.Register("alice", "s3cret-pass", "Alice Example")
	assert.NoError(t, err)

	_, err = svc.Register("alice", "other-pass", "Another Alice")
	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestAuthenticate(t *testing.T) {
	svc := setupAuthServiceTest(t)

	_, err := svc.Register("alice", "s3cret-pass", "Alice Example")
	assert.NoError(t, err)

	user, err := svc.Authenticate("alice", "s3cret-pass")
	assert.NoError(t, err)
	assert.Equal(t, "alice", user.Username)

	_, err = svc.Authenticate("alice", "wrong-pass")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	// Unknown usernames map to the same error so accounts cannot be probed
	_, err = svc.Authenticate("nobody", "whatever")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
