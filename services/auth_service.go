package services

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/salem2025/sport-store-api/models"
)

// AuthService handles registration and credential checks. Tokens are
// issued by the TokenService after a successful login.
type AuthService struct {
	db  *gorm.DB
	log *logrus.Logger
}

// NewAuthService creates an auth service bound to the given database
func NewAuthService(db *gorm.DB, log *logrus.Logger) *AuthService {
	return &AuthService{db: db, log: log}
}

// Register creates a new USER account with a bcrypt-hashed password
func (s *AuthService) Register(username, password, fullName string) (*models.User, error) {
	var existing models.User
	err := s.db.Where("username = ?", username).First(&existing).Error
	if err == nil {
		return nil, ErrUsernameTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		Username: username,
		Password: string(hashed),
		Role:     models.RoleUser,
		FullName: fullName,
	}
	if err := s.db.Create(&user).Error; err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.log.Infof("Registered new user %q (id=%d)", user.Username, user.ID)
	return &user, nil
}

// Authenticate verifies a username/password pair and returns the matching
// user. Unknown usernames and wrong passwords both map to
// ErrInvalidCredentials so callers cannot probe for accounts.
func (s *AuthService) Authenticate(username, password string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.log.Warnf("Login failed, unknown username %q", username)
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		s.log.Warnf("Login failed, wrong password for %q", username)
		return nil, ErrInvalidCredentials
	}

	return &user, nil
}
