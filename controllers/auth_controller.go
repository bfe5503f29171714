package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/salem2025/sport-store-api/config"
	"github.com/salem2025/sport-store-api/services"
)

// RegisterRequest represents the request body for creating an account
type RegisterRequest struct {
	Username string `form:"username" json:"username" binding:"required,min=3"`
	Password string `form:"password" json:"password" binding:"required,min=6"`
	FullName string `form:"fullName" json:"fullName" binding:"required"`
}

// LoginRequest represents the credentials for signing in
type LoginRequest struct {
	Username string `form:"username" json:"username" binding:"required"`
	Password string `form:"password" json:"password" binding:"required"`
}

// Register handles POST /api/v1/auth/register - creates a USER account
// and returns a token so the client is signed in immediately
func Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid registration data: " + err.Error(),
		})
		return
	}

	authService := services.NewAuthService(config.GetDB(), config.GetLogger())
	user, err := authService.Register(req.Username, req.Password, req.FullName)
	if err != nil {
		if errors.Is(err, services.ErrUsernameTaken) {
			c.JSON(http.StatusConflict, gin.H{
				"status":  "error",
				"message": "Username is already taken",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to create account",
		})
		return
	}

	token, err := services.NewTokenService(config.GetConfig()).IssueToken(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Account created but token issuance failed, please log in",
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":   "success",
		"message":  "Account created",
		"token":    token,
		"username": user.Username,
		"role":     user.Role,
	})
}

// Login handles POST /api/v1/auth/login - verifies credentials and issues
// a JWT carrying the account's role. Accepts form or JSON bodies.
func Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Username and password are required",
		})
		return
	}

	authService := services.NewAuthService(config.GetDB(), config.GetLogger())
	user, err := authService.Authenticate(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{
				"status":  "error",
				"message": "Invalid username or password",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Login failed",
		})
		return
	}

	token, err := services.NewTokenService(config.GetConfig()).IssueToken(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to issue token",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "success",
		"message":  "Logged in",
		"token":    token,
		"username": user.Username,
		"role":     user.Role,
	})
}

// Logout handles POST /api/v1/auth/logout. Tokens are stateless, so this
// only exists for clients that want an explicit endpoint to call.
func Logout(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Logged out",
	})
}
