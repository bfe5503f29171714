package controllers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/salem2025/sport-store-api/models"
)

func setupAuthRouter(t *testing.T) *gin.Engine {
	setupControllerTest(t)

	router := gin.New()
	router.POST("/api/v1/auth/register", Register)
	router.POST("/api/v1/auth/login", Login)
	router.POST("/api/v1/auth/logout", Logout)
	return router
}

func TestRegisterEndpoint(t *testing.T) {
	router := setupAuthRouter(t)

	w := performJSON(router, http.MethodPost, "/api/v1/auth/register", gin.H{
		"username": "alice",
		"password": "s3cret-pass",
		"fullName": "Alice Example",
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "success", body["status"])
	assert.Equal(t, "alice", body["username"])
	assert.Equal(t, models.RoleUser, body["role"])
	assert.NotEmpty(t, body["token"], "registration signs the client in")
}

func TestRegisterEndpointRejectsShortPassword(t *testing.T) {
	router := setupAuthRouter(t)

	w := performJSON(router, http.MethodPost, "/api/v1/auth/register", gin.H{
		"username": "alice",
		"password": "ab",
		"fullName": "Alice Example",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRegisterEndpointDuplicateUsername(t *testing.T) {
	router := setupAuthRouter(t)

	payload := gin.H{"username": "alice", "password": "s3cret-pass", "fullName": "Alice"}
	w := performJSON(router, http.MethodPost, "/api/v1/auth/register", payload)
	assert.Equal(t, http.StatusCreated, w.Code)

	w = performJSON(router, http.MethodPost, "/api/v1/auth/register", payload)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "already taken")
}

func TestLoginEndpoint(t *testing.T) {
	router := setupAuthRouter(t)

	w := performJSON(router, http.MethodPost, "/api/v1/auth/register", gin.H{
		"username": "alice",
		"password": "s3cret-pass",
		"fullName": "Alice Example",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	w = performJSON(router, http.MethodPost, "/api/v1/auth/login", gin.H{
		"username": "alice",
		"password": "s3cret-pass",
	})
	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "success", body["status"])
	assert.NotEmpty(t, body["token"])

	w = performJSON(router, http.MethodPost, "/api/v1/auth/login", gin.H{
		"username": "alice",
		"password": "wrong-pass",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = performJSON(router, http.MethodPost, "/api/v1/auth/login", gin.H{
		"username": "nobody",
		"password": "whatever",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLoginEndpointRequiresCredentials(t *testing.T) {
	router := setupAuthRouter(t)

	w := performJSON(router, http.MethodPost, "/api/v1/auth/login", gin.H{"username": "alice"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLogoutEndpoint(t *testing.T) {
	router := setupAuthRouter(t)

	w := performJSON(router, http.MethodPost, "/api/v1/auth/logout", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Logged out")
}
