package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/salem2025/sport-store-api/config"
	"github.com/salem2025/sport-store-api/middleware"
	"github.com/salem2025/sport-store-api/models"
)

// currentUser loads the authenticated user's account from the database.
// It writes the error response and returns false when the token subject
// cannot be resolved to an account.
func currentUser(c *gin.Context) (*models.User, bool) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "UNAUTHORIZED",
				"message": "Could not extract user information",
			},
		})
		return nil, false
	}

	db := config.GetDB()
	var user models.User
	if err := db.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "USER_NOT_FOUND",
				"message": "User account not found",
			},
		})
		return nil, false
	}

	return &user, true
}
