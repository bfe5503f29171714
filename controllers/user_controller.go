package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/salem2025/sport-store-api/config"
	"github.com/salem2025/sport-store-api/models"
)

// UpdateProfileRequest represents the request body for updating a profile
type UpdateProfileRequest struct {
	FullName string `form:"fullName" json:"fullName" binding:"omitempty"`
	Email    string `form:"email" json:"email" binding:"omitempty,email"`
	Phone    string `form:"phone" json:"phone" binding:"omitempty"`
	Address  string `form:"address" json:"address" binding:"omitempty"`
}

// GetProfile handles GET /api/v1/user/profile - returns the authenticated
// user's account details
func GetProfile(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"profile": models.ToUserSummaryDTO(user),
	})
}

// UpdateProfile handles PUT /api/v1/user/profile - updates contact details.
// Only provided fields are changed.
func UpdateProfile(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid profile data: " + err.Error(),
		})
		return
	}

	updates := map[string]interface{}{}
	if req.FullName != "" {
		updates["full_name"] = req.FullName
	}
	if req.Email != "" {
		updates["email"] = req.Email
	}
	if req.Phone != "" {
		updates["phone"] = req.Phone
	}
	if req.Address != "" {
		updates["address"] = req.Address
	}

	if len(updates) > 0 {
		if err := config.GetDB().Model(user).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"status":  "error",
				"message": "Failed to update profile",
			})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Profile updated",
		"profile": models.ToUserSummaryDTO(user),
	})
}

// GetProfileStatus handles GET /api/v1/user/profile/status - reports
// whether the profile has the contact details required for ordering
func GetProfileStatus(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	hasAddress := user.Address != ""
	hasPhone := user.Phone != ""
	complete := hasAddress && hasPhone && user.Email != ""

	message := "Profile is complete"
	if !complete {
		message = "Please complete your contact details before ordering"
	}

	c.JSON(http.StatusOK, gin.H{
		"status":          "success",
		"profileComplete": complete,
		"hasAddress":      hasAddress,
		"hasPhone":        hasPhone,
		"message":         message,
	})
}
