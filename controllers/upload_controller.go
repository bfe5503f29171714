package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/salem2025/sport-store-api/services"
	"github.com/salem2025/sport-store-api/utils"
)

// UploadProductImage handles POST /api/v1/uploads/product-image (ADMIN).
// The returned imageKey can be attached to a product via the catalog
// endpoints; imageUrl is a ready-to-use read URL.
func UploadProductImage(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "MISSING_FILE",
				"message": "An image file is required in the 'image' field",
			},
		})
		return
	}

	imageService := services.GetImageService()
	if imageService == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "STORAGE_UNAVAILABLE",
				"message": "Image storage is not configured",
			},
		})
		return
	}

	key, err := imageService.UploadImage(fileHeader)
	if err != nil {
		var uploadErr *utils.FileUploadError
		if errors.As(err, &uploadErr) {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error": gin.H{
					"code":    uploadErr.Code,
					"message": uploadErr.Message,
				},
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "UPLOAD_FAILED",
				"message": "Failed to store image",
			},
		})
		return
	}

	url, err := imageService.GetImageURL(key)
	if err != nil {
		// The upload itself succeeded; return the key without a URL
		url = ""
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data": gin.H{
			"imageKey": key,
			"imageUrl": url,
		},
	})
}
