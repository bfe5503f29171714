package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/salem2025/sport-store-api/config"
	"github.com/salem2025/sport-store-api/models"
)

// UpdateUserRoleRequest represents the request body for a role change
type UpdateUserRoleRequest struct {
	Role string `form:"role" json:"role" binding:"required,oneof=ADMIN USER"`
}

// ListUsers handles GET /api/v1/admin/users - lists every account (ADMIN)
func ListUsers(c *gin.Context) {
	var users []models.User
	if err := config.GetDB().Order("id ASC").Find(&users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to list users",
		})
		return
	}

	dtos := make([]models.UserSummaryDTO, 0, len(users))
	for i := range users {
		dtos = append(dtos, models.ToUserSummaryDTO(&users[i]))
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"users":  dtos,
		"total":  len(dtos),
	})
}

// UpdateUserRole handles PUT /api/v1/admin/users/:id/role (ADMIN)
func UpdateUserRole(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "User id must be numeric",
		})
		return
	}

	var req UpdateUserRoleRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Role must be ADMIN or USER",
		})
		return
	}

	db := config.GetDB()
	var user models.User
	if err := db.First(&user, uint(id)).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "User not found",
		})
		return
	}

	if err := db.Model(&user).Update("role", req.Role).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to update role",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "success",
		"message":  "Role updated",
		"username": user.Username,
		"role":     req.Role,
	})
}

// DeleteUser handles DELETE /api/v1/admin/users/:id (ADMIN). Accounts are
// soft-deleted so their orders keep a valid reference. Admins cannot
// delete their own account.
func DeleteUser(c *gin.Context) {
	requester, ok := currentUser(c)
	if !ok {
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "User id must be numeric",
		})
		return
	}

	if requester.ID == uint(id) {
		c.JSON(http.StatusConflict, gin.H{
			"status":  "error",
			"message": "You cannot delete your own account",
		})
		return
	}

	db := config.GetDB()
	var user models.User
	if err := db.First(&user, uint(id)).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "User not found",
		})
		return
	}

	if err := db.Delete(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to delete user",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "User deleted",
	})
}

// GetDashboard handles GET /api/v1/admin/dashboard - aggregate store
// statistics (ADMIN)
func GetDashboard(c *gin.Context) {
	db := config.GetDB()

	var totalUsers, totalProducts, totalOrders, pendingOrders int64
	var totalRevenue float64

	if err := db.Model(&models.User{}).Count(&totalUsers).Error; err != nil {
		dashboardError(c)
		return
	}
	if err := db.Model(&models.Product{}).Count(&totalProducts).Error; err != nil {
		dashboardError(c)
		return
	}
	if err := db.Model(&models.Order{}).Count(&totalOrders).Error; err != nil {
		dashboardError(c)
		return
	}
	if err := db.Model(&models.Order{}).Where("status = ?", models.StatusPending).Count(&pendingOrders).Error; err != nil {
		dashboardError(c)
		return
	}

	// Revenue counts every order that was not cancelled
	err := db.Model(&models.OrderDetail{}).
		Joins("JOIN orders ON orders.id = order_details.order_id").
		Where("orders.status <> ?", models.StatusCancelled).
		Select("COALESCE(SUM(order_details.quantity * order_details.unit_price), 0)").
		Scan(&totalRevenue).Error
	if err != nil {
		dashboardError(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"stats": gin.H{
			"totalUsers":    totalUsers,
			"totalProducts": totalProducts,
			"totalOrders":   totalOrders,
			"pendingOrders": pendingOrders,
			"totalRevenue":  totalRevenue,
		},
	})
}

func dashboardError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, gin.H{
		"status":  "error",
		"message": "Failed to compute dashboard statistics",
	})
}
