package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/salem2025/sport-store-api/config"
	"github.com/salem2025/sport-store-api/middleware"
	"github.com/salem2025/sport-store-api/services"
)

// OrderItemRequest is one (product, quantity) pair in a creation request
type OrderItemRequest struct {
	ProductID uint `json:"productId" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,gt=0"`
}

// CreateOrderRequest represents the request body for placing an order
type CreateOrderRequest struct {
	Notes         string             `json:"notes" binding:"omitempty"`
	PaymentMethod string             `json:"paymentMethod" binding:"omitempty"`
	Items         []OrderItemRequest `json:"items" binding:"required,min=1,dive"`
}

// UpdateOrderStatusRequest represents the request body for a status change
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func orderService() *services.OrderService {
	return services.NewOrderService(config.GetDB(), config.GetLogger())
}

// respondOrderError translates service-layer errors into HTTP responses
func respondOrderError(c *gin.Context, err error) {
	var stockErr *services.InsufficientStockError
	var statusErr *services.InvalidStatusError
	var transitionErr *services.InvalidTransitionError

	switch {
	case errors.Is(err, services.ErrOrderNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "ORDER_NOT_FOUND",
				"message": "Order not found",
			},
		})
	case errors.Is(err, services.ErrProductNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "PRODUCT_NOT_FOUND",
				"message": err.Error(),
			},
		})
	case errors.As(err, &stockErr):
		c.JSON(http.StatusConflict, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INSUFFICIENT_STOCK",
				"message": stockErr.Error(),
				"details": gin.H{
					"productName": stockErr.ProductName,
					"required":    stockErr.Required,
					"available":   stockErr.Available,
				},
			},
		})
	case errors.Is(err, services.ErrNotOrderOwner):
		c.JSON(http.StatusForbidden, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "FORBIDDEN",
				"message": "You may only cancel your own orders",
			},
		})
	case errors.Is(err, services.ErrOrderNotCancellable):
		c.JSON(http.StatusConflict, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_STATE",
				"message": "Only PENDING orders can be cancelled",
			},
		})
	case errors.Is(err, services.ErrOrderHoldsStock):
		c.JSON(http.StatusConflict, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "ORDER_HOLDS_STOCK",
				"message": "Cancel the order before deleting it",
			},
		})
	case errors.As(err, &statusErr):
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_STATUS",
				"message": statusErr.Error(),
			},
		})
	case errors.As(err, &transitionErr):
		c.JSON(http.StatusConflict, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_TRANSITION",
				"message": transitionErr.Error(),
			},
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Order operation failed",
			},
		})
	}
}

// CreateOrder handles POST /api/v1/orders - places an order for the
// authenticated user
func CreateOrder(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "Invalid order data",
				"details": err.Error(),
			},
		})
		return
	}

	input := services.CreateOrderInput{
		Notes:         req.Notes,
		PaymentMethod: req.PaymentMethod,
	}
	for _, item := range req.Items {
		input.Items = append(input.Items, services.OrderItemInput{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	order, err := orderService().CreateOrderForUser(user, input)
	if err != nil {
		respondOrderError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    order,
	})
}

// GetMyOrders handles GET /api/v1/orders - lists the authenticated
// user's orders, optionally filtered by status
func GetMyOrders(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	svc := orderService()
	status := c.Query("status")

	var err error
	var orders interface{}
	if status != "" {
		orders, err = svc.GetOrdersByUserAndStatus(user.ID, status)
	} else {
		orders, err = svc.GetOrdersByUser(user.ID)
	}
	if err != nil {
		respondOrderError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    orders,
	})
}

// GetOrder handles GET /api/v1/orders/:id - fetches a single order.
// Admins may read any order; other users only their own. A missing order
// is reported as denied so ids cannot be probed.
func GetOrder(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_ID",
				"message": "Order id must be numeric",
			},
		})
		return
	}

	role, _ := middleware.GetRole(c)
	svc := orderService()
	if !svc.CanUserAccessOrder(uint(id), user, role) {
		c.JSON(http.StatusForbidden, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "FORBIDDEN",
				"message": "You do not have access to this order",
			},
		})
		return
	}

	order, err := svc.GetOrderByID(uint(id))
	if err != nil {
		respondOrderError(c, err)
		return
	}
	if order == nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "ORDER_NOT_FOUND",
				"message": "Order not found",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    order,
	})
}

// CancelOrder handles PATCH /api/v1/orders/:id/cancel - cancels the
// authenticated user's own PENDING order and restores stock
func CancelOrder(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_ID",
				"message": "Order id must be numeric",
			},
		})
		return
	}

	order, err := orderService().CancelOrderByUser(uint(id), user)
	if err != nil {
		respondOrderError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    order,
	})
}

// ListOrders handles GET /api/v1/admin/orders - lists all orders,
// optionally filtered by status (ADMIN)
func ListOrders(c *gin.Context) {
	svc := orderService()
	status := c.Query("status")

	var err error
	var orders interface{}
	if status != "" {
		orders, err = svc.GetOrdersByStatus(status)
	} else {
		orders, err = svc.GetAllOrders()
	}
	if err != nil {
		respondOrderError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    orders,
	})
}

// GetOrderAdmin handles GET /api/v1/admin/orders/:id (ADMIN)
func GetOrderAdmin(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_ID",
				"message": "Order id must be numeric",
			},
		})
		return
	}

	order, err := orderService().GetOrderByID(uint(id))
	if err != nil {
		respondOrderError(c, err)
		return
	}
	if order == nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "ORDER_NOT_FOUND",
				"message": "Order not found",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    order,
	})
}

// UpdateOrderStatus handles PATCH /api/v1/admin/orders/:id/status (ADMIN)
func UpdateOrderStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_ID",
				"message": "Order id must be numeric",
			},
		})
		return
	}

	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "Status is required",
			},
		})
		return
	}

	order, err := orderService().UpdateOrderStatus(uint(id), req.Status)
	if err != nil {
		respondOrderError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    order,
	})
}

// DeleteOrder handles DELETE /api/v1/admin/orders/:id (ADMIN)
func DeleteOrder(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_ID",
				"message": "Order id must be numeric",
			},
		})
		return
	}

	existed, err := orderService().DeleteOrder(uint(id))
	if err != nil {
		respondOrderError(c, err)
		return
	}
	if !existed {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "ORDER_NOT_FOUND",
				"message": "Order not found",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Order deleted",
	})
}
