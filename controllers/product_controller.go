package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/salem2025/sport-store-api/config"
	"github.com/salem2025/sport-store-api/models"
	"github.com/salem2025/sport-store-api/services"
)

// CreateProductRequest represents the request body for creating a product
type CreateProductRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description" binding:"omitempty"`
	Price       float64 `json:"price" binding:"required,gte=0"`
	Quantity    int     `json:"quantity" binding:"gte=0"`
	Category    string  `json:"category" binding:"omitempty"`
	ImageKey    string  `json:"imageKey" binding:"omitempty"`
}

// UpdateProductRequest represents the request body for editing a product.
// Pointer fields distinguish "not sent" from zero values.
type UpdateProductRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price" binding:"omitempty,gte=0"`
	Quantity    *int     `json:"quantity" binding:"omitempty,gte=0"`
	Category    *string  `json:"category"`
	ImageKey    *string  `json:"imageKey"`
}

// ListProducts handles GET /api/v1/products - public catalog listing with
// search, category filter, sorting and paging
func ListProducts(c *gin.Context) {
	db := config.GetDB().Model(&models.Product{})

	if search := c.Query("search"); search != "" {
		db = db.Where("name LIKE ?", "%"+search+"%")
	}
	if category := c.Query("category"); category != "" {
		db = db.Where("category = ?", category)
	}

	switch c.Query("sort") {
	case "price_asc":
		db = db.Order("price ASC")
	case "price_desc":
		db = db.Order("price DESC")
	case "name":
		db = db.Order("name ASC")
	default:
		db = db.Order("id DESC")
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if limit < 1 || limit > 100 {
		limit = 20
	}
	db = db.Offset((page - 1) * limit).Limit(limit)

	var products []models.Product
	if err := db.Find(&products).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to list products",
			},
		})
		return
	}

	dtos := make([]models.ProductDTO, 0, len(products))
	for i := range products {
		services.ResolveProductImageURL(&products[i])
		dtos = append(dtos, models.ToProductDTO(&products[i]))
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    dtos,
	})
}

// GetProduct handles GET /api/v1/products/:id - public product detail
func GetProduct(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_ID",
				"message": "Product id must be numeric",
			},
		})
		return
	}

	var product models.Product
	if err := config.GetDB().First(&product, uint(id)).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "PRODUCT_NOT_FOUND",
				"message": "Product not found",
			},
		})
		return
	}

	services.ResolveProductImageURL(&product)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    models.ToProductDTO(&product),
	})
}

// CreateProduct handles POST /api/v1/products - adds a catalog item (ADMIN)
func CreateProduct(c *gin.Context) {
	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "Invalid product data",
				"details": err.Error(),
			},
		})
		return
	}

	product := models.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Quantity:    req.Quantity,
		Category:    req.Category,
	}
	if req.ImageKey != "" {
		product.ImageKey = &req.ImageKey
	}

	if err := config.GetDB().Create(&product).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to create product",
			},
		})
		return
	}

	services.ResolveProductImageURL(&product)
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    models.ToProductDTO(&product),
	})
}

// UpdateProduct handles PUT /api/v1/products/:id - edits a catalog item (ADMIN)
func UpdateProduct(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_ID",
				"message": "Product id must be numeric",
			},
		})
		return
	}

	db := config.GetDB()
	var product models.Product
	if err := db.First(&product, uint(id)).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "PRODUCT_NOT_FOUND",
				"message": "Product not found",
			},
		})
		return
	}

	var req UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "Invalid product data",
				"details": err.Error(),
			},
		})
		return
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Price != nil {
		updates["price"] = *req.Price
	}
	if req.Quantity != nil {
		updates["quantity"] = *req.Quantity
	}
	if req.Category != nil {
		updates["category"] = *req.Category
	}
	if req.ImageKey != nil {
		updates["image_key"] = *req.ImageKey
	}

	if len(updates) > 0 {
		if err := db.Model(&product).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "DATABASE_ERROR",
					"message": "Failed to update product",
				},
			})
			return
		}
	}

	services.ResolveProductImageURL(&product)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    models.ToProductDTO(&product),
	})
}

// DeleteProduct handles DELETE /api/v1/products/:id (ADMIN). Products
// referenced by existing order lines are refused so order history keeps
// pointing at a real row.
func DeleteProduct(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_ID",
				"message": "Product id must be numeric",
			},
		})
		return
	}

	db := config.GetDB()
	err = db.Transaction(func(tx *gorm.DB) error {
		var product models.Product
		if err := tx.First(&product, uint(id)).Error; err != nil {
			return services.ErrProductNotFound
		}

		var refs int64
		if err := tx.Model(&models.OrderDetail{}).Where("product_id = ?", product.ID).Count(&refs).Error; err != nil {
			return err
		}
		if refs > 0 {
			return services.ErrProductInUse
		}

		return tx.Delete(&product).Error
	})

	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Product deleted",
		})
	case err == services.ErrProductNotFound:
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "PRODUCT_NOT_FOUND",
				"message": "Product not found",
			},
		})
	case err == services.ErrProductInUse:
		c.JSON(http.StatusConflict, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "PRODUCT_IN_USE",
				"message": "Product is referenced by existing orders",
			},
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to delete product",
			},
		})
	}
}
