package controllers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/salem2025/sport-store-api/models"
	"github.com/salem2025/sport-store-api/services"
)

func setupProductRouter() *gin.Engine {
	router := gin.New()
	router.GET("/api/v1/products", ListProducts)
	router.GET("/api/v1/products/:id", GetProduct)
	router.POST("/api/v1/products", CreateProduct)
	router.PUT("/api/v1/products/:id", UpdateProduct)
	router.DELETE("/api/v1/products/:id", DeleteProduct)
	return router
}

func TestListProductsEndpoint(t *testing.T) {
	db := setupControllerTest(t)
	newTestProduct(t, db, "Running shoes", 850000, 50)
	newTestProduct(t, db, "Training shirt", 250000, 100)
	newTestProduct(t, db, "Sport shorts", 150000, 150)
	router := setupProductRouter()

	w := performJSON(router, http.MethodGet, "/api/v1/products", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Len(t, body["data"], 3)

	w = performJSON(router, http.MethodGet, "/api/v1/products?search=shirt", nil)
	body = decodeBody(t, w)
	assert.Len(t, body["data"], 1)

	w = performJSON(router, http.MethodGet, "/api/v1/products?sort=price_asc", nil)
	body = decodeBody(t, w)
	items := body["data"].([]interface{})
	first := items[0].(map[string]interface{})
	assert.Equal(t, "Sport shorts", first["name"], "cheapest product first")

	w = performJSON(router, http.MethodGet, "/api/v1/products?limit=2", nil)
	body = decodeBody(t, w)
	assert.Len(t, body["data"], 2)

	w = performJSON(router, http.MethodGet, "/api/v1/products?limit=2&page=2", nil)
	body = decodeBody(t, w)
	assert.Len(t, body["data"], 1)
}

func TestGetProductEndpoint(t *testing.T) {
	db := setupControllerTest(t)
	product := newTestProduct(t, db, "Running shoes", 850000, 50)
	router := setupProductRouter()

	w := performJSON(router, http.MethodGet, fmt.Sprintf("/api/v1/products/%d", product.ID), nil)
	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "Running shoes", data["name"])
	assert.Equal(t, 850000.0, data["price"])

	w = performJSON(router, http.MethodGet, "/api/v1/products/9999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = performJSON(router, http.MethodGet, "/api/v1/products/abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetProductEndpointResolvesImageURL(t *testing.T) {
	db := setupControllerTest(t)
	mock := services.NewMockImageService()
	mock.SetAsMockForTesting()

	key := "products/mock_shoes.png"
	product := newTestProduct(t, db, "Running shoes", 850000, 50)
	db.Model(product).Update("image_key", key)

	router := setupProductRouter()
	w := performJSON(router, http.MethodGet, fmt.Sprintf("/api/v1/products/%d", product.ID), nil)
	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "https://images.test/"+key, data["imageUrl"])
}

func TestCreateProductEndpoint(t *testing.T) {
	setupControllerTest(t)
	router := setupProductRouter()

	w := performJSON(router, http.MethodPost, "/api/v1/products", gin.H{
		"name":     "Running shoes",
		"price":    850000,
		"quantity": 50,
		"category": "footwear",
	})
	assert.Equal(t, http.StatusCreated, w.Code)
	body := decodeBody(t, w)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "Running shoes", data["name"])

	// Negative prices fail binding validation
	w = performJSON(router, http.MethodPost, "/api/v1/products", gin.H{
		"name":  "Broken",
		"price": -1,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = performJSON(router, http.MethodPost, "/api/v1/products", gin.H{"price": 10})
	assert.Equal(t, http.StatusBadRequest, w.Code, "name is required")
}

func TestUpdateProductEndpoint(t *testing.T) {
	db := setupControllerTest(t)
	product := newTestProduct(t, db, "Running shoes", 850000, 50)
	router := setupProductRouter()
	path := fmt.Sprintf("/api/v1/products/%d", product.ID)

	w := performJSON(router, http.MethodPut, path, gin.H{"price": 900000})
	assert.Equal(t, http.StatusOK, w.Code)

	var reloaded models.Product
	assert.NoError(t, db.First(&reloaded, product.ID).Error)
	assert.Equal(t, 900000.0, reloaded.Price)
	assert.Equal(t, "Running shoes", reloaded.Name, "omitted fields are untouched")
	assert.Equal(t, 50, reloaded.Quantity)

	w = performJSON(router, http.MethodPut, "/api/v1/products/9999", gin.H{"price": 1})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteProductEndpoint(t *testing.T) {
	db := setupControllerTest(t)
	user := newTestUser(t, db, "alice", models.RoleUser)
	ordered := newTestProduct(t, db, "Running shoes", 850000, 50)
	unordered := newTestProduct(t, db, "Training shirt", 250000, 100)

	placeOrder(t, setupOrderRouter(user), ordered.ID, 1)
	router := setupProductRouter()

	// Products referenced by order lines must stay
	w := performJSON(router, http.MethodDelete, fmt.Sprintf("/api/v1/products/%d", ordered.ID), nil)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "PRODUCT_IN_USE")

	w = performJSON(router, http.MethodDelete, fmt.Sprintf("/api/v1/products/%d", unordered.ID), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var count int64
	db.Model(&models.Product{}).Count(&count)
	assert.Equal(t, int64(1), count)

	w = performJSON(router, http.MethodDelete, "/api/v1/products/9999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
