package controllers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/auth0/go-jwt-middleware/v2/validator"
	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/salem2025/sport-store-api/config"
	"github.com/salem2025/sport-store-api/middleware"
	"github.com/salem2025/sport-store-api/models"
	"github.com/salem2025/sport-store-api/services"
)

// setupControllerTest wires an in-memory database and test configuration
// into the package singletons the controllers read from
func setupControllerTest(t *testing.T) *gorm.DB {
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}
	err = db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.Customer{},
		&models.Order{},
		&models.OrderDetail{},
	)
	if err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	config.SetDB(db)
	config.SetConfig(&config.Config{
		DatabaseURL: ":memory:",
		GoEnv:       "test",
		JWTSecret:   "controller-test-secret-0123456789",
		JWTIssuer:   "sport-store-api",
		JWTAudience: "sport-store-client",
		UploadDir:   t.TempDir(),
		LogLevel:    "error",
	})
	services.SetImageService(nil)

	return db
}

// authAs fakes the JWT middleware for a given account, placing the same
// context values EnsureValidToken would
func authAs(user *models.User) gin.HandlerFunc {
	subject := strconv.FormatUint(uint64(user.ID), 10)
	return func(c *gin.Context) {
		c.Set("user_id", subject)
		c.Set("validated_claims", &validator.ValidatedClaims{
			RegisteredClaims: validator.RegisteredClaims{Subject: subject},
			CustomClaims: &middleware.CustomClaims{
				Username: user.Username,
				Role:     user.Role,
			},
		})
		c.Next()
	}
}

func newTestUser(t *testing.T, db *gorm.DB, username, role string) *models.User {
	user := &models.User{
		Username: username,
		Password: "not-a-real-hash",
		Role:     role,
		FullName: "Test " + username,
		Email:    username + "@example.com",
		Phone:    "0123456789",
		Address:  "1 Test Street",
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}
	return user
}

func newTestProduct(t *testing.T, db *gorm.DB, name string, price float64, quantity int) *models.Product {
	product := &models.Product{
		Name:     name,
		Price:    price,
		Quantity: quantity,
		Category: "apparel",
	}
	if err := db.Create(product).Error; err != nil {
		t.Fatalf("Failed to create test product: %v", err)
	}
	return product
}

// performJSON sends a request with an optional JSON body through the router
func performJSON(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			panic(err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// decodeBody unmarshals a recorded JSON response into a generic map
func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("Failed to decode response body %q: %v", w.Body.String(), err)
	}
	return body
}

func productQuantity(t *testing.T, db *gorm.DB, productID uint) int {
	var product models.Product
	if err := db.First(&product, productID).Error; err != nil {
		t.Fatalf("Failed to reload product %d: %v", productID, err)
	}
	return product.Quantity
}
