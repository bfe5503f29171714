package main

import (
	"log"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/salem2025/sport-store-api/config"
	"github.com/salem2025/sport-store-api/controllers"
	"github.com/salem2025/sport-store-api/middleware"
	"github.com/salem2025/sport-store-api/models"
	"github.com/salem2025/sport-store-api/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := config.InitLogger(cfg.LogLevel)
	logger.Info("Starting Sport Store API server...")

	if err := config.ConnectDatabase(); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	db := config.GetDB()
	if err := db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.Customer{},
		&models.Order{},
		&models.OrderDetail{},
	); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	logger.Info("Database migration completed successfully")

	if err := seedDatabase(db); err != nil {
		logger.Warnf("Database seeding failed: %v", err)
	}

	// Product image storage: S3 when a bucket is configured, local disk
	// otherwise (files served from /uploads)
	if cfg.UseS3Storage() {
		if _, err := services.InitS3Service(); err != nil {
			log.Fatalf("Failed to initialize S3: %v", err)
		}
		services.InitImageService(services.GetS3Service())
		logger.Infof("Product images stored in S3 bucket %s", cfg.AWSS3Bucket)
	} else {
		services.InitLocalImageService(cfg.UploadDir)
		logger.Infof("Product images stored locally under %s", cfg.UploadDir)
	}

	router := setupRouter(cfg)

	addr := ":" + cfg.Port
	logger.Infof("Server is running on http://localhost%s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// setupRouter builds the Gin engine with all routes and middleware
func setupRouter(cfg *config.Config) *gin.Engine {
	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	if !cfg.UseS3Storage() {
		router.Static("/uploads", cfg.UploadDir)
	}

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCheck)
		v1.GET("/database/status", databaseStatus)

		auth := v1.Group("/auth")
		{
			auth.POST("/register", controllers.Register)
			auth.POST("/login", controllers.Login)
			auth.POST("/logout", controllers.Logout)
		}

		// Public catalog
		v1.GET("/products", controllers.ListProducts)
		v1.GET("/products/:id", controllers.GetProduct)

		authenticated := v1.Group("")
		authenticated.Use(middleware.EnsureValidToken(cfg))
		{
			user := authenticated.Group("/user")
			{
				user.GET("/profile", controllers.GetProfile)
				user.PUT("/profile", controllers.UpdateProfile)
				user.GET("/profile/status", controllers.GetProfileStatus)
			}

			orders := authenticated.Group("/orders")
			{
				orders.POST("", controllers.CreateOrder)
				orders.GET("", controllers.GetMyOrders)
				orders.GET("/:id", controllers.GetOrder)
				orders.PATCH("/:id/cancel", controllers.CancelOrder)
			}

			admin := authenticated.Group("")
			admin.Use(middleware.RequireRole(models.RoleAdmin))
			{
				admin.POST("/products", controllers.CreateProduct)
				admin.PUT("/products/:id", controllers.UpdateProduct)
				admin.DELETE("/products/:id", controllers.DeleteProduct)

				admin.POST("/uploads/product-image", controllers.UploadProductImage)

				adminAPI := admin.Group("/admin")
				{
					adminAPI.GET("/orders", controllers.ListOrders)
					adminAPI.GET("/orders/:id", controllers.GetOrderAdmin)
					adminAPI.PATCH("/orders/:id/status", controllers.UpdateOrderStatus)
					adminAPI.DELETE("/orders/:id", controllers.DeleteOrder)

					adminAPI.GET("/users", controllers.ListUsers)
					adminAPI.PUT("/users/:id/role", controllers.UpdateUserRole)
					adminAPI.DELETE("/users/:id", controllers.DeleteUser)

					adminAPI.GET("/dashboard", controllers.GetDashboard)
				}
			}
		}
	}

	return router
}

// healthCheck handles the health check endpoint
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Sport Store API is running",
	})
}

// databaseStatus checks database connectivity and returns table information
func databaseStatus(c *gin.Context) {
	db := config.GetDB()

	sqlDB, err := db.DB()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to get database instance",
			},
		})
		return
	}

	if err := sqlDB.Ping(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_CONNECTION_ERROR",
				"message": "Database connection failed",
			},
		})
		return
	}

	var tables []string
	if err := db.Raw("SELECT tablename FROM pg_tables WHERE schemaname = 'public'").Scan(&tables).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_QUERY_ERROR",
				"message": "Failed to query tables",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Database connected",
		"tables":  tables,
	})
}
