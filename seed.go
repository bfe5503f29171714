package main

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/salem2025/sport-store-api/config"
	"github.com/salem2025/sport-store-api/models"
)

// seedDatabase creates the default admin account and a sample catalog the
// first time the application starts against an empty database
func seedDatabase(db *gorm.DB) error {
	logger := config.GetLogger()

	var admin models.User
	err := db.Where("username = ?", "admin").First(&admin).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		hashed, err := bcrypt.GenerateFromPassword([]byte("admin"), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		admin = models.User{
			Username: "admin",
			Password: string(hashed),
			Role:     models.RoleAdmin,
			FullName: "Administrator",
		}
		if err := db.Create(&admin).Error; err != nil {
			return err
		}
		logger.Info("Default admin account created")
	} else if err != nil {
		return err
	} else {
		logger.Info("Admin account already exists")
	}

	var productCount int64
	if err := db.Model(&models.Product{}).Count(&productCount).Error; err != nil {
		return err
	}
	if productCount > 0 {
		logger.Info("Products already exist, skipping sample catalog")
		return nil
	}

	samples := []models.Product{
		{
			Name:        "Men's training shirt",
			Price:       250000,
			Quantity:    100,
			Description: "Lightweight breathable training shirt",
			Category:    "apparel",
		},
		{
			Name:        "Sport shorts",
			Price:       150000,
			Quantity:    150,
			Description: "Stretch sport shorts",
			Category:    "apparel",
		},
		{
			Name:        "Running shoes",
			Price:       850000,
			Quantity:    50,
			Description: "Ultra-light running shoes",
			Category:    "footwear",
		},
	}
	if err := db.Create(&samples).Error; err != nil {
		return err
	}
	logger.Infof("Sample catalog created with %d products", len(samples))

	return nil
}
