package models

import (
	"time"
)

// Product represents a catalog item with its available stock
type Product struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	Price       float64   `gorm:"not null;check:price >= 0" json:"price"`
	Quantity    int       `gorm:"not null;check:quantity >= 0" json:"quantity"` // units in stock
	Description string    `gorm:"type:text" json:"description"`
	Category    string    `gorm:"index" json:"category"`
	ImageKey    *string   `json:"image_key"`                    // storage key for the product image
	ImageURL    *string   `gorm:"-" json:"image_url,omitempty"` // computed field, resolved from ImageKey
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName specifies the table name for the Product model
func (Product) TableName() string {
	return "products"
}
