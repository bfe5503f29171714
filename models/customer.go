package models

import (
	"time"
)

// Customer holds the contact details attached to orders.
// A record is created lazily the first time a user places an order and
// reused for every later order with the same email.
type Customer struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Phone     string    `json:"phone"`
	Email     string    `gorm:"index;not null" json:"email"` // natural lookup key
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the table name for the Customer model
func (Customer) TableName() string {
	return "customers"
}
