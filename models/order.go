package models

import (
	"time"
)

// Order represents a placed order together with its line items
type Order struct {
	ID            uint          `gorm:"primaryKey" json:"id"`
	OrderDate     time.Time     `gorm:"not null" json:"order_date"`
	Status        string        `gorm:"not null;default:'PENDING';index" json:"status"`
	Notes         string        `gorm:"type:text" json:"notes"`
	PaymentMethod string        `json:"payment_method"`
	CustomerID    uint          `gorm:"not null;index" json:"customer_id"` // shared reference, never cascaded
	Customer      Customer      `gorm:"foreignKey:CustomerID" json:"customer"`
	UserID        uint          `gorm:"not null;index" json:"user_id"` // account that placed the order
	User          User          `gorm:"foreignKey:UserID" json:"user"`
	OrderDetails  []OrderDetail `gorm:"foreignKey:OrderID" json:"order_details"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

// TableName specifies the table name for the Order model
func (Order) TableName() string {
	return "orders"
}

// OrderDetail is one product line within an order. UnitPrice is captured
// at order time so later catalog price changes do not rewrite history.
type OrderDetail struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	OrderID   uint    `gorm:"not null;index" json:"order_id"`
	ProductID uint    `gorm:"not null;index" json:"product_id"`
	Product   Product `gorm:"foreignKey:ProductID" json:"product"`
	Quantity  int     `gorm:"not null;check:quantity > 0" json:"quantity"`
	UnitPrice float64 `gorm:"not null" json:"unit_price"`
}

// TableName specifies the table name for the OrderDetail model
func (OrderDetail) TableName() string {
	return "order_details"
}
