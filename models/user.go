package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// Role values assigned to user accounts
const (
	RoleAdmin = "ADMIN"
	RoleUser  = "USER"
)

// User represents an account that can sign in and place orders
type User struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Username  string         `gorm:"uniqueIndex;not null" json:"username"`
	Password  string         `gorm:"not null" json:"-"` // bcrypt hash, never serialized
	Role      string         `gorm:"not null;default:'USER'" json:"role"` // "ADMIN" or "USER"
	FullName  string         `gorm:"not null" json:"full_name"`
	Email     string         `gorm:"index" json:"email"`
	Phone     string         `json:"phone"`
	Address   string         `json:"address"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for the User model
func (User) TableName() string {
	return "user_accounts"
}

// IsAdmin reports whether the account carries the ADMIN role
func (u *User) IsAdmin() bool {
	return IsAdminRole(u.Role)
}

// IsAdminRole reports whether a role string grants administrative access.
// The check is a containment test so composite role strings such as
// "ROLE_ADMIN" also qualify.
func IsAdminRole(role string) bool {
	return strings.Contains(role, RoleAdmin)
}
