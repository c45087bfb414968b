// internal/models/common.go
package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Base model with common fields
type BaseModel struct {
	ID        uuid.UUID      `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"deleted_at,omitempty" gorm:"index"`
}

// JSONB type for PostgreSQL
type JSONB map[string]interface{}

func (j JSONB) Value() (driver.Value, error) {
	if j == nil {
		return nil, nil
	}
	return json.Marshal(j)
}

func (j *JSONB) Scan(value interface{}) error {
	if value == nil {
		*j = nil
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return nil
	}

	return json.Unmarshal(bytes, j)
}

// Enums
type OrderStatus string

// Order statuses shown verbatim in the dashboard, in both locales.
const (
	OrderStatusPlaced    OrderStatus = "Order placed"
	OrderStatusShipped   OrderStatus = "Order shipped"
	OrderStatusDelivered OrderStatus = "Order delivered"
	OrderStatusCancelled OrderStatus = "Order cancelled"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPlaced, OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

type UserRole string

const (
	RoleSuperAdmin UserRole = "Super admin"
	RoleAdmin      UserRole = "Admin"
	RoleUser       UserRole = "User"
)

func (r UserRole) Valid() bool {
	switch r {
	case RoleSuperAdmin, RoleAdmin, RoleUser:
		return true
	}
	return false
}

// IsStaff reports whether the role grants access to the admin API.
func (r UserRole) IsStaff() bool {
	return r == RoleAdmin || r == RoleSuperAdmin
}

type SignInMethod string

const (
	SignInMethodGoogle   SignInMethod = "google"
	SignInMethodEmail    SignInMethod = "email"
	SignInMethodFacebook SignInMethod = "facebook"
)

func (m SignInMethod) Valid() bool {
	switch m {
	case SignInMethodGoogle, SignInMethodEmail, SignInMethodFacebook:
		return true
	}
	return false
}

type BlogCategory string

const (
	BlogCategoryDIY    BlogCategory = "DIY"
	BlogCategoryCrafts BlogCategory = "Crafts"
	BlogCategoryBeauty BlogCategory = "Beauty"
	BlogCategoryFood   BlogCategory = "Food"
)

func BlogCategories() []BlogCategory {
	return []BlogCategory{BlogCategoryDIY, BlogCategoryCrafts, BlogCategoryBeauty, BlogCategoryFood}
}

func (c BlogCategory) Valid() bool {
	for _, known := range BlogCategories() {
		if c == known {
			return true
		}
	}
	return false
}
