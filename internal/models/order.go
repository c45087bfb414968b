// internal/models/order.go
package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OrderAddress struct {
	Name        string `json:"name" gorm:"size:255"`
	PhoneNumber string `json:"phone_number" gorm:"size:50"`
	District    string `json:"district" gorm:"size:255"`
	Landmark    string `json:"landmark" gorm:"size:255"`
	Address     string `json:"address" gorm:"type:text"`
}

type Order struct {
	BaseModel
	UserID        uuid.UUID       `json:"user_id" gorm:"type:uuid;not null;index"`
	Status        OrderStatus     `json:"status" gorm:"type:varchar(30);default:'Order placed';index"`
	TotalAmount   decimal.Decimal `json:"total_amount" gorm:"type:decimal(12,2);not null"`
	PaymentMethod string          `json:"payment_method" gorm:"size:50"`
	Address       OrderAddress    `json:"address" gorm:"embedded;embeddedPrefix:address_"`

	User  *User       `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Items []OrderItem `json:"cart_items,omitempty" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// OrderItem is a snapshot of the purchased variant at order time, so later
// product edits never rewrite order history.
type OrderItem struct {
	BaseModel
	OrderID           uuid.UUID       `json:"order_id" gorm:"type:uuid;not null;index"`
	ProductName       string          `json:"product_name" gorm:"size:255"`
	VariantName       string          `json:"variant_name" gorm:"size:255"`
	Quantity          int             `json:"quantity" gorm:"not null"`
	VariantPrice      decimal.Decimal `json:"variant_price" gorm:"type:decimal(10,2)"`
	ProductImageURL   string          `json:"product_image_url" gorm:"size:512"`
	Description       string          `json:"description" gorm:"type:text"`
	ArabicDescription string          `json:"arabic_description" gorm:"type:text"`
}
