// internal/models/product.go
package models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

type Product struct {
	BaseModel
	Name              string     `json:"name" gorm:"size:255;not null"`
	ArabicName        string     `json:"arabic_name" gorm:"size:255"`
	Description       string     `json:"description" gorm:"type:text"`
	ArabicDescription string     `json:"arabic_description" gorm:"type:text"`
	CategoryID        *uuid.UUID `json:"category_id" gorm:"type:uuid;index"`
	// Denormalized for list rendering; refreshed whenever the category changes.
	CategoryName    string         `json:"category_name" gorm:"size:255"`
	BasePrice       float64        `json:"base_price" gorm:"type:decimal(10,2);not null"`
	DiscountedPrice float64        `json:"discounted_price" gorm:"type:decimal(10,2)"`
	IsActive        bool           `json:"is_active" gorm:"default:false;index"`
	IsFeatured      bool           `json:"is_featured" gorm:"default:false;index"`
	Rating          float64        `json:"rating" gorm:"type:decimal(3,2);default:0"`
	ReviewCount     int64          `json:"review_count" gorm:"default:0"`
	ImageURL        string         `json:"image_url" gorm:"size:512"`
	Images          pq.StringArray `json:"images" gorm:"type:text[]"`
	SKU             string         `json:"sku" gorm:"size:100;index"`
	Weight          float64        `json:"weight"`
	Manufacturer    string         `json:"manufacturer" gorm:"size:255"`
	Warranty        string         `json:"warranty" gorm:"size:255"`
	Tags            pq.StringArray `json:"tags" gorm:"type:text[]"`
	ShippingDetails JSONB          `json:"shipping_details" gorm:"type:jsonb"`
	SEO             JSONB          `json:"seo" gorm:"type:jsonb"`

	Category *Category        `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	Variants []ProductVariant `json:"variants,omitempty" gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	Reviews  []ProductReview  `json:"reviews,omitempty" gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}

// HasActiveVariant reports whether at least one variant is purchasable.
// A product may only be active when this holds.
func (p *Product) HasActiveVariant() bool {
	for _, v := range p.Variants {
		if v.IsActive {
			return true
		}
	}
	return false
}

// Variants live in their own table keyed by product_id; they are always
// written row by row, never as a nested array inside the product.
type ProductVariant struct {
	BaseModel
	ProductID       uuid.UUID `json:"product_id" gorm:"type:uuid;not null;index"`
	Name            string    `json:"name" gorm:"size:255;not null"`
	Price           float64   `json:"price" gorm:"type:decimal(10,2);not null"`
	DiscountedPrice float64   `json:"discounted_price" gorm:"type:decimal(10,2)"`
	Stock           int       `json:"stock" gorm:"default:0"`
	IsActive        bool      `json:"is_active" gorm:"default:true"`
}
