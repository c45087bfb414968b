// internal/models/review.go
package models

import "github.com/google/uuid"

type ProductReview struct {
	BaseModel
	ProductID  uuid.UUID  `json:"product_id" gorm:"type:uuid;not null;index"`
	UserID     *uuid.UUID `json:"user_id" gorm:"type:uuid;index"`
	Author     string     `json:"author" gorm:"size:255"`
	Rating     int        `json:"rating" gorm:"not null"`
	Comment    string     `json:"comment" gorm:"type:text"`
	IsApproved bool       `json:"is_approved" gorm:"default:false;index"`
}
