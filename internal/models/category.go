// internal/models/category.go
package models

type Category struct {
	BaseModel
	Name       string `json:"name" gorm:"size:255;not null;uniqueIndex"`
	ArabicName string `json:"arabic_name" gorm:"size:255"`
	ImageURL   string `json:"image_url" gorm:"size:512"`
	IsActive   bool   `json:"is_active" gorm:"default:true;index"`

	Products []Product `json:"products,omitempty" gorm:"foreignKey:CategoryID"`
}
