// internal/models/blog.go
package models

import "time"

type BlogPost struct {
	BaseModel
	Title       string       `json:"title" gorm:"size:255;not null"`
	Writer      string       `json:"writer" gorm:"size:255"`
	PublishedAt *time.Time   `json:"published_at"`
	ImageURL    string       `json:"image_url" gorm:"size:512"`
	Description string       `json:"description" gorm:"type:text"`
	Category    BlogCategory `json:"category" gorm:"type:varchar(50);index"`
}
