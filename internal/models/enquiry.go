// internal/models/enquiry.go
package models

type Enquiry struct {
	BaseModel
	Type        string `json:"type" gorm:"size:100;index"`
	FirstName   string `json:"first_name" gorm:"size:255"`
	LastName    string `json:"last_name" gorm:"size:255"`
	Email       string `json:"email" gorm:"size:255"`
	PhoneNumber string `json:"phone_number" gorm:"size:50"`
	Message     string `json:"message" gorm:"type:text"`
	// Free-form contact fields the enquiry form attaches (city, best contact
	// time, and whatever else a campaign adds).
	Details JSONB `json:"details" gorm:"type:jsonb"`
}
