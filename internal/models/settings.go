// internal/models/settings.go
package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/lib/pq"
)

// StoreSettingsID is the fixed primary key of the settings singleton.
const StoreSettingsID = "STORE_SETTINGS"

type Testimonial struct {
	Name        string `json:"name"`
	Designation string `json:"designation"`
	Quote       string `json:"quote"`
	ImageSrc    string `json:"image_src"`
}

type TestimonialList []Testimonial

func (t TestimonialList) Value() (driver.Value, error) {
	if t == nil {
		return nil, nil
	}
	return json.Marshal(t)
}

func (t *TestimonialList) Scan(value interface{}) error {
	if value == nil {
		*t = nil
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return nil
	}

	return json.Unmarshal(bytes, t)
}

// StoreSettings is a singleton row; saves merge into it, they never replace it.
type StoreSettings struct {
	ID             string          `json:"id" gorm:"primaryKey;size:50"`
	StoreName      string          `json:"store_name" gorm:"size:255"`
	ContactEmail   string          `json:"contact_email" gorm:"size:255"`
	ContactPhone   string          `json:"contact_phone" gorm:"size:50"`
	ContactAddress string          `json:"contact_address" gorm:"type:text"`
	FacebookURL    string          `json:"facebook_url" gorm:"size:512"`
	InstagramURL   string          `json:"instagram_url" gorm:"size:512"`
	TwitterURL     string          `json:"twitter_url" gorm:"size:512"`
	YoutubeURL     string          `json:"youtube_url" gorm:"size:512"`
	HeaderLogoURL  string          `json:"header_logo_url" gorm:"size:512"`
	FooterLogoURL  string          `json:"footer_logo_url" gorm:"size:512"`
	DesktopBanners pq.StringArray  `json:"desktop_banners" gorm:"type:text[]"`
	MobileBanners  pq.StringArray  `json:"mobile_banners" gorm:"type:text[]"`
	Testimonials   TestimonialList `json:"testimonials" gorm:"type:jsonb"`
	UpdatedAt      time.Time       `json:"updated_at"`
}
