// internal/services/settings_service.go
package services

import (
	"errors"
	"fmt"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/m-sowraj/alkarahm-admin/internal/models"
	"github.com/m-sowraj/alkarahm-admin/internal/utils"
)

type SettingsService struct {
	db *gorm.DB
}

// Every field is a pointer: only the fields a save actually carries are
// merged into the singleton, the rest stay untouched.
type UpdateSettingsRequest struct {
	StoreName      string               `json:"store_name,omitempty" validate:"omitempty,max=255"`
	ContactEmail   string               `json:"contact_email,omitempty" validate:"omitempty,email"`
	ContactPhone   string               `json:"contact_phone,omitempty" validate:"omitempty,max=50"`
	ContactAddress string               `json:"contact_address,omitempty"`
	FacebookURL    string               `json:"facebook_url,omitempty" validate:"omitempty,url"`
	InstagramURL   string               `json:"instagram_url,omitempty" validate:"omitempty,url"`
	TwitterURL     string               `json:"twitter_url,omitempty" validate:"omitempty,url"`
	YoutubeURL     string               `json:"youtube_url,omitempty" validate:"omitempty,url"`
	HeaderLogoURL  string               `json:"header_logo_url,omitempty" validate:"omitempty,url"`
	FooterLogoURL  string               `json:"footer_logo_url,omitempty" validate:"omitempty,url"`
	DesktopBanners *[]string            `json:"desktop_banners,omitempty"`
	MobileBanners  *[]string            `json:"mobile_banners,omitempty"`
	Testimonials   *[]models.Testimonial `json:"testimonials,omitempty"`
}

func NewSettingsService(db *gorm.DB) *SettingsService {
	return &SettingsService{db: db}
}

// GetSettings returns the singleton, creating it on first read.
func (s *SettingsService) GetSettings() (*models.StoreSettings, error) {
	var settings models.StoreSettings
	err := s.db.First(&settings, "id = ?", models.StoreSettingsID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		settings = models.StoreSettings{ID: models.StoreSettingsID}
		if err := s.db.Create(&settings).Error; err != nil {
			return nil, fmt.Errorf("failed to create store settings: %w", err)
		}
		return &settings, nil
	}
	if err != nil {
		return nil, fmt.Errorf("database error: %w", err)
	}

	return &settings, nil
}

// UpdateSettings merges the supplied fields into the singleton.
func (s *SettingsService) UpdateSettings(req *UpdateSettingsRequest) (*models.StoreSettings, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	settings, err := s.GetSettings()
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if req.StoreName != "" {
		updates["store_name"] = req.StoreName
	}
	if req.ContactEmail != "" {
		updates["contact_email"] = req.ContactEmail
	}
	if req.ContactPhone != "" {
		updates["contact_phone"] = req.ContactPhone
	}
	if req.ContactAddress != "" {
		updates["contact_address"] = req.ContactAddress
	}
	if req.FacebookURL != "" {
		updates["facebook_url"] = req.FacebookURL
	}
	if req.InstagramURL != "" {
		updates["instagram_url"] = req.InstagramURL
	}
	if req.TwitterURL != "" {
		updates["twitter_url"] = req.TwitterURL
	}
	if req.YoutubeURL != "" {
		updates["youtube_url"] = req.YoutubeURL
	}
	if req.HeaderLogoURL != "" {
		updates["header_logo_url"] = req.HeaderLogoURL
	}
	if req.FooterLogoURL != "" {
		updates["footer_logo_url"] = req.FooterLogoURL
	}
	if req.DesktopBanners != nil {
		updates["desktop_banners"] = pq.StringArray(*req.DesktopBanners)
	}
	if req.MobileBanners != nil {
		updates["mobile_banners"] = pq.StringArray(*req.MobileBanners)
	}
	if req.Testimonials != nil {
		updates["testimonials"] = models.TestimonialList(*req.Testimonials)
	}

	if len(updates) == 0 {
		return settings, nil
	}

	if err := s.db.Model(settings).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update settings: %w", err)
	}

	s.db.First(settings, "id = ?", models.StoreSettingsID)
	return settings, nil
}
