// internal/services/enquiry_service.go
package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/m-sowraj/alkarahm-admin/internal/models"
	"github.com/m-sowraj/alkarahm-admin/internal/utils"
)

type EnquiryService struct {
	db *gorm.DB
}

type CreateEnquiryRequest struct {
	Type        string                 `json:"type" validate:"required,max=100"`
	FirstName   string                 `json:"first_name" validate:"required,max=255"`
	LastName    string                 `json:"last_name" validate:"omitempty,max=255"`
	Email       string                 `json:"email" validate:"required,email"`
	PhoneNumber string                 `json:"phone_number" validate:"omitempty,max=50"`
	Message     string                 `json:"message,omitempty"`
	Details     map[string]interface{} `json:"details,omitempty"`
}

type EnquirySearchParams struct {
	utils.PaginationParams
	Type string `json:"type,omitempty"`
}

func NewEnquiryService(db *gorm.DB) *EnquiryService {
	return &EnquiryService{db: db}
}

func (s *EnquiryService) CreateEnquiry(req *CreateEnquiryRequest) (*models.Enquiry, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	enquiry := &models.Enquiry{
		Type:        req.Type,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Message:     req.Message,
		Details:     models.JSONB(req.Details),
	}

	if err := s.db.Create(enquiry).Error; err != nil {
		return nil, fmt.Errorf("failed to create enquiry: %w", err)
	}

	return enquiry, nil
}

func (s *EnquiryService) GetEnquiry(id uuid.UUID) (*models.Enquiry, error) {
	var enquiry models.Enquiry
	if err := s.db.First(&enquiry, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("enquiry not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	return &enquiry, nil
}

func (s *EnquiryService) DeleteEnquiry(id uuid.UUID) error {
	var enquiry models.Enquiry
	if err := s.db.First(&enquiry, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.New("enquiry not found")
		}
		return fmt.Errorf("database error: %w", err)
	}

	if err := s.db.Delete(&enquiry).Error; err != nil {
		return fmt.Errorf("failed to delete enquiry: %w", err)
	}

	return nil
}

func (s *EnquiryService) SearchEnquiries(params EnquirySearchParams) ([]models.Enquiry, int64, error) {
	query := s.db.Model(&models.Enquiry{})

	if params.Type != "" {
		query = query.Where("type = ?", params.Type)
	}

	query = utils.ApplySearch(query, params.Search, "first_name", "last_name", "email")

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count enquiries: %w", err)
	}

	params.Page = utils.ClampPage(params.Page, total, params.Limit)

	allowedSortFields := []string{"created_at", "type", "first_name", "email"}
	query = utils.ApplySort(query, params.PaginationParams, allowedSortFields)
	query = utils.ApplyPagination(query, params.PaginationParams)

	var enquiries []models.Enquiry
	if err := query.Find(&enquiries).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch enquiries: %w", err)
	}

	return enquiries, total, nil
}
