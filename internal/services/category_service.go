// internal/services/category_service.go
package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/m-sowraj/alkarahm-admin/internal/models"
	"github.com/m-sowraj/alkarahm-admin/internal/utils"
)

type CategoryService struct {
	db *gorm.DB
}

type CreateCategoryRequest struct {
	Name       string `json:"name" validate:"required,min=2,max=255"`
	ArabicName string `json:"arabic_name" validate:"omitempty,max=255"`
	ImageURL   string `json:"image_url" validate:"omitempty,url"`
	IsActive   *bool  `json:"is_active,omitempty"`
}

type UpdateCategoryRequest struct {
	Name       string `json:"name,omitempty" validate:"omitempty,min=2,max=255"`
	ArabicName string `json:"arabic_name,omitempty" validate:"omitempty,max=255"`
	ImageURL   string `json:"image_url,omitempty" validate:"omitempty,url"`
}

type CategorySearchParams struct {
	utils.PaginationParams
	IsActive *bool `json:"is_active,omitempty"`
}

func NewCategoryService(db *gorm.DB) *CategoryService {
	return &CategoryService{db: db}
}

func (s *CategoryService) CreateCategory(req *CreateCategoryRequest) (*models.Category, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	category := &models.Category{
		Name:       req.Name,
		ArabicName: req.ArabicName,
		ImageURL:   req.ImageURL,
		IsActive:   true,
	}
	if req.IsActive != nil {
		category.IsActive = *req.IsActive
	}

	if err := s.db.Create(category).Error; err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	return category, nil
}

func (s *CategoryService) GetCategory(id uuid.UUID) (*models.Category, error) {
	var category models.Category
	if err := s.db.First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("category not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	return &category, nil
}

func (s *CategoryService) UpdateCategory(id uuid.UUID, req *UpdateCategoryRequest) (*models.Category, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	var category models.Category
	if err := s.db.First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("category not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	updates := make(map[string]interface{})
	if req.Name != "" {
		updates["name"] = req.Name
	}
	if req.ArabicName != "" {
		updates["arabic_name"] = req.ArabicName
	}
	if req.ImageURL != "" {
		updates["image_url"] = req.ImageURL
	}

	if len(updates) == 0 {
		return &category, nil
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&category).Updates(updates).Error; err != nil {
			return fmt.Errorf("failed to update category: %w", err)
		}

		// Keep the denormalized name on products in step
		if req.Name != "" {
			if err := tx.Model(&models.Product{}).
				Where("category_id = ?", id).
				Update("category_name", req.Name).Error; err != nil {
				return fmt.Errorf("failed to refresh product category names: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.db.First(&category, id)
	return &category, nil
}

// SetActive flips only the is_active flag, the single-field toggle the
// dashboard list views issue.
func (s *CategoryService) SetActive(id uuid.UUID, active bool) (*models.Category, error) {
	var category models.Category
	if err := s.db.First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("category not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	if err := s.db.Model(&category).Update("is_active", active).Error; err != nil {
		return nil, fmt.Errorf("failed to update category status: %w", err)
	}

	category.IsActive = active
	return &category, nil
}

func (s *CategoryService) DeleteCategory(id uuid.UUID) error {
	var category models.Category
	if err := s.db.First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.New("category not found")
		}
		return fmt.Errorf("database error: %w", err)
	}

	var productCount int64
	if err := s.db.Model(&models.Product{}).
		Where("category_id = ?", id).
		Count(&productCount).Error; err != nil {
		return fmt.Errorf("failed to check category usage: %w", err)
	}

	if productCount > 0 {
		return errors.New("category still has products assigned")
	}

	if err := s.db.Delete(&category).Error; err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}

	return nil
}

func (s *CategoryService) SearchCategories(params CategorySearchParams) ([]models.Category, int64, error) {
	query := s.db.Model(&models.Category{})

	if params.IsActive != nil {
		query = query.Where("is_active = ?", *params.IsActive)
	}

	query = utils.ApplySearch(query, params.Search, "name", "arabic_name")

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count categories: %w", err)
	}

	params.Page = utils.ClampPage(params.Page, total, params.Limit)

	allowedSortFields := []string{"created_at", "updated_at", "name", "is_active"}
	query = utils.ApplySort(query, params.PaginationParams, allowedSortFields)
	query = utils.ApplyPagination(query, params.PaginationParams)

	var categories []models.Category
	if err := query.Find(&categories).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch categories: %w", err)
	}

	return categories, total, nil
}

// ListActiveCategories backs the public storefront dropdowns.
func (s *CategoryService) ListActiveCategories() ([]models.Category, error) {
	var categories []models.Category
	if err := s.db.Where("is_active = ?", true).
		Order("name ASC").
		Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch active categories: %w", err)
	}

	return categories, nil
}
