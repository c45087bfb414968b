// internal/services/blog_service.go
package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/m-sowraj/alkarahm-admin/internal/models"
	"github.com/m-sowraj/alkarahm-admin/internal/utils"
)

type BlogService struct {
	db *gorm.DB
}

type CreateBlogPostRequest struct {
	Title       string              `json:"title" validate:"required,min=2,max=255"`
	Writer      string              `json:"writer" validate:"required,max=255"`
	PublishedAt *time.Time          `json:"published_at,omitempty"`
	ImageURL    string              `json:"image_url,omitempty"`
	Description string              `json:"description,omitempty"`
	Category    models.BlogCategory `json:"category" validate:"required"`
}

type UpdateBlogPostRequest struct {
	Title       string              `json:"title,omitempty" validate:"omitempty,min=2,max=255"`
	Writer      string              `json:"writer,omitempty" validate:"omitempty,max=255"`
	PublishedAt *time.Time          `json:"published_at,omitempty"`
	ImageURL    string              `json:"image_url,omitempty"`
	Description string              `json:"description,omitempty"`
	Category    models.BlogCategory `json:"category,omitempty"`
}

type BlogSearchParams struct {
	utils.PaginationParams
	Category *models.BlogCategory `json:"category,omitempty"`
}

func NewBlogService(db *gorm.DB) *BlogService {
	return &BlogService{db: db}
}

func (s *BlogService) CreateBlogPost(req *CreateBlogPostRequest) (*models.BlogPost, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if !req.Category.Valid() {
		return nil, errors.New("invalid blog category")
	}

	post := &models.BlogPost{
		Title:       req.Title,
		Writer:      req.Writer,
		PublishedAt: req.PublishedAt,
		ImageURL:    req.ImageURL,
		Description: req.Description,
		Category:    req.Category,
	}

	if err := s.db.Create(post).Error; err != nil {
		return nil, fmt.Errorf("failed to create blog post: %w", err)
	}

	return post, nil
}

func (s *BlogService) GetBlogPost(id uuid.UUID) (*models.BlogPost, error) {
	var post models.BlogPost
	if err := s.db.First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("blog post not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	return &post, nil
}

func (s *BlogService) UpdateBlogPost(id uuid.UUID, req *UpdateBlogPostRequest) (*models.BlogPost, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	var post models.BlogPost
	if err := s.db.First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("blog post not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	updates := make(map[string]interface{})
	if req.Title != "" {
		updates["title"] = req.Title
	}
	if req.Writer != "" {
		updates["writer"] = req.Writer
	}
	if req.PublishedAt != nil {
		updates["published_at"] = *req.PublishedAt
	}
	if req.ImageURL != "" {
		updates["image_url"] = req.ImageURL
	}
	if req.Description != "" {
		updates["description"] = req.Description
	}
	if req.Category != "" {
		if !req.Category.Valid() {
			return nil, errors.New("invalid blog category")
		}
		updates["category"] = req.Category
	}

	if len(updates) > 0 {
		if err := s.db.Model(&post).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("failed to update blog post: %w", err)
		}
	}

	s.db.First(&post, id)
	return &post, nil
}

func (s *BlogService) DeleteBlogPost(id uuid.UUID) error {
	var post models.BlogPost
	if err := s.db.First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.New("blog post not found")
		}
		return fmt.Errorf("database error: %w", err)
	}

	if err := s.db.Delete(&post).Error; err != nil {
		return fmt.Errorf("failed to delete blog post: %w", err)
	}

	return nil
}

func (s *BlogService) SearchBlogPosts(params BlogSearchParams) ([]models.BlogPost, int64, error) {
	query := s.db.Model(&models.BlogPost{})

	if params.Category != nil {
		query = query.Where("category = ?", *params.Category)
	}

	query = utils.ApplySearch(query, params.Search, "title", "writer")

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count blog posts: %w", err)
	}

	params.Page = utils.ClampPage(params.Page, total, params.Limit)

	allowedSortFields := []string{"created_at", "updated_at", "title", "writer", "published_at"}
	query = utils.ApplySort(query, params.PaginationParams, allowedSortFields)
	query = utils.ApplyPagination(query, params.PaginationParams)

	var posts []models.BlogPost
	if err := query.Find(&posts).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch blog posts: %w", err)
	}

	return posts, total, nil
}
