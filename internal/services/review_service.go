// internal/services/review_service.go
package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/m-sowraj/alkarahm-admin/internal/models"
	"github.com/m-sowraj/alkarahm-admin/internal/utils"
)

type ReviewService struct {
	db *gorm.DB
}

type CreateReviewRequest struct {
	ProductID uuid.UUID  `json:"product_id" validate:"required"`
	UserID    *uuid.UUID `json:"user_id,omitempty"`
	Author    string     `json:"author" validate:"required,max=255"`
	Rating    int        `json:"rating" validate:"required,min=1,max=5"`
	Comment   string     `json:"comment,omitempty"`
}

type ReviewSearchParams struct {
	utils.PaginationParams
	ProductID  *uuid.UUID `json:"product_id,omitempty"`
	IsApproved *bool      `json:"is_approved,omitempty"`
}

func NewReviewService(db *gorm.DB) *ReviewService {
	return &ReviewService{db: db}
}

// CreateReview stores the review unapproved; it only counts toward the
// product rating once staff approve it.
func (s *ReviewService) CreateReview(req *CreateReviewRequest) (*models.ProductReview, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	var product models.Product
	if err := s.db.First(&product, req.ProductID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("product not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	review := &models.ProductReview{
		ProductID: req.ProductID,
		UserID:    req.UserID,
		Author:    req.Author,
		Rating:    req.Rating,
		Comment:   req.Comment,
	}

	if err := s.db.Create(review).Error; err != nil {
		return nil, fmt.Errorf("failed to create review: %w", err)
	}

	return review, nil
}

func (s *ReviewService) SetApproved(id uuid.UUID, approved bool) (*models.ProductReview, error) {
	var review models.ProductReview
	if err := s.db.First(&review, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("review not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&review).Update("is_approved", approved).Error; err != nil {
			return fmt.Errorf("failed to update review: %w", err)
		}
		return s.refreshProductRating(tx, review.ProductID)
	})
	if err != nil {
		return nil, err
	}

	review.IsApproved = approved
	return &review, nil
}

func (s *ReviewService) DeleteReview(id uuid.UUID) error {
	var review models.ProductReview
	if err := s.db.First(&review, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.New("review not found")
		}
		return fmt.Errorf("database error: %w", err)
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&review).Error; err != nil {
			return fmt.Errorf("failed to delete review: %w", err)
		}
		return s.refreshProductRating(tx, review.ProductID)
	})
}

func (s *ReviewService) SearchReviews(params ReviewSearchParams) ([]models.ProductReview, int64, error) {
	query := s.db.Model(&models.ProductReview{})

	if params.ProductID != nil {
		query = query.Where("product_id = ?", *params.ProductID)
	}

	if params.IsApproved != nil {
		query = query.Where("is_approved = ?", *params.IsApproved)
	}

	query = utils.ApplySearch(query, params.Search, "author", "comment")

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count reviews: %w", err)
	}

	params.Page = utils.ClampPage(params.Page, total, params.Limit)

	allowedSortFields := []string{"created_at", "rating", "author"}
	query = utils.ApplySort(query, params.PaginationParams, allowedSortFields)
	query = utils.ApplyPagination(query, params.PaginationParams)

	var reviews []models.ProductReview
	if err := query.Find(&reviews).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch reviews: %w", err)
	}

	return reviews, total, nil
}

// ListApprovedReviews backs the public product page.
func (s *ReviewService) ListApprovedReviews(productID uuid.UUID) ([]models.ProductReview, error) {
	var reviews []models.ProductReview
	if err := s.db.Where("product_id = ? AND is_approved = ?", productID, true).
		Order("created_at DESC").
		Find(&reviews).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch reviews: %w", err)
	}

	return reviews, nil
}

// refreshProductRating recomputes the denormalized rating and review count
// from the approved reviews.
func (s *ReviewService) refreshProductRating(tx *gorm.DB, productID uuid.UUID) error {
	var stats struct {
		Count  int64
		Rating float64
	}

	if err := tx.Model(&models.ProductReview{}).
		Where("product_id = ? AND is_approved = ?", productID, true).
		Select("COUNT(*) AS count, COALESCE(AVG(rating), 0) AS rating").
		Scan(&stats).Error; err != nil {
		return fmt.Errorf("failed to aggregate reviews: %w", err)
	}

	if err := tx.Model(&models.Product{}).
		Where("id = ?", productID).
		Updates(map[string]interface{}{
			"rating":       stats.Rating,
			"review_count": stats.Count,
		}).Error; err != nil {
		return fmt.Errorf("failed to refresh product rating: %w", err)
	}

	return nil
}
