// internal/services/product_service.go
package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/m-sowraj/alkarahm-admin/internal/models"
	"github.com/m-sowraj/alkarahm-admin/internal/utils"
)

type ProductService struct {
	db *gorm.DB
}

type VariantInput struct {
	Name            string  `json:"name" validate:"required,min=1,max=255"`
	Price           float64 `json:"price" validate:"required,min=0.01"`
	DiscountedPrice float64 `json:"discounted_price" validate:"omitempty,min=0"`
	Stock           int     `json:"stock" validate:"min=0"`
	IsActive        *bool   `json:"is_active,omitempty"`
}

type CreateProductRequest struct {
	Name              string                 `json:"name" validate:"required,min=2,max=255"`
	ArabicName        string                 `json:"arabic_name" validate:"omitempty,max=255"`
	Description       string                 `json:"description,omitempty"`
	ArabicDescription string                 `json:"arabic_description,omitempty"`
	CategoryID        *uuid.UUID             `json:"category_id,omitempty"`
	BasePrice         float64                `json:"base_price" validate:"required,min=0.01"`
	DiscountedPrice   float64                `json:"discounted_price" validate:"omitempty,min=0"`
	IsActive          bool                   `json:"is_active"`
	IsFeatured        bool                   `json:"is_featured"`
	ImageURL          string                 `json:"image_url,omitempty"`
	Images            []string               `json:"images,omitempty"`
	SKU               string                 `json:"sku,omitempty"`
	Weight            float64                `json:"weight,omitempty" validate:"omitempty,min=0"`
	Manufacturer      string                 `json:"manufacturer,omitempty"`
	Warranty          string                 `json:"warranty,omitempty"`
	Tags              []string               `json:"tags,omitempty"`
	ShippingDetails   map[string]interface{} `json:"shipping_details,omitempty"`
	SEO               map[string]interface{} `json:"seo,omitempty"`
	Variants          []VariantInput         `json:"variants" validate:"required,min=1,dive"`
}

type UpdateProductRequest struct {
	Name              string                 `json:"name,omitempty" validate:"omitempty,min=2,max=255"`
	ArabicName        string                 `json:"arabic_name,omitempty" validate:"omitempty,max=255"`
	Description       string                 `json:"description,omitempty"`
	ArabicDescription string                 `json:"arabic_description,omitempty"`
	CategoryID        *uuid.UUID             `json:"category_id,omitempty"`
	BasePrice         float64                `json:"base_price,omitempty" validate:"omitempty,min=0.01"`
	DiscountedPrice   float64                `json:"discounted_price,omitempty" validate:"omitempty,min=0"`
	IsActive          *bool                  `json:"is_active,omitempty"`
	IsFeatured        *bool                  `json:"is_featured,omitempty"`
	ImageURL          string                 `json:"image_url,omitempty"`
	Images            []string               `json:"images,omitempty"`
	SKU               string                 `json:"sku,omitempty"`
	Weight            float64                `json:"weight,omitempty" validate:"omitempty,min=0"`
	Manufacturer      string                 `json:"manufacturer,omitempty"`
	Warranty          string                 `json:"warranty,omitempty"`
	Tags              []string               `json:"tags,omitempty"`
	ShippingDetails   map[string]interface{} `json:"shipping_details,omitempty"`
	SEO               map[string]interface{} `json:"seo,omitempty"`
	// When present, replaces the full variant set. Variants are never
	// patched positionally inside the product document.
	Variants []VariantInput `json:"variants,omitempty" validate:"omitempty,min=1,dive"`
}

type ProductSearchParams struct {
	utils.PaginationParams
	CategoryID *uuid.UUID `json:"category_id,omitempty"`
	IsActive   *bool      `json:"is_active,omitempty"`
	IsFeatured *bool      `json:"is_featured,omitempty"`
	PriceMin   *float64   `json:"price_min,omitempty"`
	PriceMax   *float64   `json:"price_max,omitempty"`
	Tags       []string   `json:"tags,omitempty"`
}

func NewProductService(db *gorm.DB) *ProductService {
	return &ProductService{db: db}
}

func variantFromInput(productID uuid.UUID, in VariantInput) models.ProductVariant {
	variant := models.ProductVariant{
		ProductID:       productID,
		Name:            in.Name,
		Price:           in.Price,
		DiscountedPrice: in.DiscountedPrice,
		Stock:           in.Stock,
		IsActive:        true,
	}
	if in.IsActive != nil {
		variant.IsActive = *in.IsActive
	}
	return variant
}

func anyActiveVariant(inputs []VariantInput) bool {
	for _, in := range inputs {
		if in.IsActive == nil || *in.IsActive {
			return true
		}
	}
	return false
}

func (s *ProductService) CreateProduct(req *CreateProductRequest) (*models.Product, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	// An active product needs at least one active variant
	if req.IsActive && !anyActiveVariant(req.Variants) {
		return nil, errors.New("product cannot be active without at least one active variant")
	}

	product := &models.Product{
		Name:              req.Name,
		ArabicName:        req.ArabicName,
		Description:       req.Description,
		ArabicDescription: req.ArabicDescription,
		BasePrice:         req.BasePrice,
		DiscountedPrice:   req.DiscountedPrice,
		IsActive:          req.IsActive,
		IsFeatured:        req.IsFeatured,
		ImageURL:          req.ImageURL,
		Images:            req.Images,
		SKU:               req.SKU,
		Weight:            req.Weight,
		Manufacturer:      req.Manufacturer,
		Warranty:          req.Warranty,
		Tags:              req.Tags,
		ShippingDetails:   models.JSONB(req.ShippingDetails),
		SEO:               models.JSONB(req.SEO),
	}

	if req.CategoryID != nil {
		var category models.Category
		if err := s.db.First(&category, *req.CategoryID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, errors.New("category not found")
			}
			return nil, fmt.Errorf("database error: %w", err)
		}
		product.CategoryID = req.CategoryID
		product.CategoryName = category.Name
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(product).Error; err != nil {
			return fmt.Errorf("failed to create product: %w", err)
		}

		for _, in := range req.Variants {
			variant := variantFromInput(product.ID, in)
			if err := tx.Create(&variant).Error; err != nil {
				return fmt.Errorf("failed to create variant: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.db.Preload("Variants").Preload("Category").First(product, product.ID)
	return product, nil
}

func (s *ProductService) GetProduct(id uuid.UUID) (*models.Product, error) {
	var product models.Product
	if err := s.db.Preload("Variants").Preload("Category").
		First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("product not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	return &product, nil
}

func (s *ProductService) UpdateProduct(id uuid.UUID, req *UpdateProductRequest) (*models.Product, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	var product models.Product
	if err := s.db.Preload("Variants").First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("product not found")
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
	if req.Description != "" {
		updates["description"] = req.Description
	}
	if req.ArabicDescription != "" {
		updates["arabic_description"] = req.ArabicDescription
	}
	if req.BasePrice > 0 {
		updates["base_price"] = req.BasePrice
	}
	if req.DiscountedPrice > 0 {
		updates["discounted_price"] = req.DiscountedPrice
	}
	if req.IsFeatured != nil {
		updates["is_featured"] = *req.IsFeatured
	}
	if req.ImageURL != "" {
		updates["image_url"] = req.ImageURL
	}
	if req.Images != nil {
		updates["images"] = req.Images
	}
	if req.SKU != "" {
		updates["sku"] = req.SKU
	}
	if req.Weight > 0 {
		updates["weight"] = req.Weight
	}
	if req.Manufacturer != "" {
		updates["manufacturer"] = req.Manufacturer
	}
	if req.Warranty != "" {
		updates["warranty"] = req.Warranty
	}
	if req.Tags != nil {
		updates["tags"] = req.Tags
	}
	if req.ShippingDetails != nil {
		updates["shipping_details"] = models.JSONB(req.ShippingDetails)
	}
	if req.SEO != nil {
		updates["seo"] = models.JSONB(req.SEO)
	}

	if req.CategoryID != nil {
		var category models.Category
		if err := s.db.First(&category, *req.CategoryID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, errors.New("category not found")
			}
			return nil, fmt.Errorf("database error: %w", err)
		}
		updates["category_id"] = *req.CategoryID
		updates["category_name"] = category.Name
	}

	// Work out the post-update active state against the post-update variant set
	targetActive := product.IsActive
	if req.IsActive != nil {
		targetActive = *req.IsActive
	}

	if targetActive {
		hasActive := product.HasActiveVariant()
		if req.Variants != nil {
			hasActive = anyActiveVariant(req.Variants)
		}
		if !hasActive {
			return nil, errors.New("product cannot be active without at least one active variant")
		}
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if len(updates) > 0 {
			if err := tx.Model(&product).Updates(updates).Error; err != nil {
				return fmt.Errorf("failed to update product: %w", err)
			}
		}

		// Replace the whole variant set when one is supplied
		if req.Variants != nil {
			if err := tx.Where("product_id = ?", id).
				Delete(&models.ProductVariant{}).Error; err != nil {
				return fmt.Errorf("failed to clear variants: %w", err)
			}

			for _, in := range req.Variants {
				variant := variantFromInput(id, in)
				if err := tx.Create(&variant).Error; err != nil {
					return fmt.Errorf("failed to create variant: %w", err)
				}
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.db.Preload("Variants").Preload("Category").First(&product, id)
	return &product, nil
}

// SetActive flips the product's is_active flag. Activation is refused while
// no variant is active; deactivation always succeeds.
func (s *ProductService) SetActive(id uuid.UUID, active bool) (*models.Product, error) {
	var product models.Product
	if err := s.db.Preload("Variants").First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("product not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	if active && !product.HasActiveVariant() {
		return nil, errors.New("product cannot be active without at least one active variant")
	}

	if err := s.db.Model(&product).Update("is_active", active).Error; err != nil {
		return nil, fmt.Errorf("failed to update product status: %w", err)
	}

	product.IsActive = active
	return &product, nil
}

func (s *ProductService) SetFeatured(id uuid.UUID, featured bool) (*models.Product, error) {
	var product models.Product
	if err := s.db.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("product not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	if err := s.db.Model(&product).Update("is_featured", featured).Error; err != nil {
		return nil, fmt.Errorf("failed to update product status: %w", err)
	}

	product.IsFeatured = featured
	return &product, nil
}

// SetVariantActive toggles one variant row. Deactivating the last active
// variant of an active product also deactivates the product, inside the same
// transaction, so the invariant never breaks between the two writes.
func (s *ProductService) SetVariantActive(productID, variantID uuid.UUID, active bool) (*models.Product, error) {
	var product models.Product
	if err := s.db.Preload("Variants").First(&product, productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("product not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	found := false
	remaining := 0
	for _, v := range product.Variants {
		if v.ID == variantID {
			found = true
			continue
		}
		if v.IsActive {
			remaining++
		}
	}
	if !found {
		return nil, errors.New("variant not found")
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.ProductVariant{}).
			Where("id = ?", variantID).
			Update("is_active", active).Error; err != nil {
			return fmt.Errorf("failed to update variant status: %w", err)
		}

		if !active && remaining == 0 && product.IsActive {
			if err := tx.Model(&product).Update("is_active", false).Error; err != nil {
				return fmt.Errorf("failed to deactivate product: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.db.Preload("Variants").Preload("Category").First(&product, productID)
	return &product, nil
}

func (s *ProductService) DeleteProduct(id uuid.UUID) error {
	var product models.Product
	if err := s.db.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.New("product not found")
		}
		return fmt.Errorf("database error: %w", err)
	}

	// Soft delete; variants stay behind the product's deleted_at
	if err := s.db.Delete(&product).Error; err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}

	return nil
}

func (s *ProductService) SearchProducts(params ProductSearchParams) ([]models.Product, int64, error) {
	query := s.db.Model(&models.Product{}).Preload("Variants").Preload("Category")

	if params.CategoryID != nil {
		query = query.Where("category_id = ?", *params.CategoryID)
	}

	if params.IsActive != nil {
		query = query.Where("is_active = ?", *params.IsActive)
	}

	if params.IsFeatured != nil {
		query = query.Where("is_featured = ?", *params.IsFeatured)
	}

	if params.PriceMin != nil {
		query = query.Where("base_price >= ?", *params.PriceMin)
	}

	if params.PriceMax != nil {
		query = query.Where("base_price <= ?", *params.PriceMax)
	}

	if len(params.Tags) > 0 {
		query = query.Where("tags && ?", params.Tags)
	}

	query = utils.ApplySearch(query, params.Search, "name", "arabic_name", "sku")

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count products: %w", err)
	}

	params.Page = utils.ClampPage(params.Page, total, params.Limit)

	allowedSortFields := []string{"created_at", "updated_at", "name", "base_price", "rating", "is_active"}
	query = utils.ApplySort(query, params.PaginationParams, allowedSortFields)
	query = utils.ApplyPagination(query, params.PaginationParams)

	var products []models.Product
	if err := query.Find(&products).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch products: %w", err)
	}

	return products, total, nil
}

func (s *ProductService) GetFeaturedProducts(limit int) ([]models.Product, error) {
	var products []models.Product
	if err := s.db.Where("is_active = ? AND is_featured = ?", true, true).
		Order("created_at DESC").
		Limit(limit).
		Preload("Variants").Preload("Category").
		Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch featured products: %w", err)
	}

	return products, nil
}
