// internal/services/order_service.go
package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/m-sowraj/alkarahm-admin/internal/models"
	"github.com/m-sowraj/alkarahm-admin/internal/utils"
)

type OrderService struct {
	db *gorm.DB
}

type OrderItemInput struct {
	ProductName       string          `json:"product_name" validate:"required"`
	VariantName       string          `json:"variant_name,omitempty"`
	Quantity          int             `json:"quantity" validate:"required,min=1"`
	VariantPrice      decimal.Decimal `json:"variant_price"`
	ProductImageURL   string          `json:"product_image_url,omitempty"`
	Description       string          `json:"description,omitempty"`
	ArabicDescription string          `json:"arabic_description,omitempty"`
}

type CreateOrderRequest struct {
	UserID        uuid.UUID           `json:"user_id" validate:"required"`
	PaymentMethod string              `json:"payment_method" validate:"required"`
	Address       models.OrderAddress `json:"address"`
	Items         []OrderItemInput    `json:"cart_items" validate:"required,min=1,dive"`
}

type OrderSearchParams struct {
	utils.PaginationParams
	Status        *models.OrderStatus `json:"status,omitempty"`
	UserID        *uuid.UUID          `json:"user_id,omitempty"`
	PaymentMethod string              `json:"payment_method,omitempty"`
	CreatedAfter  *time.Time          `json:"created_after,omitempty"`
	CreatedBefore *time.Time          `json:"created_before,omitempty"`
}

func NewOrderService(db *gorm.DB) *OrderService {
	return &OrderService{db: db}
}

// CreateOrder is called by the storefront checkout, not the dashboard. The
// total is always recomputed from the items server side.
func (s *OrderService) CreateOrder(req *CreateOrderRequest) (*models.Order, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	var user models.User
	if err := s.db.First(&user, req.UserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("user not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	total := decimal.Zero
	for _, item := range req.Items {
		total = total.Add(item.VariantPrice.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}

	order := &models.Order{
		UserID:        req.UserID,
		Status:        models.OrderStatusPlaced,
		TotalAmount:   total,
		PaymentMethod: req.PaymentMethod,
		Address:       req.Address,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return fmt.Errorf("failed to create order: %w", err)
		}

		for _, in := range req.Items {
			item := models.OrderItem{
				OrderID:           order.ID,
				ProductName:       in.ProductName,
				VariantName:       in.VariantName,
				Quantity:          in.Quantity,
				VariantPrice:      in.VariantPrice,
				ProductImageURL:   in.ProductImageURL,
				Description:       in.Description,
				ArabicDescription: in.ArabicDescription,
			}
			if err := tx.Create(&item).Error; err != nil {
				return fmt.Errorf("failed to create order item: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.db.Preload("Items").Preload("User").First(order, order.ID)
	return order, nil
}

func (s *OrderService) GetOrder(id uuid.UUID) (*models.Order, error) {
	var order models.Order
	if err := s.db.Preload("Items").Preload("User").
		First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("order not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	return &order, nil
}

func (s *OrderService) UpdateStatus(id uuid.UUID, status models.OrderStatus) (*models.Order, error) {
	if !status.Valid() {
		return nil, errors.New("invalid order status")
	}

	var order models.Order
	if err := s.db.First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("order not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	if err := s.db.Model(&order).Update("status", status).Error; err != nil {
		return nil, fmt.Errorf("failed to update order status: %w", err)
	}

	s.db.Preload("Items").Preload("User").First(&order, id)
	return &order, nil
}

// orderSearchClause builds the filter for a staff search term. Staff paste
// order id fragments and customer emails straight from the table, so the
// term matches the order id, the customer account and the shipping address.
// The id cast makes a pasted uuid fragment hit its row; the customer match
// goes through a subquery to keep the outer query single-table.
func orderSearchClause(search string) (string, []interface{}) {
	term := "%" + strings.ToLower(search) + "%"
	clause := "CAST(id AS TEXT) LIKE ?" +
		" OR LOWER(address_name) LIKE ?" +
		" OR LOWER(address_phone_number) LIKE ?" +
		" OR LOWER(address_district) LIKE ?" +
		" OR user_id IN (SELECT id FROM users WHERE deleted_at IS NULL" +
		" AND (LOWER(email) LIKE ? OR LOWER(name) LIKE ?))"
	return clause, []interface{}{term, term, term, term, term, term}
}

func (s *OrderService) SearchOrders(params OrderSearchParams) ([]models.Order, int64, error) {
	query := s.db.Model(&models.Order{}).Preload("Items").Preload("User")

	if params.Status != nil {
		query = query.Where("status = ?", *params.Status)
	}

	if params.UserID != nil {
		query = query.Where("user_id = ?", *params.UserID)
	}

	if params.PaymentMethod != "" {
		query = query.Where("payment_method = ?", params.PaymentMethod)
	}

	if params.CreatedAfter != nil {
		query = query.Where("created_at >= ?", *params.CreatedAfter)
	}

	if params.CreatedBefore != nil {
		query = query.Where("created_at <= ?", *params.CreatedBefore)
	}

	if params.Search != "" {
		clause, args := orderSearchClause(params.Search)
		query = query.Where(clause, args...)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count orders: %w", err)
	}

	params.Page = utils.ClampPage(params.Page, total, params.Limit)

	allowedSortFields := []string{"created_at", "updated_at", "total_amount", "status"}
	query = utils.ApplySort(query, params.PaginationParams, allowedSortFields)
	query = utils.ApplyPagination(query, params.PaginationParams)

	var orders []models.Order
	if err := query.Find(&orders).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch orders: %w", err)
	}

	return orders, total, nil
}
