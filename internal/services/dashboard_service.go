// internal/services/dashboard_service.go
package services

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/m-sowraj/alkarahm-admin/internal/models"
)

type DashboardService struct {
	db *gorm.DB
}

type DashboardStats struct {
	TotalProducts    int64                  `json:"total_products"`
	ActiveProducts   int64                  `json:"active_products"`
	TotalCategories  int64                  `json:"total_categories"`
	TotalOrders      int64                  `json:"total_orders"`
	OrdersByStatus   map[string]int64       `json:"orders_by_status"`
	TotalRevenue     decimal.Decimal        `json:"total_revenue"`
	RevenueThisMonth decimal.Decimal        `json:"revenue_this_month"`
	TotalUsers       int64                  `json:"total_users"`
	NewUsersThisWeek int64                  `json:"new_users_this_week"`
	PendingReviews   int64                  `json:"pending_reviews"`
	OpenEnquiries    int64                  `json:"open_enquiries"`
	LowStockVariants []models.ProductVariant `json:"low_stock_variants"`
	RecentOrders     []models.Order          `json:"recent_orders"`
}

const lowStockThreshold = 5

func NewDashboardService(db *gorm.DB) *DashboardService {
	return &DashboardService{db: db}
}

func (s *DashboardService) GetStats() (*DashboardStats, error) {
	stats := &DashboardStats{
		OrdersByStatus: make(map[string]int64),
		TotalRevenue:   decimal.Zero,
	}

	if err := s.db.Model(&models.Product{}).Count(&stats.TotalProducts).Error; err != nil {
		return nil, fmt.Errorf("failed to count products: %w", err)
	}

	if err := s.db.Model(&models.Product{}).
		Where("is_active = ?", true).
		Count(&stats.ActiveProducts).Error; err != nil {
		return nil, fmt.Errorf("failed to count active products: %w", err)
	}

	if err := s.db.Model(&models.Category{}).Count(&stats.TotalCategories).Error; err != nil {
		return nil, fmt.Errorf("failed to count categories: %w", err)
	}

	if err := s.db.Model(&models.Order{}).Count(&stats.TotalOrders).Error; err != nil {
		return nil, fmt.Errorf("failed to count orders: %w", err)
	}

	var statusCounts []struct {
		Status string
		Count  int64
	}
	if err := s.db.Model(&models.Order{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&statusCounts).Error; err != nil {
		return nil, fmt.Errorf("failed to group orders by status: %w", err)
	}
	for _, sc := range statusCounts {
		stats.OrdersByStatus[sc.Status] = sc.Count
	}

	// Cancelled orders never count toward revenue
	var revenue struct {
		Total decimal.Decimal
	}
	if err := s.db.Model(&models.Order{}).
		Where("status <> ?", models.OrderStatusCancelled).
		Select("COALESCE(SUM(total_amount), 0) AS total").
		Scan(&revenue).Error; err != nil {
		return nil, fmt.Errorf("failed to sum revenue: %w", err)
	}
	stats.TotalRevenue = revenue.Total

	monthStart := time.Now().AddDate(0, 0, -30)
	var monthRevenue struct {
		Total decimal.Decimal
	}
	if err := s.db.Model(&models.Order{}).
		Where("status <> ? AND created_at >= ?", models.OrderStatusCancelled, monthStart).
		Select("COALESCE(SUM(total_amount), 0) AS total").
		Scan(&monthRevenue).Error; err != nil {
		return nil, fmt.Errorf("failed to sum monthly revenue: %w", err)
	}
	stats.RevenueThisMonth = monthRevenue.Total

	if err := s.db.Model(&models.User{}).Count(&stats.TotalUsers).Error; err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}

	weekStart := time.Now().AddDate(0, 0, -7)
	if err := s.db.Model(&models.User{}).
		Where("created_at >= ?", weekStart).
		Count(&stats.NewUsersThisWeek).Error; err != nil {
		return nil, fmt.Errorf("failed to count new users: %w", err)
	}

	if err := s.db.Model(&models.ProductReview{}).
		Where("is_approved = ?", false).
		Count(&stats.PendingReviews).Error; err != nil {
		return nil, fmt.Errorf("failed to count pending reviews: %w", err)
	}

	if err := s.db.Model(&models.Enquiry{}).Count(&stats.OpenEnquiries).Error; err != nil {
		return nil, fmt.Errorf("failed to count enquiries: %w", err)
	}

	if err := s.db.Where("is_active = ? AND stock <= ?", true, lowStockThreshold).
		Order("stock ASC").
		Limit(10).
		Find(&stats.LowStockVariants).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch low stock variants: %w", err)
	}

	if err := s.db.Preload("Items").Preload("User").
		Order("created_at DESC").
		Limit(5).
		Find(&stats.RecentOrders).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch recent orders: %w", err)
	}

	return stats, nil
}
