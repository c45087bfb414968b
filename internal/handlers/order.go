// internal/handlers/order.go
package handlers

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/m-sowraj/alkarahm-admin/internal/i18n"
	"github.com/m-sowraj/alkarahm-admin/internal/models"
	"github.com/m-sowraj/alkarahm-admin/internal/services"
	"github.com/m-sowraj/alkarahm-admin/internal/utils"
)

type OrderHandler struct {
	orderService *services.OrderService
}

func NewOrderHandler(orderService *services.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// GET /orders
func (h *OrderHandler) GetOrders(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	searchParams := services.OrderSearchParams{
		PaginationParams: params,
	}

	if status := c.Query("status"); status != "" {
		orderStatus := models.OrderStatus(status)
		searchParams.Status = &orderStatus
	}

	if userIDStr := c.Query("user_id"); userIDStr != "" {
		if userID, err := uuid.Parse(userIDStr); err == nil {
			searchParams.UserID = &userID
		}
	}

	if paymentMethod := c.Query("payment_method"); paymentMethod != "" {
		searchParams.PaymentMethod = paymentMethod
	}

	if afterStr := c.Query("created_after"); afterStr != "" {
		if after, err := time.Parse(time.RFC3339, afterStr); err == nil {
			searchParams.CreatedAfter = &after
		}
	}

	if beforeStr := c.Query("created_before"); beforeStr != "" {
		if before, err := time.Parse(time.RFC3339, beforeStr); err == nil {
			searchParams.CreatedBefore = &before
		}
	}

	orders, total, err := h.orderService.SearchOrders(searchParams)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	params.Page = utils.ClampPage(params.Page, total, params.Limit)
	result := utils.CreatePaginationResult(orders, total, params)
	utils.PaginatedResponse(c, result)
}

// POST /orders
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req services.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	order, err := h.orderService.CreateOrder(&req)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			utils.NotFoundResponse(c, "user")
			return
		}
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"order": order,
	})
}

// GET /orders/:id
func (h *OrderHandler) GetOrder(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid order ID", nil)
		return
	}

	order, err := h.orderService.GetOrder(id)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			utils.NotFoundResponse(c, "order")
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"order": order,
	})
}

// PATCH /orders/:id/status
func (h *OrderHandler) UpdateOrderStatus(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid order ID", nil)
		return
	}

	var req struct {
		Status models.OrderStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "status is required", nil)
		return
	}

	order, err := h.orderService.UpdateStatus(id, req.Status)
	if err != nil {
		if strings.Contains(err.Error(), "invalid order status") {
			utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyOrderInvalidStatus), nil)
			return
		}
		if strings.Contains(err.Error(), "not found") {
			utils.NotFoundResponse(c, "order")
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyOrderUpdated),
		"order":   order,
	})
}
