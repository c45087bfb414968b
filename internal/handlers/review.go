// internal/handlers/review.go
package handlers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/m-sowraj/alkarahm-admin/internal/i18n"
	"github.com/m-sowraj/alkarahm-admin/internal/services"
	"github.com/m-sowraj/alkarahm-admin/internal/utils"
)

type ReviewHandler struct {
	reviewService *services.ReviewService
}

func NewReviewHandler(reviewService *services.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService}
}

// GET /reviews
func (h *ReviewHandler) GetReviews(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	searchParams := services.ReviewSearchParams{
		PaginationParams: params,
	}

	if productIDStr := c.Query("product_id"); productIDStr != "" {
		if productID, err := uuid.Parse(productIDStr); err == nil {
			searchParams.ProductID = &productID
		}
	}

	if approvedStr := c.Query("is_approved"); approvedStr != "" {
		if approved, err := strconv.ParseBool(approvedStr); err == nil {
			searchParams.IsApproved = &approved
		}
	}

	reviews, total, err := h.reviewService.SearchReviews(searchParams)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	params.Page = utils.ClampPage(params.Page, total, params.Limit)
	result := utils.CreatePaginationResult(reviews, total, params)
	utils.PaginatedResponse(c, result)
}

// POST /reviews (public, storefront product page)
func (h *ReviewHandler) CreateReview(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req services.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	review, err := h.reviewService.CreateReview(&req)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			utils.NotFoundResponse(c, "product")
			return
		}
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyReviewCreated),
		"review":  review,
	})
}

// GET /products/:id/reviews (public, approved only)
func (h *ReviewHandler) GetProductReviews(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid product ID", nil)
		return
	}

	reviews, err := h.reviewService.ListApprovedReviews(productID)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"reviews": reviews,
	})
}

// PATCH /reviews/:id/approval
func (h *ReviewHandler) SetReviewApproval(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid review ID", nil)
		return
	}

	var req struct {
		IsApproved *bool `json:"is_approved" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "is_approved is required", nil)
		return
	}

	review, err := h.reviewService.SetApproved(id, *req.IsApproved)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			utils.NotFoundResponse(c, "review")
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyReviewUpdated),
		"review":  review,
	})
}

// DELETE /reviews/:id
func (h *ReviewHandler) DeleteReview(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid review ID", nil)
		return
	}

	if err := h.reviewService.DeleteReview(id); err != nil {
		if strings.Contains(err.Error(), "not found") {
			utils.NotFoundResponse(c, "review")
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyReviewDeleted),
	})
}
