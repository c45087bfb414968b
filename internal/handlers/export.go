// internal/handlers/export.go
package handlers

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/m-sowraj/alkarahm-admin/internal/models"
	"github.com/m-sowraj/alkarahm-admin/internal/services"
	"github.com/m-sowraj/alkarahm-admin/internal/utils"
)

// ExportHandler streams the current list view as an xlsx attachment. Each
// endpoint accepts the same query filters as its list counterpart, so the
// download matches what the table shows.
type ExportHandler struct {
	exportService *services.ExportService
}

func NewExportHandler(exportService *services.ExportService) *ExportHandler {
	return &ExportHandler{exportService: exportService}
}

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// writeAttachment sends a finished workbook. The attachment headers only go
// out once the export succeeded, so a failed export still returns a plain
// JSON error response.
func writeAttachment(c *gin.Context, entity string, workbook []byte) {
	filename := services.ExportFilename(entity)
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, xlsxContentType, workbook)
}

// GET /export/products
func (h *ExportHandler) ExportProducts(c *gin.Context) {
	params := services.ProductSearchParams{
		PaginationParams: utils.GetPaginationParams(c),
	}

	if categoryIDStr := c.Query("category_id"); categoryIDStr != "" {
		if categoryID, err := uuid.Parse(categoryIDStr); err == nil {
			params.CategoryID = &categoryID
		}
	}
	if activeStr := c.Query("is_active"); activeStr != "" {
		if active, err := strconv.ParseBool(activeStr); err == nil {
			params.IsActive = &active
		}
	}
	if featuredStr := c.Query("is_featured"); featuredStr != "" {
		if featured, err := strconv.ParseBool(featuredStr); err == nil {
			params.IsFeatured = &featured
		}
	}
	if tags := c.Query("tags"); tags != "" {
		params.Tags = strings.Split(tags, ",")
	}

	var buf bytes.Buffer
	if err := h.exportService.ExportProducts(&buf, params); err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}
	writeAttachment(c, "products", buf.Bytes())
}

// GET /export/orders
func (h *ExportHandler) ExportOrders(c *gin.Context) {
	params := services.OrderSearchParams{
		PaginationParams: utils.GetPaginationParams(c),
	}

	if status := c.Query("status"); status != "" {
		orderStatus := models.OrderStatus(status)
		params.Status = &orderStatus
	}
	if paymentMethod := c.Query("payment_method"); paymentMethod != "" {
		params.PaymentMethod = paymentMethod
	}
	if afterStr := c.Query("created_after"); afterStr != "" {
		if after, err := time.Parse(time.RFC3339, afterStr); err == nil {
			params.CreatedAfter = &after
		}
	}
	if beforeStr := c.Query("created_before"); beforeStr != "" {
		if before, err := time.Parse(time.RFC3339, beforeStr); err == nil {
			params.CreatedBefore = &before
		}
	}

	var buf bytes.Buffer
	if err := h.exportService.ExportOrders(&buf, params); err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}
	writeAttachment(c, "orders", buf.Bytes())
}

// GET /export/users
func (h *ExportHandler) ExportUsers(c *gin.Context) {
	params := services.UserSearchParams{
		PaginationParams: utils.GetPaginationParams(c),
	}

	if role := c.Query("role"); role != "" {
		userRole := models.UserRole(role)
		params.Role = &userRole
	}
	if method := c.Query("sign_in_method"); method != "" {
		signInMethod := models.SignInMethod(method)
		params.SignInMethod = &signInMethod
	}

	var buf bytes.Buffer
	if err := h.exportService.ExportUsers(&buf, params); err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}
	writeAttachment(c, "users", buf.Bytes())
}

// GET /export/categories
func (h *ExportHandler) ExportCategories(c *gin.Context) {
	params := services.CategorySearchParams{
		PaginationParams: utils.GetPaginationParams(c),
	}

	if activeStr := c.Query("is_active"); activeStr != "" {
		if active, err := strconv.ParseBool(activeStr); err == nil {
			params.IsActive = &active
		}
	}

	var buf bytes.Buffer
	if err := h.exportService.ExportCategories(&buf, params); err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}
	writeAttachment(c, "categories", buf.Bytes())
}

// GET /export/blogs
func (h *ExportHandler) ExportBlogPosts(c *gin.Context) {
	params := services.BlogSearchParams{
		PaginationParams: utils.GetPaginationParams(c),
	}

	if category := c.Query("category"); category != "" {
		blogCategory := models.BlogCategory(category)
		params.Category = &blogCategory
	}

	var buf bytes.Buffer
	if err := h.exportService.ExportBlogPosts(&buf, params); err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}
	writeAttachment(c, "blogs", buf.Bytes())
}
