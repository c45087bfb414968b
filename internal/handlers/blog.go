// internal/handlers/blog.go
package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/m-sowraj/alkarahm-admin/internal/i18n"
	"github.com/m-sowraj/alkarahm-admin/internal/models"
	"github.com/m-sowraj/alkarahm-admin/internal/services"
	"github.com/m-sowraj/alkarahm-admin/internal/utils"
)

type BlogHandler struct {
	blogService *services.BlogService
}

func NewBlogHandler(blogService *services.BlogService) *BlogHandler {
	return &BlogHandler{blogService: blogService}
}

// GET /blogs
func (h *BlogHandler) GetBlogPosts(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	searchParams := services.BlogSearchParams{
		PaginationParams: params,
	}

	if category := c.Query("category"); category != "" {
		blogCategory := models.BlogCategory(category)
		searchParams.Category = &blogCategory
	}

	posts, total, err := h.blogService.SearchBlogPosts(searchParams)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	params.Page = utils.ClampPage(params.Page, total, params.Limit)
	result := utils.CreatePaginationResult(posts, total, params)
	utils.PaginatedResponse(c, result)
}

// POST /blogs
func (h *BlogHandler) CreateBlogPost(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req services.CreateBlogPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	post, err := h.blogService.CreateBlogPost(&req)
	if err != nil {
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyBlogCreated),
		"blog":    post,
	})
}

// GET /blogs/:id
func (h *BlogHandler) GetBlogPost(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid blog post ID", nil)
		return
	}

	post, err := h.blogService.GetBlogPost(id)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			utils.NotFoundResponse(c, "blog")
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"blog": post,
	})
}

// PUT /blogs/:id
func (h *BlogHandler) UpdateBlogPost(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid blog post ID", nil)
		return
	}

	var req services.UpdateBlogPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	post, err := h.blogService.UpdateBlogPost(id, &req)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			utils.NotFoundResponse(c, "blog")
			return
		}
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyBlogUpdated),
		"blog":    post,
	})
}

// DELETE /blogs/:id
func (h *BlogHandler) DeleteBlogPost(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid blog post ID", nil)
		return
	}

	if err := h.blogService.DeleteBlogPost(id); err != nil {
		if strings.Contains(err.Error(), "not found") {
			utils.NotFoundResponse(c, "blog")
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyBlogDeleted),
	})
}
