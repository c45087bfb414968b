// internal/handlers/enquiry.go
package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/m-sowraj/alkarahm-admin/internal/i18n"
	"github.com/m-sowraj/alkarahm-admin/internal/services"
	"github.com/m-sowraj/alkarahm-admin/internal/utils"
)

type EnquiryHandler struct {
	enquiryService *services.EnquiryService
}

func NewEnquiryHandler(enquiryService *services.EnquiryService) *EnquiryHandler {
	return &EnquiryHandler{enquiryService: enquiryService}
}

// GET /enquiries
func (h *EnquiryHandler) GetEnquiries(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	searchParams := services.EnquirySearchParams{
		PaginationParams: params,
	}

	if enquiryType := c.Query("type"); enquiryType != "" {
		searchParams.Type = enquiryType
	}

	enquiries, total, err := h.enquiryService.SearchEnquiries(searchParams)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	params.Page = utils.ClampPage(params.Page, total, params.Limit)
	result := utils.CreatePaginationResult(enquiries, total, params)
	utils.PaginatedResponse(c, result)
}

// POST /enquiries (public, storefront contact form)
func (h *EnquiryHandler) CreateEnquiry(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req services.CreateEnquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	enquiry, err := h.enquiryService.CreateEnquiry(&req)
	if err != nil {
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyEnquiryCreated),
		"enquiry": enquiry,
	})
}

// GET /enquiries/:id
func (h *EnquiryHandler) GetEnquiry(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid enquiry ID", nil)
		return
	}

	enquiry, err := h.enquiryService.GetEnquiry(id)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			utils.NotFoundResponse(c, "enquiry")
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"enquiry": enquiry,
	})
}

// DELETE /enquiries/:id
func (h *EnquiryHandler) DeleteEnquiry(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid enquiry ID", nil)
		return
	}

	if err := h.enquiryService.DeleteEnquiry(id); err != nil {
		if strings.Contains(err.Error(), "not found") {
			utils.NotFoundResponse(c, "enquiry")
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyEnquiryDeleted),
	})
}
