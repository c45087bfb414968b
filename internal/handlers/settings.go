// internal/handlers/settings.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/m-sowraj/alkarahm-admin/internal/i18n"
	"github.com/m-sowraj/alkarahm-admin/internal/services"
	"github.com/m-sowraj/alkarahm-admin/internal/utils"
)

type SettingsHandler struct {
	settingsService *services.SettingsService
	storageService  *services.StorageService
}

func NewSettingsHandler(settingsService *services.SettingsService, storageService *services.StorageService) *SettingsHandler {
	return &SettingsHandler{
		settingsService: settingsService,
		storageService:  storageService,
	}
}

// GET /settings
func (h *SettingsHandler) GetSettings(c *gin.Context) {
	settings, err := h.settingsService.GetSettings()
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"settings": settings,
	})
}

// PUT /settings
func (h *SettingsHandler) UpdateSettings(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req services.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	settings, err := h.settingsService.UpdateSettings(&req)
	if err != nil {
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message":  i18n.T(lang, i18n.KeySettingsUpdated),
		"settings": settings,
	})
}

// POST /settings/upload
func (h *SettingsHandler) UploadSettingsImage(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	fileHeader, err := c.FormFile("image")
	if err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyFileUploadFailed), err.Error())
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyFileUploadFailed), err.Error())
		return
	}
	defer file.Close()

	if err := h.storageService.ValidateImage(file); err != nil {
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	options := h.storageService.GetDefaultUploadOptions("settings")
	result, err := h.storageService.UploadFile(file, fileHeader, options)
	if err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyFileUploadFailed), err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyFileUploadSuccess),
		"image":   result,
	})
}
