// internal/handlers/upload.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/m-sowraj/alkarahm-admin/internal/i18n"
	"github.com/m-sowraj/alkarahm-admin/internal/services"
	"github.com/m-sowraj/alkarahm-admin/internal/utils"
)

type UploadHandler struct {
	storageService *services.StorageService
}

func NewUploadHandler(storageService *services.StorageService) *UploadHandler {
	return &UploadHandler{storageService: storageService}
}

// POST /uploads/:folder
//
// Single-image upload used by the category, blog and settings forms. The
// folder segment picks the size and type limits.
func (h *UploadHandler) UploadImage(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	folder := c.Param("folder")

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

	options := h.storageService.GetDefaultUploadOptions(folder)
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

// DELETE /uploads
func (h *UploadHandler) DeleteImage(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req struct {
		URL string `json:"url" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "url is required", nil)
		return
	}

	if err := h.storageService.DeleteFileByURL(req.URL); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyFileUploadFailed), err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeySuccess),
	})
}
