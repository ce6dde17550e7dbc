// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/kas-sigmafam/backend/internal/application/adapter"
	"github.com/kas-sigmafam/backend/internal/integration/entrypoint/dto"
)

// maxReceiptSize caps receipt uploads at 5 MiB.
const maxReceiptSize = 5 << 20

// allowedReceiptExts lists the accepted receipt image extensions.
var allowedReceiptExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
	".pdf":  true,
}

// UploadController handles receipt upload endpoints.
type UploadController struct {
	storage adapter.ReceiptStorage
}

// NewUploadController creates a new upload controller instance.
func NewUploadController(storage adapter.ReceiptStorage) *UploadController {
	return &UploadController{
		storage: storage,
	}
}

// UploadReceipt handles POST /uploads/receipts multipart requests. The file
// must be sent in the "file" form field.
func (c *UploadController) UploadReceipt(ctx *gin.Context) {
	header, err := ctx.FormFile("file")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "A file form field is required",
		})
		return
	}

	if header.Size > maxReceiptSize {
		ctx.JSON(http.StatusRequestEntityTooLarge, dto.ErrorResponse{
			Error: "Receipt file exceeds the 5MB limit",
		})
		return
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !allowedReceiptExts[ext] {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Unsupported receipt file type",
		})
		return
	}

	file, err := header.Open()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to read uploaded file",
		})
		return
	}
	defer file.Close()

	url, err := c.storage.Save(ctx.Request.Context(), ext, file)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to store receipt file",
		})
		return
	}

	ctx.JSON(http.StatusCreated, dto.UploadReceiptResponse{URL: url})
}
