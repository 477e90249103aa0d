package handler

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"insdocs/internal/service"
)

// FileHandler serves stored source files of document records.
type FileHandler struct {
	fileService service.FileService
}

// NewFileHandler creates a new FileHandler.
func NewFileHandler(fileService service.FileService) *FileHandler {
	return &FileHandler{fileService: fileService}
}

// Download handles GET /api/v1/documents/:type/:id/file
func (h *FileHandler) Download(c *gin.Context) {
	docType, ok := parseDocType(c)
	if !ok {
		return
	}
	id, ok := parseDocID(c)
	if !ok {
		return
	}

	stored, err := h.fileService.Open(c.Request.Context(), docType, id)
	if err != nil {
		HandleError(c, err)
		return
	}
	defer func() { _ = stored.Stream.Body.Close() }()

	extraHeaders := map[string]string{
		"Content-Disposition": fmt.Sprintf("attachment; filename=%q", stored.Name),
	}
	c.DataFromReader(200, stored.Size, stored.ContentType, stored.Stream.Body, extraHeaders)
}

// Preview handles GET /api/v1/documents/:type/:id/preview
func (h *FileHandler) Preview(c *gin.Context) {
	docType, ok := parseDocType(c)
	if !ok {
		return
	}
	id, ok := parseDocID(c)
	if !ok {
		return
	}

	url, err := h.fileService.PresignURL(c.Request.Context(), docType, id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"preview_url": url})
}
