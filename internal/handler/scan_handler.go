package handler

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"insdocs/internal/domain"
	"insdocs/internal/service"
)

// ScanHandler handles the stateless scan endpoint.
type ScanHandler struct {
	scanService service.ScanService
}

// NewScanHandler creates a new ScanHandler.
func NewScanHandler(scanService service.ScanService) *ScanHandler {
	return &ScanHandler{scanService: scanService}
}

// Scan handles POST /api/v1/scan
func (h *ScanHandler) Scan(c *gin.Context) {
	docType := domain.DocumentType(c.PostForm("doc_type"))
	if !docType.Valid() {
		HandleError(c, domain.ErrUnsupportedDocumentType)
		return
	}

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "MISSING_FILE", "file field is required")
		return
	}
	defer func() { _ = file.Close() }()

	// Read one byte past the cap so oversized uploads are detected without
	// buffering the whole body.
	data, err := io.ReadAll(io.LimitReader(file, service.MaxScanSize+1))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "READ_FAILED", "could not read uploaded file")
		return
	}

	out, err := h.scanService.Scan(c.Request.Context(), service.ScanInput{
		Data:     data,
		FileName: header.Filename,
		DocType:  docType,
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, out)
}
