package handler

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"insdocs/internal/domain"
	"insdocs/internal/export"
	"insdocs/internal/service"
)

// ExportHandler streams document summary exports.
type ExportHandler struct {
	docService service.DocumentService
}

// NewExportHandler creates a new ExportHandler.
func NewExportHandler(docService service.DocumentService) *ExportHandler {
	return &ExportHandler{docService: docService}
}

// Export handles GET /api/v1/export
func (h *ExportHandler) Export(c *gin.Context) {
	format := c.DefaultQuery("format", "csv")
	if format != "csv" && format != "xlsx" {
		RespondError(c, http.StatusBadRequest, "INVALID_FORMAT", "format must be csv or xlsx")
		return
	}

	var docType *domain.DocumentType
	name := "documents"
	if t := c.Query("type"); t != "" {
		dt := domain.DocumentType(t)
		if !dt.Valid() {
			HandleError(c, domain.ErrUnsupportedDocumentType)
			return
		}
		docType = &dt
		name = t
	}

	q, ok := parseListQuery(c)
	if !ok {
		return
	}
	// Exports are not paginated.
	q.Offset = 0
	q.Limit = 0

	rows, _, err := h.docService.ListSummaries(c.Request.Context(), docType, q)
	if err != nil {
		HandleError(c, err)
		return
	}

	filename := export.BuildFilename(name, format)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	if format == "xlsx" {
		var buf bytes.Buffer
		if err := export.WriteXLSX(&buf, rows); err != nil {
			HandleError(c, err)
			return
		}
		c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
		return
	}

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Status(http.StatusOK)
	if _, err := c.Writer.Write(export.BOM); err != nil {
		return
	}
	w := export.NewWriter(c.Writer)
	if err := w.WriteHeader(); err != nil {
		return
	}
	if err := w.WriteSummaries(rows); err != nil {
		return
	}
	w.Flush()
}
