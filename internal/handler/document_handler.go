package handler

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"insdocs/internal/domain"
	"insdocs/internal/middleware"
	"insdocs/internal/port"
	"insdocs/internal/service"
)

// DocumentHandler handles document record endpoints.
type DocumentHandler struct {
	docService service.DocumentService
}

// NewDocumentHandler creates a new DocumentHandler.
func NewDocumentHandler(docService service.DocumentService) *DocumentHandler {
	return &DocumentHandler{docService: docService}
}

// parseDocType validates the :type path parameter.
func parseDocType(c *gin.Context) (domain.DocumentType, bool) {
	docType := domain.DocumentType(c.Param("type"))
	if !docType.Valid() {
		HandleError(c, domain.ErrUnsupportedDocumentType)
		return "", false
	}
	return docType, true
}

func parseDocID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid document ID")
		return uuid.Nil, false
	}
	return id, true
}

// parseListQuery builds a ListQuery from the request's query string.
// Filters arrive as repeated filter=field:op:value parameters.
func parseListQuery(c *gin.Context) (port.ListQuery, bool) {
	var q port.ListQuery

	for _, raw := range c.QueryArray("filter") {
		parts := strings.SplitN(raw, ":", 3)
		if len(parts) != 3 {
			RespondError(c, http.StatusBadRequest, "INVALID_FILTER", "filter must be field:op:value")
			return q, false
		}
		q.Filters = append(q.Filters, port.Filter{
			Field: parts[0],
			Op:    port.FilterOp(parts[1]),
			Value: parts[2],
		})
	}

	q.SortBy = c.Query("sort_by")
	q.SortDesc = c.Query("sort_order") == "desc"

	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	q.Offset = offset
	q.Limit = limit
	return q, true
}

// readBody decodes the record either from a plain JSON body or from the
// "payload" field of a multipart form, returning the optional attachment.
func readBody(c *gin.Context, dst interface{}) (*service.FileAttachment, bool) {
	contentType := c.GetHeader("Content-Type")
	if !strings.HasPrefix(contentType, "multipart/form-data") {
		if err := c.ShouldBindJSON(dst); err != nil {
			RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
			return nil, false
		}
		return nil, true
	}

	payload := c.PostForm("payload")
	if payload == "" {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "payload field is required")
		return nil, false
	}
	if err := json.Unmarshal([]byte(payload), dst); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return nil, false
	}

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		// The attachment is optional.
		return nil, true
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(file)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "READ_FAILED", "could not read uploaded file")
		return nil, false
	}
	return &service.FileAttachment{Name: header.Filename, Data: data}, true
}

// Create handles POST /api/v1/documents/:type
func (h *DocumentHandler) Create(c *gin.Context) {
	docType, ok := parseDocType(c)
	if !ok {
		return
	}
	uploadedBy := middleware.GetEmail(c)

	switch docType {
	case domain.DocTypeDebitNote:
		var note domain.DebitNote
		file, ok := readBody(c, &note)
		if !ok {
			return
		}
		note.UploadedBy = uploadedBy
		created, err := h.docService.CreateDebitNote(c.Request.Context(), &service.CreateDebitNoteInput{Note: note, File: file})
		if err != nil {
			HandleError(c, err)
			return
		}
		RespondCreated(c, created)

	case domain.DocTypeAccountStatement:
		var stmt domain.AccountStatement
		file, ok := readBody(c, &stmt)
		if !ok {
			return
		}
		stmt.UploadedBy = uploadedBy
		created, err := h.docService.CreateAccountStatement(c.Request.Context(), &service.CreateAccountStatementInput{Statement: stmt, File: file})
		if err != nil {
			HandleError(c, err)
			return
		}
		RespondCreated(c, created)

	case domain.DocTypeRenewalNotice:
		var notice domain.RenewalNotice
		file, ok := readBody(c, &notice)
		if !ok {
			return
		}
		notice.UploadedBy = uploadedBy
		created, err := h.docService.CreateRenewalNotice(c.Request.Context(), &service.CreateRenewalNoticeInput{Notice: notice, File: file})
		if err != nil {
			HandleError(c, err)
			return
		}
		RespondCreated(c, created)
	}
}

// GetByID handles GET /api/v1/documents/:type/:id
func (h *DocumentHandler) GetByID(c *gin.Context) {
	docType, ok := parseDocType(c)
	if !ok {
		return
	}
	id, ok := parseDocID(c)
	if !ok {
		return
	}

	var (
		data interface{}
		err  error
	)
	switch docType {
	case domain.DocTypeDebitNote:
		data, err = h.docService.GetDebitNote(c.Request.Context(), id)
	case domain.DocTypeAccountStatement:
		data, err = h.docService.GetAccountStatement(c.Request.Context(), id)
	case domain.DocTypeRenewalNotice:
		data, err = h.docService.GetRenewalNotice(c.Request.Context(), id)
	}
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, data)
}

// List handles GET /api/v1/documents/:type
func (h *DocumentHandler) List(c *gin.Context) {
	docType, ok := parseDocType(c)
	if !ok {
		return
	}
	q, ok := parseListQuery(c)
	if !ok {
		return
	}

	var (
		data  interface{}
		total int
		err   error
	)
	switch docType {
	case domain.DocTypeDebitNote:
		data, total, err = h.docService.ListDebitNotes(c.Request.Context(), q)
	case domain.DocTypeAccountStatement:
		data, total, err = h.docService.ListAccountStatements(c.Request.Context(), q)
	case domain.DocTypeRenewalNotice:
		data, total, err = h.docService.ListRenewalNotices(c.Request.Context(), q)
	}
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondPaginated(c, data, PagMeta{Total: total, Offset: q.Offset, Limit: q.Limit})
}

// ListAll handles GET /api/v1/documents
func (h *DocumentHandler) ListAll(c *gin.Context) {
	q, ok := parseListQuery(c)
	if !ok {
		return
	}

	var docType *domain.DocumentType
	if t := c.Query("type"); t != "" {
		dt := domain.DocumentType(t)
		if !dt.Valid() {
			HandleError(c, domain.ErrUnsupportedDocumentType)
			return
		}
		docType = &dt
	}

	rows, total, err := h.docService.ListSummaries(c.Request.Context(), docType, q)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondPaginated(c, rows, PagMeta{Total: total, Offset: q.Offset, Limit: q.Limit})
}

// Update handles PUT /api/v1/documents/:type/:id
func (h *DocumentHandler) Update(c *gin.Context) {
	docType, ok := parseDocType(c)
	if !ok {
		return
	}
	id, ok := parseDocID(c)
	if !ok {
		return
	}

	var (
		data interface{}
		err  error
	)
	switch docType {
	case domain.DocTypeDebitNote:
		var note domain.DebitNote
		if bindErr := c.ShouldBindJSON(&note); bindErr != nil {
			RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", bindErr.Error())
			return
		}
		note.ID = id
		data, err = h.docService.UpdateDebitNote(c.Request.Context(), &note)
	case domain.DocTypeAccountStatement:
		var stmt domain.AccountStatement
		if bindErr := c.ShouldBindJSON(&stmt); bindErr != nil {
			RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", bindErr.Error())
			return
		}
		stmt.ID = id
		data, err = h.docService.UpdateAccountStatement(c.Request.Context(), &stmt)
	case domain.DocTypeRenewalNotice:
		var notice domain.RenewalNotice
		if bindErr := c.ShouldBindJSON(&notice); bindErr != nil {
			RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", bindErr.Error())
			return
		}
		notice.ID = id
		data, err = h.docService.UpdateRenewalNotice(c.Request.Context(), &notice)
	}
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, data)
}

// Delete handles DELETE /api/v1/documents/:type/:id
func (h *DocumentHandler) Delete(c *gin.Context) {
	docType, ok := parseDocType(c)
	if !ok {
		return
	}
	id, ok := parseDocID(c)
	if !ok {
		return
	}

	var err error
	switch docType {
	case domain.DocTypeDebitNote:
		err = h.docService.DeleteDebitNote(c.Request.Context(), id)
	case domain.DocTypeAccountStatement:
		err = h.docService.DeleteAccountStatement(c.Request.Context(), id)
	case domain.DocTypeRenewalNotice:
		err = h.docService.DeleteRenewalNotice(c.Request.Context(), id)
	}
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"message": "document deleted"})
}
