package handler_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/xuri/excelize/v2"

	"insdocs/internal/domain"
	"insdocs/internal/export"
	"insdocs/internal/handler"
	"insdocs/mocks"
)

func exportRequest(t *testing.T, query string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/export"+query, nil)
	return c, w
}

func exportRows() []domain.DocumentSummary {
	return []domain.DocumentSummary{
		{
			ID:           uuid.New(),
			DocType:      domain.DocTypeDebitNote,
			IssueDate:    "2025-11-15",
			PartyName:    "CHAN TAI MAN",
			PolicyNumber: "ABC-1234567890",
			CreatedAt:    time.Date(2025, 11, 16, 9, 0, 0, 0, time.UTC),
		},
	}
}

func TestExportHandler_CSV(t *testing.T) {
	docSvc := new(mocks.MockDocumentService)
	h := handler.NewExportHandler(docSvc)

	docSvc.On("ListSummaries", mock.Anything, (*domain.DocumentType)(nil), mock.Anything).
		Return(exportRows(), 1, nil)

	c, w := exportRequest(t, "?format=csv")
	h.Export(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "documents_")
	assert.Contains(t, w.Header().Get("Content-Disposition"), ".csv")

	body := w.Body.Bytes()
	assert.True(t, bytes.HasPrefix(body, export.BOM))

	text := string(bytes.TrimPrefix(body, export.BOM))
	lines := strings.Split(strings.TrimSpace(text), "\n")
	assert.Len(t, lines, 2)
	assert.Contains(t, lines[0], "Policy Number")
	assert.Contains(t, lines[1], "ABC-1234567890")
	assert.Contains(t, lines[1], "CHAN TAI MAN")
}

func TestExportHandler_XLSX(t *testing.T) {
	docSvc := new(mocks.MockDocumentService)
	h := handler.NewExportHandler(docSvc)

	docType := domain.DocTypeDebitNote
	docSvc.On("ListSummaries", mock.Anything, &docType, mock.Anything).
		Return(exportRows(), 1, nil)

	c, w := exportRequest(t, "?format=xlsx&type=debit_note")
	h.Export(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "debit_note_")
	assert.Contains(t, w.Header().Get("Content-Disposition"), ".xlsx")

	f, err := excelize.OpenReader(bytes.NewReader(w.Body.Bytes()))
	assert.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Documents")
	assert.NoError(t, err)
	assert.Len(t, rows, 2)
	assert.Equal(t, "Document Type", rows[0][0])
	assert.Equal(t, "debit_note", rows[1][0])
	assert.Equal(t, "ABC-1234567890", rows[1][4])
}

func TestExportHandler_BadFormat(t *testing.T) {
	docSvc := new(mocks.MockDocumentService)
	h := handler.NewExportHandler(docSvc)

	c, w := exportRequest(t, "?format=pdf")
	h.Export(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	docSvc.AssertNotCalled(t, "ListSummaries", mock.Anything, mock.Anything, mock.Anything)
}

func TestExportHandler_BadType(t *testing.T) {
	docSvc := new(mocks.MockDocumentService)
	h := handler.NewExportHandler(docSvc)

	c, w := exportRequest(t, "?type=invoice")
	h.Export(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
