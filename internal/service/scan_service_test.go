package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"insdocs/internal/domain"
	"insdocs/internal/port"
	"insdocs/internal/service"
	"insdocs/mocks"

	_ "insdocs/internal/parser/debitnote"
	_ "insdocs/internal/parser/renewal"
	_ "insdocs/internal/parser/statement"
)

func TestScanService_Scan_DebitNote(t *testing.T) {
	recognizer := new(mocks.MockTextRecognizer)
	svc := service.NewScanService(recognizer)

	text := "DEBIT NOTE\nPOLICY NO: ABC-1234567890\nDATE: 15 November 2025\n"
	recognizer.On("Recognize", mock.Anything, mock.MatchedBy(func(in port.RecognizeInput) bool {
		return in.FileType == domain.FileTypePDF
	})).Return(&port.RecognizeOutput{Text: text, Pages: 1}, nil)

	out, err := svc.Scan(context.Background(), service.ScanInput{
		Data:     []byte("%PDF-1.4 fake"),
		FileName: "note.pdf",
		DocType:  domain.DocTypeDebitNote,
	})

	assert.NoError(t, err)
	assert.Equal(t, 1, out.Pages)
	assert.Equal(t, text, out.RawText)
	assert.NotNil(t, out.Document.DebitNote)
	assert.Equal(t, "ABC-1234567890", out.Document.DebitNote.PolicyNumber)
	assert.Equal(t, "2025-11-15", out.Document.DebitNote.IssueDate)

	recognizer.AssertExpectations(t)
}

func TestScanService_Scan_AppendsValidationWarnings(t *testing.T) {
	recognizer := new(mocks.MockTextRecognizer)
	svc := service.NewScanService(recognizer)

	// No recognizable fields at all.
	recognizer.On("Recognize", mock.Anything, mock.Anything).
		Return(&port.RecognizeOutput{Text: "illegible scan", Pages: 1}, nil)

	out, err := svc.Scan(context.Background(), service.ScanInput{
		Data:    []byte("%PDF-1.4 fake"),
		DocType: domain.DocTypeDebitNote,
	})

	assert.NoError(t, err)
	assert.Contains(t, out.Document.DebitNote.Warnings, "Issue date could not be read.")
	assert.Contains(t, out.Document.DebitNote.Warnings, "Policy number could not be read.")
}

func TestScanService_Scan_EmptyFile(t *testing.T) {
	svc := service.NewScanService(new(mocks.MockTextRecognizer))

	_, err := svc.Scan(context.Background(), service.ScanInput{
		Data:    nil,
		DocType: domain.DocTypeDebitNote,
	})
	assert.ErrorIs(t, err, domain.ErrRecognitionFailed)
}

func TestScanService_Scan_TooLarge(t *testing.T) {
	svc := service.NewScanService(new(mocks.MockTextRecognizer))

	_, err := svc.Scan(context.Background(), service.ScanInput{
		Data:    make([]byte, service.MaxScanSize+1),
		DocType: domain.DocTypeDebitNote,
	})
	assert.ErrorIs(t, err, domain.ErrFileTooLarge)
}

func TestScanService_Scan_RecognitionFailure(t *testing.T) {
	recognizer := new(mocks.MockTextRecognizer)
	svc := service.NewScanService(recognizer)

	recognizer.On("Recognize", mock.Anything, mock.Anything).
		Return(nil, assert.AnError)

	_, err := svc.Scan(context.Background(), service.ScanInput{
		Data:    []byte("%PDF-1.4 fake"),
		DocType: domain.DocTypeAccountStatement,
	})
	assert.ErrorIs(t, err, domain.ErrRecognitionFailed)
}

func TestScanService_Scan_UnsupportedDocType(t *testing.T) {
	recognizer := new(mocks.MockTextRecognizer)
	svc := service.NewScanService(recognizer)

	recognizer.On("Recognize", mock.Anything, mock.Anything).
		Return(&port.RecognizeOutput{Text: "some text", Pages: 1}, nil)

	_, err := svc.Scan(context.Background(), service.ScanInput{
		Data:    []byte("%PDF-1.4 fake"),
		DocType: domain.DocumentType("invoice"),
	})
	assert.ErrorIs(t, err, domain.ErrUnsupportedDocumentType)
}
