package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"insdocs/internal/config"
	"insdocs/internal/domain"
	"insdocs/internal/port"
	"insdocs/internal/service"
	"insdocs/mocks"
)

func testS3Config() *config.S3Config {
	return &config.S3Config{
		Bucket:        "test-bucket",
		MaxFileSizeMB: 1,
		PresignExpiry: 3600,
	}
}

type docServiceMocks struct {
	debitNotes *mocks.MockDebitNoteRepo
	statements *mocks.MockAccountStatementRepo
	renewals   *mocks.MockRenewalNoticeRepo
	summaries  *mocks.MockDocumentSummaryRepo
	storage    *mocks.MockObjectStorage
}

func newDocService() (service.DocumentService, *docServiceMocks) {
	m := &docServiceMocks{
		debitNotes: new(mocks.MockDebitNoteRepo),
		statements: new(mocks.MockAccountStatementRepo),
		renewals:   new(mocks.MockRenewalNoticeRepo),
		summaries:  new(mocks.MockDocumentSummaryRepo),
		storage:    new(mocks.MockObjectStorage),
	}
	svc := service.NewDocumentService(m.debitNotes, m.statements, m.renewals, m.summaries, m.storage, testS3Config())
	return svc, m
}

func TestDocumentService_CreateDebitNote_NoAttachment(t *testing.T) {
	svc, m := newDocService()

	m.debitNotes.On("Create", mock.Anything, mock.AnythingOfType("*domain.DebitNote")).Return(nil)

	created, err := svc.CreateDebitNote(context.Background(), &service.CreateDebitNoteInput{
		Note: domain.DebitNote{
			PolicyNumber: "ABC-1234567890",
			UploadedBy:   "ops@test.com",
		},
	})

	assert.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.False(t, created.CreatedAt.IsZero())
	assert.Empty(t, created.FileKey)

	m.debitNotes.AssertExpectations(t)
	m.storage.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything)
}

func TestDocumentService_CreateDebitNote_WithAttachment(t *testing.T) {
	svc, m := newDocService()

	m.storage.On("Upload", mock.Anything, mock.MatchedBy(func(in port.UploadInput) bool {
		return in.Bucket == "test-bucket" && in.ContentType == "application/pdf"
	})).Return(&port.UploadOutput{Location: "https://s3/test"}, nil)
	m.debitNotes.On("Create", mock.Anything, mock.AnythingOfType("*domain.DebitNote")).Return(nil)

	created, err := svc.CreateDebitNote(context.Background(), &service.CreateDebitNoteInput{
		Note: domain.DebitNote{PolicyNumber: "ABC-1234567890"},
		File: &service.FileAttachment{Name: "note.pdf", Data: []byte("%PDF-1.4")},
	})

	assert.NoError(t, err)
	assert.Equal(t, "note.pdf", created.FileName)
	assert.Contains(t, created.FileKey, "debit_note/")
	assert.Contains(t, created.FileKey, "note.pdf")

	m.storage.AssertExpectations(t)
	m.debitNotes.AssertExpectations(t)
}

func TestDocumentService_CreateDebitNote_AttachmentTooLarge(t *testing.T) {
	svc, _ := newDocService()

	_, err := svc.CreateDebitNote(context.Background(), &service.CreateDebitNoteInput{
		Note: domain.DebitNote{},
		File: &service.FileAttachment{Name: "note.pdf", Data: make([]byte, 2<<20)},
	})
	assert.ErrorIs(t, err, domain.ErrFileTooLarge)
}

func TestDocumentService_CreateDebitNote_UnsupportedAttachment(t *testing.T) {
	svc, _ := newDocService()

	_, err := svc.CreateDebitNote(context.Background(), &service.CreateDebitNoteInput{
		Note: domain.DebitNote{},
		File: &service.FileAttachment{Name: "note.exe", Data: []byte("MZ")},
	})
	assert.ErrorIs(t, err, domain.ErrUnsupportedFileType)
}

func TestDocumentService_CreateDebitNote_RepoFailureCleansUpObject(t *testing.T) {
	svc, m := newDocService()

	m.storage.On("Upload", mock.Anything, mock.Anything).
		Return(&port.UploadOutput{}, nil)
	m.debitNotes.On("Create", mock.Anything, mock.Anything).Return(assert.AnError)
	m.storage.On("Delete", mock.Anything, "test-bucket", mock.AnythingOfType("string")).Return(nil)

	_, err := svc.CreateDebitNote(context.Background(), &service.CreateDebitNoteInput{
		Note: domain.DebitNote{},
		File: &service.FileAttachment{Name: "note.pdf", Data: []byte("%PDF-1.4")},
	})

	assert.Error(t, err)
	m.storage.AssertExpectations(t)
}

func TestDocumentService_UpdateAccountStatement_PreservesAttachment(t *testing.T) {
	svc, m := newDocService()

	id := uuid.New()
	existing := &domain.AccountStatement{
		ID:       id,
		FileKey:  "account_statement/" + id.String() + "/stmt.pdf",
		FileName: "stmt.pdf",
	}
	m.statements.On("GetByID", mock.Anything, id).Return(existing, nil)
	m.statements.On("Update", mock.Anything, mock.MatchedBy(func(s *domain.AccountStatement) bool {
		return s.FileKey == existing.FileKey && s.FileName == "stmt.pdf"
	})).Return(nil)

	_, err := svc.UpdateAccountStatement(context.Background(), &domain.AccountStatement{
		ID:            id,
		AccountNumber: "H0123456",
	})

	assert.NoError(t, err)
	m.statements.AssertExpectations(t)
}

func TestDocumentService_UpdateRenewalNotice_NotFound(t *testing.T) {
	svc, m := newDocService()

	id := uuid.New()
	m.renewals.On("GetByID", mock.Anything, id).Return(nil, domain.ErrNotFound)

	_, err := svc.UpdateRenewalNotice(context.Background(), &domain.RenewalNotice{ID: id})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDocumentService_DeleteRenewalNotice_RemovesStoredObject(t *testing.T) {
	svc, m := newDocService()

	id := uuid.New()
	existing := &domain.RenewalNotice{
		ID:      id,
		FileKey: "renewal_notice/" + id.String() + "/notice.pdf",
	}
	m.renewals.On("GetByID", mock.Anything, id).Return(existing, nil)
	m.renewals.On("Delete", mock.Anything, id).Return(nil)
	m.storage.On("Delete", mock.Anything, "test-bucket", existing.FileKey).Return(nil)

	err := svc.DeleteRenewalNotice(context.Background(), id)

	assert.NoError(t, err)
	m.renewals.AssertExpectations(t)
	m.storage.AssertExpectations(t)
}

func TestDocumentService_ListSummaries_PassesTypeThrough(t *testing.T) {
	svc, m := newDocService()

	docType := domain.DocTypeDebitNote
	rows := []domain.DocumentSummary{{DocType: docType, PolicyNumber: "ABC-1234567890"}}
	m.summaries.On("List", mock.Anything, &docType, mock.Anything).Return(rows, 1, nil)

	got, total, err := svc.ListSummaries(context.Background(), &docType, port.ListQuery{Limit: 20})

	assert.NoError(t, err)
	assert.Equal(t, 1, total)
	assert.Equal(t, rows, got)
	m.summaries.AssertExpectations(t)
}
