package service_test

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"insdocs/internal/domain"
	"insdocs/internal/port"
	"insdocs/internal/service"
	"insdocs/mocks"
)

func newFileService() (service.FileService, *docServiceMocks) {
	m := &docServiceMocks{
		debitNotes: new(mocks.MockDebitNoteRepo),
		statements: new(mocks.MockAccountStatementRepo),
		renewals:   new(mocks.MockRenewalNoticeRepo),
		storage:    new(mocks.MockObjectStorage),
	}
	svc := service.NewFileService(m.debitNotes, m.statements, m.renewals, m.storage, testS3Config())
	return svc, m
}

func TestFileService_Open_Success(t *testing.T) {
	svc, m := newFileService()

	id := uuid.New()
	note := &domain.DebitNote{
		ID:       id,
		FileKey:  "debit_note/" + id.String() + "/note.pdf",
		FileName: "note.pdf",
	}
	m.debitNotes.On("GetByID", mock.Anything, id).Return(note, nil)
	m.storage.On("Download", mock.Anything, "test-bucket", note.FileKey).Return(&port.DownloadOutput{
		Body:        io.NopCloser(strings.NewReader("%PDF-1.4")),
		ContentType: "application/pdf",
		Size:        8,
	}, nil)

	stored, err := svc.Open(context.Background(), domain.DocTypeDebitNote, id)

	assert.NoError(t, err)
	assert.Equal(t, "note.pdf", stored.Name)
	assert.Equal(t, "application/pdf", stored.ContentType)
	assert.Equal(t, int64(8), stored.Size)

	body, _ := io.ReadAll(stored.Stream.Body)
	assert.Equal(t, "%PDF-1.4", string(body))

	m.debitNotes.AssertExpectations(t)
	m.storage.AssertExpectations(t)
}

func TestFileService_Open_NoAttachment(t *testing.T) {
	svc, m := newFileService()

	id := uuid.New()
	m.statements.On("GetByID", mock.Anything, id).Return(&domain.AccountStatement{ID: id}, nil)

	_, err := svc.Open(context.Background(), domain.DocTypeAccountStatement, id)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	m.storage.AssertNotCalled(t, "Download", mock.Anything, mock.Anything, mock.Anything)
}

func TestFileService_Open_UnknownType(t *testing.T) {
	svc, _ := newFileService()

	_, err := svc.Open(context.Background(), domain.DocumentType("invoice"), uuid.New())
	assert.ErrorIs(t, err, domain.ErrUnsupportedDocumentType)
}

func TestFileService_PresignURL(t *testing.T) {
	svc, m := newFileService()

	id := uuid.New()
	notice := &domain.RenewalNotice{
		ID:      id,
		FileKey: "renewal_notice/" + id.String() + "/notice.pdf",
	}
	m.renewals.On("GetByID", mock.Anything, id).Return(notice, nil)
	m.storage.On("GetPresignedURL", mock.Anything, "test-bucket", notice.FileKey, int64(3600)).
		Return("https://s3.example.com/signed", nil)

	url, err := svc.PresignURL(context.Background(), domain.DocTypeRenewalNotice, id)

	assert.NoError(t, err)
	assert.Equal(t, "https://s3.example.com/signed", url)
	m.storage.AssertExpectations(t)
}
