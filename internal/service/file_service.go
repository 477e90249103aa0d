package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"insdocs/internal/config"
	"insdocs/internal/domain"
	"insdocs/internal/port"
)

// StoredFile describes the attachment of a document record.
type StoredFile struct {
	Name        string
	ContentType string
	Size        int64
	Stream      *port.DownloadOutput
}

// FileService serves the source files stored alongside document records.
type FileService interface {
	Open(ctx context.Context, docType domain.DocumentType, id uuid.UUID) (*StoredFile, error)
	PresignURL(ctx context.Context, docType domain.DocumentType, id uuid.UUID) (string, error)
}

type fileService struct {
	debitNoteRepo port.DebitNoteRepository
	statementRepo port.AccountStatementRepository
	renewalRepo   port.RenewalNoticeRepository
	storage       port.ObjectStorage
	s3cfg         *config.S3Config
}

// NewFileService creates a FileService over the per-type repositories and
// object storage.
func NewFileService(
	debitNoteRepo port.DebitNoteRepository,
	statementRepo port.AccountStatementRepository,
	renewalRepo port.RenewalNoticeRepository,
	storage port.ObjectStorage,
	s3cfg *config.S3Config,
) FileService {
	return &fileService{
		debitNoteRepo: debitNoteRepo,
		statementRepo: statementRepo,
		renewalRepo:   renewalRepo,
		storage:       storage,
		s3cfg:         s3cfg,
	}
}

func (s *fileService) Open(ctx context.Context, docType domain.DocumentType, id uuid.UUID) (*StoredFile, error) {
	key, name, err := s.resolve(ctx, docType, id)
	if err != nil {
		return nil, err
	}
	out, err := s.storage.Download(ctx, s.s3cfg.Bucket, key)
	if err != nil {
		return nil, fmt.Errorf("file.Open: %w", err)
	}
	return &StoredFile{
		Name:        name,
		ContentType: out.ContentType,
		Size:        out.Size,
		Stream:      out,
	}, nil
}

func (s *fileService) PresignURL(ctx context.Context, docType domain.DocumentType, id uuid.UUID) (string, error) {
	key, _, err := s.resolve(ctx, docType, id)
	if err != nil {
		return "", err
	}
	url, err := s.storage.GetPresignedURL(ctx, s.s3cfg.Bucket, key, s.s3cfg.PresignExpiry)
	if err != nil {
		return "", fmt.Errorf("file.PresignURL: %w", err)
	}
	return url, nil
}

// resolve finds the object key and original file name for a document. A
// record without an attachment resolves to ErrNotFound.
func (s *fileService) resolve(ctx context.Context, docType domain.DocumentType, id uuid.UUID) (key, name string, err error) {
	switch docType {
	case domain.DocTypeDebitNote:
		note, err := s.debitNoteRepo.GetByID(ctx, id)
		if err != nil {
			return "", "", err
		}
		key, name = note.FileKey, note.FileName
	case domain.DocTypeAccountStatement:
		stmt, err := s.statementRepo.GetByID(ctx, id)
		if err != nil {
			return "", "", err
		}
		key, name = stmt.FileKey, stmt.FileName
	case domain.DocTypeRenewalNotice:
		notice, err := s.renewalRepo.GetByID(ctx, id)
		if err != nil {
			return "", "", err
		}
		key, name = notice.FileKey, notice.FileName
	default:
		return "", "", fmt.Errorf("file.resolve: %w: %q", domain.ErrUnsupportedDocumentType, docType)
	}
	if key == "" {
		return "", "", domain.ErrNotFound
	}
	return key, name, nil
}
