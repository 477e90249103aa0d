package service

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"insdocs/internal/config"
	"insdocs/internal/domain"
	"insdocs/internal/port"
)

// FileAttachment is an optional source file stored alongside a created
// document record.
type FileAttachment struct {
	Name string
	Data []byte
}

// CreateDebitNoteInput is the DTO for persisting a reviewed debit note.
type CreateDebitNoteInput struct {
	Note domain.DebitNote
	File *FileAttachment
}

// CreateAccountStatementInput is the DTO for persisting a reviewed
// account statement.
type CreateAccountStatementInput struct {
	Statement domain.AccountStatement
	File      *FileAttachment
}

// CreateRenewalNoticeInput is the DTO for persisting a reviewed renewal
// notice.
type CreateRenewalNoticeInput struct {
	Notice domain.RenewalNotice
	File   *FileAttachment
}

// DocumentService defines the document record management contract.
type DocumentService interface {
	CreateDebitNote(ctx context.Context, input *CreateDebitNoteInput) (*domain.DebitNote, error)
	GetDebitNote(ctx context.Context, id uuid.UUID) (*domain.DebitNote, error)
	ListDebitNotes(ctx context.Context, q port.ListQuery) ([]domain.DebitNote, int, error)
	UpdateDebitNote(ctx context.Context, note *domain.DebitNote) (*domain.DebitNote, error)
	DeleteDebitNote(ctx context.Context, id uuid.UUID) error

	CreateAccountStatement(ctx context.Context, input *CreateAccountStatementInput) (*domain.AccountStatement, error)
	GetAccountStatement(ctx context.Context, id uuid.UUID) (*domain.AccountStatement, error)
	ListAccountStatements(ctx context.Context, q port.ListQuery) ([]domain.AccountStatement, int, error)
	UpdateAccountStatement(ctx context.Context, stmt *domain.AccountStatement) (*domain.AccountStatement, error)
	DeleteAccountStatement(ctx context.Context, id uuid.UUID) error

	CreateRenewalNotice(ctx context.Context, input *CreateRenewalNoticeInput) (*domain.RenewalNotice, error)
	GetRenewalNotice(ctx context.Context, id uuid.UUID) (*domain.RenewalNotice, error)
	ListRenewalNotices(ctx context.Context, q port.ListQuery) ([]domain.RenewalNotice, int, error)
	UpdateRenewalNotice(ctx context.Context, notice *domain.RenewalNotice) (*domain.RenewalNotice, error)
	DeleteRenewalNotice(ctx context.Context, id uuid.UUID) error

	ListSummaries(ctx context.Context, docType *domain.DocumentType, q port.ListQuery) ([]domain.DocumentSummary, int, error)
}

type documentService struct {
	debitNoteRepo port.DebitNoteRepository
	statementRepo port.AccountStatementRepository
	renewalRepo   port.RenewalNoticeRepository
	summaryRepo   port.DocumentSummaryRepository
	storage       port.ObjectStorage
	s3cfg         *config.S3Config
}

// NewDocumentService creates a DocumentService over the per-type
// repositories and object storage.
func NewDocumentService(
	debitNoteRepo port.DebitNoteRepository,
	statementRepo port.AccountStatementRepository,
	renewalRepo port.RenewalNoticeRepository,
	summaryRepo port.DocumentSummaryRepository,
	storage port.ObjectStorage,
	s3cfg *config.S3Config,
) DocumentService {
	return &documentService{
		debitNoteRepo: debitNoteRepo,
		statementRepo: statementRepo,
		renewalRepo:   renewalRepo,
		summaryRepo:   summaryRepo,
		storage:       storage,
		s3cfg:         s3cfg,
	}
}

func (s *documentService) CreateDebitNote(ctx context.Context, input *CreateDebitNoteInput) (*domain.DebitNote, error) {
	note := input.Note
	note.ID = uuid.New()
	note.CreatedAt = time.Now().UTC()

	key, err := s.storeAttachment(ctx, domain.DocTypeDebitNote, note.ID, input.File)
	if err != nil {
		return nil, fmt.Errorf("document.CreateDebitNote: %w", err)
	}
	if key != "" {
		note.FileKey = key
		note.FileName = input.File.Name
	}

	if err := s.debitNoteRepo.Create(ctx, &note); err != nil {
		s.discardAttachment(ctx, key)
		return nil, fmt.Errorf("document.CreateDebitNote: %w", err)
	}
	return &note, nil
}

func (s *documentService) GetDebitNote(ctx context.Context, id uuid.UUID) (*domain.DebitNote, error) {
	return s.debitNoteRepo.GetByID(ctx, id)
}

func (s *documentService) ListDebitNotes(ctx context.Context, q port.ListQuery) ([]domain.DebitNote, int, error) {
	return s.debitNoteRepo.List(ctx, q)
}

func (s *documentService) UpdateDebitNote(ctx context.Context, note *domain.DebitNote) (*domain.DebitNote, error) {
	existing, err := s.debitNoteRepo.GetByID(ctx, note.ID)
	if err != nil {
		return nil, err
	}
	// The stored attachment is immutable across edits.
	note.FileKey = existing.FileKey
	note.FileName = existing.FileName
	note.CreatedAt = existing.CreatedAt

	if err := s.debitNoteRepo.Update(ctx, note); err != nil {
		return nil, fmt.Errorf("document.UpdateDebitNote: %w", err)
	}
	return s.debitNoteRepo.GetByID(ctx, note.ID)
}

func (s *documentService) DeleteDebitNote(ctx context.Context, id uuid.UUID) error {
	existing, err := s.debitNoteRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.debitNoteRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("document.DeleteDebitNote: %w", err)
	}
	s.discardAttachment(ctx, existing.FileKey)
	return nil
}

func (s *documentService) CreateAccountStatement(ctx context.Context, input *CreateAccountStatementInput) (*domain.AccountStatement, error) {
	stmt := input.Statement
	stmt.ID = uuid.New()
	stmt.CreatedAt = time.Now().UTC()

	key, err := s.storeAttachment(ctx, domain.DocTypeAccountStatement, stmt.ID, input.File)
	if err != nil {
		return nil, fmt.Errorf("document.CreateAccountStatement: %w", err)
	}
	if key != "" {
		stmt.FileKey = key
		stmt.FileName = input.File.Name
	}

	if err := s.statementRepo.Create(ctx, &stmt); err != nil {
		s.discardAttachment(ctx, key)
		return nil, fmt.Errorf("document.CreateAccountStatement: %w", err)
	}
	return &stmt, nil
}

func (s *documentService) GetAccountStatement(ctx context.Context, id uuid.UUID) (*domain.AccountStatement, error) {
	return s.statementRepo.GetByID(ctx, id)
}

func (s *documentService) ListAccountStatements(ctx context.Context, q port.ListQuery) ([]domain.AccountStatement, int, error) {
	return s.statementRepo.List(ctx, q)
}

func (s *documentService) UpdateAccountStatement(ctx context.Context, stmt *domain.AccountStatement) (*domain.AccountStatement, error) {
	existing, err := s.statementRepo.GetByID(ctx, stmt.ID)
	if err != nil {
		return nil, err
	}
	stmt.FileKey = existing.FileKey
	stmt.FileName = existing.FileName
	stmt.CreatedAt = existing.CreatedAt

	if err := s.statementRepo.Update(ctx, stmt); err != nil {
		return nil, fmt.Errorf("document.UpdateAccountStatement: %w", err)
	}
	return s.statementRepo.GetByID(ctx, stmt.ID)
}

func (s *documentService) DeleteAccountStatement(ctx context.Context, id uuid.UUID) error {
	existing, err := s.statementRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.statementRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("document.DeleteAccountStatement: %w", err)
	}
	s.discardAttachment(ctx, existing.FileKey)
	return nil
}

func (s *documentService) CreateRenewalNotice(ctx context.Context, input *CreateRenewalNoticeInput) (*domain.RenewalNotice, error) {
	notice := input.Notice
	notice.ID = uuid.New()
	notice.CreatedAt = time.Now().UTC()

	key, err := s.storeAttachment(ctx, domain.DocTypeRenewalNotice, notice.ID, input.File)
	if err != nil {
		return nil, fmt.Errorf("document.CreateRenewalNotice: %w", err)
	}
	if key != "" {
		notice.FileKey = key
		notice.FileName = input.File.Name
	}

	if err := s.renewalRepo.Create(ctx, &notice); err != nil {
		s.discardAttachment(ctx, key)
		return nil, fmt.Errorf("document.CreateRenewalNotice: %w", err)
	}
	return &notice, nil
}

func (s *documentService) GetRenewalNotice(ctx context.Context, id uuid.UUID) (*domain.RenewalNotice, error) {
	return s.renewalRepo.GetByID(ctx, id)
}

func (s *documentService) ListRenewalNotices(ctx context.Context, q port.ListQuery) ([]domain.RenewalNotice, int, error) {
	return s.renewalRepo.List(ctx, q)
}

func (s *documentService) UpdateRenewalNotice(ctx context.Context, notice *domain.RenewalNotice) (*domain.RenewalNotice, error) {
	existing, err := s.renewalRepo.GetByID(ctx, notice.ID)
	if err != nil {
		return nil, err
	}
	notice.FileKey = existing.FileKey
	notice.FileName = existing.FileName
	notice.CreatedAt = existing.CreatedAt

	if err := s.renewalRepo.Update(ctx, notice); err != nil {
		return nil, fmt.Errorf("document.UpdateRenewalNotice: %w", err)
	}
	return s.renewalRepo.GetByID(ctx, notice.ID)
}

func (s *documentService) DeleteRenewalNotice(ctx context.Context, id uuid.UUID) error {
	existing, err := s.renewalRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.renewalRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("document.DeleteRenewalNotice: %w", err)
	}
	s.discardAttachment(ctx, existing.FileKey)
	return nil
}

func (s *documentService) ListSummaries(ctx context.Context, docType *domain.DocumentType, q port.ListQuery) ([]domain.DocumentSummary, int, error) {
	return s.summaryRepo.List(ctx, docType, q)
}

// storeAttachment uploads the optional source file and returns its object
// key, or "" when no file was attached.
func (s *documentService) storeAttachment(ctx context.Context, docType domain.DocumentType, id uuid.UUID, file *FileAttachment) (string, error) {
	if file == nil {
		return "", nil
	}
	if int64(len(file.Data)) > s.s3cfg.MaxFileSizeMB*1024*1024 {
		return "", domain.ErrFileTooLarge
	}

	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(file.Name)), ".")
	fileType, ok := domain.AllowedExtensions[ext]
	if !ok {
		return "", fmt.Errorf("%w: %q", domain.ErrUnsupportedFileType, ext)
	}

	key := fmt.Sprintf("%s/%s/%s", docType, id, filepath.Base(file.Name))
	_, err := s.storage.Upload(ctx, port.UploadInput{
		Bucket:      s.s3cfg.Bucket,
		Key:         key,
		Body:        bytes.NewReader(file.Data),
		ContentType: domain.AllowedFileTypes[fileType],
		Size:        int64(len(file.Data)),
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrUploadFailed, err)
	}
	return key, nil
}

// discardAttachment removes a stored object, logging rather than failing:
// the database record is the source of truth.
func (s *documentService) discardAttachment(ctx context.Context, key string) {
	if key == "" {
		return
	}
	if err := s.storage.Delete(ctx, s.s3cfg.Bucket, key); err != nil {
		log.Printf("[document] failed to delete stored object %s: %v", key, err)
	}
}
