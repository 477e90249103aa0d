package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"insdocs/internal/domain"
	"insdocs/internal/port"
	"insdocs/internal/service"
)

// MockAuthService is a mock implementation of service.AuthService.
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, input service.LoginInput) (*service.TokenPair, *domain.User, error) {
	args := m.Called(ctx, input)
	var pair *service.TokenPair
	if args.Get(0) != nil {
		pair = args.Get(0).(*service.TokenPair)
	}
	var user *domain.User
	if args.Get(1) != nil {
		user = args.Get(1).(*domain.User)
	}
	return pair, user, args.Error(2)
}

func (m *MockAuthService) Refresh(ctx context.Context, input service.RefreshInput) (*service.TokenPair, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.TokenPair), args.Error(1)
}

func (m *MockAuthService) ValidateAccessToken(tokenString string) (*service.Claims, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Claims), args.Error(1)
}

// MockScanService is a mock implementation of service.ScanService.
type MockScanService struct {
	mock.Mock
}

func (m *MockScanService) Scan(ctx context.Context, input service.ScanInput) (*service.ScanOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ScanOutput), args.Error(1)
}

// MockFileService is a mock implementation of service.FileService.
type MockFileService struct {
	mock.Mock
}

func (m *MockFileService) Open(ctx context.Context, docType domain.DocumentType, id uuid.UUID) (*service.StoredFile, error) {
	args := m.Called(ctx, docType, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.StoredFile), args.Error(1)
}

func (m *MockFileService) PresignURL(ctx context.Context, docType domain.DocumentType, id uuid.UUID) (string, error) {
	args := m.Called(ctx, docType, id)
	return args.String(0), args.Error(1)
}

// MockDocumentService is a mock implementation of service.DocumentService.
type MockDocumentService struct {
	mock.Mock
}

func (m *MockDocumentService) CreateDebitNote(ctx context.Context, input *service.CreateDebitNoteInput) (*domain.DebitNote, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DebitNote), args.Error(1)
}

func (m *MockDocumentService) GetDebitNote(ctx context.Context, id uuid.UUID) (*domain.DebitNote, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DebitNote), args.Error(1)
}

func (m *MockDocumentService) ListDebitNotes(ctx context.Context, q port.ListQuery) ([]domain.DebitNote, int, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.DebitNote), args.Int(1), args.Error(2)
}

func (m *MockDocumentService) UpdateDebitNote(ctx context.Context, note *domain.DebitNote) (*domain.DebitNote, error) {
	args := m.Called(ctx, note)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DebitNote), args.Error(1)
}

func (m *MockDocumentService) DeleteDebitNote(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockDocumentService) CreateAccountStatement(ctx context.Context, input *service.CreateAccountStatementInput) (*domain.AccountStatement, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AccountStatement), args.Error(1)
}

func (m *MockDocumentService) GetAccountStatement(ctx context.Context, id uuid.UUID) (*domain.AccountStatement, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AccountStatement), args.Error(1)
}

func (m *MockDocumentService) ListAccountStatements(ctx context.Context, q port.ListQuery) ([]domain.AccountStatement, int, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.AccountStatement), args.Int(1), args.Error(2)
}

func (m *MockDocumentService) UpdateAccountStatement(ctx context.Context, stmt *domain.AccountStatement) (*domain.AccountStatement, error) {
	args := m.Called(ctx, stmt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AccountStatement), args.Error(1)
}

func (m *MockDocumentService) DeleteAccountStatement(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockDocumentService) CreateRenewalNotice(ctx context.Context, input *service.CreateRenewalNoticeInput) (*domain.RenewalNotice, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RenewalNotice), args.Error(1)
}

func (m *MockDocumentService) GetRenewalNotice(ctx context.Context, id uuid.UUID) (*domain.RenewalNotice, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RenewalNotice), args.Error(1)
}

func (m *MockDocumentService) ListRenewalNotices(ctx context.Context, q port.ListQuery) ([]domain.RenewalNotice, int, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.RenewalNotice), args.Int(1), args.Error(2)
}

func (m *MockDocumentService) UpdateRenewalNotice(ctx context.Context, notice *domain.RenewalNotice) (*domain.RenewalNotice, error) {
	args := m.Called(ctx, notice)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RenewalNotice), args.Error(1)
}

func (m *MockDocumentService) DeleteRenewalNotice(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockDocumentService) ListSummaries(ctx context.Context, docType *domain.DocumentType, q port.ListQuery) ([]domain.DocumentSummary, int, error) {
	args := m.Called(ctx, docType, q)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.DocumentSummary), args.Int(1), args.Error(2)
}
