package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"insdocs/internal/domain"
	"insdocs/internal/port"
)

// MockDebitNoteRepo is a mock implementation of port.DebitNoteRepository.
type MockDebitNoteRepo struct {
	mock.Mock
}

func (m *MockDebitNoteRepo) Create(ctx context.Context, note *domain.DebitNote) error {
	args := m.Called(ctx, note)
	return args.Error(0)
}

func (m *MockDebitNoteRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.DebitNote, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DebitNote), args.Error(1)
}

func (m *MockDebitNoteRepo) List(ctx context.Context, q port.ListQuery) ([]domain.DebitNote, int, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.DebitNote), args.Int(1), args.Error(2)
}

func (m *MockDebitNoteRepo) Update(ctx context.Context, note *domain.DebitNote) error {
	args := m.Called(ctx, note)
	return args.Error(0)
}

func (m *MockDebitNoteRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockAccountStatementRepo is a mock implementation of port.AccountStatementRepository.
type MockAccountStatementRepo struct {
	mock.Mock
}

func (m *MockAccountStatementRepo) Create(ctx context.Context, stmt *domain.AccountStatement) error {
	args := m.Called(ctx, stmt)
	return args.Error(0)
}

func (m *MockAccountStatementRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.AccountStatement, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AccountStatement), args.Error(1)
}

func (m *MockAccountStatementRepo) List(ctx context.Context, q port.ListQuery) ([]domain.AccountStatement, int, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.AccountStatement), args.Int(1), args.Error(2)
}

func (m *MockAccountStatementRepo) Update(ctx context.Context, stmt *domain.AccountStatement) error {
	args := m.Called(ctx, stmt)
	return args.Error(0)
}

func (m *MockAccountStatementRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockRenewalNoticeRepo is a mock implementation of port.RenewalNoticeRepository.
type MockRenewalNoticeRepo struct {
	mock.Mock
}

func (m *MockRenewalNoticeRepo) Create(ctx context.Context, notice *domain.RenewalNotice) error {
	args := m.Called(ctx, notice)
	return args.Error(0)
}

func (m *MockRenewalNoticeRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.RenewalNotice, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RenewalNotice), args.Error(1)
}

func (m *MockRenewalNoticeRepo) List(ctx context.Context, q port.ListQuery) ([]domain.RenewalNotice, int, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.RenewalNotice), args.Int(1), args.Error(2)
}

func (m *MockRenewalNoticeRepo) Update(ctx context.Context, notice *domain.RenewalNotice) error {
	args := m.Called(ctx, notice)
	return args.Error(0)
}

func (m *MockRenewalNoticeRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockDocumentSummaryRepo is a mock implementation of port.DocumentSummaryRepository.
type MockDocumentSummaryRepo struct {
	mock.Mock
}

func (m *MockDocumentSummaryRepo) List(ctx context.Context, docType *domain.DocumentType, q port.ListQuery) ([]domain.DocumentSummary, int, error) {
	args := m.Called(ctx, docType, q)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.DocumentSummary), args.Int(1), args.Error(2)
}
