package port

import (
	"context"

	"github.com/google/uuid"

	"insdocs/internal/domain"
)

// FilterOp is a whitelisted comparison operator for listing queries.
type FilterOp string

const (
	FilterEq   FilterOp = "eq"
	FilterLike FilterOp = "like"
	FilterGt   FilterOp = "gt"
	FilterLt   FilterOp = "lt"
)

// Filter is one field/operator/value triple of a listing query.
type Filter struct {
	Field string
	Op    FilterOp
	Value string
}

// ListQuery carries the filtering, sorting and paging of a listing request.
// Field names are validated against a per-repository whitelist; a field or
// operator outside it fails the query rather than reaching SQL.
type ListQuery struct {
	Filters  []Filter
	SortBy   string
	SortDesc bool
	Offset   int
	Limit    int
}

// DebitNoteRepository defines the contract for debit note persistence.
// Create and Update persist the financial rows together with the parent
// record in one transaction.
type DebitNoteRepository interface {
	Create(ctx context.Context, note *domain.DebitNote) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.DebitNote, error)
	List(ctx context.Context, q ListQuery) ([]domain.DebitNote, int, error)
	Update(ctx context.Context, note *domain.DebitNote) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// AccountStatementRepository defines the contract for account statement
// persistence. Entry rows travel with the parent record.
type AccountStatementRepository interface {
	Create(ctx context.Context, stmt *domain.AccountStatement) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.AccountStatement, error)
	List(ctx context.Context, q ListQuery) ([]domain.AccountStatement, int, error)
	Update(ctx context.Context, stmt *domain.AccountStatement) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// RenewalNoticeRepository defines the contract for renewal notice
// persistence. Earnings entry rows travel with the parent record.
type RenewalNoticeRepository interface {
	Create(ctx context.Context, notice *domain.RenewalNotice) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.RenewalNotice, error)
	List(ctx context.Context, q ListQuery) ([]domain.RenewalNotice, int, error)
	Update(ctx context.Context, notice *domain.RenewalNotice) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// DocumentSummaryRepository reads the flattened cross-type listing used by
// the combined index view and exports.
type DocumentSummaryRepository interface {
	List(ctx context.Context, docType *domain.DocumentType, q ListQuery) ([]domain.DocumentSummary, int, error)
}
