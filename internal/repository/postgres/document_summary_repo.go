package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"insdocs/internal/domain"
	"insdocs/internal/port"
)

var summaryColumns = map[string]struct{}{
	"doc_type":        {},
	"issue_date":      {},
	"party_name":      {},
	"insurance_class": {},
	"policy_number":   {},
	"account_number":  {},
	"uploaded_by":     {},
	"file_name":       {},
	"created_at":      {},
}

// summaryUnion flattens the three document tables into one shape. Columns a
// type does not carry come back empty.
const summaryUnion = `
	SELECT id, 'debit_note' AS doc_type, issue_date, insured_or_agent AS party_name,
		insurance_class, policy_number, account_number, uploaded_by, file_name, created_at
	FROM debit_notes
	UNION ALL
	SELECT id, 'account_statement' AS doc_type, issue_date, address AS party_name,
		'' AS insurance_class, '' AS policy_number, account_number, uploaded_by, file_name, created_at
	FROM account_statements
	UNION ALL
	SELECT id, 'renewal_notice' AS doc_type, issue_date, insured AS party_name,
		insurance_class, policy_number, '' AS account_number, uploaded_by, file_name, created_at
	FROM renewal_notices`

type documentSummaryRepo struct {
	db *sqlx.DB
}

// NewDocumentSummaryRepo creates a new PostgreSQL-backed DocumentSummaryRepository.
func NewDocumentSummaryRepo(db *sqlx.DB) port.DocumentSummaryRepository {
	return &documentSummaryRepo{db: db}
}

func (r *documentSummaryRepo) List(ctx context.Context, docType *domain.DocumentType, q port.ListQuery) ([]domain.DocumentSummary, int, error) {
	if docType != nil {
		q.Filters = append([]port.Filter{
			{Field: "doc_type", Op: port.FilterEq, Value: string(*docType)},
		}, q.Filters...)
	}

	c, err := buildListClauses(q, summaryColumns, "created_at DESC")
	if err != nil {
		return nil, 0, err
	}

	base := "FROM (" + summaryUnion + "\n) AS docs "

	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) "+base+c.where, c.filterArgs...); err != nil {
		return nil, 0, fmt.Errorf("documentSummaryRepo.List count: %w", err)
	}

	var summaries []domain.DocumentSummary
	if err := r.db.SelectContext(ctx, &summaries, "SELECT * "+base+c.tail(), c.allArgs()...); err != nil {
		return nil, 0, fmt.Errorf("documentSummaryRepo.List: %w", err)
	}
	return summaries, total, nil
}
