package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"insdocs/internal/domain"
	"insdocs/internal/port"
)

var accountStatementColumns = map[string]struct{}{
	"issue_date":        {},
	"address":           {},
	"account_number":    {},
	"total_premium_due": {},
	"premium_due_date":  {},
	"uploaded_by":       {},
	"file_name":         {},
	"created_at":        {},
}

type accountStatementRepo struct {
	db *sqlx.DB
}

// NewAccountStatementRepo creates a new PostgreSQL-backed AccountStatementRepository.
func NewAccountStatementRepo(db *sqlx.DB) port.AccountStatementRepository {
	return &accountStatementRepo{db: db}
}

func (r *accountStatementRepo) Create(ctx context.Context, stmt *domain.AccountStatement) error {
	if stmt.ID == uuid.Nil {
		stmt.ID = uuid.New()
	}
	stmt.CreatedAt = time.Now().UTC()

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("accountStatementRepo.Create begin: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO account_statements (id, issue_date, address, account_number,
			total_premium_due, premium_due_date, uploaded_by, file_name, file_key, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		stmt.ID, stmt.IssueDate, stmt.Address, stmt.AccountNumber,
		stmt.TotalPremiumDue, stmt.PremiumDueDate, stmt.UploadedBy,
		stmt.FileName, stmt.FileKey, stmt.CreatedAt)
	if err != nil {
		return fmt.Errorf("accountStatementRepo.Create: %w", err)
	}

	if err := insertStatementEntries(ctx, tx, stmt.ID, stmt.Entries); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("accountStatementRepo.Create commit: %w", err)
	}
	return nil
}

func (r *accountStatementRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.AccountStatement, error) {
	var stmt domain.AccountStatement
	err := r.db.GetContext(ctx, &stmt, "SELECT * FROM account_statements WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("accountStatementRepo.GetByID: %w", err)
	}

	err = r.db.SelectContext(ctx, &stmt.Entries,
		"SELECT * FROM account_statement_entries WHERE account_statement_id = $1 ORDER BY effective_date, id", id)
	if err != nil {
		return nil, fmt.Errorf("accountStatementRepo.GetByID entries: %w", err)
	}
	return &stmt, nil
}

func (r *accountStatementRepo) List(ctx context.Context, q port.ListQuery) ([]domain.AccountStatement, int, error) {
	c, err := buildListClauses(q, accountStatementColumns, "created_at DESC")
	if err != nil {
		return nil, 0, err
	}

	var total int
	countQuery := "SELECT COUNT(*) FROM account_statements " + c.where
	if err := r.db.GetContext(ctx, &total, countQuery, c.filterArgs...); err != nil {
		return nil, 0, fmt.Errorf("accountStatementRepo.List count: %w", err)
	}

	var stmts []domain.AccountStatement
	listQuery := "SELECT * FROM account_statements " + c.tail()
	if err := r.db.SelectContext(ctx, &stmts, listQuery, c.allArgs()...); err != nil {
		return nil, 0, fmt.Errorf("accountStatementRepo.List: %w", err)
	}
	return stmts, total, nil
}

func (r *accountStatementRepo) Update(ctx context.Context, stmt *domain.AccountStatement) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("accountStatementRepo.Update begin: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx,
		`UPDATE account_statements SET issue_date = $1, address = $2,
			account_number = $3, total_premium_due = $4, premium_due_date = $5
		WHERE id = $6`,
		stmt.IssueDate, stmt.Address, stmt.AccountNumber,
		stmt.TotalPremiumDue, stmt.PremiumDueDate, stmt.ID)
	if err != nil {
		return fmt.Errorf("accountStatementRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}

	if _, err := tx.ExecContext(ctx,
		"DELETE FROM account_statement_entries WHERE account_statement_id = $1", stmt.ID); err != nil {
		return fmt.Errorf("accountStatementRepo.Update clear entries: %w", err)
	}
	if err := insertStatementEntries(ctx, tx, stmt.ID, stmt.Entries); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("accountStatementRepo.Update commit: %w", err)
	}
	return nil
}

func (r *accountStatementRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM account_statements WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("accountStatementRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func insertStatementEntries(ctx context.Context, tx *sqlx.Tx, stmtID uuid.UUID, entries []domain.StatementEntry) error {
	for i := range entries {
		e := &entries[i]
		if e.ID == uuid.Nil {
			e.ID = uuid.New()
		}
		e.AccountStatementID = stmtID
		_, err := tx.ExecContext(ctx,
			`INSERT INTO account_statement_entries (id, account_statement_id, effective_date,
				debit_note, policy_number, nature, premium)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			e.ID, e.AccountStatementID, e.EffectiveDate,
			e.DebitNote, e.PolicyNumber, e.Nature, e.Premium)
		if err != nil {
			return fmt.Errorf("accountStatementRepo: insert entry: %w", err)
		}
	}
	return nil
}
