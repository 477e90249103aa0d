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

// debitNoteColumns whitelists the filterable and sortable columns.
var debitNoteColumns = map[string]struct{}{
	"issue_date":         {},
	"insured_or_agent":   {},
	"insurance_class":    {},
	"policy_number":      {},
	"endorsement_number": {},
	"account_number":     {},
	"uploaded_by":        {},
	"file_name":          {},
	"created_at":         {},
}

type debitNoteRepo struct {
	db *sqlx.DB
}

// NewDebitNoteRepo creates a new PostgreSQL-backed DebitNoteRepository.
func NewDebitNoteRepo(db *sqlx.DB) port.DebitNoteRepository {
	return &debitNoteRepo{db: db}
}

func (r *debitNoteRepo) Create(ctx context.Context, note *domain.DebitNote) error {
	if note.ID == uuid.Nil {
		note.ID = uuid.New()
	}
	note.CreatedAt = time.Now().UTC()

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("debitNoteRepo.Create begin: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO debit_notes (id, issue_date, insured_or_agent, insurance_class,
			policy_number, endorsement_number, account_number, uploaded_by,
			file_name, file_key, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		note.ID, note.IssueDate, note.InsuredOrAgent, note.InsuranceClass,
		note.PolicyNumber, note.EndorsementNumber, note.AccountNumber,
		note.UploadedBy, note.FileName, note.FileKey, note.CreatedAt)
	if err != nil {
		return fmt.Errorf("debitNoteRepo.Create: %w", err)
	}

	if err := insertFinancials(ctx, tx, note.ID, note.Financials); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("debitNoteRepo.Create commit: %w", err)
	}
	return nil
}

func (r *debitNoteRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.DebitNote, error) {
	var note domain.DebitNote
	err := r.db.GetContext(ctx, &note, "SELECT * FROM debit_notes WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("debitNoteRepo.GetByID: %w", err)
	}

	err = r.db.SelectContext(ctx, &note.Financials,
		"SELECT * FROM debit_note_financials WHERE debit_note_id = $1 ORDER BY category", id)
	if err != nil {
		return nil, fmt.Errorf("debitNoteRepo.GetByID financials: %w", err)
	}
	return &note, nil
}

func (r *debitNoteRepo) List(ctx context.Context, q port.ListQuery) ([]domain.DebitNote, int, error) {
	c, err := buildListClauses(q, debitNoteColumns, "created_at DESC")
	if err != nil {
		return nil, 0, err
	}

	var total int
	countQuery := "SELECT COUNT(*) FROM debit_notes " + c.where
	if err := r.db.GetContext(ctx, &total, countQuery, c.filterArgs...); err != nil {
		return nil, 0, fmt.Errorf("debitNoteRepo.List count: %w", err)
	}

	var notes []domain.DebitNote
	listQuery := "SELECT * FROM debit_notes " + c.tail()
	if err := r.db.SelectContext(ctx, &notes, listQuery, c.allArgs()...); err != nil {
		return nil, 0, fmt.Errorf("debitNoteRepo.List: %w", err)
	}
	return notes, total, nil
}

func (r *debitNoteRepo) Update(ctx context.Context, note *domain.DebitNote) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("debitNoteRepo.Update begin: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx,
		`UPDATE debit_notes SET issue_date = $1, insured_or_agent = $2,
			insurance_class = $3, policy_number = $4, endorsement_number = $5,
			account_number = $6
		WHERE id = $7`,
		note.IssueDate, note.InsuredOrAgent, note.InsuranceClass,
		note.PolicyNumber, note.EndorsementNumber, note.AccountNumber, note.ID)
	if err != nil {
		return fmt.Errorf("debitNoteRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}

	// financial rows are replaced wholesale
	if _, err := tx.ExecContext(ctx,
		"DELETE FROM debit_note_financials WHERE debit_note_id = $1", note.ID); err != nil {
		return fmt.Errorf("debitNoteRepo.Update clear financials: %w", err)
	}
	if err := insertFinancials(ctx, tx, note.ID, note.Financials); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("debitNoteRepo.Update commit: %w", err)
	}
	return nil
}

func (r *debitNoteRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM debit_notes WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("debitNoteRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func insertFinancials(ctx context.Context, tx *sqlx.Tx, noteID uuid.UUID, items []domain.Financial) error {
	for i := range items {
		f := &items[i]
		if f.ID == uuid.Nil {
			f.ID = uuid.New()
		}
		f.DebitNoteID = noteID
		_, err := tx.ExecContext(ctx,
			`INSERT INTO debit_note_financials (id, debit_note_id, category, gross_premium,
				commission, overriding_insurer, cost, profit)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			f.ID, f.DebitNoteID, f.Category, f.GrossPremium,
			f.Commission, f.OverridingInsurer, f.Cost, f.Profit)
		if err != nil {
			return fmt.Errorf("debitNoteRepo: insert financial: %w", err)
		}
	}
	return nil
}
