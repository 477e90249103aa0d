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

var renewalNoticeColumns = map[string]struct{}{
	"issue_date":      {},
	"insured":         {},
	"insurance_class": {},
	"policy_number":   {},
	"expiry_date":     {},
	"ac_code":         {},
	"total_earning":   {},
	"renewal_premium": {},
	"uploaded_by":     {},
	"file_name":       {},
	"created_at":      {},
}

type renewalNoticeRepo struct {
	db *sqlx.DB
}

// NewRenewalNoticeRepo creates a new PostgreSQL-backed RenewalNoticeRepository.
func NewRenewalNoticeRepo(db *sqlx.DB) port.RenewalNoticeRepository {
	return &renewalNoticeRepo{db: db}
}

func (r *renewalNoticeRepo) Create(ctx context.Context, notice *domain.RenewalNotice) error {
	if notice.ID == uuid.Nil {
		notice.ID = uuid.New()
	}
	notice.CreatedAt = time.Now().UTC()

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("renewalNoticeRepo.Create begin: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO renewal_notices (id, issue_date, insured, insurance_class,
			policy_number, expiry_date, ac_code, total_earning, renewal_premium,
			uploaded_by, file_name, file_key, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		notice.ID, notice.IssueDate, notice.Insured, notice.InsuranceClass,
		notice.PolicyNumber, notice.ExpiryDate, notice.ACCode,
		notice.TotalEarning, notice.RenewalPremium, notice.UploadedBy,
		notice.FileName, notice.FileKey, notice.CreatedAt)
	if err != nil {
		return fmt.Errorf("renewalNoticeRepo.Create: %w", err)
	}

	if err := insertRenewalEntries(ctx, tx, notice.ID, notice.Entries); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("renewalNoticeRepo.Create commit: %w", err)
	}
	return nil
}

func (r *renewalNoticeRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.RenewalNotice, error) {
	var notice domain.RenewalNotice
	err := r.db.GetContext(ctx, &notice, "SELECT * FROM renewal_notices WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("renewalNoticeRepo.GetByID: %w", err)
	}

	err = r.db.SelectContext(ctx, &notice.Entries,
		"SELECT * FROM renewal_notice_entries WHERE renewal_notice_id = $1 ORDER BY label", id)
	if err != nil {
		return nil, fmt.Errorf("renewalNoticeRepo.GetByID entries: %w", err)
	}
	return &notice, nil
}

func (r *renewalNoticeRepo) List(ctx context.Context, q port.ListQuery) ([]domain.RenewalNotice, int, error) {
	c, err := buildListClauses(q, renewalNoticeColumns, "created_at DESC")
	if err != nil {
		return nil, 0, err
	}

	var total int
	countQuery := "SELECT COUNT(*) FROM renewal_notices " + c.where
	if err := r.db.GetContext(ctx, &total, countQuery, c.filterArgs...); err != nil {
		return nil, 0, fmt.Errorf("renewalNoticeRepo.List count: %w", err)
	}

	var notices []domain.RenewalNotice
	listQuery := "SELECT * FROM renewal_notices " + c.tail()
	if err := r.db.SelectContext(ctx, &notices, listQuery, c.allArgs()...); err != nil {
		return nil, 0, fmt.Errorf("renewalNoticeRepo.List: %w", err)
	}
	return notices, total, nil
}

func (r *renewalNoticeRepo) Update(ctx context.Context, notice *domain.RenewalNotice) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("renewalNoticeRepo.Update begin: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx,
		`UPDATE renewal_notices SET issue_date = $1, insured = $2,
			insurance_class = $3, policy_number = $4, expiry_date = $5,
			ac_code = $6, total_earning = $7, renewal_premium = $8
		WHERE id = $9`,
		notice.IssueDate, notice.Insured, notice.InsuranceClass,
		notice.PolicyNumber, notice.ExpiryDate, notice.ACCode,
		notice.TotalEarning, notice.RenewalPremium, notice.ID)
	if err != nil {
		return fmt.Errorf("renewalNoticeRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}

	if _, err := tx.ExecContext(ctx,
		"DELETE FROM renewal_notice_entries WHERE renewal_notice_id = $1", notice.ID); err != nil {
		return fmt.Errorf("renewalNoticeRepo.Update clear entries: %w", err)
	}
	if err := insertRenewalEntries(ctx, tx, notice.ID, notice.Entries); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("renewalNoticeRepo.Update commit: %w", err)
	}
	return nil
}

func (r *renewalNoticeRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM renewal_notices WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("renewalNoticeRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func insertRenewalEntries(ctx context.Context, tx *sqlx.Tx, noticeID uuid.UUID, entries []domain.RenewalEntry) error {
	for i := range entries {
		e := &entries[i]
		if e.ID == uuid.Nil {
			e.ID = uuid.New()
		}
		e.RenewalNoticeID = noticeID
		_, err := tx.ExecContext(ctx,
			`INSERT INTO renewal_notice_entries (id, renewal_notice_id, label, amount)
			VALUES ($1, $2, $3, $4)`,
			e.ID, e.RenewalNoticeID, e.Label, e.Amount)
		if err != nil {
			return fmt.Errorf("renewalNoticeRepo: insert entry: %w", err)
		}
	}
	return nil
}
