package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents an authenticated operator.
type User struct {
	ID           uuid.UUID `db:"id" json:"id"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	FullName     string    `db:"full_name" json:"full_name"`
	Role         UserRole  `db:"role" json:"role"`
	IsActive     bool      `db:"is_active" json:"is_active"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// DebitNote is a stored debit note record.
type DebitNote struct {
	ID                uuid.UUID   `db:"id" json:"id"`
	IssueDate         string      `db:"issue_date" json:"issue_date"`
	InsuredOrAgent    string      `db:"insured_or_agent" json:"insured_or_agent"`
	InsuranceClass    string      `db:"insurance_class" json:"insurance_class"`
	PolicyNumber      string      `db:"policy_number" json:"policy_number"`
	EndorsementNumber string      `db:"endorsement_number" json:"endorsement_number"`
	AccountNumber     string      `db:"account_number" json:"account_number"`
	UploadedBy        string      `db:"uploaded_by" json:"uploaded_by"`
	FileName          string      `db:"file_name" json:"file_name"`
	FileKey           string      `db:"file_key" json:"-"`
	CreatedAt         time.Time   `db:"created_at" json:"created_at"`
	Financials        []Financial `db:"-" json:"financials"`
}

// Financial is one financial line of a debit note, tagged by copy type.
type Financial struct {
	ID                uuid.UUID `db:"id" json:"id"`
	DebitNoteID       uuid.UUID `db:"debit_note_id" json:"debit_note_id"`
	Category          string    `db:"category" json:"category"`
	GrossPremium      float64   `db:"gross_premium" json:"gross_premium"`
	Commission        float64   `db:"commission" json:"commission"`
	OverridingInsurer float64   `db:"overriding_insurer" json:"overriding_insurer"`
	Cost              float64   `db:"cost" json:"cost"`
	Profit            float64   `db:"profit" json:"profit"`
}

// AccountStatement is a stored account statement record.
type AccountStatement struct {
	ID              uuid.UUID        `db:"id" json:"id"`
	IssueDate       string           `db:"issue_date" json:"issue_date"`
	Address         string           `db:"address" json:"address"`
	AccountNumber   string           `db:"account_number" json:"account_number"`
	TotalPremiumDue float64          `db:"total_premium_due" json:"total_premium_due"`
	PremiumDueDate  string           `db:"premium_due_date" json:"premium_due_date"`
	UploadedBy      string           `db:"uploaded_by" json:"uploaded_by"`
	FileName        string           `db:"file_name" json:"file_name"`
	FileKey         string           `db:"file_key" json:"-"`
	CreatedAt       time.Time        `db:"created_at" json:"created_at"`
	Entries         []StatementEntry `db:"-" json:"entries"`
}

// StatementEntry is one row of an account statement's entry table.
// DebitNote, PolicyNumber and Nature are nullable: OCR alignment may leave
// trailing entries without a matching policy/nature pair.
type StatementEntry struct {
	ID                 uuid.UUID `db:"id" json:"id"`
	AccountStatementID uuid.UUID `db:"account_statement_id" json:"account_statement_id"`
	EffectiveDate      string    `db:"effective_date" json:"effective_date"`
	DebitNote          *string   `db:"debit_note" json:"debit_note"`
	PolicyNumber       *string   `db:"policy_number" json:"policy_number"`
	Nature             *float64  `db:"nature" json:"nature"`
	Premium            float64   `db:"premium" json:"premium"`
}

// RenewalNotice is a stored renewal notice record.
type RenewalNotice struct {
	ID             uuid.UUID      `db:"id" json:"id"`
	IssueDate      string         `db:"issue_date" json:"issue_date"`
	Insured        string         `db:"insured" json:"insured"`
	InsuranceClass string         `db:"insurance_class" json:"insurance_class"`
	PolicyNumber   string         `db:"policy_number" json:"policy_number"`
	ExpiryDate     string         `db:"expiry_date" json:"expiry_date"`
	ACCode         string         `db:"ac_code" json:"ac_code"`
	TotalEarning   float64        `db:"total_earning" json:"total_earning"`
	RenewalPremium float64        `db:"renewal_premium" json:"renewal_premium"`
	UploadedBy     string         `db:"uploaded_by" json:"uploaded_by"`
	FileName       string         `db:"file_name" json:"file_name"`
	FileKey        string         `db:"file_key" json:"-"`
	CreatedAt      time.Time      `db:"created_at" json:"created_at"`
	Entries        []RenewalEntry `db:"-" json:"entries"`
}

// RenewalEntry is one label/amount row of a renewal notice earnings table.
type RenewalEntry struct {
	ID              uuid.UUID `db:"id" json:"id"`
	RenewalNoticeID uuid.UUID `db:"renewal_notice_id" json:"renewal_notice_id"`
	Label           string    `db:"label" json:"label"`
	Amount          float64   `db:"amount" json:"amount"`
}

// DocumentSummary is a flattened listing row used by the combined index view
// and exports. Fields not applicable to a document type are empty.
type DocumentSummary struct {
	ID             uuid.UUID    `db:"id" json:"id"`
	DocType        DocumentType `db:"doc_type" json:"doc_type"`
	IssueDate      string       `db:"issue_date" json:"issue_date"`
	PartyName      string       `db:"party_name" json:"party_name"`
	InsuranceClass string       `db:"insurance_class" json:"insurance_class"`
	PolicyNumber   string       `db:"policy_number" json:"policy_number"`
	AccountNumber  string       `db:"account_number" json:"account_number"`
	UploadedBy     string       `db:"uploaded_by" json:"uploaded_by"`
	FileName       string       `db:"file_name" json:"file_name"`
	CreatedAt      time.Time    `db:"created_at" json:"created_at"`
}
