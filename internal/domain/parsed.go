package domain

// Parse results are transient: constructed fresh per OCR pass, immutable once
// returned, owned entirely by the caller. Every scalar field is always
// present; a failed extraction leaves an empty string or zero value.

// FinancialItem is one extracted financial row of a debit note.
type FinancialItem struct {
	Category          string  `json:"category"`
	GrossPremium      float64 `json:"gross_premium"`
	Commission        float64 `json:"commission"`
	OverridingInsurer float64 `json:"overriding_insurer"`
	Cost              float64 `json:"cost"`
	Profit            float64 `json:"profit"`
}

// ParsedDebitNote is the extraction result for a debit note.
type ParsedDebitNote struct {
	AccountNumber     string          `json:"account_number"`
	PolicyNumber      string          `json:"policy_number"`
	EndorsementNumber string          `json:"endorsement_number"`
	InsuredOrAgent    string          `json:"insured_or_agent"`
	IssueDate         string          `json:"issue_date"`
	InsuranceClass    string          `json:"insurance_class"`
	Financials        []FinancialItem `json:"financials"`
	Warnings          []string        `json:"warnings"`
}

// ParsedStatementEntry is one extracted account statement row.
type ParsedStatementEntry struct {
	EffectiveDate string   `json:"effective_date"`
	DebitNote     *string  `json:"debit_note"`
	PolicyNumber  *string  `json:"policy_number"`
	Nature        *float64 `json:"nature"`
	Premium       float64  `json:"premium"`
}

// ParsedAccountStatement is the extraction result for an account statement.
type ParsedAccountStatement struct {
	IssueDate       string                 `json:"issue_date"`
	PremiumDueDate  string                 `json:"premium_due_date"`
	AccountNumber   string                 `json:"account_number"`
	Address         string                 `json:"address"`
	TotalPremiumDue float64                `json:"total_premium_due"`
	Entries         []ParsedStatementEntry `json:"entries"`
	Warnings        []string               `json:"warnings"`
}

// ParsedRenewalEntry is one extracted label/amount row of a renewal notice.
type ParsedRenewalEntry struct {
	Label  string  `json:"label"`
	Amount float64 `json:"amount"`
}

// ParsedRenewalNotice is the extraction result for a renewal notice.
type ParsedRenewalNotice struct {
	IssueDate      string               `json:"issue_date"`
	Insured        string               `json:"insured"`
	InsuranceClass string               `json:"insurance_class"`
	PolicyNumber   string               `json:"policy_number"`
	ExpiryDate     string               `json:"expiry_date"`
	ACCode         string               `json:"ac_code"`
	RenewalEntries []ParsedRenewalEntry `json:"renewal_entries"`
	TotalEarning   float64              `json:"total_earning"`
	RenewalPremium float64              `json:"renewal_premium"`
	UploadedBy     string               `json:"uploaded_by"`
	Warnings       []string             `json:"warnings"`
}

// ParsedDocument wraps the per-type extraction result of a single parse call.
// Exactly one of the variant pointers is non-nil, matching DocType.
type ParsedDocument struct {
	DocType          DocumentType            `json:"doc_type"`
	DebitNote        *ParsedDebitNote        `json:"debit_note,omitempty"`
	AccountStatement *ParsedAccountStatement `json:"account_statement,omitempty"`
	RenewalNotice    *ParsedRenewalNotice    `json:"renewal_notice,omitempty"`
}

// Warnings returns the warning list of whichever variant is populated.
func (d *ParsedDocument) Warnings() []string {
	switch {
	case d.DebitNote != nil:
		return d.DebitNote.Warnings
	case d.AccountStatement != nil:
		return d.AccountStatement.Warnings
	case d.RenewalNotice != nil:
		return d.RenewalNotice.Warnings
	}
	return nil
}

// AppendWarnings adds warnings to whichever variant is populated.
func (d *ParsedDocument) AppendWarnings(ws ...string) {
	if len(ws) == 0 {
		return
	}
	switch {
	case d.DebitNote != nil:
		d.DebitNote.Warnings = append(d.DebitNote.Warnings, ws...)
	case d.AccountStatement != nil:
		d.AccountStatement.Warnings = append(d.AccountStatement.Warnings, ws...)
	case d.RenewalNotice != nil:
		d.RenewalNotice.Warnings = append(d.RenewalNotice.Warnings, ws...)
	}
}
