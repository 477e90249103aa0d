// Package validator checks parsed documents for suspicious extraction
// results and produces human-readable warnings. Rules never reject a
// document; a scan always stores what was read.
package validator

import (
	"fmt"

	"insdocs/internal/domain"
)

// Rule is a single built-in check. DocTypes limits the rule to certain
// document types; empty means the rule applies to every type.
type Rule struct {
	Key      string
	DocTypes []domain.DocumentType
	Check    func(doc *domain.ParsedDocument) []string
}

func (r Rule) appliesTo(t domain.DocumentType) bool {
	if len(r.DocTypes) == 0 {
		return true
	}
	for _, dt := range r.DocTypes {
		if dt == t {
			return true
		}
	}
	return false
}

// Engine runs every applicable rule against a parsed document.
type Engine struct {
	rules []Rule
}

// NewEngine creates an engine with the given rules.
func NewEngine(rules []Rule) *Engine {
	return &Engine{rules: rules}
}

// Validate returns the warnings of every applicable rule, in rule order.
func (e *Engine) Validate(doc *domain.ParsedDocument) []string {
	var warnings []string
	for _, r := range e.rules {
		if !r.appliesTo(doc.DocType) {
			continue
		}
		warnings = append(warnings, r.Check(doc)...)
	}
	return warnings
}

// DefaultRules are the built-in extraction sanity checks.
func DefaultRules() []Rule {
	return []Rule{
		{
			Key: "issue_date_readable",
			Check: func(doc *domain.ParsedDocument) []string {
				var issueDate string
				switch {
				case doc.DebitNote != nil:
					issueDate = doc.DebitNote.IssueDate
				case doc.AccountStatement != nil:
					issueDate = doc.AccountStatement.IssueDate
				case doc.RenewalNotice != nil:
					issueDate = doc.RenewalNotice.IssueDate
				}
				if issueDate == "" {
					return []string{"Issue date could not be read."}
				}
				return nil
			},
		},
		{
			Key:      "policy_number_present",
			DocTypes: []domain.DocumentType{domain.DocTypeDebitNote, domain.DocTypeRenewalNotice},
			Check: func(doc *domain.ParsedDocument) []string {
				var policy string
				switch {
				case doc.DebitNote != nil:
					policy = doc.DebitNote.PolicyNumber
				case doc.RenewalNotice != nil:
					policy = doc.RenewalNotice.PolicyNumber
				}
				if policy == "" {
					return []string{"Policy number could not be read."}
				}
				return nil
			},
		},
		{
			Key:      "statement_total_consistent",
			DocTypes: []domain.DocumentType{domain.DocTypeAccountStatement},
			Check: func(doc *domain.ParsedDocument) []string {
				stmt := doc.AccountStatement
				if stmt == nil {
					return nil
				}
				if len(stmt.Entries) > 0 && stmt.TotalPremiumDue == 0 {
					return []string{fmt.Sprintf("Total premium due is zero despite %d entries.", len(stmt.Entries))}
				}
				return nil
			},
		},
		{
			Key:      "renewal_amounts_nonzero",
			DocTypes: []domain.DocumentType{domain.DocTypeRenewalNotice},
			Check: func(doc *domain.ParsedDocument) []string {
				notice := doc.RenewalNotice
				if notice == nil || len(notice.RenewalEntries) == 0 {
					return nil
				}
				for _, e := range notice.RenewalEntries {
					if e.Amount != 0 {
						return nil
					}
				}
				return []string{"All earnings amounts read as zero."}
			},
		},
		{
			Key:      "renewal_period_ordered",
			DocTypes: []domain.DocumentType{domain.DocTypeRenewalNotice},
			Check: func(doc *domain.ParsedDocument) []string {
				notice := doc.RenewalNotice
				if notice == nil || notice.IssueDate == "" || notice.ExpiryDate == "" {
					return nil
				}
				// ISO dates compare lexically
				if notice.ExpiryDate < notice.IssueDate {
					return []string{"Expiry date precedes issue date."}
				}
				return nil
			},
		},
	}
}
