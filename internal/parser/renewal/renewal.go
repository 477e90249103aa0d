// Package renewal extracts structured fields and earnings entries from OCR
// text of scanned renewal notices.
package renewal

import (
	"regexp"
	"strings"

	"insdocs/internal/domain"
	"insdocs/internal/parser"
	"insdocs/internal/textfix"
)

func init() {
	parser.Register(domain.DocTypeRenewalNotice, ParseText)
}

// ParseText recovers a renewal notice record from raw OCR text.
func ParseText(rawText string) (*domain.ParsedDocument, error) {
	text := textfix.CollapseLines(rawText)

	notice := &domain.ParsedRenewalNotice{
		IssueDate:      parser.ISODate(parser.DateAfter("ISSUE DATE", text)),
		ExpiryDate:     parser.ISODate(parser.DateAfter("EXPIRY DATE", text)),
		Insured:        extractInsuredName(text),
		InsuranceClass: extractInsuranceClass(text),
		PolicyNumber:   extractPolicyNumber(text),
		ACCode:         extractACCode(text),
		RenewalEntries: extractEntries(text),
		TotalEarning:   extractTotalEarning(text),
		RenewalPremium: extractRenewalPremium(text),
	}

	return &domain.ParsedDocument{DocType: domain.DocTypeRenewalNotice, RenewalNotice: notice}, nil
}

var policyNoRe = regexp.MustCompile(`(?i)POLICY\s*NO\.?\s*[:\-]?\s*([A-Z0-9\-]+)`)

func extractPolicyNumber(text string) string {
	return strings.ReplaceAll(parser.ExtractFirst(policyNoRe, text), " ", "")
}

var acCodeRe = regexp.MustCompile(`(?i)ACICODE\s+([A-Z0-9]+)`)

func extractACCode(text string) string {
	return parser.ExtractFirst(acCodeRe, text)
}

var (
	insuredStartRe  = regexp.MustCompile(`(?i)\bINSURED\b`)
	insuredEndRe    = regexp.MustCompile(`(?i)\bPOLICY\s*NO`)
	classHeadingRe  = regexp.MustCompile(`(?i)CLASS\s+OF\s+INSURANCE`)
	addressLeakRe   = regexp.MustCompile(`(?i)\bROOM\b|\bBLOCK\b|\bFLAT\b|\bUNIT\b`)
	businessClassRe = regexp.MustCompile(`(?i)\bBUSINESS\s+INSURANCE\b`)
)

// extractInsuredName captures the text between the INSURED label and the
// POLICY NO label, dropping the class heading and stopping before the
// address leaks in.
func extractInsuredName(text string) string {
	start := insuredStartRe.FindStringIndex(text)
	end := insuredEndRe.FindStringIndex(text)
	if start == nil || end == nil || end[0] <= start[1] {
		return ""
	}
	segment := text[start[1]:end[0]]
	segment = classHeadingRe.ReplaceAllString(segment, "")
	segment = parser.SplitBefore(addressLeakRe, segment)
	return strings.TrimSpace(strings.Trim(segment, " {"))
}

func extractInsuranceClass(text string) string {
	return parser.ExtractFirst(businessClassRe, text)
}

var (
	employeesRe  = regexp.MustCompile(`(?i)EMPLOYEES`)
	totalRe      = regexp.MustCompile(`(?i)TOTAL`)
	labelNoiseRe = regexp.MustCompile(`[^A-Za-z0-9\s\-/()]`)
	// a space directly before an ordinal digit separates two labels
	labelBoundaryRe = regexp.MustCompile(`\s(\d[.\-]?)`)
)

// extractEntries rebuilds the earnings table from the block between the
// EMPLOYEES heading and the TOTAL row. The line after the heading carries
// the labels, split on ordinal boundaries; every following line is reduced
// to its largest numeric value. Labels and amounts zip positionally and a
// short amount list defaults to 0.
func extractEntries(text string) []domain.ParsedRenewalEntry {
	start := employeesRe.FindStringIndex(text)
	if start == nil {
		return nil
	}
	rest := text[start[0]:]
	headLen := start[1] - start[0]
	end := totalRe.FindStringIndex(rest[headLen:])
	if end == nil {
		return nil
	}
	block := rest[:headLen+end[0]]

	lines := parser.NonEmptyLines(block)
	if len(lines) < 2 {
		return nil
	}

	labelsLine := labelNoiseRe.ReplaceAllString(lines[1], "")
	labelsLine = labelBoundaryRe.ReplaceAllString(labelsLine, "\n$1")

	var labels []string
	for _, l := range strings.Split(labelsLine, "\n") {
		if l = strings.TrimSpace(l); l != "" {
			labels = append(labels, l)
		}
	}

	amountLines := lines[2:]
	amounts := make([]float64, len(amountLines))
	for i, line := range amountLines {
		amounts[i] = textfix.MaxAmountInLine(line)
	}

	entries := make([]domain.ParsedRenewalEntry, 0, len(labels))
	for i, label := range labels {
		amount := 0.0
		if i < len(amounts) {
			amount = amounts[i]
		}
		entries = append(entries, domain.ParsedRenewalEntry{Label: label, Amount: amount})
	}
	return entries
}

var totalLineRe = regexp.MustCompile(`(?i)TOTAL.*?\n(.*)`)

func extractTotalEarning(text string) float64 {
	m := totalLineRe.FindStringSubmatch(text)
	if m == nil {
		return 0.0
	}
	return textfix.CleanMoney(m[1])
}

var renewalPremiumRe = regexp.MustCompile(`(?is)RENEWAL\s+PREMIUM.*?(\d[\d\s,]+)`)

func extractRenewalPremium(text string) float64 {
	m := renewalPremiumRe.FindStringSubmatch(text)
	if m == nil {
		return 0.0
	}
	return textfix.CleanMoney(m[1])
}
