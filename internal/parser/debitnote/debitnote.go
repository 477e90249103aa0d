// Package debitnote extracts structured fields and financial line items from
// OCR text of scanned debit notes.
package debitnote

import (
	"regexp"
	"strconv"
	"strings"

	"insdocs/internal/domain"
	"insdocs/internal/parser"
	"insdocs/internal/textfix"
)

func init() {
	parser.Register(domain.DocTypeDebitNote, ParseText)
}

// ParseText recovers a debit note record from raw OCR text. Field misses
// resolve to empty values; the result shape is always complete.
func ParseText(rawText string) (*domain.ParsedDocument, error) {
	text := textfix.DebitNoteRules.Apply(rawText)

	note := &domain.ParsedDebitNote{
		AccountNumber:     extractAccountNumber(text),
		PolicyNumber:      extractPolicyNumber(text),
		EndorsementNumber: extractEndorsementNumber(text),
		InsuredOrAgent:    extractInsuredOrAgent(text),
		IssueDate:         extractIssueDate(text),
		InsuranceClass:    extractInsuranceClass(text),
		Financials:        extractFinancials(text),
	}
	if len(note.Financials) == 0 {
		note.Warnings = append(note.Warnings, "No financial line items detected.")
	}

	return &domain.ParsedDocument{DocType: domain.DocTypeDebitNote, DebitNote: note}, nil
}

var (
	accountNoRe = regexp.MustCompile(`(?i)ACC[O0Q]U?N?T\s+N[O0Q][.:;]?\s*([A-Z0-9 ()]+?)(?:\s+(?:POL|P0L|ENO|CLA)|\z)`)
	t01SuffixRe = regexp.MustCompile(`\(+T01\)+`)
	accountBase = regexp.MustCompile(`([A-Z0-9]{6,10})\s*(\(T01\))?`)
)

func extractAccountNumber(text string) string {
	return cleanAccountNumber(parser.ExtractFirst(accountNoRe, text))
}

func cleanAccountNumber(acc string) string {
	if acc == "" {
		return ""
	}
	acc = strings.ToUpper(acc)
	acc = strings.NewReplacer("O", "0", "Q", "0", "S", "5").Replace(acc)
	acc = t01SuffixRe.ReplaceAllString(acc, "(T01)")

	m := accountBase.FindStringSubmatch(acc)
	if m == nil {
		return acc
	}
	if m[2] != "" || strings.Contains(acc, "(T01)") {
		return m[1] + " (T01)"
	}
	return m[1]
}

var policyNoRe = regexp.MustCompile(`(?im)POLICY\s+N[O0Q][.:;]?\s*([A-Z0-9\-]{10,})`)

func extractPolicyNumber(text string) string {
	return parser.ExtractFirst(policyNoRe, text)
}

var (
	endorsementRe   = regexp.MustCompile(`(?i)ENO+R[S5]?\s*(?:N[O0Q])?[.:;]?\s*([A-Z0-9\-_ ]+)`)
	endorsementStop = regexp.MustCompile(`(CLASS|POLICY|ACC)\b`)
	spaceUnderscore = regexp.MustCompile(`[\s_]+`)
	repeatedHyphens = regexp.MustCompile(`-+`)
	monthNumberRe   = regexp.MustCompile(`^(JAN|FEB|MAR|APR|MAY|JUN|JUL|AUG|SEP|OCT|NOV|DEC)([A-Z]?)(\d{1,4})`)
)

func extractEndorsementNumber(text string) string {
	return cleanEndorsementNumber(parser.ExtractFirst(endorsementRe, text))
}

func cleanEndorsementNumber(raw string) string {
	if raw == "" {
		return ""
	}
	raw = strings.ToUpper(raw)

	// stop at the next field's keyword to avoid overcapture
	raw = parser.SplitBefore(endorsementStop, raw)

	raw = spaceUnderscore.ReplaceAllString(raw, "")
	raw = repeatedHyphens.ReplaceAllString(raw, "-")

	raw = strings.NewReplacer("TNOV", "NOV", "TNO", "NOV", "RNOV", "NOV").Replace(raw)

	if m := monthNumberRe.FindStringSubmatch(raw); m != nil {
		return strings.ReplaceAll(m[1]+"-"+m[2]+m[3], "--", "-")
	}
	return raw
}

var (
	insuredRe     = regexp.MustCompile(`(?:INSURED|CUSTOMER)\s+([A-Z ]{6,40})`)
	addressLeakRe = regexp.MustCompile(`\bFLAT\b|\bROOM\b|\bFLOOR\b`)
)

func extractInsuredOrAgent(text string) string {
	name := parser.ExtractFirst(insuredRe, text)
	if name == "" {
		return ""
	}
	// hard stop before the address leaks in
	return strings.TrimSpace(parser.SplitBefore(addressLeakRe, name))
}

var issueDateRe = regexp.MustCompile(`(?im)DATE[:;]?\s*(\d{1,2}\s+\w+\s+\d{4})`)

func extractIssueDate(text string) string {
	return parser.ISODate(parser.ExtractFirst(issueDateRe, text))
}

var insuranceClassRe = regexp.MustCompile(`(?i)CLAS[S]?\s*([0-9OQ]{2,3})[- ]*([A-Z ]+HELPER)`)

func extractInsuranceClass(text string) string {
	m := insuranceClassRe.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	code := strings.NewReplacer("O", "0", "Q", "0").Replace(m[1])
	class := strings.ToUpper(m[2])
	class = strings.NewReplacer(
		"OOMESTIC", "DOMESTIC",
		"DQMESTIC", "DOMESTIC",
		"XELPER", "HELPER",
	).Replace(class)

	out := code + " " + class
	return strings.NewReplacer("0O3", "003", "O03", "003", "0o3", "003").Replace(out)
}

var (
	grossPremiumRe = regexp.MustCompile(`(?i)GROSS\s+PREMIUM`)
	numericToken   = regexp.MustCompile(`\b\d{2,4}(?:[.,]\d{1,2})?\b`)
)

// financialFloor excludes small incidental numbers (page numbers, counts)
// from the financial token scan.
const financialFloor = 50.0

// extractFinancials scans all numeric tokens in the note body and takes the
// last five values above the floor as gross premium, commission, overriding
// insurer share, cost and profit, matching the fixed column layout of the
// form. One record is emitted per detected copy label; fewer than five
// qualifying values yields no records rather than a guess.
func extractFinancials(text string) []domain.FinancialItem {
	if !grossPremiumRe.MatchString(text) {
		return nil
	}

	var values []float64
	for _, tok := range numericToken.FindAllString(text, -1) {
		tok = strings.ReplaceAll(tok, ",", ".")
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			continue
		}
		if v > financialFloor {
			values = append(values, v)
		}
	}
	if len(values) < 5 {
		return nil
	}

	gross := values[len(values)-5]
	commission := values[len(values)-4]
	overriding := values[len(values)-3]
	cost := values[len(values)-2]
	profit := values[len(values)-1]

	copies := detectCopyTypes(text)
	if len(copies) == 0 {
		copies = []domain.CopyType{domain.CopyManager}
	}

	items := make([]domain.FinancialItem, 0, len(copies))
	for _, c := range copies {
		items = append(items, domain.FinancialItem{
			Category:          string(c),
			GrossPremium:      gross,
			Commission:        commission,
			OverridingInsurer: overriding,
			Cost:              cost,
			Profit:            profit,
		})
	}
	return items
}

// copyPatterns matches the per-recipient copy labels printed on the form,
// tolerant of the usual O/0 and Y/V confusions.
var copyPatterns = []struct {
	copyType domain.CopyType
	re       *regexp.Regexp
}{
	{domain.CopyManager, regexp.MustCompile(`(?i)MANAG[EA]R\s*C[O0]P[YV]`)},
	{domain.CopyAgent, regexp.MustCompile(`(?i)AGENT\s*C[O0]P[YV]`)},
	{domain.CopyAccount, regexp.MustCompile(`(?i)ACCOUNT\s*C[O0]P[YV]`)},
	{domain.CopyFile, regexp.MustCompile(`(?i)FILE\s*C[O0]P[YV]`)},
}

func detectCopyTypes(text string) []domain.CopyType {
	var found []domain.CopyType
	for _, p := range copyPatterns {
		if p.re.MatchString(text) {
			found = append(found, p.copyType)
		}
	}
	return found
}
