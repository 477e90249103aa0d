// Package statement extracts structured fields and entry rows from OCR text
// of scanned account statements.
package statement

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"insdocs/internal/domain"
	"insdocs/internal/parser"
	"insdocs/internal/textfix"
)

func init() {
	parser.Register(domain.DocTypeAccountStatement, ParseText)
}

// ParseText recovers an account statement record from raw OCR text. The
// entry table is rebuilt from two independent passes (policy/nature pairs and
// date/debit/premium triples) aligned by index; a count mismatch pads
// trailing entries with nil policy/nature and raises a warning.
func ParseText(rawText string) (*domain.ParsedDocument, error) {
	text := textfix.StatementTextRules.Apply(rawText)

	stmt := &domain.ParsedAccountStatement{
		IssueDate:      extractIssueDate(text),
		PremiumDueDate: extractPremiumDueDate(text),
		AccountNumber:  extractAccountNumber(text),
		Address:        extractAddress(text),
		Entries:        parseEntries(text),
	}

	total := 0.0
	for _, e := range stmt.Entries {
		total += e.Premium
	}
	stmt.TotalPremiumDue = math.Round(total*100) / 100

	for _, e := range stmt.Entries {
		if e.PolicyNumber == nil || *e.PolicyNumber == "" {
			stmt.Warnings = append(stmt.Warnings, "Some policy numbers missing or unreliable.")
			break
		}
	}

	return &domain.ParsedDocument{DocType: domain.DocTypeAccountStatement, AccountStatement: stmt}, nil
}

var issuedDateRe = regexp.MustCompile(`(?i)Issued Date\s*[:：]?\s*.*?(\d{1,2}\s+[A-Za-z]+\s+\d{4})`)

func extractIssueDate(text string) string {
	return parser.ISODate(parser.ExtractFirst(issuedDateRe, text))
}

// extractPremiumDueDate reads the date printed on the line above the
// "PREMIUM DUE DATE" label, retrying after OCR correction, and falls back to
// the issue date when the label or date is unreadable.
func extractPremiumDueDate(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if !strings.Contains(strings.ToUpper(line), "PREMIUM DUE DATE") || i == 0 {
			continue
		}
		dateLine := strings.TrimSpace(lines[i-1])
		if iso := parser.ISODate(dateLine); iso != "" {
			return iso
		}
		if iso := parser.ISODate(textfix.StatementTextRules.Apply(dateLine)); iso != "" {
			return iso
		}
	}
	return extractIssueDate(text)
}

var (
	longDateLineRe  = regexp.MustCompile(`^\d{1,2}\s+[A-Za-z]+\s+\d{4}`)
	effectiveDateRe = regexp.MustCompile(`EFFECTIVE DATE`)
)

// extractAddress collects the lines between the issue date line and the
// "EFFECTIVE DATE" column header, where the recipient address is printed.
func extractAddress(text string) string {
	var addressLines []string
	capture := false
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if longDateLineRe.MatchString(line) {
			capture = true
			continue
		}
		if effectiveDateRe.MatchString(line) {
			break
		}
		if capture {
			addressLines = append(addressLines, line)
		}
	}
	return strings.Join(addressLines, " ")
}

var accountNumberRe = regexp.MustCompile(`(?i)ACCOUNT NUMBER\s*[:：]?\s*([A-Z0-9]+)`)

func extractAccountNumber(text string) string {
	if acc := parser.ExtractFirst(accountNumberRe, text); acc != "" {
		return acc
	}
	return "N/A"
}

// entryRowSpanRe scopes the policy/nature pair scan to the block between the
// PREMIUM column header and the TOTAL ... HXS footer.
var entryRowSpanRe = regexp.MustCompile(`(?is)PREM[1I]UM\s*(.*?)T[O0]TAL\s+HXS`)

func parseEntries(text string) []domain.ParsedStatementEntry {
	text = textfix.StatementEntryRules.Apply(text)

	var pairs []policyNature
	if m := entryRowSpanRe.FindStringSubmatch(text); m != nil {
		pairs = extractPolicyNaturePairs(m[1])
	}

	var structured []domain.ParsedStatementEntry
	if header, ok := extractHeaderEntry(text); ok {
		structured = append(structured, header)
	}
	structured = append(structured, extractDateDebitPremium(text)...)

	// Align by index: pair i belongs to entry i. A shorter pair sequence
	// leaves trailing entries without policy/nature.
	for i := range structured {
		if i < len(pairs) {
			policy := pairs[i].policy
			nature := pairs[i].nature
			structured[i].PolicyNumber = &policy
			structured[i].Nature = &nature
		}
	}
	return structured
}

type policyNature struct {
	policy string
	nature float64
}

// pairedTokenRe matches one "policy_token nature_value)" pair of the big
// entry row, tolerating digit confusions inside the nature figure.
var pairedTokenRe = regexp.MustCompile(`(?i)([A-Za-z0-9,\-]+)\s+([\dOQol.,]+)\)`)

func extractPolicyNaturePairs(rowText string) []policyNature {
	var pairs []policyNature
	for _, m := range pairedTokenRe.FindAllStringSubmatch(rowText, -1) {
		policy := strings.NewReplacer(
			" ", "", ",", "", "o", "0", "O", "0", "l", "1",
		).Replace(m[1])

		natureRaw := strings.NewReplacer(
			"O", "0", "Q", "0", "o", "0", "l", "1", ",", "",
		).Replace(m[2])
		nature, err := strconv.ParseFloat(natureRaw, 64)
		if err != nil {
			nature = 0.0
		}

		pairs = append(pairs, policyNature{policy: policy, nature: nature})
	}
	return pairs
}

var (
	entryDateRe  = regexp.MustCompile(`^\d{2}/\d{2}/\d{4}$`)
	entryDebitRe = regexp.MustCompile(`(?i)^B[\w\-?]+$`)
	headerRowRe  = regexp.MustCompile(`(?i)EFFECTIVE\s+DATE\s+DEBIT\s+NOTE\s+NO\.\s*(\d{2}/\d{2}/\d{4})\s+(B[\w\-?]+)`)
	anyDigitRe   = regexp.MustCompile(`\d`)
)

// extractHeaderEntry reads the first entry, which shares a line with the
// "EFFECTIVE DATE DEBIT NOTE NO." column header; its premium is the numeric
// line immediately above the first stand-alone date line.
func extractHeaderEntry(text string) (domain.ParsedStatementEntry, bool) {
	m := headerRowRe.FindStringSubmatch(text)
	if m == nil {
		return domain.ParsedStatementEntry{}, false
	}
	debit := m[2]
	return domain.ParsedStatementEntry{
		EffectiveDate: m[1],
		DebitNote:     &debit,
		Premium:       extractHeaderPremium(text),
	}, true
}

func extractHeaderPremium(text string) float64 {
	lines := parser.NonEmptyLines(text)
	for i, line := range lines {
		if entryDateRe.MatchString(line) {
			if i > 0 && anyDigitRe.MatchString(lines[i-1]) {
				return textfix.CleanNumber(lines[i-1])
			}
			break
		}
	}
	return 0.0
}

// extractDateDebitPremium walks the entry lines as a small state machine:
// a date-shaped line opens an entry, an optional debit-reference line and an
// optional premium line complete it.
func extractDateDebitPremium(text string) []domain.ParsedStatementEntry {
	lines := parser.NonEmptyLines(text)
	var entries []domain.ParsedStatementEntry

	for i := 0; i < len(lines); i++ {
		line := lines[i]
		if !entryDateRe.MatchString(line) {
			continue
		}

		entry := domain.ParsedStatementEntry{
			EffectiveDate: line,
			Premium:       0.0,
		}

		if i+1 < len(lines) && entryDebitRe.MatchString(lines[i+1]) {
			debit := lines[i+1]
			entry.DebitNote = &debit
			i++
		}

		if i+1 < len(lines) {
			next := lines[i+1]
			if !entryDateRe.MatchString(next) && !entryDebitRe.MatchString(next) && anyDigitRe.MatchString(next) {
				entry.Premium = textfix.CleanNumber(next)
				i++
			}
		}

		entries = append(entries, entry)
	}
	return entries
}
