// Package textfix repairs known OCR recognition errors in scanned insurance
// documents before any structural parsing. Corrections are ordered literal
// substitution tables kept as data so they can be tuned and tested without
// touching extraction logic.
package textfix

import "strings"

// Rule is a single literal substring correction.
type Rule struct {
	From string
	To   string
}

// Ruleset is an ordered list of corrections. Order matters: later rules may
// act on text already fixed by earlier rules.
type Ruleset []Rule

// Apply runs every rule in order against s. Pure; an empty input returns an
// empty string, and input containing no trigger substrings passes through
// unchanged.
func (rs Ruleset) Apply(s string) string {
	if s == "" {
		return ""
	}
	for _, r := range rs {
		s = strings.ReplaceAll(s, r.From, r.To)
	}
	return s
}

// DebitNoteRules fixes misreads seen on scanned debit notes: insurance
// vocabulary, policy/account noise, and the copy-label keyword the financial
// extractor anchors on.
var DebitNoteRules = Ruleset{
	// insurance terms
	{"OOMEST1C", "DOMESTIC"},
	{"OOMESTIC", "DOMESTIC"},
	{"DQMESTIC", "DOMESTIC"},
	{"XELPER", "HELPER"},

	// policy / account noise
	{"Roz", "R03"},
	{"Ros", "R03"},
	{"ROZ", "R03"},

	// account suffix
	{"To1", "(T01)"},
	{"T01)", "(T01)"},

	// COPY label noise; the copy-type detector depends on these
	{"CQPY", "COPY"},
	{"C0PY", "COPY"},
	{"COPV", "COPY"},
	{"COpy", "COPY"},
	{"CQRY", "COPY"},
	{"CQFY", "COPY"},
}

// StatementTextRules fixes misreads seen on account statement headers and
// addresses.
var StatementTextRules = Ruleset{
	{"i1", "11"},
	{"Noyember", "November"},
	{"20z5", "2025"},
	{"EOWARD", "EDWARD"},
	{"LEYEL", "LEVEL"},
	{"MQNGKOK", "MONGKOK"},
	{"MONGKOX", "MONGKOK"},
	{"XQWLOON", "KOWLOON"},
	{"XOWI_OON_", "KOWLOON"},
	{"S2E", "SZE"},
}

// StatementNumericRules fixes digit-for-letter confusions inside numeric
// columns of account statements.
var StatementNumericRules = Ruleset{
	{"O", "0"},
	{"Q", "0"},
	{"l", "1"},
	{"I", "1"},
	{"7o", "70"},
	{"QQ", "00"},
}

// StatementEntryRules cleans the entry block of an account statement before
// the row scan: debit note reference prefixes and stray Q digits.
var StatementEntryRules = Ruleset{
	{"T,", "TJ"},
	{"Tj", "TJ"},
	{"t,", "TJ"},
	{"T.", "TJ"},
	{"PFF25o", "PFF250"},
	{"Ro", "R0"},
	{"Q", "0"},
}

// DigitRules maps characters the engine commonly misreads inside numbers to
// their likely digits.
var DigitRules = Ruleset{
	{"Q", "0"},
	{"o", "0"},
	{"O", "0"},
	{"z", "2"},
	{"Z", "2"},
	{"l", "1"},
	{"|", "1"},
	{"I", "1"},
}

// CollapseLines normalizes line structure: CR to LF, trimmed lines, empty
// lines removed, runs of inner whitespace collapsed to single spaces.
func CollapseLines(raw string) string {
	if raw == "" {
		return ""
	}
	text := strings.ReplaceAll(raw, "\r", "\n")
	var out []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.Join(strings.Fields(line), " ")
		if line != "" {
			out = append(out, line)
		}
	}
	return strings.Join(out, "\n")
}
