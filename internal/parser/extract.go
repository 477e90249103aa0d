package parser

import (
	"regexp"
	"strings"
	"time"
)

// ExtractFirst returns the first capture group of the first match of re in
// text, or the whole match when re has no groups. First match wins; a miss is
// an empty string, never an error.
func ExtractFirst(re *regexp.Regexp, text string) string {
	m := re.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	if len(m) > 1 {
		return strings.TrimSpace(m[1])
	}
	return strings.TrimSpace(m[0])
}

// dateLayouts are the date grammars OCR output is expected to carry.
var dateLayouts = []string{
	"2 January 2006",
	"02/01/2006",
}

// ISODate normalizes "15 November 2025" or "15/11/2025" to "2025-11-15".
// Input that fits neither grammar yields the empty string; date parse
// failures are swallowed, never raised.
func ISODate(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format("2006-01-02")
		}
	}
	return ""
}

// DateAfter finds the first dd/mm/yyyy date following label anywhere in
// text, spanning line breaks. Miss yields an empty string.
func DateAfter(label, text string) string {
	re := regexp.MustCompile(`(?is)` + regexp.QuoteMeta(label) + `.*?(\d{2}/\d{2}/\d{4})`)
	return ExtractFirst(re, text)
}

// SplitBefore returns the part of s preceding the first match of re, or all
// of s when re does not match.
func SplitBefore(re *regexp.Regexp, s string) string {
	if loc := re.FindStringIndex(s); loc != nil {
		return s[:loc[0]]
	}
	return s
}

// NonEmptyLines splits s into trimmed, non-empty lines.
func NonEmptyLines(s string) []string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}
