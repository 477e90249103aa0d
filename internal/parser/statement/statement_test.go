package statement

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleStatement = `ACCOUNT STATEMENT
Issued Date: 15 Noyember 20z5
ACCOUNT NUMBER: H0123456
15 November 2025
MR CHAN TAI MAN
LEYEL 5 MQNGKOK
XQWLOON
EFFECTIVE DATE DEBIT NOTE NO. 01/11/2025 B123-456
PREMIUM
PFF250,R03 100)
PFF251 200)
PFF252 300)
1 296 20
01/12/2025
B124-457
895.50
01/01/2026
B125-458
300
TOTAL HXS 2,491.70
30 November 2025
PREMIUM DUE DATE
`

func TestParseText_FullStatement(t *testing.T) {
	doc, err := ParseText(sampleStatement)
	require.NoError(t, err)
	require.NotNil(t, doc.AccountStatement)

	stmt := doc.AccountStatement
	assert.Equal(t, "2025-11-15", stmt.IssueDate)
	assert.Equal(t, "2025-11-30", stmt.PremiumDueDate)
	assert.Equal(t, "H0123456", stmt.AccountNumber)
	assert.Equal(t, "MR CHAN TAI MAN LEVEL 5 MONGKOK KOWLOON", stmt.Address)

	require.Len(t, stmt.Entries, 3)

	first := stmt.Entries[0]
	assert.Equal(t, "01/11/2025", first.EffectiveDate)
	require.NotNil(t, first.DebitNote)
	assert.Equal(t, "B123-456", *first.DebitNote)
	require.NotNil(t, first.PolicyNumber)
	assert.Equal(t, "PFF250R03", *first.PolicyNumber)
	require.NotNil(t, first.Nature)
	assert.Equal(t, 100.0, *first.Nature)
	assert.Equal(t, 1296.20, first.Premium)

	second := stmt.Entries[1]
	assert.Equal(t, "01/12/2025", second.EffectiveDate)
	require.NotNil(t, second.DebitNote)
	assert.Equal(t, "B124-457", *second.DebitNote)
	require.NotNil(t, second.PolicyNumber)
	assert.Equal(t, "PFF251", *second.PolicyNumber)
	assert.Equal(t, 895.50, second.Premium)

	third := stmt.Entries[2]
	assert.Equal(t, "01/01/2026", third.EffectiveDate)
	require.NotNil(t, third.PolicyNumber)
	assert.Equal(t, "PFF252", *third.PolicyNumber)
	assert.Equal(t, 300.0, third.Premium)

	assert.InDelta(t, 2491.70, stmt.TotalPremiumDue, 1e-9)
	assert.Empty(t, stmt.Warnings)
}

func TestParseText_MissingPolicyPadsAndWarns(t *testing.T) {
	// drop the third policy/nature pair; three structured rows remain
	var short string
	for _, line := range []string{
		"Issued Date: 15 November 2025",
		"EFFECTIVE DATE DEBIT NOTE NO. 01/11/2025 B123-456",
		"PREMIUM",
		"PFF250 100)",
		"PFF251 200)",
		"1 296 20",
		"01/12/2025",
		"B124-457",
		"895.50",
		"01/01/2026",
		"B125-458",
		"300",
		"TOTAL HXS 2,491.70",
	} {
		short += line + "\n"
	}

	doc, err := ParseText(short)
	require.NoError(t, err)
	stmt := doc.AccountStatement

	require.Len(t, stmt.Entries, 3)
	assert.NotNil(t, stmt.Entries[0].PolicyNumber)
	assert.NotNil(t, stmt.Entries[1].PolicyNumber)
	assert.Nil(t, stmt.Entries[2].PolicyNumber)
	assert.Nil(t, stmt.Entries[2].Nature)
	assert.Contains(t, stmt.Warnings, "Some policy numbers missing or unreliable.")
}

func TestParseText_EmptyInput(t *testing.T) {
	doc, err := ParseText("")
	require.NoError(t, err)
	stmt := doc.AccountStatement
	assert.Empty(t, stmt.IssueDate)
	assert.Equal(t, "N/A", stmt.AccountNumber)
	assert.Empty(t, stmt.Entries)
	assert.Zero(t, stmt.TotalPremiumDue)
}

func TestExtractPremiumDueDate_FallsBackToIssueDate(t *testing.T) {
	text := "Issued Date: 15 November 2025\nNOT A DATE\nPREMIUM DUE DATE\n"
	assert.Equal(t, "2025-11-15", extractPremiumDueDate(text))
}

func TestExtractPremiumDueDate_CorrectsOCRDate(t *testing.T) {
	text := "15 Noyember 20z5\nPREMIUM DUE DATE\n"
	assert.Equal(t, "2025-11-15", extractPremiumDueDate(text))
}

func TestExtractPolicyNaturePairs(t *testing.T) {
	row := "PFF25o 1O0) PFF251 2Q5.5O)"
	pairs := extractPolicyNaturePairs(row)
	require.Len(t, pairs, 2)
	assert.Equal(t, "PFF250", pairs[0].policy)
	assert.Equal(t, 100.0, pairs[0].nature)
	assert.Equal(t, 205.50, pairs[1].nature)

	row = "PFF250,R03 100) PFF251 205.50)"
	pairs = extractPolicyNaturePairs(row)
	require.Len(t, pairs, 2)
	assert.Equal(t, "PFF250R03", pairs[0].policy)
	assert.Equal(t, 100.0, pairs[0].nature)
	assert.Equal(t, "PFF251", pairs[1].policy)
	assert.Equal(t, 205.50, pairs[1].nature)
}

func TestExtractDateDebitPremium_OptionalParts(t *testing.T) {
	text := "01/11/2025\nB100-1\n250.00\n02/11/2025\n03/11/2025\nB102-3\n"
	entries := extractDateDebitPremium(text)
	require.Len(t, entries, 3)

	assert.Equal(t, "01/11/2025", entries[0].EffectiveDate)
	require.NotNil(t, entries[0].DebitNote)
	assert.Equal(t, 250.0, entries[0].Premium)

	// a date followed directly by another date has neither debit nor premium
	assert.Nil(t, entries[1].DebitNote)
	assert.Zero(t, entries[1].Premium)

	// a trailing debit reference with no premium line
	require.NotNil(t, entries[2].DebitNote)
	assert.Equal(t, "B102-3", *entries[2].DebitNote)
	assert.Zero(t, entries[2].Premium)
}

func TestExtractAddress(t *testing.T) {
	text := "HEADER\n15 November 2025\nMR WONG\nKOWLOON\nEFFECTIVE DATE\nrest"
	assert.Equal(t, "MR WONG KOWLOON", extractAddress(text))

	// no date line means no capture window
	assert.Equal(t, "", extractAddress("MR WONG\nEFFECTIVE DATE\n"))
}
