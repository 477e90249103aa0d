package export

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"insdocs/internal/domain"
)

func TestWriteHeader(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.WriteHeader())
	w.Flush()
	require.NoError(t, w.Error())

	r := csv.NewReader(&buf)
	row, err := r.Read()
	require.NoError(t, err)

	assert.Len(t, row, 9)
	assert.Equal(t, "Document Type", row[0])
	assert.Equal(t, "Created At", row[8])
}

func TestWriteSummaries(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.WriteHeader())
	require.NoError(t, w.WriteSummaries([]domain.DocumentSummary{
		{
			ID:             uuid.New(),
			DocType:        domain.DocTypeDebitNote,
			IssueDate:      "2025-11-15",
			PartyName:      "CHAN TAI MAN",
			InsuranceClass: "003 DOMESTIC HELPER",
			PolicyNumber:   "ABC-1234567890",
			AccountNumber:  "H012345 (T01)",
			UploadedBy:     "ops@test.com",
			FileName:       "note.pdf",
			CreatedAt:      time.Date(2025, 11, 16, 9, 0, 0, 0, time.UTC),
		},
		{
			DocType:   domain.DocTypeAccountStatement,
			PartyName: "MR CHAN TAI MAN, KOWLOON",
		},
	}))
	w.Flush()
	require.NoError(t, w.Error())

	r := csv.NewReader(&buf)
	rows, err := r.ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "debit_note", rows[1][0])
	assert.Equal(t, "2025-11-15", rows[1][1])
	assert.Equal(t, "ABC-1234567890", rows[1][4])
	assert.Equal(t, "2025-11-16T09:00:00Z", rows[1][8])

	// Commas inside fields survive the round trip.
	assert.Equal(t, "MR CHAN TAI MAN, KOWLOON", rows[2][2])
}

func TestSanitizeFilename(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"documents", "documents"},
		{"debit note export!", "debit_note_export"},
		{"a//b\\c", "a_b_c"},
		{"__already__clean__", "already_clean"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, SanitizeFilename(tc.in), tc.in)
	}
}

func TestBuildFilename(t *testing.T) {
	name := BuildFilename("debit_note", "csv")
	assert.Contains(t, name, "debit_note_")
	assert.Contains(t, name, time.Now().Format("2006-01-02"))
	assert.Contains(t, name, ".csv")
}

func TestWriteXLSXRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	err := WriteXLSX(&buf, []domain.DocumentSummary{
		{
			DocType:      domain.DocTypeRenewalNotice,
			PolicyNumber: "ABC-123-456",
			PartyName:    "MR WONG SIU MING",
			CreatedAt:    time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC),
		},
	})
	require.NoError(t, err)
	assert.NotZero(t, buf.Len())
}
