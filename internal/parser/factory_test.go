package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"insdocs/internal/domain"
	"insdocs/internal/parser"

	_ "insdocs/internal/parser/debitnote"
	_ "insdocs/internal/parser/renewal"
	_ "insdocs/internal/parser/statement"
)

func TestParse_UnsupportedType(t *testing.T) {
	for _, tag := range []string{"unknown_type", "", "invoice", "DEBIT_NOTE"} {
		_, err := parser.Parse("some text", domain.DocumentType(tag))
		assert.ErrorIs(t, err, domain.ErrUnsupportedDocumentType, "tag %q", tag)
	}
}

func TestParse_DispatchesByType(t *testing.T) {
	doc, err := parser.Parse("", domain.DocTypeDebitNote)
	require.NoError(t, err)
	require.NotNil(t, doc.DebitNote)
	assert.Equal(t, domain.DocTypeDebitNote, doc.DocType)

	doc, err = parser.Parse("", domain.DocTypeAccountStatement)
	require.NoError(t, err)
	require.NotNil(t, doc.AccountStatement)

	doc, err = parser.Parse("", domain.DocTypeRenewalNotice)
	require.NoError(t, err)
	require.NotNil(t, doc.RenewalNotice)
}

func TestParse_EmptyInputYieldsEmptyFields(t *testing.T) {
	doc, err := parser.Parse("", domain.DocTypeDebitNote)
	require.NoError(t, err)
	note := doc.DebitNote
	assert.Empty(t, note.AccountNumber)
	assert.Empty(t, note.PolicyNumber)
	assert.Empty(t, note.IssueDate)
	assert.Empty(t, note.Financials)
}
