// Package parser routes raw OCR text to the document-type-specific field
// extraction pipelines and provides the regex helpers they share.
package parser

import (
	"fmt"

	"insdocs/internal/domain"
)

// Func parses normalized-or-raw OCR text into a ParsedDocument.
type Func func(rawText string) (*domain.ParsedDocument, error)

// registry of document parsers, populated by init() in each document-type
// package or explicitly via Register.
var registry = map[domain.DocumentType]Func{}

// Register registers a document parser for a document type.
func Register(docType domain.DocumentType, fn Func) {
	registry[docType] = fn
}

// Parse dispatches rawText to the parser registered for docType. An
// unrecognized docType is a caller bug and the one hard failure of the
// pipeline; every other irregularity degrades into empty fields and warnings
// inside the per-type parsers.
func Parse(rawText string, docType domain.DocumentType) (*domain.ParsedDocument, error) {
	fn, ok := registry[docType]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedDocumentType, docType)
	}
	return fn(rawText)
}
