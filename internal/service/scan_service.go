package service

import (
	"context"
	"fmt"

	"insdocs/internal/domain"
	"insdocs/internal/parser"
	"insdocs/internal/port"
	"insdocs/internal/validator"
)

// MaxScanSize caps the upload accepted by the scan endpoint.
const MaxScanSize = 16 << 20

// ScanInput is a single document scan request.
type ScanInput struct {
	Data     []byte
	FileName string
	DocType  domain.DocumentType
}

// ScanOutput carries the extraction result and the raw recognized text.
type ScanOutput struct {
	Document *domain.ParsedDocument `json:"document"`
	RawText  string                 `json:"raw_text"`
	Pages    int                    `json:"pages"`
}

// ScanService runs OCR and field extraction without persisting anything.
type ScanService interface {
	Scan(ctx context.Context, input ScanInput) (*ScanOutput, error)
}

type scanService struct {
	recognizer port.TextRecognizer
	rules      *validator.Engine
}

// NewScanService creates a ScanService using the given text recognizer.
func NewScanService(recognizer port.TextRecognizer) ScanService {
	return &scanService{
		recognizer: recognizer,
		rules:      validator.NewEngine(validator.DefaultRules()),
	}
}

func (s *scanService) Scan(ctx context.Context, input ScanInput) (*ScanOutput, error) {
	if len(input.Data) == 0 {
		return nil, fmt.Errorf("scan.Scan: %w: empty file", domain.ErrRecognitionFailed)
	}
	if len(input.Data) > MaxScanSize {
		return nil, domain.ErrFileTooLarge
	}

	// Scans come in as rendered documents only, never spreadsheets.
	out, err := s.recognizer.Recognize(ctx, port.RecognizeInput{
		Data:     input.Data,
		FileType: domain.FileTypePDF,
	})
	if err != nil {
		return nil, fmt.Errorf("scan.Scan: %w: %v", domain.ErrRecognitionFailed, err)
	}

	doc, err := parser.Parse(out.Text, input.DocType)
	if err != nil {
		return nil, fmt.Errorf("scan.Scan: %w", err)
	}
	doc.AppendWarnings(s.rules.Validate(doc)...)

	return &ScanOutput{Document: doc, RawText: out.Text, Pages: out.Pages}, nil
}
