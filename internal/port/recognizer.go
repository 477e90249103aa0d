package port

import (
	"context"

	"insdocs/internal/domain"
)

// RecognizeInput carries the raw file content handed to text recognition.
type RecognizeInput struct {
	Data     []byte
	FileType domain.FileType
}

// RecognizeOutput contains the recognized text of an entire document, pages
// concatenated in order.
type RecognizeOutput struct {
	Text  string
	Pages int
}

// TextRecognizer abstracts OCR and plain-text extraction from uploaded files.
type TextRecognizer interface {
	Recognize(ctx context.Context, input RecognizeInput) (*RecognizeOutput, error)
}
