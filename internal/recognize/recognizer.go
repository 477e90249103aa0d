// Package recognize turns uploaded document files into plain text. Scanned
// PDFs go through pdftoppm and tesseract; DOCX, XLSX and TXT files are read
// directly without OCR.
package recognize

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"insdocs/internal/domain"
	"insdocs/internal/port"
)

// Config holds the OCR toolchain settings. Zero values fall back to the
// binaries on PATH, English, and 300 DPI rasterization.
type Config struct {
	Pdftoppm      string
	Tesseract     string
	TesseractLang string
	DPI           int
	MaxPages      int
}

// Recognizer implements port.TextRecognizer on top of the poppler and
// tesseract command line tools.
type Recognizer struct {
	cfg    Config
	runner Runner
}

// NewRecognizer builds a Recognizer, filling config defaults.
func NewRecognizer(cfg Config) *Recognizer {
	if cfg.Pdftoppm == "" {
		cfg.Pdftoppm = "pdftoppm"
	}
	if cfg.Tesseract == "" {
		cfg.Tesseract = "tesseract"
	}
	if cfg.TesseractLang == "" {
		cfg.TesseractLang = "eng"
	}
	if cfg.DPI <= 0 {
		cfg.DPI = 300
	}
	return &Recognizer{cfg: cfg, runner: execRunner{}}
}

// Recognize extracts the full text of input, pages concatenated in order.
func (r *Recognizer) Recognize(ctx context.Context, input port.RecognizeInput) (*port.RecognizeOutput, error) {
	switch input.FileType {
	case domain.FileTypePDF:
		return r.ocrPDF(ctx, input.Data)
	case domain.FileTypeTXT:
		return &port.RecognizeOutput{Text: string(input.Data), Pages: 1}, nil
	case domain.FileTypeDOCX:
		text, err := docxText(input.Data)
		if err != nil {
			return nil, fmt.Errorf("recognize: docx: %w", err)
		}
		return &port.RecognizeOutput{Text: text, Pages: 1}, nil
	case domain.FileTypeXLSX:
		text, err := xlsxText(input.Data)
		if err != nil {
			return nil, fmt.Errorf("recognize: xlsx: %w", err)
		}
		return &port.RecognizeOutput{Text: text, Pages: 1}, nil
	default:
		return nil, fmt.Errorf("recognize: %w: %q", domain.ErrUnsupportedFileType, input.FileType)
	}
}

// ocrPDF rasterizes every page with pdftoppm and runs tesseract on each
// image. Page order follows the rendered file names.
func (r *Recognizer) ocrPDF(ctx context.Context, data []byte) (*port.RecognizeOutput, error) {
	tmpDir, err := os.MkdirTemp("", "insdocs-ocr-*")
	if err != nil {
		return nil, fmt.Errorf("recognize: temp dir: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	pdfPath := filepath.Join(tmpDir, "input.pdf")
	if err := os.WriteFile(pdfPath, data, 0o600); err != nil {
		return nil, fmt.Errorf("recognize: write pdf: %w", err)
	}

	prefix := filepath.Join(tmpDir, "page")
	// pdftoppm -r <dpi> -png input.pdf <tmp>/page
	if _, errb, err := r.runner.Run(ctx, r.cfg.Pdftoppm, "-r", fmt.Sprintf("%d", r.cfg.DPI), "-png", pdfPath, prefix); err != nil {
		return nil, fmt.Errorf("recognize: pdftoppm: %w: %s", err, truncate(string(errb), 1<<10))
	}

	matches, _ := filepath.Glob(prefix + "-*.png")
	sort.Strings(matches)
	if r.cfg.MaxPages > 0 && len(matches) > r.cfg.MaxPages {
		matches = matches[:r.cfg.MaxPages]
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("recognize: pdftoppm rendered no pages")
	}

	var b strings.Builder
	for _, img := range matches {
		txt, err := r.tesseract(ctx, img)
		if err != nil {
			return nil, err
		}
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		b.WriteString(txt)
	}
	return &port.RecognizeOutput{Text: b.String(), Pages: len(matches)}, nil
}

func (r *Recognizer) tesseract(ctx context.Context, imgPath string) (string, error) {
	// tesseract <img> stdout -l <lang>
	out, errb, err := r.runner.Run(ctx, r.cfg.Tesseract, imgPath, "stdout", "-l", r.cfg.TesseractLang)
	if err != nil {
		return "", fmt.Errorf("recognize: tesseract: %w: %s", err, truncate(string(errb), 1<<10))
	}
	return string(out), nil
}
