// Command scan runs OCR and field extraction on a local file and prints the
// result as JSON. No server or database is required.
// Usage: go run ./cmd/scan -type debit_note path/to/file.pdf
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"insdocs/internal/config"
	"insdocs/internal/domain"
	"insdocs/internal/parser"
	"insdocs/internal/port"
	"insdocs/internal/recognize"
	"insdocs/internal/validator"

	_ "insdocs/internal/parser/debitnote"
	_ "insdocs/internal/parser/renewal"
	_ "insdocs/internal/parser/statement"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	docTypeFlag := flag.String("type", "", "document type: debit_note, account_statement or renewal_notice")
	rawFlag := flag.Bool("raw", false, "print recognized text instead of extracted fields")
	flag.Parse()

	if flag.NArg() != 1 {
		return fmt.Errorf("usage: scan -type <doc_type> [-raw] <file>")
	}
	path := flag.Arg(0)

	docType := domain.DocumentType(*docTypeFlag)
	if !*rawFlag && !docType.Valid() {
		return fmt.Errorf("%w: %q", domain.ErrUnsupportedDocumentType, *docTypeFlag)
	}

	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	fileType, ok := domain.AllowedExtensions[ext]
	if !ok {
		return fmt.Errorf("%w: %q", domain.ErrUnsupportedFileType, ext)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	rec := recognize.NewRecognizer(recognize.Config{
		Pdftoppm:      cfg.OCR.Pdftoppm,
		Tesseract:     cfg.OCR.Tesseract,
		TesseractLang: cfg.OCR.Lang,
		DPI:           cfg.OCR.DPI,
		MaxPages:      cfg.OCR.MaxPages,
	})

	out, err := rec.Recognize(context.Background(), port.RecognizeInput{
		Data:     data,
		FileType: fileType,
	})
	if err != nil {
		return fmt.Errorf("recognizing %s: %w", path, err)
	}

	if *rawFlag {
		fmt.Println(out.Text)
		return nil
	}

	doc, err := parser.Parse(out.Text, docType)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	engine := validator.NewEngine(validator.DefaultRules())
	doc.AppendWarnings(engine.Validate(doc)...)

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
