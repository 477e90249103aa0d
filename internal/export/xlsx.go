package export

import (
	"fmt"
	"io"
	"time"

	"github.com/xuri/excelize/v2"

	"insdocs/internal/domain"
)

const sheetName = "Documents"

// WriteXLSX writes document summaries as a single-sheet workbook.
func WriteXLSX(w io.Writer, rows []domain.DocumentSummary) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
		return fmt.Errorf("export.WriteXLSX: %w", err)
	}

	header := make([]interface{}, len(columns))
	for i, c := range columns {
		header[i] = c
	}
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return fmt.Errorf("export.WriteXLSX: %w", err)
	}

	for i := range rows {
		s := &rows[i]
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("export.WriteXLSX: %w", err)
		}
		row := []interface{}{
			string(s.DocType),
			s.IssueDate,
			s.PartyName,
			s.InsuranceClass,
			s.PolicyNumber,
			s.AccountNumber,
			s.UploadedBy,
			s.FileName,
			s.CreatedAt.Format(time.RFC3339),
		}
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return fmt.Errorf("export.WriteXLSX: %w", err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("export.WriteXLSX: %w", err)
	}
	return nil
}
