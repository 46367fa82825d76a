package documents

import (
	"fmt"
	"io"

	"github.com/annuyadav31/CRUDExample/internal/domain/persons"
	"github.com/annuyadav31/CRUDExample/internal/pkg/logger"

	"github.com/xuri/excelize/v2"
)

// PersonsSheet is the worksheet the Excel export writes to.
const PersonsSheet = "PersonsSheet"

// excelExporter struct that implements the Exporter interface for xlsx workbooks
type excelExporter struct {
	logger logger.Logger
}

// NewExcelExporter creates and returns a new instance of excelExporter
func NewExcelExporter(logger logger.Logger) (persons.Exporter, error) {
	return &excelExporter{
		logger: logger,
	}, nil
}

func (e *excelExporter) Format() persons.ExportFormat {
	return persons.ExportFormatExcel
}

// Export writes a styled header row and one typed row per person into PersonsSheet.
func (e *excelExporter) Export(w io.Writer, list []*persons.PersonResponse) error {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			e.logger.Warn("failed to close workbook: ", err)
		}
	}()

	if err := f.SetSheetName("Sheet1", PersonsSheet); err != nil {
		return fmt.Errorf("failed to name worksheet: %w", err)
	}

	header := make([]interface{}, len(persons.ExportColumns))
	for i, col := range persons.ExportColumns {
		header[i] = col
	}
	if err := f.SetSheetRow(PersonsSheet, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#D9E1F2"}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}
	lastCol, err := excelize.ColumnNumberToName(len(persons.ExportColumns))
	if err != nil {
		return fmt.Errorf("failed to resolve last column: %w", err)
	}
	if err := f.SetCellStyle(PersonsSheet, "A1", lastCol+"1", headerStyle); err != nil {
		return fmt.Errorf("failed to style header: %w", err)
	}

	for i, p := range list {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("failed to resolve row %d: %w", i+2, err)
		}
		row := excelRow(p)
		if err := f.SetSheetRow(PersonsSheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write row for person %s: %w", p.PersonID, err)
		}
	}

	if err := f.SetColWidth(PersonsSheet, "A", lastCol, 22); err != nil {
		return fmt.Errorf("failed to size columns: %w", err)
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}

	e.logger.Debug(fmt.Sprintf("Wrote %d persons as xlsx", len(list)))
	return nil
}

// excelRow keeps Age numeric and ReceiveNewsLetters boolean so the sheet can sort and filter them.
func excelRow(p *persons.PersonResponse) []interface{} {
	text := persons.ExportRow(p)
	row := make([]interface{}, len(text))
	for i, v := range text {
		row[i] = v
	}
	if p.Age != nil {
		row[3] = *p.Age
	}
	row[7] = p.ReceiveNewsLetters
	return row
}
