package documents

import (
	"fmt"
	"io"
	"strings"

	"github.com/annuyadav31/CRUDExample/internal/domain/countries"
	"github.com/annuyadav31/CRUDExample/internal/pkg/logger"

	"github.com/xuri/excelize/v2"
)

// CountriesSheet is the worksheet read by the country upload. The first
// sheet of the workbook is used when it is missing.
const CountriesSheet = "Countries"

// excelCountryReader struct that implements the CountrySheetReader interface
type excelCountryReader struct {
	logger logger.Logger
}

// NewExcelCountryReader creates and returns a new instance of excelCountryReader
func NewExcelCountryReader(logger logger.Logger) (countries.CountrySheetReader, error) {
	return &excelCountryReader{
		logger: logger,
	}, nil
}

// ReadCountryNames returns column A of every row after the header row.
func (r *excelCountryReader) ReadCountryNames(in io.Reader) ([]string, error) {
	f, err := excelize.OpenReader(in)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			r.logger.Warn("failed to close workbook: ", err)
		}
	}()

	sheet := CountriesSheet
	if idx, err := f.GetSheetIndex(sheet); err != nil || idx == -1 {
		sheet = f.GetSheetName(0)
		if sheet == "" {
			return nil, fmt.Errorf("workbook has no worksheets")
		}
		r.logger.Debug("Sheet ", CountriesSheet, " not found, reading ", sheet)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheet, err)
	}

	var names []string
	for i, row := range rows {
		if i == 0 || len(row) == 0 {
			continue
		}
		if name := strings.TrimSpace(row[0]); name != "" {
			names = append(names, name)
		}
	}
	return names, nil
}
