package persons

import (
	"fmt"
	"io"
	"strings"

	"github.com/annuyadav31/CRUDExample/internal/domain/shared"
)

// ExportFormat names a supported export file type.
type ExportFormat string

const (
	ExportFormatCSV   ExportFormat = "csv"
	ExportFormatPDF   ExportFormat = "pdf"
	ExportFormatExcel ExportFormat = "xlsx"
)

// ExportFormats lists every supported format.
var ExportFormats = []ExportFormat{ExportFormatCSV, ExportFormatPDF, ExportFormatExcel}

// ParseExportFormat resolves s case-insensitively; "excel" is accepted for xlsx.
func ParseExportFormat(s string) (ExportFormat, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "csv":
		return ExportFormatCSV, nil
	case "pdf":
		return ExportFormatPDF, nil
	case "xlsx", "excel":
		return ExportFormatExcel, nil
	default:
		return "", fmt.Errorf("unsupported export format %q: %w", s, shared.ErrInvalidArgument)
	}
}

// ContentType returns the MIME type of the format.
func (f ExportFormat) ContentType() string {
	switch f {
	case ExportFormatCSV:
		return "text/csv"
	case ExportFormatPDF:
		return "application/pdf"
	case ExportFormatExcel:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	default:
		return "application/octet-stream"
	}
}

// FileName returns the download file name used for the format.
func (f ExportFormat) FileName() string {
	return "persons." + string(f)
}

// ExportColumns is the column order shared by every exporter.
var ExportColumns = []string{
	"Person Name", "Email", "Date of Birth", "Age", "Gender", "Country", "Address", "Receive News Letters",
}

// ExportRow renders a response in ExportColumns order.
func ExportRow(p *PersonResponse) []string {
	return []string{
		p.PersonName,
		p.Email,
		p.DateOfBirthString(DateLayout),
		p.AgeString(),
		p.Gender,
		p.CountryName(),
		p.Address,
		fmt.Sprintf("%t", p.ReceiveNewsLetters),
	}
}

// Exporter writes a list of persons into a document.
type Exporter interface {
	Format() ExportFormat
	Export(w io.Writer, persons []*PersonResponse) error
}
