package documents

import (
	"fmt"
	"io"
	"time"

	"github.com/annuyadav31/CRUDExample/internal/domain/persons"
	"github.com/annuyadav31/CRUDExample/internal/pkg/logger"

	"github.com/go-pdf/fpdf"
)

// pdfColumnWidths are in millimetres and fill the printable width of a landscape A4 page.
var pdfColumnWidths = []float64{35, 48, 25, 12, 18, 27, 85, 27}

// pdfExporter struct that implements the Exporter interface for PDF documents
type pdfExporter struct {
	logger logger.Logger
	now    func() time.Time
}

// NewPDFExporter creates and returns a new instance of pdfExporter
func NewPDFExporter(logger logger.Logger) (persons.Exporter, error) {
	return &pdfExporter{
		logger: logger,
		now:    time.Now,
	}, nil
}

func (e *pdfExporter) Format() persons.ExportFormat {
	return persons.ExportFormatPDF
}

// Export renders a titled table of persons on landscape A4 pages.
func (e *pdfExporter) Export(w io.Writer, list []*persons.PersonResponse) error {
	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetTitle("Persons", true)
	pdf.SetAuthor("CRUDExample", true)
	pdf.SetCreationDate(e.now())
	pdf.AliasNbPages("")

	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFooterFunc(func() {
		pdf.SetY(-12)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.CellFormat(0, 8, fmt.Sprintf("Page %d/{nb}", pdf.PageNo()), "", 0, "C", false, 0, "")
	})

	drawHeader := func() {
		pdf.SetFont("Helvetica", "B", 9)
		pdf.SetFillColor(217, 225, 242)
		for i, col := range persons.ExportColumns {
			pdf.CellFormat(pdfColumnWidths[i], 8, tr(col), "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetFont("Helvetica", "", 8)
	}

	pdf.SetHeaderFunc(func() {
		if pdf.PageNo() > 1 {
			drawHeader()
		}
	})

	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, "Persons List", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(0, 6, fmt.Sprintf("Generated %s", e.now().Format("02 January 2006 15:04")), "", 1, "C", false, 0, "")
	pdf.Ln(2)
	drawHeader()

	for _, p := range list {
		for i, value := range persons.ExportRow(p) {
			text := fitText(pdf, tr(value), pdfColumnWidths[i]-2)
			pdf.CellFormat(pdfColumnWidths[i], 7, text, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("failed to render pdf: %w", err)
	}

	e.logger.Debug(fmt.Sprintf("Wrote %d persons as pdf", len(list)))
	return nil
}

// fitText trims s with an ellipsis until it fits in width millimetres.
func fitText(pdf *fpdf.Fpdf, s string, width float64) string {
	if pdf.GetStringWidth(s) <= width {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && pdf.GetStringWidth(string(runes)+"...") > width {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "..."
}
