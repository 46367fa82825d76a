package documents

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/annuyadav31/CRUDExample/internal/domain/persons"
	"github.com/annuyadav31/CRUDExample/internal/pkg/logger"
)

// csvExporter struct that implements the Exporter interface for CSV
type csvExporter struct {
	logger logger.Logger
}

// NewCSVExporter creates and returns a new instance of csvExporter
func NewCSVExporter(logger logger.Logger) (persons.Exporter, error) {
	return &csvExporter{
		logger: logger,
	}, nil
}

func (e *csvExporter) Format() persons.ExportFormat {
	return persons.ExportFormatCSV
}

// Export writes a header row followed by one row per person.
func (e *csvExporter) Export(w io.Writer, list []*persons.PersonResponse) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(persons.ExportColumns); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, p := range list {
		if err := writer.Write(persons.ExportRow(p)); err != nil {
			return fmt.Errorf("failed to write csv row for person %s: %w", p.PersonID, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush csv: %w", err)
	}

	e.logger.Debug(fmt.Sprintf("Wrote %d persons as csv", len(list)))
	return nil
}
