package app

import (
	"context"
	"fmt"
	"io"

	"github.com/annuyadav31/CRUDExample/internal/domain/persons"
	"github.com/annuyadav31/CRUDExample/internal/domain/shared"
	"github.com/annuyadav31/CRUDExample/internal/pkg/logger"
	"github.com/annuyadav31/CRUDExample/internal/pkg/metrics"
)

// personExportService implements the PersonExportService interface
type personExportService struct {
	personService persons.PersonService
	exporters     map[persons.ExportFormat]persons.Exporter
	logger        logger.Logger
}

// NewPersonExportService creates a new personExportService instance.
// Each exporter is registered under the format it reports.
func NewPersonExportService(
	personService persons.PersonService,
	exporters []persons.Exporter,
	logger logger.Logger,
) (persons.PersonExportService, error) {
	if personService == nil {
		return nil, fmt.Errorf("person service must not be nil")
	}

	byFormat := make(map[persons.ExportFormat]persons.Exporter, len(exporters))
	for _, e := range exporters {
		if _, dup := byFormat[e.Format()]; dup {
			return nil, fmt.Errorf("duplicate exporter for format %s", e.Format())
		}
		byFormat[e.Format()] = e
	}

	return &personExportService{
		personService: personService,
		exporters:     byFormat,
		logger:        logger,
	}, nil
}

// GetPersonsCSV writes every person as CSV.
func (s *personExportService) GetPersonsCSV(ctx context.Context, w io.Writer) error {
	return s.Export(ctx, persons.ExportFormatCSV, w)
}

// GetPersonsExcel writes every person as an Excel workbook.
func (s *personExportService) GetPersonsExcel(ctx context.Context, w io.Writer) error {
	return s.Export(ctx, persons.ExportFormatExcel, w)
}

// GetPersonsPDF writes every person as a PDF table.
func (s *personExportService) GetPersonsPDF(ctx context.Context, w io.Writer) error {
	return s.Export(ctx, persons.ExportFormatPDF, w)
}

// Export writes every person, ordered by name, in the requested format.
func (s *personExportService) Export(ctx context.Context, format persons.ExportFormat, w io.Writer) error {
	exporter, ok := s.exporters[format]
	if !ok {
		return fmt.Errorf("no exporter for format %q: %w", format, shared.ErrInvalidArgument)
	}

	all, err := s.personService.GetAllPersons(ctx)
	if err != nil {
		return fmt.Errorf("%w", err)
	}
	sorted, err := s.personService.GetSortedPersons(ctx, all, persons.SortByPersonName, persons.SortOrderASC)
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	if err := exporter.Export(w, sorted); err != nil {
		return fmt.Errorf("failed to export persons as %s: %w", format, err)
	}

	metrics.PersonsExported.WithLabelValues(string(format)).Inc()
	s.logger.Info(fmt.Sprintf("Exported %d persons as %s", len(sorted), format))
	return nil
}
