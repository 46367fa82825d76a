//go:build integration
// +build integration

package app

import (
	"testing"

	"github.com/annuyadav31/CRUDExample/internal/domain/countries"
	"github.com/annuyadav31/CRUDExample/internal/domain/persons"
	"github.com/annuyadav31/CRUDExample/internal/infrastructure/documents"
	"github.com/annuyadav31/CRUDExample/internal/infrastructure/persistence"
	"github.com/annuyadav31/CRUDExample/internal/pkg/testutil"

	"github.com/stretchr/testify/require"
)

// TestServices holds all application services and dependencies for testing
type TestServices struct {
	CountryService      countries.CountryService
	PersonService       persons.PersonService
	PersonExportService persons.PersonExportService

	// Infrastructure
	DBContext *persistence.TestContext
}

// SetupTestServices initializes all application services for integration tests
func SetupTestServices(t *testing.T, dbType string) *TestServices {
	t.Helper()

	logger := testutil.SetupTestLogger(t)
	dbContext := persistence.SetupTestDB(t, dbType)

	sheetReader, err := documents.NewExcelCountryReader(logger)
	require.NoError(t, err, "Failed to create country sheet reader")

	countryService, err := NewCountryService(dbContext.CountryRepo, sheetReader, logger)
	require.NoError(t, err, "Failed to create CountryService")

	personService, err := NewPersonService(dbContext.PersonRepo, dbContext.CountryRepo, logger)
	require.NoError(t, err, "Failed to create PersonService")

	csvExporter, err := documents.NewCSVExporter(logger)
	require.NoError(t, err, "Failed to create CSV exporter")
	excelExporter, err := documents.NewExcelExporter(logger)
	require.NoError(t, err, "Failed to create Excel exporter")
	pdfExporter, err := documents.NewPDFExporter(logger)
	require.NoError(t, err, "Failed to create PDF exporter")

	exportService, err := NewPersonExportService(personService,
		[]persons.Exporter{csvExporter, excelExporter, pdfExporter}, logger)
	require.NoError(t, err, "Failed to create PersonExportService")

	return &TestServices{
		CountryService:      countryService,
		PersonService:       personService,
		PersonExportService: exportService,
		DBContext:           dbContext,
	}
}
