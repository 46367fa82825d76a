// Package bootstrap wires repositories, document adapters and application
// services together for the binaries under cmd/.
package bootstrap

import (
	"context"
	"fmt"

	"github.com/annuyadav31/CRUDExample/internal/app"
	"github.com/annuyadav31/CRUDExample/internal/domain/countries"
	"github.com/annuyadav31/CRUDExample/internal/domain/persons"
	"github.com/annuyadav31/CRUDExample/internal/infrastructure/documents"
	"github.com/annuyadav31/CRUDExample/internal/infrastructure/persistence"
	"github.com/annuyadav31/CRUDExample/internal/pkg/config"
	"github.com/annuyadav31/CRUDExample/internal/pkg/logger"

	"gorm.io/gorm"
)

// Services holds the initialized application services
type Services struct {
	Persons      persons.PersonService
	PersonExport persons.PersonExportService
	Countries    countries.CountryService
}

// OpenDatabase connects to the configured store and migrates the schema.
// When seed is true the sample data is inserted into empty tables.
func OpenDatabase(ctx context.Context, settings config.DatabaseSettings, seed bool, log logger.Logger) (*gorm.DB, error) {
	db, err := persistence.NewDBConnection(settings)
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection: %w", err)
	}

	if err := persistence.Migrate(db); err != nil {
		return nil, err
	}
	log.Info("Database migrations completed successfully")

	if seed {
		if _, err := persistence.Seed(ctx, db, log); err != nil {
			return nil, fmt.Errorf("failed to seed database: %w", err)
		}
	}

	return db, nil
}

// NewServices builds every application service on top of db
func NewServices(db *gorm.DB, log logger.Logger) (*Services, error) {
	countryRepo, err := persistence.NewGormCountryRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create country repository: %w", err)
	}

	personRepo, err := persistence.NewGormPersonRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create person repository: %w", err)
	}

	sheetReader, err := documents.NewExcelCountryReader(log)
	if err != nil {
		return nil, fmt.Errorf("failed to create country sheet reader: %w", err)
	}

	exporters, err := newExporters(log)
	if err != nil {
		return nil, err
	}

	countryService, err := app.NewCountryService(countryRepo, sheetReader, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create country service: %w", err)
	}

	personService, err := app.NewPersonService(personRepo, countryRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create person service: %w", err)
	}

	personExportService, err := app.NewPersonExportService(personService, exporters, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create person export service: %w", err)
	}

	log.Info("Application services initialized successfully")
	return &Services{
		Persons:      personService,
		PersonExport: personExportService,
		Countries:    countryService,
	}, nil
}

func newExporters(log logger.Logger) ([]persons.Exporter, error) {
	csvExporter, err := documents.NewCSVExporter(log)
	if err != nil {
		return nil, fmt.Errorf("failed to create csv exporter: %w", err)
	}

	excelExporter, err := documents.NewExcelExporter(log)
	if err != nil {
		return nil, fmt.Errorf("failed to create excel exporter: %w", err)
	}

	pdfExporter, err := documents.NewPDFExporter(log)
	if err != nil {
		return nil, fmt.Errorf("failed to create pdf exporter: %w", err)
	}

	return []persons.Exporter{csvExporter, excelExporter, pdfExporter}, nil
}
