package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/annuyadav31/CRUDExample/internal/domain/countries"
	"github.com/annuyadav31/CRUDExample/internal/domain/shared"
	"github.com/annuyadav31/CRUDExample/internal/pkg/logger"

	"github.com/google/uuid"
)

// countryService implements the CountryService interface
type countryService struct {
	countryRepo countries.CountryRepository
	sheetReader countries.CountrySheetReader
	logger      logger.Logger
}

// NewCountryService creates a new countryService instance
func NewCountryService(
	countryRepo countries.CountryRepository,
	sheetReader countries.CountrySheetReader,
	logger logger.Logger,
) (countries.CountryService, error) {
	if countryRepo == nil {
		return nil, fmt.Errorf("country repository must not be nil")
	}
	return &countryService{
		countryRepo: countryRepo,
		sheetReader: sheetReader,
		logger:      logger,
	}, nil
}

// AddCountry validates the request, rejects duplicate names and stores a new country.
func (s *countryService) AddCountry(ctx context.Context, req *countries.CountryAddRequest) (*countries.CountryResponse, error) {
	if req == nil {
		return nil, fmt.Errorf("country add request: %w", shared.ErrNilRequest)
	}
	if req.CountryName == nil || strings.TrimSpace(*req.CountryName) == "" {
		return nil, fmt.Errorf("country name is required: %w", shared.ErrInvalidArgument)
	}

	country := req.ToCountry()
	if err := s.ensureUnique(ctx, country.Name); err != nil {
		return nil, err
	}

	country.ID = uuid.NewString()
	if err := s.countryRepo.Create(ctx, country); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return countries.ToCountryResponse(country), nil
}

func (s *countryService) ensureUnique(ctx context.Context, name string) error {
	_, err := s.countryRepo.GetByName(ctx, name)
	switch {
	case err == nil:
		return fmt.Errorf("country name %q already exists: %w", name, shared.ErrInvalidArgument)
	case errors.Is(err, shared.ErrNotFound):
		return nil
	default:
		return fmt.Errorf("%w", err)
	}
}

// GetCountryList returns every stored country.
func (s *countryService) GetCountryList(ctx context.Context) ([]*countries.CountryResponse, error) {
	list, err := s.countryRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	responses := make([]*countries.CountryResponse, len(list))
	for i, c := range list {
		responses[i] = countries.ToCountryResponse(c)
	}
	return responses, nil
}

// GetCountryByID returns the matching country or nil when none exists.
func (s *countryService) GetCountryByID(ctx context.Context, countryID string) (*countries.CountryResponse, error) {
	if strings.TrimSpace(countryID) == "" {
		return nil, fmt.Errorf("country id is required: %w", shared.ErrInvalidArgument)
	}
	if !isUUID(countryID) {
		return nil, nil
	}

	country, err := s.countryRepo.GetByID(ctx, countryID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w", err)
	}
	return countries.ToCountryResponse(country), nil
}

// UploadCountriesFromExcel adds the country names found in an Excel workbook.
// Blank cells and names already stored are skipped.
func (s *countryService) UploadCountriesFromExcel(ctx context.Context, r io.Reader) (int, error) {
	if r == nil {
		return 0, fmt.Errorf("excel file: %w", shared.ErrNilRequest)
	}
	if s.sheetReader == nil {
		return 0, fmt.Errorf("no spreadsheet reader configured")
	}

	names, err := s.sheetReader.ReadCountryNames(r)
	if err != nil {
		return 0, fmt.Errorf("failed to read countries (%v): %w", err, shared.ErrInvalidArgument)
	}

	inserted := 0
	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}

		if err := s.ensureUnique(ctx, name); err != nil {
			if errors.Is(err, shared.ErrInvalidArgument) {
				continue
			}
			return inserted, err
		}

		country := &countries.Country{ID: uuid.NewString(), Name: name}
		if err := s.countryRepo.Create(ctx, country); err != nil {
			return inserted, fmt.Errorf("%w", err)
		}
		inserted++
	}

	s.logger.Info(fmt.Sprintf("Uploaded %d countries from excel", inserted))
	return inserted, nil
}
