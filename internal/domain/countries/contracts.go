package countries

import (
	"context"
	"io"
)

// CountryService defines the use cases around countries.
type CountryService interface {
	// AddCountry validates the request, rejects duplicate names and stores a new country.
	AddCountry(ctx context.Context, req *CountryAddRequest) (*CountryResponse, error)

	// GetCountryList returns every stored country.
	GetCountryList(ctx context.Context) ([]*CountryResponse, error)

	// GetCountryByID returns the matching country or nil when none exists.
	GetCountryByID(ctx context.Context, countryID string) (*CountryResponse, error)

	// UploadCountriesFromExcel adds the country names found in an Excel workbook.
	// It returns the number of countries inserted.
	UploadCountriesFromExcel(ctx context.Context, r io.Reader) (int, error)
}

// CountryRepository defines the interface for Country-related operations
type CountryRepository interface {
	Create(ctx context.Context, country *Country) error
	List(ctx context.Context) ([]*Country, error)
	GetByID(ctx context.Context, countryID string) (*Country, error)
	GetByName(ctx context.Context, name string) (*Country, error)
}

// CountrySheetReader extracts country names from a spreadsheet.
type CountrySheetReader interface {
	ReadCountryNames(r io.Reader) ([]string, error)
}
