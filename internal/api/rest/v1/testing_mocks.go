//go:build unit
// +build unit

package v1

import (
	"context"
	"io"

	"github.com/annuyadav31/CRUDExample/internal/domain/countries"
	"github.com/annuyadav31/CRUDExample/internal/domain/persons"

	"github.com/stretchr/testify/mock"
)

// MockPersonService is a mock implementation of PersonService
type MockPersonService struct {
	mock.Mock
}

func (m *MockPersonService) AddPerson(ctx context.Context, req *persons.PersonAddRequest) (*persons.PersonResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*persons.PersonResponse), args.Error(1)
}

func (m *MockPersonService) GetAllPersons(ctx context.Context) ([]*persons.PersonResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*persons.PersonResponse), args.Error(1)
}

func (m *MockPersonService) GetPersonByID(ctx context.Context, personID string) (*persons.PersonResponse, error) {
	args := m.Called(ctx, personID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*persons.PersonResponse), args.Error(1)
}

func (m *MockPersonService) GetFilteredPersons(ctx context.Context, searchBy, searchString string) ([]*persons.PersonResponse, error) {
	args := m.Called(ctx, searchBy, searchString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*persons.PersonResponse), args.Error(1)
}

func (m *MockPersonService) GetSortedPersons(ctx context.Context, allPersons []*persons.PersonResponse, sortBy string, sortOrder persons.SortOrderOptions) ([]*persons.PersonResponse, error) {
	args := m.Called(ctx, allPersons, sortBy, sortOrder)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*persons.PersonResponse), args.Error(1)
}

func (m *MockPersonService) UpdatePerson(ctx context.Context, req *persons.PersonUpdateRequest) (*persons.PersonResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*persons.PersonResponse), args.Error(1)
}

func (m *MockPersonService) DeletePerson(ctx context.Context, personID string) (bool, error) {
	args := m.Called(ctx, personID)
	return args.Bool(0), args.Error(1)
}

// MockPersonExportService is a mock implementation of PersonExportService
type MockPersonExportService struct {
	mock.Mock
}

func (m *MockPersonExportService) GetPersonsCSV(ctx context.Context, w io.Writer) error {
	return m.Export(ctx, persons.ExportFormatCSV, w)
}

func (m *MockPersonExportService) GetPersonsExcel(ctx context.Context, w io.Writer) error {
	return m.Export(ctx, persons.ExportFormatExcel, w)
}

func (m *MockPersonExportService) GetPersonsPDF(ctx context.Context, w io.Writer) error {
	return m.Export(ctx, persons.ExportFormatPDF, w)
}

// Export expects Return(err, content); content is written to w on success
func (m *MockPersonExportService) Export(ctx context.Context, format persons.ExportFormat, w io.Writer) error {
	args := m.Called(ctx, format, w)
	if content, ok := args.Get(1).(string); ok && args.Error(0) == nil {
		_, _ = io.WriteString(w, content)
	}
	return args.Error(0)
}

// MockCountryService is a mock implementation of CountryService
type MockCountryService struct {
	mock.Mock
}

func (m *MockCountryService) AddCountry(ctx context.Context, req *countries.CountryAddRequest) (*countries.CountryResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*countries.CountryResponse), args.Error(1)
}

func (m *MockCountryService) GetCountryList(ctx context.Context) ([]*countries.CountryResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*countries.CountryResponse), args.Error(1)
}

func (m *MockCountryService) GetCountryByID(ctx context.Context, countryID string) (*countries.CountryResponse, error) {
	args := m.Called(ctx, countryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*countries.CountryResponse), args.Error(1)
}

func (m *MockCountryService) UploadCountriesFromExcel(ctx context.Context, r io.Reader) (int, error) {
	args := m.Called(ctx, r)
	return args.Int(0), args.Error(1)
}
