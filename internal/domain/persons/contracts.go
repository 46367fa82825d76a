package persons

import (
	"context"
	"io"
)

// PersonService defines the use cases around persons.
type PersonService interface {
	// AddPerson validates the request and stores a new person.
	// The response carries the country name of the referenced country.
	AddPerson(ctx context.Context, req *PersonAddRequest) (*PersonResponse, error)

	// GetAllPersons returns every stored person with its country.
	GetAllPersons(ctx context.Context) ([]*PersonResponse, error)

	// GetPersonByID returns the matching person or nil when none exists.
	GetPersonByID(ctx context.Context, personID string) (*PersonResponse, error)

	// GetFilteredPersons returns the persons whose searchBy field contains searchString.
	// Empty arguments or an unknown field return every person.
	GetFilteredPersons(ctx context.Context, searchBy, searchString string) ([]*PersonResponse, error)

	// GetSortedPersons orders allPersons by sortBy. Unknown or empty keys return the input unchanged.
	GetSortedPersons(ctx context.Context, allPersons []*PersonResponse, sortBy string, sortOrder SortOrderOptions) ([]*PersonResponse, error)

	// UpdatePerson replaces the details of an existing person.
	UpdatePerson(ctx context.Context, req *PersonUpdateRequest) (*PersonResponse, error)

	// DeletePerson removes a person. It reports false when the id is unknown.
	DeletePerson(ctx context.Context, personID string) (bool, error)
}

// PersonExportService renders every stored person into a document.
type PersonExportService interface {
	GetPersonsCSV(ctx context.Context, w io.Writer) error
	GetPersonsExcel(ctx context.Context, w io.Writer) error
	GetPersonsPDF(ctx context.Context, w io.Writer) error

	// Export dispatches to the exporter registered for format.
	Export(ctx context.Context, format ExportFormat, w io.Writer) error
}

// PersonRepository defines the interface for Person-related operations
type PersonRepository interface {
	Create(ctx context.Context, person *Person) error
	List(ctx context.Context) ([]*Person, error)
	Filter(ctx context.Context, query *PersonQuery) ([]*Person, error)
	GetByID(ctx context.Context, personID string) (*Person, error)
	UpdateByID(ctx context.Context, person *Person) error
	DeleteByID(ctx context.Context, personID string) error
}
