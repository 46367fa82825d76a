package web

import (
	"net/url"

	"github.com/annuyadav31/CRUDExample/internal/domain/countries"
	"github.com/annuyadav31/CRUDExample/internal/domain/persons"
)

const (
	arrowUp   = "▲"
	arrowDown = "▼"
)

type sortColumn struct {
	Label string
	URL   string
	Arrow string
}

type indexPage struct {
	Title        string
	Persons      []*persons.PersonResponse
	SearchFields []struct {
		Key   string
		Label string
	}
	SearchBy     string
	SearchString string
	SortBy       string
	SortOrder    persons.SortOrderOptions
	Columns      []sortColumn
}

type personFormPage struct {
	Title       string
	Form        PersonForm
	Countries   []*countries.CountryResponse
	Genders     []persons.GenderOptions
	Errors      []string
	FieldErrors map[string]string
}

type deletePage struct {
	Title  string
	Person *persons.PersonResponse
}

type uploadPage struct {
	Title   string
	Message string
	Errors  []string
}

type errorPage struct {
	Title   string
	Message string
}

var indexColumns = []struct {
	Key   string
	Label string
}{
	{persons.SortByPersonName, "Person Name"},
	{persons.SortByEmail, "Email"},
	{persons.SortByDateOfBirth, "Date of Birth"},
	{persons.SortByAge, "Age"},
	{persons.SortByGender, "Gender"},
	{persons.SortByCountry, "Country"},
	{persons.SortByAddress, "Address"},
	{persons.SortByReceiveNewsLetters, "Receive News Letters"},
}

// sortColumns builds the table headers. Clicking the active column flips its
// order, any other column starts ascending; the current search is kept.
func sortColumns(searchBy, searchString, sortBy string, sortOrder persons.SortOrderOptions) []sortColumn {
	columns := make([]sortColumn, 0, len(indexColumns))
	for _, col := range indexColumns {
		next := persons.SortOrderASC
		arrow := ""
		if col.Key == sortBy {
			if sortOrder == persons.SortOrderASC {
				next = persons.SortOrderDESC
				arrow = arrowUp
			} else {
				arrow = arrowDown
			}
		}

		query := url.Values{}
		if searchBy != "" {
			query.Set("searchBy", searchBy)
		}
		if searchString != "" {
			query.Set("searchString", searchString)
		}
		query.Set("sortBy", col.Key)
		query.Set("sortOrder", string(next))

		columns = append(columns, sortColumn{
			Label: col.Label,
			URL:   "/persons/index?" + query.Encode(),
			Arrow: arrow,
		})
	}
	return columns
}
