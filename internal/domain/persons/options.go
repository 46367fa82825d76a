package persons

import "strings"

// GenderOptions enumerates the accepted values of Person.Gender.
type GenderOptions string

const (
	GenderMale   GenderOptions = "Male"
	GenderFemale GenderOptions = "Female"
	GenderOthers GenderOptions = "Others"
)

// Genders lists every GenderOptions value in display order.
var Genders = []GenderOptions{GenderMale, GenderFemale, GenderOthers}

// ParseGender resolves s case-insensitively. ok is false for unknown values.
func ParseGender(s string) (GenderOptions, bool) {
	for _, g := range Genders {
		if strings.EqualFold(string(g), strings.TrimSpace(s)) {
			return g, true
		}
	}
	return GenderOptions(s), false
}

// SortOrderOptions selects the direction of GetSortedPersons.
type SortOrderOptions string

const (
	SortOrderASC  SortOrderOptions = "ASC"
	SortOrderDESC SortOrderOptions = "DESC"
)

// ParseSortOrder returns DESC for any casing of "desc" and ASC otherwise.
func ParseSortOrder(s string) SortOrderOptions {
	if strings.EqualFold(strings.TrimSpace(s), string(SortOrderDESC)) {
		return SortOrderDESC
	}
	return SortOrderASC
}

// Field names accepted as searchBy.
const (
	SearchByPersonName  = "PersonName"
	SearchByEmail       = "Email"
	SearchByDateOfBirth = "DateOfBirth"
	SearchByGender      = "Gender"
	SearchByCountryID   = "CountryID"
	SearchByAddress     = "Address"
)

// SearchFields maps every searchable field to its display name.
var SearchFields = []struct {
	Key   string
	Label string
}{
	{SearchByPersonName, "Person Name"},
	{SearchByEmail, "Email"},
	{SearchByDateOfBirth, "Date of Birth"},
	{SearchByGender, "Gender"},
	{SearchByCountryID, "Country"},
	{SearchByAddress, "Address"},
}

// Field names accepted as sortBy.
const (
	SortByPersonName         = "PersonName"
	SortByEmail              = "Email"
	SortByDateOfBirth        = "DateOfBirth"
	SortByAge                = "Age"
	SortByGender             = "Gender"
	SortByCountry            = "Country"
	SortByAddress            = "Address"
	SortByReceiveNewsLetters = "ReceiveNewsLetters"
)

// DateOfBirthSearchLayout is the rendering DateOfBirth searches match against.
const DateOfBirthSearchLayout = "02 January 2006"

// DateLayout is the layout used for date input and export.
const DateLayout = "2006-01-02"
