//go:build integration
// +build integration

package app

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/annuyadav31/CRUDExample/internal/domain/countries"
	"github.com/annuyadav31/CRUDExample/internal/domain/persons"
	"github.com/annuyadav31/CRUDExample/internal/domain/shared"
	"github.com/annuyadav31/CRUDExample/internal/pkg/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func addCountry(t *testing.T, svc *TestServices, name string) *countries.CountryResponse {
	t.Helper()

	resp, err := svc.CountryService.AddCountry(context.Background(), &countries.CountryAddRequest{CountryName: &name})
	require.NoError(t, err)
	return resp
}

func newAddRequest(name, email string, gender persons.GenderOptions, countryID string, dob time.Time) *persons.PersonAddRequest {
	return &persons.PersonAddRequest{
		PersonName:         name,
		Email:              email,
		DateOfBirth:        &dob,
		Gender:             gender,
		CountryID:          countryID,
		Address:            "sample address",
		ReceiveNewsLetters: true,
	}
}

// addSamplePersons stores Smith (USA), Mary (India) and Rahman (India)
func addSamplePersons(t *testing.T, svc *TestServices) []*persons.PersonResponse {
	t.Helper()

	usa := addCountry(t, svc, "USA")
	india := addCountry(t, svc, "India")

	requests := []*persons.PersonAddRequest{
		newAddRequest("Smith", "smith@example.com", persons.GenderMale, usa.CountryID, time.Date(2002, time.May, 6, 0, 0, 0, 0, time.UTC)),
		newAddRequest("Mary", "mary@example.com", persons.GenderFemale, india.CountryID, time.Date(2001, time.February, 2, 0, 0, 0, 0, time.UTC)),
		newAddRequest("Rahman", "rahman@example.com", persons.GenderMale, india.CountryID, time.Date(1999, time.March, 3, 0, 0, 0, 0, time.UTC)),
	}

	var added []*persons.PersonResponse
	for _, req := range requests {
		resp, err := svc.PersonService.AddPerson(context.Background(), req)
		require.NoError(t, err)
		added = append(added, resp)
	}
	return added
}

func personNames(list []*persons.PersonResponse) []string {
	out := make([]string, len(list))
	for i, p := range list {
		out[i] = p.PersonName
	}
	return out
}

func TestPersonService_AddPerson_NilRequest(t *testing.T) {
	svc := SetupTestServices(t, config.SqliteDbType)

	_, err := svc.PersonService.AddPerson(context.Background(), nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, shared.ErrNilRequest))
}

func TestPersonService_AddPerson_MissingName(t *testing.T) {
	svc := SetupTestServices(t, config.SqliteDbType)
	country := addCountry(t, svc, "UK")

	req := newAddRequest("", "x@example.com", persons.GenderMale, country.CountryID, time.Now().AddDate(-20, 0, 0))
	_, err := svc.PersonService.AddPerson(context.Background(), req)
	require.Error(t, err)
	assert.True(t, errors.Is(err, shared.ErrInvalidArgument))

	var verr *shared.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "PersonName is required", verr.Fields["PersonName"])
}

func TestPersonService_AddPerson_UnknownCountry(t *testing.T) {
	svc := SetupTestServices(t, config.SqliteDbType)

	req := newAddRequest("Ken", "ken@example.com", persons.GenderMale, uuid.NewString(), time.Now().AddDate(-20, 0, 0))
	_, err := svc.PersonService.AddPerson(context.Background(), req)
	require.Error(t, err)
	assert.True(t, errors.Is(err, shared.ErrInvalidArgument))
}

func TestPersonService_AddPerson_ProperDetails(t *testing.T) {
	svc := SetupTestServices(t, config.SqliteDbType)
	country := addCountry(t, svc, "Japan")

	req := newAddRequest("Ken", "ken@example.com", persons.GenderMale, country.CountryID, time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC))
	resp, err := svc.PersonService.AddPerson(context.Background(), req)
	require.NoError(t, err)

	assert.NotEmpty(t, resp.PersonID)
	require.NotNil(t, resp.Country)
	assert.Equal(t, "Japan", *resp.Country)
	require.NotNil(t, resp.Age)

	all, err := svc.PersonService.GetAllPersons(context.Background())
	require.NoError(t, err)
	assert.Contains(t, all, resp)
}

func TestPersonService_GetPersonByID(t *testing.T) {
	svc := SetupTestServices(t, config.SqliteDbType)

	_, err := svc.PersonService.GetPersonByID(context.Background(), "")
	assert.True(t, errors.Is(err, shared.ErrInvalidArgument))

	missing, err := svc.PersonService.GetPersonByID(context.Background(), uuid.NewString())
	require.NoError(t, err)
	assert.Nil(t, missing)

	added := addSamplePersons(t, svc)
	found, err := svc.PersonService.GetPersonByID(context.Background(), added[1].PersonID)
	require.NoError(t, err)
	assert.Equal(t, added[1], found)
}

func TestPersonService_GetAllPersons(t *testing.T) {
	svc := SetupTestServices(t, config.SqliteDbType)

	empty, err := svc.PersonService.GetAllPersons(context.Background())
	require.NoError(t, err)
	assert.Empty(t, empty)

	added := addSamplePersons(t, svc)
	all, err := svc.PersonService.GetAllPersons(context.Background())
	require.NoError(t, err)
	assert.ElementsMatch(t, added, all)
}

func TestPersonService_GetFilteredPersons(t *testing.T) {
	svc := SetupTestServices(t, config.SqliteDbType)
	addSamplePersons(t, svc)

	tests := []struct {
		name         string
		searchBy     string
		searchString string
		want         []string
	}{
		{"empty search text", persons.SearchByPersonName, "", []string{"Smith", "Mary", "Rahman"}},
		{"search by person name", persons.SearchByPersonName, "ma", []string{"Mary", "Rahman"}},
		{"search by country", persons.SearchByCountryID, "india", []string{"Mary", "Rahman"}},
		{"search by gender", persons.SearchByGender, "MALE", []string{"Smith", "Rahman"}},
		{"search by date of birth", persons.SearchByDateOfBirth, "february", []string{"Mary"}},
		{"unknown field", "Height", "ma", []string{"Smith", "Mary", "Rahman"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			list, err := svc.PersonService.GetFilteredPersons(context.Background(), tt.searchBy, tt.searchString)
			require.NoError(t, err)
			assert.ElementsMatch(t, tt.want, personNames(list))

			for _, p := range list {
				if tt.searchBy == persons.SearchByPersonName && tt.searchString != "" {
					assert.True(t, strings.Contains(strings.ToLower(p.PersonName), tt.searchString))
				}
			}
		})
	}
}

func TestPersonService_GetSortedPersons(t *testing.T) {
	svc := SetupTestServices(t, config.SqliteDbType)
	addSamplePersons(t, svc)

	all, err := svc.PersonService.GetAllPersons(context.Background())
	require.NoError(t, err)

	tests := []struct {
		sortBy string
		order  persons.SortOrderOptions
		want   []string
	}{
		{persons.SortByPersonName, persons.SortOrderDESC, []string{"Smith", "Rahman", "Mary"}},
		{persons.SortByPersonName, persons.SortOrderASC, []string{"Mary", "Rahman", "Smith"}},
		{persons.SortByDateOfBirth, persons.SortOrderASC, []string{"Rahman", "Mary", "Smith"}},
		{persons.SortByAge, persons.SortOrderDESC, []string{"Rahman", "Mary", "Smith"}},
		{persons.SortByCountry, persons.SortOrderASC, []string{"Mary", "Rahman", "Smith"}},
		{persons.SortByGender, persons.SortOrderDESC, []string{"Rahman", "Smith", "Mary"}},
	}

	for _, tt := range tests {
		t.Run(tt.sortBy+"_"+string(tt.order), func(t *testing.T) {
			byName, err := svc.PersonService.GetSortedPersons(context.Background(), all, persons.SortByPersonName, persons.SortOrderASC)
			require.NoError(t, err)

			sorted, err := svc.PersonService.GetSortedPersons(context.Background(), byName, tt.sortBy, tt.order)
			require.NoError(t, err)
			assert.Equal(t, tt.want, personNames(sorted))
		})
	}

	unchanged, err := svc.PersonService.GetSortedPersons(context.Background(), all, "", persons.SortOrderASC)
	require.NoError(t, err)
	assert.Equal(t, all, unchanged)

	unknown, err := svc.PersonService.GetSortedPersons(context.Background(), all, "Shoe", persons.SortOrderDESC)
	require.NoError(t, err)
	assert.Equal(t, all, unknown)
}

func TestPersonService_UpdatePerson(t *testing.T) {
	svc := SetupTestServices(t, config.SqliteDbType)

	_, err := svc.PersonService.UpdatePerson(context.Background(), nil)
	assert.True(t, errors.Is(err, shared.ErrNilRequest))

	added := addSamplePersons(t, svc)

	unknown := added[0].ToPersonUpdateRequest()
	unknown.PersonID = uuid.NewString()
	_, err = svc.PersonService.UpdatePerson(context.Background(), unknown)
	require.Error(t, err)
	assert.True(t, errors.Is(err, shared.ErrInvalidArgument))
	assert.Contains(t, err.Error(), "doesn't exist")

	nameless := added[0].ToPersonUpdateRequest()
	nameless.PersonName = ""
	_, err = svc.PersonService.UpdatePerson(context.Background(), nameless)
	assert.True(t, errors.Is(err, shared.ErrInvalidArgument))

	update := added[0].ToPersonUpdateRequest()
	update.PersonName = "William"
	update.Email = "william@example.com"
	updated, err := svc.PersonService.UpdatePerson(context.Background(), update)
	require.NoError(t, err)
	assert.Equal(t, "William", updated.PersonName)

	fetched, err := svc.PersonService.GetPersonByID(context.Background(), added[0].PersonID)
	require.NoError(t, err)
	assert.Equal(t, updated, fetched)
}

func TestPersonService_DeletePerson(t *testing.T) {
	svc := SetupTestServices(t, config.SqliteDbType)

	_, err := svc.PersonService.DeletePerson(context.Background(), "")
	assert.True(t, errors.Is(err, shared.ErrNilRequest))

	added := addSamplePersons(t, svc)

	deleted, err := svc.PersonService.DeletePerson(context.Background(), added[0].PersonID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = svc.PersonService.DeletePerson(context.Background(), added[0].PersonID)
	require.NoError(t, err)
	assert.False(t, deleted)

	deleted, err = svc.PersonService.DeletePerson(context.Background(), uuid.NewString())
	require.NoError(t, err)
	assert.False(t, deleted)
}
