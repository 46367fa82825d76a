//go:build integration
// +build integration

package app

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/annuyadav31/CRUDExample/internal/domain/countries"
	"github.com/annuyadav31/CRUDExample/internal/domain/shared"
	"github.com/annuyadav31/CRUDExample/internal/infrastructure/documents"
	"github.com/annuyadav31/CRUDExample/internal/pkg/config"
	"github.com/annuyadav31/CRUDExample/internal/pkg/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestCountryService_AddCountry(t *testing.T) {
	tests := []struct {
		name    string
		req     *countries.CountryAddRequest
		wantErr error
	}{
		{name: "nil request", req: nil, wantErr: shared.ErrNilRequest},
		{name: "nil country name", req: &countries.CountryAddRequest{}, wantErr: shared.ErrInvalidArgument},
		{name: "blank country name", req: &countries.CountryAddRequest{CountryName: strPtr("  ")}, wantErr: shared.ErrInvalidArgument},
		{name: "proper country", req: &countries.CountryAddRequest{CountryName: strPtr("Japan")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := SetupTestServices(t, config.SqliteDbType)

			resp, err := svc.CountryService.AddCountry(context.Background(), tt.req)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr), err.Error())
				assert.Nil(t, resp)
				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, resp.CountryID)
			assert.Equal(t, "Japan", resp.CountryName)

			all, err := svc.CountryService.GetCountryList(context.Background())
			require.NoError(t, err)
			assert.Contains(t, all, resp)
		})
	}
}

func TestCountryService_AddCountry_DuplicateName(t *testing.T) {
	svc := SetupTestServices(t, config.SqliteDbType)

	_, err := svc.CountryService.AddCountry(context.Background(), &countries.CountryAddRequest{CountryName: strPtr("USA")})
	require.NoError(t, err)

	_, err = svc.CountryService.AddCountry(context.Background(), &countries.CountryAddRequest{CountryName: strPtr("USA")})
	require.Error(t, err)
	assert.True(t, errors.Is(err, shared.ErrInvalidArgument))
	assert.Contains(t, err.Error(), "already exists")
}

func TestCountryService_GetCountryList(t *testing.T) {
	svc := SetupTestServices(t, config.SqliteDbType)

	empty, err := svc.CountryService.GetCountryList(context.Background())
	require.NoError(t, err)
	assert.Empty(t, empty)

	var added []*countries.CountryResponse
	for _, name := range []string{"USA", "UK"} {
		resp, err := svc.CountryService.AddCountry(context.Background(), &countries.CountryAddRequest{CountryName: strPtr(name)})
		require.NoError(t, err)
		added = append(added, resp)
	}

	all, err := svc.CountryService.GetCountryList(context.Background())
	require.NoError(t, err)
	assert.ElementsMatch(t, added, all)
}

func TestCountryService_GetCountryByID(t *testing.T) {
	svc := SetupTestServices(t, config.SqliteDbType)

	_, err := svc.CountryService.GetCountryByID(context.Background(), "")
	assert.True(t, errors.Is(err, shared.ErrInvalidArgument))

	missing, err := svc.CountryService.GetCountryByID(context.Background(), uuid.NewString())
	require.NoError(t, err)
	assert.Nil(t, missing)

	malformed, err := svc.CountryService.GetCountryByID(context.Background(), "not-an-id")
	require.NoError(t, err)
	assert.Nil(t, malformed)

	added, err := svc.CountryService.AddCountry(context.Background(), &countries.CountryAddRequest{CountryName: strPtr("China")})
	require.NoError(t, err)

	found, err := svc.CountryService.GetCountryByID(context.Background(), added.CountryID)
	require.NoError(t, err)
	assert.Equal(t, added, found)
}

func TestCountryService_UploadCountriesFromExcel(t *testing.T) {
	svc := SetupTestServices(t, config.SqliteDbType)

	_, err := svc.CountryService.AddCountry(context.Background(), &countries.CountryAddRequest{CountryName: strPtr("India")})
	require.NoError(t, err)

	workbook := testutil.CreateCountriesWorkbook(t, documents.CountriesSheet, "Japan", "India", "", "Brazil", "Japan")
	inserted, err := svc.CountryService.UploadCountriesFromExcel(context.Background(), bytes.NewReader(workbook))
	require.NoError(t, err)
	assert.Equal(t, 2, inserted)

	all, err := svc.CountryService.GetCountryList(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 3)

	var names []string
	for _, c := range all {
		names = append(names, c.CountryName)
	}
	assert.ElementsMatch(t, []string{"India", "Japan", "Brazil"}, names)
}

func TestCountryService_UploadCountriesFromExcel_InvalidFile(t *testing.T) {
	svc := SetupTestServices(t, config.SqliteDbType)

	_, err := svc.CountryService.UploadCountriesFromExcel(context.Background(), bytes.NewReader([]byte("plain text")))
	require.Error(t, err)
	assert.True(t, errors.Is(err, shared.ErrInvalidArgument))

	_, err = svc.CountryService.UploadCountriesFromExcel(context.Background(), nil)
	assert.True(t, errors.Is(err, shared.ErrNilRequest))
}
