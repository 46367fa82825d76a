//go:build unit
// +build unit

package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	v1 "github.com/annuyadav31/CRUDExample/internal/api/rest/v1"
	"github.com/annuyadav31/CRUDExample/internal/bootstrap"
	"github.com/annuyadav31/CRUDExample/internal/domain/countries"
	"github.com/annuyadav31/CRUDExample/internal/pkg/middleware"
	"github.com/annuyadav31/CRUDExample/internal/pkg/testutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSetupRouter(t *testing.T) {
	gin.SetMode(gin.TestMode)

	countryService := new(v1.MockCountryService)
	countryService.On("GetCountryList", mock.Anything).
		Return([]*countries.CountryResponse{{CountryID: "a923bcea-e339-4da9-a13b-0ff1ebde8e72", CountryName: "India"}}, nil)

	services := &bootstrap.Services{
		Persons:      new(v1.MockPersonService),
		PersonExport: new(v1.MockPersonExportService),
		Countries:    countryService,
	}

	r, err := setupRouter(services, testutil.SetupTestLogger(t))
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/crud/countries", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
	assert.Contains(t, w.Body.String(), "India")

	w = httptest.NewRecorder()
	req, _ = http.NewRequest(http.MethodGet, "/countries/upload", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Upload Countries")

	w = httptest.NewRecorder()
	req, _ = http.NewRequest(http.MethodGet, "/metrics", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "http_requests_total")
}
