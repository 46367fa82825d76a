//go:build unit
// +build unit

package v1

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/annuyadav31/CRUDExample/internal/domain/countries"
	"github.com/annuyadav31/CRUDExample/internal/domain/shared"
	"github.com/annuyadav31/CRUDExample/internal/pkg/testutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

const testCountryID = "a923bcea-e339-4da9-a13b-0ff1ebde8e72"

func TestCountryHandler_List(t *testing.T) {
	mockCountryService := new(MockCountryService)
	handler := NewCountryHandler(mockCountryService)

	mockCountryService.On("GetCountryList", mock.Anything).
		Return([]*countries.CountryResponse{{CountryID: testCountryID, CountryName: "India"}}, nil)

	c, w := newTestContext(http.MethodGet, "/countries", nil)
	handler.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"countryId":"`+testCountryID+`","countryName":"India"}]`, w.Body.String())
}

func TestCountryHandler_GetByID(t *testing.T) {
	mockCountryService := new(MockCountryService)
	handler := NewCountryHandler(mockCountryService)

	mockCountryService.On("GetCountryByID", mock.Anything, testCountryID).
		Return(&countries.CountryResponse{CountryID: testCountryID, CountryName: "India"}, nil)
	mockCountryService.On("GetCountryByID", mock.Anything, "missing").Return(nil, nil)

	c, w := newTestContext(http.MethodGet, "/countries/"+testCountryID, nil)
	c.Params = gin.Params{{Key: "id", Value: testCountryID}}
	handler.GetByID(c)
	assert.Equal(t, http.StatusOK, w.Code)

	c, w = newTestContext(http.MethodGet, "/countries/missing", nil)
	c.Params = gin.Params{{Key: "id", Value: "missing"}}
	handler.GetByID(c)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCountryHandler_Create(t *testing.T) {
	mockCountryService := new(MockCountryService)
	handler := NewCountryHandler(mockCountryService)

	mockCountryService.On("AddCountry", mock.Anything, mock.MatchedBy(func(req *countries.CountryAddRequest) bool {
		return req.CountryName != nil && *req.CountryName == "Japan"
	})).Return(&countries.CountryResponse{CountryID: testCountryID, CountryName: "Japan"}, nil)

	c, w := newTestContext(http.MethodPost, "/countries", []byte(`{"countryName":"Japan"}`))
	handler.Create(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "Japan")
	mockCountryService.AssertExpectations(t)
}

func TestCountryHandler_Create_Duplicate(t *testing.T) {
	mockCountryService := new(MockCountryService)
	handler := NewCountryHandler(mockCountryService)

	mockCountryService.On("AddCountry", mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("country name \"Japan\" already exists: %w", shared.ErrInvalidArgument))

	c, w := newTestContext(http.MethodPost, "/countries", []byte(`{"countryName":"Japan"}`))
	handler.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "already exists")
}

func TestCountryHandler_Upload(t *testing.T) {
	mockCountryService := new(MockCountryService)
	handler := NewCountryHandler(mockCountryService)

	mockCountryService.On("UploadCountriesFromExcel", mock.Anything, mock.Anything).Return(2, nil)

	workbook := testutil.CreateCountriesWorkbook(t, "Countries", "Japan", "Brazil")
	body, contentType := testutil.CreateUploadBody(t, "file", "countries.xlsx", workbook)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/countries/upload", body)
	c.Request.Header.Set("Content-Type", contentType)

	handler.Upload(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"inserted":2}`, w.Body.String())
	mockCountryService.AssertExpectations(t)
}

func TestCountryHandler_Upload_MissingFile(t *testing.T) {
	mockCountryService := new(MockCountryService)
	handler := NewCountryHandler(mockCountryService)

	body, contentType := testutil.CreateEmptyUploadBody(t)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/countries/upload", body)
	c.Request.Header.Set("Content-Type", contentType)

	handler.Upload(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockCountryService.AssertNotCalled(t, "UploadCountriesFromExcel", mock.Anything, mock.Anything)
}
