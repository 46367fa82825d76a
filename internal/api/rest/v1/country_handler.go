package v1

import (
	"fmt"
	"net/http"

	"github.com/annuyadav31/CRUDExample/internal/domain/countries"

	"github.com/gin-gonic/gin"
)

// CountryHandler defines the interface for handling country-related operations
type CountryHandler interface {
	List(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	Create(ctx *gin.Context)
	Upload(ctx *gin.Context)
}

// countryHandler struct holds the services
type countryHandler struct {
	countryService countries.CountryService
}

// NewCountryHandler creates a new CountryHandler
func NewCountryHandler(countryService countries.CountryService) CountryHandler {
	return &countryHandler{
		countryService: countryService,
	}
}

// List handles the GET request to list every country
// @Summary List countries
// @Tags Country
// @Produce json
// @Success 200 {array} CountryResponse
// @Failure 500 {object} ErrorResponse
// @Router /countries [get]
func (handler *countryHandler) List(ctx *gin.Context) {
	list, err := handler.countryService.GetCountryList(ctx)
	if err != nil {
		abortWithError(ctx, err, "list query failed")
		return
	}

	var listResponse = []CountryResponse{}
	for _, c := range list {
		listResponse = append(listResponse, NewCountryResponse(c))
	}

	ctx.JSON(http.StatusOK, listResponse)
}

// GetByID handles the GET request to retrieve a country by ID
// @Summary Retrieve a country by ID
// @Tags Country
// @Produce json
// @Param id path string true "Country ID"
// @Success 200 {object} CountryResponse
// @Failure 404 {object} ErrorResponse
// @Router /countries/{id} [get]
func (handler *countryHandler) GetByID(ctx *gin.Context) {
	countryID := ctx.Param("id")

	country, err := handler.countryService.GetCountryByID(ctx, countryID)
	if err != nil {
		abortWithError(ctx, err, "error fetching country with id %s", countryID)
		return
	}
	if country == nil {
		notFound(ctx, "country with id %s not found", countryID)
		return
	}

	ctx.JSON(http.StatusOK, NewCountryResponse(country))
}

// Create handles the POST request to add a country
// @Summary Add a country
// @Tags Country
// @Accept json
// @Produce json
// @Param requestBody body CountryRequest true "Country data"
// @Success 201 {object} CountryResponse
// @Failure 400 {object} ErrorResponse
// @Router /countries [post]
func (handler *countryHandler) Create(ctx *gin.Context) {
	var request CountryRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("invalid country data: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	country, err := handler.countryService.AddCountry(ctx, &countries.CountryAddRequest{CountryName: request.CountryName})
	if err != nil {
		abortWithError(ctx, err, "error adding country")
		return
	}

	ctx.JSON(http.StatusCreated, NewCountryResponse(country))
}

// Upload handles the POST request to import countries from an Excel workbook
// @Summary Upload countries from Excel
// @Tags Country
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Excel workbook"
// @Success 200 {object} UploadCountriesResponse
// @Failure 400 {object} ErrorResponse
// @Router /countries/upload [post]
func (handler *countryHandler) Upload(ctx *gin.Context) {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("missing excel file: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		abortWithError(ctx, err, "error opening %s", fileHeader.Filename)
		return
	}
	defer file.Close()

	inserted, err := handler.countryService.UploadCountriesFromExcel(ctx, file)
	if err != nil {
		abortWithError(ctx, err, "error uploading %s", fileHeader.Filename)
		return
	}

	ctx.JSON(http.StatusOK, UploadCountriesResponse{Inserted: inserted})
}
