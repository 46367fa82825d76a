package v1

import (
	"github.com/annuyadav31/CRUDExample/internal/domain/countries"
	"github.com/annuyadav31/CRUDExample/internal/domain/persons"

	"github.com/gin-gonic/gin"
)

// SetupRoutes sets up all the API routes for version 1.
func SetupRoutes(r *gin.Engine,
	personService persons.PersonService,
	personExportService persons.PersonExportService,
	countryService countries.CountryService) {

	v1 := r.Group(BasePath) // lookup in version file

	// Persons Routes
	personHandler := NewPersonHandler(personService, personExportService)
	v1.GET("/persons", personHandler.List)
	v1.GET("/persons/:id", personHandler.GetByID)
	v1.POST("/persons", personHandler.Create)
	v1.PUT("/persons/:id", personHandler.Update)
	v1.DELETE("/persons/:id", personHandler.DeleteByID)
	v1.GET("/persons/export/:format", personHandler.Export)

	// Countries Routes
	countryHandler := NewCountryHandler(countryService)
	v1.GET("/countries", countryHandler.List)
	v1.GET("/countries/:id", countryHandler.GetByID)
	v1.POST("/countries", countryHandler.Create)
	v1.POST("/countries/upload", countryHandler.Upload)
}
