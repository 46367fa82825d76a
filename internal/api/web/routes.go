package web

import (
	"github.com/annuyadav31/CRUDExample/internal/domain/countries"
	"github.com/annuyadav31/CRUDExample/internal/domain/persons"
	"github.com/annuyadav31/CRUDExample/internal/pkg/logger"

	"github.com/gin-gonic/gin"
)

// SetupRoutes installs the page templates on r and registers the page routes
func SetupRoutes(r *gin.Engine,
	personService persons.PersonService,
	personExportService persons.PersonExportService,
	countryService countries.CountryService,
	logger logger.Logger) error {

	tmpl, err := Templates()
	if err != nil {
		return err
	}
	r.SetHTMLTemplate(tmpl)

	personController := NewPersonController(personService, personExportService, countryService, logger)
	countryController := NewCountryController(countryService, logger)

	r.GET("/", personController.Index)

	personsGroup := r.Group("/persons")
	{
		personsGroup.GET("/index", personController.Index)
		personsGroup.GET("/create", personController.CreateForm)
		personsGroup.POST("/create", personController.Create)
		personsGroup.GET("/edit/:personID", personController.EditForm)
		personsGroup.POST("/edit/:personID", personController.Edit)
		personsGroup.GET("/delete/:personID", personController.DeleteForm)
		personsGroup.POST("/delete/:personID", personController.Delete)
		personsGroup.GET("/PersonsCSV", personController.PersonsCSV)
		personsGroup.GET("/PersonsPDF", personController.PersonsPDF)
		personsGroup.GET("/PersonsExcel", personController.PersonsExcel)
	}

	countriesGroup := r.Group("/countries")
	{
		countriesGroup.GET("/upload", countryController.UploadForm)
		countriesGroup.POST("/upload", countryController.Upload)
	}

	return nil
}
