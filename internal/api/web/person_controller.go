package web

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"

	"github.com/annuyadav31/CRUDExample/internal/domain/countries"
	"github.com/annuyadav31/CRUDExample/internal/domain/persons"
	"github.com/annuyadav31/CRUDExample/internal/domain/shared"
	"github.com/annuyadav31/CRUDExample/internal/pkg/logger"

	"github.com/gin-gonic/gin"
)

const indexPath = "/persons/index"

// PersonController renders the person pages
type PersonController interface {
	Index(ctx *gin.Context)
	CreateForm(ctx *gin.Context)
	Create(ctx *gin.Context)
	EditForm(ctx *gin.Context)
	Edit(ctx *gin.Context)
	DeleteForm(ctx *gin.Context)
	Delete(ctx *gin.Context)
	PersonsCSV(ctx *gin.Context)
	PersonsPDF(ctx *gin.Context)
	PersonsExcel(ctx *gin.Context)
}

type personController struct {
	personService       persons.PersonService
	personExportService persons.PersonExportService
	countryService      countries.CountryService
	logger              logger.Logger
}

// NewPersonController creates a new PersonController
func NewPersonController(personService persons.PersonService, personExportService persons.PersonExportService, countryService countries.CountryService, logger logger.Logger) PersonController {
	return &personController{
		personService:       personService,
		personExportService: personExportService,
		countryService:      countryService,
		logger:              logger,
	}
}

// Index lists persons filtered by searchBy/searchString and sorted by sortBy/sortOrder
func (c *personController) Index(ctx *gin.Context) {
	searchBy := ctx.Query("searchBy")
	searchString := ctx.Query("searchString")
	sortBy := ctx.DefaultQuery("sortBy", persons.SortByPersonName)
	sortOrder := persons.ParseSortOrder(ctx.DefaultQuery("sortOrder", string(persons.SortOrderASC)))

	filtered, err := c.personService.GetFilteredPersons(ctx, searchBy, searchString)
	if err != nil {
		c.renderError(ctx, err)
		return
	}
	sorted, err := c.personService.GetSortedPersons(ctx, filtered, sortBy, sortOrder)
	if err != nil {
		c.renderError(ctx, err)
		return
	}

	ctx.HTML(http.StatusOK, "index.html", indexPage{
		Title:        "Persons",
		Persons:      sorted,
		SearchFields: persons.SearchFields,
		SearchBy:     searchBy,
		SearchString: searchString,
		SortBy:       sortBy,
		SortOrder:    sortOrder,
		Columns:      sortColumns(searchBy, searchString, sortBy, sortOrder),
	})
}

func (c *personController) CreateForm(ctx *gin.Context) {
	c.renderForm(ctx, http.StatusOK, "create.html", "Create Person", PersonForm{}, nil)
}

func (c *personController) Create(ctx *gin.Context) {
	var form PersonForm
	if err := ctx.ShouldBind(&form); err != nil {
		c.renderForm(ctx, http.StatusBadRequest, "create.html", "Create Person", form, &formErrors{Messages: []string{err.Error()}})
		return
	}

	req, errs := form.ToAddRequest()
	if errs != nil {
		c.renderForm(ctx, http.StatusBadRequest, "create.html", "Create Person", form, errs)
		return
	}

	if _, err := c.personService.AddPerson(ctx, req); err != nil {
		if isUserError(err) {
			errs = &formErrors{}
			errs.add(err)
			c.renderForm(ctx, http.StatusBadRequest, "create.html", "Create Person", form, errs)
			return
		}
		c.renderError(ctx, err)
		return
	}

	ctx.Redirect(http.StatusFound, indexPath)
}

func (c *personController) EditForm(ctx *gin.Context) {
	person, ok := c.lookup(ctx)
	if !ok {
		return
	}
	c.renderForm(ctx, http.StatusOK, "edit.html", "Edit Person", NewPersonForm(person), nil)
}

func (c *personController) Edit(ctx *gin.Context) {
	person, ok := c.lookup(ctx)
	if !ok {
		return
	}

	var form PersonForm
	if err := ctx.ShouldBind(&form); err != nil {
		form.PersonID = person.PersonID
		c.renderForm(ctx, http.StatusBadRequest, "edit.html", "Edit Person", form, &formErrors{Messages: []string{err.Error()}})
		return
	}
	form.PersonID = person.PersonID

	req, errs := form.ToUpdateRequest(person.PersonID)
	if errs != nil {
		c.renderForm(ctx, http.StatusBadRequest, "edit.html", "Edit Person", form, errs)
		return
	}

	if _, err := c.personService.UpdatePerson(ctx, req); err != nil {
		if isUserError(err) {
			errs = &formErrors{}
			errs.add(err)
			c.renderForm(ctx, http.StatusBadRequest, "edit.html", "Edit Person", form, errs)
			return
		}
		c.renderError(ctx, err)
		return
	}

	ctx.Redirect(http.StatusFound, indexPath)
}

func (c *personController) DeleteForm(ctx *gin.Context) {
	person, ok := c.lookup(ctx)
	if !ok {
		return
	}
	ctx.HTML(http.StatusOK, "delete.html", deletePage{Title: "Delete Person", Person: person})
}

func (c *personController) Delete(ctx *gin.Context) {
	person, ok := c.lookup(ctx)
	if !ok {
		return
	}
	if _, err := c.personService.DeletePerson(ctx, person.PersonID); err != nil {
		c.renderError(ctx, err)
		return
	}
	ctx.Redirect(http.StatusFound, indexPath)
}

func (c *personController) PersonsCSV(ctx *gin.Context) {
	c.download(ctx, persons.ExportFormatCSV)
}

func (c *personController) PersonsPDF(ctx *gin.Context) {
	c.download(ctx, persons.ExportFormatPDF)
}

func (c *personController) PersonsExcel(ctx *gin.Context) {
	c.download(ctx, persons.ExportFormatExcel)
}

func (c *personController) download(ctx *gin.Context, format persons.ExportFormat) {
	var buf bytes.Buffer
	if err := c.personExportService.Export(ctx, format, &buf); err != nil {
		c.renderError(ctx, err)
		return
	}
	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", format.FileName()))
	ctx.Data(http.StatusOK, format.ContentType(), buf.Bytes())
}

// lookup resolves the personID path parameter. Unknown persons redirect to the index.
func (c *personController) lookup(ctx *gin.Context) (*persons.PersonResponse, bool) {
	personID := ctx.Param("personID")
	person, err := c.personService.GetPersonByID(ctx, personID)
	if err != nil && !errors.Is(err, shared.ErrInvalidArgument) {
		c.renderError(ctx, err)
		return nil, false
	}
	if person == nil {
		ctx.Redirect(http.StatusFound, indexPath)
		return nil, false
	}
	return person, true
}

func (c *personController) renderForm(ctx *gin.Context, status int, name, title string, form PersonForm, errs *formErrors) {
	countryList, err := c.countryService.GetCountryList(ctx)
	if err != nil {
		c.renderError(ctx, err)
		return
	}

	page := personFormPage{
		Title:     title,
		Form:      form,
		Countries: countryList,
		Genders:   persons.Genders,
	}
	if errs != nil {
		page.Errors = errs.Messages
		page.FieldErrors = errs.Fields
	}
	ctx.HTML(status, name, page)
}

func (c *personController) renderError(ctx *gin.Context, err error) {
	renderError(ctx, c.logger, err)
}

func renderError(ctx *gin.Context, log logger.Logger, err error) {
	status := http.StatusInternalServerError
	message := "Something went wrong. Please try again later."
	if isUserError(err) {
		status = http.StatusBadRequest
		message = err.Error()
	} else {
		logger.FromContext(ctx.Request.Context(), log).Error(fmt.Sprintf("request %s %s failed: %v", ctx.Request.Method, ctx.Request.URL.Path, err))
	}
	_ = ctx.Error(err)
	ctx.HTML(status, "error.html", errorPage{Title: "Error", Message: message})
}

func isUserError(err error) bool {
	return errors.Is(err, shared.ErrInvalidArgument) || errors.Is(err, shared.ErrNilRequest)
}
