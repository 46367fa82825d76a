package v1

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/annuyadav31/CRUDExample/internal/domain/persons"

	"github.com/gin-gonic/gin"
)

// PersonHandler defines the interface for handling person-related operations
type PersonHandler interface {
	List(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	Create(ctx *gin.Context)
	Update(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
	Export(ctx *gin.Context)
}

// personHandler struct holds the services
type personHandler struct {
	personService       persons.PersonService
	personExportService persons.PersonExportService
}

// NewPersonHandler creates a new PersonHandler
func NewPersonHandler(personService persons.PersonService, personExportService persons.PersonExportService) PersonHandler {
	return &personHandler{
		personService:       personService,
		personExportService: personExportService,
	}
}

// List handles the GET request to search and sort persons
// @Summary List persons
// @Description Filter persons by a field and sort the result.
// @Tags Person
// @Produce json
// @Param searchBy query string false "Field to search (PersonName, Email, DateOfBirth, Gender, CountryID, Address)"
// @Param searchString query string false "Text to search for"
// @Param sortBy query string false "Field to sort by" default(PersonName)
// @Param sortOrder query string false "ASC or DESC" default(ASC)
// @Success 200 {array} PersonResponse
// @Failure 500 {object} ErrorResponse
// @Router /persons [get]
func (handler *personHandler) List(ctx *gin.Context) {
	searchBy := ctx.Query("searchBy")
	searchString := ctx.Query("searchString")
	sortBy := ctx.DefaultQuery("sortBy", persons.SortByPersonName)
	sortOrder := persons.ParseSortOrder(ctx.DefaultQuery("sortOrder", string(persons.SortOrderASC)))

	filtered, err := handler.personService.GetFilteredPersons(ctx, searchBy, searchString)
	if err != nil {
		abortWithError(ctx, err, "list query failed")
		return
	}

	sorted, err := handler.personService.GetSortedPersons(ctx, filtered, sortBy, sortOrder)
	if err != nil {
		abortWithError(ctx, err, "sorting failed")
		return
	}

	var listResponse = []PersonResponse{}
	for _, p := range sorted {
		listResponse = append(listResponse, NewPersonResponse(p))
	}

	ctx.JSON(http.StatusOK, listResponse)
}

// GetByID handles the GET request to retrieve a person by ID
// @Summary Retrieve a person by ID
// @Tags Person
// @Produce json
// @Param id path string true "Person ID"
// @Success 200 {object} PersonResponse
// @Failure 404 {object} ErrorResponse
// @Router /persons/{id} [get]
func (handler *personHandler) GetByID(ctx *gin.Context) {
	personID := ctx.Param("id")

	person, err := handler.personService.GetPersonByID(ctx, personID)
	if err != nil {
		abortWithError(ctx, err, "error fetching person with id %s", personID)
		return
	}
	if person == nil {
		notFound(ctx, "person with id %s not found", personID)
		return
	}

	ctx.JSON(http.StatusOK, NewPersonResponse(person))
}

// Create handles the POST request to add a person
// @Summary Add a person
// @Tags Person
// @Accept json
// @Produce json
// @Param requestBody body PersonRequest true "Person data"
// @Success 201 {object} PersonResponse
// @Failure 400 {object} ErrorResponse
// @Router /persons [post]
func (handler *personHandler) Create(ctx *gin.Context) {
	var request PersonRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("invalid person data: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	addRequest, err := request.ToAddRequest()
	if err != nil {
		abortWithError(ctx, err, "invalid person data")
		return
	}

	person, err := handler.personService.AddPerson(ctx, addRequest)
	if err != nil {
		abortWithError(ctx, err, "error adding person")
		return
	}

	ctx.JSON(http.StatusCreated, NewPersonResponse(person))
}

// Update handles the PUT request to replace a person
// @Summary Update a person
// @Tags Person
// @Accept json
// @Produce json
// @Param id path string true "Person ID"
// @Param requestBody body PersonRequest true "Person data"
// @Success 200 {object} PersonResponse
// @Failure 400 {object} ErrorResponse
// @Router /persons/{id} [put]
func (handler *personHandler) Update(ctx *gin.Context) {
	personID := ctx.Param("id")

	var request PersonRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("invalid person data: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	updateRequest, err := request.ToUpdateRequest(personID)
	if err != nil {
		abortWithError(ctx, err, "invalid person data")
		return
	}

	person, err := handler.personService.UpdatePerson(ctx, updateRequest)
	if err != nil {
		abortWithError(ctx, err, "error updating person with id %s", personID)
		return
	}

	ctx.JSON(http.StatusOK, NewPersonResponse(person))
}

// DeleteByID handles the DELETE request to remove a person
// @Summary Delete a person by ID
// @Tags Person
// @Produce json
// @Param id path string true "Person ID"
// @Success 200 {object} InfoResponse
// @Failure 404 {object} ErrorResponse
// @Router /persons/{id} [delete]
func (handler *personHandler) DeleteByID(ctx *gin.Context) {
	personID := ctx.Param("id")

	deleted, err := handler.personService.DeletePerson(ctx, personID)
	if err != nil {
		abortWithError(ctx, err, "error deleting person with id %s", personID)
		return
	}
	if !deleted {
		notFound(ctx, "person with id %s not found", personID)
		return
	}

	var infoResponse InfoResponse
	infoResponse.Message = fmt.Sprintf("deleted person with id %s", personID)
	ctx.JSON(http.StatusOK, infoResponse)
}

// Export handles the GET request to download every person as a file
// @Summary Export persons
// @Tags Person
// @Produce octet-stream
// @Param format path string true "csv, pdf or xlsx"
// @Success 200 {file} file
// @Failure 400 {object} ErrorResponse
// @Router /persons/export/{format} [get]
func (handler *personHandler) Export(ctx *gin.Context) {
	format, err := persons.ParseExportFormat(ctx.Param("format"))
	if err != nil {
		abortWithError(ctx, err, "invalid export format")
		return
	}

	var buf bytes.Buffer
	if err := handler.personExportService.Export(ctx, format, &buf); err != nil {
		abortWithError(ctx, err, "error exporting persons")
		return
	}

	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", format.FileName()))
	ctx.Data(http.StatusOK, format.ContentType(), buf.Bytes())
}
