package web

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/annuyadav31/CRUDExample/internal/domain/countries"
	"github.com/annuyadav31/CRUDExample/internal/pkg/logger"

	"github.com/gin-gonic/gin"
)

// UploadFileField is the multipart field holding the countries workbook
const UploadFileField = "excelFile"

// CountryController renders the country pages
type CountryController interface {
	UploadForm(ctx *gin.Context)
	Upload(ctx *gin.Context)
}

type countryController struct {
	countryService countries.CountryService
	logger         logger.Logger
}

// NewCountryController creates a new CountryController
func NewCountryController(countryService countries.CountryService, logger logger.Logger) CountryController {
	return &countryController{
		countryService: countryService,
		logger:         logger,
	}
}

func (c *countryController) UploadForm(ctx *gin.Context) {
	ctx.HTML(http.StatusOK, "upload.html", uploadPage{Title: "Upload Countries"})
}

// Upload imports the country names of an xlsx workbook
func (c *countryController) Upload(ctx *gin.Context) {
	fileHeader, err := ctx.FormFile(UploadFileField)
	if err != nil {
		c.renderUpload(ctx, http.StatusBadRequest, "", "Please select an xlsx file")
		return
	}
	if !strings.EqualFold(filepath.Ext(fileHeader.Filename), ".xlsx") {
		c.renderUpload(ctx, http.StatusBadRequest, "", "Unsupported file. 'xlsx' file is expected")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		renderError(ctx, c.logger, err)
		return
	}
	defer func() {
		if err := file.Close(); err != nil {
			c.logger.Warn(fmt.Sprintf("failed to close upload %s: %v", fileHeader.Filename, err))
		}
	}()

	inserted, err := c.countryService.UploadCountriesFromExcel(ctx, file)
	if err != nil {
		if isUserError(err) {
			c.renderUpload(ctx, http.StatusBadRequest, "", err.Error())
			return
		}
		renderError(ctx, c.logger, err)
		return
	}

	c.renderUpload(ctx, http.StatusOK, fmt.Sprintf("%d Countries Uploaded", inserted))
}

func (c *countryController) renderUpload(ctx *gin.Context, status int, message string, errs ...string) {
	ctx.HTML(status, "upload.html", uploadPage{
		Title:   "Upload Countries",
		Message: message,
		Errors:  errs,
	})
}
