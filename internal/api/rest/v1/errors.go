package v1

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/annuyadav31/CRUDExample/internal/domain/shared"

	"github.com/gin-gonic/gin"
)

// statusFor maps service errors to HTTP status codes
func statusFor(err error) int {
	switch {
	case errors.Is(err, shared.ErrNilRequest), errors.Is(err, shared.ErrInvalidArgument):
		return http.StatusBadRequest
	case errors.Is(err, shared.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func abortWithError(ctx *gin.Context, err error, format string, args ...interface{}) {
	var errorResponse ErrorResponse
	errorResponse.Message = fmt.Sprintf("%s: %v", fmt.Sprintf(format, args...), err)

	var verr *shared.ValidationError
	if errors.As(err, &verr) {
		errorResponse.Fields = verr.Fields
	}

	_ = ctx.Error(err)
	ctx.JSON(statusFor(err), errorResponse)
}

func notFound(ctx *gin.Context, format string, args ...interface{}) {
	var errorResponse ErrorResponse
	errorResponse.Message = fmt.Sprintf(format, args...)
	ctx.JSON(http.StatusNotFound, errorResponse)
}
