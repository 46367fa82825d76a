package validators

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// GenderValidation accepts the gender options offered by the person forms.
func GenderValidation(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "Male", "Female", "Others":
		return true
	default:
		return false
	}
}

// NotBlankValidation rejects strings made only of whitespace.
func NotBlankValidation(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}
