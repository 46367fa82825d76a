package shared

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/annuyadav31/CRUDExample/internal/pkg/validators"
	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	validateErr  error
	validateOnce sync.Once
)

func getValidator() (*validator.Validate, error) {
	validateOnce.Do(func() {
		v := validator.New()
		if err := v.RegisterValidation("gender", validators.GenderValidation); err != nil {
			validateErr = fmt.Errorf("failed to register custom validator: %w", err)
			return
		}
		if err := v.RegisterValidation("notblank", validators.NotBlankValidation); err != nil {
			validateErr = fmt.Errorf("failed to register custom validator: %w", err)
			return
		}
		validate = v
	})
	return validate, validateErr
}

// ValidationError carries the failed fields of a struct validation.
// It unwraps to ErrInvalidArgument.
type ValidationError struct {
	// Fields maps a struct field name to a message suitable for a form.
	Fields   map[string]string
	messages []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %v", e.messages)
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidArgument
}

// Validate runs the struct tags of s through the shared validator.
func Validate(s interface{}) error {
	v, err := getValidator()
	if err != nil {
		return err
	}

	err = v.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("validation error: %w", err)
	}

	verr := &ValidationError{Fields: make(map[string]string, len(validationErrors))}
	for _, fieldErr := range validationErrors {
		verr.messages = append(verr.messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
		if _, seen := verr.Fields[fieldErr.Field()]; !seen {
			verr.Fields[fieldErr.Field()] = fieldMessage(fieldErr)
		}
	}
	return verr
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "notblank":
		return fmt.Sprintf("%s is required", fe.Field())
	case "email":
		return "Please enter correct email pattern"
	case "max":
		return fmt.Sprintf("%s can't be longer than %s characters", fe.Field(), fe.Param())
	case "gender":
		return fmt.Sprintf("%s must be one of Male, Female, Others", fe.Field())
	case "uuid4":
		return fmt.Sprintf("%s must be a valid identifier", fe.Field())
	default:
		return fmt.Sprintf("%s is invalid (%s)", fe.Field(), strings.TrimSpace(fe.Tag()+" "+fe.Param()))
	}
}
