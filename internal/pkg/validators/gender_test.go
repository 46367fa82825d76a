//go:build unit
// +build unit

package validators

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type genderHolder struct {
	Gender string `validate:"gender"`
	Name   string `validate:"notblank"`
}

func newTestValidator(t *testing.T) *validator.Validate {
	t.Helper()

	v := validator.New()
	require.NoError(t, v.RegisterValidation("gender", GenderValidation))
	require.NoError(t, v.RegisterValidation("notblank", NotBlankValidation))
	return v
}

func TestGenderValidation(t *testing.T) {
	v := newTestValidator(t)

	tests := []struct {
		gender string
		valid  bool
	}{
		{"Male", true},
		{"Female", true},
		{"Others", true},
		{"male", false},
		{"", false},
		{"Unknown", false},
	}

	for _, tt := range tests {
		t.Run(tt.gender, func(t *testing.T) {
			err := v.Struct(genderHolder{Gender: tt.gender, Name: "x"})
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestNotBlankValidation(t *testing.T) {
	v := newTestValidator(t)

	assert.NoError(t, v.Struct(genderHolder{Gender: "Male", Name: "Mary"}))
	assert.Error(t, v.Struct(genderHolder{Gender: "Male", Name: "   "}))
	assert.Error(t, v.Struct(genderHolder{Gender: "Male", Name: ""}))
}
