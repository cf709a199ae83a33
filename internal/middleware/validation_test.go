package middleware

import (
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type taggedInput struct {
	Phone        string `binding:"omitempty,phone"`
	NationalID   string `binding:"omitempty,nationalid"`
	AcademicYear string `binding:"omitempty,academicyear"`
}

func TestRegisterCustomValidators(t *testing.T) {
	RegisterCustomValidators()

	engine, ok := binding.Validator.Engine().(*validator.Validate)
	require.True(t, ok)

	tests := []struct {
		name    string
		input   taggedInput
		wantErr bool
	}{
		{"all empty", taggedInput{}, false},
		{"valid phone", taggedInput{Phone: "+905551234567"}, false},
		{"phone with letters", taggedInput{Phone: "555-CALL-NOW"}, true},
		{"valid national id", taggedInput{NationalID: "12345678901"}, false},
		{"short national id", taggedInput{NationalID: "123"}, true},
		{"valid academic year", taggedInput{AcademicYear: "2026-2027"}, false},
		{"malformed academic year", taggedInput{AcademicYear: "2026/27"}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := engine.Struct(tc.input)
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBindingErrorDetails(t *testing.T) {
	RegisterCustomValidators()

	engine, ok := binding.Validator.Engine().(*validator.Validate)
	require.True(t, ok)

	err := engine.Struct(taggedInput{Phone: "bad", AcademicYear: "also bad"})
	require.Error(t, err)

	details := bindingErrorDetails(err)
	assert.Contains(t, details, "Phone")
	assert.Contains(t, details, "AcademicYear")
	assert.Equal(t, "Phone must be a valid phone number", details["Phone"])

	plain := bindingErrorDetails(assert.AnError)
	assert.Contains(t, plain, "binding")
}
