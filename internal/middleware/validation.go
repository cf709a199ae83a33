package middleware

import (
	"errors"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/kaan/studenthub/internal/pkg/validation"
)

// RegisterCustomValidators registers domain binding tags with gin's
// validator engine. Must run before the first request is bound.
func RegisterCustomValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return validation.IsValidPhone(fl.Field().String())
	})
	_ = v.RegisterValidation("nationalid", func(fl validator.FieldLevel) bool {
		return validation.IsValidNationalID(fl.Field().String())
	})
	_ = v.RegisterValidation("academicyear", func(fl validator.FieldLevel) bool {
		return validation.IsValidAcademicYear(fl.Field().String())
	})
}

// formatFieldError creates a human-readable message for a single
// binding failure.
func formatFieldError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "min":
		return e.Field() + " must be at least " + e.Param()
	case "max":
		return e.Field() + " must be at most " + e.Param()
	case "gt":
		return e.Field() + " must be greater than " + e.Param()
	case "gte":
		return e.Field() + " must be at least " + e.Param()
	case "lte":
		return e.Field() + " must be at most " + e.Param()
	case "email":
		return e.Field() + " must be a valid email address"
	case "oneof":
		return e.Field() + " must be one of: " + e.Param()
	case "phone":
		return e.Field() + " must be a valid phone number"
	case "nationalid":
		return e.Field() + " must be an 11-digit identifier"
	case "academicyear":
		return e.Field() + " must be of the form YYYY-YYYY"
	default:
		return e.Field() + " failed validation: " + e.Tag()
	}
}

// bindingErrorDetails flattens a binding failure into a field-to-message
// map. Non-validator failures (malformed JSON, type mismatches) are
// reported under a single key.
func bindingErrorDetails(err error) map[string]interface{} {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return map[string]interface{}{"binding": err.Error()}
	}

	details := make(map[string]interface{}, len(verrs))
	for _, e := range verrs {
		details[e.Field()] = formatFieldError(e)
	}
	return details
}
