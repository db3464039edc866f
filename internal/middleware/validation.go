package middleware

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/mertc/coursehub/internal/app/models/dto"
)

// HandleValidationError turns a binding/validator error into an error detail
// listing every failing field, not just the first.
func HandleValidationError(err error) *dto.ErrorDetail {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format").
			WithDetails(err.Error())
	}

	fieldErrors := dto.NewValidationErrors()
	for _, fieldErr := range validationErrs {
		fieldErrors.Add(strings.ToLower(fieldErr.Field()), formatValidationError(fieldErr))
	}

	return dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Validation failed").
		WithDetails(fieldErrors.Errors)
}

// formatValidationError creates a human-readable validation error message
func formatValidationError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "min":
		return e.Field() + " must be at least " + e.Param()
	case "max":
		return e.Field() + " must be at most " + e.Param()
	case "email":
		return e.Field() + " must be a valid email address"
	case "oneof":
		return e.Field() + " must be one of: " + e.Param()
	default:
		return e.Field() + " validation failed: " + e.Tag()
	}
}
