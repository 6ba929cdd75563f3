package api

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// FieldError is a single failed binding rule on a request field.
type FieldError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Message string `json:"message"`
}

// ValidationErrorResponse is returned when request binding fails.
type ValidationErrorResponse struct {
	Error   string       `json:"error"`
	Details []FieldError `json:"details,omitempty"`
}

// BindingErrors turns a gin binding error into per-field messages. Errors
// that are not validator errors (malformed JSON and the like) yield nil.
func BindingErrors(err error) []FieldError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}

	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{
			Field:   fe.Field(),
			Tag:     fe.Tag(),
			Message: fieldErrorMessage(fe),
		})
	}
	return out
}

func fieldErrorMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "email":
		return fe.Field() + " must be a valid email address"
	case "min":
		return fe.Field() + " must be at least " + fe.Param()
	case "max":
		return fe.Field() + " must be at most " + fe.Param()
	case "oneof":
		return fe.Field() + " must be one of: " + fe.Param()
	default:
		return fe.Field() + " is invalid"
	}
}

// NewValidationError builds the standard response for a failed bind.
func NewValidationError(err error) ValidationErrorResponse {
	return ValidationErrorResponse{
		Error:   "validation failed",
		Details: BindingErrors(err),
	}
}
