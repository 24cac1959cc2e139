package validation

import (
	"errors"
	"time"

	"rhystmorgan/contactform/internal/models"
)

// ValidationErrorCode represents specific validation error types
type ValidationErrorCode int

const (
	ErrorLengthTooShort ValidationErrorCode = iota
	ErrorRequiredMissing
	ErrorInvalidFormat
)

func (c ValidationErrorCode) String() string {
	switch c {
	case ErrorLengthTooShort:
		return "LengthTooShort"
	case ErrorRequiredMissing:
		return "RequiredMissing"
	case ErrorInvalidFormat:
		return "InvalidFormat"
	default:
		return "Unknown"
	}
}

// ValidationError represents a failing rule on one field
type ValidationError struct {
	Field   models.Field
	Code    ValidationErrorCode
	Message string
}

func (e ValidationError) Error() string {
	return e.Message
}

// ValidationResult represents the result of validating the whole form
type ValidationResult struct {
	IsValid     bool
	ValidatedAt time.Time
	Errors      []ValidationError
}

// Err joins the result's errors, or returns nil when the form is valid
func (r ValidationResult) Err() error {
	if len(r.Errors) == 0 {
		return nil
	}

	errs := make([]error, 0, len(r.Errors))
	for _, e := range r.Errors {
		errs = append(errs, e)
	}
	return errors.Join(errs...)
}
