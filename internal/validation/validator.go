package validation

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"rhystmorgan/contactform/internal/models"
)

// rule binds a field to the validator tag it must satisfy and the single
// message shown whenever any part of the tag fails.
type rule struct {
	field   models.Field
	tag     string
	code    ValidationErrorCode
	message string
}

// FormValidator checks contact form values. It is safe for concurrent use.
type FormValidator struct {
	validate *validator.Validate
	rules    map[models.Field]rule
}

// NewFormValidatorWithMinLength creates a FormValidator requiring first names
// of at least minLength characters
func NewFormValidatorWithMinLength(minLength int) (*FormValidator, error) {
	if minLength < 1 {
		return nil, fmt.Errorf("first name minimum length must be positive, got: %d", minLength)
	}

	rules := []rule{
		{
			field:   models.FieldFirstName,
			tag:     fmt.Sprintf("min=%d", minLength),
			code:    ErrorLengthTooShort,
			message: fmt.Sprintf("firstName must have at least %d characters", minLength),
		},
		{
			field:   models.FieldLastName,
			tag:     "required",
			code:    ErrorRequiredMissing,
			message: "lastName is a required field",
		},
		{
			field:   models.FieldEmail,
			tag:     "required,email",
			code:    ErrorInvalidFormat,
			message: "email must be a valid email address",
		},
	}

	v := &FormValidator{
		validate: validator.New(),
		rules:    make(map[models.Field]rule, len(rules)),
	}
	for _, r := range rules {
		v.rules[r.field] = r
	}

	return v, nil
}

// ValidateField checks a single value. It returns nil when the value passes
// or the field carries no rule.
func (v *FormValidator) ValidateField(field models.Field, value string) *ValidationError {
	r, ok := v.rules[field]
	if !ok {
		return nil
	}

	if err := v.validate.Var(value, r.tag); err != nil {
		return &ValidationError{
			Field:   field,
			Code:    r.code,
			Message: r.message,
		}
	}

	return nil
}

// ValidateForm checks every rule, reporting at most one error per field in
// display order
func (v *FormValidator) ValidateForm(fields models.FormFields) ValidationResult {
	result := ValidationResult{
		IsValid:     true,
		ValidatedAt: time.Now(),
	}

	for _, field := range models.Fields {
		if err := v.ValidateField(field, fields.Get(field)); err != nil {
			result.Errors = append(result.Errors, *err)
			result.IsValid = false
		}
	}

	return result
}

// HasRule reports whether field is validated at all
func (v *FormValidator) HasRule(field models.Field) bool {
	_, ok := v.rules[field]
	return ok
}
