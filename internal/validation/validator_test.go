package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rhystmorgan/contactform/internal/models"
)

func newValidator(t *testing.T) *FormValidator {
	t.Helper()
	v, err := NewFormValidatorWithMinLength(5)
	require.NoError(t, err)
	return v
}

func TestValidateFieldFirstName(t *testing.T) {
	v := newValidator(t)

	tests := []struct {
		value   string
		wantErr bool
	}{
		{"", true},
		{"adfd", true},
		{"adfdd", false},
		{"Daehanminkuk", false},
		{"Zoë€a", false},
	}

	for _, tt := range tests {
		err := v.ValidateField(models.FieldFirstName, tt.value)
		if !tt.wantErr {
			assert.Nil(t, err, "value %q", tt.value)
			continue
		}
		require.NotNil(t, err, "value %q", tt.value)
		assert.Equal(t, ErrorLengthTooShort, err.Code)
		assert.Equal(t, "firstName must have at least 5 characters", err.Message)
	}
}

func TestValidateFieldLastName(t *testing.T) {
	v := newValidator(t)

	err := v.ValidateField(models.FieldLastName, "")
	require.NotNil(t, err)
	assert.Equal(t, ErrorRequiredMissing, err.Code)
	assert.Equal(t, "lastName is a required field", err.Error())

	assert.Nil(t, v.ValidateField(models.FieldLastName, "B"))
}

func TestValidateFieldEmail(t *testing.T) {
	v := newValidator(t)

	invalid := []string{"", "asdfdf@gmail", "user@gmail", "not-an-email", "@gmail.com"}
	for _, value := range invalid {
		err := v.ValidateField(models.FieldEmail, value)
		require.NotNil(t, err, "value %q", value)
		assert.Equal(t, ErrorInvalidFormat, err.Code)
		assert.Equal(t, "email must be a valid email address", err.Message)
	}

	for _, value := range []string{"asdf@gmail.com", "korea@gmail.com", "first.last@example.co.uk"} {
		assert.Nil(t, v.ValidateField(models.FieldEmail, value), "value %q", value)
	}
}

func TestMessageHasNoRule(t *testing.T) {
	v := newValidator(t)

	assert.False(t, v.HasRule(models.FieldMessage))
	assert.Nil(t, v.ValidateField(models.FieldMessage, ""))
}

func TestValidateFormEmpty(t *testing.T) {
	v := newValidator(t)

	result := v.ValidateForm(models.FormFields{})
	assert.False(t, result.IsValid)
	require.Len(t, result.Errors, 3)

	assert.Equal(t, models.FieldFirstName, result.Errors[0].Field)
	assert.Equal(t, models.FieldLastName, result.Errors[1].Field)
	assert.Equal(t, models.FieldEmail, result.Errors[2].Field)

	err := result.Err()
	require.Error(t, err)
	var fieldErr ValidationError
	require.True(t, errors.As(err, &fieldErr))
	assert.Contains(t, err.Error(), "lastName is a required field")
}

func TestValidateFormOnlyEmailMissing(t *testing.T) {
	v := newValidator(t)

	result := v.ValidateForm(models.FormFields{FirstName: "abcdefg", LastName: "hijkl"})
	require.Len(t, result.Errors, 1)

	assert.Equal(t, models.FieldEmail, result.Errors[0].Field)
	assert.Equal(t, ErrorInvalidFormat, result.Errors[0].Code)
}

func TestValidateFormValid(t *testing.T) {
	v := newValidator(t)

	result := v.ValidateForm(models.FormFields{
		FirstName: "adfdd",
		LastName:  "Berlin",
		Email:     "asdf@gmail.com",
	})
	assert.True(t, result.IsValid)
	assert.Empty(t, result.Errors)
	assert.NoError(t, result.Err())
	assert.False(t, result.ValidatedAt.IsZero())
}

func TestCustomFirstNameMinLength(t *testing.T) {
	v, err := NewFormValidatorWithMinLength(3)
	require.NoError(t, err)

	assert.Nil(t, v.ValidateField(models.FieldFirstName, "Ada"))

	fieldErr := v.ValidateField(models.FieldFirstName, "Al")
	require.NotNil(t, fieldErr)
	assert.Equal(t, "firstName must have at least 3 characters", fieldErr.Message)

	_, err = NewFormValidatorWithMinLength(0)
	require.Error(t, err)
}

func TestErrorCodeString(t *testing.T) {
	assert.Equal(t, "LengthTooShort", ErrorLengthTooShort.String())
	assert.Equal(t, "RequiredMissing", ErrorRequiredMissing.String())
	assert.Equal(t, "InvalidFormat", ErrorInvalidFormat.String())
	assert.Equal(t, "Unknown", ValidationErrorCode(9).String())
}
