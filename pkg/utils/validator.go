package utils

import (
	"errors"

	apperrors "inventory-service/pkg/errors"

	"github.com/go-playground/validator/v10"
)

type CustomValidator struct {
	validator *validator.Validate
}

func NewValidator(v *validator.Validate) *CustomValidator {
	return &CustomValidator{validator: v}
}

// Validate implements echo.Validator.
func (cv *CustomValidator) Validate(i interface{}) error {
	if err := cv.validator.Struct(i); err != nil {
		return err
	}
	return nil
}

// TranslateValidationError turns validator output into a ValidationError whose
// message is looked up by the first failing struct field. Fields missing from
// messages use fallback.
func TranslateValidationError(err error, messages map[string]string, fallback string) error {
	if err == nil {
		return nil
	}
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
		if msg, ok := messages[validationErrors[0].StructField()]; ok {
			return &apperrors.ValidationError{Message: msg}
		}
	}
	return &apperrors.ValidationError{Message: fallback}
}
