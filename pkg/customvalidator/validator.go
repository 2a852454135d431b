package customvalidator

import (
	"encoding/json"
	"reflect"
	"strings"

	"inventory-service/pkg/utils"

	"github.com/go-playground/validator/v10"
)

// RegisterCustomValidations registers every project-specific rule on v.
func RegisterCustomValidations(v *validator.Validate) error {
	if err := v.RegisterValidation("numeric_value", isNumericValue); err != nil {
		return err
	}
	if err := v.RegisterValidation("nonzero_number", isNonZeroNumber); err != nil {
		return err
	}
	return nil
}

func numberFromField(fl validator.FieldLevel) (int64, bool) {
	field := fl.Field()
	if field.Kind() != reflect.String {
		return 0, false
	}
	raw := strings.TrimSpace(field.String())
	if raw == "" {
		return 0, false
	}
	n, err := utils.ParseNumber(json.Number(raw))
	if err != nil {
		return 0, false
	}
	return n, true
}

// numeric_value: a number or numeric string.
func isNumericValue(fl validator.FieldLevel) bool {
	_, ok := numberFromField(fl)
	return ok
}

// nonzero_number: a number or numeric string that is not 0.
func isNonZeroNumber(fl validator.FieldLevel) bool {
	n, ok := numberFromField(fl)
	return ok && n != 0
}
