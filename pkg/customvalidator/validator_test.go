package customvalidator

import (
	"encoding/json"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	ID       json.Number `validate:"nonzero_number"`
	Quantity json.Number `validate:"omitempty,numeric_value"`
}

func newValidator(t *testing.T) *validator.Validate {
	t.Helper()
	v := validator.New()
	require.NoError(t, RegisterCustomValidations(v))
	return v
}

func TestNonZeroNumber(t *testing.T) {
	v := newValidator(t)

	assert.NoError(t, v.Struct(payload{ID: "3"}))
	assert.NoError(t, v.Struct(payload{ID: "-1"}))

	for _, id := range []json.Number{"", "0", "abc"} {
		err := v.Struct(payload{ID: id})
		require.Error(t, err, "id %q", id)
		var verrs validator.ValidationErrors
		require.ErrorAs(t, err, &verrs)
		assert.Equal(t, "ID", verrs[0].StructField())
	}
}

func TestNumericValue(t *testing.T) {
	v := newValidator(t)

	assert.NoError(t, v.Struct(payload{ID: "1"}))
	assert.NoError(t, v.Struct(payload{ID: "1", Quantity: "0"}))
	assert.NoError(t, v.Struct(payload{ID: "1", Quantity: "2.5"}))
	assert.Error(t, v.Struct(payload{ID: "1", Quantity: "lots"}))
}
