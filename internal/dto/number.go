package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// FlexibleNumber is a request field that accepts a JSON number or a numeric
// string. null, false and "" decode as empty, true as 1. Non-numeric strings
// are kept as given and rejected by validation.
type FlexibleNumber string

func (n *FlexibleNumber) UnmarshalJSON(data []byte) error {
	raw := bytes.TrimSpace(data)
	switch {
	case bytes.Equal(raw, []byte("null")), bytes.Equal(raw, []byte("false")):
		*n = ""
	case bytes.Equal(raw, []byte("true")):
		*n = "1"
	case len(raw) > 0 && raw[0] == '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return err
		}
		*n = FlexibleNumber(strings.TrimSpace(s))
	default:
		var num json.Number
		if err := json.Unmarshal(raw, &num); err != nil {
			return fmt.Errorf("expected a number or numeric string: %w", err)
		}
		*n = FlexibleNumber(num)
	}
	return nil
}

func (n FlexibleNumber) Number() json.Number { return json.Number(n) }
