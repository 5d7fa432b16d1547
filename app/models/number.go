package models

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Number is a JSON number that also accepts a numeric string ("79.99").
// A missing key or null leaves it unset; any other value that cannot be
// read as a finite number is kept as set-but-invalid so validation can
// report it instead of failing the whole decode.
type Number struct {
	value float64
	set   bool
	valid bool
}

// NewNumber returns a set, valid Number.
func NewNumber(v float64) Number {
	return Number{value: v, set: true, valid: true}
}

func (n *Number) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*n = Number{}
		return nil
	}

	*n = Number{set: true}

	raw := string(b)
	if strings.HasPrefix(raw, `"`) {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return nil
		}
		raw = strings.TrimSpace(s)
	}

	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	n.value = f
	n.valid = true
	return nil
}

func (n Number) MarshalJSON() ([]byte, error) {
	if !n.set || !n.valid {
		return []byte("null"), nil
	}
	return json.Marshal(n.value)
}

// Present reports whether the value appeared in the input and was not null.
func (n Number) Present() bool { return n.set }

// Float returns the parsed value and whether parsing succeeded.
func (n Number) Float() (float64, bool) { return n.value, n.set && n.valid }

// Value returns the parsed value, or 0 when unset or invalid.
func (n Number) Value() float64 {
	if !n.set || !n.valid {
		return 0
	}
	return n.value
}
