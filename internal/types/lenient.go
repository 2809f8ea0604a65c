// Package types provides type definitions for structured data used throughout the valuation system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Project records are typed by hand in web forms, so every field is decoded
// leniently: a value of the wrong shape becomes the zero value instead of
// failing the whole record.

// Number is a numeric field that accepts JSON numbers and numeric strings.
// Anything else decodes as 0.
type Number float64

// Float returns the value as a float64.
func (n Number) Float() float64 {
	return float64(n)
}

// UnmarshalJSON implements json.Unmarshaler.
func (n *Number) UnmarshalJSON(data []byte) error {
	*n = Number(numberFromJSON(data))
	return nil
}

func numberFromJSON(data []byte) float64 {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return 0
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return 0
		}
		return ParseNumber(s)
	}
	f, err := strconv.ParseFloat(string(data), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// ParseNumber parses a free-form numeric string such as "1 200", "12,5" or
// "25 000 kr". Swedish conventions apply: a lone comma is a decimal separator
// and spaces group thousands. Unparseable input yields 0.
func ParseNumber(s string) float64 {
	s = strings.TrimSpace(strings.ToLower(s))
	for _, suffix := range []string{"sek", "kr", ":-", "%"} {
		s = strings.TrimSpace(strings.TrimSuffix(s, suffix))
	}
	s = strings.NewReplacer(" ", "", "\u00a0", "", "\u202f", "", "_", "").Replace(s)
	if s == "" {
		return 0
	}
	if strings.Contains(s, ",") {
		if strings.Contains(s, ".") {
			s = strings.ReplaceAll(s, ",", "")
		} else {
			s = strings.ReplaceAll(s, ",", ".")
		}
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// Flag is a boolean field that also accepts "true"/"ja"/"yes" and non-zero numbers.
type Flag bool

// UnmarshalJSON implements json.Unmarshaler.
func (f *Flag) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("true")):
		*f = true
	case len(data) > 0 && data[0] == '"':
		var s string
		_ = json.Unmarshal(data, &s)
		switch strings.ToLower(strings.TrimSpace(s)) {
		case "true", "yes", "ja", "1", "on":
			*f = true
		default:
			*f = false
		}
	default:
		*f = Flag(numberFromJSON(data) != 0)
	}
	return nil
}

// Text is a string field. Numbers are kept as their literal text, other
// non-string values decode as "".
type Text string

// String returns the trimmed text.
func (t Text) String() string {
	return strings.TrimSpace(string(t))
}

// IsBlank reports whether the text is empty after trimming.
func (t Text) IsBlank() bool {
	return t.String() == ""
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *Text) UnmarshalJSON(data []byte) error {
	*t = Text(textFromJSON(data))
	return nil
}

func textFromJSON(data []byte) string {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return ""
	}
	switch {
	case data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return ""
		}
		return s
	case data[0] == '-' || (data[0] >= '0' && data[0] <= '9'):
		return string(data)
	default:
		return ""
	}
}

// List is a slice field. A non-array value decodes as an empty list.
type List[T any] []T

// UnmarshalJSON implements json.Unmarshaler.
func (l *List[T]) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] != '[' {
		*l = nil
		return nil
	}
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		*l = nil
		return nil
	}
	out := make(List[T], 0, len(raw))
	for _, item := range raw {
		var v T
		if err := json.Unmarshal(item, &v); err != nil {
			var zero T
			v = zero
		}
		out = append(out, v)
	}
	*l = out
	return nil
}

// NonBlank returns the number of non-blank entries in a text list.
func NonBlank(items List[Text]) int {
	n := 0
	for _, item := range items {
		if !item.IsBlank() {
			n++
		}
	}
	return n
}

// decodeObject decodes data into dst when data is a JSON object and leaves
// dst at its zero value otherwise. dst must be a plain alias of the target
// type so that decoding does not recurse into UnmarshalJSON.
func decodeObject[T any](data []byte, dst *T) error {
	var zero T
	*dst = zero
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil
	}
	if err := json.Unmarshal(trimmed, dst); err != nil {
		*dst = zero
	}
	return nil
}

// enumFromJSON decodes a discriminator value as a lower-cased, trimmed string.
func enumFromJSON(data []byte) string {
	return strings.ToLower(strings.TrimSpace(textFromJSON(data)))
}
