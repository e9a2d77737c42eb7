package ir

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"
	"unicode/utf16"
)

// Value is a sealed interface over the literal values a definitions file
// may attach to a code as its auxiliary payload.
// Only Null, String, Int, Bool, List, and Dict implement this.
// There is no float: the definitions grammar has no float literals.
type Value interface {
	value() // Sealed - only these types implement it
}

// Null is the None literal when it appears inside a list or dict.
// A top-level extra=None is treated as "no payload" and stored as nil.
type Null struct{}

func (Null) value() {}

// MarshalJSON implements json.Marshaler for Null.
func (Null) MarshalJSON() ([]byte, error) {
	return []byte("null"), nil
}

// MarshalYAML renders Null as a YAML null rather than an empty mapping.
func (Null) MarshalYAML() (any, error) {
	return nil, nil
}

// String is a string literal.
type String string

func (String) value() {}

// Int is an integer literal.
type Int int64

func (Int) value() {}

// Bool is a True/False literal.
type Bool bool

func (Bool) value() {}

// List is a list or tuple literal.
type List []Value

func (List) value() {}

// Dict is a dict literal. Keys are always strings.
// Use SortedKeys() for deterministic iteration.
type Dict map[string]Value

func (Dict) value() {}

// SortedKeys returns keys in RFC 8785 canonical order (UTF-16 code units).
// Go's sort.Strings uses UTF-8 order, which differs outside the BMP.
func (d Dict) SortedKeys() []string {
	keys := make([]string, 0, len(d))
	for k := range d {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, compareKeysRFC8785)
	return keys
}

// MarshalJSON implements json.Marshaler for Dict with RFC 8785 key order.
// This is NOT canonical marshaling (HTML escaping still applies); use
// MarshalCanonical for fingerprints.
func (d Dict) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	for i, k := range d.SortedKeys() {
		if i > 0 {
			buf.WriteByte(',')
		}
		keyBytes, err := json.Marshal(k)
		if err != nil {
			return nil, fmt.Errorf("marshal key %q: %w", k, err)
		}
		buf.Write(keyBytes)
		buf.WriteByte(':')

		valBytes, err := json.Marshal(d[k])
		if err != nil {
			return nil, fmt.Errorf("marshal value for key %q: %w", k, err)
		}
		buf.Write(valBytes)
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// compareKeysRFC8785 compares strings by UTF-16 code units as RFC 8785
// requires.
func compareKeysRFC8785(a, b string) int {
	a16 := utf16.Encode([]rune(a))
	b16 := utf16.Encode([]rune(b))

	minLen := min(len(a16), len(b16))
	for i := 0; i < minLen; i++ {
		if a16[i] != b16[i] {
			if a16[i] < b16[i] {
				return -1
			}
			return 1
		}
	}

	switch {
	case len(a16) < len(b16):
		return -1
	case len(a16) > len(b16):
		return 1
	}
	return 0
}

// FormatValue renders a payload in the definitions-file literal syntax.
// Used in diagnostics and text output.
func FormatValue(v Value) string {
	var buf bytes.Buffer
	formatValue(&buf, v)
	return buf.String()
}

func formatValue(buf *bytes.Buffer, v Value) {
	switch val := v.(type) {
	case nil, Null:
		buf.WriteString("None")
	case String:
		buf.WriteString(fmt.Sprintf("%q", string(val)))
	case Int:
		buf.WriteString(fmt.Sprintf("%d", int64(val)))
	case Bool:
		if val {
			buf.WriteString("True")
		} else {
			buf.WriteString("False")
		}
	case List:
		buf.WriteByte('[')
		for i, elem := range val {
			if i > 0 {
				buf.WriteString(", ")
			}
			formatValue(buf, elem)
		}
		buf.WriteByte(']')
	case Dict:
		buf.WriteByte('{')
		for i, k := range val.SortedKeys() {
			if i > 0 {
				buf.WriteString(", ")
			}
			buf.WriteString(fmt.Sprintf("%q: ", k))
			formatValue(buf, val[k])
		}
		buf.WriteByte('}')
	default:
		buf.WriteString(fmt.Sprintf("<%T>", v))
	}
}
