// Package model implements the property value model of the property grid.
//
// Properties are named, typed values; a Variant is the dynamically typed
// value slot through which editors and the grid exchange property values.
package model

import (
	"fmt"
	"time"
)

// Variant is a dynamically typed value.
//
// The zero value is the distinguished "unspecified" (null) state, which
// properties may use to represent an explicitly unset value.
type Variant struct {
	value any
}

// NullVariant returns an unspecified value.
func NullVariant() Variant { return Variant{} }

// StringVariant returns a Variant holding the given string.
func StringVariant(s string) Variant { return Variant{value: s} }

// IntVariant returns a Variant holding the given integer.
func IntVariant(n int) Variant { return Variant{value: n} }

// FloatVariant returns a Variant holding the given float.
func FloatVariant(f float64) Variant { return Variant{value: f} }

// BoolVariant returns a Variant holding the given boolean.
func BoolVariant(b bool) Variant { return Variant{value: b} }

// DateVariant returns a Variant holding the given time, truncated to its
// date.
func DateVariant(t time.Time) Variant {
	year, month, day := t.Date()
	return Variant{value: time.Date(year, month, day, 0, 0, 0, 0, t.Location())}
}

// IsNull reports whether this variant is the unspecified value.
func (v Variant) IsNull() bool { return v.value == nil }

// AsString returns the held string, if one is held.
func (v Variant) AsString() (string, bool) {
	s, ok := v.value.(string)
	return s, ok
}

// AsInt returns the held integer, if one is held.
func (v Variant) AsInt() (int, bool) {
	n, ok := v.value.(int)
	return n, ok
}

// AsFloat returns the held float, if one is held.
func (v Variant) AsFloat() (float64, bool) {
	f, ok := v.value.(float64)
	return f, ok
}

// AsBool returns the held boolean, if one is held.
func (v Variant) AsBool() (bool, bool) {
	b, ok := v.value.(bool)
	return b, ok
}

// AsDate returns the held date, if one is held.
func (v Variant) AsDate() (time.Time, bool) {
	t, ok := v.value.(time.Time)
	return t, ok
}

// Equal reports whether the two variants hold the same value.
// Two unspecified variants are equal.
func (v Variant) Equal(other Variant) bool {
	if v.IsNull() || other.IsNull() {
		return v.IsNull() == other.IsNull()
	}
	if vt, ok := v.value.(time.Time); ok {
		if ot, otherIsTime := other.value.(time.Time); otherIsTime {
			return vt.Equal(ot)
		}
		return false
	}
	return v.value == other.value
}

// String returns a human-readable representation, primarily for debugging and
// logging purposes.
func (v Variant) String() string {
	if v.IsNull() {
		return "<unspecified>"
	}
	if t, ok := v.value.(time.Time); ok {
		return t.Format(DateFormat)
	}
	return fmt.Sprintf("%v", v.value)
}

// DateFormat is the format in which date values are converted to and from
// strings.
const DateFormat = "2006-01-02"
