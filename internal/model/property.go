package model

import (
	"strconv"
	"time"
)

// A Property is a named, typed value displayed and edited in the property
// grid.
//
// Conversion of display state back into a typed value is the property's
// responsibility (StringToValue, IntToValue); editors delegate to these
// rather than interpreting control contents themselves.
type Property interface {
	// Name returns the property's unique name.
	Name() string

	// Label returns the text shown in the grid's label column.
	Label() string

	// Value returns the committed value.
	Value() Variant

	// SetValue commits the given value.
	SetValue(v Variant)

	// ValueString returns the committed value's display text.
	ValueString() string

	// StringToValue converts display text into a value of this property's
	// type. The second return is false if the text does not convert.
	StringToValue(s string) (Variant, bool)

	// IntToValue converts an integer (e.g. a selection index) into a value of
	// this property's type. The second return is false if the integer does
	// not convert.
	IntToValue(n int) (Variant, bool)

	// EditorName returns the name under which this property's editor is
	// registered.
	EditorName() string

	// SetEditorName assigns the editor to use for this property by registry
	// name.
	SetEditorName(name string)

	// ReadOnly reports whether the property may not be edited.
	ReadOnly() bool

	// Choices returns the valid display labels for enumerated properties and
	// nil for all others.
	Choices() []string
}

// BaseProperty carries the data common to all property types.
type BaseProperty struct {
	name     string
	label    string
	value    Variant
	editor   string
	readOnly bool
}

// Name returns the property's unique name.
func (p *BaseProperty) Name() string { return p.name }

// Label returns the text shown in the grid's label column.
func (p *BaseProperty) Label() string { return p.label }

// Value returns the committed value.
func (p *BaseProperty) Value() Variant { return p.value }

// SetValue commits the given value.
func (p *BaseProperty) SetValue(v Variant) { p.value = v }

// EditorName returns the name under which this property's editor is
// registered.
func (p *BaseProperty) EditorName() string { return p.editor }

// SetEditorName assigns the editor to use for this property.
func (p *BaseProperty) SetEditorName(name string) { p.editor = name }

// ReadOnly reports whether the property may not be edited.
func (p *BaseProperty) ReadOnly() bool { return p.readOnly }

// SetReadOnly marks the property as (not) editable.
func (p *BaseProperty) SetReadOnly(readOnly bool) { p.readOnly = readOnly }

// Choices returns nil; only enumerated properties have choices.
func (p *BaseProperty) Choices() []string { return nil }

// StringProperty is a property holding a string.
type StringProperty struct {
	BaseProperty
}

// NewStringProperty returns a string property with the given initial value.
func NewStringProperty(name, label, value string) *StringProperty {
	return &StringProperty{BaseProperty{
		name:   name,
		label:  label,
		value:  StringVariant(value),
		editor: "TextCtrl",
	}}
}

// ValueString returns the committed string, or the empty string when
// unspecified.
func (p *StringProperty) ValueString() string {
	s, _ := p.Value().AsString()
	return s
}

// StringToValue wraps the given text as a string value.
func (p *StringProperty) StringToValue(s string) (Variant, bool) {
	return StringVariant(s), true
}

// IntToValue does not convert; a string property has no integer
// representation.
func (p *StringProperty) IntToValue(int) (Variant, bool) {
	return NullVariant(), false
}

// IntProperty is a property holding an integer.
type IntProperty struct {
	BaseProperty
}

// NewIntProperty returns an integer property with the given initial value.
func NewIntProperty(name, label string, value int) *IntProperty {
	return &IntProperty{BaseProperty{
		name:   name,
		label:  label,
		value:  IntVariant(value),
		editor: "TextCtrl",
	}}
}

// ValueString returns the committed integer formatted in base 10.
func (p *IntProperty) ValueString() string {
	n, ok := p.Value().AsInt()
	if !ok {
		return ""
	}
	return strconv.Itoa(n)
}

// StringToValue parses the given text as a base-10 integer.
func (p *IntProperty) StringToValue(s string) (Variant, bool) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return NullVariant(), false
	}
	return IntVariant(n), true
}

// IntToValue wraps the given integer.
func (p *IntProperty) IntToValue(n int) (Variant, bool) {
	return IntVariant(n), true
}

// FloatProperty is a property holding a floating-point number.
type FloatProperty struct {
	BaseProperty
}

// NewFloatProperty returns a float property with the given initial value.
func NewFloatProperty(name, label string, value float64) *FloatProperty {
	return &FloatProperty{BaseProperty{
		name:   name,
		label:  label,
		value:  FloatVariant(value),
		editor: "TextCtrl",
	}}
}

// ValueString returns the committed float in its shortest representation.
func (p *FloatProperty) ValueString() string {
	f, ok := p.Value().AsFloat()
	if !ok {
		return ""
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// StringToValue parses the given text as a float.
func (p *FloatProperty) StringToValue(s string) (Variant, bool) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return NullVariant(), false
	}
	return FloatVariant(f), true
}

// IntToValue converts the given integer to a float value.
func (p *FloatProperty) IntToValue(n int) (Variant, bool) {
	return FloatVariant(float64(n)), true
}

// BoolProperty is a property holding a boolean.
type BoolProperty struct {
	BaseProperty
}

// NewBoolProperty returns a boolean property with the given initial value.
func NewBoolProperty(name, label string, value bool) *BoolProperty {
	return &BoolProperty{BaseProperty{
		name:   name,
		label:  label,
		value:  BoolVariant(value),
		editor: "CheckBox",
	}}
}

// ValueString returns "true" or "false", or the empty string when
// unspecified.
func (p *BoolProperty) ValueString() string {
	b, ok := p.Value().AsBool()
	if !ok {
		return ""
	}
	return strconv.FormatBool(b)
}

// StringToValue parses the given text as a boolean.
func (p *BoolProperty) StringToValue(s string) (Variant, bool) {
	b, err := strconv.ParseBool(s)
	if err != nil {
		return NullVariant(), false
	}
	return BoolVariant(b), true
}

// IntToValue converts 0 to false and any other integer to true.
func (p *BoolProperty) IntToValue(n int) (Variant, bool) {
	return BoolVariant(n != 0), true
}

// EnumProperty is a property holding one of a fixed set of choices,
// represented by the choice's index.
type EnumProperty struct {
	BaseProperty
	choices []string
}

// NewEnumProperty returns an enumerated property over the given choices with
// the given initially selected index.
func NewEnumProperty(name, label string, choices []string, selected int) *EnumProperty {
	return &EnumProperty{
		BaseProperty: BaseProperty{
			name:   name,
			label:  label,
			value:  IntVariant(selected),
			editor: "Choice",
		},
		choices: choices,
	}
}

// Choices returns the valid display labels.
func (p *EnumProperty) Choices() []string { return p.choices }

// ValueString returns the selected choice's label.
func (p *EnumProperty) ValueString() string {
	n, ok := p.Value().AsInt()
	if !ok || n < 0 || n >= len(p.choices) {
		return ""
	}
	return p.choices[n]
}

// StringToValue converts a choice label to its index value.
func (p *EnumProperty) StringToValue(s string) (Variant, bool) {
	for i, choice := range p.choices {
		if choice == s {
			return IntVariant(i), true
		}
	}
	return NullVariant(), false
}

// IntToValue wraps the given index, provided it is in range.
func (p *EnumProperty) IntToValue(n int) (Variant, bool) {
	if n < 0 || n >= len(p.choices) {
		return NullVariant(), false
	}
	return IntVariant(n), true
}

// DateProperty is a property holding a calendar date.
type DateProperty struct {
	BaseProperty
}

// NewDateProperty returns a date property with the given initial value.
func NewDateProperty(name, label string, value time.Time) *DateProperty {
	return &DateProperty{BaseProperty{
		name:   name,
		label:  label,
		value:  DateVariant(value),
		editor: "TextCtrl",
	}}
}

// ValueString returns the committed date formatted per DateFormat.
func (p *DateProperty) ValueString() string {
	t, ok := p.Value().AsDate()
	if !ok {
		return ""
	}
	return t.Format(DateFormat)
}

// StringToValue parses the given text per DateFormat.
func (p *DateProperty) StringToValue(s string) (Variant, bool) {
	t, err := time.Parse(DateFormat, s)
	if err != nil {
		return NullVariant(), false
	}
	return DateVariant(t), true
}

// IntToValue does not convert; a date property has no integer representation.
func (p *DateProperty) IntToValue(int) (Variant, bool) {
	return NullVariant(), false
}
