package model_test

import (
	"testing"
	"time"

	"github.com/Lotendan/wxWidgets/internal/model"
)

func TestVariant(t *testing.T) {

	t.Run("ZeroValueIsNull", func(t *testing.T) {
		var v model.Variant
		if !v.IsNull() {
			t.Error("zero value variant claims to hold a value")
		}
		if !v.Equal(model.NullVariant()) {
			t.Error("zero value variant does not equal the null variant")
		}
	})

	t.Run("TypedAccess", func(t *testing.T) {
		if s, ok := model.StringVariant("hello").AsString(); !ok || s != "hello" {
			t.Error("string variant does not yield its string")
		}
		if _, ok := model.StringVariant("hello").AsInt(); ok {
			t.Error("string variant yields an integer")
		}
		if n, ok := model.IntVariant(42).AsInt(); !ok || n != 42 {
			t.Error("int variant does not yield its integer")
		}
		if f, ok := model.FloatVariant(1.5).AsFloat(); !ok || f != 1.5 {
			t.Error("float variant does not yield its float")
		}
		if b, ok := model.BoolVariant(true).AsBool(); !ok || !b {
			t.Error("bool variant does not yield its boolean")
		}
	})

	t.Run("DateTruncation", func(t *testing.T) {
		v := model.DateVariant(time.Date(2021, 11, 12, 13, 14, 15, 16, time.UTC))
		date, ok := v.AsDate()
		if !ok {
			t.Fatal("date variant does not yield a date")
		}
		if date.Hour() != 0 || date.Minute() != 0 || date.Second() != 0 {
			t.Error("date variant retains time-of-day:", date)
		}
	})

	t.Run("Equal", func(t *testing.T) {
		if !model.IntVariant(3).Equal(model.IntVariant(3)) {
			t.Error("equal ints claimed unequal")
		}
		if model.IntVariant(3).Equal(model.IntVariant(4)) {
			t.Error("unequal ints claimed equal")
		}
		if model.IntVariant(3).Equal(model.StringVariant("3")) {
			t.Error("int equals string")
		}
		if model.IntVariant(0).Equal(model.NullVariant()) {
			t.Error("zero int equals null")
		}
		utc := model.DateVariant(time.Date(2021, 11, 12, 0, 0, 0, 0, time.UTC))
		if !utc.Equal(model.DateVariant(time.Date(2021, 11, 12, 8, 30, 0, 0, time.UTC))) {
			t.Error("same dates claimed unequal")
		}
	})

	t.Run("String", func(t *testing.T) {
		if model.NullVariant().String() != "<unspecified>" {
			t.Error("null variant string:", model.NullVariant().String())
		}
		v := model.DateVariant(time.Date(2021, 11, 12, 0, 0, 0, 0, time.UTC))
		if v.String() != "2021-11-12" {
			t.Error("date variant string:", v.String())
		}
	})
}

func TestProperties(t *testing.T) {

	t.Run("String", func(t *testing.T) {
		p := model.NewStringProperty("name", "Name", "x")
		if p.EditorName() != "TextCtrl" {
			t.Error("unexpected default editor:", p.EditorName())
		}
		v, ok := p.StringToValue("y")
		if !ok {
			t.Fatal("string conversion failed")
		}
		p.SetValue(v)
		if p.ValueString() != "y" {
			t.Error("value not committed:", p.ValueString())
		}
		if _, ok := p.IntToValue(1); ok {
			t.Error("string property converts from int")
		}
	})

	t.Run("Int", func(t *testing.T) {
		p := model.NewIntProperty("age", "Age", 30)
		if p.ValueString() != "30" {
			t.Error("unexpected value string:", p.ValueString())
		}
		if _, ok := p.StringToValue("notanumber"); ok {
			t.Error("converts garbage to int")
		}
		v, ok := p.StringToValue("31")
		if !ok {
			t.Fatal("int conversion failed")
		}
		if n, _ := v.AsInt(); n != 31 {
			t.Error("unexpected conversion result:", v)
		}
	})

	t.Run("Enum", func(t *testing.T) {
		p := model.NewEnumProperty("diet", "Diet", []string{"omnivore", "vegetarian", "vegan"}, 1)
		if p.EditorName() != "Choice" {
			t.Error("unexpected default editor:", p.EditorName())
		}
		if p.ValueString() != "vegetarian" {
			t.Error("unexpected value string:", p.ValueString())
		}
		if _, ok := p.IntToValue(3); ok {
			t.Error("converts out-of-range index")
		}
		v, ok := p.IntToValue(2)
		if !ok {
			t.Fatal("index conversion failed")
		}
		p.SetValue(v)
		if p.ValueString() != "vegan" {
			t.Error("unexpected value string after commit:", p.ValueString())
		}
	})

	t.Run("Bool", func(t *testing.T) {
		p := model.NewBoolProperty("member", "Member", false)
		if p.EditorName() != "CheckBox" {
			t.Error("unexpected default editor:", p.EditorName())
		}
		if _, ok := p.StringToValue("perhaps"); ok {
			t.Error("converts garbage to bool")
		}
		v, ok := p.StringToValue("true")
		if !ok {
			t.Fatal("bool conversion failed")
		}
		if b, _ := v.AsBool(); !b {
			t.Error("unexpected conversion result:", v)
		}
	})

	t.Run("Date", func(t *testing.T) {
		p := model.NewDateProperty("birthday", "Birthday", time.Date(1990, 4, 12, 0, 0, 0, 0, time.UTC))
		if p.ValueString() != "1990-04-12" {
			t.Error("unexpected value string:", p.ValueString())
		}
		if _, ok := p.StringToValue("12.04.1990"); ok {
			t.Error("converts wrong date format")
		}
	})

	t.Run("Unspecified", func(t *testing.T) {
		p := model.NewStringProperty("name", "Name", "x")
		p.SetValue(model.NullVariant())
		if !p.Value().IsNull() {
			t.Error("property not unspecified after setting null")
		}
		if p.ValueString() != "" {
			t.Error("unspecified value string not empty:", p.ValueString())
		}
	})
}
