package styling

import (
	"testing"

	"github.com/lucasb-eyer/go-colorful"
)

func TestLighten(t *testing.T) {
	{
		testcase := "0% -> no change"

		input := colorful.Color{
			R: float64(0x12) / 255.0,
			G: float64(0x34) / 255.0,
			B: float64(0x56) / 255.0,
		}

		expected := input
		result := lightenColorfulColor(input, 0)

		if !result.AlmostEqualRgb(expected) {
			t.Fatalf("colors testcase '%s' failed: %s instead of %s", testcase, result.Hex(), expected.Hex())
		}
	}
	{
		testcase := "100% -> white"

		input := colorful.Color{
			R: float64(0x12) / 255.0,
			G: float64(0x34) / 255.0,
			B: float64(0x56) / 255.0,
		}

		expected := colorful.Color{R: 1.0, G: 1.0, B: 1.0}
		result := lightenColorfulColor(input, 100)

		if !result.AlmostEqualRgb(expected) {
			t.Fatalf("colors testcase '%s' failed: %s instead of %s", testcase, result.Hex(), expected.Hex())
		}
	}
}

func TestDarken(t *testing.T) {
	{
		testcase := "100% -> black"

		input := colorful.Color{
			R: float64(0x12) / 255.0,
			G: float64(0x34) / 255.0,
			B: float64(0x56) / 255.0,
		}

		expected := colorful.Color{R: 0.0, G: 0.0, B: 0.0}
		result := darkenColorfulColor(input, 100)

		if !result.AlmostEqualRgb(expected) {
			t.Fatalf("colors testcase '%s' failed: %s instead of %s", testcase, result.Hex(), expected.Hex())
		}
	}
}

func TestInvert(t *testing.T) {
	s := StyleFromHex("#112233", "#445566")
	inverted, ok := s.Invert().(*FallbackStyling)
	if !ok {
		t.Fatal("inverted styling is not a fallback styling")
	}
	if !inverted.fg.AlmostEqualRgb(s.bg) || !inverted.bg.AlmostEqualRgb(s.fg) {
		t.Error("colors not swapped:", inverted.ToString())
	}
	// the original is unchanged
	if !s.fg.AlmostEqualRgb(colorfulColorFromHexString("#112233")) {
		t.Error("invert mutated the original:", s.ToString())
	}
}

func TestStyleModifiersCopy(t *testing.T) {
	s := StyleFromHex("#112233", "#445566")
	bolded := s.Bolded().(*FallbackStyling)
	italicized := s.Italicized().(*FallbackStyling)
	if !bolded.bold || bolded.italic {
		t.Error("bolded styling wrong:", bolded.ToString())
	}
	if !italicized.italic || italicized.bold {
		t.Error("italicized styling wrong:", italicized.ToString())
	}
	if s.bold || s.italic {
		t.Error("modifier mutated the original:", s.ToString())
	}
}
