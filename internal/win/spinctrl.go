package win

import (
	"strconv"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/Lotendan/wxWidgets/internal/input"
	"github.com/Lotendan/wxWidgets/internal/styling"
	"github.com/Lotendan/wxWidgets/internal/ui"
)

// SpinCtrl is an integer control with step-up/step-down keys.
type SpinCtrl struct {
	BaseControl

	value       int
	step        int
	unspecified bool
}

// NewSpinCtrl returns a spinner with the given identifier, value, and step.
func NewSpinCtrl(id ControlID, value, step int) *SpinCtrl {
	s := &SpinCtrl{value: value, step: step}
	s.SetID(id)
	return s
}

// Value returns the current value.
func (s *SpinCtrl) Value() int { return s.value }

// SetValue sets the value without emitting a command.
func (s *SpinCtrl) SetValue(value int) {
	s.value = value
	s.unspecified = false
}

// SetUnspecified puts the control into the distinguished "no value" display
// state. Any subsequent edit leaves it with value 0.
func (s *SpinCtrl) SetUnspecified() {
	s.value = 0
	s.unspecified = true
}

// IsUnspecified reports whether the control displays the "no value" state.
func (s *SpinCtrl) IsUnspecified() bool { return s.unspecified }

// Spin offsets the value by the given number of steps and emits a spun
// command.
func (s *SpinCtrl) Spin(steps int) {
	s.value += steps * s.step
	s.unspecified = false
	s.emit(CommandValueSpun)
}

// HandleKey attempts to process the provided key input.
// Digits append to the value, up/down spin it.
func (s *SpinCtrl) HandleKey(k input.Key) bool {
	switch {
	case k.Key == tcell.KeyUp:
		s.Spin(+1)
	case k.Key == tcell.KeyDown:
		s.Spin(-1)
	case k.Key == tcell.KeyRune && k.Ch >= '0' && k.Ch <= '9':
		if s.unspecified {
			s.value = 0
			s.unspecified = false
		}
		d := int(k.Ch - '0')
		if s.value < 0 {
			s.value = s.value*10 - d
		} else {
			s.value = s.value*10 + d
		}
		s.emit(CommandTextUpdated)
	case k.Key == tcell.KeyRune && k.Ch == '-':
		s.value = -s.value
		s.unspecified = false
		s.emit(CommandTextUpdated)
	case k.Key == tcell.KeyBackspace || k.Key == tcell.KeyBackspace2:
		s.value /= 10
		s.unspecified = false
		s.emit(CommandTextUpdated)
	case k.Key == tcell.KeyEnter:
		s.emit(CommandTextEnter)
	default:
		return false
	}
	return true
}

// HandleClick spins up or down when the stepper glyphs at the control's right
// edge are clicked.
func (s *SpinCtrl) HandleClick(x, y int) bool {
	rect := s.Rect()
	if !rect.Contains(x, y) {
		return false
	}
	switch x {
	case rect.X + rect.W - 2:
		s.Spin(+1)
	case rect.X + rect.W - 1:
		s.Spin(-1)
	}
	return true
}

// Draw renders the spinner with its stepper glyphs.
func (s *SpinCtrl) Draw(r ui.ConstrainedRenderer, sty *styling.Stylesheet, focussed bool) {
	rect := s.Rect()

	style := sty.Editor
	if !focussed {
		style = style.DefaultDimmed()
	}
	r.DrawBox(rect.X, rect.Y, rect.W, rect.H, style)

	if s.unspecified {
		r.DrawText(rect.X, rect.Y, rect.W-2, rect.H, sty.EditorUnspecified, "<unspecified>")
	} else {
		r.DrawText(rect.X, rect.Y, rect.W-2, rect.H, style, runewidth.Truncate(strconv.Itoa(s.value), rect.W-2, ""))
	}
	r.DrawText(rect.X+rect.W-2, rect.Y, 1, 1, sty.Button, "+")
	r.DrawText(rect.X+rect.W-1, rect.Y, 1, 1, sty.Button, "-")
}
