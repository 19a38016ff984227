package win

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/Lotendan/wxWidgets/internal/input"
	"github.com/Lotendan/wxWidgets/internal/styling"
	"github.com/Lotendan/wxWidgets/internal/ui"
)

type dateField int

const (
	yearField dateField = iota
	monthField
	dayField
)

// DatePickerCtrl is a calendar date control with per-field adjustment: left
// and right move between year, month, and day, up and down step the active
// field.
type DatePickerCtrl struct {
	BaseControl

	date        time.Time
	active      dateField
	unspecified bool
	format      string
}

// NewDatePickerCtrl returns a date picker with the given identifier and date.
func NewDatePickerCtrl(id ControlID, date time.Time, format string) *DatePickerCtrl {
	p := &DatePickerCtrl{date: date, active: dayField, format: format}
	p.SetID(id)
	return p
}

// Value returns the current date.
func (p *DatePickerCtrl) Value() time.Time { return p.date }

// SetValue sets the date without emitting a command.
func (p *DatePickerCtrl) SetValue(date time.Time) {
	p.date = date
	p.unspecified = false
}

// SetUnspecified puts the control into the distinguished "no value" display
// state.
func (p *DatePickerCtrl) SetUnspecified() { p.unspecified = true }

// IsUnspecified reports whether the control displays the "no value" state.
func (p *DatePickerCtrl) IsUnspecified() bool { return p.unspecified }

// step offsets the active field by the given amount and emits a spun command.
func (p *DatePickerCtrl) step(offset int) {
	if p.unspecified {
		p.unspecified = false
		p.emit(CommandValueSpun)
		return
	}
	switch p.active {
	case yearField:
		p.date = p.date.AddDate(offset, 0, 0)
	case monthField:
		p.date = p.date.AddDate(0, offset, 0)
	case dayField:
		p.date = p.date.AddDate(0, 0, offset)
	}
	p.emit(CommandValueSpun)
}

// HandleKey attempts to process the provided key input.
func (p *DatePickerCtrl) HandleKey(k input.Key) bool {
	switch k.Key {
	case tcell.KeyLeft:
		if p.active > yearField {
			p.active--
		}
	case tcell.KeyRight:
		if p.active < dayField {
			p.active++
		}
	case tcell.KeyUp:
		p.step(+1)
	case tcell.KeyDown:
		p.step(-1)
	case tcell.KeyEnter:
		p.emit(CommandTextEnter)
	default:
		return false
	}
	return true
}

// HandleClick activates the date field under the click.
func (p *DatePickerCtrl) HandleClick(x, y int) bool {
	rect := p.Rect()
	if !rect.Contains(x, y) {
		return false
	}
	// layout is "YYYY-MM-DD"
	switch offset := x - rect.X; {
	case offset < 4:
		p.active = yearField
	case offset < 7:
		p.active = monthField
	default:
		p.active = dayField
	}
	return true
}

// Draw renders the date with the active field emphasized.
func (p *DatePickerCtrl) Draw(r ui.ConstrainedRenderer, sty *styling.Stylesheet, focussed bool) {
	rect := p.Rect()

	style := sty.Editor
	if !focussed {
		style = style.DefaultDimmed()
	}
	r.DrawBox(rect.X, rect.Y, rect.W, rect.H, style)

	if p.unspecified {
		r.DrawText(rect.X, rect.Y, rect.W, rect.H, sty.EditorUnspecified, "<unspecified>")
		return
	}

	text := p.date.Format(p.format)
	r.DrawText(rect.X, rect.Y, rect.W, rect.H, style, text)

	if focussed {
		var fieldX, fieldW int
		switch p.active {
		case yearField:
			fieldX, fieldW = 0, 4
		case monthField:
			fieldX, fieldW = 5, 2
		case dayField:
			fieldX, fieldW = 8, 2
		}
		if fieldX+fieldW <= len(text) {
			r.DrawText(rect.X+fieldX, rect.Y, fieldW, 1, style.Invert(), text[fieldX:fieldX+fieldW])
		}
	}
}
