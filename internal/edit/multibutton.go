package edit

import (
	"github.com/Lotendan/wxWidgets/internal/input"
	"github.com/Lotendan/wxWidgets/internal/styling"
	"github.com/Lotendan/wxWidgets/internal/ui"
	"github.com/Lotendan/wxWidgets/internal/win"
)

// MultiButton hosts multiple auxiliary buttons beside a primary editor
// control.
//
// An editor that needs more than one action button creates a MultiButton in
// its CreateControls, adds its buttons, creates the primary control with the
// size reported by PrimarySize, finalizes the strip's position, and returns
// the strip as the window list's secondary control:
//
//	buttons := edit.NewMultiButton(host, size)
//	buttons.Add("...", win.IDAuto)
//	buttons.AddGlyph('+', win.IDAuto)
//	// create the primary control with buttons.PrimarySize()
//	buttons.FinalizePosition(pos)
//	wnds.SetSecondary(buttons)
//
// In OnEvent, ButtonID identifies which button a click command came from.
type MultiButton struct {
	win.BaseControl

	host Host

	buttons      []*win.Button
	fullSize     ui.Size
	buttonsWidth int
}

// NewMultiButton returns an empty button strip reserving the given size as
// the full editor-region footprint.
func NewMultiButton(host Host, size ui.Size) *MultiButton {
	m := &MultiButton{
		host:     host,
		fullSize: size,
	}
	m.SetID(win.IDSecondary)
	m.SetRect(ui.Rect{W: 0, H: size.H})
	return m
}

// Add appends a text-labeled button. Pass win.IDAuto as the id to have the
// grid assign an identifier.
func (m *MultiButton) Add(label string, id win.ControlID) {
	m.attach(win.NewButton(label, m.resolveID(id)))
}

// AddGlyph appends a glyph-labeled button. Pass win.IDAuto as the id to have
// the grid assign an identifier.
func (m *MultiButton) AddGlyph(glyph rune, id win.ControlID) {
	m.attach(win.NewGlyphButton(glyph, m.resolveID(id)))
}

func (m *MultiButton) resolveID(id win.ControlID) win.ControlID {
	if id == win.IDAuto {
		return m.host.AutoID()
	}
	return id
}

func (m *MultiButton) attach(b *win.Button) {
	b.Resize(b.Rect().W, m.fullSize.H)
	m.host.Route(b)
	m.buttons = append(m.buttons, b)
	m.buttonsWidth += b.Rect().W
	m.Resize(m.buttonsWidth, m.fullSize.H)
}

// Button returns the button at the given index.
// The index is not bounds-checked; an out-of-range index is a caller error.
func (m *MultiButton) Button(i int) *win.Button { return m.buttons[i] }

// ButtonID returns the identifier of the button at the given index, for use
// in event handlers.
func (m *MultiButton) ButtonID(i int) win.ControlID { return m.Button(i).ID() }

// Count returns the number of buttons.
func (m *MultiButton) Count() int { return len(m.buttons) }

// ButtonsWidth returns the total width consumed by the added buttons.
func (m *MultiButton) ButtonsWidth() int { return m.buttonsWidth }

// PrimarySize returns the footprint remaining for the primary control beside
// the buttons.
func (m *MultiButton) PrimarySize() ui.Size {
	return ui.Size{W: m.fullSize.W - m.buttonsWidth, H: m.fullSize.H}
}

// FinalizePosition moves the strip to the right edge of the full editor
// region anchored at the given origin, and lays its buttons out left to
// right. Call this once, after the primary control has been created and
// sized using PrimarySize, to avoid overlap.
func (m *MultiButton) FinalizePosition(pos ui.Point) {
	m.Move(pos.X+m.fullSize.W-m.buttonsWidth, pos.Y)

	x := m.Rect().X
	for _, b := range m.buttons {
		b.Move(x, pos.Y)
		x += b.Rect().W
	}
}

// Draw renders all buttons of the strip.
func (m *MultiButton) Draw(r ui.ConstrainedRenderer, sty *styling.Stylesheet, focussed bool) {
	for _, b := range m.buttons {
		b.Draw(r, sty, focussed)
	}
}

// HandleKey does not apply; key input goes to the primary control.
func (m *MultiButton) HandleKey(input.Key) bool { return false }

// HandleClick forwards the click to the button under it, if any.
func (m *MultiButton) HandleClick(x, y int) bool {
	for _, b := range m.buttons {
		if b.HandleClick(x, y) {
			return true
		}
	}
	return false
}
