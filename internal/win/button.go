package win

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/Lotendan/wxWidgets/internal/input"
	"github.com/Lotendan/wxWidgets/internal/styling"
	"github.com/Lotendan/wxWidgets/internal/ui"
)

// Button is a push button with a text or glyph label.
type Button struct {
	BaseControl

	label string
}

// NewButton returns a text-labeled button with the given identifier.
// Its natural width is the label's display width plus one cell of padding per
// side.
func NewButton(label string, id ControlID) *Button {
	b := &Button{label: label}
	b.SetID(id)
	b.SetRect(ui.Rect{W: runewidth.StringWidth(label) + 2, H: 1})
	return b
}

// NewGlyphButton returns a button labeled with a single glyph (the terminal
// equivalent of an image label).
func NewGlyphButton(glyph rune, id ControlID) *Button {
	b := &Button{label: string(glyph)}
	b.SetID(id)
	b.SetRect(ui.Rect{W: runewidth.RuneWidth(glyph) + 2, H: 1})
	return b
}

// Label returns the button's label.
func (b *Button) Label() string { return b.label }

// Click activates the button.
func (b *Button) Click() { b.emit(CommandButtonClicked) }

// HandleKey activates the button on enter or space.
func (b *Button) HandleKey(k input.Key) bool {
	if k.Key == tcell.KeyEnter || (k.Key == tcell.KeyRune && k.Ch == ' ') {
		b.Click()
		return true
	}
	return false
}

// HandleClick activates the button if the click lies within it.
func (b *Button) HandleClick(x, y int) bool {
	if !b.Rect().Contains(x, y) {
		return false
	}
	b.Click()
	return true
}

// Draw renders the button.
func (b *Button) Draw(r ui.ConstrainedRenderer, sty *styling.Stylesheet, focussed bool) {
	rect := b.Rect()

	style := sty.Button
	if focussed {
		style = style.DefaultEmphasized()
	}
	r.DrawBox(rect.X, rect.Y, rect.W, rect.H, style)
	r.DrawText(rect.X+1, rect.Y, rect.W-2, rect.H, style, runewidth.Truncate(b.label, rect.W-2, ""))
}
