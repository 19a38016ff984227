package win

import (
	"github.com/gdamore/tcell/v2"

	"github.com/Lotendan/wxWidgets/internal/input"
	"github.com/Lotendan/wxWidgets/internal/styling"
	"github.com/Lotendan/wxWidgets/internal/ui"
)

// CheckState is the display state of a CheckBox.
type CheckState int

const (
	// Unchecked is the unchecked state.
	Unchecked CheckState = iota
	// Checked is the checked state.
	Checked
	// Unspecified is the distinguished "no value" state.
	Unspecified
)

// CheckBox is a toggleable check control with a third, "unspecified" state.
type CheckBox struct {
	BaseControl

	state CheckState
}

// NewCheckBox returns a checkbox with the given identifier in the given
// state.
func NewCheckBox(id ControlID, state CheckState) *CheckBox {
	c := &CheckBox{state: state}
	c.SetID(id)
	return c
}

// State returns the current display state.
func (c *CheckBox) State() CheckState { return c.state }

// SetState sets the display state without emitting a command.
func (c *CheckBox) SetState(state CheckState) { c.state = state }

// Toggle flips between checked and unchecked (an unspecified checkbox toggles
// to checked) and emits a toggle command.
func (c *CheckBox) Toggle() {
	if c.state == Checked {
		c.state = Unchecked
	} else {
		c.state = Checked
	}
	c.emit(CommandCheckToggled)
}

// HandleKey toggles the checkbox on enter or space.
func (c *CheckBox) HandleKey(k input.Key) bool {
	if k.Key == tcell.KeyEnter || (k.Key == tcell.KeyRune && k.Ch == ' ') {
		c.Toggle()
		return true
	}
	return false
}

// HandleClick toggles the checkbox if the click lies within it.
func (c *CheckBox) HandleClick(x, y int) bool {
	if !c.Rect().Contains(x, y) {
		return false
	}
	c.Toggle()
	return true
}

// Draw renders the checkbox.
func (c *CheckBox) Draw(r ui.ConstrainedRenderer, sty *styling.Stylesheet, focussed bool) {
	rect := c.Rect()

	style := sty.Editor
	if !focussed {
		style = style.DefaultDimmed()
	}
	r.DrawBox(rect.X, rect.Y, rect.W, rect.H, style)

	var repr string
	switch c.state {
	case Checked:
		repr = "[x]"
	case Unchecked:
		repr = "[ ]"
	case Unspecified:
		repr = "[-]"
	}
	r.DrawText(rect.X, rect.Y, rect.W, rect.H, style, repr)
}
