package win

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/Lotendan/wxWidgets/internal/input"
	"github.com/Lotendan/wxWidgets/internal/styling"
	"github.com/Lotendan/wxWidgets/internal/ui"
)

// NoSelection is the selection index of a Choice without a selected item,
// e.g. one displaying the "no value" state.
const NoSelection = -1

// Choice is a dropdown list control.
type Choice struct {
	BaseControl

	items     []string
	selection int
	dropped   bool
}

// NewChoice returns a dropdown over the given items with the given
// identifier. It initially has no selection.
func NewChoice(id ControlID, items []string) *Choice {
	c := &Choice{
		items:     append([]string(nil), items...),
		selection: NoSelection,
	}
	c.SetID(id)
	return c
}

// Selection returns the index of the selected item, or NoSelection.
func (c *Choice) Selection() int { return c.selection }

// SelectedLabel returns the selected item's label, or the empty string.
func (c *Choice) SelectedLabel() string {
	if c.selection < 0 || c.selection >= len(c.items) {
		return ""
	}
	return c.items[c.selection]
}

// SetSelection selects the item at the given index without emitting a
// command. An out-of-range index clears the selection.
func (c *Choice) SetSelection(index int) {
	if index < 0 || index >= len(c.items) {
		c.selection = NoSelection
		return
	}
	c.selection = index
}

// Count returns the number of items.
func (c *Choice) Count() int { return len(c.items) }

// InsertItem inserts the given label at the given index; index -1 means
// appending. Returns the index of the item added.
func (c *Choice) InsertItem(label string, index int) int {
	if index < 0 || index >= len(c.items) {
		c.items = append(c.items, label)
		return len(c.items) - 1
	}
	c.items = append(c.items[:index+1], c.items[index:]...)
	c.items[index] = label
	if c.selection >= index {
		c.selection++
	}
	return index
}

// DeleteItem removes the item at the given index, if it exists.
func (c *Choice) DeleteItem(index int) {
	if index < 0 || index >= len(c.items) {
		return
	}
	c.items = append(c.items[:index], c.items[index+1:]...)
	switch {
	case c.selection == index:
		c.selection = NoSelection
	case c.selection > index:
		c.selection--
	}
}

// selectOffset moves the selection by the given offset, clamped to the item
// range, and emits a selection-changed command when the selection moved.
func (c *Choice) selectOffset(offset int) {
	if len(c.items) == 0 {
		return
	}
	target := c.selection + offset
	if target < 0 {
		target = 0
	}
	if target >= len(c.items) {
		target = len(c.items) - 1
	}
	if target != c.selection {
		c.selection = target
		c.emit(CommandSelectionChanged)
	}
}

// HandleKey attempts to process the provided key input.
func (c *Choice) HandleKey(k input.Key) bool {
	switch {
	case k.Key == tcell.KeyUp:
		c.selectOffset(-1)
	case k.Key == tcell.KeyDown:
		c.selectOffset(+1)
	case k.Key == tcell.KeyEnter:
		c.dropped = !c.dropped
	case k.Key == tcell.KeyRune && k.Ch == ' ':
		c.dropped = !c.dropped
	default:
		return false
	}
	return true
}

// HandleClick selects a clicked item of the dropped-down list, or toggles the
// list when the closed control is clicked.
func (c *Choice) HandleClick(x, y int) bool {
	rect := c.Rect()
	if rect.Contains(x, y) {
		c.dropped = !c.dropped
		return true
	}
	if c.dropped {
		listRect := ui.Rect{X: rect.X, Y: rect.Y + 1, W: rect.W, H: len(c.items)}
		if listRect.Contains(x, y) {
			index := y - listRect.Y
			c.dropped = false
			if index != c.selection {
				c.selection = index
				c.emit(CommandSelectionChanged)
			}
			return true
		}
	}
	return false
}

// Draw renders the control and, when dropped down, its item list below it.
func (c *Choice) Draw(r ui.ConstrainedRenderer, sty *styling.Stylesheet, focussed bool) {
	rect := c.Rect()

	style := sty.Editor
	if !focussed {
		style = style.DefaultDimmed()
	}
	r.DrawBox(rect.X, rect.Y, rect.W, rect.H, style)

	if c.selection == NoSelection {
		r.DrawText(rect.X, rect.Y, rect.W-2, rect.H, sty.EditorUnspecified, "<unspecified>")
	} else {
		r.DrawText(rect.X, rect.Y, rect.W-2, rect.H, style, runewidth.Truncate(c.SelectedLabel(), rect.W-2, ""))
	}
	r.DrawText(rect.X+rect.W-1, rect.Y, 1, 1, style, "v")

	if c.dropped {
		for i, item := range c.items {
			itemStyle := sty.List
			if i == c.selection {
				itemStyle = sty.ListSelected
			}
			r.DrawBox(rect.X, rect.Y+1+i, rect.W, 1, itemStyle)
			r.DrawText(rect.X, rect.Y+1+i, rect.W, 1, itemStyle, runewidth.Truncate(item, rect.W, ""))
		}
	}
}
