package win

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/Lotendan/wxWidgets/internal/input"
	"github.com/Lotendan/wxWidgets/internal/styling"
	"github.com/Lotendan/wxWidgets/internal/ui"
)

// ComboCtrl combines free text entry with a dropdown list of suggested
// values.
type ComboCtrl struct {
	TextCtrl

	items     []string
	dropped   bool
	highlight int
}

// NewComboCtrl returns a combo control with the given identifier, contents,
// and dropdown items.
func NewComboCtrl(id ControlID, content string, items []string) *ComboCtrl {
	c := &ComboCtrl{
		TextCtrl:  *NewTextCtrl(id, content),
		items:     append([]string(nil), items...),
		highlight: 0,
	}
	c.SetID(id)
	return c
}

// Items returns the dropdown items.
func (c *ComboCtrl) Items() []string { return c.items }

// InsertItem inserts the given label at the given index; index -1 means
// appending. Returns the index of the item added.
func (c *ComboCtrl) InsertItem(label string, index int) int {
	if index < 0 || index >= len(c.items) {
		c.items = append(c.items, label)
		return len(c.items) - 1
	}
	c.items = append(c.items[:index+1], c.items[index:]...)
	c.items[index] = label
	return index
}

// DeleteItem removes the item at the given index, if it exists.
func (c *ComboCtrl) DeleteItem(index int) {
	if index < 0 || index >= len(c.items) {
		return
	}
	c.items = append(c.items[:index], c.items[index+1:]...)
	if c.highlight >= len(c.items) && c.highlight > 0 {
		c.highlight--
	}
}

// HandleKey attempts to process the provided key input.
// Down opens the dropdown; while open, up/down move the highlight and enter
// takes the highlighted item over into the text.
func (c *ComboCtrl) HandleKey(k input.Key) bool {
	if c.dropped {
		switch k.Key {
		case tcell.KeyUp:
			if c.highlight > 0 {
				c.highlight--
			}
			return true
		case tcell.KeyDown:
			if c.highlight < len(c.items)-1 {
				c.highlight++
			}
			return true
		case tcell.KeyEnter:
			c.dropped = false
			if c.highlight >= 0 && c.highlight < len(c.items) {
				c.SetValue(c.items[c.highlight])
				c.emit(CommandSelectionChanged)
			}
			return true
		case tcell.KeyESC:
			c.dropped = false
			return true
		}
		return c.TextCtrl.HandleKey(k)
	}

	if k.Key == tcell.KeyDown && len(c.items) > 0 {
		c.dropped = true
		return true
	}
	return c.TextCtrl.HandleKey(k)
}

// HandleClick selects a clicked dropdown item, or defers to the text control.
func (c *ComboCtrl) HandleClick(x, y int) bool {
	if c.dropped {
		rect := c.Rect()
		listRect := ui.Rect{X: rect.X, Y: rect.Y + 1, W: rect.W, H: len(c.items)}
		if listRect.Contains(x, y) {
			c.dropped = false
			c.SetValue(c.items[y-listRect.Y])
			c.emit(CommandSelectionChanged)
			return true
		}
	}
	return c.TextCtrl.HandleClick(x, y)
}

// Draw renders the text control and, when dropped down, the item list below
// it.
func (c *ComboCtrl) Draw(r ui.ConstrainedRenderer, sty *styling.Stylesheet, focussed bool) {
	c.TextCtrl.Draw(r, sty, focussed)

	rect := c.Rect()
	arrowStyle := sty.Editor
	if !focussed {
		arrowStyle = arrowStyle.DefaultDimmed()
	}
	r.DrawText(rect.X+rect.W-1, rect.Y, 1, 1, arrowStyle, "v")

	if c.dropped {
		for i, item := range c.items {
			itemStyle := sty.List
			if i == c.highlight {
				itemStyle = sty.ListSelected
			}
			r.DrawBox(rect.X, rect.Y+1+i, rect.W, 1, itemStyle)
			r.DrawText(rect.X, rect.Y+1+i, rect.W, 1, itemStyle, runewidth.Truncate(item, rect.W, ""))
		}
	}
}
