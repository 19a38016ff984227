package editors

import (
	"github.com/Lotendan/wxWidgets/internal/edit"
	"github.com/Lotendan/wxWidgets/internal/model"
	"github.com/Lotendan/wxWidgets/internal/ui"
	"github.com/Lotendan/wxWidgets/internal/win"
)

// ChoiceEditor edits a property through a dropdown of the property's
// choices, storing the selection index.
type ChoiceEditor struct {
	edit.BaseEditor
}

func (e *ChoiceEditor) Name() string { return "Choice" }

func (e *ChoiceEditor) CreateControls(host edit.Host, property model.Property, pos ui.Point, size ui.Size) edit.WindowList {
	c := win.NewChoice(win.IDPrimary, property.Choices())
	if sel, ok := property.Value().AsInt(); ok {
		c.SetSelection(sel)
	}
	c.Move(pos.X, pos.Y)
	c.Resize(size.W, size.H)
	host.Route(c)
	return edit.WindowList{Primary: c}
}

func (e *ChoiceEditor) UpdateControl(property model.Property, ctrl win.Window) {
	c := ctrl.(*win.Choice)
	if sel, ok := property.Value().AsInt(); ok {
		c.SetSelection(sel)
	} else {
		c.SetSelection(win.NoSelection)
	}
}

func (e *ChoiceEditor) OnEvent(_ edit.Host, _ model.Property, primary win.Window, event win.Event) bool {
	switch ev := event.(type) {
	case win.KeyEvent:
		primary.HandleKey(ev.Key)
		return false
	case win.CommandEvent:
		return ev.Kind == win.CommandSelectionChanged
	}
	return false
}

func (e *ChoiceEditor) ValueFromControl(out *model.Variant, property model.Property, ctrl win.Window) bool {
	c := ctrl.(*win.Choice)
	if c.Selection() == win.NoSelection {
		*out = model.NullVariant()
		return !property.Value().IsNull()
	}
	v, ok := property.IntToValue(c.Selection())
	if !ok {
		return false
	}
	*out = v
	return !v.Equal(property.Value())
}

func (e *ChoiceEditor) SetValueToUnspecified(_ model.Property, ctrl win.Window) {
	ctrl.(*win.Choice).SetSelection(win.NoSelection)
}

func (e *ChoiceEditor) SetControlIntValue(_ model.Property, ctrl win.Window, i int) {
	ctrl.(*win.Choice).SetSelection(i)
}

// InsertItem adds a label to the dropdown, appending when index is out of
// range. It returns the index the label ended up at.
func (e *ChoiceEditor) InsertItem(ctrl win.Window, label string, index int) int {
	return ctrl.(*win.Choice).InsertItem(label, index)
}

// DeleteItem removes the label at the given index from the dropdown.
func (e *ChoiceEditor) DeleteItem(ctrl win.Window, index int) {
	ctrl.(*win.Choice).DeleteItem(index)
}

// CanContainCustomImage reports true; the dropdown rows leave room for a
// leading glyph.
func (e *ChoiceEditor) CanContainCustomImage() bool { return true }
