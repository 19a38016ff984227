package editors

import (
	"github.com/Lotendan/wxWidgets/internal/edit"
	"github.com/Lotendan/wxWidgets/internal/model"
	"github.com/Lotendan/wxWidgets/internal/ui"
	"github.com/Lotendan/wxWidgets/internal/win"
)

// ComboBoxEditor edits a property through a text control with an attached
// dropdown of the property's choices. Unlike ChoiceEditor the value is the
// text, not the selection index.
type ComboBoxEditor struct {
	edit.BaseEditor
}

func (e *ComboBoxEditor) Name() string { return "ComboBox" }

func (e *ComboBoxEditor) CreateControls(host edit.Host, property model.Property, pos ui.Point, size ui.Size) edit.WindowList {
	c := win.NewComboCtrl(win.IDPrimary, property.ValueString(), property.Choices())
	if property.Value().IsNull() {
		c.SetUnspecified()
	}
	c.Move(pos.X, pos.Y)
	c.Resize(size.W, size.H)
	host.Route(c)
	return edit.WindowList{Primary: c}
}

func (e *ComboBoxEditor) UpdateControl(property model.Property, ctrl win.Window) {
	c := ctrl.(*win.ComboCtrl)
	if property.Value().IsNull() {
		c.SetUnspecified()
		return
	}
	c.SetValue(property.ValueString())
}

func (e *ComboBoxEditor) OnEvent(_ edit.Host, _ model.Property, primary win.Window, event win.Event) bool {
	switch ev := event.(type) {
	case win.KeyEvent:
		primary.HandleKey(ev.Key)
		return false
	case win.CommandEvent:
		return ev.Kind == win.CommandTextEnter || ev.Kind == win.CommandSelectionChanged
	}
	return false
}

func (e *ComboBoxEditor) ValueFromControl(out *model.Variant, property model.Property, ctrl win.Window) bool {
	c := ctrl.(*win.ComboCtrl)
	if c.IsUnspecified() {
		*out = model.NullVariant()
		return !property.Value().IsNull()
	}
	v, ok := property.StringToValue(c.Value())
	if !ok {
		return false
	}
	*out = v
	return !v.Equal(property.Value())
}

func (e *ComboBoxEditor) SetValueToUnspecified(_ model.Property, ctrl win.Window) {
	ctrl.(*win.ComboCtrl).SetUnspecified()
}

func (e *ComboBoxEditor) SetControlStringValue(_ model.Property, ctrl win.Window, s string) {
	ctrl.(*win.ComboCtrl).SetValue(s)
}

func (e *ComboBoxEditor) InsertItem(ctrl win.Window, label string, index int) int {
	return ctrl.(*win.ComboCtrl).InsertItem(label, index)
}

func (e *ComboBoxEditor) DeleteItem(ctrl win.Window, index int) {
	ctrl.(*win.ComboCtrl).DeleteItem(index)
}

func (e *ComboBoxEditor) OnFocus(_ model.Property, w win.Window) {
	w.(*win.ComboCtrl).SelectAll()
}
