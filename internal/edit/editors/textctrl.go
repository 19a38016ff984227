// Package editors implements the built-in property-grid editors.
//
// The built-in editor names are: TextCtrl, Choice, ComboBox, CheckBox,
// TextCtrlAndButton, and ChoiceAndButton. Additional editors are SpinCtrl
// and DatePickerCtrl, registered on demand via RegisterAdditionalEditors.
package editors

import (
	"github.com/Lotendan/wxWidgets/internal/edit"
	"github.com/Lotendan/wxWidgets/internal/model"
	"github.com/Lotendan/wxWidgets/internal/ui"
	"github.com/Lotendan/wxWidgets/internal/win"
)

// TextCtrlEditor edits a property through a single-line text control.
type TextCtrlEditor struct {
	edit.BaseEditor
}

// Name returns "TextCtrl".
func (e *TextCtrlEditor) Name() string { return "TextCtrl" }

// CreateControls instantiates the text control.
func (e *TextCtrlEditor) CreateControls(host edit.Host, property model.Property, pos ui.Point, size ui.Size) edit.WindowList {
	tc := win.NewTextCtrl(win.IDPrimary, property.ValueString())
	if property.Value().IsNull() {
		tc.SetUnspecified()
	}
	tc.Move(pos.X, pos.Y)
	tc.Resize(size.W, size.H)
	host.Route(tc)
	return edit.WindowList{Primary: tc}
}

// UpdateControl loads the property's value into the text control.
func (e *TextCtrlEditor) UpdateControl(property model.Property, ctrl win.Window) {
	tc := ctrl.(*win.TextCtrl)
	if property.Value().IsNull() {
		tc.SetUnspecified()
		return
	}
	tc.SetValue(property.ValueString())
}

// OnEvent forwards key input to the text control and reports a modified
// value when enter was pressed.
func (e *TextCtrlEditor) OnEvent(_ edit.Host, _ model.Property, primary win.Window, event win.Event) bool {
	switch ev := event.(type) {
	case win.KeyEvent:
		primary.HandleKey(ev.Key)
		return false
	case win.CommandEvent:
		return ev.Kind == win.CommandTextEnter
	}
	return false
}

// ValueFromControl converts the text control's contents via the property's
// StringToValue.
func (e *TextCtrlEditor) ValueFromControl(out *model.Variant, property model.Property, ctrl win.Window) bool {
	tc := ctrl.(*win.TextCtrl)
	if tc.IsUnspecified() {
		*out = model.NullVariant()
		return !property.Value().IsNull()
	}
	v, ok := property.StringToValue(tc.Value())
	if !ok {
		return false
	}
	*out = v
	return !v.Equal(property.Value())
}

// SetValueToUnspecified resets the text control to the "no value" state.
func (e *TextCtrlEditor) SetValueToUnspecified(_ model.Property, ctrl win.Window) {
	ctrl.(*win.TextCtrl).SetUnspecified()
}

// SetControlStringValue sets the text control's contents directly.
func (e *TextCtrlEditor) SetControlStringValue(_ model.Property, ctrl win.Window, s string) {
	ctrl.(*win.TextCtrl).SetValue(s)
}

// OnFocus selects the full contents, so typing replaces them.
func (e *TextCtrlEditor) OnFocus(_ model.Property, w win.Window) {
	w.(*win.TextCtrl).SelectAll()
}
