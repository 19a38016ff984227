package editors

import (
	"github.com/Lotendan/wxWidgets/internal/edit"
	"github.com/Lotendan/wxWidgets/internal/model"
	"github.com/Lotendan/wxWidgets/internal/styling"
	"github.com/Lotendan/wxWidgets/internal/ui"
	"github.com/Lotendan/wxWidgets/internal/win"
)

// CheckBoxEditor edits a boolean property with a three-state checkbox
// (checked, unchecked, unspecified).
type CheckBoxEditor struct {
	edit.BaseEditor
}

func (e *CheckBoxEditor) Name() string { return "CheckBox" }

func (e *CheckBoxEditor) CreateControls(host edit.Host, property model.Property, pos ui.Point, size ui.Size) edit.WindowList {
	cb := win.NewCheckBox(win.IDPrimary, checkStateFor(property))
	cb.Move(pos.X, pos.Y)
	cb.Resize(size.W, size.H)
	host.Route(cb)
	return edit.WindowList{Primary: cb}
}

func (e *CheckBoxEditor) UpdateControl(property model.Property, ctrl win.Window) {
	ctrl.(*win.CheckBox).SetState(checkStateFor(property))
}

// DrawValue renders the checkbox glyph in place of the value text, so the
// unselected row looks like the editor.
func (e *CheckBoxEditor) DrawValue(r ui.ConstrainedRenderer, rect ui.Rect, style styling.DrawStyling, property model.Property, _ string) {
	glyph := "[-]"
	if b, ok := property.Value().AsBool(); ok {
		if b {
			glyph = "[x]"
		} else {
			glyph = "[ ]"
		}
	}
	r.DrawText(rect.X, rect.Y, rect.W, rect.H, style, glyph)
}

func (e *CheckBoxEditor) OnEvent(_ edit.Host, _ model.Property, primary win.Window, event win.Event) bool {
	switch ev := event.(type) {
	case win.KeyEvent:
		primary.HandleKey(ev.Key)
		return false
	case win.CommandEvent:
		return ev.Kind == win.CommandCheckToggled
	}
	return false
}

func (e *CheckBoxEditor) ValueFromControl(out *model.Variant, property model.Property, ctrl win.Window) bool {
	cb := ctrl.(*win.CheckBox)
	switch cb.State() {
	case win.Unspecified:
		*out = model.NullVariant()
	case win.Checked:
		*out = model.BoolVariant(true)
	default:
		*out = model.BoolVariant(false)
	}
	return !out.Equal(property.Value())
}

func (e *CheckBoxEditor) SetValueToUnspecified(_ model.Property, ctrl win.Window) {
	ctrl.(*win.CheckBox).SetState(win.Unspecified)
}

func (e *CheckBoxEditor) SetControlIntValue(_ model.Property, ctrl win.Window, i int) {
	if i != 0 {
		ctrl.(*win.CheckBox).SetState(win.Checked)
	} else {
		ctrl.(*win.CheckBox).SetState(win.Unchecked)
	}
}

func checkStateFor(property model.Property) win.CheckState {
	b, ok := property.Value().AsBool()
	switch {
	case !ok:
		return win.Unspecified
	case b:
		return win.Checked
	default:
		return win.Unchecked
	}
}
