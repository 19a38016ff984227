package editors

import (
	"github.com/Lotendan/wxWidgets/internal/edit"
	"github.com/Lotendan/wxWidgets/internal/model"
	"github.com/Lotendan/wxWidgets/internal/ui"
	"github.com/Lotendan/wxWidgets/internal/win"
)

// SpinCtrlEditor edits an integer property through a spin control.
type SpinCtrlEditor struct {
	edit.BaseEditor

	// Step is the spin increment; zero means 1.
	Step int
}

func (e *SpinCtrlEditor) Name() string { return "SpinCtrl" }

func (e *SpinCtrlEditor) CreateControls(host edit.Host, property model.Property, pos ui.Point, size ui.Size) edit.WindowList {
	step := e.Step
	if step == 0 {
		step = 1
	}
	n, ok := property.Value().AsInt()
	s := win.NewSpinCtrl(win.IDPrimary, n, step)
	if !ok {
		s.SetUnspecified()
	}
	s.Move(pos.X, pos.Y)
	s.Resize(size.W, size.H)
	host.Route(s)
	return edit.WindowList{Primary: s}
}

func (e *SpinCtrlEditor) UpdateControl(property model.Property, ctrl win.Window) {
	s := ctrl.(*win.SpinCtrl)
	if n, ok := property.Value().AsInt(); ok {
		s.SetValue(n)
	} else {
		s.SetUnspecified()
	}
}

func (e *SpinCtrlEditor) OnEvent(_ edit.Host, _ model.Property, primary win.Window, event win.Event) bool {
	switch ev := event.(type) {
	case win.KeyEvent:
		primary.HandleKey(ev.Key)
		return false
	case win.CommandEvent:
		return ev.Kind == win.CommandValueSpun || ev.Kind == win.CommandTextEnter
	}
	return false
}

func (e *SpinCtrlEditor) ValueFromControl(out *model.Variant, property model.Property, ctrl win.Window) bool {
	s := ctrl.(*win.SpinCtrl)
	if s.IsUnspecified() {
		*out = model.NullVariant()
		return !property.Value().IsNull()
	}
	v, ok := property.IntToValue(s.Value())
	if !ok {
		return false
	}
	*out = v
	return !v.Equal(property.Value())
}

func (e *SpinCtrlEditor) SetValueToUnspecified(_ model.Property, ctrl win.Window) {
	ctrl.(*win.SpinCtrl).SetUnspecified()
}

func (e *SpinCtrlEditor) SetControlIntValue(_ model.Property, ctrl win.Window, i int) {
	ctrl.(*win.SpinCtrl).SetValue(i)
}
