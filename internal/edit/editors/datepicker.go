package editors

import (
	"time"

	"github.com/Lotendan/wxWidgets/internal/edit"
	"github.com/Lotendan/wxWidgets/internal/model"
	"github.com/Lotendan/wxWidgets/internal/ui"
	"github.com/Lotendan/wxWidgets/internal/win"
)

// DatePickerCtrlEditor edits a date property through a field-wise date
// picker.
type DatePickerCtrlEditor struct {
	edit.BaseEditor
}

func (e *DatePickerCtrlEditor) Name() string { return "DatePickerCtrl" }

func (e *DatePickerCtrlEditor) CreateControls(host edit.Host, property model.Property, pos ui.Point, size ui.Size) edit.WindowList {
	date, ok := property.Value().AsDate()
	if !ok {
		date = time.Now()
	}
	p := win.NewDatePickerCtrl(win.IDPrimary, date, model.DateFormat)
	if !ok {
		p.SetUnspecified()
	}
	p.Move(pos.X, pos.Y)
	p.Resize(size.W, size.H)
	host.Route(p)
	return edit.WindowList{Primary: p}
}

func (e *DatePickerCtrlEditor) UpdateControl(property model.Property, ctrl win.Window) {
	p := ctrl.(*win.DatePickerCtrl)
	if date, ok := property.Value().AsDate(); ok {
		p.SetValue(date)
	} else {
		p.SetUnspecified()
	}
}

func (e *DatePickerCtrlEditor) OnEvent(_ edit.Host, _ model.Property, primary win.Window, event win.Event) bool {
	switch ev := event.(type) {
	case win.KeyEvent:
		primary.HandleKey(ev.Key)
		return false
	case win.CommandEvent:
		return ev.Kind == win.CommandValueSpun
	}
	return false
}

func (e *DatePickerCtrlEditor) ValueFromControl(out *model.Variant, property model.Property, ctrl win.Window) bool {
	p := ctrl.(*win.DatePickerCtrl)
	if p.IsUnspecified() {
		*out = model.NullVariant()
		return !property.Value().IsNull()
	}
	*out = model.DateVariant(p.Value())
	return !out.Equal(property.Value())
}

func (e *DatePickerCtrlEditor) SetValueToUnspecified(_ model.Property, ctrl win.Window) {
	ctrl.(*win.DatePickerCtrl).SetUnspecified()
}

func (e *DatePickerCtrlEditor) SetControlStringValue(_ model.Property, ctrl win.Window, s string) {
	date, err := time.Parse(model.DateFormat, s)
	if err != nil {
		return
	}
	ctrl.(*win.DatePickerCtrl).SetValue(date)
}
