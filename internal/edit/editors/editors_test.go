package editors_test

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/Lotendan/wxWidgets/internal/edit"
	"github.com/Lotendan/wxWidgets/internal/edit/editors"
	"github.com/Lotendan/wxWidgets/internal/input"
	"github.com/Lotendan/wxWidgets/internal/model"
	"github.com/Lotendan/wxWidgets/internal/ui"
	"github.com/Lotendan/wxWidgets/internal/win"
)

// fakeHost is a minimal grid stand-in that queues routed controls' command
// events, like the grid's central handler does.
type fakeHost struct {
	next      win.ControlID
	routed    []win.Window
	secondary win.Window
	queue     []win.CommandEvent
}

func newFakeHost() *fakeHost { return &fakeHost{next: 100} }

func (h *fakeHost) AutoID() win.ControlID {
	id := h.next
	h.next++
	return id
}

func (h *fakeHost) Route(w win.Window) {
	w.Notify(func(e win.CommandEvent) { h.queue = append(h.queue, e) })
	h.routed = append(h.routed, w)
}

func (h *fakeHost) SecondaryControl() win.Window { return h.secondary }

// typeKey runs a key through the editor the way the grid does: wrap it as a
// key event, then feed resulting command events back in. Returns whether any
// event reported a modified value.
func typeKey(h *fakeHost, ed edit.Editor, p model.Property, primary win.Window, k input.Key) bool {
	modified := ed.OnEvent(h, p, primary, win.KeyEvent{ID: win.IDPrimary, Key: k})
	for len(h.queue) > 0 {
		e := h.queue[0]
		h.queue = h.queue[1:]
		if ed.OnEvent(h, p, primary, e) {
			modified = true
		}
	}
	return modified
}

func enter() input.Key      { return input.Key{Key: tcell.KeyEnter} }
func runeKey(r rune) input.Key { return input.Key{Key: tcell.KeyRune, Ch: r} }

func TestTextCtrlEditor(t *testing.T) {
	ed := &editors.TextCtrlEditor{}

	t.Run("Lifecycle", func(t *testing.T) {
		host := newFakeHost()
		p := model.NewStringProperty("name", "Name", "old")
		wnds := ed.CreateControls(host, p, ui.Point{X: 5, Y: 2}, ui.Size{W: 20, H: 1})

		tc, ok := wnds.Primary.(*win.TextCtrl)
		if !ok {
			t.Fatal("primary control is not a text control")
		}
		if tc.ID() != win.IDPrimary {
			t.Error("primary control has wrong identifier:", tc.ID())
		}
		if rect := tc.Rect(); rect.X != 5 || rect.Y != 2 || rect.W != 20 {
			t.Error("primary control misplaced:", rect)
		}
		if len(host.routed) != 1 {
			t.Error("control not routed to the host")
		}
		if tc.Value() != "old" {
			t.Error("control not initialized from the property:", tc.Value())
		}

		ed.OnFocus(p, tc)
		if typeKey(host, ed, p, tc, runeKey('n')) {
			t.Error("plain typing already claims a modified value")
		}
		if tc.Value() != "n" {
			t.Error("focus did not select-all; typing did not replace:", tc.Value())
		}
		typeKey(host, ed, p, tc, runeKey('e'))
		typeKey(host, ed, p, tc, runeKey('w'))

		if !typeKey(host, ed, p, tc, enter()) {
			t.Error("enter does not claim a modified value")
		}
		var v model.Variant
		if !ed.ValueFromControl(&v, p, tc) {
			t.Error("value from control not flagged as modified")
		}
		if s, _ := v.AsString(); s != "new" {
			t.Error("unexpected value from control:", v)
		}
	})

	t.Run("UnmodifiedValueNotFlagged", func(t *testing.T) {
		host := newFakeHost()
		p := model.NewStringProperty("name", "Name", "same")
		wnds := ed.CreateControls(host, p, ui.Point{}, ui.Size{W: 20, H: 1})
		var v model.Variant
		if ed.ValueFromControl(&v, p, wnds.Primary) {
			t.Error("unchanged control claims a modified value")
		}
	})

	t.Run("Unspecified", func(t *testing.T) {
		host := newFakeHost()
		p := model.NewStringProperty("name", "Name", "x")
		wnds := ed.CreateControls(host, p, ui.Point{}, ui.Size{W: 20, H: 1})
		ed.SetValueToUnspecified(p, wnds.Primary)
		var v model.Variant
		if !ed.ValueFromControl(&v, p, wnds.Primary) {
			t.Error("unspecified control not flagged against a set property")
		}
		if !v.IsNull() {
			t.Error("unspecified control yields a non-null value:", v)
		}
	})

	t.Run("SetControlStringValue", func(t *testing.T) {
		host := newFakeHost()
		p := model.NewStringProperty("name", "Name", "x")
		wnds := ed.CreateControls(host, p, ui.Point{}, ui.Size{W: 20, H: 1})
		ed.SetControlStringValue(p, wnds.Primary, "direct")
		if wnds.Primary.(*win.TextCtrl).Value() != "direct" {
			t.Error("direct string set did not reach the control")
		}
	})
}

func TestChoiceEditor(t *testing.T) {
	ed := &editors.ChoiceEditor{}

	t.Run("Lifecycle", func(t *testing.T) {
		host := newFakeHost()
		p := model.NewEnumProperty("diet", "Diet", []string{"omnivore", "vegetarian", "vegan"}, 0)
		wnds := ed.CreateControls(host, p, ui.Point{}, ui.Size{W: 20, H: 1})

		c, ok := wnds.Primary.(*win.Choice)
		if !ok {
			t.Fatal("primary control is not a choice control")
		}
		if c.Selection() != 0 {
			t.Error("control not initialized from the property:", c.Selection())
		}

		if !typeKey(host, ed, p, c, input.Key{Key: tcell.KeyDown}) {
			t.Error("selection change does not claim a modified value")
		}
		var v model.Variant
		if !ed.ValueFromControl(&v, p, c) {
			t.Error("changed selection not flagged as modified")
		}
		if n, _ := v.AsInt(); n != 1 {
			t.Error("unexpected value from control:", v)
		}
	})

	t.Run("ItemManagement", func(t *testing.T) {
		host := newFakeHost()
		p := model.NewEnumProperty("diet", "Diet", []string{"a", "b"}, 0)
		wnds := ed.CreateControls(host, p, ui.Point{}, ui.Size{W: 20, H: 1})
		if idx := ed.InsertItem(wnds.Primary, "c", -1); idx != 2 {
			t.Error("unexpected append index:", idx)
		}
		ed.DeleteItem(wnds.Primary, 0)
		if wnds.Primary.(*win.Choice).Count() != 2 {
			t.Error("unexpected count after item management")
		}
	})

	t.Run("SetControlIntValue", func(t *testing.T) {
		host := newFakeHost()
		p := model.NewEnumProperty("diet", "Diet", []string{"a", "b"}, 0)
		wnds := ed.CreateControls(host, p, ui.Point{}, ui.Size{W: 20, H: 1})
		ed.SetControlIntValue(p, wnds.Primary, 1)
		if wnds.Primary.(*win.Choice).Selection() != 1 {
			t.Error("direct int set did not reach the control")
		}
	})

	t.Run("CanContainCustomImage", func(t *testing.T) {
		if !ed.CanContainCustomImage() {
			t.Error("choice editor denies custom image support")
		}
	})
}

func TestCheckBoxEditor(t *testing.T) {
	ed := &editors.CheckBoxEditor{}

	host := newFakeHost()
	p := model.NewBoolProperty("member", "Member", false)
	wnds := ed.CreateControls(host, p, ui.Point{}, ui.Size{W: 20, H: 1})

	cb, ok := wnds.Primary.(*win.CheckBox)
	if !ok {
		t.Fatal("primary control is not a checkbox")
	}
	if cb.State() != win.Unchecked {
		t.Error("control not initialized from the property")
	}

	if !typeKey(host, ed, p, cb, runeKey(' ')) {
		t.Error("toggle does not claim a modified value")
	}
	var v model.Variant
	if !ed.ValueFromControl(&v, p, cb) {
		t.Error("toggled control not flagged as modified")
	}
	if b, _ := v.AsBool(); !b {
		t.Error("unexpected value from control:", v)
	}

	ed.SetValueToUnspecified(p, cb)
	if cb.State() != win.Unspecified {
		t.Error("control not unspecified after reset")
	}
}

func TestComboBoxEditor(t *testing.T) {
	ed := &editors.ComboBoxEditor{}

	host := newFakeHost()
	p := model.NewEnumProperty("diet", "Diet", []string{"omnivore", "vegan"}, 0)
	wnds := ed.CreateControls(host, p, ui.Point{}, ui.Size{W: 20, H: 1})

	c, ok := wnds.Primary.(*win.ComboCtrl)
	if !ok {
		t.Fatal("primary control is not a combo control")
	}
	if c.Value() != "omnivore" {
		t.Error("control not initialized from the property:", c.Value())
	}

	// picking from the dropdown claims a modified value
	typeKey(host, ed, p, c, input.Key{Key: tcell.KeyDown})
	typeKey(host, ed, p, c, input.Key{Key: tcell.KeyDown})
	if !typeKey(host, ed, p, c, enter()) {
		t.Error("dropdown pick does not claim a modified value")
	}
	var v model.Variant
	if !ed.ValueFromControl(&v, p, c) {
		t.Error("changed control not flagged as modified")
	}
	if n, _ := v.AsInt(); n != 1 {
		t.Error("unexpected value from control:", v)
	}
}

func TestSpinCtrlEditor(t *testing.T) {
	ed := &editors.SpinCtrlEditor{}

	host := newFakeHost()
	p := model.NewIntProperty("age", "Age", 30)
	wnds := ed.CreateControls(host, p, ui.Point{}, ui.Size{W: 10, H: 1})

	s, ok := wnds.Primary.(*win.SpinCtrl)
	if !ok {
		t.Fatal("primary control is not a spin control")
	}
	if s.Value() != 30 {
		t.Error("control not initialized from the property:", s.Value())
	}

	if !typeKey(host, ed, p, s, input.Key{Key: tcell.KeyUp}) {
		t.Error("spinning does not claim a modified value")
	}
	var v model.Variant
	if !ed.ValueFromControl(&v, p, s) {
		t.Error("spun control not flagged as modified")
	}
	if n, _ := v.AsInt(); n != 31 {
		t.Error("unexpected value from control:", v)
	}
}

func TestDatePickerCtrlEditor(t *testing.T) {
	ed := &editors.DatePickerCtrlEditor{}

	host := newFakeHost()
	p := model.NewDateProperty("birthday", "Birthday", time.Date(1990, 4, 12, 0, 0, 0, 0, time.UTC))
	wnds := ed.CreateControls(host, p, ui.Point{}, ui.Size{W: 12, H: 1})

	picker, ok := wnds.Primary.(*win.DatePickerCtrl)
	if !ok {
		t.Fatal("primary control is not a date picker")
	}
	if !picker.Value().Equal(time.Date(1990, 4, 12, 0, 0, 0, 0, time.UTC)) {
		t.Error("control not initialized from the property:", picker.Value())
	}

	// the rightmost field is active initially; up steps the day
	if !typeKey(host, ed, p, picker, input.Key{Key: tcell.KeyUp}) {
		t.Error("stepping does not claim a modified value")
	}
	var v model.Variant
	if !ed.ValueFromControl(&v, p, picker) {
		t.Error("stepped control not flagged as modified")
	}
	date, _ := v.AsDate()
	if date.Day() != 13 {
		t.Error("unexpected value from control:", v)
	}
}

func TestTextCtrlAndButtonEditor(t *testing.T) {
	buttonPressed := false
	ed := &editors.TextCtrlAndButtonEditor{
		OnButton: func(p model.Property, primary win.Window) bool {
			buttonPressed = true
			primary.(*win.TextCtrl).SetValue("from-button")
			return true
		},
	}

	host := newFakeHost()
	p := model.NewStringProperty("file", "File", "/tmp/x")
	wnds := ed.CreateControls(host, p, ui.Point{X: 0, Y: 0}, ui.Size{W: 30, H: 1})
	host.secondary = wnds.Secondary

	buttons, ok := wnds.Secondary.(*edit.MultiButton)
	if !ok {
		t.Fatal("secondary control is not a button strip")
	}
	if buttons.Count() != 1 {
		t.Fatal("unexpected button count:", buttons.Count())
	}
	if primaryRect := wnds.Primary.Rect(); primaryRect.W != 30-buttons.ButtonsWidth() {
		t.Error("primary control not narrowed for the buttons:", primaryRect)
	}

	buttons.Button(0).Click()
	modified := false
	for len(host.queue) > 0 {
		e := host.queue[0]
		host.queue = host.queue[1:]
		if ed.OnEvent(host, p, wnds.Primary, e) {
			modified = true
		}
	}
	if !buttonPressed {
		t.Error("button callback not invoked")
	}
	if !modified {
		t.Error("button callback's modification not reported")
	}
	var v model.Variant
	if !ed.ValueFromControl(&v, p, wnds.Primary) {
		t.Error("modified control not flagged")
	}
	if s, _ := v.AsString(); s != "from-button" {
		t.Error("unexpected value from control:", v)
	}
}

func TestChoiceAndButtonEditor(t *testing.T) {
	ed := &editors.ChoiceAndButtonEditor{}

	host := newFakeHost()
	p := model.NewEnumProperty("diet", "Diet", []string{"a", "b"}, 0)
	wnds := ed.CreateControls(host, p, ui.Point{}, ui.Size{W: 30, H: 1})
	host.secondary = wnds.Secondary

	if _, ok := wnds.Primary.(*win.Choice); !ok {
		t.Fatal("primary control is not a choice control")
	}
	buttons, ok := wnds.Secondary.(*edit.MultiButton)
	if !ok {
		t.Fatal("secondary control is not a button strip")
	}

	// without a callback, a button click applies but modifies nothing
	buttons.Button(0).Click()
	for len(host.queue) > 0 {
		e := host.queue[0]
		host.queue = host.queue[1:]
		if ed.OnEvent(host, p, wnds.Primary, e) {
			t.Error("button click without callback claims a modified value")
		}
	}
}

func TestRegisterDefaults(t *testing.T) {
	r := edit.NewRegistry()
	editors.RegisterDefaults(r)

	for _, name := range []string{"TextCtrl", "Choice", "ComboBox", "CheckBox", "TextCtrlAndButton", "ChoiceAndButton"} {
		ed := r.ByName(name)
		if ed == nil {
			t.Error("builtin editor not registered:", name)
			continue
		}
		if ed.Name() != name {
			t.Error("editor registered under foreign name:", name, ed.Name())
		}
	}

	editors.RegisterAdditional(r)
	for _, name := range []string{"SpinCtrl", "DatePickerCtrl"} {
		if r.ByName(name) == nil {
			t.Error("additional editor not registered:", name)
		}
	}
}
