package edit_test

import (
	"testing"

	"github.com/Lotendan/wxWidgets/internal/edit"
	"github.com/Lotendan/wxWidgets/internal/model"
	"github.com/Lotendan/wxWidgets/internal/ui"
	"github.com/Lotendan/wxWidgets/internal/win"
)

// fakeHost is a minimal grid stand-in for editor tests.
type fakeHost struct {
	next      win.ControlID
	routed    []win.Window
	secondary win.Window
}

func newFakeHost() *fakeHost { return &fakeHost{next: 100} }

func (h *fakeHost) AutoID() win.ControlID {
	id := h.next
	h.next++
	return id
}
func (h *fakeHost) Route(w win.Window)           { h.routed = append(h.routed, w) }
func (h *fakeHost) SecondaryControl() win.Window { return h.secondary }

func TestMultiButton(t *testing.T) {

	t.Run("PrimarySizeShrinksWithButtons", func(t *testing.T) {
		host := newFakeHost()
		m := edit.NewMultiButton(host, ui.Size{W: 40, H: 1})
		if size := m.PrimarySize(); size.W != 40 {
			t.Error("empty strip already narrows the primary control:", size)
		}
		m.Add("...", win.IDSecondary)
		// "..." plus one cell of padding per side
		if m.ButtonsWidth() != 5 {
			t.Error("unexpected buttons width:", m.ButtonsWidth())
		}
		if size := m.PrimarySize(); size.W != 35 || size.H != 1 {
			t.Error("unexpected primary size:", size)
		}
		m.AddGlyph('+', win.IDAuto)
		if size := m.PrimarySize(); size.W != 32 {
			t.Error("unexpected primary size after second button:", size)
		}
	})

	t.Run("IdentifierAssignment", func(t *testing.T) {
		host := newFakeHost()
		m := edit.NewMultiButton(host, ui.Size{W: 40, H: 1})
		m.Add("...", win.IDSecondary)
		m.AddGlyph('+', win.IDAuto)
		m.AddGlyph('-', win.IDAuto)
		if m.Count() != 3 {
			t.Fatal("unexpected button count:", m.Count())
		}
		if m.ButtonID(0) != win.IDSecondary {
			t.Error("explicit identifier not kept:", m.ButtonID(0))
		}
		if m.ButtonID(1) == win.IDAuto || m.ButtonID(2) == win.IDAuto {
			t.Error("auto identifiers not resolved")
		}
		if m.ButtonID(1) == m.ButtonID(2) {
			t.Error("auto identifiers not unique")
		}
	})

	t.Run("RoutesButtons", func(t *testing.T) {
		host := newFakeHost()
		m := edit.NewMultiButton(host, ui.Size{W: 40, H: 1})
		m.Add("...", win.IDSecondary)
		m.AddGlyph('+', win.IDAuto)
		if len(host.routed) != 2 {
			t.Error("buttons not routed to the host:", len(host.routed))
		}
	})

	t.Run("FinalizePosition", func(t *testing.T) {
		host := newFakeHost()
		m := edit.NewMultiButton(host, ui.Size{W: 40, H: 1})
		m.Add("...", win.IDSecondary)
		m.AddGlyph('+', win.IDAuto)
		m.FinalizePosition(ui.Point{X: 10, Y: 3})

		// the strip ends flush with the full editor region's right edge
		rect := m.Rect()
		if rect.X+rect.W != 10+40 {
			t.Error("strip not right-aligned:", rect)
		}
		if rect.X != 10+m.PrimarySize().W {
			t.Error("strip overlaps the primary control region:", rect)
		}

		// buttons laid out left to right without gaps
		first, second := m.Button(0).Rect(), m.Button(1).Rect()
		if first.X != rect.X || first.Y != 3 {
			t.Error("first button misplaced:", first)
		}
		if second.X != first.X+first.W {
			t.Error("second button misplaced:", second)
		}
	})

	t.Run("ClickDispatch", func(t *testing.T) {
		host := newFakeHost()
		m := edit.NewMultiButton(host, ui.Size{W: 40, H: 1})
		m.Add("...", win.IDSecondary)
		m.AddGlyph('+', win.IDAuto)
		m.FinalizePosition(ui.Point{X: 0, Y: 0})

		var clicked []win.CommandEvent
		for _, w := range host.routed {
			w.Notify(func(e win.CommandEvent) { clicked = append(clicked, e) })
		}

		target := m.Button(1).Rect()
		if !m.HandleClick(target.X, target.Y) {
			t.Fatal("click on second button did not apply")
		}
		if len(clicked) != 1 || clicked[0].ID != m.ButtonID(1) || clicked[0].Kind != win.CommandButtonClicked {
			t.Error("unexpected click events:", clicked)
		}
		if m.HandleClick(100, 100) {
			t.Error("click outside the strip applied")
		}
	})
}

func TestRegistry(t *testing.T) {

	t.Run("RegisterAndLookup", func(t *testing.T) {
		r := edit.NewRegistry()
		ed, err := r.Register(&namedEditor{name: "Custom"})
		if err != nil {
			t.Fatal("registration failed:", err)
		}
		if r.ByName("Custom") != ed {
			t.Error("lookup does not yield the registered editor")
		}
		if r.ByName("Unknown") != nil {
			t.Error("lookup of unknown name yields an editor")
		}
	})

	t.Run("RejectsDuplicateName", func(t *testing.T) {
		r := edit.NewRegistry()
		if _, err := r.Register(&namedEditor{name: "Custom"}); err != nil {
			t.Fatal("registration failed:", err)
		}
		if _, err := r.Register(&namedEditor{name: "Custom"}); err == nil {
			t.Error("duplicate name not rejected")
		}
	})

	t.Run("Names", func(t *testing.T) {
		r := edit.NewRegistry()
		r.Register(&namedEditor{name: "A"})
		r.Register(&namedEditor{name: "B"})
		names := r.Names()
		if len(names) != 2 {
			t.Error("unexpected name count:", names)
		}
	})

	t.Run("GlobalLifecycle", func(t *testing.T) {
		defer edit.ShutdownGlobalRegistry()
		edit.InitGlobalRegistry()
		if edit.GlobalRegistry() == nil {
			t.Error("no registry after initialization")
		}
		edit.ShutdownGlobalRegistry()
		defer func() {
			if recover() == nil {
				t.Error("no panic on use after shutdown")
			}
		}()
		edit.GlobalRegistry()
	})
}

func TestBaseEditorDefaults(t *testing.T) {
	var base edit.BaseEditor
	p := model.NewStringProperty("p", "P", "x")
	tc := win.NewTextCtrl(win.IDPrimary, "y")

	var out model.Variant
	if base.ValueFromControl(&out, p, tc) {
		t.Error("default ValueFromControl claims a modified value")
	}
	if base.InsertItem(tc, "item", 0) != -1 {
		t.Error("default InsertItem claims insertion")
	}
	if base.CanContainCustomImage() {
		t.Error("default editor claims custom image support")
	}
	// default no-ops must leave the control alone
	base.SetControlStringValue(p, tc, "z")
	base.SetControlIntValue(p, tc, 3)
	base.DeleteItem(tc, 0)
	base.OnFocus(p, tc)
	if tc.Value() != "y" {
		t.Error("default no-op mutated the control:", tc.Value())
	}
}

// namedEditor is an Editor stub distinguishable by name.
type namedEditor struct {
	edit.BaseEditor
	name string
}

func (e *namedEditor) Name() string { return e.name }

func (e *namedEditor) CreateControls(host edit.Host, property model.Property, pos ui.Point, size ui.Size) edit.WindowList {
	tc := win.NewTextCtrl(win.IDPrimary, property.ValueString())
	host.Route(tc)
	return edit.WindowList{Primary: tc}
}

func (e *namedEditor) UpdateControl(property model.Property, ctrl win.Window) {}

func (e *namedEditor) OnEvent(host edit.Host, property model.Property, primary win.Window, event win.Event) bool {
	return false
}

func (e *namedEditor) SetValueToUnspecified(property model.Property, ctrl win.Window) {}
