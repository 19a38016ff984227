// Package edit declares the contract between the property grid and its
// in-place cell editors.
//
// An Editor is a shared, stateless strategy for one kind of cell editor. It
// creates the controls embedded in a grid cell when editing begins, keeps
// them in sync with the property's value, and interprets the user interaction
// events the grid routes to it. One Editor instance serves every property
// that uses it; per-session state lives in the controls it creates.
//
// Editors are registered by name (see Registry); a property refers to its
// editor by that name. Registering a custom editor and assigning it to a
// property is the extension point by which new control types plug into the
// grid:
//
//	ed, err := registry.Register(&MyEditor{})
//	if err != nil { ... }
//	property.SetEditorName(ed.Name())
package edit

import (
	"github.com/mattn/go-runewidth"

	"github.com/Lotendan/wxWidgets/internal/model"
	"github.com/Lotendan/wxWidgets/internal/styling"
	"github.com/Lotendan/wxWidgets/internal/ui"
	"github.com/Lotendan/wxWidgets/internal/win"
)

// WindowList is the set of controls an editor creates for one edit session:
// a primary control and an optional secondary (auxiliary) one.
type WindowList struct {
	Primary   win.Window
	Secondary win.Window
}

// SetSecondary attaches the given control as the auxiliary window.
func (l *WindowList) SetSecondary(w win.Window) { l.Secondary = w }

// Host is the surface a property grid offers to its in-place editors.
type Host interface {
	// AutoID returns a fresh, unused control identifier.
	AutoID() win.ControlID

	// Route registers a control with the grid's central event handler so
	// that the control's command events are forwarded to the active
	// editor's OnEvent.
	Route(w win.Window)

	// SecondaryControl returns the auxiliary control of the current edit
	// session, or nil if there is none.
	SecondaryControl() win.Window
}

// Editor is the contract a property-grid cell editor must satisfy.
//
// All methods are synchronous and must only be called on the UI goroutine.
// Pairing an editor with a control it did not create, or with a property of
// an unsupported type, is a caller error with undefined behavior; no method
// reports it. The only boolean results (OnEvent, ValueFromControl) mean "the
// value changed", not success.
//
// Embed BaseEditor to inherit the default behavior of the optional methods
// and override only what differs.
type Editor interface {
	// Name returns the editor's unique registry key.
	Name() string

	// CreateControls instantiates the editor's controls for the given
	// property, parented to the hosting grid, at the given position with the
	// given size.
	//
	// The primary control shall use the identifier win.IDPrimary and a
	// secondary (e.g. button) control shall use win.IDSecondary.
	// Implementations must pass every created control to host.Route so the
	// grid's central event handler can forward its events to OnEvent.
	CreateControls(host Host, property model.Property, pos ui.Point, size ui.Size) WindowList

	// UpdateControl loads the property's committed value into the control's
	// display state.
	UpdateControl(property model.Property, ctrl win.Window)

	// DrawValue renders a static representation of the value, used when the
	// cell is not being edited.
	DrawValue(r ui.ConstrainedRenderer, rect ui.Rect, style styling.DrawStyling, property model.Property, text string)

	// OnEvent handles an event routed from the editor's controls. Returns
	// true if the value in the control was modified, signalling the grid to
	// re-read and commit it.
	OnEvent(host Host, property model.Property, primary win.Window, event win.Event) bool

	// ValueFromControl reads the control's display state, converts it to the
	// property's value type (usually via the property's StringToValue or
	// IntToValue), and writes it to out. Returns true if the value differs
	// from the property's committed value.
	ValueFromControl(out *model.Variant, property model.Property, ctrl win.Window) bool

	// SetValueToUnspecified resets the control to the distinguished "no
	// value" display state.
	SetValueToUnspecified(property model.Property, ctrl win.Window)

	// SetControlStringValue sets the control's value specifically from a
	// string, bypassing the property.
	SetControlStringValue(property model.Property, ctrl win.Window, s string)

	// SetControlIntValue sets the control's value specifically from an
	// integer (applies to choice etc.), bypassing the property.
	SetControlIntValue(property model.Property, ctrl win.Window, value int)

	// InsertItem inserts an item into a list-like control. Index -1 means
	// appending. Returns the index of the item added.
	InsertItem(ctrl win.Window, label string, index int) int

	// DeleteItem deletes an item from a list-like control.
	DeleteItem(ctrl win.Window, index int)

	// OnFocus performs extra processing when the control gains input focus.
	OnFocus(property model.Property, w win.Window)

	// CanContainCustomImage reports whether the editor's primary control can
	// render an inline image glyph itself.
	CanContainCustomImage() bool
}

// BaseEditor provides the default behavior of an Editor's optional methods;
// concrete editors embed it and override only what differs.
//
// ClientData is an opaque slot for embedder-specific data; it is owned by
// whoever sets it and never inspected here.
type BaseEditor struct {
	ClientData any
}

// DrawValue draws the given text, width-aware-truncated to the given
// rectangle.
func (BaseEditor) DrawValue(r ui.ConstrainedRenderer, rect ui.Rect, style styling.DrawStyling, _ model.Property, text string) {
	r.DrawText(rect.X, rect.Y, rect.W, rect.H, style, runewidth.Truncate(text, rect.W, ""))
}

// ValueFromControl reports "unchanged". Editors that do not override this
// effectively never produce a new value.
func (BaseEditor) ValueFromControl(*model.Variant, model.Property, win.Window) bool {
	return false
}

// SetControlStringValue does nothing.
func (BaseEditor) SetControlStringValue(model.Property, win.Window, string) {}

// SetControlIntValue does nothing.
func (BaseEditor) SetControlIntValue(model.Property, win.Window, int) {}

// InsertItem does nothing and returns the invalid index marker -1.
func (BaseEditor) InsertItem(win.Window, string, int) int { return -1 }

// DeleteItem does nothing.
func (BaseEditor) DeleteItem(win.Window, int) {}

// OnFocus does nothing.
func (BaseEditor) OnFocus(model.Property, win.Window) {}

// CanContainCustomImage returns false.
func (BaseEditor) CanContainCustomImage() bool { return false }
