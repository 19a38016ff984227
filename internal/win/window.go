// Package win implements the small retained-mode controls that the property
// grid embeds as in-place editors (text fields, buttons, dropdowns, and the
// like), along with the event types routed between them, the grid, and the
// grid's editors.
package win

import (
	"github.com/Lotendan/wxWidgets/internal/input"
	"github.com/Lotendan/wxWidgets/internal/styling"
	"github.com/Lotendan/wxWidgets/internal/ui"
)

// ControlID identifies a control within one grid.
type ControlID int

const (
	// IDNone is the unassigned identifier.
	IDNone ControlID = 0

	// IDPrimary is the reserved identifier slot of an in-place editor's
	// primary control.
	IDPrimary ControlID = 1

	// IDSecondary is the reserved identifier slot of an in-place editor's
	// secondary (auxiliary) control.
	IDSecondary ControlID = 2

	// IDAuto requests an auto-assigned identifier from the grid.
	IDAuto ControlID = -2
)

// CommandKind enumerates the kinds of command events controls emit.
type CommandKind int

const (
	_ CommandKind = iota
	// CommandButtonClicked signals that a button was activated.
	CommandButtonClicked
	// CommandTextUpdated signals that a text control's contents changed.
	CommandTextUpdated
	// CommandTextEnter signals that enter was pressed in a text control.
	CommandTextEnter
	// CommandSelectionChanged signals that a list control's selection changed.
	CommandSelectionChanged
	// CommandCheckToggled signals that a checkbox's state was toggled.
	CommandCheckToggled
	// CommandValueSpun signals that a spinner's or picker's value was stepped.
	CommandValueSpun
)

// ToString returns the name of this command kind, primarily for debugging and
// logging purposes.
func (k CommandKind) ToString() string {
	switch k {
	case CommandButtonClicked:
		return "CommandButtonClicked"
	case CommandTextUpdated:
		return "CommandTextUpdated"
	case CommandTextEnter:
		return "CommandTextEnter"
	case CommandSelectionChanged:
		return "CommandSelectionChanged"
	case CommandCheckToggled:
		return "CommandCheckToggled"
	case CommandValueSpun:
		return "CommandValueSpun"
	}
	return "[UNKNOWN]"
}

// Event is a user-interface event routed to an in-place editor.
type Event interface {
	// EventID returns the identifier of the control the event concerns.
	EventID() ControlID
}

// CommandEvent is a control-level notification, e.g. a button click or a text
// change. It carries the source control's identifier so an editor handling it
// can distinguish, e.g., which of several buttons fired.
type CommandEvent struct {
	ID   ControlID
	Kind CommandKind
}

// EventID returns the identifier of the control that emitted the command.
func (e CommandEvent) EventID() ControlID { return e.ID }

// KeyEvent is terminal key input targeted at a control.
type KeyEvent struct {
	ID  ControlID
	Key input.Key
}

// EventID returns the identifier of the targeted control.
func (e KeyEvent) EventID() ControlID { return e.ID }

// Window is a control embeddable in a grid cell.
type Window interface {
	ID() ControlID
	SetID(id ControlID)

	Rect() ui.Rect
	Move(x, y int)
	Resize(w, h int)

	// Draw renders the control. focussed indicates whether the control
	// currently has input focus.
	Draw(r ui.ConstrainedRenderer, sty *styling.Stylesheet, focussed bool)

	// HandleKey attempts to process the provided key input.
	// Returns whether the input "applied", i.E. the control changed state
	// based on it.
	HandleKey(k input.Key) bool

	// HandleClick attempts to process a mouse click at the given screen
	// position. Returns whether the click applied.
	HandleClick(x, y int) bool

	// Notify sets the sink to which the control emits its command events.
	Notify(sink func(CommandEvent))
}

// CursorProvider is implemented by controls that want a terminal text cursor
// placed while they are focussed.
type CursorProvider interface {
	CursorLocation() ui.CursorLocation
}

// BaseControl is the base data necessary for a control and provides a base
// implementation using them.
type BaseControl struct {
	id     ControlID
	rect   ui.Rect
	notify func(CommandEvent)
}

// ID returns the control's identifier.
func (c *BaseControl) ID() ControlID { return c.id }

// SetID assigns the control's identifier.
func (c *BaseControl) SetID(id ControlID) { c.id = id }

// Rect returns the control's position and dimensions.
func (c *BaseControl) Rect() ui.Rect { return c.rect }

// Move repositions the control's top-left corner.
func (c *BaseControl) Move(x, y int) { c.rect.X, c.rect.Y = x, y }

// Resize sets the control's dimensions.
func (c *BaseControl) Resize(w, h int) { c.rect.W, c.rect.H = w, h }

// Notify sets the sink to which the control emits its command events.
func (c *BaseControl) Notify(sink func(CommandEvent)) { c.notify = sink }

// SetRect sets position and dimensions in one call.
func (c *BaseControl) SetRect(r ui.Rect) { c.rect = r }

func (c *BaseControl) emit(kind CommandKind) {
	if c.notify != nil {
		c.notify(CommandEvent{ID: c.id, Kind: kind})
	}
}
