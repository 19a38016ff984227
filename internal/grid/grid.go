// Package grid implements the property-grid pane, which hosts the in-place
// editors.
package grid

import (
	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
	"github.com/mattn/go-runewidth"
	"github.com/rs/zerolog/log"

	"github.com/Lotendan/wxWidgets/internal/edit"
	"github.com/Lotendan/wxWidgets/internal/input"
	"github.com/Lotendan/wxWidgets/internal/model"
	"github.com/Lotendan/wxWidgets/internal/styling"
	"github.com/Lotendan/wxWidgets/internal/ui"
	"github.com/Lotendan/wxWidgets/internal/win"
)

// autoIDBase is the first identifier handed out by AutoID; identifiers below
// it are reserved for well-known controls.
const autoIDBase win.ControlID = 100

// session is the state of one in-place edit, from the editor's control
// creation until commit or cancel.
type session struct {
	id       string
	property model.Property
	editor   edit.Editor
	windows  edit.WindowList
	queue    []win.CommandEvent
}

// PropertyGrid is a pane displaying a sheet of properties as label-value
// rows, one of which may be edited in place by its property's editor.
type PropertyGrid struct {
	ui.LeafPane

	registry   *edit.Registry
	properties []model.Property
	selection  int

	labelWidth int

	wrangler *ui.CursorWrangler

	active *session
	nextID win.ControlID

	// OnChange, if set, is called after a property's value was committed.
	OnChange func(property model.Property)
}

// New constructs a property grid for the given properties.
func New(
	renderer ui.ConstrainedRenderer,
	dims func() (x, y, w, h int),
	stylesheet styling.Stylesheet,
	wrangler *ui.CursorWrangler,
	registry *edit.Registry,
	properties []model.Property,
) *PropertyGrid {
	labelWidth := 0
	for _, p := range properties {
		if w := runewidth.StringWidth(p.Label()); w > labelWidth {
			labelWidth = w
		}
	}
	return &PropertyGrid{
		LeafPane: ui.LeafPane{
			Renderer:   renderer,
			Dims:       dims,
			Stylesheet: stylesheet,
		},
		registry:   registry,
		properties: properties,
		labelWidth: labelWidth + 2,
		wrangler:   wrangler,
		nextID:     autoIDBase,
	}
}

// AutoID returns a fresh control identifier.
func (g *PropertyGrid) AutoID() win.ControlID {
	id := g.nextID
	g.nextID++
	return id
}

// Route registers a control's command events with the grid, to be forwarded
// to the active editor.
func (g *PropertyGrid) Route(w win.Window) {
	w.Notify(func(e win.CommandEvent) {
		if g.active == nil {
			log.Warn().Int("id", int(e.EventID())).Str("kind", e.Kind.ToString()).
				Msg("dropping command event without active edit session")
			return
		}
		g.active.queue = append(g.active.queue, e)
	})
}

// SecondaryControl returns the active session's auxiliary control, or nil.
func (g *PropertyGrid) SecondaryControl() win.Window {
	if g.active == nil {
		return nil
	}
	return g.active.windows.Secondary
}

// Properties returns the displayed properties.
func (g *PropertyGrid) Properties() []model.Property { return g.properties }

// Selected returns the currently selected property.
func (g *PropertyGrid) Selected() model.Property { return g.properties[g.selection] }

// Editing indicates whether an edit session is active.
func (g *PropertyGrid) Editing() bool { return g.active != nil }

// SelectNext moves the selection down, ending any active edit session
// without committing.
func (g *PropertyGrid) SelectNext() {
	g.CancelEdit()
	if g.selection < len(g.properties)-1 {
		g.selection++
	}
}

// SelectPrev moves the selection up, ending any active edit session without
// committing.
func (g *PropertyGrid) SelectPrev() {
	g.CancelEdit()
	if g.selection > 0 {
		g.selection--
	}
}

// BeginEdit starts an edit session on the selected property with the editor
// the property names.
func (g *PropertyGrid) BeginEdit() {
	if g.active != nil {
		return
	}

	property := g.Selected()
	if property.ReadOnly() {
		return
	}

	editor := g.registry.ByName(property.EditorName())
	if editor == nil {
		log.Error().Str("editor", property.EditorName()).Str("property", property.Name()).
			Msg("property names unregistered editor")
		return
	}

	g.active = &session{
		id:       uuid.NewString(),
		property: property,
		editor:   editor,
	}
	rect := g.cellRect(g.selection)
	g.active.windows = editor.CreateControls(g, property, ui.Point{X: rect.X, Y: rect.Y}, ui.Size{W: rect.W, H: rect.H})
	editor.UpdateControl(property, g.active.windows.Primary)
	editor.OnFocus(property, g.active.windows.Primary)
	g.drainQueue()
}

// CancelEdit ends the active edit session discarding the control's value.
func (g *PropertyGrid) CancelEdit() {
	if g.active == nil {
		return
	}
	g.teardown()
}

// CommitEdit reads the control's value and, if modified, commits it to the
// property, then ends the session.
func (g *PropertyGrid) CommitEdit() {
	if g.active == nil {
		return
	}
	g.commitValue()
	g.teardown()
}

// SetUnspecified sets the selected property's value to "no value". An active
// edit session resets its control; otherwise the property is set directly.
func (g *PropertyGrid) SetUnspecified() {
	if g.active != nil {
		g.active.editor.SetValueToUnspecified(g.active.property, g.active.windows.Primary)
		return
	}
	property := g.Selected()
	if property.ReadOnly() {
		return
	}
	property.SetValue(model.NullVariant())
	if g.OnChange != nil {
		g.OnChange(property)
	}
}

// HandleKey routes key input into the active edit session. Returns whether
// the input applied; without an active session it never does.
func (g *PropertyGrid) HandleKey(k input.Key) bool {
	if g.active == nil {
		return false
	}
	if k.Key == tcell.KeyEscape {
		g.CancelEdit()
		return true
	}
	g.dispatch(win.KeyEvent{ID: win.IDPrimary, Key: k})
	return true
}

// HandleClick routes a mouse click into the active edit session's controls.
// Clicks outside an active session select the row under the cursor, a second
// click on the selected row begins editing it.
func (g *PropertyGrid) HandleClick(x, y int) bool {
	if g.active != nil {
		applied := false
		if g.active.windows.Secondary != nil && g.active.windows.Secondary.HandleClick(x, y) {
			applied = true
		} else if g.active.windows.Primary.HandleClick(x, y) {
			applied = true
		}
		if applied {
			g.drainQueue()
			return true
		}
		g.CancelEdit()
	}

	for i := range g.properties {
		if g.rowRect(i).Contains(x, y) {
			if i == g.selection {
				g.BeginEdit()
			} else {
				g.selection = i
			}
			return true
		}
	}
	return false
}

// dispatch forwards an event to the active editor, drains any command events
// the controls emitted in response, and commits when the editor reports a
// modified value.
func (g *PropertyGrid) dispatch(e win.Event) {
	s := g.active
	modified := s.editor.OnEvent(g, s.property, s.windows.Primary, e)
	enter := false
	if ce, ok := e.(win.CommandEvent); ok && ce.Kind == win.CommandTextEnter {
		enter = true
	}

	for len(s.queue) > 0 {
		queued := s.queue[0]
		s.queue = s.queue[1:]
		if queued.Kind == win.CommandTextEnter {
			enter = true
		}
		if s.editor.OnEvent(g, s.property, s.windows.Primary, queued) {
			modified = true
		}
		if g.active != s {
			return
		}
	}

	if modified {
		g.commitValue()
	}
	if enter {
		g.teardown()
	}
}

func (g *PropertyGrid) drainQueue() {
	if g.active == nil || len(g.active.queue) == 0 {
		return
	}
	s := g.active
	pending := s.queue
	s.queue = nil
	for _, e := range pending {
		g.dispatch(e)
		if g.active != s {
			return
		}
	}
}

func (g *PropertyGrid) commitValue() {
	s := g.active
	var v model.Variant
	if !s.editor.ValueFromControl(&v, s.property, s.windows.Primary) {
		return
	}
	s.property.SetValue(v)
	log.Debug().Str("property", s.property.Name()).Str("value", v.String()).
		Msg("committed property value")
	if g.OnChange != nil {
		g.OnChange(s.property)
	}
}

func (g *PropertyGrid) teardown() {
	if g.wrangler != nil {
		g.wrangler.Delete(g.active.id)
	}
	g.active = nil
}

// rowRect is the full rectangle of the i-th label-value row.
func (g *PropertyGrid) rowRect(i int) ui.Rect {
	x, y, w, _ := g.Dimensions()
	return ui.Rect{X: x, Y: y + i, W: w, H: 1}
}

// cellRect is the value cell rectangle of the i-th row, i.E. the row without
// its label column.
func (g *PropertyGrid) cellRect(i int) ui.Rect {
	row := g.rowRect(i)
	return ui.Rect{X: row.X + g.labelWidth + 1, Y: row.Y, W: row.W - g.labelWidth - 1, H: row.H}
}

// Draw renders the grid rows and, for the row under edit, the editor's
// controls.
func (g *PropertyGrid) Draw() {
	x, y, w, h := g.Dimensions()
	g.Renderer.DrawBox(x, y, w, h, g.Stylesheet.Normal)

	for i, property := range g.properties {
		row := g.rowRect(i)
		if row.Y >= y+h {
			break
		}

		labelStyle := g.Stylesheet.GridLabel
		if i == g.selection {
			labelStyle = g.Stylesheet.GridSelected
		}
		g.Renderer.DrawBox(row.X, row.Y, g.labelWidth, row.H, labelStyle)
		g.Renderer.DrawText(row.X+1, row.Y, g.labelWidth-1, row.H, labelStyle, property.Label())
		g.Renderer.DrawText(row.X+g.labelWidth, row.Y, 1, row.H, g.Stylesheet.GridLine, "│")

		if g.active != nil && i == g.selection {
			continue
		}

		cell := g.cellRect(i)
		style := g.Stylesheet.GridValue
		if property.Value().IsNull() {
			g.Renderer.DrawText(cell.X, cell.Y, cell.W, cell.H, g.Stylesheet.EditorUnspecified, "<unspecified>")
			continue
		}
		editor := g.registry.ByName(property.EditorName())
		if editor == nil {
			g.Renderer.DrawText(cell.X, cell.Y, cell.W, cell.H, style, property.ValueString())
			continue
		}
		editor.DrawValue(g.Renderer, cell, style, property, property.ValueString())
	}

	if g.active != nil {
		g.active.windows.Primary.Draw(g.Renderer, &g.Stylesheet, true)
		if g.active.windows.Secondary != nil {
			g.active.windows.Secondary.Draw(g.Renderer, &g.Stylesheet, false)
		}
		g.enactCursor()
	}
}

func (g *PropertyGrid) enactCursor() {
	if g.wrangler == nil {
		return
	}
	if provider, ok := g.active.windows.Primary.(win.CursorProvider); ok {
		g.wrangler.Put(provider.CursorLocation(), g.active.id)
	} else {
		g.wrangler.Delete(g.active.id)
	}
}
