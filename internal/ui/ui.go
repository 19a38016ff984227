// Package ui defines the rendering and pane abstractions shared by the
// property-grid widget and its in-place editor controls.
package ui

import (
	"fmt"

	"github.com/Lotendan/wxWidgets/internal/styling"
)

// Point is a position on the UI's x-y-plane, which has its origin 0,0 in the
// top left.
type Point struct {
	X, Y int
}

// Size is a width and height in cells.
type Size struct {
	W, H int
}

// Rect is a rectangle given by its top-left corner and its dimensions.
type Rect struct {
	X, Y, W, H int
}

// Contains returns whether the given point lies within the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

func (r Rect) String() string {
	return fmt.Sprintf("+%d+%d %dx%d", r.X, r.Y, r.W, r.H)
}

// Renderer is a drawing surface for boxes and text.
type Renderer interface {
	// Draw a box of the indicated dimensions at the indicated location but
	// limited to the constraint (bounding box) of the renderer.
	// In the case that the box is not fully contained by the bounding box,
	// it is truncated to fit and drawn at the corrected coordinates with the
	// corrected dimensions.
	DrawBox(x, y, w, h int, style styling.DrawStyling)
	// Draw text within the box described by the given coordinates and
	// dimensions, but limited to the constraint (bounding box) of the renderer.
	DrawText(x, y, w, h int, style styling.DrawStyling, text string)
}

// ConstrainedRenderer is a renderer that is assumed to be constrained to
// certain dimensions, i.E. it does not draw outside of them.
type ConstrainedRenderer interface {
	Renderer

	// Dimensions returns the dimensions of the renderer.
	Dimensions() (x, y, w, h int)
}

// RenderOrchestratorControl is the set of functions of a renderer (e.g.,
// tcell.Screen) that the render loop needs to have full control over a render
// cycle. Panes and controls should not need this access to the renderer.
type RenderOrchestratorControl interface {
	Clear()
	Show()
}

// TextCursorController offers control of a text cursor, such as for a
// terminal.
type TextCursorController interface {
	HideCursor()
	ShowCursor(CursorLocation)
}

// CursorLocation is the location of a text cursor.
type CursorLocation struct {
	X int
	Y int
}

func (l CursorLocation) String() string {
	return fmt.Sprintf("%d:%d", l.X, l.Y)
}

// Pane is a UI pane, drawn within fixed dimensions.
type Pane interface {
	Draw()
	Undraw()
	IsVisible() bool
	Dimensions() (x, y, w, h int)
}

// LeafPane is the base data for a pane that makes actual draw calls rather
// than deferring to subpanes.
type LeafPane struct {
	Renderer   ConstrainedRenderer
	Dims       func() (x, y, w, h int)
	Stylesheet styling.Stylesheet
	Visible    func() bool
}

// Dimensions returns the pane's dimensions.
func (p *LeafPane) Dimensions() (x, y, w, h int) { return p.Dims() }

// IsVisible indicates whether the pane is visible.
func (p *LeafPane) IsVisible() bool { return p.Visible == nil || p.Visible() }

// Undraw does nothing. Override this, if necessary.
func (p *LeafPane) Undraw() {}
