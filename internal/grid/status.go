package grid

import (
	"github.com/Lotendan/wxWidgets/internal/styling"
	"github.com/Lotendan/wxWidgets/internal/ui"
)

// StatusPane is a single-line pane showing a contextual status text.
type StatusPane struct {
	ui.LeafPane

	// Text provides the status line's current content.
	Text func() string
}

// NewStatusPane constructs a status pane.
func NewStatusPane(
	renderer ui.ConstrainedRenderer,
	dims func() (x, y, w, h int),
	stylesheet styling.Stylesheet,
	text func() string,
) *StatusPane {
	return &StatusPane{
		LeafPane: ui.LeafPane{
			Renderer:   renderer,
			Dims:       dims,
			Stylesheet: stylesheet,
		},
		Text: text,
	}
}

// Draw renders the status line.
func (p *StatusPane) Draw() {
	x, y, w, h := p.Dimensions()
	p.Renderer.DrawBox(x, y, w, h, p.Stylesheet.Status)
	p.Renderer.DrawText(x+1, y, w-1, h, p.Stylesheet.Status, p.Text())
}
