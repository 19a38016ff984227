package styling

import (
	"github.com/Lotendan/wxWidgets/internal/config"
)

// Stylesheet represents all styles used by the application for rendering.
type Stylesheet struct {
	Normal           DrawStyling
	NormalEmphasized DrawStyling

	GridLabel    DrawStyling
	GridValue    DrawStyling
	GridSelected DrawStyling
	GridLine     DrawStyling

	Editor            DrawStyling
	EditorUnspecified DrawStyling

	Button       DrawStyling
	List         DrawStyling
	ListSelected DrawStyling

	Status DrawStyling
}

// NewStylesheetFromConfig constructs a new stylesheet from a given config
// stylesheet.
func NewStylesheetFromConfig(cfg config.Stylesheet) *Stylesheet {
	return &Stylesheet{
		Normal:            StyleFromConfig(cfg.Normal),
		NormalEmphasized:  StyleFromConfig(cfg.NormalEmphasized),
		GridLabel:         StyleFromConfig(cfg.GridLabel),
		GridValue:         StyleFromConfig(cfg.GridValue),
		GridSelected:      StyleFromConfig(cfg.GridSelected),
		GridLine:          StyleFromConfig(cfg.GridLine),
		Editor:            StyleFromConfig(cfg.Editor),
		EditorUnspecified: StyleFromConfig(cfg.EditorUnspecified),
		Button:            StyleFromConfig(cfg.Button),
		List:              StyleFromConfig(cfg.List),
		ListSelected:      StyleFromConfig(cfg.ListSelected),
		Status:            StyleFromConfig(cfg.Status),
	}
}

// StyleFromConfig converts a config styling to a DrawStyling.
func StyleFromConfig(cfg config.Styling) DrawStyling {
	style := StyleFromHex(cfg.Fg, cfg.Bg)
	if cfg.Style != nil {
		style.bold = cfg.Style.Bold
		style.italic = cfg.Style.Italic
		style.underlined = cfg.Style.Underlined
	}
	return style
}
