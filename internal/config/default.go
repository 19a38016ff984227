package config

// Default returns the default configuration for the given colorscheme type.
func Default(theme ColorschemeType) Config {
	defaultKeys := map[string]string{
		"j":       "select-next",
		"k":       "select-prev",
		"<down>":  "select-next",
		"<up>":    "select-prev",
		"<cr>":    "begin-edit",
		"u":       "set-unspecified",
		"w":       "write-sheet",
		"q":       "quit",
		"<c-c>":   "quit",
		"<space>": "begin-edit",
	}

	switch theme {
	case Light:
		return Config{
			Keys: defaultKeys,
			Stylesheet: Stylesheet{
				Normal:            Styling{Fg: "#000000", Bg: "#ffffff"},
				NormalEmphasized:  Styling{Fg: "#000000", Bg: "#f0f0f0"},
				GridLabel:         Styling{Fg: "#333333", Bg: "#ffffff"},
				GridValue:         Styling{Fg: "#000000", Bg: "#fafafa"},
				GridSelected:      Styling{Fg: "#000000", Bg: "#c8e0ff"},
				GridLine:          Styling{Fg: "#bbbbbb", Bg: "#ffffff"},
				Editor:            Styling{Fg: "#000000", Bg: "#ffffcc"},
				EditorUnspecified: Styling{Fg: "#999999", Bg: "#ffffcc", Style: &FontStyle{Italic: true}},
				Button:            Styling{Fg: "#000000", Bg: "#dddddd"},
				List:              Styling{Fg: "#000000", Bg: "#eeeeee"},
				ListSelected:      Styling{Fg: "#ffffff", Bg: "#4271ae"},
				Status:            Styling{Fg: "#000000", Bg: "#f0f0f0"},
			},
		}
	default:
		return Config{
			Keys: defaultKeys,
			Stylesheet: Stylesheet{
				Normal:            Styling{Fg: "#d0d0d0", Bg: "#121212"},
				NormalEmphasized:  Styling{Fg: "#ffffff", Bg: "#1c1c1c"},
				GridLabel:         Styling{Fg: "#9e9e9e", Bg: "#121212"},
				GridValue:         Styling{Fg: "#d0d0d0", Bg: "#1c1c1c"},
				GridSelected:      Styling{Fg: "#ffffff", Bg: "#005f87"},
				GridLine:          Styling{Fg: "#444444", Bg: "#121212"},
				Editor:            Styling{Fg: "#121212", Bg: "#ffffaf"},
				EditorUnspecified: Styling{Fg: "#666666", Bg: "#ffffaf", Style: &FontStyle{Italic: true}},
				Button:            Styling{Fg: "#d0d0d0", Bg: "#3a3a3a"},
				List:              Styling{Fg: "#d0d0d0", Bg: "#262626"},
				ListSelected:      Styling{Fg: "#ffffff", Bg: "#5f5faf"},
				Status:            Styling{Fg: "#d0d0d0", Bg: "#303030"},
			},
		}
	}
}
