// Package config describes the configuration file contents.
package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Config is the configuration data as present in a config file at
// '${PGRID_HOME}/config.yaml'.
type Config struct {
	Stylesheet Stylesheet        `yaml:"stylesheet"`
	Keys       map[string]string `yaml:"keys"`
}

// A Stylesheet is the stylesheet contents defined in a config file.
type Stylesheet struct {
	Normal            Styling `yaml:"normal"`
	NormalEmphasized  Styling `yaml:"normal-emphasized"`
	GridLabel         Styling `yaml:"grid-label"`
	GridValue         Styling `yaml:"grid-value"`
	GridSelected      Styling `yaml:"grid-selected"`
	GridLine          Styling `yaml:"grid-line"`
	Editor            Styling `yaml:"editor"`
	EditorUnspecified Styling `yaml:"editor-unspecified"`
	Button            Styling `yaml:"button"`
	List              Styling `yaml:"list"`
	ListSelected      Styling `yaml:"list-selected"`
	Status            Styling `yaml:"status"`
}

// A Styling is a styling as defined in a config file.
// It must contain fore- and background colors and can optionally specify font
// style (bold, italic, underlined).
type Styling struct {
	Fg    string     `yaml:"fg"`
	Bg    string     `yaml:"bg"`
	Style *FontStyle `yaml:"style"`
}

// A FontStyle can be any combination of bold, italic, and underlined.
type FontStyle struct {
	Bold       bool `yaml:"bold,omitempty"`
	Italic     bool `yaml:"italic,omitempty"`
	Underlined bool `yaml:"underlined,omitempty"`
}

// ColorschemeType enumerates the compiled-in default colorschemes.
type ColorschemeType int

const (
	_ ColorschemeType = iota
	// Dark is the default dark colorscheme.
	Dark
	// Light is the default light colorscheme.
	Light
)

// ParseConfigAugmentDefaults parses the configuration specified in
// YAML-formatted data and uses it to augment a given default configuration.
func ParseConfigAugmentDefaults(defaultTheme ColorschemeType, yamlData []byte) (Config, error) {
	defaultConfig := Default(defaultTheme)

	parsedConfig := Config{}
	err := yaml.Unmarshal(yamlData, &parsedConfig)
	if err != nil {
		return defaultConfig, fmt.Errorf("error unmarshaling yaml (%s)", err)
	}

	return defaultConfig.augmentWith(parsedConfig), nil
}

// augmentWith returns a copy of this config in which all fields defined in the
// given other config override the receiver's.
func (base Config) augmentWith(augment Config) Config {
	result := base

	result.Stylesheet = base.Stylesheet.augmentWith(augment.Stylesheet)

	if result.Keys == nil {
		result.Keys = map[string]string{}
	}
	for keyspec, actionspec := range augment.Keys {
		result.Keys[keyspec] = actionspec
	}

	return result
}

func (base Stylesheet) augmentWith(augment Stylesheet) Stylesheet {
	result := base

	result.Normal = base.Normal.augmentWith(augment.Normal)
	result.NormalEmphasized = base.NormalEmphasized.augmentWith(augment.NormalEmphasized)
	result.GridLabel = base.GridLabel.augmentWith(augment.GridLabel)
	result.GridValue = base.GridValue.augmentWith(augment.GridValue)
	result.GridSelected = base.GridSelected.augmentWith(augment.GridSelected)
	result.GridLine = base.GridLine.augmentWith(augment.GridLine)
	result.Editor = base.Editor.augmentWith(augment.Editor)
	result.EditorUnspecified = base.EditorUnspecified.augmentWith(augment.EditorUnspecified)
	result.Button = base.Button.augmentWith(augment.Button)
	result.List = base.List.augmentWith(augment.List)
	result.ListSelected = base.ListSelected.augmentWith(augment.ListSelected)
	result.Status = base.Status.augmentWith(augment.Status)

	return result
}

func (base Styling) augmentWith(augment Styling) Styling {
	result := base
	if augment.Fg != "" {
		result.Fg = augment.Fg
	}
	if augment.Bg != "" {
		result.Bg = augment.Bg
	}
	if augment.Style != nil {
		result.Style = augment.Style
	}
	return result
}
