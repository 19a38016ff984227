package storage

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"github.com/Lotendan/wxWidgets/internal/model"
)

// propertyDef is one property's definition and value as stored in a sheet
// file.
type propertyDef struct {
	Name     string   `yaml:"name"`
	Label    string   `yaml:"label,omitempty"`
	Type     string   `yaml:"type"`
	Value    *string  `yaml:"value"`
	Editor   string   `yaml:"editor,omitempty"`
	ReadOnly bool     `yaml:"read-only,omitempty"`
	Choices  []string `yaml:"choices,omitempty"`
}

type sheetFile struct {
	Properties []propertyDef `yaml:"properties"`
}

// YAMLSheetHandler is a SheetProvider backed by a single YAML file.
type YAMLSheetHandler struct {
	mutex sync.Mutex

	filename string
	data     sheetFile
	loaded   []model.Property
}

// NewYAMLSheetHandler creates a handler for the given sheet file.
func NewYAMLSheetHandler(filename string) *YAMLSheetHandler {
	return &YAMLSheetHandler{filename: filename}
}

// Properties reads the sheet file and constructs its properties.
func (h *YAMLSheetHandler) Properties() ([]model.Property, error) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	raw, err := os.ReadFile(h.filename)
	if err != nil {
		return nil, fmt.Errorf("unable to read sheet file '%s' (%w)", h.filename, err)
	}
	if err := yaml.Unmarshal(raw, &h.data); err != nil {
		return nil, fmt.Errorf("unable to parse sheet file '%s' (%w)", h.filename, err)
	}

	h.loaded = h.loaded[:0]
	for _, def := range h.data.Properties {
		p, err := constructProperty(def)
		if err != nil {
			return nil, fmt.Errorf("invalid property '%s' (%w)", def.Name, err)
		}
		h.loaded = append(h.loaded, p)
	}
	return h.loaded, nil
}

// CommitProperty updates the stored definition for the given property.
func (h *YAMLSheetHandler) CommitProperty(p model.Property) error {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	for i := range h.data.Properties {
		if h.data.Properties[i].Name != p.Name() {
			continue
		}
		if p.Value().IsNull() {
			h.data.Properties[i].Value = nil
		} else {
			s := p.ValueString()
			h.data.Properties[i].Value = &s
		}
		h.data.Properties[i].Editor = p.EditorName()
		return nil
	}
	return fmt.Errorf("no stored property named '%s'", p.Name())
}

// Flush writes the sheet back to its file.
func (h *YAMLSheetHandler) Flush() error {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	raw, err := yaml.Marshal(h.data)
	if err != nil {
		return fmt.Errorf("unable to serialize sheet (%w)", err)
	}
	if err := os.WriteFile(h.filename, raw, 0o644); err != nil {
		return fmt.Errorf("unable to write sheet file '%s' (%w)", h.filename, err)
	}
	log.Debug().Str("file", h.filename).Msg("wrote sheet file")
	return nil
}

func constructProperty(def propertyDef) (model.Property, error) {
	label := def.Label
	if label == "" {
		label = def.Name
	}

	var p model.Property
	switch def.Type {
	case "string":
		p = model.NewStringProperty(def.Name, label, stringOr(def.Value, ""))
	case "int":
		value := 0
		if def.Value != nil {
			if _, err := fmt.Sscanf(*def.Value, "%d", &value); err != nil {
				return nil, fmt.Errorf("not an integer: '%s'", *def.Value)
			}
		}
		p = model.NewIntProperty(def.Name, label, value)
	case "float":
		value := 0.0
		if def.Value != nil {
			if _, err := fmt.Sscanf(*def.Value, "%g", &value); err != nil {
				return nil, fmt.Errorf("not a number: '%s'", *def.Value)
			}
		}
		p = model.NewFloatProperty(def.Name, label, value)
	case "bool":
		p = model.NewBoolProperty(def.Name, label, stringOr(def.Value, "") == "true")
	case "enum":
		selected := -1
		if def.Value != nil {
			for i, choice := range def.Choices {
				if choice == *def.Value {
					selected = i
				}
			}
		}
		p = model.NewEnumProperty(def.Name, label, def.Choices, selected)
	case "date":
		var value time.Time
		if def.Value != nil {
			parsed, err := time.Parse(model.DateFormat, *def.Value)
			if err != nil {
				return nil, fmt.Errorf("not a date: '%s' (%w)", *def.Value, err)
			}
			value = parsed
		}
		p = model.NewDateProperty(def.Name, label, value)
	default:
		return nil, fmt.Errorf("unknown property type '%s'", def.Type)
	}

	if def.Value == nil {
		p.SetValue(model.NullVariant())
	}
	if def.Editor != "" {
		p.SetEditorName(def.Editor)
	}
	if def.ReadOnly {
		if base, ok := p.(interface{ SetReadOnly(bool) }); ok {
			base.SetReadOnly(true)
		}
	}
	return p, nil
}

func stringOr(s *string, fallback string) string {
	if s == nil {
		return fallback
	}
	return *s
}
