package input

import (
	"fmt"

	"github.com/Lotendan/wxWidgets/internal/control/action"
)

// Keymap maps single keys to actions.
type Keymap map[Key]action.Action

// ConstructKeymap constructs a Keymap for the given mapping of key
// specification strings to actions.
// If any given keyspec is invalid, this returns an error.
func ConstructKeymap(spec map[Keyspec]action.Action) (Keymap, error) {
	result := Keymap{}

	for keyspec, mappedAction := range spec {
		key, err := ParseKeyspec(keyspec)
		if err != nil {
			return nil, fmt.Errorf("error converting keyspec: %w", err)
		}
		if _, present := result[key]; present {
			return nil, fmt.Errorf("duplicate mapping for key '%s'", string(keyspec))
		}
		result[key] = mappedAction
	}

	return result, nil
}

// Handle attempts to process the provided key.
// Returns whether the key "applied", i.E. an action was performed based on the
// input.
func (m Keymap) Handle(k Key) bool {
	mappedAction, ok := m[k]
	if !ok {
		return false
	}
	mappedAction.Do()
	return true
}
