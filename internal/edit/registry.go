package edit

import (
	"fmt"

	"github.com/rs/zerolog/log"
)

// Registry maps editor names to the shared Editor instance registered under
// them.
//
// Names are unique; registering a second editor under an already-taken name
// is rejected. Registration must happen before any grid looks editors up by
// name.
type Registry struct {
	editors map[string]Editor
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{editors: map[string]Editor{}}
}

// Register adds the given editor under its name and returns it, e.g. for
// storing and passing to a property's SetEditorName.
// A duplicate name is rejected with an error.
func (r *Registry) Register(ed Editor) (Editor, error) {
	name := ed.Name()
	if _, taken := r.editors[name]; taken {
		return nil, fmt.Errorf("editor name '%s' is already registered", name)
	}
	r.editors[name] = ed
	log.Debug().Str("editor", name).Msg("registered editor")
	return ed, nil
}

// ByName returns the editor registered under the given name, or nil.
func (r *Registry) ByName(name string) Editor {
	return r.editors[name]
}

// Names returns the names of all registered editors.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.editors))
	for name := range r.editors {
		names = append(names, name)
	}
	return names
}

// global is the process-wide registry; explicitly initialized and torn down.
var global *Registry

// InitGlobalRegistry initializes the process-wide registry. It must be called
// before any registration with or lookup in the global registry.
func InitGlobalRegistry() {
	if global != nil {
		log.Warn().Msg("global editor registry initialized more than once; discarding previous registrations")
	}
	global = NewRegistry()
}

// GlobalRegistry returns the process-wide registry.
// Calling this before InitGlobalRegistry is a programmer error.
func GlobalRegistry() *Registry {
	if global == nil {
		panic("global editor registry used before initialization")
	}
	return global
}

// ShutdownGlobalRegistry tears the process-wide registry down, e.g. for clean
// program shutdown.
func ShutdownGlobalRegistry() {
	global = nil
}
