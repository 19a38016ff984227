package action

// Simple is a fire-and-forget Action wrapping a plain func(). The grid
// keybindings (selection movement, begin-edit, sheet write, quit) are all of
// this kind; none of them can be undone.
type Simple struct {
	action  func()
	explain func() string
}

// Do invokes the wrapped function.
func (a *Simple) Do() { a.action() }

// Undoable returns false; a Simple cannot be undone.
func (a *Simple) Undoable() bool { return false }

// Undo does nothing.
func (a *Simple) Undo() {}

// Explain describes what Do would do, for keymap listings.
func (a *Simple) Explain() string { return a.explain() }

// NewSimple wraps the given function and its explainer as an Action.
func NewSimple(explainer func() string, action func()) *Simple {
	return &Simple{
		action:  action,
		explain: explainer,
	}
}
