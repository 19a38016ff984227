// Package action provides the Action interface and simple implementations.
package action

// An Action is anything that can be performed, potentially undone, and
// explained.
type Action interface {
	Do()
	Undo()
	Undoable() bool
	Explain() string
}
