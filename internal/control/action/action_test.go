package action_test

import (
	"testing"

	"github.com/Lotendan/wxWidgets/internal/control/action"
)

func TestSimple(t *testing.T) {
	performed := 0
	a := action.NewSimple(func() string { return "count up" }, func() { performed++ })

	a.Do()
	a.Do()
	if performed != 2 {
		t.Error("unexpected number of performed actions:", performed)
	}
	if a.Explain() != "count up" {
		t.Error("unexpected explanation:", a.Explain())
	}
	if a.Undoable() {
		t.Error("a simple action must not claim to be undoable")
	}
	a.Undo()
	if performed != 2 {
		t.Error("undo must not re-run the action")
	}
}
