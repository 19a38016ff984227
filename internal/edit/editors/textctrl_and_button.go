package editors

import (
	"github.com/Lotendan/wxWidgets/internal/edit"
	"github.com/Lotendan/wxWidgets/internal/model"
	"github.com/Lotendan/wxWidgets/internal/ui"
	"github.com/Lotendan/wxWidgets/internal/win"
)

// TextCtrlAndButtonEditor is a TextCtrlEditor with a trailing "..." button.
// OnButton, if set, is invoked on the button's click command; returning true
// marks the value as modified.
type TextCtrlAndButtonEditor struct {
	TextCtrlEditor

	OnButton func(property model.Property, primary win.Window) bool
}

func (e *TextCtrlAndButtonEditor) Name() string { return "TextCtrlAndButton" }

func (e *TextCtrlAndButtonEditor) CreateControls(host edit.Host, property model.Property, pos ui.Point, size ui.Size) edit.WindowList {
	buttons := edit.NewMultiButton(host, size)
	buttons.Add("...", win.IDSecondary)

	wnds := e.TextCtrlEditor.CreateControls(host, property, pos, buttons.PrimarySize())
	buttons.FinalizePosition(pos)
	wnds.SetSecondary(buttons)
	return wnds
}

func (e *TextCtrlAndButtonEditor) OnEvent(host edit.Host, property model.Property, primary win.Window, event win.Event) bool {
	if ev, ok := event.(win.CommandEvent); ok && ev.Kind == win.CommandButtonClicked && ev.ID == win.IDSecondary {
		if e.OnButton != nil {
			return e.OnButton(property, primary)
		}
		return false
	}
	return e.TextCtrlEditor.OnEvent(host, property, primary, event)
}
