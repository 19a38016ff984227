package editors

import (
	"github.com/Lotendan/wxWidgets/internal/edit"
	"github.com/Lotendan/wxWidgets/internal/model"
	"github.com/Lotendan/wxWidgets/internal/ui"
	"github.com/Lotendan/wxWidgets/internal/win"
)

// ChoiceAndButtonEditor is a ChoiceEditor with a trailing "..." button.
type ChoiceAndButtonEditor struct {
	ChoiceEditor

	OnButton func(property model.Property, primary win.Window) bool
}

func (e *ChoiceAndButtonEditor) Name() string { return "ChoiceAndButton" }

func (e *ChoiceAndButtonEditor) CreateControls(host edit.Host, property model.Property, pos ui.Point, size ui.Size) edit.WindowList {
	buttons := edit.NewMultiButton(host, size)
	buttons.Add("...", win.IDSecondary)

	wnds := e.ChoiceEditor.CreateControls(host, property, pos, buttons.PrimarySize())
	buttons.FinalizePosition(pos)
	wnds.SetSecondary(buttons)
	return wnds
}

func (e *ChoiceAndButtonEditor) OnEvent(host edit.Host, property model.Property, primary win.Window, event win.Event) bool {
	if ev, ok := event.(win.CommandEvent); ok && ev.Kind == win.CommandButtonClicked && ev.ID == win.IDSecondary {
		if e.OnButton != nil {
			return e.OnButton(property, primary)
		}
		return false
	}
	return e.ChoiceEditor.OnEvent(host, property, primary, event)
}
