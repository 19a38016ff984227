package win

import (
	"strconv"

	"github.com/atotto/clipboard"
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/rs/zerolog/log"

	"github.com/Lotendan/wxWidgets/internal/input"
	"github.com/Lotendan/wxWidgets/internal/styling"
	"github.com/Lotendan/wxWidgets/internal/ui"
)

// TextCtrl is a single-line text control.
type TextCtrl struct {
	BaseControl

	content     string
	cursorPos   int
	allSelected bool
	unspecified bool
}

// NewTextCtrl returns a text control with the given identifier and contents.
func NewTextCtrl(id ControlID, content string) *TextCtrl {
	t := &TextCtrl{content: content}
	t.SetID(id)
	t.cursorPos = len([]rune(content))
	return t
}

// Value returns the current (edited) contents.
func (t *TextCtrl) Value() string { return t.content }

// SetValue replaces the contents and places the cursor past their end.
func (t *TextCtrl) SetValue(s string) {
	t.content = s
	t.cursorPos = len([]rune(s))
	t.allSelected = false
	t.unspecified = false
}

// SetUnspecified puts the control into the distinguished "no value" display
// state. Any subsequent edit leaves it.
func (t *TextCtrl) SetUnspecified() {
	t.content = ""
	t.cursorPos = 0
	t.allSelected = false
	t.unspecified = true
}

// IsUnspecified reports whether the control displays the "no value" state.
func (t *TextCtrl) IsUnspecified() bool { return t.unspecified }

// SelectAll selects the full contents, so the next typed rune replaces them.
func (t *TextCtrl) SelectAll() { t.allSelected = true }

// CursorLocation returns where the terminal cursor belongs for this control.
func (t *TextCtrl) CursorLocation() ui.CursorLocation {
	r := t.Rect()
	x := r.X + runewidth.StringWidth(string([]rune(t.content)[:t.cursorPos]))
	if max := r.X + r.W - 1; x > max {
		x = max
	}
	return ui.CursorLocation{X: x, Y: r.Y}
}

// AddRune adds a rune at the cursor position.
func (t *TextCtrl) AddRune(newRune rune) {
	if !strconv.IsPrint(newRune) {
		return
	}
	if t.allSelected {
		t.content = ""
		t.cursorPos = 0
		t.allSelected = false
	}
	t.unspecified = false

	tmp := []rune(t.content)
	if len(tmp) == t.cursorPos {
		tmp = append(tmp, newRune)
	} else {
		tmp = append(tmp[:t.cursorPos+1], tmp[t.cursorPos:]...)
		tmp[t.cursorPos] = newRune
	}
	t.content = string(tmp)
	t.cursorPos++
	t.emit(CommandTextUpdated)
}

// BackspaceRune deletes the rune before the cursor position.
func (t *TextCtrl) BackspaceRune() {
	if t.allSelected {
		t.Clear()
		return
	}
	if t.cursorPos > 0 {
		tmp := []rune(t.content)
		preCursor := tmp[:t.cursorPos-1]
		postCursor := tmp[t.cursorPos:]

		t.content = string(append(preCursor, postCursor...))
		t.cursorPos--
		t.emit(CommandTextUpdated)
	}
}

// DeleteRune deletes the rune at the cursor position.
func (t *TextCtrl) DeleteRune() {
	if t.allSelected {
		t.Clear()
		return
	}
	tmp := []rune(t.content)
	if t.cursorPos < len(tmp) {
		preCursor := tmp[:t.cursorPos]
		postCursor := tmp[t.cursorPos+1:]

		t.content = string(append(preCursor, postCursor...))
		t.emit(CommandTextUpdated)
	}
}

// BackspaceToBeginning deletes all runes before the cursor position.
func (t *TextCtrl) BackspaceToBeginning() {
	afterCursor := []rune(t.content)[t.cursorPos:]
	t.content = string(afterCursor)
	t.cursorPos = 0
	t.allSelected = false
	t.emit(CommandTextUpdated)
}

// DeleteToEnd deletes all runes after the cursor position.
func (t *TextCtrl) DeleteToEnd() {
	beforeCursor := []rune(t.content)[:t.cursorPos]
	t.content = string(beforeCursor)
	t.allSelected = false
	t.emit(CommandTextUpdated)
}

// Clear deletes all runes in the control.
func (t *TextCtrl) Clear() {
	t.content = ""
	t.cursorPos = 0
	t.allSelected = false
	t.emit(CommandTextUpdated)
}

// MoveCursorToBeginning moves the cursor to the beginning of the contents.
func (t *TextCtrl) MoveCursorToBeginning() {
	t.cursorPos = 0
	t.allSelected = false
}

// MoveCursorPastEnd moves the cursor past the end of the contents.
func (t *TextCtrl) MoveCursorPastEnd() {
	t.cursorPos = len([]rune(t.content))
	t.allSelected = false
}

// MoveCursorLeft moves the cursor one rune to the left.
func (t *TextCtrl) MoveCursorLeft() {
	t.allSelected = false
	if t.cursorPos > 0 {
		t.cursorPos--
	}
}

// MoveCursorRight moves the cursor one rune to the right.
func (t *TextCtrl) MoveCursorRight() {
	t.allSelected = false
	if t.cursorPos < len([]rune(t.content)) {
		t.cursorPos++
	}
}

// Paste inserts the system clipboard contents at the cursor position.
func (t *TextCtrl) Paste() {
	pasted, err := clipboard.ReadAll()
	if err != nil {
		log.Warn().Err(err).Msg("could not read system clipboard")
		return
	}
	for _, r := range pasted {
		t.AddRune(r)
	}
}

// HandleKey attempts to process the provided key input.
func (t *TextCtrl) HandleKey(k input.Key) bool {
	switch k.Key {
	case tcell.KeyRune:
		t.AddRune(k.Ch)
	case tcell.KeyEnter:
		t.emit(CommandTextEnter)
	case tcell.KeyLeft:
		t.MoveCursorLeft()
	case tcell.KeyRight:
		t.MoveCursorRight()
	case tcell.KeyHome, tcell.KeyCtrlA:
		t.MoveCursorToBeginning()
	case tcell.KeyEnd, tcell.KeyCtrlE:
		t.MoveCursorPastEnd()
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		t.BackspaceRune()
	case tcell.KeyDelete, tcell.KeyCtrlD:
		t.DeleteRune()
	case tcell.KeyCtrlU:
		t.BackspaceToBeginning()
	case tcell.KeyCtrlK:
		t.DeleteToEnd()
	case tcell.KeyCtrlV:
		t.Paste()
	default:
		return false
	}
	return true
}

// HandleClick places the cursor at the clicked position.
func (t *TextCtrl) HandleClick(x, y int) bool {
	r := t.Rect()
	if !r.Contains(x, y) {
		return false
	}
	pos := x - r.X
	if contentLen := len([]rune(t.content)); pos > contentLen {
		pos = contentLen
	}
	t.cursorPos = pos
	t.allSelected = false
	return true
}

// Draw renders the control.
func (t *TextCtrl) Draw(r ui.ConstrainedRenderer, sty *styling.Stylesheet, focussed bool) {
	rect := t.Rect()

	style := sty.Editor
	if !focussed {
		style = style.DefaultDimmed()
	}
	r.DrawBox(rect.X, rect.Y, rect.W, rect.H, style)

	if t.unspecified {
		r.DrawText(rect.X, rect.Y, rect.W, rect.H, sty.EditorUnspecified, "<unspecified>")
		return
	}

	textStyle := style
	if t.allSelected {
		textStyle = textStyle.Invert()
	}
	r.DrawText(rect.X, rect.Y, rect.W, rect.H, textStyle, runewidth.Truncate(t.content, rect.W, ""))
}
