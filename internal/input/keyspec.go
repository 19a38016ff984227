package input

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Keyspec is the specification string for a single key, e.g. "x" or "<c-w>".
type Keyspec string

// Actionspec is the specification string naming an action, e.g.
// "select-next".
type Actionspec string

// ParseKeyspec converts a key specification string to the appropriate Key (or
// an error, if invalid).
//
// A specification is either a single printable character ("x") or a special
// identifier in angle brackets ("<space>", "<c-w>").
func ParseKeyspec(spec Keyspec) (Key, error) {
	runes := []rune(spec)

	switch {
	case len(runes) == 0:
		return Key{}, fmt.Errorf("empty keyspec")

	case runes[0] == '<':
		if runes[len(runes)-1] != '>' {
			return Key{}, fmt.Errorf("unclosed special context in keyspec '%s'", spec)
		}
		return keyIdentifierToKey(string(runes[1 : len(runes)-1]))

	case len(runes) == 1:
		return Key{Key: tcell.KeyRune, Ch: runes[0]}, nil

	default:
		return Key{}, fmt.Errorf("keyspec '%s' does not describe a single key", spec)
	}
}

// keyIdentifierToKey converts the given special identifier to the appropriate
// key (or an error, if invalid).
func keyIdentifierToKey(identifier string) (Key, error) {
	identifier = strings.ToLower(identifier)

	mapping := map[string]Key{
		"space": {Key: tcell.KeyRune, Ch: ' '},
		"cr":    {Key: tcell.KeyEnter},
		"esc":   {Key: tcell.KeyESC},
		"tab":   {Key: tcell.KeyTab},
		"del":   {Key: tcell.KeyDelete},
		"bs":    {Key: tcell.KeyBackspace2},
		"left":  {Key: tcell.KeyLeft},
		"right": {Key: tcell.KeyRight},
		"up":    {Key: tcell.KeyUp},
		"down":  {Key: tcell.KeyDown},
	}
	if key, ok := mapping[identifier]; ok {
		return key, nil
	}

	// control keys ("c-a" through "c-z")
	if strings.HasPrefix(identifier, "c-") && len(identifier) == 3 {
		ch := identifier[2]
		if ch >= 'a' && ch <= 'z' {
			return Key{Key: tcell.KeyCtrlA + tcell.Key(ch-'a')}, nil
		}
	}

	return Key{}, fmt.Errorf("unknown key identifier '%s'", identifier)
}
