package keys

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Key is a single key press resolved against a Map.
type Key struct {
	msg       tea.KeyMsg
	m         *Map
	textInput bool
}

var navOrder = []Action{Up, Down, Home, End, Delete, Left, Right, Submit, Esc}

// Is reports whether the press is bound to a.
func (k Key) Is(a Action) bool {
	if k.m == nil {
		return false
	}
	if k.textInput && k.Printable() {
		return false
	}
	b, ok := k.m.bindings[a]
	if !ok {
		return false
	}
	return key.Matches(k.msg, b)
}

// Nav returns the navigation action the press maps to, or None for keys
// that go to a handler's character callback.
func (k Key) Nav() Action {
	for _, a := range navOrder {
		if k.Is(a) {
			return a
		}
	}
	return None
}

// Printable reports whether the press produced text.
func (k Key) Printable() bool {
	return k.msg.Type == tea.KeyRunes || k.msg.Type == tea.KeySpace
}

// Text returns the typed text of a printable press.
func (k Key) Text() string {
	if k.msg.Type == tea.KeySpace {
		return " "
	}
	if k.msg.Type != tea.KeyRunes {
		return ""
	}
	return string(k.msg.Runes)
}

// String returns the key name, e.g. "enter" or "s".
func (k Key) String() string {
	return k.msg.String()
}

var namedKeys = map[string]tea.KeyType{
	"up":        tea.KeyUp,
	"down":      tea.KeyDown,
	"left":      tea.KeyLeft,
	"right":     tea.KeyRight,
	"pgup":      tea.KeyPgUp,
	"pgdown":    tea.KeyPgDown,
	"home":      tea.KeyHome,
	"end":       tea.KeyEnd,
	"delete":    tea.KeyDelete,
	"backspace": tea.KeyBackspace,
	"enter":     tea.KeyEnter,
	"esc":       tea.KeyEsc,
	"tab":       tea.KeyTab,
	"ctrl+c":    tea.KeyCtrlC,
	"ctrl+r":    tea.KeyCtrlR,
	"ctrl+s":    tea.KeyCtrlS,
	"ctrl+w":    tea.KeyCtrlW,
	" ":         tea.KeySpace,
}

// Msg builds the tea.KeyMsg for a key name. Unknown names are typed text.
func Msg(name string) tea.KeyMsg {
	if t, ok := namedKeys[name]; ok {
		return tea.KeyMsg{Type: t}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(name)}
}
