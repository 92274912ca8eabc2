// Package keys maps physical key presses to the logical actions the key
// handlers understand. The table is built once at startup, optionally
// overridden from a TOML file, and passed explicitly to the UI model.
package keys

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Action is a logical key binding.
type Action int

const (
	None Action = iota
	Up
	Down
	Left
	Right
	PageUp
	PageDown
	Home
	End
	Delete
	Backspace
	Submit
	Esc
	Quit
	Confirm
	Refresh
	Sort
	Search
	Filter
	Add
	Edit
	Update
	Clear
	Settings
	Test
	TestAll
	Tasks
	Events
	Logs
	AutoSearch
	actionCount
)

// ErrUnknownAction is returned for binding names that match no action.
var ErrUnknownAction = errors.New("unknown key action")

// ErrConflict is returned when one key would trigger two actions on a view.
var ErrConflict = errors.New("conflicting key bindings")

var actionNames = map[Action]string{
	None:       "none",
	Up:         "up",
	Down:       "down",
	Left:       "left",
	Right:      "right",
	PageUp:     "pgup",
	PageDown:   "pgdown",
	Home:       "home",
	End:        "end",
	Delete:     "delete",
	Backspace:  "backspace",
	Submit:     "submit",
	Esc:        "esc",
	Quit:       "quit",
	Confirm:    "confirm",
	Refresh:    "refresh",
	Sort:       "sort",
	Search:     "search",
	Filter:     "filter",
	Add:        "add",
	Edit:       "edit",
	Update:     "update",
	Clear:      "clear",
	Settings:   "settings",
	Test:       "test",
	TestAll:    "test-all",
	Tasks:      "tasks",
	Events:     "events",
	Logs:       "logs",
	AutoSearch: "auto-search",
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return fmt.Sprintf("action(%d)", int(a))
}

// ParseAction returns the action with the given name.
func ParseAction(name string) (Action, error) {
	for a, n := range actionNames {
		if n == name && a != None {
			return a, nil
		}
	}
	return None, fmt.Errorf("%w: %q", ErrUnknownAction, name)
}

// Actions lists every bindable action in declaration order.
func Actions() []Action {
	out := make([]Action, 0, int(actionCount)-1)
	for a := Up; a < actionCount; a++ {
		out = append(out, a)
	}
	return out
}

// Map is the key binding table.
type Map struct {
	bindings map[Action]key.Binding
}

// Default returns the stock bindings.
func Default() *Map {
	m := &Map{bindings: make(map[Action]key.Binding, int(actionCount))}
	bind := func(a Action, help string, keys ...string) {
		m.bindings[a] = key.NewBinding(key.WithKeys(keys...), key.WithHelp(keys[0], help))
	}
	bind(Up, "up", "up", "k")
	bind(Down, "down", "down", "j")
	bind(Left, "left", "left", "h")
	bind(Right, "right", "right", "l")
	bind(PageUp, "page up", "pgup")
	bind(PageDown, "page down", "pgdown")
	bind(Home, "top", "home")
	bind(End, "bottom", "end")
	bind(Delete, "delete", "delete")
	bind(Backspace, "backspace", "backspace")
	bind(Submit, "select", "enter")
	bind(Esc, "back", "esc")
	bind(Quit, "quit", "q")
	bind(Confirm, "confirm", "ctrl+s")
	bind(Refresh, "refresh", "ctrl+r")
	bind(Sort, "sort", "o")
	bind(Search, "search", "s")
	bind(Filter, "filter", "f")
	bind(Add, "add", "a")
	bind(Edit, "edit", "e")
	bind(Update, "update", "u")
	bind(Clear, "clear", "c")
	bind(Settings, "settings", "S")
	bind(Test, "test", "t")
	bind(TestAll, "test all", "T")
	// t and s are shared on purpose: Tasks and AutoSearch are only read on
	// views where Test and Search are not. Validate enforces this.
	bind(Tasks, "tasks", "t")
	bind(Events, "events", "z")
	bind(Logs, "logs", "L")
	bind(AutoSearch, "auto search", "s")
	return m
}

// globalActions are read on every view.
var globalActions = []Action{Up, Down, Left, Right, PageUp, PageDown, Home, End, Delete, Submit, Esc, Quit, Confirm, Refresh}

// viewActions lists the extra actions each view reads.
var viewActions = map[string][]Action{
	"library":        {Sort, Search, Filter, Edit, Update},
	"series details": {AutoSearch, Edit, Update},
	"downloads":      {Update},
	"blocklist":      {Sort, Search, Filter, Clear},
	"history":        {Sort, Search, Filter},
	"root folders":   {Add},
	"indexers":       {Settings, Test, TestAll},
	"system":         {Tasks, Events, Logs, Update},
}

// Validate reports a key bound to two actions that are read on the same
// view.
func (m *Map) Validate() error {
	views := make([]string, 0, len(viewActions))
	for view := range viewActions {
		views = append(views, view)
	}
	sort.Strings(views)
	for _, view := range views {
		actions := append(append([]Action(nil), globalActions...), viewActions[view]...)
		if dup := m.Conflicts(actions...); len(dup) > 0 {
			return fmt.Errorf("%w: %s on the %s view", ErrConflict, strings.Join(dup, ", "), view)
		}
	}
	return nil
}

// Binding returns the binding of a.
func (m *Map) Binding(a Action) key.Binding {
	return m.bindings[a]
}

// Rebind replaces the keys bound to a, keeping its help text.
func (m *Map) Rebind(a Action, keys ...string) error {
	if len(keys) == 0 {
		return fmt.Errorf("rebind %s: no keys given", a)
	}
	b, ok := m.bindings[a]
	if !ok {
		return fmt.Errorf("rebind %s: %w", a, ErrUnknownAction)
	}
	b.SetKeys(keys...)
	b.SetHelp(keys[0], b.Help().Desc)
	m.bindings[a] = b
	return nil
}

// HelpKey returns the first key bound to a, for hints.
func (m *Map) HelpKey(a Action) string {
	return m.bindings[a].Help().Key
}

// Conflicts lists the physical keys bound to more than one of the given
// actions.
func (m *Map) Conflicts(actions ...Action) []string {
	owners := make(map[string]int)
	for _, a := range actions {
		for _, k := range m.bindings[a].Keys() {
			owners[k]++
		}
	}
	var out []string
	for k, n := range owners {
		if n > 1 {
			out = append(out, k)
		}
	}
	sort.Strings(out)
	return out
}

// Resolve wraps a key press for dispatch. When textInput is set printable
// keys are text and never match an action.
func (m *Map) Resolve(msg tea.KeyMsg, textInput bool) Key {
	return Key{msg: msg, m: m, textInput: textInput}
}

// Press builds a Key from a key name such as "enter", "ctrl+r" or "s".
func (m *Map) Press(name string, textInput bool) Key {
	return m.Resolve(Msg(name), textInput)
}
