package ui

import (
	"context"
	"reflect"

	"github.com/atomicstack/servarr-tui/internal/backend"
	"github.com/atomicstack/servarr-tui/internal/data/dispatcher"
	"github.com/atomicstack/servarr-tui/internal/handlers"
	"github.com/atomicstack/servarr-tui/internal/intent"
	"github.com/atomicstack/servarr-tui/internal/keys"
	"github.com/atomicstack/servarr-tui/internal/route"
	"github.com/atomicstack/servarr-tui/internal/state"
	"github.com/atomicstack/servarr-tui/internal/theme"
	"github.com/atomicstack/servarr-tui/internal/ui/command"
	uistate "github.com/atomicstack/servarr-tui/internal/ui/state"
	"github.com/charmbracelet/bubbles/cursor"
	tea "github.com/charmbracelet/bubbletea"
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Options configures a Model.
type Options struct {
	Width      int
	Height     int
	ShowFooter bool
	// Root is the first view shown. Defaults to the library.
	Root route.Route
	// Matcher is used for search and filter. Defaults to substring matching.
	Matcher uistate.Matcher
	// Keys is the binding table. Defaults to keys.Default().
	Keys     *keys.Map
	Watcher  *backend.Watcher
	Executor intent.Executor
}

// Model implements the Bubble Tea model around the key handler engine.
type Model struct {
	state      *state.State
	registry   *handlers.Registry
	keys       *keys.Map
	dispatcher *dispatcher.Dispatcher
	bus        *command.Bus
	ctx        context.Context

	backend        *backend.Watcher
	backendState   map[backend.Kind]error
	backendLastErr string

	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool
	info        string

	caret        cursor.Model
	caretFocused bool
	caretDirty   bool

	handlers map[reflect.Type]msgHandler
}

// NewModel initialises the UI state on the root view.
func NewModel(opts Options) *Model {
	s := state.New(state.Options{Root: opts.Root, Matcher: opts.Matcher})
	km := opts.Keys
	if km == nil {
		km = keys.Default()
	}
	m := &Model{
		state:        s,
		registry:     handlers.BuildRegistry(),
		keys:         km,
		dispatcher:   dispatcher.New(s),
		bus:          command.New(opts.Executor),
		ctx:          context.Background(),
		backend:      opts.Watcher,
		backendState: map[backend.Kind]error{},
		showFooter:   opts.ShowFooter,
	}
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	c := cursor.New()
	if styles.Cursor != nil {
		c.Style = styles.Cursor.Copy()
	}
	if styles.Input != nil {
		c.TextStyle = styles.Input.Copy()
	}
	c.SetChar(" ")
	m.caret = c
	m.registerHandlers()
	return m
}

// State exposes the engine state.
func (m *Model) State() *state.State {
	return m.state
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{}
	if m.backend != nil {
		cmds = append(cmds, waitForBackendEvent(m.backend))
	}
	m.caretFocused = true
	if cmd := m.caret.Focus(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 4)
	if cmd := m.updateCaret(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, m.finishUpdate(cmds)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(backendEventMsg{}):   m.handleBackendEventMsg,
		reflect.TypeOf(backendDoneMsg{}):    m.handleBackendDoneMsg,
		reflect.TypeOf(command.Result{}):    m.handleCommandResultMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	if m.caretDirty {
		m.caretDirty = false
		if m.caretFocused {
			m.caret.Blink = false
			if cmd := m.caret.BlinkCmd(); cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
	}
	switch len(cmds) {
	case 0:
		return nil
	case 1:
		return cmds[0]
	}
	return tea.Batch(cmds...)
}
