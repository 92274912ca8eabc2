package ui

import (
	"github.com/atomicstack/servarr-tui/internal/handlers"
	"github.com/atomicstack/servarr-tui/internal/keys"
	"github.com/atomicstack/servarr-tui/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
)

// handleKeyMsg resolves a key press against the binding table and hands it
// to the handler owning the current route. Afterwards it starts whatever
// the press asked for: a recorded intent, a refresh, or a reload of the
// view that was just opened.
func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	s := m.state
	if keyMsg.Type == tea.KeyCtrlC {
		events.UI.Quit(s.Current().String())
		return tea.Quit
	}
	k := m.keys.Resolve(keyMsg, s.TextInput)
	if k.Is(keys.Quit) && s.Nav.Len() == 1 {
		events.UI.Quit(s.Current().String())
		return tea.Quit
	}

	caret := m.caretPos()
	env := handlers.NewEnv(s, k)
	env.Page = m.visibleRows()
	if handlers.Dispatch(m.registry, env) {
		m.info = ""
	}
	if m.caretPos() != caret {
		m.caretDirty = true
	}

	cmd := m.takeIntent()
	routed := s.Nav.TakeRouting()
	if s.TakeRefresh() || routed {
		m.refresh()
	}
	return cmd
}
