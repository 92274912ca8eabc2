package ui

import (
	"fmt"

	"github.com/atomicstack/servarr-tui/internal/intent"
	"github.com/atomicstack/servarr-tui/internal/logging"
	"github.com/atomicstack/servarr-tui/internal/models"
	"github.com/atomicstack/servarr-tui/internal/ui/command"
	tea "github.com/charmbracelet/bubbletea"
)

// takeIntent starts the intent recorded by the last key press, if any. The
// engine stays in the loading state until the result arrives.
func (m *Model) takeIntent() tea.Cmd {
	i, ok := m.state.Prompt.Take()
	if !ok {
		return nil
	}
	m.state.BeginLoad()
	m.state.Error = ""
	m.info = fmt.Sprintf("%s…", i.Label())
	return m.bus.Execute(m.ctx, command.NewRequest(i))
}

func (m *Model) handleCommandResultMsg(msg tea.Msg) tea.Cmd {
	result, ok := msg.(command.Result)
	if !ok {
		return nil
	}
	s := m.state
	s.EndLoad()
	if result.Err != nil {
		s.Error = fmt.Sprintf("%s: %v", result.Intent.Label(), result.Err)
		m.info = ""
		logging.Error(fmt.Errorf("execute %s: %w", result.Intent.Label(), result.Err))
		return nil
	}
	m.info = result.Outcome.Message
	if m.info == "" {
		m.info = fmt.Sprintf("%s done", result.Intent.Label())
	}
	m.applyOutcome(result.Intent, result.Outcome)
	m.refresh()
	return nil
}

// applyOutcome stores data returned by commands that have something to
// show.
func (m *Model) applyOutcome(i intent.Intent, out intent.Outcome) {
	s := m.state
	switch data := out.Data.(type) {
	case []models.IndexerTestResult:
		s.IndexerTests.SetItems(data)
	case models.IndexerTestResult:
		if data.Valid {
			s.IndexerTest = fmt.Sprintf("%s: OK", data.Name)
		} else {
			s.IndexerTest = fmt.Sprintf("%s: %s", data.Name, data.Failure)
		}
	case nil:
	default:
		logging.Errorf("ui: unexpected outcome %T for %s", out.Data, i.Kind)
	}
}
