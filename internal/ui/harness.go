package ui

import (
	"errors"
	"time"

	"github.com/atomicstack/servarr-tui/internal/keys"
	tea "github.com/charmbracelet/bubbletea"
)

// Harness drives the UI model programmatically for integration tests.
type Harness struct {
	model *Model
}

// NewHarness creates a harness for the provided model.
func NewHarness(model *Model) *Harness {
	return &Harness{model: model}
}

// Send routes a message through the model and executes any returned commands.
func (h *Harness) Send(msg tea.Msg) {
	if h.model == nil {
		return
	}
	mdl, cmd := h.model.Update(msg)
	if updated, ok := mdl.(*Model); ok {
		h.model = updated
	}
	h.processCmd(cmd)
}

// Press sends the key presses named by keys.Msg, in order.
func (h *Harness) Press(names ...string) {
	for _, name := range names {
		h.Send(keys.Msg(name))
	}
}

// Type sends each rune of text as its own key press.
func (h *Harness) Type(text string) {
	for _, r := range text {
		h.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func (h *Harness) processCmd(cmd tea.Cmd) {
	for cmd != nil {
		msg := cmd()
		if msg == nil {
			return
		}
		if batch, ok := msg.(tea.BatchMsg); ok {
			for _, c := range batch {
				h.processCmd(c)
			}
			return
		}
		if _, ok := msg.(tea.QuitMsg); ok {
			return
		}
		mdl, next := h.model.Update(msg)
		if updated, ok := mdl.(*Model); ok {
			h.model = updated
		}
		cmd = next
	}
}

// Settle applies watcher events until at least one has arrived and no
// fetch is pending. Events are applied directly rather than through the
// re-arming wait command a running program uses, which would block.
func (h *Harness) Settle(timeout time.Duration) error {
	w := h.model.backend
	if w == nil {
		return errors.New("settle: model has no watcher")
	}
	deadline := time.NewTimer(timeout)
	defer deadline.Stop()
	seen := false
	for !seen || h.model.state.IsLoading() {
		select {
		case evt, ok := <-w.Events():
			if !ok {
				return errors.New("settle: watcher stopped")
			}
			h.model.applyBackendEvent(evt)
			seen = true
		case <-deadline.C:
			return errors.New("settle: timed out waiting for backend events")
		}
	}
	return nil
}

// View returns the current view string.
func (h *Harness) View() string {
	if h.model == nil {
		return ""
	}
	return h.model.View()
}

// Model exposes the underlying model.
func (h *Harness) Model() *Model {
	return h.model
}
