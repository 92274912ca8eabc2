package handlers

import (
	"github.com/atomicstack/servarr-tui/internal/keys"
	"github.com/atomicstack/servarr-tui/internal/models"
	"github.com/atomicstack/servarr-tui/internal/route"
)

type systemHandler struct{ base }

func newSystemHandler(env *Env) Handler { return &systemHandler{base{env}} }

// IsReady only waits for loads. An empty system view must still accept esc
// and tab changes or the user could not leave it.
func (h *systemHandler) IsReady() bool {
	return !h.state().IsLoading()
}

func (h *systemHandler) HandleTable() bool {
	s := h.state()
	switch h.block() {
	case route.SystemLogs:
		return handleTable(h.env, s.Logs, tableConfig[models.LogEntry]{Table: route.SystemLogs})
	case route.SystemQueuedEvents:
		return handleTable(h.env, s.QueuedEvents, tableConfig[models.QueuedEvent]{Table: route.SystemQueuedEvents})
	case route.SystemUpdates:
		return handleTable(h.env, s.Updates, tableConfig[models.Update]{Table: route.SystemUpdates})
	}
	return false
}

func (h *systemHandler) LeftRight(k keys.Key) {
	if h.block() == route.System {
		changeTab(h.state(), k)
	}
}

func (h *systemHandler) Esc() {
	s := h.state()
	switch h.block() {
	case route.SystemLogs, route.SystemQueuedEvents, route.SystemUpdates:
		s.Pop()
	default:
		clearErrors(s)
	}
}

func (h *systemHandler) OtherChar(k keys.Key) {
	s := h.state()
	if h.block() != route.System {
		return
	}
	switch {
	case k.Is(keys.Tasks):
		s.Push(route.New(route.SystemTasks))
	case k.Is(keys.Events):
		s.Push(route.New(route.SystemQueuedEvents))
	case k.Is(keys.Logs):
		s.Push(route.New(route.SystemLogs))
	case k.Is(keys.Update):
		s.Push(route.New(route.SystemUpdates))
	case k.Is(keys.Refresh):
		s.Refresh = true
	}
}
