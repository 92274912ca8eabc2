package ui

import (
	"github.com/atomicstack/servarr-tui/internal/backend"
	"github.com/atomicstack/servarr-tui/internal/logging/events"
	"github.com/atomicstack/servarr-tui/internal/route"
	tea "github.com/charmbracelet/bubbletea"
)

func waitForBackendEvent(w *backend.Watcher) tea.Cmd {
	return func() tea.Msg {
		evt, ok := <-w.Events()
		if !ok {
			return backendDoneMsg{}
		}
		return backendEventMsg{event: evt}
	}
}

type backendEventMsg struct {
	event backend.Event
}

type backendDoneMsg struct{}

func (m *Model) handleBackendEventMsg(msg tea.Msg) tea.Cmd {
	eventMsg, ok := msg.(backendEventMsg)
	if !ok {
		return nil
	}
	m.applyBackendEvent(eventMsg.event)
	if m.backend != nil {
		return waitForBackendEvent(m.backend)
	}
	return nil
}

func (m *Model) handleBackendDoneMsg(msg tea.Msg) tea.Cmd {
	m.backend = nil
	return nil
}

func (m *Model) applyBackendEvent(evt backend.Event) {
	if m.backendState == nil {
		m.backendState = make(map[backend.Kind]error)
	}
	m.backendState[evt.Kind] = evt.Err
	if evt.Err != nil {
		m.backendLastErr = evt.Err.Error()
	}
	m.dispatcher.Handle(evt)
	if warn, _ := m.hasBackendIssue(); !warn {
		m.backendLastErr = ""
	}
}

func (m *Model) hasBackendIssue() (bool, string) {
	for _, err := range m.backendState {
		if err != nil {
			msg := m.backendLastErr
			if msg == "" {
				msg = err.Error()
			}
			return true, msg
		}
	}
	return false, ""
}

// refresh asks the watcher for the data behind the current view. Each
// accepted request holds the engine in the loading state until its event
// arrives.
func (m *Model) refresh() {
	if m.backend == nil {
		return
	}
	reqs := m.requestsFor(m.state.Current())
	kinds := make([]string, 0, len(reqs))
	for _, req := range reqs {
		if m.backend.Trigger(req) {
			m.state.BeginLoad()
			kinds = append(kinds, req.Kind.String())
		}
	}
	if len(kinds) > 0 {
		events.UI.Refresh(m.state.Current().String(), kinds)
	}
}

// requestsFor lists the fetches that back the view at r. Prompts and text
// boxes return nothing; their view's data is already loaded.
func (m *Model) requestsFor(r route.Route) []backend.Request {
	one := func(kinds ...backend.Kind) []backend.Request {
		reqs := make([]backend.Request, len(kinds))
		for i, k := range kinds {
			reqs[i] = backend.Request{Kind: k}
		}
		return reqs
	}
	switch r.Block {
	case route.Series:
		return one(backend.KindSeries, backend.KindProfiles)
	case route.SeriesDetails, route.SeriesHistory:
		series, ok := m.state.Series.Current()
		if !ok {
			return nil
		}
		return []backend.Request{
			{Kind: backend.KindSeries},
			{Kind: backend.KindSeriesHistory, ID: series.ID},
		}
	case route.Downloads:
		return one(backend.KindDownloads)
	case route.Blocklist:
		return one(backend.KindBlocklist)
	case route.History:
		return one(backend.KindHistory)
	case route.RootFolders:
		return one(backend.KindRootFolders)
	case route.Indexers:
		return one(backend.KindIndexers, backend.KindIndexerSettings)
	case route.System:
		return one(backend.KindTasks, backend.KindQueuedEvents, backend.KindLogs)
	case route.SystemTasks:
		return one(backend.KindTasks)
	case route.SystemQueuedEvents:
		return one(backend.KindQueuedEvents)
	case route.SystemLogs:
		return one(backend.KindLogs)
	case route.SystemUpdates:
		return one(backend.KindUpdates)
	}
	return nil
}
