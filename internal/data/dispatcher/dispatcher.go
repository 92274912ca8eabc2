// Package dispatcher applies backend events to the engine state. It is the
// only writer of table rows outside the key handlers.
package dispatcher

import (
	"fmt"

	"github.com/atomicstack/servarr-tui/internal/backend"
	"github.com/atomicstack/servarr-tui/internal/logging"
	"github.com/atomicstack/servarr-tui/internal/logging/events"
	"github.com/atomicstack/servarr-tui/internal/models"
	"github.com/atomicstack/servarr-tui/internal/state"
)

// Result reports what an event changed.
type Result struct {
	Kind    backend.Kind
	Updated bool
	Rows    int
}

type Dispatcher struct {
	state *state.State
}

func New(s *state.State) *Dispatcher {
	return &Dispatcher{state: s}
}

// Handle applies evt. Triggered events release the load they were started
// with; errors are shown in the status line and leave the rows untouched.
func (d *Dispatcher) Handle(evt backend.Event) Result {
	s := d.state
	res := Result{Kind: evt.Kind}
	if evt.Triggered {
		s.EndLoad()
	}
	if evt.Err != nil {
		s.Error = fmt.Sprintf("refresh %s: %v", evt.Kind, evt.Err)
		return res
	}
	switch data := evt.Data.(type) {
	case []models.Series:
		res.Rows = len(data)
		s.Series.SetItems(data)
		syncSeasons(s)
	case []models.HistoryItem:
		res.Rows = len(data)
		if evt.Kind == backend.KindSeriesHistory {
			if series, ok := s.Series.Current(); !ok || series.ID != evt.ID {
				return res
			}
			s.SeriesHistory.SetItems(data)
		} else {
			s.History.SetItems(data)
		}
	case backend.Profiles:
		res.Rows = len(data.Quality) + len(data.Language)
		s.QualityProfiles = data.Quality
		s.LanguageProfiles = data.Language
	case []models.Download:
		res.Rows = len(data)
		s.Downloads.SetItems(data)
	case []models.BlocklistItem:
		res.Rows = len(data)
		s.Blocklist.SetItems(data)
	case []models.RootFolder:
		res.Rows = len(data)
		s.RootFolders.SetItems(data)
	case []models.Indexer:
		res.Rows = len(data)
		s.Indexers.SetItems(data)
	case models.IndexerSettings:
		res.Rows = 1
		settings := data
		s.IndexerSettings = &settings
	case []models.Task:
		res.Rows = len(data)
		s.Tasks.SetItems(data)
	case []models.QueuedEvent:
		res.Rows = len(data)
		s.QueuedEvents.SetItems(data)
	case []models.LogEntry:
		res.Rows = len(data)
		s.Logs.SetItems(data)
	case []models.Update:
		res.Rows = len(data)
		s.Updates.SetItems(data)
	default:
		logging.Errorf("dispatcher: unexpected %T for %s", evt.Data, evt.Kind)
		return res
	}
	res.Updated = true
	events.Backend.Poll(evt.Kind.String(), res.Rows)
	return res
}

// syncSeasons refreshes the open seasons table from the selected series.
func syncSeasons(s *state.State) {
	rows := s.Seasons.Items()
	if len(rows) == 0 {
		return
	}
	series, ok := s.Series.Current()
	if !ok || series.ID != rows[0].SeriesID {
		return
	}
	s.Seasons.SetItems(series.Seasons)
}
