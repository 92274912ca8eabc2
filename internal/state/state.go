// Package state owns everything the key handlers mutate: the navigation
// stack, the table collections, the open prompt forms and the pending
// confirmation. It is only touched from the Bubble Tea update loop.
package state

import (
	"cmp"

	"github.com/atomicstack/servarr-tui/internal/models"
	"github.com/atomicstack/servarr-tui/internal/nav"
	"github.com/atomicstack/servarr-tui/internal/route"
	uistate "github.com/atomicstack/servarr-tui/internal/ui/state"
)

// Options configures a new State.
type Options struct {
	// Root is the first route on the stack. Defaults to the library.
	Root route.Route
	// Matcher is used by every search and filter. Defaults to substring
	// matching.
	Matcher uistate.Matcher
}

// State is the single owner of the engine's mutable data.
type State struct {
	Nav        *nav.Stack
	Prompt     uistate.Prompt
	Tabs       *uistate.Tabs
	SeriesTabs *uistate.Tabs

	// TextInput is set while a text box has focus so printable keys are
	// typed instead of triggering bindings.
	TextInput bool
	// Error is shown in the status line until cleared.
	Error string
	// Refresh asks the host to reload the data behind the current view.
	Refresh bool

	loading int

	Series        *uistate.Collection[models.Series]
	Seasons       *uistate.Collection[models.Season]
	SeriesHistory *uistate.Collection[models.HistoryItem]
	Downloads     *uistate.Collection[models.Download]
	Blocklist     *uistate.Collection[models.BlocklistItem]
	History       *uistate.Collection[models.HistoryItem]
	RootFolders   *uistate.Collection[models.RootFolder]
	Indexers      *uistate.Collection[models.Indexer]
	IndexerTests  *uistate.Collection[models.IndexerTestResult]
	Tasks         *uistate.Collection[models.Task]
	QueuedEvents  *uistate.Collection[models.QueuedEvent]
	Logs          *uistate.Collection[models.LogEntry]
	Updates       *uistate.Collection[models.Update]

	QualityProfiles  []models.Profile
	LanguageProfiles []models.Profile
	IndexerSettings  *models.IndexerSettings
	IndexerTest      string

	DeleteSeries    *DeleteSeriesForm
	EditSeries      *EditSeriesForm
	EditIndexer     *EditIndexerForm
	SettingsForm    *IndexerSettingsForm
	RootFolderInput *uistate.Input
}

// New returns an empty State positioned on opts.Root.
func New(opts Options) *State {
	root := opts.Root
	if root.Block == route.None {
		root = route.New(route.Series)
	}
	matcher := opts.Matcher
	if matcher == nil {
		matcher = uistate.SubstringMatcher
	}
	s := &State{
		Nav:        nav.New(root),
		Tabs:       uistate.NewTabs(route.MainTabs),
		SeriesTabs: uistate.NewTabs(route.SeriesInfoTabs),
	}
	for i, tab := range route.MainTabs {
		if tab.Route == root {
			s.Tabs.SetIndex(i)
		}
	}

	s.Series = newCollection(matcher, func(v models.Series) int64 { return v.ID })
	s.Seasons = newCollection(matcher, func(v models.Season) int64 { return int64(v.Number) })
	s.SeriesHistory = newCollection(matcher, func(v models.HistoryItem) int64 { return v.ID })
	s.Downloads = newCollection(matcher, func(v models.Download) int64 { return v.ID })
	s.Blocklist = newCollection(matcher, func(v models.BlocklistItem) int64 { return v.ID })
	s.History = newCollection(matcher, func(v models.HistoryItem) int64 { return v.ID })
	s.RootFolders = newCollection(matcher, func(v models.RootFolder) int64 { return v.ID })
	s.Indexers = newCollection(matcher, func(v models.Indexer) int64 { return v.ID })
	s.QueuedEvents = newCollection(matcher, func(v models.QueuedEvent) int64 { return v.ID })

	s.IndexerTests = uistate.NewCollection[models.IndexerTestResult](nil)
	s.Tasks = uistate.NewCollection[models.Task](nil)
	s.Tasks.SetEqual(func(a, b models.Task) bool { return a.TaskName == b.TaskName })
	s.Logs = uistate.NewCollection[models.LogEntry](nil)
	s.Updates = uistate.NewCollection[models.Update](nil)
	return s
}

// newCollection returns a collection ordered and identified by id.
func newCollection[T any](matcher uistate.Matcher, id func(T) int64) *uistate.Collection[T] {
	c := uistate.NewCollection[T](nil)
	c.SetMatcher(matcher)
	c.SetEqual(func(a, b T) bool { return id(a) == id(b) })
	c.SetBaseOrder(func(a, b T) int { return cmp.Compare(id(a), id(b)) })
	return c
}

// IsLoading reports whether a request started by the host is in flight.
func (s *State) IsLoading() bool {
	return s.loading > 0
}

// BeginLoad marks a request in flight.
func (s *State) BeginLoad() {
	s.loading++
}

// EndLoad marks a request finished.
func (s *State) EndLoad() {
	if s.loading > 0 {
		s.loading--
	}
}

// Current returns the active route.
func (s *State) Current() route.Route {
	return s.Nav.Current()
}

// Push opens r.
func (s *State) Push(r route.Route) {
	s.Nav.Push(r)
}

// Pop closes the current route. The root is never popped.
func (s *State) Pop() bool {
	return s.Nav.Pop()
}

// PushTextInput opens r and gives keyboard focus to its text box.
func (s *State) PushTextInput(r route.Route) {
	s.Nav.Push(r)
	s.TextInput = true
}

// PopTextInput closes a text box route.
func (s *State) PopTextInput() {
	s.Nav.Pop()
	s.TextInput = false
}

// TakeRefresh reports and clears a pending refresh request.
func (s *State) TakeRefresh() bool {
	r := s.Refresh
	s.Refresh = false
	return r
}

// Ready is the readiness rule shared by the table views: nothing in flight
// and the backing collection has rows.
func (s *State) Ready(c interface{ Empty() bool }) bool {
	return !s.IsLoading() && !c.Empty()
}

// ProfileName returns the name of the profile with id, or "".
func ProfileName(profiles []models.Profile, id int64) string {
	for _, p := range profiles {
		if p.ID == id {
			return p.Name
		}
	}
	return ""
}
