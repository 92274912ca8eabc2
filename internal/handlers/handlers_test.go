package handlers

import (
	"reflect"
	"testing"

	"github.com/atomicstack/servarr-tui/internal/intent"
	"github.com/atomicstack/servarr-tui/internal/keys"
	"github.com/atomicstack/servarr-tui/internal/models"
	"github.com/atomicstack/servarr-tui/internal/route"
	"github.com/atomicstack/servarr-tui/internal/state"
)

var testKeys = keys.Default()

func press(reg *Registry, s *state.State, names ...string) {
	for _, name := range names {
		Dispatch(reg, NewEnv(s, testKeys.Press(name, s.TextInput)))
	}
}

func newTestState(t *testing.T) (*Registry, *state.State) {
	t.Helper()
	s := state.New(state.Options{})
	s.Series.SetItems([]models.Series{
		{ID: 3, Title: "b", Path: "/tv/b", QualityProfileID: 1, LanguageProfileID: 1, SeriesType: "standard"},
		{ID: 2, Title: "a", Path: "/tv/a"},
		{ID: 1, Title: "c", Path: "/tv/c"},
	})
	s.QualityProfiles = []models.Profile{{ID: 1, Name: "HD"}}
	s.LanguageProfiles = []models.Profile{{ID: 1, Name: "English"}}
	return BuildRegistry(), s
}

func seriesIDs(s *state.State) []int64 {
	var ids []int64
	for _, row := range s.Series.Items() {
		ids = append(ids, row.ID)
	}
	return ids
}

func TestEveryBlockHasExactlyOneOwner(t *testing.T) {
	reg := BuildRegistry()
	for _, b := range route.All() {
		r := route.New(b)
		owners := reg.Owners(r)
		if len(owners) != 1 {
			t.Fatalf("block %s has %d owners", b, len(owners))
		}
		if got := reg.Resolve(r); got != owners[0] {
			t.Fatalf("block %s resolves to %s, owned by %s", b, got.Name, owners[0].Name)
		}
		if !reg.Root().Accepts(r) {
			t.Fatalf("root does not accept %s", b)
		}
	}
}

func TestContextDoesNotChangeOwner(t *testing.T) {
	reg := BuildRegistry()
	a := reg.Resolve(route.WithContext(route.EditSeriesPrompt, route.Series))
	b := reg.Resolve(route.WithContext(route.EditSeriesPrompt, route.SeriesDetails))
	if a != b || a.Name != "edit-series" {
		t.Fatalf("expected edit-series for both contexts, got %s and %s", a.Name, b.Name)
	}
}

func TestUnknownRouteFallsBackToRoot(t *testing.T) {
	reg := BuildRegistry()
	if got := reg.Resolve(route.Route{}); got != reg.Root() {
		t.Fatalf("expected root for an unowned route, got %s", got.Name)
	}
	s := state.New(state.Options{})
	env := &Env{State: s, Key: testKeys.Press("enter", false), Route: route.Route{}}
	if !Dispatch(reg, env) {
		t.Fatalf("expected default handler to accept the press")
	}
	if s.Nav.Len() != 1 {
		t.Fatalf("expected default handler to leave the stack alone")
	}
}

type snapshot struct {
	Routes    []route.Route
	Series    []models.Series
	Index     int
	Confirm   bool
	Pending   intent.Intent
	HasIntent bool
	TextInput bool
	Error     string
	Refresh   bool
}

func snap(s *state.State) snapshot {
	pending, ok := s.Prompt.Pending()
	return snapshot{
		Routes:    s.Nav.Routes(),
		Series:    s.Series.Items(),
		Index:     s.Series.Index(),
		Confirm:   s.Prompt.Confirmed(),
		Pending:   pending,
		HasIntent: ok,
		TextInput: s.TextInput,
		Error:     s.Error,
		Refresh:   s.Refresh,
	}
}

func TestNotReadyHandlersIgnoreEveryKey(t *testing.T) {
	names := []string{
		"up", "down", "left", "right", "home", "end", "pgup", "pgdown",
		"delete", "backspace", "enter", "esc", "ctrl+s", "ctrl+r",
		"o", "s", "f", "a", "e", "u", "c", "S", "t", "T", "z", "L", "x",
	}
	for _, b := range route.All() {
		reg, s := newTestState(t)
		s.Push(route.New(b))
		s.Error = "stale"
		s.BeginLoad()
		before := snap(s)
		for _, name := range names {
			if Dispatch(reg, NewEnv(s, testKeys.Press(name, s.TextInput))) {
				t.Fatalf("%s: %q dispatched while loading", b, name)
			}
		}
		if after := snap(s); !reflect.DeepEqual(before, after) {
			t.Fatalf("%s: state changed while loading\nbefore %+v\nafter  %+v", b, before, after)
		}
	}
}

func TestEmptyLibraryIsNotReady(t *testing.T) {
	reg := BuildRegistry()
	s := state.New(state.Options{})
	press(reg, s, "o")
	if s.Current() != route.New(route.Series) {
		t.Fatalf("expected sort prompt to stay closed, got %s", s.Current())
	}
}

func TestSortThenNoneRestoresIDOrder(t *testing.T) {
	reg, s := newTestState(t)
	press(reg, s, "o")
	if s.Current() != route.New(route.SeriesSortPrompt) {
		t.Fatalf("expected sort prompt, got %s", s.Current())
	}
	press(reg, s, "down", "enter")
	if got, want := seriesIDs(s), []int64{2, 3, 1}; !reflect.DeepEqual(got, want) {
		t.Fatalf("title sort: expected %v, got %v", want, got)
	}
	if s.Current() != route.New(route.Series) {
		t.Fatalf("expected sort prompt closed, got %s", s.Current())
	}
	press(reg, s, "o", "home", "enter")
	if got, want := seriesIDs(s), []int64{1, 2, 3}; !reflect.DeepEqual(got, want) {
		t.Fatalf("none sort: expected %v, got %v", want, got)
	}
}

func TestSortEscKeepsOrder(t *testing.T) {
	reg, s := newTestState(t)
	press(reg, s, "o", "down", "esc")
	if got, want := seriesIDs(s), []int64{3, 2, 1}; !reflect.DeepEqual(got, want) {
		t.Fatalf("expected insertion order %v, got %v", want, got)
	}
}

func TestSearchMovesCursor(t *testing.T) {
	reg, s := newTestState(t)
	press(reg, s, "s")
	if !s.TextInput || s.Current() != route.New(route.SearchSeries) {
		t.Fatalf("expected focused search box, got %s", s.Current())
	}
	press(reg, s, "C", "enter")
	row, ok := s.Series.Current()
	if !ok || row.Title != "c" {
		t.Fatalf("expected cursor on c, got %+v", row)
	}
	if s.TextInput || s.Current() != route.New(route.Series) {
		t.Fatalf("expected search closed, got %s", s.Current())
	}
}

func TestSearchNoMatchShowsError(t *testing.T) {
	reg, s := newTestState(t)
	press(reg, s, "down", "s", "z", "z", "backspace", "enter")
	if s.Current() != route.New(route.SearchSeriesError) {
		t.Fatalf("expected search error route, got %s", s.Current())
	}
	if s.Series.Index() != 1 {
		t.Fatalf("expected cursor unchanged, got %d", s.Series.Index())
	}
	press(reg, s, "esc")
	if s.Current() != route.New(route.Series) {
		t.Fatalf("expected library after esc, got %s", s.Current())
	}
}

func TestFilterRoundTrip(t *testing.T) {
	reg, s := newTestState(t)
	press(reg, s, "f", "a", "enter")
	if !s.Series.Filtered() || s.Series.Len() != 1 {
		t.Fatalf("expected single row filter, got %d rows", s.Series.Len())
	}
	press(reg, s, "esc")
	if s.Series.Filtered() || s.Series.Len() != 3 {
		t.Fatalf("expected filter reset, got %d rows", s.Series.Len())
	}
	press(reg, s, "f", "q", "enter")
	if s.Current() != route.New(route.FilterSeriesError) || s.Series.Filtered() {
		t.Fatalf("expected filter error with no filtered view, got %s", s.Current())
	}
}

func TestEmptyFilterShowsError(t *testing.T) {
	reg, s := newTestState(t)
	press(reg, s, "f", "enter")
	if s.Current() != route.New(route.FilterSeriesError) {
		t.Fatalf("expected filter error route, got %s", s.Current())
	}
	if s.Series.Filtered() || s.Series.Len() != 3 {
		t.Fatalf("expected unfiltered library, got %d rows", s.Series.Len())
	}
}

func TestTabSwitchKeepsStackLength(t *testing.T) {
	reg, s := newTestState(t)
	press(reg, s, "right")
	if s.Current() != route.New(route.Downloads) || s.Nav.Len() != 1 {
		t.Fatalf("expected downloads tab at depth 1, got %s at %d", s.Current(), s.Nav.Len())
	}
	s.Downloads.SetItems([]models.Download{{ID: 1}})
	press(reg, s, "left", "left")
	if s.Current() != route.New(route.System) || s.Nav.Len() != 1 {
		t.Fatalf("expected system tab, got %s", s.Current())
	}
}

func TestBlocklistPromptFlows(t *testing.T) {
	reg, s := newTestState(t)
	s.Nav.PopAndPush(route.New(route.Blocklist))
	s.Blocklist.SetItems([]models.BlocklistItem{{ID: 5}, {ID: 9}})

	press(reg, s, "delete", "enter")
	if _, ok := s.Prompt.Take(); ok {
		t.Fatalf("expected declined prompt to record nothing")
	}
	if s.Current() != route.New(route.Blocklist) {
		t.Fatalf("expected prompt closed, got %s", s.Current())
	}

	press(reg, s, "down", "delete", "right", "enter")
	got, ok := s.Prompt.Take()
	if !ok || got.Kind != intent.DeleteBlocklistItem || got.ID != 9 {
		t.Fatalf("unexpected intent %+v", got)
	}
	if s.Prompt.Confirmed() {
		t.Fatalf("expected confirmation reset after closing")
	}

	press(reg, s, "c", "ctrl+s")
	got, ok = s.Prompt.Take()
	if !ok || got.Kind != intent.ClearBlocklist {
		t.Fatalf("expected clear blocklist intent, got %+v", got)
	}
	if s.Current() != route.New(route.Blocklist) || s.Prompt.Confirmed() {
		t.Fatalf("expected confirm key to close and reset the prompt, got %s", s.Current())
	}
}

func TestPromptEscClearsConfirmation(t *testing.T) {
	reg, s := newTestState(t)
	press(reg, s, "u", "left", "esc")
	if s.Prompt.Confirmed() || s.Current() != route.New(route.Series) {
		t.Fatalf("expected closed and reset prompt")
	}
	if _, ok := s.Prompt.Pending(); ok {
		t.Fatalf("expected no intent")
	}
}

func TestDeleteSeriesFlow(t *testing.T) {
	reg, s := newTestState(t)
	press(reg, s, "delete", "enter", "down", "down", "right", "enter")
	got, ok := s.Prompt.Take()
	if !ok || got.Kind != intent.DeleteSeries || got.ID != 3 {
		t.Fatalf("unexpected intent %+v", got)
	}
	want := models.DeleteSeriesParams{ID: 3, DeleteFiles: true}
	if got.Payload != want {
		t.Fatalf("expected %+v, got %+v", want, got.Payload)
	}
	if s.DeleteSeries != nil || s.Current() != route.New(route.Series) {
		t.Fatalf("expected form closed")
	}
}

func TestEditSeriesFlow(t *testing.T) {
	reg, s := newTestState(t)
	press(reg, s, "e")
	if s.Current() != route.WithContext(route.EditSeriesPrompt, route.Series) {
		t.Fatalf("expected edit prompt with library context, got %s", s.Current())
	}
	press(reg, s, "enter")
	if s.EditSeries.Monitored != true {
		t.Fatalf("expected monitored toggled on")
	}
	press(reg, s, "down", "down", "down", "down", "down", "enter")
	if s.Current() != route.WithContext(route.EditSeriesPathInput, route.Series) || !s.TextInput {
		t.Fatalf("expected path input, got %s", s.Current())
	}
	press(reg, s, "j", "k", "enter", "down", "down", "ctrl+s")
	got, ok := s.Prompt.Take()
	if !ok || got.Kind != intent.EditSeries {
		t.Fatalf("unexpected intent %+v", got)
	}
	p := got.Payload.(models.EditSeriesParams)
	if p.Path != "/tv/bjk" || !p.Monitored || p.QualityProfileID != 1 {
		t.Fatalf("unexpected params %+v", p)
	}
	if s.Current() != route.New(route.Series) {
		t.Fatalf("expected library after confirm, got %s", s.Current())
	}
}

func TestSeriesDetailsFlow(t *testing.T) {
	reg, s := newTestState(t)
	rows := s.Series.Items()
	rows[0].Seasons = []models.Season{{SeriesID: 3, Number: 1}, {SeriesID: 3, Number: 2}}
	s.Series.SetItems(rows)

	press(reg, s, "enter")
	if s.Current() != route.New(route.SeriesDetails) || s.Seasons.Len() != 2 {
		t.Fatalf("expected season table, got %s", s.Current())
	}
	press(reg, s, "down", "enter", "ctrl+s")
	got, ok := s.Prompt.Take()
	want := models.SeasonRef{SeriesID: 3, Season: 2}
	if !ok || got.Kind != intent.SearchSeason || got.Payload != want {
		t.Fatalf("unexpected intent %+v", got)
	}
	press(reg, s, "right")
	if s.Current() != route.New(route.SeriesHistory) || s.Nav.Len() != 2 {
		t.Fatalf("expected history tab, got %s", s.Current())
	}
	press(reg, s, "esc")
	if s.Current() != route.New(route.Series) {
		t.Fatalf("expected library, got %s", s.Current())
	}
}

func TestAddRootFolderOnEmptyTable(t *testing.T) {
	reg, s := newTestState(t)
	s.Nav.PopAndPush(route.New(route.RootFolders))
	press(reg, s, "a", "/tv", "enter")
	got, ok := s.Prompt.Take()
	if !ok || got.Kind != intent.AddRootFolder || got.Payload != "/tv" {
		t.Fatalf("unexpected intent %+v", got)
	}
	press(reg, s, "a", "esc")
	if _, ok := s.Prompt.Take(); ok || s.TextInput {
		t.Fatalf("expected cancelled add to record nothing")
	}
}

func TestIndexerSettingsFlow(t *testing.T) {
	reg, s := newTestState(t)
	s.Nav.PopAndPush(route.New(route.Indexers))
	s.Indexers.SetItems([]models.Indexer{{ID: 1, Name: "a"}})
	s.IndexerSettings = &models.IndexerSettings{MinimumAge: 1}

	press(reg, s, "S", "enter", "up", "k", "3", "enter", "up", "ctrl+s")
	got, ok := s.Prompt.Take()
	if !ok || got.Kind != intent.EditIndexerSettings {
		t.Fatalf("unexpected intent %+v", got)
	}
	if v := got.Payload.(models.IndexerSettings).MinimumAge; v != 23 {
		t.Fatalf("expected minimum age 23, got %d", v)
	}
}

func TestEditIndexerRejectsBadPriority(t *testing.T) {
	reg, s := newTestState(t)
	s.Nav.PopAndPush(route.New(route.Indexers))
	s.Indexers.SetItems([]models.Indexer{{ID: 4, Name: "a", Protocol: models.ProtocolUsenet, Priority: 25}})

	press(reg, s, "enter", "down", "down", "down", "right", "enter", "x", "enter", "down", "ctrl+s")
	if s.Error == "" {
		t.Fatalf("expected a priority error")
	}
	if s.Current() != route.New(route.EditIndexerPrompt) {
		t.Fatalf("expected prompt to stay open, got %s", s.Current())
	}
	if _, ok := s.Prompt.Pending(); ok {
		t.Fatalf("expected no intent for an invalid form")
	}
	press(reg, s, "up", "enter", "backspace", "enter", "down", "ctrl+s")
	got, ok := s.Prompt.Take()
	if !ok || got.Payload.(models.EditIndexerParams).Priority != 25 {
		t.Fatalf("unexpected intent %+v", got)
	}
}

func TestIndexerTestRecordsWithoutPrompt(t *testing.T) {
	reg, s := newTestState(t)
	s.Nav.PopAndPush(route.New(route.Indexers))
	s.Indexers.SetItems([]models.Indexer{{ID: 7}})
	press(reg, s, "t")
	got, ok := s.Prompt.Take()
	if !ok || got.Kind != intent.TestIndexer || got.ID != 7 {
		t.Fatalf("unexpected intent %+v", got)
	}
	if s.Current() != route.New(route.TestIndexer) {
		t.Fatalf("expected test route, got %s", s.Current())
	}
	press(reg, s, "esc")
	if s.Current() != route.New(route.Indexers) {
		t.Fatalf("expected indexers, got %s", s.Current())
	}
}

func TestSystemTaskStart(t *testing.T) {
	reg, s := newTestState(t)
	s.Nav.PopAndPush(route.New(route.System))
	s.Tasks.SetItems([]models.Task{{Name: "Backup", TaskName: "Backup"}, {Name: "Refresh", TaskName: "RefreshSeries"}})
	press(reg, s, "t", "end", "enter", "ctrl+s")
	got, ok := s.Prompt.Take()
	if !ok || got.Kind != intent.StartTask || got.Payload != "RefreshSeries" {
		t.Fatalf("unexpected intent %+v", got)
	}
	if s.Current() != route.New(route.SystemTasks) {
		t.Fatalf("expected tasks table, got %s", s.Current())
	}
}

func TestEmptySystemViewsCanBeClosed(t *testing.T) {
	subViews := []route.Block{route.SystemTasks, route.SystemQueuedEvents, route.SystemLogs, route.SystemUpdates}
	for _, b := range subViews {
		reg := BuildRegistry()
		s := state.New(state.Options{Root: route.New(route.System)})
		s.Push(route.New(b))
		press(reg, s, "down", "enter")
		if s.Current() != route.New(b) {
			t.Fatalf("%s: expected to stay on the empty view, got %s", b, s.Current())
		}
		press(reg, s, "esc")
		if s.Current() != route.New(route.System) || s.Nav.Len() != 1 {
			t.Fatalf("%s: expected esc to return to system, got %s at depth %d", b, s.Current(), s.Nav.Len())
		}
	}
}

func TestEmptySystemTabAllowsTabChange(t *testing.T) {
	reg := BuildRegistry()
	s := state.New(state.Options{Root: route.New(route.System)})
	press(reg, s, "left")
	if s.Current() != route.New(route.Indexers) {
		t.Fatalf("expected indexers tab, got %s", s.Current())
	}
}
