package ui

import (
	"strings"
	"testing"
	"time"

	"github.com/atomicstack/servarr-tui/internal/backend"
	"github.com/atomicstack/servarr-tui/internal/demo"
	"github.com/atomicstack/servarr-tui/internal/route"
)

const settleTimeout = 2 * time.Second

func newDemoHarness(t *testing.T) *Harness {
	t.Helper()
	server := demo.NewServer()
	watcher := backend.NewWatcher(server, time.Hour, backend.KindSeries)
	t.Cleanup(func() {
		watcher.Stop()
		_ = watcher.Wait()
	})
	h := NewHarness(NewModel(Options{Width: 120, Height: 30, Watcher: watcher, Executor: server}))
	settle(t, h)
	return h
}

func settle(t *testing.T, h *Harness) {
	t.Helper()
	if err := h.Settle(settleTimeout); err != nil {
		t.Fatalf("%v", err)
	}
}

// openTab presses right until the tab titled title is active.
func openTab(t *testing.T, h *Harness, title string) {
	t.Helper()
	for i := 0; i < len(route.MainTabs); i++ {
		tabs := h.Model().State().Tabs
		if tabs.All()[tabs.Index()].Title == title {
			return
		}
		h.Press("right")
		settle(t, h)
	}
	t.Fatalf("tab %q not reached", title)
}

func TestDemoLibraryLoads(t *testing.T) {
	h := newDemoHarness(t)
	if got := h.Model().State().Series.Len(); got != 5 {
		t.Fatalf("expected 5 demo series, got %d", got)
	}
	if !strings.Contains(h.View(), "Severance") {
		t.Fatalf("expected library rows in view, got\n%s", h.View())
	}
}

func TestDemoDeleteBlocklistItemRefreshesTable(t *testing.T) {
	h := newDemoHarness(t)
	openTab(t, h, "Blocklist")
	s := h.Model().State()
	if got := s.Blocklist.Len(); got != 2 {
		t.Fatalf("expected 2 blocklist rows, got %d", got)
	}
	first, _ := s.Blocklist.Current()

	h.Press("delete", "right", "enter")
	settle(t, h)

	if got := s.Blocklist.Len(); got != 1 {
		t.Fatalf("expected 1 blocklist row after delete, got %d", got)
	}
	if strings.Contains(h.View(), first.SourceTitle) {
		t.Fatalf("expected %q gone from view, got\n%s", first.SourceTitle, h.View())
	}
	if s.Current() != route.New(route.Blocklist) {
		t.Fatalf("expected prompt closed, got %s", s.Current())
	}
}

func TestDemoAddRootFolder(t *testing.T) {
	h := newDemoHarness(t)
	openTab(t, h, "Root Folders")
	s := h.Model().State()
	before := s.RootFolders.Len()

	h.Press("a")
	h.Type("/media/tv")
	if !strings.Contains(h.View(), "/media/tv") {
		t.Fatalf("expected typed path in input line, got\n%s", h.View())
	}
	h.Press("enter")
	settle(t, h)

	if got := s.RootFolders.Len(); got != before+1 {
		t.Fatalf("expected %d root folders, got %d", before+1, got)
	}
	if !strings.Contains(h.View(), "/media/tv") {
		t.Fatalf("expected new folder in table, got\n%s", h.View())
	}
}

func TestDemoSeriesHistoryFollowsSelection(t *testing.T) {
	h := newDemoHarness(t)
	s := h.Model().State()
	series, ok := s.Series.Current()
	if !ok {
		t.Fatalf("expected a selected series")
	}
	h.Press("enter")
	settle(t, h)
	if s.Current() != route.New(route.SeriesDetails) {
		t.Fatalf("expected series details, got %s", s.Current())
	}
	for _, item := range s.SeriesHistory.Items() {
		if item.SeriesID != series.ID {
			t.Fatalf("history row for series %d shown under %d", item.SeriesID, series.ID)
		}
	}
}
