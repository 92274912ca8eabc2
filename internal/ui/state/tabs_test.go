package state

import (
	"testing"

	"github.com/atomicstack/servarr-tui/internal/route"
)

func TestTabsWrap(t *testing.T) {
	tabs := NewTabs(route.MainTabs)
	if got := tabs.Previous(); got.Block != route.System {
		t.Fatalf("expected wrap to system, got %s", got)
	}
	if got := tabs.Next(); got.Block != route.Series {
		t.Fatalf("expected wrap to series, got %s", got)
	}
	tabs.SetIndex(1)
	if got := tabs.Active(); got.Block != route.Downloads {
		t.Fatalf("expected downloads, got %s", got)
	}
}
