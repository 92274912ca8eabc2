package state

import "github.com/atomicstack/servarr-tui/internal/route"

// Tabs tracks the active tab of a tab bar.
type Tabs struct {
	tabs   []route.Tab
	active int
}

// NewTabs returns a tab bar with the first tab active.
func NewTabs(tabs []route.Tab) *Tabs {
	return &Tabs{tabs: append([]route.Tab(nil), tabs...)}
}

// All returns the tabs. The returned slice must not be modified.
func (t *Tabs) All() []route.Tab {
	return t.tabs
}

// Index returns the active tab position.
func (t *Tabs) Index() int {
	return t.active
}

// Active returns the route of the active tab.
func (t *Tabs) Active() route.Route {
	if len(t.tabs) == 0 {
		return route.Route{}
	}
	return t.tabs[t.active].Route
}

// Next activates the following tab, wrapping.
func (t *Tabs) Next() route.Route {
	if len(t.tabs) > 0 {
		t.active = wrapDown(t.active, len(t.tabs))
	}
	return t.Active()
}

// Previous activates the preceding tab, wrapping.
func (t *Tabs) Previous() route.Route {
	if len(t.tabs) > 0 {
		t.active = wrapUp(t.active, len(t.tabs))
	}
	return t.Active()
}

// SetIndex activates the tab at idx, clamped.
func (t *Tabs) SetIndex(idx int) {
	t.active = clamp(idx, len(t.tabs))
}
