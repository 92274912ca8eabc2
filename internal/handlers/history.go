package handlers

import (
	"github.com/atomicstack/servarr-tui/internal/keys"
	"github.com/atomicstack/servarr-tui/internal/models"
	"github.com/atomicstack/servarr-tui/internal/route"
	uistate "github.com/atomicstack/servarr-tui/internal/ui/state"
)

type historyHandler struct{ base }

func newHistoryHandler(env *Env) Handler { return &historyHandler{base{env}} }

func (h *historyHandler) IsReady() bool {
	return h.state().Ready(h.state().History)
}

func (h *historyHandler) HandleTable() bool {
	return handleTable(h.env, h.state().History, tableConfig[models.HistoryItem]{
		Table:       route.History,
		Sort:        route.HistorySortPrompt,
		SortOptions: HistorySortOptions(),
		Search:      route.SearchHistory,
		SearchError: route.SearchHistoryError,
		SearchKey:   historySourceTitle,
		Filter:      route.FilterHistory,
		FilterError: route.FilterHistoryError,
		FilterKey:   historySourceTitle,
	})
}

func historySourceTitle(item models.HistoryItem) string { return item.SourceTitle }

func (h *historyHandler) LeftRight(k keys.Key) {
	if h.block() == route.History {
		changeTab(h.state(), k)
	}
}

func (h *historyHandler) Submit() {
	if h.block() == route.History {
		h.state().Push(route.New(route.HistoryItemDetails))
	}
}

func (h *historyHandler) Esc() {
	s := h.state()
	switch h.block() {
	case route.HistoryItemDetails, route.HistorySortPrompt:
		s.Pop()
	default:
		clearErrors(s)
	}
}

func (h *historyHandler) OtherChar(k keys.Key) {
	if h.block() == route.History && k.Is(keys.Refresh) {
		h.state().Refresh = true
	}
}

// HistorySortOptions lists the history sort options.
func HistorySortOptions() []uistate.SortOption[models.HistoryItem] {
	return []uistate.SortOption[models.HistoryItem]{
		{Name: "Source Title", Cmp: func(a, b models.HistoryItem) int { return compareFold(a.SourceTitle, b.SourceTitle) }},
		{Name: "Event Type", Cmp: func(a, b models.HistoryItem) int { return compareFold(a.EventType, b.EventType) }},
		{Name: "Language", Cmp: func(a, b models.HistoryItem) int { return compareFold(a.Language, b.Language) }},
		{Name: "Quality", Cmp: func(a, b models.HistoryItem) int { return compareFold(a.Quality, b.Quality) }},
		{Name: "Date", Cmp: func(a, b models.HistoryItem) int { return a.Date.Compare(b.Date) }},
	}
}
