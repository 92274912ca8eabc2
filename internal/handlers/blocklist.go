package handlers

import (
	"github.com/atomicstack/servarr-tui/internal/intent"
	"github.com/atomicstack/servarr-tui/internal/keys"
	"github.com/atomicstack/servarr-tui/internal/models"
	"github.com/atomicstack/servarr-tui/internal/route"
	uistate "github.com/atomicstack/servarr-tui/internal/ui/state"
)

type blocklistHandler struct{ base }

func newBlocklistHandler(env *Env) Handler { return &blocklistHandler{base{env}} }

func (h *blocklistHandler) IsReady() bool {
	return h.state().Ready(h.state().Blocklist)
}

func (h *blocklistHandler) HandleTable() bool {
	return handleTable(h.env, h.state().Blocklist, tableConfig[models.BlocklistItem]{
		Table:       route.Blocklist,
		Sort:        route.BlocklistSortPrompt,
		SortOptions: BlocklistSortOptions(),
	})
}

func (h *blocklistHandler) Delete() {
	if h.block() == route.Blocklist {
		h.state().Push(route.New(route.DeleteBlocklistItemPrompt))
	}
}

func (h *blocklistHandler) LeftRight(k keys.Key) {
	switch h.block() {
	case route.Blocklist:
		changeTab(h.state(), k)
	case route.DeleteBlocklistItemPrompt, route.BlocklistClearAllItemsPrompt:
		togglePrompt(h.state(), k)
	}
}

func (h *blocklistHandler) Submit() {
	s := h.state()
	switch h.block() {
	case route.Blocklist:
		s.Push(route.New(route.BlocklistItemDetails))
	case route.DeleteBlocklistItemPrompt, route.BlocklistClearAllItemsPrompt:
		confirmAndClose(s, h.intent())
	}
}

func (h *blocklistHandler) Esc() {
	s := h.state()
	switch h.block() {
	case route.DeleteBlocklistItemPrompt, route.BlocklistClearAllItemsPrompt:
		closePrompt(s)
	case route.BlocklistItemDetails, route.BlocklistSortPrompt:
		s.Pop()
	default:
		clearErrors(s)
	}
}

func (h *blocklistHandler) OtherChar(k keys.Key) {
	s := h.state()
	switch h.block() {
	case route.Blocklist:
		switch {
		case k.Is(keys.Refresh):
			s.Refresh = true
		case k.Is(keys.Clear):
			s.Push(route.New(route.BlocklistClearAllItemsPrompt))
		}
	case route.DeleteBlocklistItemPrompt, route.BlocklistClearAllItemsPrompt:
		if k.Is(keys.Confirm) {
			acceptAndClose(s, h.intent())
		}
	}
}

func (h *blocklistHandler) intent() intent.Intent {
	if h.block() == route.BlocklistClearAllItemsPrompt {
		return intent.Intent{Kind: intent.ClearBlocklist}
	}
	item, ok := h.state().Blocklist.Current()
	if !ok {
		missing("blocklist item", h.env.Route)
	}
	return intent.Intent{Kind: intent.DeleteBlocklistItem, ID: item.ID}
}

// BlocklistSortOptions lists the blocklist sort options.
func BlocklistSortOptions() []uistate.SortOption[models.BlocklistItem] {
	return []uistate.SortOption[models.BlocklistItem]{
		{Name: "Series Title", Cmp: func(a, b models.BlocklistItem) int { return compareFold(a.SeriesTitle, b.SeriesTitle) }},
		{Name: "Source Title", Cmp: func(a, b models.BlocklistItem) int { return compareFold(a.SourceTitle, b.SourceTitle) }},
		{Name: "Language", Cmp: func(a, b models.BlocklistItem) int { return compareFold(a.Language, b.Language) }},
		{Name: "Quality", Cmp: func(a, b models.BlocklistItem) int { return compareFold(a.Quality, b.Quality) }},
		{Name: "Date", Cmp: func(a, b models.BlocklistItem) int { return a.Date.Compare(b.Date) }},
	}
}

