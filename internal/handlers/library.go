package handlers

import (
	"cmp"
	"strings"

	"github.com/atomicstack/servarr-tui/internal/intent"
	"github.com/atomicstack/servarr-tui/internal/keys"
	"github.com/atomicstack/servarr-tui/internal/models"
	"github.com/atomicstack/servarr-tui/internal/route"
	"github.com/atomicstack/servarr-tui/internal/state"
	uistate "github.com/atomicstack/servarr-tui/internal/ui/state"
)

type libraryHandler struct{ base }

func newLibraryHandler(env *Env) Handler { return &libraryHandler{base{env}} }

func (h *libraryHandler) IsReady() bool {
	return h.state().Ready(h.state().Series)
}

func (h *libraryHandler) HandleTable() bool {
	return handleTable(h.env, h.state().Series, tableConfig[models.Series]{
		Table:       route.Series,
		Sort:        route.SeriesSortPrompt,
		SortOptions: SeriesSortOptions(),
		Search:      route.SearchSeries,
		SearchError: route.SearchSeriesError,
		SearchKey:   seriesTitle,
		Filter:      route.FilterSeries,
		FilterError: route.FilterSeriesError,
		FilterKey:   seriesTitle,
	})
}

func seriesTitle(s models.Series) string { return s.Title }

func (h *libraryHandler) Delete() {
	if h.block() != route.Series {
		return
	}
	s := h.state()
	series, ok := s.Series.Current()
	if !ok {
		missing("series", h.env.Route)
		return
	}
	s.DeleteSeries = state.NewDeleteSeriesForm(series)
	s.Push(route.New(route.DeleteSeriesPrompt))
}

func (h *libraryHandler) LeftRight(k keys.Key) {
	switch h.block() {
	case route.Series:
		changeTab(h.state(), k)
	case route.UpdateAllSeriesPrompt:
		togglePrompt(h.state(), k)
	}
}

func (h *libraryHandler) Submit() {
	s := h.state()
	switch h.block() {
	case route.Series:
		series, ok := s.Series.Current()
		if !ok {
			missing("series", h.env.Route)
			return
		}
		openSeriesDetails(s, series)
	case route.UpdateAllSeriesPrompt:
		confirmAndClose(s, intent.Intent{Kind: intent.UpdateAllSeries})
	}
}

func (h *libraryHandler) Esc() {
	switch h.block() {
	case route.UpdateAllSeriesPrompt:
		closePrompt(h.state())
	default:
		clearErrors(h.state())
	}
}

func (h *libraryHandler) OtherChar(k keys.Key) {
	s := h.state()
	switch h.block() {
	case route.Series:
		switch {
		case k.Is(keys.Edit):
			series, ok := s.Series.Current()
			if !ok {
				missing("series", h.env.Route)
				return
			}
			openEditSeries(s, series, route.Series)
		case k.Is(keys.Update):
			s.Push(route.New(route.UpdateAllSeriesPrompt))
		case k.Is(keys.Refresh):
			s.Refresh = true
		}
	case route.UpdateAllSeriesPrompt:
		if k.Is(keys.Confirm) {
			acceptAndClose(s, intent.Intent{Kind: intent.UpdateAllSeries})
		}
	}
}

// openSeriesDetails shows the seasons of series.
func openSeriesDetails(s *state.State, series models.Series) {
	s.Seasons.SetItems(series.Seasons)
	s.Seasons.ScrollToTop()
	s.SeriesHistory.SetItems(nil)
	s.SeriesTabs.SetIndex(0)
	s.Push(route.New(route.SeriesDetails))
}

// openEditSeries opens the edit form for series from the view ctx.
func openEditSeries(s *state.State, series models.Series, ctx route.Block) {
	s.EditSeries = state.NewEditSeriesForm(series, s.QualityProfiles, s.LanguageProfiles)
	s.Push(route.WithContext(route.EditSeriesPrompt, ctx))
}

// SeriesSortOptions lists the library sort options.
func SeriesSortOptions() []uistate.SortOption[models.Series] {
	return []uistate.SortOption[models.Series]{
		{Name: "Title", Cmp: func(a, b models.Series) int { return compareFold(a.Title, b.Title) }},
		{Name: "Year", Cmp: func(a, b models.Series) int { return cmp.Compare(a.Year, b.Year) }},
		{Name: "Network", Cmp: func(a, b models.Series) int { return compareFold(a.Network, b.Network) }},
		{Name: "Status", Cmp: func(a, b models.Series) int { return compareFold(a.Status, b.Status) }},
		{Name: "Rating", Cmp: func(a, b models.Series) int { return cmp.Compare(a.Rating, b.Rating) }},
		{Name: "Type", Cmp: func(a, b models.Series) int { return compareFold(a.SeriesType, b.SeriesType) }},
		{Name: "Monitored", Cmp: func(a, b models.Series) int { return compareBool(a.Monitored, b.Monitored) }},
	}
}

func compareFold(a, b string) int {
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}

// compareBool orders false before true.
func compareBool(a, b bool) int {
	switch {
	case a == b:
		return 0
	case !a:
		return -1
	}
	return 1
}
