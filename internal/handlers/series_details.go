package handlers

import (
	"github.com/atomicstack/servarr-tui/internal/intent"
	"github.com/atomicstack/servarr-tui/internal/keys"
	"github.com/atomicstack/servarr-tui/internal/models"
	"github.com/atomicstack/servarr-tui/internal/route"
)

type seriesDetailsHandler struct{ base }

func newSeriesDetailsHandler(env *Env) Handler { return &seriesDetailsHandler{base{env}} }

func (h *seriesDetailsHandler) IsReady() bool {
	if h.state().IsLoading() {
		return false
	}
	_, ok := h.state().Series.Current()
	return ok
}

func (h *seriesDetailsHandler) HandleTable() bool {
	s := h.state()
	if h.block() == route.SeriesHistory {
		return handleTable(h.env, s.SeriesHistory, tableConfig[models.HistoryItem]{Table: route.SeriesHistory})
	}
	return handleTable(h.env, s.Seasons, tableConfig[models.Season]{Table: route.SeriesDetails})
}

func (h *seriesDetailsHandler) LeftRight(k keys.Key) {
	s := h.state()
	switch h.block() {
	case route.SeriesDetails, route.SeriesHistory:
		switch {
		case k.Is(keys.Left):
			s.Nav.PopAndPush(s.SeriesTabs.Previous())
		case k.Is(keys.Right):
			s.Nav.PopAndPush(s.SeriesTabs.Next())
		}
	case route.AutomaticallySearchSeriesPrompt, route.AutomaticallySearchSeasonPrompt, route.UpdateAndScanSeriesPrompt:
		togglePrompt(s, k)
	}
}

func (h *seriesDetailsHandler) Submit() {
	s := h.state()
	switch h.block() {
	case route.SeriesDetails:
		if _, ok := s.Seasons.Current(); ok {
			s.Push(route.New(route.AutomaticallySearchSeasonPrompt))
		}
	case route.AutomaticallySearchSeriesPrompt, route.AutomaticallySearchSeasonPrompt, route.UpdateAndScanSeriesPrompt:
		if i, ok := h.intent(); ok {
			confirmAndClose(s, i)
		} else {
			closePrompt(s)
		}
	}
}

func (h *seriesDetailsHandler) Esc() {
	s := h.state()
	switch h.block() {
	case route.AutomaticallySearchSeriesPrompt, route.AutomaticallySearchSeasonPrompt, route.UpdateAndScanSeriesPrompt:
		closePrompt(s)
	case route.SeriesDetails, route.SeriesHistory:
		s.Pop()
		s.SeriesTabs.SetIndex(0)
		clearErrors(s)
	}
}

func (h *seriesDetailsHandler) OtherChar(k keys.Key) {
	s := h.state()
	switch h.block() {
	case route.SeriesDetails, route.SeriesHistory:
		switch {
		case k.Is(keys.AutoSearch):
			s.Push(route.New(route.AutomaticallySearchSeriesPrompt))
		case k.Is(keys.Update):
			s.Push(route.New(route.UpdateAndScanSeriesPrompt))
		case k.Is(keys.Edit):
			series, _ := s.Series.Current()
			openEditSeries(s, series, route.SeriesDetails)
		case k.Is(keys.Refresh):
			s.Refresh = true
		}
	case route.AutomaticallySearchSeriesPrompt, route.AutomaticallySearchSeasonPrompt, route.UpdateAndScanSeriesPrompt:
		if !k.Is(keys.Confirm) {
			return
		}
		if i, ok := h.intent(); ok {
			acceptAndClose(s, i)
		}
	}
}

// intent builds the command of the open prompt.
func (h *seriesDetailsHandler) intent() (intent.Intent, bool) {
	s := h.state()
	series, _ := s.Series.Current()
	switch h.block() {
	case route.AutomaticallySearchSeriesPrompt:
		return intent.Intent{Kind: intent.SearchSeries, ID: series.ID}, true
	case route.UpdateAndScanSeriesPrompt:
		return intent.Intent{Kind: intent.UpdateAndScanSeries, ID: series.ID}, true
	case route.AutomaticallySearchSeasonPrompt:
		season, ok := s.Seasons.Current()
		if !ok {
			missing("season", h.env.Route)
			return intent.Intent{}, false
		}
		ref := models.SeasonRef{SeriesID: series.ID, Season: season.Number}
		return intent.Intent{Kind: intent.SearchSeason, ID: series.ID, Payload: ref}, true
	}
	return intent.Intent{}, false
}
