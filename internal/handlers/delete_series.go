package handlers

import (
	"github.com/atomicstack/servarr-tui/internal/intent"
	"github.com/atomicstack/servarr-tui/internal/keys"
	"github.com/atomicstack/servarr-tui/internal/route"
)

type deleteSeriesHandler struct{ base }

func newDeleteSeriesHandler(env *Env) Handler { return &deleteSeriesHandler{base{env}} }

func (h *deleteSeriesHandler) IsReady() bool {
	return !h.state().IsLoading() && h.state().DeleteSeries != nil
}

func (h *deleteSeriesHandler) ScrollUp() {
	if h.block() == route.DeleteSeriesPrompt {
		h.state().DeleteSeries.Grid.Up()
	}
}

func (h *deleteSeriesHandler) ScrollDown() {
	if h.block() == route.DeleteSeriesPrompt {
		h.state().DeleteSeries.Grid.Down()
	}
}

func (h *deleteSeriesHandler) LeftRight(k keys.Key) {
	if h.block() != route.DeleteSeriesPrompt {
		return
	}
	form := h.state().DeleteSeries
	if form.Grid.Active() == route.DeleteSeriesConfirmPrompt {
		togglePrompt(h.state(), k)
		return
	}
	form.Toggle()
}

func (h *deleteSeriesHandler) Submit() {
	if h.block() != route.DeleteSeriesPrompt {
		return
	}
	s := h.state()
	if s.DeleteSeries.Grid.Active() != route.DeleteSeriesConfirmPrompt {
		s.DeleteSeries.Toggle()
		return
	}
	confirmAndClose(s, h.intent())
	s.DeleteSeries = nil
}

func (h *deleteSeriesHandler) Esc() {
	if h.block() == route.DeleteSeriesPrompt {
		closePrompt(h.state())
		h.state().DeleteSeries = nil
	}
}

func (h *deleteSeriesHandler) OtherChar(k keys.Key) {
	s := h.state()
	if h.block() == route.DeleteSeriesPrompt &&
		s.DeleteSeries.Grid.Active() == route.DeleteSeriesConfirmPrompt &&
		k.Is(keys.Confirm) {
		acceptAndClose(s, h.intent())
		s.DeleteSeries = nil
	}
}

func (h *deleteSeriesHandler) intent() intent.Intent {
	p := h.state().DeleteSeries.Params()
	return intent.Intent{Kind: intent.DeleteSeries, ID: p.ID, Payload: p}
}
