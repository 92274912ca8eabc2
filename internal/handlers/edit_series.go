package handlers

import (
	"github.com/atomicstack/servarr-tui/internal/intent"
	"github.com/atomicstack/servarr-tui/internal/keys"
	"github.com/atomicstack/servarr-tui/internal/route"
	uistate "github.com/atomicstack/servarr-tui/internal/ui/state"
)

type editSeriesHandler struct{ base }

func newEditSeriesHandler(env *Env) Handler { return &editSeriesHandler{base{env}} }

func (h *editSeriesHandler) IsReady() bool {
	return !h.state().IsLoading() && h.state().EditSeries != nil
}

// list returns the option list behind a select route.
func (h *editSeriesHandler) list() interface {
	ScrollUp() bool
	ScrollDown() bool
	ScrollToTop() bool
	ScrollToBottom() bool
} {
	form := h.state().EditSeries
	switch h.block() {
	case route.EditSeriesSelectQualityProfile:
		return form.QualityProfiles
	case route.EditSeriesSelectLanguageProfile:
		return form.LanguageProfiles
	case route.EditSeriesSelectSeriesType:
		return form.SeriesTypes
	}
	return nil
}

func (h *editSeriesHandler) input() *uistate.Input {
	return h.state().EditSeries.Input(h.block())
}

func (h *editSeriesHandler) ScrollUp() {
	if h.block() == route.EditSeriesPrompt {
		h.state().EditSeries.Grid.Up()
	} else if l := h.list(); l != nil {
		l.ScrollUp()
	}
}

func (h *editSeriesHandler) ScrollDown() {
	if h.block() == route.EditSeriesPrompt {
		h.state().EditSeries.Grid.Down()
	} else if l := h.list(); l != nil {
		l.ScrollDown()
	}
}

func (h *editSeriesHandler) Home() {
	if l := h.list(); l != nil {
		l.ScrollToTop()
	} else if in := h.input(); in != nil {
		in.MoveStart()
	}
}

func (h *editSeriesHandler) End() {
	if l := h.list(); l != nil {
		l.ScrollToBottom()
	} else if in := h.input(); in != nil {
		in.MoveEnd()
	}
}

func (h *editSeriesHandler) LeftRight(k keys.Key) {
	form := h.state().EditSeries
	switch h.block() {
	case route.EditSeriesPrompt:
		if form.Grid.Active() == route.EditSeriesConfirmPrompt {
			togglePrompt(h.state(), k)
			return
		}
		form.Toggle()
	case route.EditSeriesPathInput, route.EditSeriesTagsInput:
		moveCaret(h.input(), k)
	}
}

func (h *editSeriesHandler) Submit() {
	s := h.state()
	form := s.EditSeries
	ctx := h.env.Route.Context
	switch h.block() {
	case route.EditSeriesPrompt:
		switch active := form.Grid.Active(); active {
		case route.EditSeriesConfirmPrompt:
			confirmAndClose(s, h.intent())
			s.EditSeries = nil
		case route.EditSeriesToggleMonitored, route.EditSeriesToggleSeasonFolder:
			form.Toggle()
		case route.EditSeriesSelectQualityProfile, route.EditSeriesSelectLanguageProfile, route.EditSeriesSelectSeriesType:
			s.Push(route.WithContext(active, ctx))
		case route.EditSeriesPathInput, route.EditSeriesTagsInput:
			s.PushTextInput(route.WithContext(active, ctx))
		}
	case route.EditSeriesSelectQualityProfile, route.EditSeriesSelectLanguageProfile, route.EditSeriesSelectSeriesType:
		s.Pop()
	case route.EditSeriesPathInput, route.EditSeriesTagsInput:
		s.PopTextInput()
	}
}

func (h *editSeriesHandler) Esc() {
	s := h.state()
	switch h.block() {
	case route.EditSeriesPrompt:
		closePrompt(s)
		s.EditSeries = nil
	case route.EditSeriesSelectQualityProfile, route.EditSeriesSelectLanguageProfile, route.EditSeriesSelectSeriesType:
		s.Pop()
	case route.EditSeriesPathInput, route.EditSeriesTagsInput:
		s.PopTextInput()
	}
}

func (h *editSeriesHandler) OtherChar(k keys.Key) {
	s := h.state()
	switch h.block() {
	case route.EditSeriesPathInput, route.EditSeriesTagsInput:
		editText(h.input(), k, h.env.Route)
	case route.EditSeriesPrompt:
		if s.EditSeries.Grid.Active() == route.EditSeriesConfirmPrompt && k.Is(keys.Confirm) {
			acceptAndClose(s, h.intent())
			s.EditSeries = nil
		}
	}
}

func (h *editSeriesHandler) intent() intent.Intent {
	p := h.state().EditSeries.Params()
	return intent.Intent{Kind: intent.EditSeries, ID: p.ID, Payload: p}
}

