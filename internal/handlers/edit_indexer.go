package handlers

import (
	"github.com/atomicstack/servarr-tui/internal/intent"
	"github.com/atomicstack/servarr-tui/internal/keys"
	"github.com/atomicstack/servarr-tui/internal/route"
	uistate "github.com/atomicstack/servarr-tui/internal/ui/state"
)

type editIndexerHandler struct{ base }

func newEditIndexerHandler(env *Env) Handler { return &editIndexerHandler{base{env}} }

func (h *editIndexerHandler) IsReady() bool {
	return !h.state().IsLoading() && h.state().EditIndexer != nil
}

func (h *editIndexerHandler) input() *uistate.Input {
	return h.state().EditIndexer.Input(h.block())
}

func (h *editIndexerHandler) ScrollUp() {
	if h.block() == route.EditIndexerPrompt {
		h.state().EditIndexer.Grid.Up()
	}
}

func (h *editIndexerHandler) ScrollDown() {
	if h.block() == route.EditIndexerPrompt {
		h.state().EditIndexer.Grid.Down()
	}
}

func (h *editIndexerHandler) Home() {
	if in := h.input(); in != nil {
		in.MoveStart()
	}
}

func (h *editIndexerHandler) End() {
	if in := h.input(); in != nil {
		in.MoveEnd()
	}
}

func (h *editIndexerHandler) LeftRight(k keys.Key) {
	if in := h.input(); in != nil {
		moveCaret(in, k)
		return
	}
	if h.block() != route.EditIndexerPrompt {
		return
	}
	grid := h.state().EditIndexer.Grid
	if grid.Active() == route.EditIndexerConfirmPrompt {
		togglePrompt(h.state(), k)
		return
	}
	switch {
	case k.Is(keys.Left):
		grid.Left()
	case k.Is(keys.Right):
		grid.Right()
	}
}

func (h *editIndexerHandler) Submit() {
	s := h.state()
	if h.input() != nil {
		s.PopTextInput()
		return
	}
	if h.block() != route.EditIndexerPrompt {
		return
	}
	form := s.EditIndexer
	active := form.Grid.Active()
	switch {
	case active == route.EditIndexerConfirmPrompt:
		h.confirm(false)
	case form.Toggle():
	case form.Input(active) != nil:
		s.PushTextInput(route.New(active))
	}
}

func (h *editIndexerHandler) Esc() {
	s := h.state()
	if h.input() != nil {
		s.PopTextInput()
		return
	}
	if h.block() == route.EditIndexerPrompt {
		closePrompt(s)
		s.EditIndexer = nil
	}
}

func (h *editIndexerHandler) OtherChar(k keys.Key) {
	if in := h.input(); in != nil {
		editText(in, k, h.env.Route)
		return
	}
	if h.block() == route.EditIndexerPrompt &&
		h.state().EditIndexer.Grid.Active() == route.EditIndexerConfirmPrompt &&
		k.Is(keys.Confirm) {
		h.confirm(true)
	}
}

// confirm answers the confirm row. An invalid form keeps the prompt open
// and reports the problem in the status line.
func (h *editIndexerHandler) confirm(accept bool) {
	s := h.state()
	if accept {
		s.Prompt.SetConfirm(true)
	}
	if !s.Prompt.Confirmed() {
		confirmAndClose(s, intent.Intent{Kind: intent.EditIndexer})
		s.EditIndexer = nil
		return
	}
	p, err := s.EditIndexer.Params()
	if err != nil {
		s.Error = err.Error()
		s.Prompt.Reset()
		return
	}
	confirmAndClose(s, intent.Intent{Kind: intent.EditIndexer, ID: p.ID, Payload: p})
	s.EditIndexer = nil
}
