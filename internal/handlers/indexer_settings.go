package handlers

import (
	"github.com/atomicstack/servarr-tui/internal/intent"
	"github.com/atomicstack/servarr-tui/internal/keys"
	"github.com/atomicstack/servarr-tui/internal/route"
)

type indexerSettingsHandler struct{ base }

func newIndexerSettingsHandler(env *Env) Handler { return &indexerSettingsHandler{base{env}} }

func (h *indexerSettingsHandler) IsReady() bool {
	return !h.state().IsLoading() && h.state().SettingsForm != nil
}

func (h *indexerSettingsHandler) isField() bool {
	_, ok := h.state().SettingsForm.Value(h.block())
	return ok
}

func (h *indexerSettingsHandler) ScrollUp() {
	form := h.state().SettingsForm
	if h.block() == route.AllIndexerSettingsPrompt {
		form.Grid.Up()
		return
	}
	form.Adjust(h.block(), 1)
}

func (h *indexerSettingsHandler) ScrollDown() {
	form := h.state().SettingsForm
	if h.block() == route.AllIndexerSettingsPrompt {
		form.Grid.Down()
		return
	}
	form.Adjust(h.block(), -1)
}

func (h *indexerSettingsHandler) LeftRight(k keys.Key) {
	form := h.state().SettingsForm
	if h.block() == route.AllIndexerSettingsPrompt && form.Grid.Active() == route.IndexerSettingsConfirmPrompt {
		togglePrompt(h.state(), k)
	}
}

func (h *indexerSettingsHandler) Submit() {
	s := h.state()
	if h.isField() {
		s.PopTextInput()
		return
	}
	if h.block() != route.AllIndexerSettingsPrompt {
		return
	}
	active := s.SettingsForm.Grid.Active()
	if active == route.IndexerSettingsConfirmPrompt {
		confirmAndClose(s, h.intent())
		s.SettingsForm = nil
		return
	}
	s.PushTextInput(route.New(active))
}

func (h *indexerSettingsHandler) Esc() {
	s := h.state()
	if h.isField() {
		s.PopTextInput()
		return
	}
	if h.block() == route.AllIndexerSettingsPrompt {
		closePrompt(s)
		s.SettingsForm = nil
	}
}

func (h *indexerSettingsHandler) OtherChar(k keys.Key) {
	s := h.state()
	form := s.SettingsForm
	if h.isField() {
		switch {
		case k.Is(keys.Backspace):
			form.DropDigit(h.block())
		case k.Printable():
			for _, r := range k.Text() {
				form.AppendDigit(h.block(), r)
			}
		}
		return
	}
	if h.block() == route.AllIndexerSettingsPrompt &&
		form.Grid.Active() == route.IndexerSettingsConfirmPrompt &&
		k.Is(keys.Confirm) {
		acceptAndClose(s, h.intent())
		s.SettingsForm = nil
	}
}

func (h *indexerSettingsHandler) intent() intent.Intent {
	return intent.Intent{Kind: intent.EditIndexerSettings, Payload: h.state().SettingsForm.Values}
}
