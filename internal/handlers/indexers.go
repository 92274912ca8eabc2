package handlers

import (
	"github.com/atomicstack/servarr-tui/internal/intent"
	"github.com/atomicstack/servarr-tui/internal/keys"
	"github.com/atomicstack/servarr-tui/internal/logging/events"
	"github.com/atomicstack/servarr-tui/internal/models"
	"github.com/atomicstack/servarr-tui/internal/route"
	"github.com/atomicstack/servarr-tui/internal/state"
)

type indexersHandler struct{ base }

func newIndexersHandler(env *Env) Handler { return &indexersHandler{base{env}} }

func (h *indexersHandler) IsReady() bool {
	return h.state().Ready(h.state().Indexers)
}

func (h *indexersHandler) HandleTable() bool {
	s := h.state()
	if h.block() == route.TestAllIndexers {
		return handleTable(h.env, s.IndexerTests, tableConfig[models.IndexerTestResult]{Table: route.TestAllIndexers})
	}
	return handleTable(h.env, s.Indexers, tableConfig[models.Indexer]{Table: route.Indexers})
}

func (h *indexersHandler) Delete() {
	if h.block() == route.Indexers {
		h.state().Push(route.New(route.DeleteIndexerPrompt))
	}
}

func (h *indexersHandler) LeftRight(k keys.Key) {
	switch h.block() {
	case route.Indexers:
		changeTab(h.state(), k)
	case route.DeleteIndexerPrompt:
		togglePrompt(h.state(), k)
	}
}

func (h *indexersHandler) Submit() {
	s := h.state()
	switch h.block() {
	case route.Indexers:
		ix, ok := s.Indexers.Current()
		if !ok {
			missing("indexer", h.env.Route)
			return
		}
		s.EditIndexer = state.NewEditIndexerForm(ix)
		s.Push(route.New(route.EditIndexerPrompt))
	case route.DeleteIndexerPrompt:
		confirmAndClose(s, h.deleteIntent())
	}
}

func (h *indexersHandler) Esc() {
	s := h.state()
	switch h.block() {
	case route.DeleteIndexerPrompt:
		closePrompt(s)
	case route.TestIndexer:
		s.Pop()
		s.IndexerTest = ""
	case route.TestAllIndexers:
		s.Pop()
		s.IndexerTests.SetItems(nil)
	default:
		clearErrors(s)
	}
}

func (h *indexersHandler) OtherChar(k keys.Key) {
	s := h.state()
	switch h.block() {
	case route.Indexers:
		switch {
		case k.Is(keys.Refresh):
			s.Refresh = true
		case k.Is(keys.Settings):
			if s.IndexerSettings == nil {
				missing("indexer settings", h.env.Route)
				return
			}
			s.SettingsForm = state.NewIndexerSettingsForm(*s.IndexerSettings)
			s.Push(route.New(route.AllIndexerSettingsPrompt))
		case k.Is(keys.TestAll):
			s.IndexerTests.SetItems(nil)
			s.Push(route.New(route.TestAllIndexers))
			record(s, intent.Intent{Kind: intent.TestAllIndexers})
		case k.Is(keys.Test):
			ix, ok := s.Indexers.Current()
			if !ok {
				missing("indexer", h.env.Route)
				return
			}
			s.IndexerTest = ""
			s.Push(route.New(route.TestIndexer))
			record(s, intent.Intent{Kind: intent.TestIndexer, ID: ix.ID})
		}
	case route.DeleteIndexerPrompt:
		if k.Is(keys.Confirm) {
			acceptAndClose(s, h.deleteIntent())
		}
	}
}

func (h *indexersHandler) deleteIntent() intent.Intent {
	ix, ok := h.state().Indexers.Current()
	if !ok {
		missing("indexer", h.env.Route)
	}
	return intent.Intent{Kind: intent.DeleteIndexer, ID: ix.ID}
}

// record stores an intent that needs no confirmation.
func record(s *state.State, i intent.Intent) {
	s.Prompt.Record(i)
	events.Intent.Record(i.Kind.String(), i.ID)
}
