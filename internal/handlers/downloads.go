package handlers

import (
	"github.com/atomicstack/servarr-tui/internal/intent"
	"github.com/atomicstack/servarr-tui/internal/keys"
	"github.com/atomicstack/servarr-tui/internal/models"
	"github.com/atomicstack/servarr-tui/internal/route"
)

type downloadsHandler struct{ base }

func newDownloadsHandler(env *Env) Handler { return &downloadsHandler{base{env}} }

func (h *downloadsHandler) IsReady() bool {
	return h.state().Ready(h.state().Downloads)
}

func (h *downloadsHandler) HandleTable() bool {
	return handleTable(h.env, h.state().Downloads, tableConfig[models.Download]{Table: route.Downloads})
}

func (h *downloadsHandler) Delete() {
	if h.block() == route.Downloads {
		h.state().Push(route.New(route.DeleteDownloadPrompt))
	}
}

func (h *downloadsHandler) LeftRight(k keys.Key) {
	switch h.block() {
	case route.Downloads:
		changeTab(h.state(), k)
	case route.DeleteDownloadPrompt, route.UpdateDownloadsPrompt:
		togglePrompt(h.state(), k)
	}
}

func (h *downloadsHandler) Submit() {
	switch h.block() {
	case route.DeleteDownloadPrompt, route.UpdateDownloadsPrompt:
		confirmAndClose(h.state(), h.intent())
	}
}

func (h *downloadsHandler) Esc() {
	switch h.block() {
	case route.DeleteDownloadPrompt, route.UpdateDownloadsPrompt:
		closePrompt(h.state())
	default:
		clearErrors(h.state())
	}
}

func (h *downloadsHandler) OtherChar(k keys.Key) {
	s := h.state()
	switch h.block() {
	case route.Downloads:
		switch {
		case k.Is(keys.Update):
			s.Push(route.New(route.UpdateDownloadsPrompt))
		case k.Is(keys.Refresh):
			s.Refresh = true
		}
	case route.DeleteDownloadPrompt, route.UpdateDownloadsPrompt:
		if k.Is(keys.Confirm) {
			acceptAndClose(s, h.intent())
		}
	}
}

func (h *downloadsHandler) intent() intent.Intent {
	if h.block() == route.UpdateDownloadsPrompt {
		return intent.Intent{Kind: intent.UpdateDownloads}
	}
	d, ok := h.state().Downloads.Current()
	if !ok {
		missing("download", h.env.Route)
	}
	return intent.Intent{Kind: intent.DeleteDownload, ID: d.ID}
}
