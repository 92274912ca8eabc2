package handlers

import (
	"strings"

	"github.com/atomicstack/servarr-tui/internal/intent"
	"github.com/atomicstack/servarr-tui/internal/keys"
	"github.com/atomicstack/servarr-tui/internal/models"
	"github.com/atomicstack/servarr-tui/internal/route"
	uistate "github.com/atomicstack/servarr-tui/internal/ui/state"
)

type rootFoldersHandler struct{ base }

func newRootFoldersHandler(env *Env) Handler { return &rootFoldersHandler{base{env}} }

// IsReady allows an empty table so the first root folder can be added.
func (h *rootFoldersHandler) IsReady() bool {
	s := h.state()
	switch h.block() {
	case route.RootFolders:
		return !s.IsLoading()
	case route.AddRootFolderPrompt:
		return !s.IsLoading() && s.RootFolderInput != nil
	}
	return s.Ready(s.RootFolders)
}

func (h *rootFoldersHandler) HandleTable() bool {
	return handleTable(h.env, h.state().RootFolders, tableConfig[models.RootFolder]{Table: route.RootFolders})
}

func (h *rootFoldersHandler) Home() {
	if h.block() == route.AddRootFolderPrompt {
		h.state().RootFolderInput.MoveStart()
	}
}

func (h *rootFoldersHandler) End() {
	if h.block() == route.AddRootFolderPrompt {
		h.state().RootFolderInput.MoveEnd()
	}
}

func (h *rootFoldersHandler) Delete() {
	s := h.state()
	if h.block() == route.RootFolders && !s.RootFolders.Empty() {
		s.Push(route.New(route.DeleteRootFolderPrompt))
	}
}

func (h *rootFoldersHandler) LeftRight(k keys.Key) {
	switch h.block() {
	case route.RootFolders:
		changeTab(h.state(), k)
	case route.DeleteRootFolderPrompt:
		togglePrompt(h.state(), k)
	case route.AddRootFolderPrompt:
		moveCaret(h.state().RootFolderInput, k)
	}
}

func (h *rootFoldersHandler) Submit() {
	s := h.state()
	switch h.block() {
	case route.DeleteRootFolderPrompt:
		confirmAndClose(s, h.deleteIntent())
	case route.AddRootFolderPrompt:
		path := strings.TrimSpace(s.RootFolderInput.Value())
		s.PopTextInput()
		s.RootFolderInput = nil
		if path == "" {
			return
		}
		record(s, intent.Intent{Kind: intent.AddRootFolder, Payload: path})
	}
}

func (h *rootFoldersHandler) Esc() {
	s := h.state()
	switch h.block() {
	case route.DeleteRootFolderPrompt:
		closePrompt(s)
	case route.AddRootFolderPrompt:
		s.PopTextInput()
		s.RootFolderInput = nil
	default:
		clearErrors(s)
	}
}

func (h *rootFoldersHandler) OtherChar(k keys.Key) {
	s := h.state()
	switch h.block() {
	case route.RootFolders:
		switch {
		case k.Is(keys.Add):
			s.RootFolderInput = uistate.NewInput("")
			s.PushTextInput(route.New(route.AddRootFolderPrompt))
		case k.Is(keys.Refresh):
			s.Refresh = true
		}
	case route.AddRootFolderPrompt:
		editText(s.RootFolderInput, k, h.env.Route)
	case route.DeleteRootFolderPrompt:
		if k.Is(keys.Confirm) {
			acceptAndClose(s, h.deleteIntent())
		}
	}
}

func (h *rootFoldersHandler) deleteIntent() intent.Intent {
	folder, ok := h.state().RootFolders.Current()
	if !ok {
		missing("root folder", h.env.Route)
	}
	return intent.Intent{Kind: intent.DeleteRootFolder, ID: folder.ID}
}
