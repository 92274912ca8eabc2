package handlers

import (
	"github.com/atomicstack/servarr-tui/internal/intent"
	"github.com/atomicstack/servarr-tui/internal/keys"
	"github.com/atomicstack/servarr-tui/internal/models"
	"github.com/atomicstack/servarr-tui/internal/route"
)

type systemDetailsHandler struct{ base }

func newSystemDetailsHandler(env *Env) Handler { return &systemDetailsHandler{base{env}} }

// IsReady allows an empty task table so esc still closes it.
func (h *systemDetailsHandler) IsReady() bool {
	return !h.state().IsLoading()
}

func (h *systemDetailsHandler) HandleTable() bool {
	return handleTable(h.env, h.state().Tasks, tableConfig[models.Task]{Table: route.SystemTasks})
}

func (h *systemDetailsHandler) LeftRight(k keys.Key) {
	if h.block() == route.SystemTaskStartConfirmPrompt {
		togglePrompt(h.state(), k)
	}
}

func (h *systemDetailsHandler) Submit() {
	s := h.state()
	switch h.block() {
	case route.SystemTasks:
		if !s.Tasks.Empty() {
			s.Push(route.New(route.SystemTaskStartConfirmPrompt))
		}
	case route.SystemTaskStartConfirmPrompt:
		confirmAndClose(s, h.intent())
	}
}

func (h *systemDetailsHandler) Esc() {
	s := h.state()
	switch h.block() {
	case route.SystemTaskStartConfirmPrompt:
		closePrompt(s)
	case route.SystemTasks:
		s.Pop()
	}
}

func (h *systemDetailsHandler) OtherChar(k keys.Key) {
	if h.block() == route.SystemTaskStartConfirmPrompt && k.Is(keys.Confirm) {
		acceptAndClose(h.state(), h.intent())
	}
}

func (h *systemDetailsHandler) intent() intent.Intent {
	task, ok := h.state().Tasks.Current()
	if !ok {
		missing("task", h.env.Route)
	}
	return intent.Intent{Kind: intent.StartTask, Payload: task.TaskName}
}
