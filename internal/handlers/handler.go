// Package handlers turns logical key presses into state changes. Every
// route is owned by exactly one handler in a registry tree; a press is
// dispatched to that handler only when it reports ready.
package handlers

import (
	"github.com/atomicstack/servarr-tui/internal/intent"
	"github.com/atomicstack/servarr-tui/internal/keys"
	"github.com/atomicstack/servarr-tui/internal/logging"
	"github.com/atomicstack/servarr-tui/internal/logging/events"
	"github.com/atomicstack/servarr-tui/internal/route"
	"github.com/atomicstack/servarr-tui/internal/state"
)

// DefaultPageSize is used by page up/down when the host does not report
// the visible table height.
const DefaultPageSize = 10

// Handler reacts to one key press on the route it was built for.
type Handler interface {
	IsReady() bool
	ScrollUp()
	ScrollDown()
	Home()
	End()
	Delete()
	LeftRight(k keys.Key)
	Submit()
	Esc()
	OtherChar(k keys.Key)
}

// TableHandler is implemented by handlers backed by a table. HandleTable
// runs before the callbacks and reports whether it consumed the press.
type TableHandler interface {
	HandleTable() bool
}

// Env is what a handler sees of the world for a single press.
type Env struct {
	State *state.State
	Key   keys.Key
	Route route.Route
	// Page is the number of visible table rows.
	Page int
}

// NewEnv captures the current route of s for a press of k.
func NewEnv(s *state.State, k keys.Key) *Env {
	return &Env{State: s, Key: k, Route: s.Current(), Page: DefaultPageSize}
}

func (e *Env) page() int {
	if e.Page <= 0 {
		return DefaultPageSize
	}
	return e.Page
}

// Dispatch routes env's key press to the handler owning the current route.
// It reports whether a handler acted on it.
func Dispatch(reg *Registry, env *Env) bool {
	node := reg.Resolve(env.Route)
	h := node.Build(env)
	if !h.IsReady() {
		events.Dispatch.NotReady(env.Route.String(), node.Name)
		return false
	}
	if th, ok := h.(TableHandler); ok && th.HandleTable() {
		events.Dispatch.Table(env.Route.String(), node.Name, env.Key.String())
		return true
	}
	action := env.Key.Nav()
	switch action {
	case keys.Up:
		h.ScrollUp()
	case keys.Down:
		h.ScrollDown()
	case keys.Home:
		h.Home()
	case keys.End:
		h.End()
	case keys.Delete:
		h.Delete()
	case keys.Left, keys.Right:
		h.LeftRight(env.Key)
	case keys.Submit:
		h.Submit()
	case keys.Esc:
		h.Esc()
	default:
		h.OtherChar(env.Key)
	}
	events.Dispatch.Key(env.Route.String(), node.Name, action.String())
	return true
}

// base carries the per-press environment and supplies no-op callbacks for
// handlers that only care about a few keys.
type base struct {
	env *Env
}

func (b base) state() *state.State { return b.env.State }
func (b base) block() route.Block { return b.env.Route.Block }
func (b base) key() keys.Key { return b.env.Key }

func (base) ScrollUp() {}
func (base) ScrollDown() {}
func (base) Home() {}
func (base) End() {}
func (base) Delete() {}
func (base) LeftRight(keys.Key) {}
func (base) Submit() {}
func (base) Esc() {}
func (base) OtherChar(keys.Key) {}

// defaultHandler owns routes no other handler claims. It never acts.
type defaultHandler struct{ base }

func (defaultHandler) IsReady() bool { return true }

// clearErrors drops the status line error.
func clearErrors(s *state.State) {
	s.Error = ""
}

// togglePrompt flips a yes/no prompt on left or right.
func togglePrompt(s *state.State, k keys.Key) {
	if k.Is(keys.Left) || k.Is(keys.Right) {
		s.Prompt.Toggle()
	}
}

// changeTab switches the main tab set on left or right, replacing the
// current route so the history does not grow.
func changeTab(s *state.State, k keys.Key) {
	switch {
	case k.Is(keys.Left):
		s.Nav.PopAndPush(s.Tabs.Previous())
	case k.Is(keys.Right):
		s.Nav.PopAndPush(s.Tabs.Next())
	}
}

// confirmAndClose answers a yes/no prompt: i is recorded when "yes" is
// highlighted and the prompt is popped either way.
func confirmAndClose(s *state.State, i intent.Intent) {
	r := s.Current()
	if s.Prompt.Confirmed() {
		events.Intent.Record(i.Kind.String(), i.ID)
	} else {
		events.Intent.Declined(r.String())
	}
	if s.Prompt.ConfirmAndClose(i) {
		s.Pop()
	}
}

// acceptAndClose handles the dedicated confirm key.
func acceptAndClose(s *state.State, i intent.Intent) {
	events.Intent.Record(i.Kind.String(), i.ID)
	if s.Prompt.Accept(i) {
		s.Pop()
	}
}

// closePrompt pops a confirmation prompt and resets its answer.
func closePrompt(s *state.State) {
	s.Pop()
	s.Prompt.Reset()
}

// missing logs a handler reading a selection that readiness should have
// guaranteed.
func missing(what string, r route.Route) {
	logging.Errorf("%s: no %s selected", r, what)
}
