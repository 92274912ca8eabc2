// Package nav holds the navigation history: a stack of routes whose top is
// the screen currently receiving key presses.
package nav

import (
	"github.com/atomicstack/servarr-tui/internal/logging/events"
	"github.com/atomicstack/servarr-tui/internal/route"
)

// Stack is a non-empty ordered sequence of routes. The root is never popped.
type Stack struct {
	routes  []route.Route
	routing bool
}

// New creates a stack holding only root.
func New(root route.Route) *Stack {
	return &Stack{routes: []route.Route{root}, routing: true}
}

// Push appends r and makes it current.
func (s *Stack) Push(r route.Route) {
	s.routes = append(s.routes, r)
	s.routing = true
	events.Nav.Push(r.String(), len(s.routes))
}

// Pop removes the current route. It refuses to remove the root and reports
// whether anything was popped.
func (s *Stack) Pop() bool {
	if len(s.routes) <= 1 {
		events.Nav.PopRefused(s.Current().String())
		return false
	}
	top := s.routes[len(s.routes)-1]
	s.routes = s.routes[:len(s.routes)-1]
	s.routing = true
	events.Nav.Pop(top.String(), len(s.routes))
	return true
}

// PopAndPush replaces the current route without growing the history.
func (s *Stack) PopAndPush(r route.Route) {
	from := s.routes[len(s.routes)-1]
	s.routes[len(s.routes)-1] = r
	s.routing = true
	events.Nav.Replace(from.String(), r.String())
}

// Current returns the top of the stack.
func (s *Stack) Current() route.Route {
	return s.routes[len(s.routes)-1]
}

// Previous returns the route below the current one, or the root when the
// stack has a single entry.
func (s *Stack) Previous() route.Route {
	if len(s.routes) < 2 {
		return s.routes[0]
	}
	return s.routes[len(s.routes)-2]
}

// Len returns the number of routes on the stack.
func (s *Stack) Len() int {
	return len(s.routes)
}

// Routes returns a copy of the stack from root to top.
func (s *Stack) Routes() []route.Route {
	dup := make([]route.Route, len(s.routes))
	copy(dup, s.routes)
	return dup
}

// TakeRouting reports whether the stack changed since the last call and
// clears the flag.
func (s *Stack) TakeRouting() bool {
	routed := s.routing
	s.routing = false
	return routed
}
