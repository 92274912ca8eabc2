package events

import "github.com/atomicstack/servarr-tui/internal/logging"

type NavTracer struct{}

var Nav = NavTracer{}

func (NavTracer) Push(route string, depth int) {
	logging.Trace("nav.push", map[string]interface{}{"route": route, "depth": depth})
}

func (NavTracer) Pop(route string, depth int) {
	logging.Trace("nav.pop", map[string]interface{}{"route": route, "depth": depth})
}

func (NavTracer) Replace(from, to string) {
	logging.Trace("nav.replace", map[string]interface{}{"from": from, "to": to})
}

// PopRefused records an attempt to pop the root route.
func (NavTracer) PopRefused(route string) {
	logging.Trace("nav.pop.refused", map[string]interface{}{"route": route})
}
