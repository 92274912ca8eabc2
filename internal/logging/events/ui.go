package events

import "github.com/atomicstack/servarr-tui/internal/logging"

type DispatchTracer struct{}

type CollectionTracer struct{}

type FilterTracer struct{}

type UITracer struct{}

var (
	Dispatch   = DispatchTracer{}
	Collection = CollectionTracer{}
	Filter     = FilterTracer{}
	UI         = UITracer{}
)

func (DispatchTracer) Key(route, handler, action string) {
	logging.Trace("dispatch.key", map[string]interface{}{"route": route, "handler": handler, "action": action})
}

func (DispatchTracer) NotReady(route, handler string) {
	logging.Trace("dispatch.not-ready", map[string]interface{}{"route": route, "handler": handler})
}

func (DispatchTracer) Table(route, handler, action string) {
	logging.Trace("dispatch.table", map[string]interface{}{"route": route, "handler": handler, "action": action})
}

func (CollectionTracer) Cursor(route string, cursor int) {
	logging.Trace("collection.cursor", map[string]interface{}{"route": route, "cursor": cursor})
}

func (CollectionTracer) Sort(route, option string) {
	logging.Trace("collection.sort", map[string]interface{}{"route": route, "option": option})
}

func (CollectionTracer) Filter(route, query string, matches int) {
	logging.Trace("collection.filter", map[string]interface{}{"route": route, "query": query, "matches": matches})
}

func (CollectionTracer) Search(route, query string, found bool) {
	logging.Trace("collection.search", map[string]interface{}{"route": route, "query": query, "found": found})
}

func (CollectionTracer) Reset(route string) {
	logging.Trace("collection.reset", map[string]interface{}{"route": route})
}

func (FilterTracer) Append(route, text string) {
	logging.Trace("input.append", map[string]interface{}{"route": route, "text": text})
}

func (FilterTracer) Backspace(route, text string) {
	logging.Trace("input.backspace", map[string]interface{}{"route": route, "text": text})
}

func (FilterTracer) Cursor(route string, pos int) {
	logging.Trace("input.cursor", map[string]interface{}{"route": route, "cursor": pos})
}

func (UITracer) Resize(width, height int) {
	logging.Trace("ui.resize", map[string]interface{}{"width": width, "height": height})
}

func (UITracer) Refresh(route string, kinds []string) {
	logging.Trace("ui.refresh", map[string]interface{}{"route": route, "kinds": kinds})
}

func (UITracer) Quit(route string) {
	logging.Trace("ui.quit", map[string]interface{}{"route": route})
}
