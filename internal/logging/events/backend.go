package events

import "github.com/atomicstack/servarr-tui/internal/logging"

type BackendTracer struct{}

var Backend = BackendTracer{}

func (BackendTracer) Poll(kind string, rows int) {
	logging.Trace("backend.poll", map[string]interface{}{"kind": kind, "rows": rows})
}

func (BackendTracer) Trigger(kind string) {
	logging.Trace("backend.trigger", map[string]interface{}{"kind": kind})
}

func (BackendTracer) Error(kind string, err error) {
	if err == nil {
		return
	}
	logging.Trace("backend.error", map[string]interface{}{"kind": kind, "error": err.Error()})
}
