package events

import "github.com/atomicstack/servarr-tui/internal/logging"

type IntentTracer struct{}

type CommandTracer struct{}

var (
	Intent  = IntentTracer{}
	Command = CommandTracer{}
)

func (IntentTracer) Record(kind string, id int64) {
	logging.Trace("intent.record", map[string]interface{}{"kind": kind, "id": id})
}

func (IntentTracer) Declined(route string) {
	logging.Trace("intent.declined", map[string]interface{}{"route": route})
}

func (CommandTracer) Queue(id, label string) {
	logging.Trace("command.queue", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Skip(id, label string) {
	logging.Trace("command.skip", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Result(id, label string, err error) {
	payload := map[string]interface{}{"id": id, "label": label}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("command.result", payload)
}
