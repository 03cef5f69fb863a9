package events

import "github.com/atomicstack/docnav/internal/logging"

type ResizeTracer struct{}

type PageTracer struct{}

type CommandTracer struct{}

var (
	Resize  = ResizeTracer{}
	Page    = PageTracer{}
	Command = CommandTracer{}
)

func (ResizeTracer) Restore(width int) {
	logging.Trace("resize.restore", map[string]interface{}{"width": width})
}

func (ResizeTracer) Drag(width int) {
	logging.Trace("resize.drag", map[string]interface{}{"width": width})
}

func (ResizeTracer) Persist(width int, err error) {
	payload := map[string]interface{}{"width": width}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("resize.persist", payload)
}

func (ResizeTracer) Viewport(width int, inline bool) {
	logging.Trace("resize.viewport", map[string]interface{}{"width": width, "inline": inline})
}

func (PageTracer) Transition(from, to string) {
	logging.Trace("page.transition", map[string]interface{}{"from": from, "to": to})
}

func (PageTracer) Reload(reason string) {
	logging.Trace("page.reload", map[string]interface{}{"reason": reason})
}

func (CommandTracer) Queue(id, label string) {
	logging.Trace("command.queue", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Skip(id, label string) {
	logging.Trace("command.skip", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Result(id, label, msgType string) {
	logging.Trace("command.result", map[string]interface{}{"id": id, "label": label, "msg": msgType})
}
