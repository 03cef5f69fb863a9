package events

import "github.com/atomicstack/docnav/internal/logging"

type NavTracer struct{}

type SearchTracer struct{}

var (
	Nav    = NavTracer{}
	Search = SearchTracer{}
)

func (NavTracer) Init(container string, visible int, cursor string) {
	logging.Trace("nav.init", map[string]interface{}{
		"container": container,
		"visible":   visible,
		"cursor":    cursor,
	})
}

func (NavTracer) Dispose(container string) {
	logging.Trace("nav.dispose", map[string]interface{}{"container": container})
}

func (NavTracer) Focus(container, entry string) {
	logging.Trace("nav.focus", map[string]interface{}{"container": container, "entry": entry})
}

func (NavTracer) Key(key, target string, handled bool) {
	logging.Trace("nav.key", map[string]interface{}{"key": key, "target": target, "handled": handled})
}

func (NavTracer) Section(section string, expanded bool) {
	logging.Trace("nav.section", map[string]interface{}{"section": section, "expanded": expanded})
}

func (SearchTracer) Apply(container, query string, matched int) {
	logging.Trace("search.apply", map[string]interface{}{
		"container": container,
		"query":     query,
		"matched":   matched,
	})
}

func (SearchTracer) Cleared(container string) {
	logging.Trace("search.clear", map[string]interface{}{"container": container})
}
