package events

import "github.com/fieldpad/fieldpad/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) PageLoaded(source string, fields int) {
	logging.Trace("app.page.loaded", map[string]interface{}{"source": source, "fields": fields})
}

func (AppTracer) Shutdown() {
	logging.Trace("app.shutdown", nil)
}
