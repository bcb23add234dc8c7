package events

import "github.com/fieldpad/fieldpad/internal/logging"

type UITracer struct{}

type FilterTracer struct{}

type PageTracer struct{}

var (
	UI     = UITracer{}
	Filter = FilterTracer{}
	Page   = PageTracer{}
)

func (UITracer) Click(x, y int, field, zone string) {
	logging.Trace("ui.click", map[string]interface{}{
		"x":     x,
		"y":     y,
		"field": field,
		"zone":  zone,
	})
}

func (UITracer) Cursor(field string, cursor int) {
	logging.Trace("ui.cursor", map[string]interface{}{"field": field, "cursor": cursor})
}

func (UITracer) Focus(field string) {
	logging.Trace("ui.focus", map[string]interface{}{"field": field})
}

func (FilterTracer) Append(filter string) {
	logging.Trace("filter.append", map[string]interface{}{"filter": filter})
}

func (FilterTracer) Backspace(filter string) {
	logging.Trace("filter.backspace", map[string]interface{}{"filter": filter})
}

func (FilterTracer) Cleared() {
	logging.Trace("filter.clear", nil)
}

func (PageTracer) Refreshed(fields int, changed bool) {
	logging.Trace("page.refreshed", map[string]interface{}{"fields": fields, "changed": changed})
}

func (PageTracer) RefreshError(err error) {
	if err == nil {
		return
	}
	logging.Trace("page.refresh-error", map[string]interface{}{"error": err.Error()})
}
