package events

import "github.com/fieldpad/fieldpad/internal/logging"

type SessionTracer struct{}

type SessionReason string

const (
	SessionReasonEscape  SessionReason = "escape"
	SessionReasonOutside SessionReason = "outside-click"
	SessionReasonSwitch  SessionReason = "switch"
	SessionReasonButton  SessionReason = "button"
)

var Session = SessionTracer{}

func (SessionTracer) Open(field, mode string) {
	logging.Trace("session.open", map[string]interface{}{"field": field, "mode": mode})
}

func (SessionTracer) Reopen(field string) {
	logging.Trace("session.reopen", map[string]interface{}{"field": field})
}

func (SessionTracer) Save(field string, value string) {
	logging.Trace("session.save", map[string]interface{}{"field": field, "value": value})
}

func (SessionTracer) NoChange(field string) {
	logging.Trace("session.save.no-change", map[string]interface{}{"field": field})
}

func (SessionTracer) Saved(field string) {
	logging.Trace("session.saved", map[string]interface{}{"field": field})
}

func (SessionTracer) SaveError(field, message string) {
	logging.Trace("session.save.error", map[string]interface{}{"field": field, "message": message})
}

func (SessionTracer) Cancel(field string, reason SessionReason) {
	logging.Trace("session.cancel", map[string]interface{}{"field": field, "reason": string(reason)})
}

func (SessionTracer) Close(field, reason string) {
	logging.Trace("session.close", map[string]interface{}{"field": field, "reason": reason})
}

func (SessionTracer) Stale(field, active string) {
	logging.Trace("session.stale-response", map[string]interface{}{"field": field, "active": active})
}

func (SessionTracer) Aborted(field, cause string) {
	logging.Trace("session.aborted", map[string]interface{}{"field": field, "cause": cause})
}
