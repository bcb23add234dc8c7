package events

import "github.com/fieldpad/fieldpad/internal/logging"

type TransportTracer struct{}

var Transport = TransportTracer{}

func (TransportTracer) Request(url, field string, multiple bool) {
	logging.Trace("transport.request", map[string]interface{}{
		"url":      url,
		"field":    field,
		"multiple": multiple,
	})
}

func (TransportTracer) Response(url string, status int) {
	logging.Trace("transport.response", map[string]interface{}{"url": url, "status": status})
}

func (TransportTracer) Failure(url string, err error) {
	if err == nil {
		return
	}
	logging.Trace("transport.failure", map[string]interface{}{"url": url, "error": err.Error()})
}

func (TransportTracer) TokenSource(source string) {
	logging.Trace("transport.token-source", map[string]interface{}{"source": source})
}
