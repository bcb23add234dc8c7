// Package editor implements the edit-session controller: one session at a
// time over the page's fields, with inline and popup presentation, save over
// the transport and lifecycle events on the bus.
package editor

import (
	"github.com/fieldpad/fieldpad/internal/field"
	"github.com/fieldpad/fieldpad/internal/overlay"
	"github.com/fieldpad/fieldpad/internal/page"
)

// CloseReason is carried on the closed event.
type CloseReason string

const (
	CloseSaved     CloseReason = "saved"
	CloseCancelled CloseReason = "cancelled"
	CloseNoChange  CloseReason = "no_change"
)

// Session is the state of one open edit. At most one exists at a time;
// opening a second field cancels the first before the new session starts.
type Session struct {
	node     *page.Node
	data     field.Descriptor
	original []string
	input    field.Input
	overlay  *overlay.Handle
	loading  bool
	errMsg   string
}

// Field returns the session's field name.
func (s *Session) Field() string {
	if s == nil {
		return ""
	}
	return s.data.Name
}

// Snapshot is the payload data attached to lifecycle events: the descriptor
// captured at open plus the current reading.
func (s *Session) Snapshot() map[string]interface{} {
	if s == nil {
		return nil
	}
	reading := s.input.Read()
	return map[string]interface{}{
		"name":     s.data.Name,
		"label":    s.data.Label,
		"url":      s.data.URL,
		"path":     s.data.Path,
		"kind":     s.data.Kind.String(),
		"mode":     s.data.Mode.String(),
		"multiple": s.data.Multiple,
		"original": append([]string(nil), s.original...),
		"values":   append([]string(nil), reading.Values...),
	}
}

// Dirty reports whether the current reading differs from the value captured
// at open, compared in normalized form.
func (s *Session) Dirty() bool {
	reading := s.input.Read()
	return field.Normalize(reading.Values, s.data.Multiple) !=
		field.Normalize(s.original, s.data.Multiple)
}
