package editor

import (
	"bytes"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/tidwall/gjson"

	"github.com/fieldpad/fieldpad/internal/apierror"
	"github.com/fieldpad/fieldpad/internal/bus"
	"github.com/fieldpad/fieldpad/internal/field"
	"github.com/fieldpad/fieldpad/internal/logging"
	"github.com/fieldpad/fieldpad/internal/logging/events"
	"github.com/fieldpad/fieldpad/internal/page"
)

// openSession starts editing a field. An already open session on another
// field is cancelled first, so its full lifecycle runs before the new
// session's opened event.
func (m *Model) openSession(node *page.Node) tea.Cmd {
	if node == nil || !node.Editable {
		return nil
	}
	if m.session != nil {
		if m.session.Field() == node.Name {
			events.Session.Reopen(node.Name)
			return nil
		}
		m.cancelSession(events.SessionReasonSwitch)
	}
	data := node.Descriptor()
	input, err := field.NewInput(data)
	if err != nil {
		// structural problem with the field itself: log and abort quietly
		logging.Error(err)
		events.Session.Aborted(node.Name, err.Error())
		return nil
	}
	s := &Session{
		node:  node,
		data:  data,
		input: input,
	}
	// The dirty check compares against the adapter's own reading, so a
	// multi-value attribute listing options out of option order stays clean.
	s.original = s.input.Read().Values
	if data.Mode == field.ModePopup {
		anchor := m.rowOf(node.Name) + 1
		h := m.overlays.Mount(node.Name, data.Label, anchor, node.Template, func(content string) {
			node.Template = content
		})
		m.overlays.Show(h)
		s.overlay = h
	}
	m.session = s
	m.infoMsg = ""
	events.Session.Open(node.Name, data.Mode.String())
	m.bus.Emit(bus.Opened, nil)
	m.bus.Emit(bus.Clicked, nil)
	return focusCmd(node.Name)
}

func (m *Model) handleFocusMsg(msg tea.Msg) tea.Cmd {
	focus, ok := msg.(focusMsg)
	if !ok {
		return nil
	}
	s := m.session
	if s == nil || s.Field() != focus.field {
		return nil
	}
	events.UI.Focus(focus.field)
	return s.input.Focus()
}

// saveSession submits the current value. An unchanged value closes the
// session with no_change and never touches the network.
func (m *Model) saveSession() tea.Cmd {
	s := m.session
	if s == nil || s.loading {
		return nil
	}
	if !s.Dirty() {
		events.Session.NoChange(s.Field())
		m.closeSession(CloseNoChange)
		return nil
	}
	if m.client == nil {
		m.rejectSave(s, "no backend configured")
		return nil
	}
	reading := s.input.Read()
	s.errMsg = ""
	s.loading = true
	events.Session.Save(s.Field(), field.Normalize(reading.Values, s.data.Multiple))
	m.bus.Emit(bus.Save, bus.Payload{"values": append([]string(nil), reading.Values...)})
	return saveCmd(m.client, s.Field(), s.data.URL, s.data.Path, reading.Values, s.data.Multiple)
}

func (m *Model) handleSaveResultMsg(msg tea.Msg) tea.Cmd {
	res, ok := msg.(saveResultMsg)
	if !ok {
		return nil
	}
	s := m.session
	if s == nil || s.Field() != res.field {
		events.Session.Stale(res.field, s.Field())
		return nil
	}
	s.loading = false
	if res.err != nil {
		logging.Error(res.err)
		m.rejectSave(s, apierror.Generic)
		return nil
	}
	if res.status < 200 || res.status > 299 {
		m.rejectSave(s, apierror.Extract(res.body, s.data.Path))
		return nil
	}
	if len(bytes.TrimSpace(res.body)) > 0 && !apierror.IsJSON(res.body) {
		// a 2xx with a garbled body counts as a transport failure
		m.rejectSave(s, apierror.Generic)
		return nil
	}
	reading := s.input.Read()
	s.node.Value = field.Normalize(reading.Values, s.data.Multiple)
	s.node.Display = field.FormatDisplay(reading.DisplayText(), s.data.Subtype)
	events.Session.Saved(res.field)
	m.bus.Emit(bus.Saved, bus.Payload{"values": append([]string(nil), reading.Values...)})
	m.notifier.Success(successMessage(res.body, s.data.Label))
	m.closeSession(CloseSaved)
	return nil
}

// successMessage prefers the server-provided message over the default.
func successMessage(body []byte, label string) string {
	if msg := strings.TrimSpace(gjson.GetBytes(body, "message").String()); msg != "" {
		return msg
	}
	return fmt.Sprintf("%s saved", label)
}

// rejectSave surfaces a failed save. The session stays open so the user can
// correct the value or cancel.
func (m *Model) rejectSave(s *Session, message string) {
	s.errMsg = message
	events.Session.SaveError(s.Field(), message)
	m.bus.Emit(bus.Error, bus.Payload{"message": message})
	m.notifier.Error(message)
}

// cancelSession restores the original value and closes with cancelled.
func (m *Model) cancelSession(reason events.SessionReason) {
	s := m.session
	if s == nil {
		return
	}
	s.input.Write(s.data.Value)
	events.Session.Cancel(s.Field(), reason)
	m.bus.Emit(bus.Cancel, nil)
	m.bus.Emit(bus.Rejected, nil)
	m.closeSession(CloseCancelled)
}

// closeSession tears the session down and emits closed exactly once. The
// payload carries the field explicitly because the session is gone by the
// time the event goes out.
func (m *Model) closeSession(reason CloseReason) {
	s := m.session
	if s == nil {
		return
	}
	name := s.Field()
	data := s.Snapshot()
	if s.overlay != nil {
		m.overlays.Dispose(s.overlay)
	}
	s.input.Blur()
	m.session = nil
	events.Session.Close(name, string(reason))
	m.bus.Emit(bus.Closed, bus.Payload{
		"field":  name,
		"data":   data,
		"reason": string(reason),
	})
}
