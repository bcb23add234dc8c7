package editor

import (
	"reflect"

	tea "github.com/charmbracelet/bubbletea"
)

type msgHandler func(tea.Msg) tea.Cmd

type handlerTable map[reflect.Type]msgHandler

// Install registers the message handler table. Installing twice is a no-op
// so a message is never handled more than once per update.
func (m *Model) Install() {
	if m.handlers != nil {
		return
	}
	m.handlers = handlerTable{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.MouseMsg{}):      m.handleMouseMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(saveResultMsg{}):     m.handleSaveResultMsg,
		reflect.TypeOf(focusMsg{}):          m.handleFocusMsg,
		reflect.TypeOf(backendEventMsg{}):   m.handleBackendEventMsg,
		reflect.TypeOf(backendDoneMsg{}):    m.handleBackendDoneMsg,
	}
}

// Teardown removes exactly the handlers Install registered. Messages arriving
// afterwards pass through Update untouched until the next Install.
func (m *Model) Teardown() {
	m.handlers = nil
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}
