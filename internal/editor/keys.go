package editor

import (
	"unicode"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/fieldpad/fieldpad/internal/field"
	"github.com/fieldpad/fieldpad/internal/logging/events"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if m.session != nil {
		return m.handleSessionKey(keyMsg)
	}
	if m.handleFilterInput(keyMsg) {
		return nil
	}
	switch keyMsg.String() {
	case "ctrl+c":
		return tea.Quit
	case "esc":
		if m.filter != "" {
			m.clearFilter()
			return nil
		}
		return tea.Quit
	case "enter":
		return m.openAtCursor()
	case "up":
		m.moveCursorUp()
	case "down":
		m.moveCursorDown()
	case "pgup":
		m.moveCursorPage(-1)
	case "pgdown":
		m.moveCursorPage(1)
	case "home":
		m.moveCursorHome()
	case "end":
		m.moveCursorEnd()
	}
	return nil
}

// handleSessionKey routes keys while an edit session is open. Escape always
// cancels; enter saves except when a textarea wants a newline via alt+enter.
func (m *Model) handleSessionKey(keyMsg tea.KeyMsg) tea.Cmd {
	s := m.session
	switch keyMsg.String() {
	case "ctrl+c":
		return tea.Quit
	case "esc":
		m.cancelSession(events.SessionReasonEscape)
		return nil
	case "alt+enter":
		if s.data.Kind == field.KindTextArea && !s.loading {
			return s.input.Update(tea.KeyMsg{Type: tea.KeyEnter})
		}
		return nil
	case "enter":
		return m.saveSession()
	}
	if s.loading {
		return nil
	}
	return s.input.Update(keyMsg)
}

// handleFilterInput grows or shrinks the list filter from plain typing.
func (m *Model) handleFilterInput(keyMsg tea.KeyMsg) bool {
	switch keyMsg.Type {
	case tea.KeyBackspace, tea.KeyCtrlH:
		return m.removeFilterRune()
	case tea.KeyCtrlU:
		if m.filter == "" {
			return false
		}
		m.clearFilter()
		return true
	case tea.KeyRunes:
		if keyMsg.Alt || len(keyMsg.Runes) == 0 {
			return false
		}
		for _, r := range keyMsg.Runes {
			if unicode.IsControl(r) {
				return false
			}
		}
		m.appendToFilter(string(keyMsg.Runes))
		return true
	case tea.KeySpace:
		if m.filter == "" {
			return false
		}
		m.appendToFilter(" ")
		return true
	}
	return false
}

func (m *Model) openAtCursor() tea.Cmd {
	nodes := m.visible
	if len(nodes) == 0 || m.cursor < 0 || m.cursor >= len(nodes) {
		return nil
	}
	return m.openSession(nodes[m.cursor])
}

func (m *Model) handleMouseMsg(msg tea.Msg) tea.Cmd {
	mouseMsg, ok := msg.(tea.MouseMsg)
	if !ok {
		return nil
	}
	mouse := tea.MouseEvent(mouseMsg)
	if mouse.Action != tea.MouseActionPress || mouse.Button != tea.MouseButtonLeft {
		return nil
	}
	z := m.hitTest(mouse.X, mouse.Y)
	events.UI.Click(mouse.X, mouse.Y, z.field, z.kind)
	switch z.kind {
	case zoneRow:
		node := m.pages.Find(z.field)
		if node != nil {
			m.setCursorTo(z.field)
		}
		return m.openSession(node)
	case zoneSave:
		return m.saveSession()
	case zoneCancel:
		m.cancelSession(events.SessionReasonButton)
		return nil
	case zoneEdit:
		return nil
	}
	if m.session != nil {
		m.cancelSession(events.SessionReasonOutside)
	}
	return nil
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	sizeMsg, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = sizeMsg.Width
	}
	if !m.fixedHeight {
		m.height = sizeMsg.Height
	}
	m.ensureCursorVisible()
	return nil
}

func (m *Model) handleBackendEventMsg(msg tea.Msg) tea.Cmd {
	eventMsg, ok := msg.(backendEventMsg)
	if !ok {
		return nil
	}
	res := m.dispatcher.Handle(eventMsg.event, m.session.Field())
	if res.PageUpdated {
		m.refreshVisible()
	}
	if m.backend != nil {
		return waitForBackendEvent(m.backend)
	}
	return nil
}

func (m *Model) handleBackendDoneMsg(tea.Msg) tea.Cmd {
	m.backend = nil
	return nil
}
