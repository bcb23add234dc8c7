package editor

import (
	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/fieldpad/fieldpad/internal/logging/events"
	"github.com/fieldpad/fieldpad/internal/page"
)

// refreshVisible recomputes the filtered row set and clamps the cursor.
func (m *Model) refreshVisible() {
	nodes := m.pages.Nodes()
	if m.filter == "" {
		m.visible = nodes
	} else {
		out := make([]*page.Node, 0, len(nodes))
		for _, n := range nodes {
			if fuzzy.MatchFold(m.filter, n.Label) || fuzzy.MatchFold(m.filter, n.Name) {
				out = append(out, n)
			}
		}
		m.visible = out
	}
	if m.cursor >= len(m.visible) {
		m.cursor = len(m.visible) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	m.ensureCursorVisible()
}

func (m *Model) moveCursorUp() {
	if n := len(m.visible); n > 0 {
		if m.cursor > 0 {
			m.cursor--
		} else {
			m.cursor = n - 1
		}
		events.UI.Cursor(m.cursorField(), m.cursor)
		m.ensureCursorVisible()
	}
}

func (m *Model) moveCursorDown() {
	if n := len(m.visible); n > 0 {
		if m.cursor < n-1 {
			m.cursor++
		} else {
			m.cursor = 0
		}
		events.UI.Cursor(m.cursorField(), m.cursor)
		m.ensureCursorVisible()
	}
}

func (m *Model) moveCursorPage(direction int) {
	n := len(m.visible)
	if n == 0 {
		return
	}
	step := m.maxVisibleRows()
	if step < 1 {
		step = 1
	}
	m.cursor += direction * step
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor >= n {
		m.cursor = n - 1
	}
	events.UI.Cursor(m.cursorField(), m.cursor)
	m.ensureCursorVisible()
}

func (m *Model) moveCursorHome() {
	if len(m.visible) > 0 && m.cursor != 0 {
		m.cursor = 0
		events.UI.Cursor(m.cursorField(), m.cursor)
		m.ensureCursorVisible()
	}
}

func (m *Model) moveCursorEnd() {
	if n := len(m.visible); n > 0 && m.cursor != n-1 {
		m.cursor = n - 1
		events.UI.Cursor(m.cursorField(), m.cursor)
		m.ensureCursorVisible()
	}
}

func (m *Model) setCursorTo(field string) {
	for i, n := range m.visible {
		if n.Name == field {
			m.cursor = i
			m.ensureCursorVisible()
			return
		}
	}
}

func (m *Model) cursorField() string {
	if m.cursor >= 0 && m.cursor < len(m.visible) {
		return m.visible[m.cursor].Name
	}
	return ""
}

// ensureCursorVisible scrolls the viewport so the cursor row stays on screen.
func (m *Model) ensureCursorVisible() {
	max := m.maxVisibleRows()
	if max < 1 {
		max = 1
	}
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+max {
		m.offset = m.cursor - max + 1
	}
	if m.offset < 0 {
		m.offset = 0
	}
}

func (m *Model) appendToFilter(text string) {
	m.filter += text
	m.infoMsg = ""
	events.Filter.Append(m.filter)
	m.refreshVisible()
}

func (m *Model) removeFilterRune() bool {
	if m.filter == "" {
		return false
	}
	runes := []rune(m.filter)
	m.filter = string(runes[:len(runes)-1])
	events.Filter.Backspace(m.filter)
	m.refreshVisible()
	return true
}

func (m *Model) clearFilter() {
	m.filter = ""
	events.Filter.Cleared()
	m.refreshVisible()
}
