package editor

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/fieldpad/fieldpad/internal/field"
	"github.com/fieldpad/fieldpad/internal/overlay"
	"github.com/fieldpad/fieldpad/internal/page"
)

const (
	zoneRow    = "row"
	zoneSave   = "save"
	zoneCancel = "cancel"
	zoneEdit   = "edit"
	zoneNone   = ""
)

// zone is one clickable region of the rendered view. x0/x1 of -1 cover the
// whole line.
type zone struct {
	y      int
	x0, x1 int
	field  string
	kind   string
}

func (m *Model) hitTest(x, y int) zone {
	// Ranged zones (buttons) take precedence over whole-line zones.
	for _, z := range m.zones {
		if z.y == y && z.x0 >= 0 && x >= z.x0 && x < z.x1 {
			return z
		}
	}
	for _, z := range m.zones {
		if z.y == y && z.x0 < 0 {
			return z
		}
	}
	return zone{kind: zoneNone}
}

// rowOf returns the rendered line of a field's row from the last View pass.
func (m *Model) rowOf(fieldName string) int {
	for _, z := range m.zones {
		if z.kind == zoneRow && z.field == fieldName {
			return z.y
		}
	}
	return 0
}

func (m *Model) maxVisibleRows() int {
	// header, blank, blank, filter, status and optional footer rows
	reserved := 5
	if m.showFooter {
		reserved++
	}
	if s := m.session; s != nil && s.data.Mode == field.ModeInline {
		reserved += 7
	}
	rows := m.height - reserved
	if rows < 1 {
		rows = 1
	}
	return rows
}

// View renders the field list, the active edit region and the footer, and
// records the click zones for mouse routing.
func (m *Model) View() string {
	m.zones = m.zones[:0]
	var lines []string

	lines = append(lines, styles.Header.Render(m.pages.Title()))
	lines = append(lines, "")

	labelWidth := 0
	for _, n := range m.visible {
		if w := lipgloss.Width(n.Label); w > labelWidth {
			labelWidth = w
		}
	}

	max := m.maxVisibleRows()
	end := m.offset + max
	if end > len(m.visible) {
		end = len(m.visible)
	}
	for i := m.offset; i < end; i++ {
		node := m.visible[i]
		m.zones = append(m.zones, zone{y: len(lines), x0: -1, x1: -1, field: node.Name, kind: zoneRow})
		lines = append(lines, m.renderRow(node, i == m.cursor, labelWidth))

		if s := m.session; s != nil && s.node == node && s.data.Mode == field.ModeInline {
			block, buttonRow, saveSpan, cancelSpan := m.renderEditBlock()
			for j, line := range block {
				if j == buttonRow {
					m.zones = append(m.zones, zone{y: len(lines), x0: saveSpan[0], x1: saveSpan[1], field: s.Field(), kind: zoneSave})
					if cancelSpan[0] >= 0 {
						m.zones = append(m.zones, zone{y: len(lines), x0: cancelSpan[0], x1: cancelSpan[1], field: s.Field(), kind: zoneCancel})
					}
				}
				m.zones = append(m.zones, zone{y: len(lines), x0: -1, x1: -1, field: s.Field(), kind: zoneEdit})
				lines = append(lines, line)
			}
		}
	}
	if len(m.visible) == 0 {
		lines = append(lines, styles.Placeholder.Render("no matching fields"))
	}

	lines = append(lines, "")
	lines = append(lines, m.renderFilterLine())
	lines = append(lines, m.renderStatusLine())
	if m.showFooter {
		lines = append(lines, styles.Footer.Render("enter edit · esc quit · type to filter"))
	}

	base := strings.Join(lines, "\n")

	if s := m.session; s != nil && s.data.Mode == field.ModePopup && s.overlay != nil {
		block, buttonRow, saveSpan, cancelSpan := m.renderEditBlock()
		s.overlay.SetContent(strings.Join(block, "\n"))
		// title row plus top border sit above the content inside the box
		y := m.rowOf(s.Field()) + 1 + 2 + buttonRow
		m.zones = append(m.zones, zone{y: y, x0: saveSpan[0] + 2, x1: saveSpan[1] + 2, field: s.Field(), kind: zoneSave})
		if cancelSpan[0] >= 0 {
			m.zones = append(m.zones, zone{y: y, x0: cancelSpan[0] + 2, x1: cancelSpan[1] + 2, field: s.Field(), kind: zoneCancel})
		}
		for row := 0; row < len(block)+3; row++ {
			m.zones = append(m.zones, zone{y: m.rowOf(s.Field()) + 1 + row, x0: -1, x1: -1, field: s.Field(), kind: zoneEdit})
		}
		return overlay.Render(base, s.overlay, m.width)
	}
	return base
}

func (m *Model) renderRow(node *page.Node, selected bool, labelWidth int) string {
	label := node.Label
	if pad := labelWidth - lipgloss.Width(label); pad > 0 {
		label += strings.Repeat(" ", pad)
	}
	display := node.Display
	displayStyle := styles.Value
	if display == "" {
		display = node.Placeholder
		if display == "" {
			display = "—"
		}
		displayStyle = styles.Placeholder
	}
	marker := ""
	if node.Editable {
		marker = " " + styles.EditMarker.Render("✎")
	}
	content := fmt.Sprintf("%s  %s%s", styles.Label.Render(label), displayStyle.Render(display), marker)
	indicator := " "
	if selected {
		indicator = styles.RowIndicator.Render("▌")
		content = styles.SelectedRow.Render(fmt.Sprintf("%s  %s", label, display)) + marker
	}
	row := indicator + " " + content
	if m.width > 0 {
		row = truncate.String(row, uint(m.width))
	}
	return row
}

// renderEditBlock renders the active session's input, buttons and error
// slot. It reports the button row index and the save/cancel x spans so the
// caller can register click zones.
func (m *Model) renderEditBlock() (lines []string, buttonRow int, saveSpan, cancelSpan [2]int) {
	s := m.session
	lines = strings.Split(s.input.View(), "\n")

	var save, cancel string
	if s.loading {
		save = styles.Loading.Render("saving…")
		cancel = ""
	} else {
		save = styles.ButtonFocus.Render("Save")
		cancel = styles.Button.Render("Cancel")
	}
	const indent = "  "
	buttonLine := indent + save
	saveSpan = [2]int{lipgloss.Width(indent), lipgloss.Width(indent) + lipgloss.Width(save)}
	if cancel != "" {
		buttonLine += " " + cancel
		cancelSpan = [2]int{saveSpan[1] + 1, saveSpan[1] + 1 + lipgloss.Width(cancel)}
	} else {
		cancelSpan = [2]int{-1, -1}
	}
	buttonRow = len(lines)
	lines = append(lines, buttonLine)
	if s.errMsg != "" {
		lines = append(lines, styles.Error.Render(s.errMsg))
	}
	return lines, buttonRow, saveSpan, cancelSpan
}

func (m *Model) renderFilterLine() string {
	prompt := styles.FilterPrompt.Render("» ")
	if m.filter == "" {
		return prompt + styles.FilterPlaceholder.Render("(type to search)")
	}
	return prompt + styles.Filter.Render(m.filter)
}

func (m *Model) renderStatusLine() string {
	if m.infoMsg != "" {
		return styles.Info.Render(m.infoMsg)
	}
	if s := m.session; s != nil {
		if s.loading {
			return styles.Loading.Render(fmt.Sprintf("saving %s…", s.data.Label))
		}
		return styles.Info.Render(fmt.Sprintf("editing %s", s.data.Label))
	}
	return ""
}
