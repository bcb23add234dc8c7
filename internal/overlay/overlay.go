// Package overlay manages the floating edit boxes used by popup-mode fields
// and composites them over the rendered page.
package overlay

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

// Handle is one mounted overlay. Content is live while the overlay is
// shown; hiding writes it back through the mount-time callback so the owning
// field keeps a record of the last content shown.
type Handle struct {
	field     string
	title     string
	anchor    int // row in the base view the box attaches under
	content   string
	visible   bool
	writeback func(string)
}

func (h *Handle) Field() string   { return h.field }
func (h *Handle) Visible() bool   { return h != nil && h.visible }
func (h *Handle) Content() string { return h.content }

// SetContent replaces the live content of a shown overlay.
func (h *Handle) SetContent(content string) {
	h.content = content
}

// Adapter owns at most one overlay per field. Mounting a field again
// disposes the previous handle first.
type Adapter struct {
	handles map[string]*Handle
}

func NewAdapter() *Adapter {
	return &Adapter{handles: make(map[string]*Handle)}
}

// Mount registers an overlay for a field. The writeback callback receives
// the live content whenever the overlay hides.
func (a *Adapter) Mount(field, title string, anchor int, content string, writeback func(string)) *Handle {
	if prior, ok := a.handles[field]; ok {
		a.Dispose(prior)
	}
	h := &Handle{field: field, title: title, anchor: anchor, content: content, writeback: writeback}
	a.handles[field] = h
	return h
}

func (a *Adapter) Show(h *Handle) {
	if h == nil {
		return
	}
	h.visible = true
}

// Hide conceals the overlay and stores its live content back into the
// field's content template.
func (a *Adapter) Hide(h *Handle) {
	if h == nil || !h.visible {
		return
	}
	h.visible = false
	if h.writeback != nil {
		h.writeback(h.content)
	}
}

// Dispose hides and unregisters the handle.
func (a *Adapter) Dispose(h *Handle) {
	if h == nil {
		return
	}
	a.Hide(h)
	if current, ok := a.handles[h.field]; ok && current == h {
		delete(a.handles, h.field)
	}
}

// Lookup returns the mounted handle for a field, or nil.
func (a *Adapter) Lookup(field string) *Handle {
	return a.handles[field]
}

var (
	boxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	titleStyle = lipgloss.NewStyle().Bold(true)
)

// Render composites a visible overlay onto the base view. The box is drawn
// starting at the handle's anchor row, overwriting the base lines beneath
// it; rows past the end of the base view extend it.
func Render(base string, h *Handle, width int) string {
	if !h.Visible() {
		return base
	}
	boxWidth := width - 4
	if boxWidth < 20 {
		boxWidth = 20
	}
	body := titleStyle.Render(h.title) + "\n" + h.content
	box := boxStyle.Width(boxWidth).Render(body)

	baseLines := strings.Split(base, "\n")
	boxLines := strings.Split(box, "\n")
	row := h.anchor
	if row < 0 {
		row = 0
	}
	for i, line := range boxLines {
		at := row + i
		line = truncate.String(line, uint(width))
		if at < len(baseLines) {
			baseLines[at] = line
		} else {
			baseLines = append(baseLines, line)
		}
	}
	return strings.Join(baseLines, "\n")
}
