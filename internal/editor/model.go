package editor

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/fieldpad/fieldpad/internal/backend"
	"github.com/fieldpad/fieldpad/internal/bus"
	"github.com/fieldpad/fieldpad/internal/data/dispatcher"
	"github.com/fieldpad/fieldpad/internal/notify"
	"github.com/fieldpad/fieldpad/internal/overlay"
	"github.com/fieldpad/fieldpad/internal/page"
	"github.com/fieldpad/fieldpad/internal/state"
	"github.com/fieldpad/fieldpad/internal/theme"
	"github.com/fieldpad/fieldpad/internal/transport"
)

var styles = theme.Default()

// Model implements the Bubble Tea model for the field editor.
type Model struct {
	pages      state.PageStore
	bus        *bus.Bus
	client     *transport.Client
	notifier   notify.Notifier
	overlays   *overlay.Adapter
	backend    *backend.Watcher
	dispatcher *dispatcher.Dispatcher

	session *Session

	cursor  int
	offset  int
	filter  string
	visible []*page.Node

	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool
	infoMsg     string

	// zones maps rendered line numbers to click targets; rebuilt every View.
	zones []zone

	handlers handlerTable
}

// NewModel initialises the editor over a loaded page.
func NewModel(pages state.PageStore, eventBus *bus.Bus, client *transport.Client, notifier notify.Notifier, watcher *backend.Watcher, width, height int, showFooter bool) *Model {
	if notifier == nil {
		notifier = notify.Noop{}
	}
	m := &Model{
		pages:      pages,
		bus:        eventBus,
		client:     client,
		notifier:   notifier,
		overlays:   overlay.NewAdapter(),
		backend:    watcher,
		dispatcher: dispatcher.New(pages),
		showFooter: showFooter,
	}
	if width > 0 {
		m.width = width
		m.fixedWidth = true
	}
	if height > 0 {
		m.height = height
		m.fixedHeight = true
	}
	eventBus.SetSnapshot(func() (string, interface{}) {
		if m.session == nil {
			return "", nil
		}
		return m.session.Field(), m.session.Snapshot()
	})
	m.refreshVisible()
	m.Install()
	return m
}

// Bus exposes the lifecycle bus so embedding programs can attach listeners.
func (m *Model) Bus() *bus.Bus { return m.bus }

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	if m.backend != nil {
		return waitForBackendEvent(m.backend)
	}
	return nil
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if handler := m.handlerFor(msg); handler != nil {
		return m, handler(msg)
	}
	return m, nil
}
