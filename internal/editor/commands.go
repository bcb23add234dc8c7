package editor

import (
	"context"
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/fieldpad/fieldpad/internal/backend"
	"github.com/fieldpad/fieldpad/internal/transport"
)

// saveResultMsg carries the submit outcome back into the update loop. The
// field name lets the handler discard results for sessions that have since
// been replaced.
type saveResultMsg struct {
	field  string
	status int
	body   []byte
	err    error
}

// focusMsg defers input focus until after the open render settles.
type focusMsg struct {
	field string
}

func focusCmd(field string) tea.Cmd {
	return tea.Tick(75*time.Millisecond, func(time.Time) tea.Msg {
		return focusMsg{field: field}
	})
}

func saveCmd(client *transport.Client, fieldName, ref, path string, values []string, multiple bool) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		resp, err := client.Submit(ctx, ref, path, values, multiple)
		if err != nil {
			return saveResultMsg{field: fieldName, err: err}
		}
		defer resp.Body.Close()
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return saveResultMsg{field: fieldName, err: err}
		}
		return saveResultMsg{field: fieldName, status: resp.StatusCode, body: body}
	}
}

func waitForBackendEvent(w *backend.Watcher) tea.Cmd {
	return func() tea.Msg {
		evt, ok := <-w.Events()
		if !ok {
			return backendDoneMsg{}
		}
		return backendEventMsg{event: evt}
	}
}

type backendEventMsg struct {
	event backend.Event
}

type backendDoneMsg struct{}
