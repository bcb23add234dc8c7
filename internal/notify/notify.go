// Package notify surfaces save outcomes outside the editor view. Inside a
// tmux client the status line gets a short message; otherwise notifications
// are dropped.
package notify

import (
	"fmt"
	"os"
	"os/exec"

	gotmux "github.com/GianlucaP106/gotmux/gotmux"

	"github.com/fieldpad/fieldpad/internal/logging"
)

// Notifier reports save results to the user.
type Notifier interface {
	Success(message string)
	Error(message string)
}

// Noop discards notifications.
type Noop struct{}

func (Noop) Success(string) {}
func (Noop) Error(string)   {}

// Tmux shows messages on the tmux status line via display-message.
type Tmux struct{}

func (Tmux) Success(message string) { display(message) }

func (Tmux) Error(message string) { display(fmt.Sprintf("error: %s", message)) }

func display(message string) {
	cmd := exec.Command("tmux", "display-message", message)
	if err := cmd.Run(); err != nil {
		logging.Error(fmt.Errorf("tmux display-message: %w", err))
	}
}

// Detect picks the tmux notifier when the process runs inside a tmux client
// with at least one attached client, Noop otherwise.
func Detect() Notifier {
	if os.Getenv("TMUX") == "" {
		return Noop{}
	}
	client, err := gotmux.DefaultTmux()
	if err != nil {
		return Noop{}
	}
	clients, err := client.ListClients()
	if err != nil || len(clients) == 0 {
		return Noop{}
	}
	return Tmux{}
}
