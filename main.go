package main

import (
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/fieldpad/fieldpad/internal/app"
	"github.com/fieldpad/fieldpad/internal/config"
	"github.com/fieldpad/fieldpad/internal/logging"
	"github.com/fieldpad/fieldpad/internal/logging/events"
)

func main() {
	cfg := config.MustLoad()
	if err := config.Validate(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	logging.Configure(cfg.Logging.FilePath)
	logging.SetTraceEnabled(cfg.Logging.Trace)

	events.App.Start(startupTracePayload(cfg))

	if err := app.Run(cfg.App); err != nil {
		logging.Error(err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	events.App.Shutdown()
}

// startupTracePayload records what this run edits and where it will draw.
func startupTracePayload(cfg config.Config) map[string]interface{} {
	flags := make(map[string]interface{}, len(cfg.Flags)+2)
	for k, v := range cfg.Flags {
		flags[k] = v
	}
	flags["trace"] = cfg.Logging.Trace
	flags["logFile"] = cfg.Logging.FilePath
	payload := map[string]interface{}{
		"argv":     cfg.Args,
		"flags":    flags,
		"source":   pageSource(cfg.App),
		"terminal": inspectTerminal(cfg.App),
	}
	if cfg.App.Refresh > 0 {
		payload["refresh"] = cfg.App.Refresh.String()
	}
	if cwd, err := os.Getwd(); err == nil {
		payload["cwd"] = cwd
	}
	return payload
}

// pageSource names where the page document comes from.
func pageSource(cfg app.Config) string {
	if cfg.PageFile != "" {
		return "file:" + cfg.PageFile
	}
	return cfg.BaseURL + cfg.PagePath
}

// terminalReport describes the terminal the program draws into and the
// dimensions it will use: pinned by configuration, or probed from stdout.
type terminalReport struct {
	StdinTTY  bool   `json:"stdin_tty"`
	StdoutTTY bool   `json:"stdout_tty"`
	Width     int    `json:"width,omitempty"`
	Height    int    `json:"height,omitempty"`
	Pinned    bool   `json:"pinned,omitempty"`
	SizeError string `json:"size_error,omitempty"`
}

func inspectTerminal(cfg app.Config) terminalReport {
	report := terminalReport{
		StdinTTY:  term.IsTerminal(int(os.Stdin.Fd())),
		StdoutTTY: term.IsTerminal(int(os.Stdout.Fd())),
	}
	if cfg.Width > 0 || cfg.Height > 0 {
		report.Width = cfg.Width
		report.Height = cfg.Height
		report.Pinned = true
		return report
	}
	if report.StdoutTTY {
		if width, height, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			report.Width = width
			report.Height = height
		} else {
			report.SizeError = err.Error()
		}
	}
	return report
}
