package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/fieldpad/fieldpad/internal/backend"
	"github.com/fieldpad/fieldpad/internal/bus"
	"github.com/fieldpad/fieldpad/internal/editor"
	"github.com/fieldpad/fieldpad/internal/logging/events"
	"github.com/fieldpad/fieldpad/internal/notify"
	"github.com/fieldpad/fieldpad/internal/page"
	"github.com/fieldpad/fieldpad/internal/state"
	"github.com/fieldpad/fieldpad/internal/transport"
)

// Config describes user-provided application options.
type Config struct {
	BaseURL     string
	PagePath    string
	PageFile    string
	Token       string
	TokenCookie string
	Width       int
	Height      int
	ShowFooter  bool
	Refresh     time.Duration
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return fmt.Errorf("build cookie jar: %w", err)
	}
	httpClient := &http.Client{Timeout: 30 * time.Second, Jar: jar}

	var client *transport.Client
	var doc page.Page
	var watcher *backend.Watcher

	if cfg.PageFile != "" {
		doc, err = page.LoadFile(cfg.PageFile)
		if err != nil {
			return fmt.Errorf("load page: %w", err)
		}
		events.App.PageLoaded(cfg.PageFile, len(doc.Nodes))
		if cfg.BaseURL != "" {
			client, err = buildClient(cfg, httpClient, jar, doc.Token)
			if err != nil {
				return err
			}
		}
	} else {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		doc, err = fetchPage(ctx, cfg, httpClient)
		cancel()
		if err != nil {
			return fmt.Errorf("load page: %w", err)
		}
		events.App.PageLoaded(cfg.BaseURL, len(doc.Nodes))
		client, err = buildClient(cfg, httpClient, jar, doc.Token)
		if err != nil {
			return err
		}
		if cfg.Refresh > 0 {
			watcher = backend.NewWatcher(func(ctx context.Context) (page.Page, error) {
				return fetchPage(ctx, cfg, httpClient)
			}, cfg.Refresh)
			defer watcher.Stop()
		}
	}

	pages := state.NewPageStore(doc)
	model := editor.NewModel(pages, bus.New(), client, notify.Detect(), watcher, cfg.Width, cfg.Height, cfg.ShowFooter)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err = program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}

func fetchPage(ctx context.Context, cfg Config, httpClient *http.Client) (page.Page, error) {
	url := cfg.BaseURL
	if cfg.PagePath != "" {
		c, err := transport.New(cfg.BaseURL, httpClient, nil)
		if err != nil {
			return page.Page{}, err
		}
		resolved, err := c.Resolve(cfg.PagePath)
		if err != nil {
			return page.Page{}, err
		}
		url = resolved.String()
	}
	return page.Fetch(ctx, httpClient, url)
}

// buildClient assembles the transport with a configured-token-first,
// cookie-second anti-forgery chain. A token found in the page document
// itself slots in between.
func buildClient(cfg Config, httpClient *http.Client, jar http.CookieJar, pageToken string) (*transport.Client, error) {
	chain := transport.ChainToken{}
	if cfg.Token != "" {
		chain = append(chain, transport.StaticToken(cfg.Token))
	}
	if pageToken != "" {
		chain = append(chain, transport.StaticToken(pageToken))
	}
	if cfg.TokenCookie != "" {
		chain = append(chain, transport.CookieToken{Jar: jar, Name: cfg.TokenCookie})
	}
	client, err := transport.New(cfg.BaseURL, httpClient, chain)
	if err != nil {
		return nil, fmt.Errorf("build transport: %w", err)
	}
	return client, nil
}
