package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/fieldpad/fieldpad/internal/app"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envBaseURL     = "FIELDPAD_URL"
	envPagePath    = "FIELDPAD_PAGE"
	envPageFile    = "FIELDPAD_PAGE_FILE"
	envToken       = "FIELDPAD_TOKEN"
	envTokenCookie = "FIELDPAD_TOKEN_COOKIE"
	envWidth       = "FIELDPAD_WIDTH"
	envHeight      = "FIELDPAD_HEIGHT"
	envShowFooter  = "FIELDPAD_FOOTER"
	envRefresh     = "FIELDPAD_REFRESH"
	envTrace       = "FIELDPAD_TRACE"
	envLogFile     = "FIELDPAD_LOG_FILE"
)

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("fieldpad", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	baseURL := fs.String("url", envOrDefault(env, envBaseURL, ""), "base URL of the backend")
	pagePath := fs.String("page", envOrDefault(env, envPagePath, ""), "path of the page document relative to the base URL")
	pageFile := fs.String("page-file", envOrDefault(env, envPageFile, ""), "local JSON page document (offline mode)")
	token := fs.String("token", envOrDefault(env, envToken, ""), "anti-forgery token sent with every save")
	tokenCookie := fs.String("token-cookie", envOrDefault(env, envTokenCookie, "XSRF-TOKEN"), "cookie name holding the anti-forgery token")
	width := fs.Int("width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)")
	footer := fs.Bool("footer", envOrBool(env, envShowFooter, false), "enable footer hint row (disabled by default)")
	refresh := fs.Duration("refresh", envOrDuration(env, envRefresh, 0), "page refresh interval (0 disables background refresh)")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}
	if *refresh < 0 {
		return Config{}, fmt.Errorf("refresh must be >= 0 (got %s)", *refresh)
	}

	cfg := Config{
		App: app.Config{
			BaseURL:     *baseURL,
			PagePath:    *pagePath,
			PageFile:    *pageFile,
			Token:       *token,
			TokenCookie: *tokenCookie,
			Width:       *width,
			Height:      *height,
			ShowFooter:  *footer,
			Refresh:     *refresh,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Flags: map[string]string{
			"url":         *baseURL,
			"page":        *pagePath,
			"pageFile":    *pageFile,
			"tokenCookie": *tokenCookie,
			"width":       strconv.Itoa(*width),
			"height":      strconv.Itoa(*height),
			"footer":      strconv.FormatBool(*footer),
			"refresh":     refresh.String(),
			"trace":       strconv.FormatBool(*trace),
			"logFile":     *logFile,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrDuration(env map[string]string, key string, fallback time.Duration) time.Duration {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate ensures required minimum configuration is present.
func Validate(cfg Config) error {
	if cfg.App.PageFile == "" && cfg.App.BaseURL == "" {
		return fmt.Errorf("either -url or -page-file is required")
	}
	return nil
}
