package config

import (
	"testing"
	"time"
)

func TestLoadArgsDefaults(t *testing.T) {
	cfg, err := LoadArgs(nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.TokenCookie != "XSRF-TOKEN" {
		t.Fatalf("unexpected default token cookie: %q", cfg.App.TokenCookie)
	}
	if cfg.App.Refresh != 0 {
		t.Fatalf("expected refresh disabled by default, got %s", cfg.App.Refresh)
	}
	if cfg.Logging.Trace {
		t.Fatalf("expected trace disabled by default")
	}
}

func TestLoadArgsFlags(t *testing.T) {
	cfg, err := LoadArgs([]string{
		"-url", "https://backend.test",
		"-page", "/profile",
		"-token", "tok",
		"-width", "100",
		"-refresh", "5s",
		"-trace",
	}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.BaseURL != "https://backend.test" {
		t.Fatalf("unexpected base url: %q", cfg.App.BaseURL)
	}
	if cfg.App.PagePath != "/profile" {
		t.Fatalf("unexpected page path: %q", cfg.App.PagePath)
	}
	if cfg.App.Token != "tok" {
		t.Fatalf("unexpected token: %q", cfg.App.Token)
	}
	if cfg.App.Width != 100 {
		t.Fatalf("unexpected width: %d", cfg.App.Width)
	}
	if cfg.App.Refresh != 5*time.Second {
		t.Fatalf("unexpected refresh: %s", cfg.App.Refresh)
	}
	if !cfg.Logging.Trace {
		t.Fatalf("expected trace enabled")
	}
}

func TestLoadArgsEnvFallback(t *testing.T) {
	env := []string{
		"FIELDPAD_URL=https://env.test",
		"FIELDPAD_FOOTER=true",
		"FIELDPAD_REFRESH=30s",
	}
	cfg, err := LoadArgs(nil, env)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.BaseURL != "https://env.test" {
		t.Fatalf("expected env base url, got %q", cfg.App.BaseURL)
	}
	if !cfg.App.ShowFooter {
		t.Fatalf("expected footer from env")
	}
	if cfg.App.Refresh != 30*time.Second {
		t.Fatalf("unexpected refresh: %s", cfg.App.Refresh)
	}
}

func TestLoadArgsFlagOverridesEnv(t *testing.T) {
	cfg, err := LoadArgs([]string{"-url", "https://flag.test"}, []string{"FIELDPAD_URL=https://env.test"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.BaseURL != "https://flag.test" {
		t.Fatalf("expected flag to win, got %q", cfg.App.BaseURL)
	}
}

func TestLoadArgsRejectsNegativeDimensions(t *testing.T) {
	if _, err := LoadArgs([]string{"-width", "-1"}, nil); err == nil {
		t.Fatalf("expected width validation error")
	}
	if _, err := LoadArgs([]string{"-height", "-2"}, nil); err == nil {
		t.Fatalf("expected height validation error")
	}
}

func TestValidateRequiresSource(t *testing.T) {
	if err := Validate(Config{}); err == nil {
		t.Fatalf("expected validation error without url or page file")
	}
	cfg, err := LoadArgs([]string{"-page-file", "page.json"}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := Validate(cfg); err != nil {
		t.Fatalf("page file alone should satisfy validation: %v", err)
	}
}
