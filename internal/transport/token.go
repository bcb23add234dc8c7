package transport

import (
	"net/http"
	"net/url"

	"github.com/fieldpad/fieldpad/internal/logging/events"
)

// TokenSource yields the anti-forgery token to attach to a request bound for
// the given URL. An empty return means no token available.
type TokenSource interface {
	Token(u *url.URL) string
}

// StaticToken always returns the same configured token.
type StaticToken string

func (s StaticToken) Token(*url.URL) string { return string(s) }

// CookieToken reads the token from a named cookie in the jar.
type CookieToken struct {
	Jar  http.CookieJar
	Name string
}

func (c CookieToken) Token(u *url.URL) string {
	if c.Jar == nil || c.Name == "" || u == nil {
		return ""
	}
	for _, cookie := range c.Jar.Cookies(u) {
		if cookie.Name == c.Name {
			return cookie.Value
		}
	}
	return ""
}

// ChainToken tries each source in order and returns the first non-empty
// token. Configured tokens come before cookie lookups.
type ChainToken []TokenSource

func (c ChainToken) Token(u *url.URL) string {
	for _, src := range c {
		if token := src.Token(u); token != "" {
			events.Transport.TokenSource(sourceName(src))
			return token
		}
	}
	return ""
}

func sourceName(src TokenSource) string {
	switch src.(type) {
	case StaticToken:
		return "static"
	case CookieToken:
		return "cookie"
	default:
		return "chain"
	}
}
