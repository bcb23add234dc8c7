// Package transport builds the wire body for partial updates and issues the
// PATCH request. Interpretation of status and body stays with the caller.
package transport

import (
	"context"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"github.com/fieldpad/fieldpad/internal/logging/events"
)

// Client submits partial updates against a base URL.
type Client struct {
	http   *http.Client
	base   *url.URL
	tokens TokenSource
}

// New builds a client. A nil httpClient gets a cookie-jar-backed default so
// session cookies ride along with every request.
func New(baseURL string, httpClient *http.Client, tokens TokenSource) (*Client, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if httpClient == nil {
		jar, err := cookiejar.New(nil)
		if err != nil {
			return nil, fmt.Errorf("build cookie jar: %w", err)
		}
		httpClient = &http.Client{Timeout: 30 * time.Second, Jar: jar}
	}
	return &Client{http: httpClient, base: base, tokens: tokens}, nil
}

// HTTP exposes the underlying client for page fetches that must share the
// same cookie jar.
func (c *Client) HTTP() *http.Client { return c.http }

// Resolve turns a possibly relative resource reference into an absolute URL.
func (c *Client) Resolve(ref string) (*url.URL, error) {
	u, err := url.Parse(ref)
	if err != nil {
		return nil, fmt.Errorf("parse resource url %q: %w", ref, err)
	}
	return c.base.ResolveReference(u), nil
}

// Submit issues the PATCH carrying one field's new value. The raw response
// is returned for the caller to interpret; the body is not consumed here.
func (c *Client) Submit(ctx context.Context, ref, fieldPath string, values []string, multiple bool) (*http.Response, error) {
	target, err := c.Resolve(ref)
	if err != nil {
		return nil, err
	}
	body := EncodeBody(fieldPath, values, multiple)
	req, err := http.NewRequestWithContext(ctx, http.MethodPatch, target.String(), strings.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build patch request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Requested-With", "XMLHttpRequest")
	if c.tokens != nil {
		if token := c.tokens.Token(target); token != "" {
			req.Header.Set("X-CSRF-Token", token)
		}
	}
	events.Transport.Request(target.String(), fieldPath, multiple)
	resp, err := c.http.Do(req)
	if err != nil {
		events.Transport.Failure(target.String(), err)
		return nil, fmt.Errorf("submit %s: %w", fieldPath, err)
	}
	events.Transport.Response(target.String(), resp.StatusCode)
	return resp, nil
}

// EncodeBody produces the URL-encoded form body. An empty field path falls
// back to the bare "value" parameter; otherwise the dot path converts to
// bracket notation, with repeated "[]" entries for multi-valued fields.
func EncodeBody(fieldPath string, values []string, multiple bool) string {
	form := url.Values{}
	name := BracketName(fieldPath)
	if name == "" {
		name = "value"
	}
	if multiple {
		key := name + "[]"
		for _, v := range values {
			form.Add(key, v)
		}
		return form.Encode()
	}
	value := ""
	if len(values) > 0 {
		value = values[0]
	}
	form.Set(name, value)
	return form.Encode()
}

// BracketName converts "a.b.c" to "a[b][c]". Empty input stays empty.
func BracketName(fieldPath string) string {
	path := strings.TrimSpace(fieldPath)
	if path == "" {
		return ""
	}
	segments := strings.Split(path, ".")
	var b strings.Builder
	b.WriteString(segments[0])
	for _, seg := range segments[1:] {
		b.WriteByte('[')
		b.WriteString(seg)
		b.WriteByte(']')
	}
	return b.String()
}
