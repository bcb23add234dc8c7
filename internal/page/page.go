// Package page loads and holds the editable-field document: the ordered set
// of nodes whose attributes describe one field each, fetched from the
// backend or read from a local file.
package page

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/fieldpad/fieldpad/internal/field"
)

// Node is one field row on the page. The attribute set mirrors the node
// markers the backend renders; the display text and the edit content
// template are the node's mutable parts.
type Node struct {
	Name        string
	Label       string
	URL         string
	Path        string
	Value       string
	Kind        field.Kind
	Subtype     string
	Placeholder string
	Mode        field.Mode
	Editable    bool
	Multiple    bool
	Options     []field.Option

	// Display is the visible editable-text target shown in read mode.
	Display string
	// Template records the popup's last edit-mode content, written back
	// when its overlay hides.
	Template string
}

// Descriptor reads the node's attributes fresh, as at session open.
func (n *Node) Descriptor() field.Descriptor {
	return field.Descriptor{
		Name:        n.Name,
		Label:       n.Label,
		URL:         n.URL,
		Path:        n.Path,
		Value:       n.Value,
		Kind:        n.Kind,
		Subtype:     n.Subtype,
		Placeholder: n.Placeholder,
		Mode:        n.Mode,
		Multiple:    n.Multiple,
		Options:     append([]field.Option(nil), n.Options...),
	}
}

// Page is the decoded document.
type Page struct {
	Title string
	Token string // anti-forgery token rendered into the document, if any
	Nodes []*Node
}

// Find returns the node with the given name, or nil.
func (p Page) Find(name string) *Node {
	for _, n := range p.Nodes {
		if n.Name == name {
			return n
		}
	}
	return nil
}

type wireOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type wireField struct {
	Name        string       `json:"name"`
	Label       string       `json:"label"`
	URL         string       `json:"url"`
	Field       string       `json:"field"`
	Value       string       `json:"value"`
	Input       string       `json:"input"`
	Type        string       `json:"type"`
	Placeholder string       `json:"placeholder"`
	Mode        string       `json:"mode"`
	Editable    *bool        `json:"editable"`
	Multiple    bool         `json:"multiple"`
	Options     []wireOption `json:"options"`
}

type wireDocument struct {
	Title  string      `json:"title"`
	Token  string      `json:"token"`
	Fields []wireField `json:"fields"`
}

// Fetch retrieves and decodes the page document with a GET request.
func Fetch(ctx context.Context, client *http.Client, url string) (Page, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Page{}, fmt.Errorf("build page request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	resp, err := client.Do(req)
	if err != nil {
		return Page{}, fmt.Errorf("fetch page: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Page{}, fmt.Errorf("fetch page: unexpected status %d", resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Page{}, fmt.Errorf("read page body: %w", err)
	}
	return Parse(body)
}

// LoadFile reads the page document from a local JSON file.
func LoadFile(path string) (Page, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Page{}, fmt.Errorf("read page file: %w", err)
	}
	return Parse(data)
}

// Parse decodes a document and validates each field's attribute set.
// Fields with unknown kinds or modes are rejected rather than skipped so a
// malformed document surfaces at load time, not mid-session.
func Parse(data []byte) (Page, error) {
	var doc wireDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return Page{}, fmt.Errorf("decode page document: %w", err)
	}
	p := Page{Title: doc.Title, Token: doc.Token}
	seen := make(map[string]struct{}, len(doc.Fields))
	for i, wf := range doc.Fields {
		name := strings.TrimSpace(wf.Name)
		if name == "" {
			return Page{}, fmt.Errorf("field %d: missing name", i)
		}
		if _, dup := seen[name]; dup {
			return Page{}, fmt.Errorf("field %q: duplicate name", name)
		}
		seen[name] = struct{}{}
		kind, err := field.ParseKind(wf.Input)
		if err != nil {
			return Page{}, fmt.Errorf("field %q: %w", name, err)
		}
		mode, err := field.ParseMode(wf.Mode)
		if err != nil {
			return Page{}, fmt.Errorf("field %q: %w", name, err)
		}
		editable := true
		if wf.Editable != nil {
			editable = *wf.Editable
		}
		node := &Node{
			Name:        name,
			Label:       wf.Label,
			URL:         wf.URL,
			Path:        wf.Field,
			Value:       wf.Value,
			Kind:        kind,
			Subtype:     wf.Type,
			Placeholder: wf.Placeholder,
			Mode:        mode,
			Editable:    editable,
			Multiple:    wf.Multiple,
		}
		if node.Label == "" {
			node.Label = name
		}
		for _, opt := range wf.Options {
			node.Options = append(node.Options, field.Option{Value: opt.Value, Label: opt.Label})
		}
		node.Display = initialDisplay(node)
		p.Nodes = append(p.Nodes, node)
	}
	return p, nil
}

// initialDisplay renders the read-mode text from the raw attribute value,
// resolving option labels for selects.
func initialDisplay(n *Node) string {
	d := n.Descriptor()
	values := d.Values()
	if n.Kind == field.KindSelect {
		labels := make([]string, 0, len(values))
		for _, v := range values {
			labels = append(labels, optionLabel(n.Options, v))
		}
		return field.FormatDisplay(labels, n.Subtype)
	}
	return field.FormatDisplay(values, n.Subtype)
}

func optionLabel(options []field.Option, value string) string {
	for _, opt := range options {
		if opt.Value == value {
			return opt.Label
		}
	}
	return value
}
