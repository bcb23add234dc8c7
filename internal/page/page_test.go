package page

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fieldpad/fieldpad/internal/field"
)

const sampleDocument = `{
  "title": "Personnel",
  "token": "doc-token",
  "fields": [
    {"name": "ad", "label": "Name", "url": "/personel/7", "field": "personel.ad", "value": "Ada", "input": "input", "type": "text"},
    {"name": "dogum", "label": "Born", "url": "/personel/7", "field": "personel.dogum", "value": "2024-05-01", "input": "input", "type": "date", "mode": "popup"},
    {"name": "departmanlar", "label": "Departments", "url": "/personel/7", "field": "personel.departmanlar", "value": "1,2", "input": "select", "multiple": true,
     "options": [{"value": "1", "label": "Sales"}, {"value": "2", "label": "Support"}]},
    {"name": "not", "label": "Notes", "url": "/personel/7", "field": "personel.not", "input": "textarea", "editable": false}
  ]
}`

func TestParseDocument(t *testing.T) {
	p, err := Parse([]byte(sampleDocument))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if p.Title != "Personnel" || p.Token != "doc-token" {
		t.Fatalf("unexpected document header: %#v", p)
	}
	if len(p.Nodes) != 4 {
		t.Fatalf("expected 4 nodes, got %d", len(p.Nodes))
	}
	ad := p.Find("ad")
	if ad == nil || ad.Kind != field.KindInput || !ad.Editable {
		t.Fatalf("unexpected ad node: %#v", ad)
	}
	if p.Find("not").Editable {
		t.Fatalf("expected notes to be read-only")
	}
	if p.Find("dogum").Mode != field.ModePopup {
		t.Fatalf("expected popup mode for dogum")
	}
}

func TestParseResolvesInitialDisplay(t *testing.T) {
	p, err := Parse([]byte(sampleDocument))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if got := p.Find("dogum").Display; got != "01.05.2024" {
		t.Fatalf("expected reformatted date display, got %q", got)
	}
	if got := p.Find("departmanlar").Display; got != "Sales, Support" {
		t.Fatalf("expected option labels in display, got %q", got)
	}
}

func TestParseRejectsDuplicateNames(t *testing.T) {
	doc := `{"fields":[{"name":"a","input":"input"},{"name":"a","input":"input"}]}`
	if _, err := Parse([]byte(doc)); err == nil {
		t.Fatalf("expected duplicate name error")
	}
}

func TestParseRejectsUnknownKind(t *testing.T) {
	doc := `{"fields":[{"name":"a","input":"slider"}]}`
	if _, err := Parse([]byte(doc)); err == nil {
		t.Fatalf("expected unknown kind error")
	}
}

func TestParseDefaultsLabelToName(t *testing.T) {
	doc := `{"fields":[{"name":"a","input":"input"}]}`
	p, err := Parse([]byte(doc))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if p.Nodes[0].Label != "a" {
		t.Fatalf("expected label fallback, got %q", p.Nodes[0].Label)
	}
}

func TestFetchDecodesResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if accept := r.Header.Get("Accept"); accept != "application/json" {
			t.Errorf("unexpected accept header: %q", accept)
		}
		w.Write([]byte(sampleDocument))
	}))
	defer srv.Close()

	p, err := Fetch(context.Background(), srv.Client(), srv.URL)
	if err != nil {
		t.Fatalf("fetch failed: %v", err)
	}
	if len(p.Nodes) != 4 {
		t.Fatalf("expected 4 nodes, got %d", len(p.Nodes))
	}
}

func TestFetchRejectsErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	if _, err := Fetch(context.Background(), srv.Client(), srv.URL); err == nil {
		t.Fatalf("expected status error")
	}
}

func TestDescriptorCopiesOptions(t *testing.T) {
	p, err := Parse([]byte(sampleDocument))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	node := p.Find("departmanlar")
	d := node.Descriptor()
	d.Options[0].Label = "mutated"
	if node.Options[0].Label != "Sales" {
		t.Fatalf("descriptor mutation leaked into node")
	}
}
