package state

import (
	"testing"

	"github.com/fieldpad/fieldpad/internal/page"
)

func samplePage() page.Page {
	return page.Page{
		Title: "Personnel",
		Token: "tok",
		Nodes: []*page.Node{
			{Name: "ad", Label: "Name", Value: "Ada", Display: "Ada", Editable: true},
			{Name: "soyad", Label: "Surname", Value: "L", Display: "L", Editable: true},
		},
	}
}

func TestApplyUpdatesChangedNodes(t *testing.T) {
	store := NewPageStore(samplePage())
	snapshot := samplePage()
	snapshot.Nodes[0].Value = "Grace"
	snapshot.Nodes[0].Display = "Grace"

	if !store.Apply(snapshot, "") {
		t.Fatalf("expected change to be reported")
	}
	if got := store.Find("ad").Value; got != "Grace" {
		t.Fatalf("expected updated value, got %q", got)
	}
}

func TestApplySkipsActiveField(t *testing.T) {
	store := NewPageStore(samplePage())
	snapshot := samplePage()
	snapshot.Nodes[0].Value = "Grace"

	if store.Apply(snapshot, "ad") {
		t.Fatalf("expected no reported change when only the active field differs")
	}
	if got := store.Find("ad").Value; got != "Ada" {
		t.Fatalf("active field must keep its value, got %q", got)
	}
}

func TestApplyAddsNewNodes(t *testing.T) {
	store := NewPageStore(samplePage())
	snapshot := samplePage()
	snapshot.Nodes = append(snapshot.Nodes, &page.Node{Name: "unvan", Label: "Title"})

	if !store.Apply(snapshot, "") {
		t.Fatalf("expected change for added node")
	}
	if store.Find("unvan") == nil {
		t.Fatalf("expected new node in store")
	}
}

func TestApplyNoChange(t *testing.T) {
	store := NewPageStore(samplePage())
	if store.Apply(samplePage(), "") {
		t.Fatalf("identical snapshot must not report a change")
	}
}

func TestNodesReturnsCopyOfSlice(t *testing.T) {
	store := NewPageStore(samplePage())
	nodes := store.Nodes()
	nodes[0] = nil
	if store.Find("ad") == nil {
		t.Fatalf("mutating the returned slice must not affect the store")
	}
}
