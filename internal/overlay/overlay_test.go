package overlay

import (
	"strings"
	"testing"
)

func TestMountDisposesPriorHandleForSameField(t *testing.T) {
	a := NewAdapter()
	first := a.Mount("ad", "Name", 0, "one", nil)
	a.Show(first)
	second := a.Mount("ad", "Name", 0, "two", nil)
	if first.Visible() {
		t.Fatalf("prior handle must be hidden after remount")
	}
	if a.Lookup("ad") != second {
		t.Fatalf("expected the new handle to be registered")
	}
}

func TestHideWritesContentBack(t *testing.T) {
	a := NewAdapter()
	var saved string
	h := a.Mount("ad", "Name", 0, "seed", func(content string) { saved = content })
	a.Show(h)
	h.SetContent("edited text")
	a.Hide(h)
	if saved != "edited text" {
		t.Fatalf("expected writeback of live content, got %q", saved)
	}
}

func TestHideOnlyFiresWritebackWhenVisible(t *testing.T) {
	a := NewAdapter()
	called := 0
	h := a.Mount("ad", "Name", 0, "", func(string) { called++ })
	a.Hide(h)
	if called != 0 {
		t.Fatalf("hidden handle must not write back")
	}
	a.Show(h)
	a.Hide(h)
	a.Hide(h)
	if called != 1 {
		t.Fatalf("expected exactly one writeback, got %d", called)
	}
}

func TestDisposeUnregistersHandle(t *testing.T) {
	a := NewAdapter()
	h := a.Mount("ad", "Name", 0, "", nil)
	a.Dispose(h)
	if a.Lookup("ad") != nil {
		t.Fatalf("expected handle to be unregistered")
	}
}

func TestRenderCompositesOverBase(t *testing.T) {
	a := NewAdapter()
	base := strings.Join([]string{"row0", "row1", "row2", "row3", "row4", "row5", "row6"}, "\n")
	h := a.Mount("ad", "Name", 2, "content", nil)
	a.Show(h)
	out := Render(base, h, 40)
	lines := strings.Split(out, "\n")
	if lines[0] != "row0" || lines[1] != "row1" {
		t.Fatalf("rows above the anchor must stay intact:\n%s", out)
	}
	if lines[2] == "row2" {
		t.Fatalf("anchor row must be overwritten by the box:\n%s", out)
	}
	if !strings.Contains(out, "content") || !strings.Contains(out, "Name") {
		t.Fatalf("box must carry title and content:\n%s", out)
	}
}

func TestRenderHiddenReturnsBaseUnchanged(t *testing.T) {
	a := NewAdapter()
	h := a.Mount("ad", "Name", 0, "content", nil)
	if got := Render("base", h, 40); got != "base" {
		t.Fatalf("hidden overlay must not alter the base view")
	}
	if got := Render("base", nil, 40); got != "base" {
		t.Fatalf("nil handle must not alter the base view")
	}
}
