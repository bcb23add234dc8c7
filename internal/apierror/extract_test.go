package apierror

import "testing"

func TestExtractFieldAddressedMessage(t *testing.T) {
	body := []byte(`{"errors":{"personel":{"ad":["Required","Too short"]}}}`)
	if got := Extract(body, "personel.ad"); got != "Required" {
		t.Fatalf("expected first array message, got %q", got)
	}
}

func TestExtractStringLeaf(t *testing.T) {
	body := []byte(`{"errors":{"personel":{"ad":"Must not be blank"}}}`)
	if got := Extract(body, "personel.ad"); got != "Must not be blank" {
		t.Fatalf("expected string leaf, got %q", got)
	}
}

func TestExtractNestedObjectRecursesToFirstLeaf(t *testing.T) {
	body := []byte(`{"errors":{"personel":{"adres":{"sehir":["Unknown city"]}}}}`)
	if got := Extract(body, "personel.adres"); got != "Unknown city" {
		t.Fatalf("expected nested leaf, got %q", got)
	}
}

func TestExtractFallsBackToAnyLeaf(t *testing.T) {
	// path miss, but the errors tree still holds a usable message
	body := []byte(`{"errors":{"other":["Something else failed"]}}`)
	if got := Extract(body, "personel.ad"); got != "Something else failed" {
		t.Fatalf("expected tree fallback, got %q", got)
	}
}

func TestExtractFallsBackToTopLevelMessage(t *testing.T) {
	body := []byte(`{"message":"Validation failed"}`)
	if got := Extract(body, "personel.ad"); got != "Validation failed" {
		t.Fatalf("expected top-level message, got %q", got)
	}
}

func TestExtractGenericForNonJSON(t *testing.T) {
	if got := Extract([]byte("<html>boom</html>"), "personel.ad"); got != Generic {
		t.Fatalf("expected generic message, got %q", got)
	}
}

func TestExtractGenericForEmptyErrors(t *testing.T) {
	if got := Extract([]byte(`{"errors":{}}`), "personel.ad"); got != Generic {
		t.Fatalf("expected generic message, got %q", got)
	}
}

func TestIsJSON(t *testing.T) {
	if !IsJSON([]byte(`{"ok":true}`)) {
		t.Fatalf("expected valid JSON")
	}
	if IsJSON([]byte("nope{")) {
		t.Fatalf("expected invalid JSON")
	}
}
