package field

import "testing"

func TestNormalizeScalarTrims(t *testing.T) {
	if got := Normalize([]string{"  hello "}, false); got != "hello" {
		t.Fatalf("expected trimmed scalar, got %q", got)
	}
}

func TestNormalizeEmpty(t *testing.T) {
	if got := Normalize(nil, false); got != "" {
		t.Fatalf("expected empty string, got %q", got)
	}
	if got := Normalize(nil, true); got != "" {
		t.Fatalf("expected empty string for multiple, got %q", got)
	}
}

func TestNormalizeMultipleJoins(t *testing.T) {
	if got := Normalize([]string{"1", "2", "3"}, true); got != "1,2,3" {
		t.Fatalf("expected comma join, got %q", got)
	}
}

func TestFormatDisplayDate(t *testing.T) {
	if got := FormatDisplay([]string{"2024-05-01"}, "date"); got != "01.05.2024" {
		t.Fatalf("expected reformatted date, got %q", got)
	}
}

func TestFormatDisplayDatePassthrough(t *testing.T) {
	// values that do not match the wire date shape stay as-is
	if got := FormatDisplay([]string{"May 2024"}, "date"); got != "May 2024" {
		t.Fatalf("expected passthrough, got %q", got)
	}
}

func TestFormatDisplayMultipleJoins(t *testing.T) {
	if got := FormatDisplay([]string{"Sales", "Support"}, ""); got != "Sales, Support" {
		t.Fatalf("expected label join, got %q", got)
	}
}

func TestDescriptorValuesMultiple(t *testing.T) {
	d := Descriptor{Value: "1, 2 ,3", Multiple: true}
	values := d.Values()
	if len(values) != 3 || values[0] != "1" || values[1] != "2" || values[2] != "3" {
		t.Fatalf("unexpected values: %#v", values)
	}
}

func TestReadingDisplayTextPrefersLabels(t *testing.T) {
	r := Reading{Values: []string{"1"}, Labels: []string{"Sales"}}
	if got := r.DisplayText(); len(got) != 1 || got[0] != "Sales" {
		t.Fatalf("expected labels, got %#v", got)
	}
}
