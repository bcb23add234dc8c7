// Package field models one editable field: its attribute-derived descriptor,
// the value codec, and the input adapters used during an edit session.
package field

import (
	"fmt"
	"strings"
)

// Kind is the editable control variety.
type Kind int

const (
	KindInput Kind = iota
	KindTextArea
	KindSelect
)

func (k Kind) String() string {
	switch k {
	case KindTextArea:
		return "textarea"
	case KindSelect:
		return "select"
	default:
		return "input"
	}
}

// ParseKind maps the attribute value onto a Kind.
func ParseKind(raw string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "input":
		return KindInput, nil
	case "textarea":
		return KindTextArea, nil
	case "select":
		return KindSelect, nil
	}
	return KindInput, fmt.Errorf("unknown input kind %q", raw)
}

// Mode is the edit presentation strategy.
type Mode int

const (
	ModeInline Mode = iota
	ModePopup
)

func (m Mode) String() string {
	if m == ModePopup {
		return "popup"
	}
	return "inline"
}

// ParseMode maps the attribute value onto a Mode.
func ParseMode(raw string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "inline":
		return ModeInline, nil
	case "popup":
		return ModePopup, nil
	}
	return ModeInline, fmt.Errorf("unknown display mode %q", raw)
}

// Option is one selectable choice of a select field.
type Option struct {
	Value string
	Label string
}

// Descriptor is the attribute-derived description of one editable field,
// read fresh from its page node each time a session opens.
type Descriptor struct {
	Name        string
	Label       string
	URL         string
	Path        string // dot-separated logical path, e.g. "personel.departmanlar"
	Value       string // raw attribute value at session open
	Kind        Kind
	Subtype     string // html subtype, e.g. "text", "date"
	Placeholder string
	Mode        Mode
	Multiple    bool
	Options     []Option
}

// Values splits the raw attribute value into the slice form the codec and
// adapters work with. Multi-valued fields store comma-joined values.
func (d Descriptor) Values() []string {
	if strings.TrimSpace(d.Value) == "" {
		return nil
	}
	if d.Multiple {
		parts := strings.Split(d.Value, ",")
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			p = strings.TrimSpace(p)
			if p != "" {
				out = append(out, p)
			}
		}
		return out
	}
	return []string{d.Value}
}
