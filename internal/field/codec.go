package field

import (
	"regexp"
	"strings"
)

// Reading is the result of reading an input adapter's current state.
type Reading struct {
	Values   []string
	Multiple bool
	Labels   []string
}

// Scalar returns the single value of a non-multiple reading.
func (r Reading) Scalar() string {
	if len(r.Values) == 0 {
		return ""
	}
	return r.Values[0]
}

// DisplayText is the human-readable form of a reading: option labels when
// present, raw values otherwise.
func (r Reading) DisplayText() []string {
	if len(r.Labels) > 0 {
		return r.Labels
	}
	return r.Values
}

var datePattern = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})$`)

// Normalize produces the canonical comparison form used for the dirty check.
// Slices comma-join, scalars trim. Never used for transmission.
func Normalize(values []string, multiple bool) string {
	if multiple {
		return strings.Join(values, ",")
	}
	if len(values) == 0 {
		return ""
	}
	return strings.TrimSpace(values[0])
}

// FormatDisplay renders values for the read view. Slices comma-join; a
// scalar date in YYYY-MM-DD form becomes DD.MM.YYYY; everything else passes
// through unchanged.
func FormatDisplay(values []string, subtype string) string {
	if len(values) > 1 {
		return strings.Join(values, ", ")
	}
	value := ""
	if len(values) == 1 {
		value = values[0]
	}
	if strings.EqualFold(subtype, "date") {
		if m := datePattern.FindStringSubmatch(value); m != nil {
			return m[3] + "." + m[2] + "." + m[1]
		}
	}
	return value
}
