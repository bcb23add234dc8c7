// Package apierror digs the most specific human-readable message out of a
// rejection body. Backends shape their errors trees differently, so the walk
// degrades gracefully: field-addressed message, then any message in the
// tree, then the top-level message, then a generic fallback.
package apierror

import (
	"strings"

	"github.com/tidwall/gjson"
)

// Generic is the message shown when the response carries nothing usable.
const Generic = "The update could not be saved."

// IsJSON reports whether the body parses as JSON at all.
func IsJSON(body []byte) bool {
	return gjson.ValidBytes(body)
}

// Extract returns the best error message for the given field path. The body
// is expected to hold an "errors" tree keyed by field path segments; string
// leaves, arrays of strings and nested objects are all accepted.
func Extract(body []byte, fieldPath string) string {
	if !gjson.ValidBytes(body) {
		return Generic
	}
	doc := gjson.ParseBytes(body)
	errs := doc.Get("errors")
	if errs.Exists() {
		if msg := walkPath(errs, segments(fieldPath)); msg != "" {
			return msg
		}
		if msg := firstLeaf(errs); msg != "" {
			return msg
		}
	}
	if msg := strings.TrimSpace(doc.Get("message").String()); msg != "" {
		return msg
	}
	return Generic
}

func segments(fieldPath string) []string {
	path := strings.TrimSpace(fieldPath)
	if path == "" {
		return nil
	}
	return strings.Split(path, ".")
}

// walkPath descends the errors tree one field-path segment at a time. When
// the path runs out, whatever node remains is reduced to its first leaf.
func walkPath(node gjson.Result, segs []string) string {
	for _, seg := range segs {
		if !node.IsObject() {
			break
		}
		next, ok := node.Map()[seg]
		if !ok {
			return ""
		}
		node = next
	}
	return firstLeaf(node)
}

// firstLeaf reduces any node to its first string leaf: strings return
// themselves, arrays yield their first element, objects recurse into their
// first entry.
func firstLeaf(node gjson.Result) string {
	switch {
	case node.Type == gjson.String:
		return strings.TrimSpace(node.Str)
	case node.IsArray():
		var msg string
		node.ForEach(func(_, value gjson.Result) bool {
			msg = firstLeaf(value)
			return msg == ""
		})
		return msg
	case node.IsObject():
		var msg string
		node.ForEach(func(_, value gjson.Result) bool {
			msg = firstLeaf(value)
			return msg == ""
		})
		return msg
	}
	return ""
}
