// File: lixenwraith/launcher/helper.go
package launcher

import (
	"sort"
	"strings"
)

// isValidKeySegment checks if a single path segment is a valid key part.
// Keys are sequences of ASCII letters, ASCII digits, underscores, and dashes (A-Za-z0-9_-).
func isValidKeySegment(s string) bool {
	if len(s) == 0 {
		return false
	}
	if strings.ContainsRune(s, '.') {
		return false // Segments themselves cannot contain dots
	}

	for _, r := range s {
		isLetter := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
		isDigit := r >= '0' && r <= '9'
		isUnderscore := r == '_'
		isDash := r == '-'

		if !(isLetter || isDigit || isUnderscore || isDash) {
			return false
		}
	}
	return true
}

// isValidKeyPath reports whether every dot-separated segment of path is a
// valid key segment.
func isValidKeyPath(path string) bool {
	if path == "" {
		return false
	}
	for _, segment := range strings.Split(path, ".") {
		if !isValidKeySegment(segment) {
			return false
		}
	}
	return true
}

// sortedKeys returns the keys of m in lexical order.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// stringSet builds a lookup set from names, skipping empty entries.
func stringSet(names ...[]string) map[string]bool {
	set := make(map[string]bool)
	for _, list := range names {
		for _, n := range list {
			if n != "" {
				set[n] = true
			}
		}
	}
	return set
}

// cloneValue returns a deep copy of maps and slices as produced by the
// loaders and the tokenizer. Other values are returned as-is.
func cloneValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = cloneValue(item)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = cloneValue(item)
		}
		return out
	case []string:
		out := make([]string, len(val))
		copy(out, val)
		return out
	default:
		return v
	}
}
