// FILE: lixenwraith/launcher/coerce.go
package launcher

import (
	"fmt"
	"strings"
)

// coerceValue applies the field's declared type to a resolved value.
// The source matters for arrays only: CLI strings are already tokenized,
// strings from other sources are space-delimited lists.
func coerceValue(field FieldSpec, value any, source Source) any {
	switch field.Type {
	case TypeArray:
		return coerceArray(value, source)
	case TypeBoolean:
		return coerceBoolean(value)
	default:
		return value
	}
}

// coerceArray converts a value into an ordered []string.
func coerceArray(value any, source Source) any {
	switch v := value.(type) {
	case nil:
		return nil
	case []string:
		out := make([]string, len(v))
		copy(out, v)
		return out
	case string:
		if source == SourceCLI {
			return []string{v}
		}
		return strings.Fields(v)
	case bool:
		// A bare array flag from the CLI carries no elements
		if source == SourceCLI && v {
			return []string{}
		}
		return []string{fmt.Sprint(v)}
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
				continue
			}
			out = append(out, fmt.Sprint(item))
		}
		return out
	default:
		return []string{fmt.Sprint(v)}
	}
}

// coerceBoolean converts the exact literals "true" and "false"; any other
// value is returned unchanged.
func coerceBoolean(value any) any {
	if s, ok := value.(string); ok {
		switch s {
		case "true":
			return true
		case "false":
			return false
		}
	}
	return value
}
