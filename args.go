// FILE: lixenwraith/launcher/args.go
package launcher

import (
	"fmt"
	"strings"
)

// RawArgs maps an argument name to its tokenized value: a string, a bool, or
// an ordered []string. The resolver never mutates it.
type RawArgs map[string]any

// ParseArgs tokenizes command-line arguments into RawArgs.
//
// Accepted forms are "--name value" and "--name=value". Every non-flag token
// that follows a flag belongs to that occurrence, and repeated occurrences of
// the same flag concatenate, so
//
//	--arrayVar2=baz qux --arrayVar2 quux
//
// yields {"arrayVar2": ["baz", "qux", "quux"]}. A single token is stored as a
// string, a flag with no tokens as true. Tokens before the first flag and
// everything after a bare "--" are positional and not part of the result.
// Flag names are taken as written; only an empty name is rejected.
func ParseArgs(args []string) (RawArgs, error) {
	type occurrence struct {
		count  int
		tokens []string
	}

	collected := make(map[string]*occurrence)
	var current *occurrence

	for i := 0; i < len(args); i++ {
		arg := args[i]

		if arg == "--" {
			break // End of flags
		}

		if !strings.HasPrefix(arg, "--") {
			if current != nil {
				current.tokens = append(current.tokens, arg)
			}
			// Leading positional tokens are skipped
			continue
		}

		argContent := strings.TrimPrefix(arg, "--")
		keyPath, valueStr, hasValue := strings.Cut(argContent, "=")
		if keyPath == "" {
			return nil, fmt.Errorf("%w: empty flag name in %q", ErrArgParse, arg)
		}

		occ, exists := collected[keyPath]
		if !exists {
			occ = &occurrence{}
			collected[keyPath] = occ
		}
		occ.count++
		if hasValue {
			occ.tokens = append(occ.tokens, valueStr)
		}
		current = occ
	}

	result := make(RawArgs, len(collected))
	for key, occ := range collected {
		switch {
		case len(occ.tokens) == 0:
			result[key] = true
		case len(occ.tokens) == 1 && occ.count == 1:
			result[key] = occ.tokens[0]
		default:
			result[key] = occ.tokens
		}
	}

	return result, nil
}
