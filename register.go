// FILE: lixenwraith/launcher/register.go
package launcher

import (
	"fmt"
	"strings"
)

// FieldType selects the coercion applied to a declared field.
type FieldType int

const (
	// TypeAny leaves the resolved value as received
	TypeAny FieldType = iota
	// TypeString leaves the value as received; declared for documentation and flag generation
	TypeString
	// TypeArray coerces the value to an ordered []string
	TypeArray
	// TypeBoolean coerces the literal strings "true" and "false" to bool
	TypeBoolean
)

// String returns the lowercase name of the type.
func (t FieldType) String() string {
	switch t {
	case TypeString:
		return "string"
	case TypeArray:
		return "array"
	case TypeBoolean:
		return "boolean"
	default:
		return "any"
	}
}

// FieldSpec declares a configuration field: how its value is coerced,
// whether it is required, and its default.
type FieldSpec struct {
	Name        string
	Type        FieldType
	Required    bool
	Default     any    // nil means no default
	Env         string // environment variable feeding this field; defaults to Name
	Description string
}

// envName returns the environment variable name that feeds the field.
func (f FieldSpec) envName() string {
	if f.Env != "" {
		return f.Env
	}
	return f.Name
}

// Array declares an array field.
func Array(name string) FieldSpec {
	return FieldSpec{Name: name, Type: TypeArray}
}

// Boolean declares a boolean field.
func Boolean(name string) FieldSpec {
	return FieldSpec{Name: name, Type: TypeBoolean}
}

// String declares a string field.
func String(name string) FieldSpec {
	return FieldSpec{Name: name, Type: TypeString}
}

// Require returns a copy of the field marked as required.
func (f FieldSpec) Require() FieldSpec {
	f.Required = true
	return f
}

// WithDefault returns a copy of the field with the given default value.
func (f FieldSpec) WithDefault(v any) FieldSpec {
	f.Default = v
	return f
}

// FromEnv returns a copy of the field fed by the named environment variable.
func (f FieldSpec) FromEnv(name string) FieldSpec {
	f.Env = name
	return f
}

// validateFields checks declarations for empty or malformed names and
// duplicates. Later duplicates are rejected rather than silently overriding.
func validateFields(fields []FieldSpec) error {
	seen := make(map[string]bool, len(fields))
	var errs []string

	for i, f := range fields {
		if f.Name == "" {
			errs = append(errs, fmt.Sprintf("field #%d has an empty name", i))
			continue
		}
		if !isValidKeyPath(f.Name) {
			errs = append(errs, fmt.Sprintf("field %q has an invalid name", f.Name))
			continue
		}
		if seen[f.Name] {
			errs = append(errs, fmt.Sprintf("field %q declared more than once", f.Name))
			continue
		}
		if f.Type < TypeAny || f.Type > TypeBoolean {
			errs = append(errs, fmt.Sprintf("field %q has unknown type %d", f.Name, f.Type))
		}
		seen[f.Name] = true
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidField, strings.Join(errs, "; "))
	}
	return nil
}
