// FILE: lixenwraith/launcher/errors.go
package launcher

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors. Typed errors below wrap these so callers can use errors.Is.
var (
	ErrOptionsFileNotFound = errors.New("options file not found")
	ErrOptionsFileParse    = errors.New("options file parse error")
	ErrMissingRequired     = errors.New("missing required argument")
	ErrArgParse            = errors.New("argument parse error")
	ErrInvalidField        = errors.New("invalid field declaration")
	ErrUnknownPackageRoot  = errors.New("unknown package root")
)

// FileNotFoundError reports an options file path that was specified but
// could not be resolved to a readable file.
type FileNotFoundError struct {
	Path  string   // path as given by the caller
	Tried []string // candidate locations checked, in order
	Err   error    // underlying cause, if any
}

func (e *FileNotFoundError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "options file %q not found", e.Path)
	if len(e.Tried) > 0 {
		fmt.Fprintf(&b, " (tried: %s)", strings.Join(e.Tried, ", "))
	}
	if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}
	return b.String()
}

func (e *FileNotFoundError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrOptionsFileNotFound, e.Err}
	}
	return []error{ErrOptionsFileNotFound}
}

// ParseError reports an options file whose content is not a valid object
// in the detected format.
type ParseError struct {
	Path   string
	Format string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse %s options file '%s': %v", strings.ToUpper(e.Format), e.Path, e.Err)
}

func (e *ParseError) Unwrap() []error {
	return []error{ErrOptionsFileParse, e.Err}
}

// MissingRequiredArgumentError lists required fields left without a value
// after merge and coercion.
type MissingRequiredArgumentError struct {
	Fields []string
}

func (e *MissingRequiredArgumentError) Error() string {
	if len(e.Fields) == 1 {
		return "Missing required argument: " + e.Fields[0]
	}
	return "Missing required arguments: " + strings.Join(e.Fields, ", ")
}

func (e *MissingRequiredArgumentError) Unwrap() error {
	return ErrMissingRequired
}
