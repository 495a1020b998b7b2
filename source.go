// FILE: lixenwraith/launcher/source.go
package launcher

// Source represents a configuration source, used to define precedence
type Source string

const (
	// SourceCLI represents values taken from command-line arguments
	SourceCLI Source = "cli"
	// SourceEnv represents values taken from environment variables
	SourceEnv Source = "env"
	// SourceFile represents values loaded from the options file
	SourceFile Source = "file"
	// SourceDefault represents field defaults declared in a FieldSpec
	SourceDefault Source = "default"
)

// OptionsFileKey is the reserved CLI argument and environment variable name
// that selects the options file.
const OptionsFileKey = "optionsFile"

// DefaultSources returns the precedence chain, highest priority first.
func DefaultSources() []Source {
	return []Source{SourceCLI, SourceEnv, SourceFile, SourceDefault}
}

// validSource reports whether s is one of the known sources.
func validSource(s Source) bool {
	switch s {
	case SourceCLI, SourceEnv, SourceFile, SourceDefault:
		return true
	}
	return false
}
