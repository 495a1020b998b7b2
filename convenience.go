// File: lixenwraith/launcher/convenience.go
package launcher

import (
	"fmt"
	"strings"
)

// Quick resolves configuration for the current process with a single call:
// os.Args[1:], the process environment, key filtering on, and the given fields.
func Quick(fields ...FieldSpec) (*Config, error) {
	return NewBuilder().WithFields(fields...).Build()
}

// QuickUnfiltered is like Quick but lets every argument and environment
// variable through.
func QuickUnfiltered(fields ...FieldSpec) (*Config, error) {
	return NewBuilder().WithFields(fields...).WithFilterKeys(false).Build()
}

// MustQuick is like Quick but panics on error
func MustQuick(fields ...FieldSpec) *Config {
	cfg, err := Quick(fields...)
	if err != nil {
		panic(fmt.Sprintf("config initialization failed: %v", err))
	}
	return cfg
}

// Debug returns a formatted string showing all configuration values and their sources
func (c *Config) Debug() string {
	var b strings.Builder
	b.WriteString("Configuration Debug Info:\n")
	if c.optionsFile != "" {
		b.WriteString(fmt.Sprintf("Options file: %s\n", c.optionsFile))
	}
	b.WriteString("Current values:\n")

	for _, key := range c.Keys() {
		b.WriteString(fmt.Sprintf("  %s: %v (%s)\n", key, c.values[key], c.origins[key]))
	}

	return b.String()
}
