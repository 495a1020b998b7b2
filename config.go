// FILE: lixenwraith/launcher/config.go
package launcher

// Config is the merged result of a resolution: an open mapping from key to
// value, with the source each value came from. A Config is never modified
// after Resolve returns it.
type Config struct {
	values      map[string]any
	origins     map[string]Source
	optionsFile string
}

// newConfig creates an empty Config.
func newConfig() *Config {
	return &Config{
		values:  make(map[string]any),
		origins: make(map[string]Source),
	}
}

// Get returns the resolved value for key and whether the key is present.
// Slices and maps are returned as copies.
func (c *Config) Get(key string) (any, bool) {
	v, ok := c.values[key]
	return cloneValue(v), ok
}

// Has reports whether key is present.
func (c *Config) Has(key string) bool {
	_, ok := c.values[key]
	return ok
}

// Len returns the number of keys.
func (c *Config) Len() int {
	return len(c.values)
}

// Keys returns all keys in lexical order.
func (c *Config) Keys() []string {
	return sortedKeys(c.values)
}

// Map returns a deep copy of the merged values.
func (c *Config) Map() map[string]any {
	out := make(map[string]any, len(c.values))
	for k, v := range c.values {
		out[k] = cloneValue(v)
	}
	return out
}

// Source returns the source that supplied the value for key.
func (c *Config) Source(key string) (Source, bool) {
	s, ok := c.origins[key]
	return s, ok
}

// OptionsFile returns the resolved path of the options file that was
// loaded, or "" if none was specified.
func (c *Config) OptionsFile() string {
	return c.optionsFile
}
