// File: lixenwraith/launcher/io.go
package launcher

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Dump writes the merged configuration to w in the given format
// (FormatJSON, FormatYAML or FormatTOML).
func (c *Config) Dump(w io.Writer, format string) error {
	data, err := c.Marshal(format)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// Marshal encodes the merged configuration in the given format.
func (c *Config) Marshal(format string) ([]byte, error) {
	values := c.Map()

	var buf bytes.Buffer
	switch format {
	case FormatJSON, FormatJSONC, "":
		encoder := json.NewEncoder(&buf)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(values); err != nil {
			return nil, fmt.Errorf("failed to marshal config data to JSON: %w", err)
		}
	case FormatYAML:
		encoder := yaml.NewEncoder(&buf)
		encoder.SetIndent(2)
		if err := encoder.Encode(values); err != nil {
			return nil, fmt.Errorf("failed to marshal config data to YAML: %w", err)
		}
		if err := encoder.Close(); err != nil {
			return nil, fmt.Errorf("failed to marshal config data to YAML: %w", err)
		}
	case FormatTOML:
		if err := toml.NewEncoder(&buf).Encode(values); err != nil {
			return nil, fmt.Errorf("failed to marshal config data to TOML: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported output format %q", format)
	}
	return buf.Bytes(), nil
}

// Save writes the merged configuration to path atomically. An empty format
// is detected from the file extension.
func (c *Config) Save(path, format string) error {
	if format == "" {
		format = detectFileFormat(path)
	}
	data, err := c.Marshal(format)
	if err != nil {
		return err
	}
	return atomicWriteFile(path, data)
}

// atomicWriteFile performs atomic file write
func atomicWriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory '%s': %w", dir, err)
	}

	tempFile, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}

	tempPath := tempFile.Name()
	removed := false
	defer func() {
		if !removed {
			os.Remove(tempPath)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		tempFile.Close()
		return fmt.Errorf("failed to write temporary file '%s': %w", tempPath, err)
	}

	if err := tempFile.Sync(); err != nil {
		tempFile.Close()
		return fmt.Errorf("failed to sync temporary file '%s': %w", tempPath, err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("failed to close temporary file '%s': %w", tempPath, err)
	}

	if err := os.Chmod(tempPath, 0644); err != nil {
		return fmt.Errorf("failed to set permissions: %w", err)
	}

	if err := os.Rename(tempPath, path); err != nil {
		return fmt.Errorf("failed to rename temporary file '%s' to '%s': %w", tempPath, path, err)
	}
	removed = true

	return nil
}
