// FILE: lixenwraith/launcher/loader.go
package launcher

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/afero"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// Options file formats
const (
	FormatJSON  = "json"
	FormatJSONC = "jsonc"
	FormatYAML  = "yaml"
	FormatTOML  = "toml"
)

// loadOptionsFile reads and parses an options file into its top-level object.
// maxSize <= 0 disables the size limit.
func loadOptionsFile(fs afero.Fs, path string, maxSize int64) (map[string]any, error) {
	format := detectFileFormat(path)

	file, err := fs.Open(path)
	if err != nil {
		return nil, &FileNotFoundError{Path: path, Err: err}
	}
	defer file.Close()

	// Read one byte past the limit to detect oversized files
	var reader io.Reader = file
	if maxSize > 0 {
		reader = io.LimitReader(file, maxSize+1)
	}

	fileData, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read options file '%s': %w", path, err)
	}
	if maxSize > 0 && int64(len(fileData)) > maxSize {
		return nil, &ParseError{Path: path, Format: format, Err: fmt.Errorf("file exceeds maximum size %d bytes", maxSize)}
	}

	content, err := parseOptions(fileData, format)
	if err != nil {
		return nil, &ParseError{Path: path, Format: format, Err: err}
	}
	return content, nil
}

// parseOptions decodes data in the given format and requires a top-level object.
func parseOptions(data []byte, format string) (map[string]any, error) {
	var raw any

	switch format {
	case FormatJSON, FormatJSONC:
		if format == FormatJSONC {
			data = jsonc.ToJSON(data)
		}
		decoder := json.NewDecoder(bytes.NewReader(data))
		decoder.UseNumber() // Preserve number precision
		if err := decoder.Decode(&raw); err != nil {
			return nil, err
		}
		if decoder.More() {
			return nil, errors.New("unexpected data after top-level value")
		}
		raw = normalizeNumbers(raw)

	case FormatYAML:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
		if raw == nil {
			// Empty document
			return make(map[string]any), nil
		}

	case FormatTOML:
		content := make(map[string]any)
		if err := toml.Unmarshal(data, &content); err != nil {
			return nil, err
		}
		return content, nil

	default:
		return nil, fmt.Errorf("unsupported format %q", format)
	}

	content, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("top-level value must be an object, got %T", raw)
	}
	return content, nil
}

// normalizeNumbers replaces json.Number values with int64 where the number is
// integral and float64 otherwise.
func normalizeNumbers(v any) any {
	switch val := v.(type) {
	case json.Number:
		if i, err := val.Int64(); err == nil {
			return i
		}
		if f, err := val.Float64(); err == nil {
			return f
		}
		return val.String()
	case map[string]any:
		for k, item := range val {
			val[k] = normalizeNumbers(item)
		}
		return val
	case []any:
		for i, item := range val {
			val[i] = normalizeNumbers(item)
		}
		return val
	default:
		return v
	}
}

// detectFileFormat determines format from file extension. Unknown extensions
// are treated as JSON.
func detectFileFormat(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".jsonc":
		return FormatJSONC
	case ".yaml", ".yml":
		return FormatYAML
	case ".toml", ".tml":
		return FormatTOML
	default:
		return FormatJSON
	}
}
