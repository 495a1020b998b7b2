// FILE: lixenwraith/launcher/discovery.go
package launcher

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// PackageRootPrefix marks a package-qualified options file path,
// e.g. "%myapp/config/worker.json".
const PackageRootPrefix = "%"

// ValidatePackageRootName reports whether name can be used as "%name/" in an
// options file path.
func ValidatePackageRootName(name string) error {
	if !isValidKeySegment(name) {
		return fmt.Errorf("invalid package root name %q", name)
	}
	return nil
}

// optionsFileRequest is the options file path asked for by the caller and
// the source that asked for it.
type optionsFileRequest struct {
	path   string
	source Source
}

// locateOptionsFile checks the CLI arguments first, then the environment.
// It returns nil when neither specifies a file. Filtering does not apply here:
// optionsFile is reserved in both sources.
func locateOptionsFile(args RawArgs, env Env) (*optionsFileRequest, error) {
	if raw, ok := args[OptionsFileKey]; ok {
		switch v := raw.(type) {
		case string:
			if v != "" {
				return &optionsFileRequest{path: v, source: SourceCLI}, nil
			}
		case []string:
			// Last occurrence wins for a scalar setting
			if len(v) > 0 && v[len(v)-1] != "" {
				return &optionsFileRequest{path: v[len(v)-1], source: SourceCLI}, nil
			}
		}
		return nil, &FileNotFoundError{
			Path: fmt.Sprintf("%v", raw),
			Err:  fmt.Errorf("--%s requires a path", OptionsFileKey),
		}
	}

	if path, ok := env.Lookup(OptionsFileKey); ok && path != "" {
		return &optionsFileRequest{path: path, source: SourceEnv}, nil
	}

	return nil, nil
}

// resolveOptionsPath turns a requested path into an existing file path.
// Absolute paths are used as-is, package-qualified paths are resolved against
// the registered package roots, anything else is relative to workDir.
func resolveOptionsPath(fs afero.Fs, path, workDir string, roots map[string]string) (string, error) {
	var candidate string

	switch {
	case strings.HasPrefix(path, PackageRootPrefix):
		qualified := strings.TrimPrefix(path, PackageRootPrefix)
		name, rest, _ := strings.Cut(filepath.ToSlash(qualified), "/")
		root, ok := roots[name]
		if !ok {
			return "", &FileNotFoundError{
				Path: path,
				Err:  fmt.Errorf("%w: %q", ErrUnknownPackageRoot, name),
			}
		}
		if !filepath.IsAbs(root) {
			root = filepath.Join(workDir, root)
		}
		candidate = filepath.Join(root, filepath.FromSlash(rest))

	case filepath.IsAbs(path):
		candidate = filepath.Clean(path)

	default:
		candidate = filepath.Join(workDir, path)
	}

	info, err := fs.Stat(candidate)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", &FileNotFoundError{Path: path, Tried: []string{candidate}}
		}
		return "", &FileNotFoundError{Path: path, Tried: []string{candidate}, Err: err}
	}
	if info.IsDir() {
		return "", &FileNotFoundError{
			Path:  path,
			Tried: []string{candidate},
			Err:   fmt.Errorf("'%s' is a directory", candidate),
		}
	}

	return candidate, nil
}
