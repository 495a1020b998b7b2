// FILE: lixenwraith/launcher/env.go
package launcher

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/spf13/afero"
)

// Env is an immutable snapshot of environment variables. The resolver reads
// only from the snapshot and never consults the process environment itself.
type Env map[string]string

// EnvFromOS captures the current process environment.
func EnvFromOS() Env {
	return EnvFromList(os.Environ())
}

// EnvFromList builds a snapshot from "KEY=value" entries as returned by
// os.Environ.
func EnvFromList(list []string) Env {
	return Env(env.ToMap(list))
}

// Lookup returns the value of name and whether it is set.
func (e Env) Lookup(name string) (string, bool) {
	v, ok := e[name]
	return v, ok
}

// WithDotEnv returns a new snapshot with variables from a dotenv file added
// beneath the existing ones: a variable already in the snapshot keeps its value.
// The receiver is left untouched.
func (e Env) WithDotEnv(fs afero.Fs, path string) (Env, error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open env file '%s': %w", path, err)
	}
	defer f.Close()

	parsed, err := godotenv.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse env file '%s': %w", path, err)
	}

	merged := make(Env, len(e)+len(parsed))
	for k, v := range parsed {
		merged[k] = v
	}
	for k, v := range e {
		merged[k] = v
	}
	return merged, nil
}
