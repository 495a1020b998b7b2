// FILE: lixenwraith/launcher/resolver.go
package launcher

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// Options configures a Resolver
type Options struct {
	// Fields declares coercion, defaults and required fields
	Fields []FieldSpec

	// Filter restricts which CLI and env keys participate
	// Default: enabled, allowing declared fields only
	Filter KeyFilter

	// Sources defines the precedence order (first = highest priority)
	// Default: [SourceCLI, SourceEnv, SourceFile, SourceDefault]
	Sources []Source

	// PackageRoots maps names usable as "%name/..." in options file paths to directories
	PackageRoots map[string]string

	// WorkDir is the base for relative options file paths
	// Default: the process working directory at construction time
	WorkDir string

	// Fs is the filesystem the options file is read from
	// Default: the OS filesystem
	Fs afero.Fs

	// Logger receives debug output about discovery and per-key sources
	Logger zerolog.Logger

	// MaxFileSize limits the options file size in bytes (0 = no limit)
	MaxFileSize int64
}

// DefaultOptions returns the standard resolver options
func DefaultOptions() Options {
	return Options{
		Filter:  DefaultKeyFilter(),
		Sources: DefaultSources(),
		Fs:      afero.NewOsFs(),
		Logger:  zerolog.Nop(),
	}
}

// Resolver merges CLI arguments, environment variables, an optional options
// file and field defaults into a Config. A Resolver holds no mutable state;
// concurrent calls to Resolve are independent.
type Resolver struct {
	opts     Options
	defaults map[string]any
}

// New validates opts and creates a Resolver. Zero-valued Sources, Fs and
// WorkDir fall back to their defaults.
func New(opts Options) (*Resolver, error) {
	if err := validateFields(opts.Fields); err != nil {
		return nil, err
	}

	if len(opts.Sources) == 0 {
		opts.Sources = DefaultSources()
	}
	seen := make(map[Source]bool, len(opts.Sources))
	for _, s := range opts.Sources {
		if !validSource(s) {
			return nil, fmt.Errorf("unknown source %q in precedence list", s)
		}
		if seen[s] {
			return nil, fmt.Errorf("source %q listed more than once in precedence list", s)
		}
		seen[s] = true
	}

	if opts.Fs == nil {
		opts.Fs = afero.NewOsFs()
	}
	if opts.WorkDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to determine working directory: %w", err)
		}
		opts.WorkDir = wd
	}

	// Copy caller-owned slices and maps so later mutation cannot leak in
	opts.Fields = append([]FieldSpec(nil), opts.Fields...)
	opts.Sources = append([]Source(nil), opts.Sources...)
	roots := make(map[string]string, len(opts.PackageRoots))
	for name, dir := range opts.PackageRoots {
		roots[name] = dir
	}
	opts.PackageRoots = roots

	defaults := make(map[string]any)
	for _, f := range opts.Fields {
		if f.Default != nil {
			defaults[f.Name] = cloneValue(f.Default)
		}
	}

	return &Resolver{opts: opts, defaults: defaults}, nil
}

// Resolve is a one-shot helper that builds a Resolver with default options
// for the given fields and filter and runs it.
func Resolve(args RawArgs, env Env, fields []FieldSpec, filter KeyFilter) (*Config, error) {
	opts := DefaultOptions()
	opts.Fields = fields
	opts.Filter = filter

	r, err := New(opts)
	if err != nil {
		return nil, err
	}
	return r.Resolve(args, env)
}

// Resolve produces the merged configuration.
//
// The options file is located from the optionsFile CLI argument, then the
// optionsFile environment variable, and loaded if present. CLI and env keys
// are filtered, then every key is taken from the highest-precedence source
// that has a non-nil value for it. Declared fields are coerced and required
// fields checked last. No partial result is returned on error.
func (r *Resolver) Resolve(args RawArgs, env Env) (*Config, error) {
	logger := r.opts.Logger

	var fileValues map[string]any
	var filePath string

	if r.uses(SourceFile) {
		req, err := locateOptionsFile(args, env)
		if err != nil {
			return nil, err
		}
		if req != nil {
			filePath, err = resolveOptionsPath(r.opts.Fs, req.path, r.opts.WorkDir, r.opts.PackageRoots)
			if err != nil {
				return nil, err
			}
			logger.Debug().
				Str("requested", req.path).
				Str("resolved", filePath).
				Str("via", string(req.source)).
				Msg("options file located")

			fileValues, err = loadOptionsFile(r.opts.Fs, filePath, r.opts.MaxFileSize)
			if err != nil {
				return nil, err
			}
		}
	}

	allowArgs, allowEnv := r.opts.Filter.allowSets(r.opts.Fields)
	layers := map[Source]map[string]any{
		SourceCLI:     r.cliLayer(args, allowArgs),
		SourceEnv:     r.envLayer(env, allowEnv),
		SourceFile:    fileValues,
		SourceDefault: r.defaultLayer(),
	}

	cfg := newConfig()
	cfg.optionsFile = filePath

	// Every key from every consulted layer is a candidate
	candidates := make(map[string]bool)
	for _, src := range r.opts.Sources {
		for key := range layers[src] {
			candidates[key] = true
		}
	}

	for key := range candidates {
		for _, src := range r.opts.Sources {
			value, ok := layers[src][key]
			if !ok || value == nil {
				continue
			}
			cfg.values[key] = value
			cfg.origins[key] = src
			break
		}
	}

	for _, field := range r.opts.Fields {
		if value, ok := cfg.values[field.Name]; ok {
			cfg.values[field.Name] = coerceValue(field, value, cfg.origins[field.Name])
		}
	}

	var missing []string
	for _, field := range r.opts.Fields {
		if !field.Required {
			continue
		}
		if value, ok := cfg.values[field.Name]; !ok || value == nil {
			missing = append(missing, field.Name)
		}
	}
	if len(missing) > 0 {
		return nil, &MissingRequiredArgumentError{Fields: missing}
	}

	for _, key := range cfg.Keys() {
		logger.Debug().Str("key", key).Str("source", string(cfg.origins[key])).Msg("resolved")
	}

	return cfg, nil
}

// defaultLayer returns a fresh copy of the field defaults for one resolution.
func (r *Resolver) defaultLayer() map[string]any {
	layer := make(map[string]any, len(r.defaults))
	for key, value := range r.defaults {
		layer[key] = cloneValue(value)
	}
	return layer
}

// uses reports whether src is part of the precedence chain.
func (r *Resolver) uses(src Source) bool {
	for _, s := range r.opts.Sources {
		if s == src {
			return true
		}
	}
	return false
}

// cliLayer returns the CLI arguments that pass the filter.
func (r *Resolver) cliLayer(args RawArgs, allow map[string]bool) map[string]any {
	layer := make(map[string]any, len(args))
	for key, value := range args {
		if allow != nil && !allow[key] {
			continue
		}
		if seq, ok := value.([]string); ok {
			value = append([]string(nil), seq...)
		}
		layer[key] = value
	}
	return layer
}

// envLayer returns the environment variables that pass the filter, plus
// fields fed through an env alias.
func (r *Resolver) envLayer(env Env, allow map[string]bool) map[string]any {
	layer := make(map[string]any)
	for name, value := range env {
		if allow != nil && !allow[name] {
			continue
		}
		layer[name] = value
	}
	for _, field := range r.opts.Fields {
		alias := field.envName()
		if alias == field.Name {
			continue
		}
		if value, ok := env.Lookup(alias); ok {
			layer[field.Name] = value
		}
	}
	return layer
}
