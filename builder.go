// File: lixenwraith/launcher/builder.go
package launcher

import (
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// ValidatorFunc defines the signature for a function that can validate a resolved Config.
// It runs after required fields are checked and should return an error if validation fails.
type ValidatorFunc func(c *Config) error

// Builder provides a fluent interface for resolving a configuration
type Builder struct {
	opts       Options
	args       []string
	rawArgs    RawArgs
	env        Env
	dotEnv     []string
	err        error
	validators []ValidatorFunc
}

// NewBuilder creates a new builder reading os.Args[1:] and the process
// environment, with key filtering enabled.
func NewBuilder() *Builder {
	return &Builder{
		opts:       DefaultOptions(),
		args:       os.Args[1:],
		validators: make([]ValidatorFunc, 0),
	}
}

// WithArgs sets the command-line arguments to tokenize
func (b *Builder) WithArgs(args []string) *Builder {
	b.args = args
	b.rawArgs = nil
	return b
}

// WithRawArgs sets already tokenized arguments, bypassing ParseArgs
func (b *Builder) WithRawArgs(args RawArgs) *Builder {
	b.rawArgs = args
	b.args = nil
	return b
}

// WithEnv sets the environment snapshot
func (b *Builder) WithEnv(env Env) *Builder {
	b.env = env
	return b
}

// WithDotEnv adds variables from a dotenv file beneath the environment snapshot.
// Files are applied in order; earlier files win over later ones.
func (b *Builder) WithDotEnv(paths ...string) *Builder {
	b.dotEnv = append(b.dotEnv, paths...)
	return b
}

// WithFields declares fields
func (b *Builder) WithFields(fields ...FieldSpec) *Builder {
	b.opts.Fields = append(b.opts.Fields, fields...)
	return b
}

// WithFilterKeys enables or disables key filtering
func (b *Builder) WithFilterKeys(enabled bool) *Builder {
	b.opts.Filter.Enabled = enabled
	return b
}

// WithAllowedArgs adds CLI argument names to the filter allow-list
func (b *Builder) WithAllowedArgs(names ...string) *Builder {
	b.opts.Filter.Args = append(b.opts.Filter.Args, names...)
	return b
}

// WithAllowedEnv adds environment variable names to the filter allow-list
func (b *Builder) WithAllowedEnv(names ...string) *Builder {
	b.opts.Filter.Env = append(b.opts.Filter.Env, names...)
	return b
}

// WithPackageRoot registers a directory usable as "%name/..." in options file paths
func (b *Builder) WithPackageRoot(name, dir string) *Builder {
	if err := ValidatePackageRootName(name); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}
	if b.opts.PackageRoots == nil {
		b.opts.PackageRoots = make(map[string]string)
	}
	b.opts.PackageRoots[name] = dir
	return b
}

// WithWorkDir sets the base directory for relative options file paths
func (b *Builder) WithWorkDir(dir string) *Builder {
	b.opts.WorkDir = dir
	return b
}

// WithFs sets the filesystem options and dotenv files are read from
func (b *Builder) WithFs(fs afero.Fs) *Builder {
	b.opts.Fs = fs
	return b
}

// WithLogger sets the logger
func (b *Builder) WithLogger(logger zerolog.Logger) *Builder {
	b.opts.Logger = logger
	return b
}

// WithSources sets the precedence order for configuration sources
func (b *Builder) WithSources(sources ...Source) *Builder {
	b.opts.Sources = sources
	return b
}

// WithMaxFileSize limits the options file size in bytes
func (b *Builder) WithMaxFileSize(size int64) *Builder {
	b.opts.MaxFileSize = size
	return b
}

// WithValidator adds a validation function that runs at the end of the build process
// Multiple validators can be added and are executed in the order they are added
func (b *Builder) WithValidator(fn ValidatorFunc) *Builder {
	if fn != nil {
		b.validators = append(b.validators, fn)
	}
	return b
}

// Build resolves the configuration with all specified options
func (b *Builder) Build() (*Config, error) {
	if b.err != nil {
		return nil, b.err
	}

	resolver, err := New(b.opts)
	if err != nil {
		return nil, err
	}

	rawArgs := b.rawArgs
	if rawArgs == nil {
		rawArgs, err = ParseArgs(b.args)
		if err != nil {
			return nil, err
		}
	}

	env := b.env
	if env == nil {
		env = EnvFromOS()
	}
	for _, path := range b.dotEnv {
		env, err = env.WithDotEnv(resolver.opts.Fs, path)
		if err != nil {
			return nil, err
		}
	}

	cfg, err := resolver.Resolve(rawArgs, env)
	if err != nil {
		return nil, err
	}

	for _, validator := range b.validators {
		if err := validator(cfg); err != nil {
			return nil, fmt.Errorf("configuration validation failed: %w", err)
		}
	}

	return cfg, nil
}

// MustBuild is like Build but panics on error
func (b *Builder) MustBuild() *Config {
	cfg, err := b.Build()
	if err != nil {
		panic(fmt.Sprintf("config build failed: %v", err))
	}
	return cfg
}

// BuildAndScan builds and decodes the final configuration into the provided target struct pointer
func (b *Builder) BuildAndScan(target any) error {
	cfg, err := b.Build()
	if err != nil {
		return err
	}

	if err := cfg.Scan(target); err != nil {
		return fmt.Errorf("failed to scan final config into target: %w", err)
	}
	return nil
}
