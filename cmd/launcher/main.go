// FILE: lixenwraith/launcher/cmd/launcher/main.go

// Command launcher resolves configuration from its arguments, environment and
// options file, and writes the merged result as JSON, YAML or TOML.
//
// Usage:
//
//	launcher [flags] -- [--name value ...] [--optionsFile path]
//
// The merged configuration is written to the path in the outputFile key when
// one is resolved, otherwise to stdout. With --query only the results of the
// jq filter are printed.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/spf13/pflag"

	"github.com/lixenwraith/launcher"
)

// outputFileKey names the resolved key holding the output path
const outputFileKey = "outputFile"

// cliOptions holds the launcher's own flags, parsed before "--"
type cliOptions struct {
	format       string
	envFiles     []string
	packageRoots []string
	noFilter     bool
	required     []string
	arrays       []string
	booleans     []string
	allow        []string
	query        string
	logLevel     string
	noColor      bool
}

func main() {
	os.Exit(run(os.Args[1:], launcher.EnvFromOS(), afero.NewOsFs(), os.Stdout, os.Stderr))
}

// run executes the command and returns the process exit status.
func run(args []string, env launcher.Env, fs afero.Fs, stdout, stderr io.Writer) int {
	opts, rest, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		reportError(stderr, opts.noColor, err)
		return 2
	}

	level, err := zerolog.ParseLevel(opts.logLevel)
	if err != nil {
		reportError(stderr, opts.noColor, fmt.Errorf("invalid log level %q: %w", opts.logLevel, err))
		return 2
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: stderr, NoColor: opts.noColor}).
		Level(level).
		With().
		Timestamp().
		Str("role", "launcher").
		Logger()

	builder := launcher.NewBuilder().
		WithArgs(rest).
		WithEnv(env).
		WithFs(fs).
		WithLogger(logger).
		WithFilterKeys(!opts.noFilter).
		WithFields(declaredFields(opts)...).
		WithAllowedArgs(opts.allow...).
		WithAllowedEnv(opts.allow...).
		WithDotEnv(opts.envFiles...)

	for _, root := range opts.packageRoots {
		name, dir, ok := strings.Cut(root, "=")
		if !ok || name == "" || dir == "" {
			reportError(stderr, opts.noColor, fmt.Errorf("invalid --package-root %q, want name=dir", root))
			return 2
		}
		if err := launcher.ValidatePackageRootName(name); err != nil {
			reportError(stderr, opts.noColor, fmt.Errorf("invalid --package-root %q: %w", root, err))
			return 2
		}
		builder.WithPackageRoot(name, dir)
	}

	cfg, err := builder.Build()
	if err != nil {
		reportError(stderr, opts.noColor, err)
		return 1
	}

	if opts.query != "" {
		if err := writeQuery(stdout, cfg, opts.query); err != nil {
			reportError(stderr, opts.noColor, err)
			return 1
		}
		return 0
	}

	if outputFile, err := cfg.String(outputFileKey); err == nil && outputFile != "" {
		if err := cfg.Save(outputFile, opts.format); err != nil {
			reportError(stderr, opts.noColor, err)
			return 1
		}
		logger.Info().Str("path", outputFile).Int("keys", cfg.Len()).Msg("configuration written")
		return 0
	}

	if err := cfg.Dump(stdout, opts.format); err != nil {
		reportError(stderr, opts.noColor, err)
		return 1
	}
	return 0
}

// parseFlags parses the launcher's own flags and returns everything after
// "--" for the resolver.
func parseFlags(args []string, stderr io.Writer) (cliOptions, []string, error) {
	var opts cliOptions

	flags := pflag.NewFlagSet("launcher", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.StringVarP(&opts.format, "format", "f", "", "Output format: json, yaml or toml (default: outputFile extension, else json)")
	flags.StringArrayVar(&opts.envFiles, "env-file", nil, "Dotenv file added beneath the process environment (repeatable)")
	flags.StringArrayVar(&opts.packageRoots, "package-root", nil, "Package root as name=dir, referenced as %name/ in options file paths (repeatable)")
	flags.BoolVar(&opts.noFilter, "no-filter", false, "Let every argument and environment variable through")
	flags.StringSliceVar(&opts.required, "require", nil, "Required field names")
	flags.StringSliceVar(&opts.arrays, "array", nil, "Array field names")
	flags.StringSliceVar(&opts.booleans, "boolean", nil, "Boolean field names")
	flags.StringSliceVar(&opts.allow, "allow", nil, "Extra argument and environment names allowed through the filter")
	flags.StringVarP(&opts.query, "query", "q", "", "jq filter applied to the merged configuration instead of writing it")
	flags.StringVar(&opts.logLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	flags.BoolVar(&opts.noColor, "no-color", false, "Disable ANSI colors")

	if err := flags.Parse(args); err != nil {
		return opts, nil, err
	}

	switch opts.format {
	case "", launcher.FormatJSON, launcher.FormatYAML, launcher.FormatTOML:
	default:
		return opts, nil, fmt.Errorf("unsupported --format %q", opts.format)
	}

	return opts, flags.Args(), nil
}

// declaredFields turns the --array, --boolean and --require flags into field
// specs, preserving first-mention order.
func declaredFields(opts cliOptions) []launcher.FieldSpec {
	var order []string
	specs := make(map[string]launcher.FieldSpec)

	declare := func(name string, apply func(launcher.FieldSpec) launcher.FieldSpec) {
		spec, ok := specs[name]
		if !ok {
			spec = launcher.FieldSpec{Name: name}
			order = append(order, name)
		}
		specs[name] = apply(spec)
	}

	for _, name := range opts.arrays {
		declare(name, func(f launcher.FieldSpec) launcher.FieldSpec { f.Type = launcher.TypeArray; return f })
	}
	for _, name := range opts.booleans {
		declare(name, func(f launcher.FieldSpec) launcher.FieldSpec { f.Type = launcher.TypeBoolean; return f })
	}
	for _, name := range opts.required {
		declare(name, launcher.FieldSpec.Require)
	}
	if _, ok := specs[outputFileKey]; !ok {
		declare(outputFileKey, func(f launcher.FieldSpec) launcher.FieldSpec { f.Type = launcher.TypeString; return f })
	}

	fields := make([]launcher.FieldSpec, 0, len(order))
	for _, name := range order {
		fields = append(fields, specs[name])
	}
	return fields
}

// reportError prints err to stderr, in red unless colors are disabled.
func reportError(stderr io.Writer, noColor bool, err error) {
	c := color.New(color.FgRed, color.Bold)
	if noColor {
		c.DisableColor()
	}
	fmt.Fprintln(stderr, c.Sprint("launcher error:"), err)
}
