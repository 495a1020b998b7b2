// File: lixenwraith/launcher/doc.go

// Package launcher resolves process configuration from command-line
// arguments, environment variables, and an optional options file, merging
// them into a single key/value mapping with fixed precedence.
//
// Features:
//   - Explicit precedence chain: CLI > environment > options file > field default
//   - Key filtering: only declared fields (plus allow-listed names) are taken
//     from the CLI and environment; options file keys always pass through
//   - Array coercion for space-delimited and repeated flags
//   - Boolean coercion of the literals "true" and "false"
//   - Required fields
//   - Options file located by --optionsFile or the optionsFile environment
//     variable, absolute, relative to the working directory, or relative to a
//     named package root ("%name/path.json")
//   - JSON, JSONC, YAML and TOML options files
//
// Quick Start:
//
//	cfg, err := launcher.NewBuilder().
//	    WithFields(
//	        launcher.Array("hosts").Require(),
//	        launcher.Boolean("verbose"),
//	        launcher.String("mode").WithDefault("worker"),
//	    ).
//	    WithPackageRoot("myapp", "/opt/myapp").
//	    Build()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	hosts, _ := cfg.Strings("hosts")
//
// Given
//
//	myapp --hosts a b --hosts c --verbose true
//
// hosts resolves to ["a", "b", "c"] and verbose to true.
//
// Resolution is synchronous and stateless. The environment is captured once
// as an Env snapshot and the options file is read at most once per call.
package launcher
