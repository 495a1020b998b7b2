// File: lixenwraith/launcher/builder_test.go
package launcher_test

import (
	"errors"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/launcher"
)

func newTestBuilder(t *testing.T) *launcher.Builder {
	t.Helper()
	return launcher.NewBuilder().
		WithFs(newTestFs(t)).
		WithWorkDir(appRoot).
		WithEnv(launcher.Env{}).
		WithArgs(nil)
}

// TestBuilder tests the fluent resolution interface
func TestBuilder(t *testing.T) {
	t.Run("ArgsAndPackageRoot", func(t *testing.T) {
		cfg, err := newTestBuilder(t).
			WithFields(launcher.Array("hosts"), launcher.Boolean("verbose")).
			WithPackageRoot("app", appRoot).
			WithArgs([]string{"--hosts", "a", "b", "--verbose", "true", "--optionsFile", "%app/testdata/workerOptions.json"}).
			Build()
		require.NoError(t, err)

		hosts, err := cfg.Strings("hosts")
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b"}, hosts)

		verbose, err := cfg.Bool("verbose")
		require.NoError(t, err)
		assert.True(t, verbose)

		v, err := cfg.String("var1")
		require.NoError(t, err)
		assert.Equal(t, "Set from a custom options file.", v)
	})

	t.Run("RawArgs", func(t *testing.T) {
		cfg, err := newTestBuilder(t).
			WithFields(launcher.String("var1")).
			WithRawArgs(launcher.RawArgs{"var1": "raw", "other": "dropped"}).
			Build()
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"var1": "raw"}, cfg.Map())
	})

	t.Run("AllowedNames", func(t *testing.T) {
		cfg, err := newTestBuilder(t).
			WithAllowedArgs("arg1").
			WithAllowedEnv("env1").
			WithArgs([]string{"--arg1", "a", "--arg2", "b"}).
			WithEnv(launcher.Env{"env1": "e", "env2": "f"}).
			Build()
		require.NoError(t, err)
		assert.Equal(t, []string{"arg1", "env1"}, cfg.Keys())
	})

	t.Run("Unfiltered", func(t *testing.T) {
		cfg, err := newTestBuilder(t).
			WithFilterKeys(false).
			WithArgs([]string{"--arg1", "a"}).
			WithEnv(launcher.Env{"env1": "e"}).
			Build()
		require.NoError(t, err)
		assert.Equal(t, []string{"arg1", "env1"}, cfg.Keys())
	})

	t.Run("DotEnv", func(t *testing.T) {
		fs := newTestFs(t)
		require.NoError(t, afero.WriteFile(fs, "/srv/app/.env", []byte("hosts=x y\nvar1=dotenv\n"), 0644))

		cfg, err := launcher.NewBuilder().
			WithFs(fs).
			WithWorkDir(appRoot).
			WithArgs(nil).
			WithEnv(launcher.Env{"var1": "process"}).
			WithDotEnv("/srv/app/.env").
			WithFields(launcher.Array("hosts"), launcher.String("var1")).
			Build()
		require.NoError(t, err)

		hosts, _ := cfg.Strings("hosts")
		assert.Equal(t, []string{"x", "y"}, hosts)
		v, _ := cfg.String("var1")
		assert.Equal(t, "process", v)
	})

	t.Run("DotEnvMissing", func(t *testing.T) {
		_, err := newTestBuilder(t).WithDotEnv("/srv/app/none.env").Build()
		assert.Error(t, err)
	})

	t.Run("Sources", func(t *testing.T) {
		cfg, err := newTestBuilder(t).
			WithFields(launcher.String("var1").WithDefault("default")).
			WithSources(launcher.SourceDefault, launcher.SourceCLI).
			WithArgs([]string{"--var1", "cli"}).
			Build()
		require.NoError(t, err)
		v, _ := cfg.String("var1")
		assert.Equal(t, "default", v)
	})

	t.Run("MaxFileSize", func(t *testing.T) {
		_, err := newTestBuilder(t).
			WithMaxFileSize(4).
			WithArgs([]string{"--optionsFile", workerOptions}).
			Build()
		assert.ErrorIs(t, err, launcher.ErrOptionsFileParse)
	})

	t.Run("InvalidPackageRoot", func(t *testing.T) {
		_, err := newTestBuilder(t).WithPackageRoot("bad/name", "/x").Build()
		assert.Error(t, err)
	})

	t.Run("ArgParseError", func(t *testing.T) {
		_, err := newTestBuilder(t).WithArgs([]string{"--=x"}).Build()
		assert.ErrorIs(t, err, launcher.ErrArgParse)
	})

	t.Run("MissingRequired", func(t *testing.T) {
		_, err := newTestBuilder(t).WithFields(launcher.Array("arrayVar1").Require()).Build()
		assert.EqualError(t, err, "Missing required argument: arrayVar1")
	})
}

// TestBuilderValidators tests validators running in order after resolution
func TestBuilderValidators(t *testing.T) {
	errBadMode := errors.New("mode must be worker or server")
	var calls []string

	validMode := func(c *launcher.Config) error {
		calls = append(calls, "mode")
		mode, err := c.String("mode")
		if err != nil {
			return err
		}
		if mode != "worker" && mode != "server" {
			return errBadMode
		}
		return nil
	}
	second := func(c *launcher.Config) error {
		calls = append(calls, "second")
		return nil
	}

	t.Run("Pass", func(t *testing.T) {
		calls = nil
		_, err := newTestBuilder(t).
			WithFields(launcher.String("mode").WithDefault("worker")).
			WithValidator(validMode).
			WithValidator(nil).
			WithValidator(second).
			Build()
		require.NoError(t, err)
		assert.Equal(t, []string{"mode", "second"}, calls)
	})

	t.Run("Fail", func(t *testing.T) {
		calls = nil
		_, err := newTestBuilder(t).
			WithFields(launcher.String("mode")).
			WithArgs([]string{"--mode", "batch"}).
			WithValidator(validMode).
			WithValidator(second).
			Build()
		assert.ErrorIs(t, err, errBadMode)
		assert.Contains(t, err.Error(), "configuration validation failed")
		assert.Equal(t, []string{"mode"}, calls)
	})
}

func TestMustBuild(t *testing.T) {
	assert.Panics(t, func() {
		newTestBuilder(t).WithFields(launcher.String("x").Require()).MustBuild()
	})
	assert.NotPanics(t, func() {
		cfg := newTestBuilder(t).MustBuild()
		assert.Equal(t, 0, cfg.Len())
	})
}

func TestBuildAndScan(t *testing.T) {
	var target struct {
		Hosts   []string `json:"hosts"`
		Verbose bool     `json:"verbose"`
		Var1    string   `json:"var1"`
	}

	err := newTestBuilder(t).
		WithFields(launcher.Array("hosts"), launcher.Boolean("verbose"), launcher.String("var1")).
		WithArgs([]string{"--hosts", "a", "--hosts", "b", "--verbose", "true"}).
		WithEnv(launcher.Env{"var1": "env"}).
		BuildAndScan(&target)
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b"}, target.Hosts)
	assert.True(t, target.Verbose)
	assert.Equal(t, "env", target.Var1)
}
