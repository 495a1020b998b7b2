package launcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllowSets(t *testing.T) {
	fields := []FieldSpec{String("var1"), String("envVar1").FromEnv("var1")}

	t.Run("Disabled", func(t *testing.T) {
		args, env := Unfiltered().allowSets(fields)
		assert.Nil(t, args)
		assert.Nil(t, env)
	})

	t.Run("Enabled", func(t *testing.T) {
		args, env := DefaultKeyFilter().allowSets(fields)
		assert.Equal(t, map[string]bool{"var1": true, "envVar1": true, OptionsFileKey: true}, args)
		// Aliased fields are read by alias, not by name
		assert.Equal(t, map[string]bool{"var1": true, OptionsFileKey: true}, env)
	})

	t.Run("AllowLists", func(t *testing.T) {
		f := KeyFilter{Enabled: true, Args: []string{"arg1", ""}, Env: []string{"HOME"}}
		args, env := f.allowSets(nil)
		assert.Equal(t, map[string]bool{"arg1": true, OptionsFileKey: true}, args)
		assert.Equal(t, map[string]bool{"HOME": true, OptionsFileKey: true}, env)
	})
}
