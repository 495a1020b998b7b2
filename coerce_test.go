package launcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoerceArray(t *testing.T) {
	t.Run("CLIStringIsOneElement", func(t *testing.T) {
		assert.Equal(t, []string{"a b"}, coerceArray("a b", SourceCLI))
	})

	t.Run("EnvStringIsSpaceDelimited", func(t *testing.T) {
		assert.Equal(t, []string{"a", "b", "c"}, coerceArray("a  b c", SourceEnv))
		assert.Equal(t, []string{}, coerceArray("", SourceEnv))
	})

	t.Run("SliceIsCopied", func(t *testing.T) {
		in := []string{"x", "y"}
		out := coerceArray(in, SourceCLI).([]string)
		out[0] = "changed"
		assert.Equal(t, "x", in[0])
	})

	t.Run("JSONArray", func(t *testing.T) {
		assert.Equal(t, []string{"a", "1", "true"}, coerceArray([]any{"a", int64(1), true}, SourceFile))
	})

	t.Run("BareCLIFlag", func(t *testing.T) {
		assert.Equal(t, []string{}, coerceArray(true, SourceCLI))
	})

	t.Run("Scalar", func(t *testing.T) {
		assert.Equal(t, []string{"42"}, coerceArray(int64(42), SourceFile))
	})
}

func TestCoerceBoolean(t *testing.T) {
	assert.Equal(t, true, coerceBoolean("true"))
	assert.Equal(t, false, coerceBoolean("false"))
	// Case-sensitive: anything else is left as received
	assert.Equal(t, "True", coerceBoolean("True"))
	assert.Equal(t, "FALSE", coerceBoolean("FALSE"))
	assert.Equal(t, "yes", coerceBoolean("yes"))
	assert.Equal(t, true, coerceBoolean(true))
	assert.Equal(t, []string{"true", "false"}, coerceBoolean([]string{"true", "false"}))
}

func TestCoerceValueUndeclaredType(t *testing.T) {
	f := FieldSpec{Name: "x"}
	assert.Equal(t, "true", coerceValue(f, "true", SourceCLI))
	assert.Equal(t, []string{"a"}, coerceValue(f, []string{"a"}, SourceCLI))
}
