package launcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFieldSpecBuilders(t *testing.T) {
	base := Array("hosts")
	required := base.Require()
	withDefault := required.WithDefault("localhost")
	aliased := withDefault.FromEnv("HOSTS")

	// Each step returns a copy
	assert.False(t, base.Required)
	assert.Nil(t, required.Default)
	assert.Equal(t, "", withDefault.Env)

	assert.Equal(t, FieldSpec{
		Name:     "hosts",
		Type:     TypeArray,
		Required: true,
		Default:  "localhost",
		Env:      "HOSTS",
	}, aliased)
	assert.Equal(t, "HOSTS", aliased.envName())
	assert.Equal(t, "hosts", base.envName())
}

func TestFieldTypeString(t *testing.T) {
	assert.Equal(t, "any", TypeAny.String())
	assert.Equal(t, "string", TypeString.String())
	assert.Equal(t, "array", TypeArray.String())
	assert.Equal(t, "boolean", TypeBoolean.String())
}

func TestValidateFields(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		err := validateFields([]FieldSpec{
			Array("arrayVar1").Require(),
			Boolean("booleanVar1"),
			String("server.host"),
			{Name: "raw_value-1"},
		})
		assert.NoError(t, err)
	})

	t.Run("Empty", func(t *testing.T) {
		assert.NoError(t, validateFields(nil))
	})

	invalid := map[string][]FieldSpec{
		"EmptyName":   {{Type: TypeString}},
		"BadName":     {String("has space")},
		"Duplicate":   {String("a"), Boolean("a")},
		"UnknownType": {{Name: "a", Type: FieldType(42)}},
	}
	for name, fields := range invalid {
		t.Run(name, func(t *testing.T) {
			assert.ErrorIs(t, validateFields(fields), ErrInvalidField)
		})
	}
}
