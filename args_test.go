// FILE: lixenwraith/launcher/args_test.go
package launcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseArgs tests command-line tokenization
func TestParseArgs(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected RawArgs
	}{
		{
			name:     "SpaceSeparated",
			args:     []string{"--var1", "command-line"},
			expected: RawArgs{"var1": "command-line"},
		},
		{
			name:     "EqualsSeparated",
			args:     []string{"--var1=command-line"},
			expected: RawArgs{"var1": "command-line"},
		},
		{
			name:     "BareFlagIsTrue",
			args:     []string{"--verbose", "--var1", "x"},
			expected: RawArgs{"verbose": true, "var1": "x"},
		},
		{
			name:     "TrailingBareFlag",
			args:     []string{"--var1", "x", "--verbose"},
			expected: RawArgs{"var1": "x", "verbose": true},
		},
		{
			name:     "MultipleTokensFollowOneFlag",
			args:     []string{"--arrayVar1", "foo", "bar"},
			expected: RawArgs{"arrayVar1": []string{"foo", "bar"}},
		},
		{
			name: "RepeatedFlagsConcatenate",
			args: []string{"--arrayVar1", "foo", "bar", "--arrayVar2=baz", "qux", "--arrayVar2", "quux"},
			expected: RawArgs{
				"arrayVar1": []string{"foo", "bar"},
				"arrayVar2": []string{"baz", "qux", "quux"},
			},
		},
		{
			name:     "RepeatedSingleTokens",
			args:     []string{"--tag", "a", "--tag", "b"},
			expected: RawArgs{"tag": []string{"a", "b"}},
		},
		{
			name:     "EmptyValueAfterEquals",
			args:     []string{"--name="},
			expected: RawArgs{"name": ""},
		},
		{
			name:     "ValueContainingEquals",
			args:     []string{"--query=a=b"},
			expected: RawArgs{"query": "a=b"},
		},
		{
			name:     "LeadingPositionalSkipped",
			args:     []string{"run", "--var1", "x"},
			expected: RawArgs{"var1": "x"},
		},
		{
			name:     "DoubleDashEndsFlags",
			args:     []string{"--var1", "x", "--", "--var2", "y"},
			expected: RawArgs{"var1": "x"},
		},
		{
			name:     "SingleDashTokenIsValue",
			args:     []string{"--offset", "-5"},
			expected: RawArgs{"offset": "-5"},
		},
		{
			name:     "DottedKey",
			args:     []string{"--server.port", "8080"},
			expected: RawArgs{"server.port": "8080"},
		},
		{
			name: "NamesTakenAsWritten",
			args: []string{"--db:url", "pg://x", "--café", "au lait", "--x/y", "z", "--a..b", "1", "--bad key=v"},
			expected: RawArgs{
				"db:url":  "pg://x",
				"café":    []string{"au", "lait"},
				"x/y":     "z",
				"a..b":    "1",
				"bad key": "v",
			},
		},
		{
			name:     "Empty",
			args:     nil,
			expected: RawArgs{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseArgs(tt.args)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

// TestParseArgsErrors tests rejection of empty flag names
func TestParseArgsErrors(t *testing.T) {
	for _, args := range [][]string{
		{"--=value"},
		{"--var1", "x", "--="},
	} {
		_, err := ParseArgs(args)
		assert.ErrorIs(t, err, ErrArgParse, "args %q", args)
	}
}
