package cmd

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// executeCommand runs a cobra command with args and returns captured output
func executeCommand(root *cobra.Command, args ...string) (output string, err error) {
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err = root.Execute()
	return buf.String(), err
}

func TestParseCodePoint(t *testing.T) {
	tests := []struct {
		arg  string
		want rune
	}{
		{"A", 'A'},
		{"€", '€'},
		{"U+20AC", '€'},
		{"u+20ac", '€'},
		{"65", 'A'},
	}

	for _, tt := range tests {
		t.Run(tt.arg, func(t *testing.T) {
			got, err := parseCodePoint(tt.arg)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	for _, bad := range []string{"not-a-rune", "U+ZZZZ", ""} {
		_, err := parseCodePoint(bad)
		assert.Error(t, err, "expected error for %q", bad)
	}
}

func TestInfoCommand(t *testing.T) {
	out, err := executeCommand(rootCmd, "info", "U+20AC")
	require.NoError(t, err)

	assert.Contains(t, out, "€")
	assert.Contains(t, out, "U+20AC")
	assert.Contains(t, out, "Currency")
	assert.Contains(t, out, "symbol")
}

func TestSearchCommand(t *testing.T) {
	out, err := executeCommand(rootCmd, "search", "-n", "5", "euro")
	require.NoError(t, err)
	assert.Contains(t, out, "U+20AC")
}

func TestSearchCommandNoMatches(t *testing.T) {
	out, err := executeCommand(rootCmd, "search", "zzzzzzzzzz")
	require.NoError(t, err)
	assert.Contains(t, out, "no matches")
}

func TestExportCommand(t *testing.T) {
	dir := t.TempDir()

	out, err := executeCommand(rootCmd, "export", "--dir", dir, "--format", "svg", "A")
	require.NoError(t, err)
	assert.Contains(t, out, "u0041.svg")
}

func TestExportCommandRejectsBadFormat(t *testing.T) {
	_, err := executeCommand(rootCmd, "export", "--format", "bmp", "A")
	assert.Error(t, err)
}

func TestTypeFlags(t *testing.T) {
	assert.Contains(t, typeFlags('A'), "character")
	assert.Contains(t, typeFlags('5'), "number")
	assert.Contains(t, typeFlags('€'), "symbol")
}
