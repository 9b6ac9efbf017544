package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandsRegistered(t *testing.T) {
	expected := []string{"watch", "play", "selftest", "logs", "config", "version"}
	names := make(map[string]bool)
	for _, cmd := range rootCmd.Commands() {
		names[cmd.Name()] = true
	}
	for _, name := range expected {
		assert.True(t, names[name], "command %q not registered", name)
	}
}

func TestHelpDescribesSoundAssetLayout(t *testing.T) {
	assert.Contains(t, rootCmd.Long, "assets/faaah.mp3",
		"help must tell users where the default sound file is expected")
}

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"version"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "faaah dev")
}

func TestConfigShowCommand(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"config", "show"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), `"cooldown_ms": 2500`)
	assert.Contains(t, out.String(), `"custom_phrase": "Faaaaaaah"`)
}
