package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRootCommand(t *testing.T) {
	cmd := NewRootCommand()

	assert.Equal(t, "pulse", cmd.Use)
	assert.True(t, cmd.SilenceUsage)
	assert.Equal(t, Version, cmd.Version)
}

func TestRootCommandHasSubcommands(t *testing.T) {
	cmd := NewRootCommand()

	names := make(map[string]bool)
	for _, sub := range cmd.Commands() {
		names[sub.Name()] = true
	}

	for _, want := range []string{"demo", "copy", "themes"} {
		assert.True(t, names[want], "missing subcommand %q", want)
	}
}

func TestRootCommandPersistentFlags(t *testing.T) {
	cmd := NewRootCommand()
	flags := cmd.PersistentFlags()

	for _, name := range []string{"config", "width", "theme", "theme-file", "no-color", "log-level"} {
		require.NotNil(t, flags.Lookup(name), "missing persistent flag %q", name)
	}
}
