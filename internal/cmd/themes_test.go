package cmd

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harrison/pulse/internal/theme"
)

func TestThemesCommandListsAllThemes(t *testing.T) {
	stdout, _, err := runCommand(t, "themes")
	require.NoError(t, err)

	out := stdout.String()
	assert.Contains(t, out, "Available themes:")
	for _, name := range theme.Names() {
		assert.Contains(t, out, name)
	}
}

func TestThemesCommandRendersSamples(t *testing.T) {
	stdout, _, err := runCommand(t, "themes")
	require.NoError(t, err)

	out := stdout.String()
	// Each sample is a mid-progress snapshot: partially filled bar with a
	// spinner and percentage, one per line, no in-place rewrites.
	assert.Contains(t, out, "60%")
	assert.NotContains(t, out, "\r")

	// The neon sample carries its themed glyphs.
	assert.Contains(t, out, "▰")
	assert.Contains(t, out, "▱")
}

func TestRenderSample(t *testing.T) {
	th, ok := theme.Builtin("plain")
	require.True(t, ok)

	sample, err := renderSample(th)
	require.NoError(t, err)

	// 6 of 10 over 20 positions: 12 filled, 8 empty.
	assert.True(t, strings.HasPrefix(sample, strings.Repeat("#", 12)+strings.Repeat("-", 8)))
	assert.Contains(t, sample, "60%")
}
