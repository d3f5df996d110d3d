package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("SKETCHPAD_CONFIG", "")
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	c, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "SketchPad", c.Window.Title)
	assert.Equal(t, float32(1024), c.Window.Width)
	assert.Equal(t, float32(768), c.Window.Height)
	assert.False(t, c.Debug)
}

func TestLoadEnvOverride(t *testing.T) {
	isolate(t)
	t.Setenv("SKETCHPAD_WINDOW_WIDTH", "800")
	t.Setenv("SKETCHPAD_DEBUG", "true")

	c, err := Load()

	require.NoError(t, err)
	assert.Equal(t, float32(800), c.Window.Width)
	assert.True(t, c.Debug)
}

func TestLoadFile(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "sketch.toml")
	require.NoError(t, os.WriteFile(path, []byte("[window]\ntitle = \"Doodle\"\nheight = 500\n"), 0o644))
	t.Setenv("SKETCHPAD_CONFIG", path)

	c, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "Doodle", c.Window.Title)
	assert.Equal(t, float32(500), c.Window.Height)
	assert.Equal(t, float32(1024), c.Window.Width)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	isolate(t)
	t.Setenv("SKETCHPAD_CONFIG", filepath.Join(t.TempDir(), "missing.toml"))

	_, err := Load()

	assert.Error(t, err)
}

func TestLoadRejectsNonPositiveSize(t *testing.T) {
	isolate(t)
	t.Setenv("SKETCHPAD_WINDOW_HEIGHT", "0")

	_, err := Load()

	assert.Error(t, err)
}
