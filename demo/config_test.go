package demo

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultConfigIsValid(t *testing.T) {
	c := DefaultConfig()
	assert.NoError(t, c.Validate())
	assert.Equal(t, "window", c.Frontend)
	assert.Empty(t, c.Mqtt.URL)
	assert.Empty(t, c.Api.Listen)
}

func TestLoadConfigOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
frontend: terminal
star:
  size: 64
api:
  listen: ":3000"
mqtt:
  url: tcp://localhost:1883
  topics:
    command: home/star/command
`)

	c, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "terminal", c.Frontend)
	assert.Equal(t, 64.0, c.Star.Size)
	assert.Equal(t, ":3000", c.Api.Listen)
	assert.Equal(t, "tcp://localhost:1883", c.Mqtt.URL)
	assert.Equal(t, "home/star/command", c.Mqtt.Topics.Command)
	assert.Equal(t, "propanim/status", c.Mqtt.Topics.Status)
	assert.Equal(t, 480, c.Window.Width)
}

func TestLoadConfigMissingFile(t *testing.T) {
	c, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.Equal(t, DefaultConfig(), c)
}

func TestLoadConfigRejectsBadValues(t *testing.T) {
	_, err := LoadConfig(writeConfig(t, "frontend: holo\n"))
	assert.ErrorContains(t, err, "unknown frontend")

	_, err = LoadConfig(writeConfig(t, "star:\n  size: 0\n"))
	assert.ErrorContains(t, err, "star size")

	_, err = LoadConfig(writeConfig(t, "window: [1, 2]\n"))
	assert.ErrorContains(t, err, "decode")
}
