package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetConfig(t *testing.T) {
	configYAML := []byte(`
classic: false
blocks:
  - permission
  - size
  - name
color:
  when: "never"
  theme: "default"
icons:
  when: "auto"
  separator: "  "
recursion:
  enabled: true
  depth: 3
sorting:
  column: "time"
  reverse: true
  dir-grouping: "first"
logLevel: 0
`)

	tmpfile, err := os.CreateTemp("", "config")
	assert.NoError(t, err)
	defer os.Remove(tmpfile.Name())
	_, err = tmpfile.Write(configYAML)
	assert.NoError(t, err)
	assert.NoError(t, tmpfile.Close())

	AllowFlags = false
	t.Setenv(ConfigEnv, tmpfile.Name())
	t.Setenv("CLOCKFACE_COLOR_WHEN", "always")
	t.Setenv("CLOCKFACE_RECURSION_DEPTH", "7")

	got := GetConfig()
	assert.Equal(t, []string{"permission", "size", "name"}, got.Blocks)
	/* env beats file */
	if assert.NotNil(t, got.Color.When) {
		assert.Equal(t, "always", *got.Color.When)
	}
	if assert.NotNil(t, got.Recursion.Depth) {
		assert.Equal(t, 7, *got.Recursion.Depth)
	}
	/* file beats defaults */
	if assert.NotNil(t, got.Color.Theme) {
		assert.Equal(t, "default", *got.Color.Theme)
	}
	if assert.NotNil(t, got.Sorting.Column) {
		assert.Equal(t, "time", *got.Sorting.Column)
	}
	if assert.NotNil(t, got.Sorting.Reverse) {
		assert.True(t, *got.Sorting.Reverse)
	}
	if assert.NotNil(t, got.Recursion.Enabled) {
		assert.True(t, *got.Recursion.Enabled)
	}
	assert.Equal(t, Error, got.LogLevel)
	/* untouched defaults survive */
	assert.Equal(t, time.RFC3339, got.LogTimeFormat)
	assert.Nil(t, got.Date)
}

func TestLoadFileMissing(t *testing.T) {
	c := defaults()
	err := c.LoadFile("/nonexistent/config.yaml")
	assert.Error(t, err)
	/* defaults survive a missing file */
	assert.Equal(t, LogLevel(1), c.LogLevel)
}

func TestLoadFileMemoized(t *testing.T) {
	tmpfile, err := os.CreateTemp("", "config")
	assert.NoError(t, err)
	defer os.Remove(tmpfile.Name())
	_, err = tmpfile.Write([]byte("size: short\n"))
	assert.NoError(t, err)
	assert.NoError(t, tmpfile.Close())

	c1 := defaults()
	assert.NoError(t, c1.LoadFile(tmpfile.Name()))
	if assert.NotNil(t, c1.Size) {
		assert.Equal(t, "short", *c1.Size)
	}

	/* the raw file is served from cache even after removal */
	assert.NoError(t, os.Remove(tmpfile.Name()))
	c2 := defaults()
	assert.NoError(t, c2.LoadFile(tmpfile.Name()))
	if assert.NotNil(t, c2.Size) {
		assert.Equal(t, "short", *c2.Size)
	}
}

func TestLoadFileMalformed(t *testing.T) {
	tmpfile, err := os.CreateTemp("", "config")
	assert.NoError(t, err)
	defer os.Remove(tmpfile.Name())
	_, err = tmpfile.Write([]byte("sorting: [broken"))
	assert.NoError(t, err)
	assert.NoError(t, tmpfile.Close())

	c := defaults()
	assert.Error(t, c.LoadFile(tmpfile.Name()))
}

func TestHashsum(t *testing.T) {
	c1, c2 := defaults(), defaults()
	h1, err := c1.Hashsum()
	assert.NoError(t, err)
	h2, err := c2.Hashsum()
	assert.NoError(t, err)
	assert.Equal(t, h1, h2)

	s := "short"
	c2.Size = &s
	h3, err := c2.Hashsum()
	assert.NoError(t, err)
	assert.NotEqual(t, h1, h3)
}
