package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/garlicgarrison/hanoi/hanoi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "hanoi.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadSample(t *testing.T) {
	cfg, err := Load("hanoi.yaml")
	require.NoError(t, err)

	assert.Equal(t, Default(), cfg)
	assert.Equal(t, hanoi.DefaultPegs, cfg.PegSet())
}

func TestLoadPartial(t *testing.T) {
	cfg, err := Load(writeConfig(t, "pegs:\n  destination: Z\nformat: json\n"))
	require.NoError(t, err)

	assert.Equal(t, hanoi.Pegs{Source: "A", Auxiliary: "B", Destination: "Z"}, cfg.PegSet())
	assert.Equal(t, "json", cfg.Format)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoadInvalid(t *testing.T) {
	_, err := Load(writeConfig(t, "pegs:\n  source: B\n"))
	assert.ErrorIs(t, err, ErrInvalidConfig)
	assert.ErrorIs(t, err, hanoi.ErrInvalidArgument)

	_, err = Load(writeConfig(t, "colour: blue\n"))
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, err = Load(writeConfig(t, "pegs: [A, B]\n"))
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
