package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "info", cfg.Logging.Level)
	assert.True(t, cfg.Logging.Console)
	assert.True(t, cfg.Metrics.Enabled)
	assert.True(t, cfg.Builtins.Enabled)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_NoPathUsesDefaults(t *testing.T) {
	cfg, err := NewLoader("").Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := NewLoader("/does/not/exist.json").Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoad_FromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "toolbelt.json")
	content := `{
		"logging": {"level": "debug", "console": false},
		"metrics": {"enabled": false},
		"builtins": {"enabled": false}
	}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := NewLoader(path).Load()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.False(t, cfg.Logging.Console)
	assert.False(t, cfg.Metrics.Enabled)
	assert.False(t, cfg.Builtins.Enabled)
}

func TestLoad_InvalidJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "toolbelt.json")
	require.NoError(t, os.WriteFile(path, []byte("{nope"), 0644))

	_, err := NewLoader(path).Load()
	assert.Error(t, err)
}

func TestValidate_BadLevel(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Logging.Level = "loud"
	assert.Error(t, cfg.Validate())
}
