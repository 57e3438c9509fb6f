package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigEmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Empty(t, cfg.Categories)
	assert.True(t, cfg.InjectTarget())
}

func TestLoadConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "creskill.yaml")
	content := `
categories:
  http:
    warn_threshold: 8
  logging:
    disabled: true
simulation:
  inject_target: false
  default_target: staging-settings
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	require.Contains(t, cfg.Categories, "http")
	require.NotNil(t, cfg.Categories["http"].WarnThreshold)
	assert.Equal(t, 8, *cfg.Categories["http"].WarnThreshold)
	assert.True(t, cfg.Categories["logging"].Disabled)
	assert.False(t, cfg.InjectTarget())
	assert.Equal(t, "staging-settings", cfg.Simulation.DefaultTarget)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadConfigBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("categories: [\n"), 0o644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}
