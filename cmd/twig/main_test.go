//go:build unit

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_MissingFileFallsBackToDefaults(t *testing.T) {
	originalConfigPath := configPath
	configPath = filepath.Join(t.TempDir(), "nonexistent", "config.yaml")
	defer func() { configPath = originalConfigPath }()

	cfg := loadConfig()

	assert.NotEmpty(t, cfg.BasePath)
	assert.NotEmpty(t, cfg.WorktreesDir)
}

func TestLoadConfig_ReadsConfiguredPaths(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := "base_path: /custom/twig\nworktrees_dir: /custom/worktrees\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	originalConfigPath := configPath
	configPath = path
	defer func() { configPath = originalConfigPath }()

	cfg := loadConfig()

	assert.Equal(t, "/custom/twig", cfg.BasePath)
	assert.Equal(t, "/custom/worktrees", cfg.WorktreesDir)
}
