//go:build unit

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_MissingFileFallsBackToDefaults(t *testing.T) {
	manager := NewManager()

	cfg, err := manager.LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, manager.DefaultConfig(), cfg)
}

func TestLoadConfig_ReadsFile(t *testing.T) {
	manager := NewManager()
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	content := "base_path: /custom/twig\nworktrees_dir: /custom/twig/worktrees\nlog_file_path: /custom/twig/twig.log\n"
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0644))

	cfg, err := manager.LoadConfig(configPath)
	require.NoError(t, err)
	assert.Equal(t, "/custom/twig", cfg.BasePath)
	assert.Equal(t, "/custom/twig/worktrees", cfg.WorktreesDir)
	assert.Equal(t, "/custom/twig/twig.log", cfg.LogFilePath)
}

func TestLoadConfig_PartialFileKeepsDefaults(t *testing.T) {
	manager := NewManager()
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("base_path: /custom/twig\n"), 0644))

	cfg, err := manager.LoadConfig(configPath)
	require.NoError(t, err)
	assert.Equal(t, "/custom/twig", cfg.BasePath)
	assert.Equal(t, manager.DefaultConfig().WorktreesDir, cfg.WorktreesDir)
}

func TestLoadConfig_MalformedFile(t *testing.T) {
	manager := NewManager()
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("base_path: [broken\n"), 0644))

	_, err := manager.LoadConfig(configPath)
	assert.Error(t, err)
}

func TestConfig_Validate(t *testing.T) {
	valid := Config{BasePath: "/a", WorktreesDir: "/b"}
	assert.NoError(t, valid.Validate())

	assert.Error(t, (&Config{WorktreesDir: "/b"}).Validate())
	assert.Error(t, (&Config{BasePath: "/a"}).Validate())
}

func TestConfig_StateFilePath(t *testing.T) {
	cfg := Config{BasePath: "/home/user/.twig"}
	assert.Equal(t, filepath.Join("/home/user/.twig", "state.yaml"), cfg.StateFilePath())
}
