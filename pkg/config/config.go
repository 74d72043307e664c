// Package config provides configuration management for the twig application.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration.
type Config struct {
	// BasePath is the directory holding twig's state file and logs.
	BasePath string `yaml:"base_path"`

	// WorktreesDir is the directory under which managed worktrees are created.
	WorktreesDir string `yaml:"worktrees_dir"`

	// LogFilePath, when non-empty, enables rotating file logs.
	LogFilePath string `yaml:"log_file_path,omitempty"`
}

// Manager interface provides configuration management functionality.
type Manager interface {
	LoadConfig(configPath string) (*Config, error)
	DefaultConfig() *Config
}

type realManager struct {
	// No fields needed for basic configuration operations
}

// NewManager creates a new Manager instance.
func NewManager() Manager {
	return &realManager{}
}

// LoadConfig loads configuration from the specified file path,
// falling back to the default configuration if the file does not exist.
func (c *realManager) LoadConfig(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return c.DefaultConfig(), nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	defaults := c.DefaultConfig()
	if config.BasePath == "" {
		config.BasePath = defaults.BasePath
	}
	if config.WorktreesDir == "" {
		config.WorktreesDir = defaults.WorktreesDir
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// DefaultConfig returns the default configuration.
func (c *realManager) DefaultConfig() *Config {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home directory cannot be determined
		homeDir = "."
	}

	return &Config{
		BasePath:     filepath.Join(homeDir, ".twig"),
		WorktreesDir: filepath.Join(homeDir, ".twig", "worktrees"),
	}
}

// Validate validates the configuration values.
func (c *Config) Validate() error {
	if c.BasePath == "" {
		return fmt.Errorf("base_path cannot be empty")
	}
	if c.WorktreesDir == "" {
		return fmt.Errorf("worktrees_dir cannot be empty")
	}
	return nil
}

// StateFilePath returns the path of the state file.
func (c *Config) StateFilePath() string {
	return filepath.Join(c.BasePath, "state.yaml")
}
