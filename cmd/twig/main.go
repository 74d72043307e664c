// Package main provides the command-line interface for the twig application.
package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/twigtool/twig/pkg/checkpoint"
	"github.com/twigtool/twig/pkg/config"
	"github.com/twigtool/twig/pkg/discard"
	"github.com/twigtool/twig/pkg/filesync"
	"github.com/twigtool/twig/pkg/focus"
	"github.com/twigtool/twig/pkg/fs"
	"github.com/twigtool/twig/pkg/git"
	"github.com/twigtool/twig/pkg/logger"
	"github.com/twigtool/twig/pkg/sessions"
	"github.com/twigtool/twig/pkg/state"
	"github.com/twigtool/twig/pkg/watcher"
	"github.com/twigtool/twig/pkg/worktree"
)

var (
	verbose    bool
	configPath string
)

// loadConfig loads the configuration, falling back to defaults when no
// config file exists.
func loadConfig() *config.Config {
	manager := config.NewManager()

	path := configPath
	if path == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			homeDir = "."
		}
		path = filepath.Join(homeDir, ".twig", "config.yaml")
	}

	cfg, err := manager.LoadConfig(path)
	if err != nil {
		log.Fatalf("Failed to load configuration from %s: %v", path, err)
	}
	return cfg
}

// app bundles the wired dependencies behind every command.
type app struct {
	Config      *config.Config
	Logger      logger.Logger
	FS          fs.FS
	Git         git.Git
	State       state.Manager
	RepoPath    string
	Worktrees   worktree.Manager
	Checkpoints checkpoint.Manager
	Focus       focus.Manager
	Discard     discard.Manager
}

// newApp wires the dependency graph for the repository at the current
// working directory.
func newApp() (*app, error) {
	cfg := loadConfig()

	log := logger.NewDefaultLogger(logger.Options{
		Verbose:  verbose,
		FilePath: cfg.LogFilePath,
	})

	filesystem := fs.NewFS()
	gitClient := git.NewGit()
	stateManager := state.NewManager(filesystem, cfg.StateFilePath())

	repoPath, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to determine working directory: %w", err)
	}

	worktreesDir := filepath.Join(cfg.WorktreesDir, filepath.Base(repoPath))

	return &app{
		Config:   cfg,
		Logger:   log,
		FS:       filesystem,
		Git:      gitClient,
		State:    stateManager,
		RepoPath: repoPath,
		Worktrees: worktree.NewManager(worktree.NewManagerParams{
			FS:           filesystem,
			Git:          gitClient,
			StateManager: stateManager,
			Logger:       log,
			RepoPath:     repoPath,
			WorktreesDir: worktreesDir,
		}),
		Checkpoints: checkpoint.NewManager(checkpoint.NewManagerParams{
			FS:           filesystem,
			Git:          gitClient,
			StateManager: stateManager,
			Logger:       log,
		}),
		Focus: focus.NewManager(focus.NewManagerParams{
			FS:           filesystem,
			Git:          gitClient,
			StateManager: stateManager,
			Syncer:       filesync.NewNoopSyncer(),
			Sessions:     sessions.NewNoopNotifier(),
			Watcher:      watcher.NewWatcher(nil, log),
			Logger:       log,
		}),
		Discard: discard.NewManager(discard.NewManagerParams{
			FS:     filesystem,
			Git:    gitClient,
			Logger: log,
		}),
	}, nil
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "twig",
		Short: "Twig - transactional git worktree and focus manager",
		Long: `A CLI tool for managing git worktrees, focus sessions and repository ` +
			`checkpoints with transactional rollback semantics.`,
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Specify a custom config file path")

	rootCmd.AddCommand(
		createWorktreeCmd(),
		createCheckpointCmd(),
		createFocusCmd(),
		createDiscardCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
