package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/twigtool/twig/pkg/focus"
)

func createFocusCmd() *cobra.Command {
	focusCmd := &cobra.Command{
		Use:   "focus",
		Short: "Move focus between the main repository and a worktree's branch",
	}

	focusCmd.AddCommand(
		createFocusEnableCmd(),
		createFocusDisableCmd(),
		createFocusRestoreCmd(),
	)
	return focusCmd
}

func createFocusEnableCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "enable <worktree-path>",
		Short: "Check the worktree's branch out in the main repository",
		Long: `Atomically check the worktree's branch out in the main repository. The
worktree is detached, dirty main-repository changes are stashed, and an
already active focus on another worktree is swapped out first.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			application, err := newApp()
			if err != nil {
				return err
			}

			result := application.Focus.Enable(cmd.Context(), focus.EnableParams{
				MainRepoPath: application.RepoPath,
				WorktreePath: args[0],
			})
			if !result.Success {
				return fmt.Errorf("focus enable failed at %s: %s", result.FailedStep, result.Error)
			}

			if result.Data.WasSwap {
				fmt.Printf("Swapped focus to %s (branch %s)\n", args[0], result.Data.Session.Branch)
			} else {
				fmt.Printf("Focused %s (branch %s)\n", args[0], result.Data.Session.Branch)
			}
			return nil
		},
	}
}

func createFocusDisableCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "disable",
		Short: "Restore the main repository's original branch and end the focus",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			application, err := newApp()
			if err != nil {
				return err
			}

			result := application.Focus.Disable(cmd.Context(), application.RepoPath)
			if !result.Success {
				return fmt.Errorf("focus disable failed at %s: %s", result.FailedStep, result.Error)
			}

			fmt.Println("Focus disabled.")
			if result.Data.Warning != "" {
				fmt.Printf("Warning: %s\n", result.Data.Warning)
			}
			return nil
		},
	}
}

func createFocusRestoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "restore",
		Short: "Re-validate a persisted focus session after a restart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			application, err := newApp()
			if err != nil {
				return err
			}

			result := application.Focus.Restore(cmd.Context(), application.RepoPath)
			if !result.Success {
				return fmt.Errorf("focus restore failed at %s: %s", result.FailedStep, result.Error)
			}

			if result.Data.Restored {
				fmt.Println("Focus session restored.")
			} else {
				fmt.Printf("No focus restored: %s\n", result.Data.Reason)
			}
			return nil
		},
	}
}
