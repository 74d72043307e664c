package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/twigtool/twig/pkg/checkpoint"
)

func createCheckpointCmd() *cobra.Command {
	checkpointCmd := &cobra.Command{
		Use:   "checkpoint",
		Short: "Capture, inspect and restore repository checkpoints",
	}

	checkpointCmd.AddCommand(
		createCheckpointCreateCmd(),
		createCheckpointListCmd(),
		createCheckpointDeleteCmd(),
		createCheckpointRevertCmd(),
		createCheckpointDiffCmd(),
	)
	return checkpointCmd
}

func createCheckpointCreateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "create",
		Short: "Capture the repository's current index, worktree and untracked files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			application, err := newApp()
			if err != nil {
				return err
			}

			result := application.Checkpoints.Capture(cmd.Context(), application.RepoPath)
			if !result.Success {
				return fmt.Errorf("capture failed at %s: %s", result.FailedStep, result.Error)
			}
			fmt.Printf("Captured checkpoint %s\n", result.Data.CheckpointID)
			return nil
		},
	}
}

func createCheckpointListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List checkpoints of the current repository, newest first",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			application, err := newApp()
			if err != nil {
				return err
			}

			checkpoints, err := application.Checkpoints.List(application.RepoPath)
			if err != nil {
				return err
			}

			if len(checkpoints) == 0 {
				fmt.Println("No checkpoints found.")
				return nil
			}
			for _, entry := range checkpoints {
				fmt.Printf("%s\t%s\n", entry.CheckpointID, entry.Timestamp.Format(time.RFC3339))
			}
			return nil
		},
	}
}

func createCheckpointDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <checkpoint-id>",
		Short: "Delete a checkpoint and its pinning refs",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			application, err := newApp()
			if err != nil {
				return err
			}

			if err := application.Checkpoints.Delete(cmd.Context(), application.RepoPath, args[0]); err != nil {
				return err
			}
			fmt.Printf("Deleted checkpoint %s\n", args[0])
			return nil
		},
	}
}

func createCheckpointRevertCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "revert <checkpoint-id>",
		Short: "Restore the repository to a checkpoint",
		Long: `Restore the repository's index, tracked files and untracked files to a
checkpoint. Files not part of the checkpoint are removed. Refused while a
rebase, merge, cherry-pick or revert is in progress.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			application, err := newApp()
			if err != nil {
				return err
			}

			result := application.Checkpoints.Revert(cmd.Context(), application.RepoPath, args[0])
			if !result.Success {
				err := fmt.Errorf("revert failed at %s: %s", result.FailedStep, result.Error)
				if len(result.RollbackWarnings) > 0 {
					return errors.Join(err, fmt.Errorf("rollback warnings: %v", result.RollbackWarnings))
				}
				return err
			}
			fmt.Printf("Reverted to checkpoint %s\n", args[0])
			return nil
		},
	}
}

func createCheckpointDiffCmd() *cobra.Command {
	var to string

	diffCmd := &cobra.Command{
		Use:   "diff <checkpoint-id> [--to <checkpoint-id>]",
		Short: "Diff a checkpoint against another checkpoint or the current state",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			application, err := newApp()
			if err != nil {
				return err
			}

			result := application.Checkpoints.Diff(cmd.Context(), application.RepoPath, checkpoint.DiffParams{
				From: args[0],
				To:   to,
			})
			if !result.Success {
				return fmt.Errorf("diff failed at %s: %s", result.FailedStep, result.Error)
			}

			if result.Data.Raw == "" {
				fmt.Println("No differences.")
				return nil
			}
			fmt.Print(result.Data.Raw)
			return nil
		},
	}

	diffCmd.Flags().StringVar(&to, "to", "", "Second checkpoint id (defaults to the current state)")
	return diffCmd
}
