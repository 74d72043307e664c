package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/twigtool/twig/pkg/worktree"
)

func createWorktreeCmd() *cobra.Command {
	worktreeCmd := &cobra.Command{
		Use:   "worktree",
		Short: "Manage worktrees of the current repository",
	}

	worktreeCmd.AddCommand(
		createWorktreeCreateCmd(),
		createWorktreeDeleteCmd(),
		createWorktreeListCmd(),
		createWorktreeCleanupCmd(),
	)
	return worktreeCmd
}

func createWorktreeCreateCmd() *cobra.Command {
	var baseBranch string
	var branch string

	createCmd := &cobra.Command{
		Use:   "create [--base <branch>] [--branch <existing-branch>]",
		Short: "Create a worktree on a fresh twig/ branch or an existing branch",
		Long: `Create a worktree. Without flags, a new twig/ branch is minted off the
resolved default branch and given a generated name.

Examples:
  twig worktree create
  twig worktree create --base develop
  twig worktree create --branch feature/login`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			application, err := newApp()
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			if branch != "" {
				created, err := application.Worktrees.CreateForExistingBranch(ctx, branch)
				if err != nil {
					return err
				}
				fmt.Printf("Created worktree %s at %s (branch %s)\n",
					created.WorktreeName, created.WorktreePath, created.BranchName)
				return nil
			}

			created, err := application.Worktrees.Create(ctx, worktree.CreateParams{BaseBranch: baseBranch})
			if err != nil {
				return err
			}
			fmt.Printf("Created worktree %s at %s (branch %s off %s)\n",
				created.WorktreeName, created.WorktreePath, created.BranchName, created.BaseBranch)
			return nil
		},
	}

	createCmd.Flags().StringVar(&baseBranch, "base", "", "Base branch for the new twig/ branch")
	createCmd.Flags().StringVar(&branch, "branch", "", "Attach the worktree to this existing branch")
	return createCmd
}

func createWorktreeDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <worktree-path>",
		Short: "Delete a worktree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			application, err := newApp()
			if err != nil {
				return err
			}

			if err := application.Worktrees.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Deleted worktree %s\n", args[0])
			return nil
		},
	}
}

func createWorktreeListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List managed worktrees of the current repository",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			application, err := newApp()
			if err != nil {
				return err
			}

			infos, err := application.Worktrees.List(cmd.Context())
			if err != nil {
				return err
			}

			if len(infos) == 0 {
				fmt.Println("No worktrees found.")
				return nil
			}
			for _, info := range infos {
				fmt.Printf("%s\t%s\t%s\t%s\n",
					info.WorktreeName, info.BranchName, info.BranchOwnership, info.WorktreePath)
			}
			return nil
		},
	}
}

func createWorktreeCleanupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cleanup",
		Short: "Delete worktrees no longer tracked in the state file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			application, err := newApp()
			if err != nil {
				return err
			}

			tracked, err := application.State.ListWorktrees()
			if err != nil {
				return err
			}
			known := make([]string, 0, len(tracked))
			for _, info := range tracked {
				known = append(known, info.WorktreePath)
			}

			results, err := application.Worktrees.CleanupOrphaned(cmd.Context(), known)
			if err != nil {
				return err
			}

			if len(results) == 0 {
				fmt.Println("No orphaned worktrees found.")
				return nil
			}
			for _, result := range results {
				if result.Deleted {
					fmt.Printf("Deleted %s\n", result.WorktreePath)
				} else {
					fmt.Printf("Failed to delete %s: %s\n", result.WorktreePath, result.Error)
				}
			}
			return nil
		},
	}
}
