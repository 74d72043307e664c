package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/twigtool/twig/pkg/discard"
)

func createDiscardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "discard <file>",
		Short: "Discard the pending change of a single file",
		Long: `Discard the pending change of one file, whatever its status: modified,
added, deleted, renamed or untracked. A backup is taken before anything is
destroyed, so a failed discard leaves the file as it was.

Examples:
  twig discard main.go
  twig discard docs/notes.txt`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			application, err := newApp()
			if err != nil {
				return err
			}

			result := application.Discard.Discard(cmd.Context(), discard.Params{
				RepoPath: application.RepoPath,
				FilePath: args[0],
			})
			if !result.Success {
				return fmt.Errorf("discard failed at %s: %s", result.FailedStep, result.Error)
			}

			fmt.Printf("Discarded %s changes of %s\n", result.Data.Status, result.Data.FilePath)
			return nil
		},
	}
}
