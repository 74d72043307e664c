package git

import (
	"context"
	"os"
	"path/filepath"
)

// BusyState probes the repository for an in-progress rebase, merge,
// cherry-pick or revert by checking git's own marker paths.
func (g *realGit) BusyState(ctx context.Context, repoPath string) (BusyState, error) {
	gitDir, err := g.GitDir(ctx, repoPath)
	if err != nil {
		return BusyState{}, err
	}
	return probeBusyState(gitDir), nil
}

// probeBusyState checks the well-known marker paths inside a git directory.
func probeBusyState(gitDir string) BusyState {
	markers := []struct {
		path      string
		operation Operation
	}{
		{"rebase-merge", OperationRebase},
		{"rebase-apply", OperationRebase},
		{"MERGE_HEAD", OperationMerge},
		{"CHERRY_PICK_HEAD", OperationCherryPick},
		{"REVERT_HEAD", OperationRevert},
	}

	for _, marker := range markers {
		if _, err := os.Stat(filepath.Join(gitDir, marker.path)); err == nil {
			return BusyState{Busy: true, Operation: marker.operation}
		}
	}
	return BusyState{}
}
