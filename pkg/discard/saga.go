package discard

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/twigtool/twig/pkg/saga"
)

// Discard undoes the pending change of one file. The file's status picks the
// step sequence; every backup is taken before any mutation, so rollback never
// depends on git state the forward steps are about to destroy.
func (m *realManager) Discard(ctx context.Context, params Params) saga.Result[Output] {
	status, err := m.detectStatus(ctx, params)
	if err != nil {
		return saga.Result[Output]{
			Success:    false,
			Error:      err.Error(),
			FailedStep: "detect_file_status",
		}
	}

	m.logger.Info("discarding file changes", "file", params.FilePath, "status", status)

	var steps []saga.Step
	switch status {
	case StatusModified, StatusRenamed:
		steps = m.stashBackedSteps(params)
	case StatusAdded:
		steps = m.addedSteps(params)
	case StatusUntracked:
		steps = m.untrackedSteps(params)
	case StatusDeleted:
		steps = m.deletedSteps(params)
	}

	return saga.Run(ctx, m.logger, "discard_file_changes", steps, func() Output {
		return Output{FilePath: params.FilePath, Status: status}
	})
}

// stashBackedSteps handles modified and renamed files: the backup is a stash
// scoped to the single path, popped on rollback and dropped on success.
func (m *realManager) stashBackedSteps(params Params) []saga.Step {
	var stashSHA string

	return []saga.Step{
		{
			Name: "backup_stash_push",
			Execute: func(ctx context.Context) (interface{}, error) {
				message := fmt.Sprintf("twig-discard %s", params.FilePath)
				if _, err := m.git.Stash(ctx, params.RepoPath,
					"push", "--include-untracked", "-m", message, "--", params.FilePath); err != nil {
					return nil, err
				}
				sha, err := m.git.RevParse(ctx, params.RepoPath, "stash@{0}")
				if err != nil {
					return nil, err
				}
				stashSHA = sha
				return sha, nil
			},
			Rollback: func(ctx context.Context, captured interface{}) error {
				ref, err := m.findStashBySHA(ctx, params.RepoPath, captured.(string))
				if err != nil {
					return err
				}
				_, err = m.git.Stash(ctx, params.RepoPath, "pop", ref)
				return err
			},
		},
		{
			Name: "discard_changes",
			Execute: func(ctx context.Context) (interface{}, error) {
				// The scoped stash already reset the path; checkout covers the
				// pre-rename path of a rename left behind in the index.
				return nil, m.git.Checkout(ctx, params.RepoPath, "HEAD", "--", params.FilePath)
			},
		},
		saga.ReadOnly("drop_backup_stash", func(ctx context.Context) error {
			// The discard itself is already complete; a leftover backup stash
			// is harmless, while failing here would pop it back over the
			// discarded file. Log and move on.
			ref, err := m.findStashBySHA(ctx, params.RepoPath, stashSHA)
			if err == nil {
				_, err = m.git.Stash(ctx, params.RepoPath, "drop", ref)
			}
			if err != nil {
				m.logger.Warn("failed to drop backup stash",
					"file", params.FilePath, "stash", stashSHA, "error", err)
			}
			return nil
		}),
	}
}

// addedSteps handles staged-new files: bytes are backed up in memory, the
// path is git rm -f'd, and rollback rewrites and re-stages.
func (m *realManager) addedSteps(params Params) []saga.Step {
	var backup []byte

	return []saga.Step{
		saga.ReadOnly("backup_file_bytes", func(_ context.Context) error {
			data, err := m.fs.ReadFile(filepath.Join(params.RepoPath, params.FilePath))
			if err != nil {
				return err
			}
			backup = data
			return nil
		}),
		{
			Name: "remove_added_file",
			Execute: func(ctx context.Context) (interface{}, error) {
				return nil, m.git.Rm(ctx, params.RepoPath, "-f", "--", params.FilePath)
			},
			Rollback: func(ctx context.Context, _ interface{}) error {
				path := filepath.Join(params.RepoPath, params.FilePath)
				if err := m.fs.WriteFile(path, backup, 0644); err != nil {
					return err
				}
				return m.git.Add(ctx, params.RepoPath, params.FilePath)
			},
		},
	}
}

// untrackedSteps handles untracked files: bytes are backed up in memory, the
// path is git clean'd, and rollback rewrites without re-staging since the
// file was never tracked.
func (m *realManager) untrackedSteps(params Params) []saga.Step {
	var backup []byte

	return []saga.Step{
		saga.ReadOnly("backup_file_bytes", func(_ context.Context) error {
			data, err := m.fs.ReadFile(filepath.Join(params.RepoPath, params.FilePath))
			if err != nil {
				return err
			}
			backup = data
			return nil
		}),
		{
			Name: "clean_untracked_file",
			Execute: func(ctx context.Context) (interface{}, error) {
				return nil, m.git.Clean(ctx, params.RepoPath, "-f", "--", params.FilePath)
			},
			Rollback: func(_ context.Context, _ interface{}) error {
				return m.fs.WriteFile(filepath.Join(params.RepoPath, params.FilePath), backup, 0644)
			},
		},
	}
}

// deletedSteps handles deleted files: the file is checked back out from HEAD,
// and rollback removes it again.
func (m *realManager) deletedSteps(params Params) []saga.Step {
	return []saga.Step{
		{
			Name: "restore_deleted_file",
			Execute: func(ctx context.Context) (interface{}, error) {
				return nil, m.git.Checkout(ctx, params.RepoPath, "HEAD", "--", params.FilePath)
			},
			Rollback: func(ctx context.Context, _ interface{}) error {
				return m.git.Rm(ctx, params.RepoPath, "-f", "--ignore-unmatch", "--", params.FilePath)
			},
		},
	}
}

// findStashBySHA resolves the stash@{N} ref whose commit matches sha.
func (m *realManager) findStashBySHA(ctx context.Context, repoPath, sha string) (string, error) {
	entries, err := m.git.StashList(ctx, repoPath)
	if err != nil {
		return "", err
	}

	for i := range entries {
		ref := fmt.Sprintf("stash@{%d}", i)
		entrySHA, err := m.git.RevParse(ctx, repoPath, ref)
		if err != nil {
			return "", err
		}
		if strings.TrimSpace(entrySHA) == sha {
			return ref, nil
		}
	}
	return "", fmt.Errorf("stash entry %s not found", sha)
}
