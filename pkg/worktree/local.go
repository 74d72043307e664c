package worktree

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/twigtool/twig/pkg/git"
)

// localWorktreePath is deterministic so the local worktree can be found again
// across restarts without bookkeeping.
func (m *realManager) localWorktreePath() string {
	return filepath.Join(m.worktreesDir, filepath.Base(m.repoPath)+"-local")
}

// EnsureLocal idempotently ensures the local worktree exists, detached at the
// current commit, and returns its path. The local worktree parks a local task
// while its branch is being focused elsewhere.
func (m *realManager) EnsureLocal(ctx context.Context) (string, error) {
	path := m.localWorktreePath()

	entries, err := m.git.WorktreeList(ctx, m.repoPath)
	if err != nil {
		return "", err
	}
	for _, entry := range entries {
		if entry.Path == path {
			return path, nil
		}
	}

	commit, err := m.git.RevParse(ctx, m.repoPath, "HEAD")
	if err != nil {
		return "", fmt.Errorf("failed to resolve HEAD: %w", err)
	}

	if err := m.fs.MkdirAll(m.worktreesDir, 0755); err != nil {
		return "", err
	}
	if err := m.git.WorktreeAdd(ctx, git.WorktreeAddParams{
		RepoPath:     m.repoPath,
		WorktreePath: path,
		Detach:       true,
		CommitIsh:    commit,
	}); err != nil {
		return "", err
	}

	m.logger.Info("local worktree created", "path", path, "commit", commit)
	return path, nil
}

// RemoveLocal idempotently removes the local worktree.
func (m *realManager) RemoveLocal(ctx context.Context) error {
	path := m.localWorktreePath()

	entries, err := m.git.WorktreeList(ctx, m.repoPath)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		if entry.Path == path {
			return m.Delete(ctx, path)
		}
	}
	return nil
}
