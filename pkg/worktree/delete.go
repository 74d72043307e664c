package worktree

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/twigtool/twig/pkg/state"
)

// Delete safely deletes a worktree. Three independent guards run before any
// filesystem mutation; deletion tries `git worktree remove --force` first and
// falls back to manual removal plus prune only as last resort.
func (m *realManager) Delete(ctx context.Context, worktreePath string) error {
	if err := m.validateDeletion(worktreePath); err != nil {
		return err
	}

	m.logger.Info("deleting worktree", "path", worktreePath)

	if err := m.git.WorktreeRemove(ctx, m.repoPath, worktreePath, true); err != nil {
		m.logger.Warn("git worktree remove failed, falling back to manual removal",
			"path", worktreePath, "error", err)

		if rmErr := m.fs.RemoveAll(worktreePath); rmErr != nil {
			return fmt.Errorf("failed to remove worktree directory: %w", rmErr)
		}
		if pruneErr := m.git.WorktreePrune(ctx, m.repoPath); pruneErr != nil {
			return fmt.Errorf("failed to prune worktrees: %w", pruneErr)
		}
		m.logger.Info("worktree removed manually and pruned", "path", worktreePath)
	}

	if err := m.stateManager.RemoveWorktree(worktreePath); err != nil {
		if !errors.Is(err, state.ErrWorktreeNotFound) {
			return fmt.Errorf("failed to remove worktree from state: %w", err)
		}
		// Worktrees discovered outside the state file are legal to delete.
		m.logger.Debug("worktree was not tracked in state", "path", worktreePath)
	}

	m.logger.Info("worktree deleted", "path", worktreePath)
	return nil
}

// validateDeletion applies the three safety guards.
func (m *realManager) validateDeletion(worktreePath string) error {
	target, err := filepath.Abs(worktreePath)
	if err != nil {
		return fmt.Errorf("failed to resolve worktree path: %w", err)
	}
	mainRepo, err := filepath.Abs(m.repoPath)
	if err != nil {
		return fmt.Errorf("failed to resolve repository path: %w", err)
	}

	if target == mainRepo {
		return fmt.Errorf("%w: %s", ErrDeleteMainRepository, target)
	}

	if isAncestor(target, mainRepo) {
		return fmt.Errorf("%w: %s", ErrDeleteAncestorOfRepo, target)
	}

	// A worktree carries a .git file; a .git directory marks a repository root.
	gitDir, err := m.fs.IsDir(filepath.Join(target, ".git"))
	if err == nil && gitDir {
		return fmt.Errorf("%w: %s", ErrDeleteRepositoryRoot, target)
	}

	return nil
}

// isAncestor reports whether ancestor is a strict filesystem ancestor of path.
func isAncestor(ancestor, path string) bool {
	rel, err := filepath.Rel(ancestor, path)
	if err != nil {
		return false
	}
	return rel != "." && !strings.HasPrefix(rel, "..") && !filepath.IsAbs(rel)
}
