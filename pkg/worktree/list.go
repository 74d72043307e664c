package worktree

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/twigtool/twig/pkg/state"
)

// List discovers managed worktrees from `git worktree list --porcelain`,
// filtering out the main repository entry and anything twig does not manage.
// Entries tracked in the state file keep their recorded metadata; ownership
// for the rest is inferred from the branch namespace.
func (m *realManager) List(ctx context.Context) ([]state.WorktreeInfo, error) {
	entries, err := m.git.WorktreeList(ctx, m.repoPath)
	if err != nil {
		return nil, fmt.Errorf("failed to list worktrees: %w", err)
	}

	mainRepo, err := filepath.Abs(m.repoPath)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve repository path: %w", err)
	}

	var infos []state.WorktreeInfo
	for _, entry := range entries {
		if entry.Bare || entry.Path == mainRepo {
			continue
		}

		managedPath := isAncestor(m.worktreesDir, entry.Path)
		managedBranch := strings.HasPrefix(entry.Branch, BranchPrefix)
		if !managedPath && !managedBranch {
			continue
		}

		if tracked, err := m.stateManager.GetWorktree(entry.Path); err == nil {
			infos = append(infos, *tracked)
			continue
		}

		ownership := state.OwnershipBorrowed
		if managedBranch {
			ownership = state.OwnershipCreated
		}
		infos = append(infos, state.WorktreeInfo{
			WorktreePath:    entry.Path,
			WorktreeName:    filepath.Base(entry.Path),
			BranchName:      entry.Branch,
			BranchOwnership: ownership,
		})
	}

	return infos, nil
}

// CleanupOrphaned deletes every discovered worktree whose path is not in
// knownPaths. Per-path results let the caller report partial failure without
// aborting the whole sweep.
func (m *realManager) CleanupOrphaned(ctx context.Context, knownPaths []string) ([]CleanupResult, error) {
	discovered, err := m.List(ctx)
	if err != nil {
		return nil, err
	}

	known := make(map[string]struct{}, len(knownPaths))
	for _, path := range knownPaths {
		known[filepath.Clean(path)] = struct{}{}
	}

	var results []CleanupResult
	for _, info := range discovered {
		if _, ok := known[filepath.Clean(info.WorktreePath)]; ok {
			continue
		}

		m.logger.Info("cleaning up orphaned worktree", "path", info.WorktreePath)
		result := CleanupResult{WorktreePath: info.WorktreePath}
		if err := m.Delete(ctx, info.WorktreePath); err != nil {
			result.Error = err.Error()
			m.logger.Warn("failed to clean up orphaned worktree", "path", info.WorktreePath, "error", err)
		} else {
			result.Deleted = true
		}
		results = append(results, result)
	}

	return results, nil
}
