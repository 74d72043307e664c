package git

import (
	"context"
	"fmt"
	"strings"
)

// WorktreeAdd creates a new worktree.
func (g *realGit) WorktreeAdd(ctx context.Context, params WorktreeAddParams) error {
	args := []string{"worktree", "add"}
	switch {
	case params.Detach:
		args = append(args, "--detach", params.WorktreePath)
		if params.CommitIsh != "" {
			args = append(args, params.CommitIsh)
		}
	case params.NewBranch != "":
		args = append(args, "-b", params.NewBranch, params.WorktreePath)
		if params.Branch != "" {
			args = append(args, params.Branch)
		}
	default:
		args = append(args, params.WorktreePath, params.Branch)
	}

	if _, err := g.run(ctx, params.RepoPath, nil, args...); err != nil {
		if strings.Contains(err.Error(), "already exists") {
			return fmt.Errorf("%w: %s", ErrWorktreeExists, params.WorktreePath)
		}
		return fmt.Errorf("git worktree add failed: %w", err)
	}
	return nil
}

// WorktreeRemove removes a worktree from Git's tracking.
func (g *realGit) WorktreeRemove(ctx context.Context, repoPath, worktreePath string, force bool) error {
	args := []string{"worktree", "remove"}
	if force {
		args = append(args, "--force")
	}
	args = append(args, worktreePath)

	if _, err := g.run(ctx, repoPath, nil, args...); err != nil {
		return fmt.Errorf("git worktree remove failed: %w", err)
	}
	return nil
}

// WorktreeList lists all worktrees of the repository.
func (g *realGit) WorktreeList(ctx context.Context, repoPath string) ([]WorktreeListEntry, error) {
	output, err := g.run(ctx, repoPath, nil, "worktree", "list", "--porcelain")
	if err != nil {
		return nil, fmt.Errorf("git worktree list failed: %w", err)
	}
	return parseWorktreeList(output), nil
}

// WorktreePrune prunes stale worktree administrative files.
func (g *realGit) WorktreePrune(ctx context.Context, repoPath string) error {
	_, err := g.run(ctx, repoPath, nil, "worktree", "prune")
	return err
}

// parseWorktreeList parses `git worktree list --porcelain` output.
// Entries are separated by blank lines; each line is "<key> <value>" or a
// bare attribute like "bare" or "detached".
func parseWorktreeList(output string) []WorktreeListEntry {
	var entries []WorktreeListEntry
	var current *WorktreeListEntry

	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimRight(line, "\r")
		if line == "" {
			if current != nil {
				entries = append(entries, *current)
				current = nil
			}
			continue
		}

		switch {
		case strings.HasPrefix(line, "worktree "):
			if current != nil {
				entries = append(entries, *current)
			}
			current = &WorktreeListEntry{Path: strings.TrimPrefix(line, "worktree ")}
		case current == nil:
			// Attribute line without a preceding worktree line; skip.
		case strings.HasPrefix(line, "HEAD "):
			current.Head = strings.TrimPrefix(line, "HEAD ")
		case strings.HasPrefix(line, "branch "):
			current.Branch = strings.TrimPrefix(strings.TrimPrefix(line, "branch "), "refs/heads/")
		case line == "detached":
			current.Detached = true
		case line == "bare":
			current.Bare = true
		}
	}

	if current != nil {
		entries = append(entries, *current)
	}
	return entries
}
