// Package git provides Git command execution for the twig application.
package git

import (
	"context"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=git.go -destination=mocks/git.gen.go -package=mocks

// Git interface provides Git command execution capabilities.
// All methods operate relative to the given repository path and honor
// context cancellation by killing the underlying git process.
type Git interface {
	// Status executes `git status` in the specified repository.
	Status(ctx context.Context, repoPath string) (string, error)

	// StatusPorcelain executes `git status --porcelain`, optionally limited to paths.
	StatusPorcelain(ctx context.Context, repoPath string, paths ...string) (string, error)

	// IsClean reports whether the repository has no staged, unstaged or untracked changes.
	IsClean(ctx context.Context, repoPath string) (bool, error)

	// Stash executes `git stash` with the given arguments.
	Stash(ctx context.Context, repoPath string, args ...string) (string, error)

	// StashList returns the stash list, one entry per line.
	StashList(ctx context.Context, repoPath string) ([]string, error)

	// Checkout executes `git checkout` with the given arguments.
	Checkout(ctx context.Context, repoPath string, args ...string) error

	// CurrentBranch returns the current branch name, or "HEAD" when detached.
	CurrentBranch(ctx context.Context, repoPath string) (string, error)

	// Add adds the given paths to the staging area.
	Add(ctx context.Context, repoPath string, paths ...string) error

	// Rm executes `git rm` with the given arguments.
	Rm(ctx context.Context, repoPath string, args ...string) error

	// Clean executes `git clean` with the given arguments.
	Clean(ctx context.Context, repoPath string, args ...string) error

	// Commit creates a new commit with the specified message.
	Commit(ctx context.Context, repoPath, message string) error

	// BranchExists checks if a local branch exists.
	BranchExists(ctx context.Context, repoPath, branch string) (bool, error)

	// DeleteBranch deletes a local branch.
	DeleteBranch(ctx context.Context, repoPath, branch string, force bool) error

	// SymbolicRef resolves a symbolic reference (e.g. refs/remotes/origin/HEAD).
	SymbolicRef(ctx context.Context, repoPath, name string) (string, error)

	// RevParse executes `git rev-parse` with the given arguments.
	RevParse(ctx context.Context, repoPath string, args ...string) (string, error)

	// GitDir returns the absolute path of the repository's git directory.
	GitDir(ctx context.Context, repoPath string) (string, error)

	// WorktreeAdd creates a new worktree.
	WorktreeAdd(ctx context.Context, params WorktreeAddParams) error

	// WorktreeRemove removes a worktree from Git's tracking.
	WorktreeRemove(ctx context.Context, repoPath, worktreePath string, force bool) error

	// WorktreeList lists all worktrees of the repository.
	WorktreeList(ctx context.Context, repoPath string) ([]WorktreeListEntry, error)

	// WorktreePrune prunes stale worktree administrative files.
	WorktreePrune(ctx context.Context, repoPath string) error

	// LsFiles executes `git ls-files` and returns one path per line.
	LsFiles(ctx context.Context, repoPath string, args ...string) ([]string, error)

	// CatFileBlob returns the raw content of a blob object.
	CatFileBlob(ctx context.Context, repoPath, oid string) ([]byte, error)

	// Raw executes an arbitrary git command and returns its trimmed output.
	Raw(ctx context.Context, repoPath string, args ...string) (string, error)

	// RawEnv executes an arbitrary git command with extra environment variables
	// (e.g. GIT_INDEX_FILE for throwaway-index plumbing).
	RawEnv(ctx context.Context, repoPath string, env []string, args ...string) (string, error)

	// BusyState probes the repository for an in-progress rebase, merge,
	// cherry-pick or revert.
	BusyState(ctx context.Context, repoPath string) (BusyState, error)
}

type realGit struct {
	// No fields needed for basic Git operations
}

// NewGit creates a new Git instance.
func NewGit() Git {
	return &realGit{}
}
