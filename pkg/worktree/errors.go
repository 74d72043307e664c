// Package worktree provides worktree management and error definitions.
package worktree

import "errors"

// Worktree-specific error types.
var (
	ErrNoDefaultBranch      = errors.New("no default branch: origin/HEAD, main and master all unresolvable")
	ErrBranchNotFound       = errors.New("branch does not exist")
	ErrDeleteMainRepository = errors.New("refusing to delete the main repository path")
	ErrDeleteAncestorOfRepo = errors.New("refusing to delete an ancestor of the main repository path")
	ErrDeleteRepositoryRoot = errors.New("refusing to delete a path containing a .git directory")
	ErrCreateFailed         = errors.New("worktree creation failed")
)
