// Package git provides Git operations and error definitions.
package git

import "errors"

// Git-specific error types.
var (
	ErrWorktreeExists = errors.New("worktree already exists")
	ErrNotARepository = errors.New("not a git repository")
)
