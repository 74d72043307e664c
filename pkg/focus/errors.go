// Package focus provides focus orchestration and error definitions.
package focus

import "errors"

// Focus-specific error types.
var (
	ErrWorktreeDetached   = errors.New("worktree is not on a branch")
	ErrBranchInMainRepo   = errors.New("branch is already checked out in the main repository")
	ErrSyncRejected       = errors.New("file sync call rejected")
	ErrNoSessionToDisable = errors.New("no focus session to disable")
)
