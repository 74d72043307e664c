// Package state provides state file management and error definitions.
package state

import "errors"

// State-specific error types.
var (
	ErrWorktreeNotFound       = errors.New("worktree not found in state")
	ErrWorktreeAlreadyTracked = errors.New("worktree already tracked in state")
	ErrFocusSessionNotFound   = errors.New("focus session not found")
	ErrCheckpointNotFound     = errors.New("checkpoint not found")
)
