// Package checkpoint provides checkpoint management and error definitions.
package checkpoint

import "errors"

// Checkpoint-specific error types.
var (
	ErrGitBusy = errors.New("repository is busy")
)
