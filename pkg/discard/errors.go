// Package discard provides single-file discard and error definitions.
package discard

import "errors"

// Discard-specific error types.
var (
	ErrNoPendingChange = errors.New("file has no pending change")
)
