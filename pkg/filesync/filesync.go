// Package filesync defines the background file-sync capability consumed by
// the focus sagas. The actual sync implementation (content addressing,
// transport) lives outside this module; twig only requires this
// request/response surface.
package filesync

import "context"

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=filesync.go -destination=mocks/filesync.gen.go -package=mocks

// Response is the opaque RPC result shape shared by sync calls.
type Response struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// Syncer controls background file synchronization between a main repository
// and a focused worktree.
type Syncer interface {
	// StartSync begins syncing changes from mainRepoPath to worktreePath.
	StartSync(ctx context.Context, mainRepoPath, worktreePath string) (Response, error)

	// StopSync stops syncing for the given main repository.
	StopSync(ctx context.Context, mainRepoPath string) (Response, error)
}

// noopSyncer accepts every call without doing anything. Used when no sync
// backend is wired in.
type noopSyncer struct{}

// NewNoopSyncer creates a Syncer that accepts every call.
func NewNoopSyncer() Syncer {
	return &noopSyncer{}
}

// StartSync does nothing for noop syncer.
func (n *noopSyncer) StartSync(_ context.Context, _, _ string) (Response, error) {
	return Response{Success: true}, nil
}

// StopSync does nothing for noop syncer.
func (n *noopSyncer) StopSync(_ context.Context, _ string) (Response, error) {
	return Response{Success: true}, nil
}
