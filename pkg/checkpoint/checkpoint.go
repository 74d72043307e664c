// Package checkpoint provides capture and revert of a repository's full
// mutable state: index, worktree and untracked files. Snapshots are plain git
// objects pinned under refs/twig/checkpoints/, so normal capture never
// touches HEAD, the branch pointer or the user-visible stash list.
package checkpoint

import (
	"context"

	"github.com/sourcegraph/go-diff/diff"

	"github.com/twigtool/twig/pkg/fs"
	"github.com/twigtool/twig/pkg/git"
	"github.com/twigtool/twig/pkg/logger"
	"github.com/twigtool/twig/pkg/saga"
	"github.com/twigtool/twig/pkg/state"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=checkpoint.go -destination=mocks/checkpoint.gen.go -package=mocks

// refPrefix is the ref namespace pinning checkpoint trees against gc.
const refPrefix = "refs/twig/checkpoints/"

// Manager interface provides checkpoint capture and revert capabilities.
type Manager interface {
	// Capture snapshots the repository's index, worktree and untracked files.
	// Capture is side-effect-free on HEAD, branch and history, and does not
	// require a clean working tree.
	Capture(ctx context.Context, repoPath string) saga.Result[state.Checkpoint]

	// Revert restores the repository to a captured checkpoint: index content,
	// tracked worktree files (including deletions and renames), and untracked
	// files byte-for-byte. Files absent from the checkpoint are removed.
	Revert(ctx context.Context, repoPath, checkpointID string) saga.Result[state.Checkpoint]

	// List returns a repository's checkpoints sorted by capture time, descending.
	List(repoPath string) ([]state.Checkpoint, error)

	// Delete removes a checkpoint and its pinning refs. It fails loudly when
	// the checkpoint id does not exist.
	Delete(ctx context.Context, repoPath, checkpointID string) error

	// Diff computes a structured diff between two checkpoints, or between a
	// checkpoint and the current repository state when params.To is empty.
	Diff(ctx context.Context, repoPath string, params DiffParams) saga.Result[Diff]
}

// DiffParams selects the two sides of a checkpoint diff.
type DiffParams struct {
	From string
	// To is a checkpoint id, or empty for the current repository state.
	To string
}

// Diff is the result of a checkpoint comparison.
type Diff struct {
	Raw   string
	Files []*diff.FileDiff
}

// NewManagerParams contains parameters for creating a new Manager instance.
type NewManagerParams struct {
	FS           fs.FS
	Git          git.Git
	StateManager state.Manager
	Logger       logger.Logger
}

type realManager struct {
	fs           fs.FS
	git          git.Git
	stateManager state.Manager
	logger       logger.Logger
}

// NewManager creates a new checkpoint Manager instance.
func NewManager(params NewManagerParams) Manager {
	log := params.Logger
	if log == nil {
		log = logger.NewNoopLogger()
	}
	return &realManager{
		fs:           params.FS,
		git:          params.Git,
		stateManager: params.StateManager,
		logger:       log,
	}
}

// List returns a repository's checkpoints sorted by capture time, descending.
func (m *realManager) List(repoPath string) ([]state.Checkpoint, error) {
	return m.stateManager.ListCheckpoints(repoPath)
}
