// Package worktree provides worktree lifecycle management for twig.
package worktree

import (
	"context"

	"github.com/twigtool/twig/pkg/fs"
	"github.com/twigtool/twig/pkg/git"
	"github.com/twigtool/twig/pkg/logger"
	"github.com/twigtool/twig/pkg/state"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=worktree.go -destination=mocks/worktree.gen.go -package=mocks

// BranchPrefix is the namespace under which twig mints branches for created
// worktrees.
const BranchPrefix = "twig/"

// Manager interface provides worktree management capabilities for one main
// repository.
type Manager interface {
	// Create creates a worktree on a newly minted twig/ branch off the
	// resolved base branch.
	Create(ctx context.Context, params CreateParams) (state.WorktreeInfo, error)

	// CreateForExistingBranch creates a worktree attached to a pre-existing
	// branch, without creating one. Fails fast if the branch does not exist.
	CreateForExistingBranch(ctx context.Context, branch string) (state.WorktreeInfo, error)

	// Delete safely deletes a worktree, guarding against deleting the main
	// repository, an ancestor of it, or another repository root.
	Delete(ctx context.Context, worktreePath string) error

	// List discovers managed worktrees from git's own bookkeeping.
	List(ctx context.Context) ([]state.WorktreeInfo, error)

	// CleanupOrphaned deletes every discovered worktree whose path is not in
	// knownPaths, returning per-path results so partial failure does not
	// abort the sweep.
	CleanupOrphaned(ctx context.Context, knownPaths []string) ([]CleanupResult, error)

	// EnsureLocal idempotently ensures the deterministically-pathed local
	// worktree exists, detached at the current commit, and returns its path.
	EnsureLocal(ctx context.Context) (string, error)

	// RemoveLocal idempotently removes the local worktree.
	RemoveLocal(ctx context.Context) error

	// GenerateUniqueName returns a three-word worktree name that collides
	// with no existing worktree or twig branch.
	GenerateUniqueName(ctx context.Context) (string, error)
}

// CreateParams contains parameters for worktree creation.
type CreateParams struct {
	// BaseBranch, when empty, is resolved via origin/HEAD, then main, then
	// master.
	BaseBranch string
}

// CleanupResult is the per-path outcome of an orphan sweep.
type CleanupResult struct {
	WorktreePath string
	Deleted      bool
	Error        string
}

// NewManagerParams contains parameters for creating a new Manager instance.
type NewManagerParams struct {
	FS           fs.FS
	Git          git.Git
	StateManager state.Manager
	Logger       logger.Logger
	RepoPath     string
	WorktreesDir string
}

type realManager struct {
	fs           fs.FS
	git          git.Git
	stateManager state.Manager
	logger       logger.Logger
	repoPath     string
	worktreesDir string
}

// NewManager creates a new worktree Manager instance.
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
		repoPath:     params.RepoPath,
		worktreesDir: params.WorktreesDir,
	}
}
