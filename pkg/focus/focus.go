// Package focus provides the atomic "move focus to this worktree's branch"
// orchestration across a main repository and a linked worktree, with swap and
// restore-on-restart semantics.
package focus

import (
	"context"

	"github.com/twigtool/twig/pkg/filesync"
	"github.com/twigtool/twig/pkg/fs"
	"github.com/twigtool/twig/pkg/git"
	"github.com/twigtool/twig/pkg/logger"
	"github.com/twigtool/twig/pkg/saga"
	"github.com/twigtool/twig/pkg/sessions"
	"github.com/twigtool/twig/pkg/state"
	"github.com/twigtool/twig/pkg/watcher"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=focus.go -destination=mocks/focus.gen.go -package=mocks

// EnableParams selects the worktree whose branch is focused in the main repo.
type EnableParams struct {
	MainRepoPath string
	WorktreePath string
}

// EnableOutput reports the recorded session and whether an existing focus was
// swapped out first.
type EnableOutput struct {
	Session state.FocusSession
	WasSwap bool
}

// DisableOutput carries a non-fatal warning (e.g. a stash-pop conflict) from
// an otherwise successful disable.
type DisableOutput struct {
	Warning string
}

// RestoreOutput reports whether a persisted session survived re-validation.
type RestoreOutput struct {
	Restored bool
	Reason   string
}

// Manager interface provides the focus saga family.
type Manager interface {
	// Enable atomically checks the worktree's branch out in the main
	// repository, detaching the worktree, stashing dirty main-repo changes
	// and starting sync and watching. Focusing an already focused worktree is
	// a non-error success with WasSwap false.
	Enable(ctx context.Context, params EnableParams) saga.Result[EnableOutput]

	// Disable mirrors Enable: stops watching and sync, restores the original
	// branch, reattaches the worktree and pops the recorded stash.
	Disable(ctx context.Context, mainRepoPath string) saga.Result[DisableOutput]

	// Restore re-validates a persisted session at process startup,
	// self-healing corrupt or stale sessions by deletion.
	Restore(ctx context.Context, mainRepoPath string) saga.Result[RestoreOutput]
}

// NewManagerParams contains parameters for creating a new Manager instance.
type NewManagerParams struct {
	FS           fs.FS
	Git          git.Git
	StateManager state.Manager
	Syncer       filesync.Syncer
	Sessions     sessions.Notifier
	Watcher      watcher.Watcher
	Logger       logger.Logger
}

type realManager struct {
	fs           fs.FS
	git          git.Git
	stateManager state.Manager
	syncer       filesync.Syncer
	sessions     sessions.Notifier
	watcher      watcher.Watcher
	logger       logger.Logger
}

// NewManager creates a new focus Manager instance.
func NewManager(params NewManagerParams) Manager {
	log := params.Logger
	if log == nil {
		log = logger.NewNoopLogger()
	}
	return &realManager{
		fs:           params.FS,
		git:          params.Git,
		stateManager: params.StateManager,
		syncer:       params.Syncer,
		sessions:     params.Sessions,
		watcher:      params.Watcher,
		logger:       log,
	}
}
