package worktree

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/twigtool/twig/pkg/git"
	"github.com/twigtool/twig/pkg/saga"
	"github.com/twigtool/twig/pkg/state"
)

// Create creates a worktree on a newly minted twig/ branch off the resolved
// base branch.
func (m *realManager) Create(ctx context.Context, params CreateParams) (state.WorktreeInfo, error) {
	name, err := m.GenerateUniqueName(ctx)
	if err != nil {
		return state.WorktreeInfo{}, err
	}

	baseBranch, err := m.resolveBaseBranch(ctx, params.BaseBranch)
	if err != nil {
		return state.WorktreeInfo{}, err
	}

	info := state.WorktreeInfo{
		WorktreePath:    filepath.Join(m.worktreesDir, name),
		WorktreeName:    name,
		BranchName:      BranchPrefix + name,
		BaseBranch:      baseBranch,
		CreatedAt:       time.Now(),
		BranchOwnership: state.OwnershipCreated,
	}

	m.logger.Info("creating worktree", "name", name, "branch", info.BranchName, "base", baseBranch)

	steps := []saga.Step{
		{
			Name: "prepare_worktrees_dir",
			Execute: func(_ context.Context) (interface{}, error) {
				return nil, m.fs.MkdirAll(m.worktreesDir, 0755)
			},
		},
		{
			Name: "add_worktree",
			Execute: func(ctx context.Context) (interface{}, error) {
				return nil, m.git.WorktreeAdd(ctx, git.WorktreeAddParams{
					RepoPath:     m.repoPath,
					WorktreePath: info.WorktreePath,
					NewBranch:    info.BranchName,
					Branch:       baseBranch,
				})
			},
			Rollback: func(ctx context.Context, _ interface{}) error {
				if err := m.git.WorktreeRemove(ctx, m.repoPath, info.WorktreePath, true); err != nil {
					return err
				}
				// The branch was minted by this step, so it goes too.
				return m.git.DeleteBranch(ctx, m.repoPath, info.BranchName, true)
			},
		},
		{
			Name: "record_worktree",
			Execute: func(_ context.Context) (interface{}, error) {
				return nil, m.stateManager.AddWorktree(info)
			},
			Rollback: func(_ context.Context, _ interface{}) error {
				return m.stateManager.RemoveWorktree(info.WorktreePath)
			},
		},
	}

	result := saga.Run(ctx, m.logger, "worktree_create", steps, func() state.WorktreeInfo {
		return info
	})
	if !result.Success {
		return state.WorktreeInfo{}, fmt.Errorf("%w at %s: %s", ErrCreateFailed, result.FailedStep, result.Error)
	}
	return result.Data, nil
}

// CreateForExistingBranch creates a worktree attached to a pre-existing
// branch. Git forbids checking the same branch out in two worktrees, so a
// missing branch fails fast before any mutation.
func (m *realManager) CreateForExistingBranch(ctx context.Context, branch string) (state.WorktreeInfo, error) {
	exists, err := m.git.BranchExists(ctx, m.repoPath, branch)
	if err != nil {
		return state.WorktreeInfo{}, err
	}
	if !exists {
		return state.WorktreeInfo{}, fmt.Errorf("%w: %s", ErrBranchNotFound, branch)
	}

	name := strings.ReplaceAll(branch, "/", "-")
	info := state.WorktreeInfo{
		WorktreePath:    filepath.Join(m.worktreesDir, name),
		WorktreeName:    name,
		BranchName:      branch,
		CreatedAt:       time.Now(),
		BranchOwnership: state.OwnershipBorrowed,
	}

	m.logger.Info("creating worktree for existing branch", "branch", branch, "path", info.WorktreePath)

	steps := []saga.Step{
		{
			Name: "prepare_worktrees_dir",
			Execute: func(_ context.Context) (interface{}, error) {
				return nil, m.fs.MkdirAll(m.worktreesDir, 0755)
			},
		},
		{
			Name: "add_worktree",
			Execute: func(ctx context.Context) (interface{}, error) {
				return nil, m.git.WorktreeAdd(ctx, git.WorktreeAddParams{
					RepoPath:     m.repoPath,
					WorktreePath: info.WorktreePath,
					Branch:       branch,
				})
			},
			Rollback: func(ctx context.Context, _ interface{}) error {
				// Borrowed branch stays; only the worktree is undone.
				return m.git.WorktreeRemove(ctx, m.repoPath, info.WorktreePath, true)
			},
		},
		{
			Name: "record_worktree",
			Execute: func(_ context.Context) (interface{}, error) {
				return nil, m.stateManager.AddWorktree(info)
			},
			Rollback: func(_ context.Context, _ interface{}) error {
				return m.stateManager.RemoveWorktree(info.WorktreePath)
			},
		},
	}

	result := saga.Run(ctx, m.logger, "worktree_create_existing", steps, func() state.WorktreeInfo {
		return info
	})
	if !result.Success {
		return state.WorktreeInfo{}, fmt.Errorf("%w at %s: %s", ErrCreateFailed, result.FailedStep, result.Error)
	}
	return result.Data, nil
}

// resolveBaseBranch resolves the branch new worktrees are based on: explicit
// choice, origin/HEAD, main, master, in that order. The three probes have no
// ordering dependency and run concurrently.
func (m *realManager) resolveBaseBranch(ctx context.Context, explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}

	var originHead string
	var mainExists, masterExists bool

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		ref, err := m.git.SymbolicRef(gctx, m.repoPath, "refs/remotes/origin/HEAD")
		if err == nil {
			originHead = strings.TrimPrefix(ref, "refs/remotes/origin/")
		}
		return nil
	})
	g.Go(func() error {
		exists, err := m.git.BranchExists(gctx, m.repoPath, "main")
		if err != nil {
			return err
		}
		mainExists = exists
		return nil
	})
	g.Go(func() error {
		exists, err := m.git.BranchExists(gctx, m.repoPath, "master")
		if err != nil {
			return err
		}
		masterExists = exists
		return nil
	})
	if err := g.Wait(); err != nil {
		return "", err
	}

	switch {
	case originHead != "":
		return originHead, nil
	case mainExists:
		return "main", nil
	case masterExists:
		return "master", nil
	default:
		return "", ErrNoDefaultBranch
	}
}
