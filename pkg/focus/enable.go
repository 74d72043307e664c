package focus

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/twigtool/twig/pkg/saga"
	"github.com/twigtool/twig/pkg/sessions"
	"github.com/twigtool/twig/pkg/state"
)

// Enable atomically moves focus to the given worktree's branch. When a
// different worktree is already focused on the same main repository, the
// current session is disabled first as a nested saga step (the swap case);
// focusing the already focused worktree succeeds immediately with WasSwap
// false.
func (m *realManager) Enable(ctx context.Context, params EnableParams) saga.Result[EnableOutput] {
	branch, err := m.git.CurrentBranch(ctx, params.WorktreePath)
	if err != nil {
		return enableFailure("resolve_worktree_branch", err)
	}
	if branch == "HEAD" {
		return enableFailure("resolve_worktree_branch",
			fmt.Errorf("%w: %s", ErrWorktreeDetached, params.WorktreePath))
	}

	wasSwap := false
	var steps []saga.Step

	existing, err := m.stateManager.GetFocusSession(params.MainRepoPath)
	if err == nil {
		if existing.WorktreePath == params.WorktreePath {
			m.logger.Info("worktree already focused", "worktree", params.WorktreePath)
			return saga.Succeed(EnableOutput{Session: *existing, WasSwap: false})
		}

		wasSwap = true
		// Nested saga: it compensates its own steps on failure, so this outer
		// step carries no rollback of its own.
		steps = append(steps, saga.ReadOnly("disable_current_focus", func(ctx context.Context) error {
			result := m.Disable(ctx, params.MainRepoPath)
			if !result.Success {
				return fmt.Errorf("failed to disable current focus at %s: %s", result.FailedStep, result.Error)
			}
			return nil
		}))
	} else if !errors.Is(err, state.ErrFocusSessionNotFound) {
		return enableFailure("load_existing_session", err)
	}

	session := state.FocusSession{
		MainRepoPath: params.MainRepoPath,
		WorktreePath: params.WorktreePath,
		Branch:       branch,
	}

	steps = append(steps,
		saga.ReadOnly("resolve_main_state", func(ctx context.Context) error {
			originalBranch, err := m.git.CurrentBranch(ctx, params.MainRepoPath)
			if err != nil {
				return err
			}
			if originalBranch == branch {
				return fmt.Errorf("%w: %s", ErrBranchInMainRepo, branch)
			}
			commitSHA, err := m.git.RevParse(ctx, params.WorktreePath, "HEAD")
			if err != nil {
				return err
			}
			session.OriginalBranch = originalBranch
			session.CommitSHA = commitSHA
			return nil
		}),
		saga.ReadOnly("interrupt_agent_sessions", func(ctx context.Context) error {
			// Best effort: interrupted sessions are not resumed on rollback.
			m.interruptSessions(ctx, params.MainRepoPath)
			return nil
		}),
		saga.Step{
			Name: "stash_main_changes",
			Execute: func(ctx context.Context) (interface{}, error) {
				clean, err := m.git.IsClean(ctx, params.MainRepoPath)
				if err != nil {
					return "", err
				}
				if clean {
					return "", nil
				}

				message := fmt.Sprintf("twig-focus %s", time.Now().Format(time.RFC3339))
				if _, err := m.git.Stash(ctx, params.MainRepoPath,
					"push", "--include-untracked", "-m", message); err != nil {
					return "", err
				}
				sha, err := m.git.RevParse(ctx, params.MainRepoPath, "stash@{0}")
				if err != nil {
					return "", err
				}
				session.MainStashRef = sha
				return sha, nil
			},
			Rollback: func(ctx context.Context, captured interface{}) error {
				sha := captured.(string)
				if sha == "" {
					return nil
				}
				return m.popStashBySHA(ctx, params.MainRepoPath, sha)
			},
		},
		saga.Step{
			Name: "detach_worktree_branch",
			Execute: func(ctx context.Context) (interface{}, error) {
				if err := m.git.Checkout(ctx, params.WorktreePath, "--detach"); err != nil {
					return nil, err
				}
				m.notifyBranchContext(ctx, params.WorktreePath, sessions.BranchContext{Branch: branch, Detached: true})
				return nil, nil
			},
			Rollback: func(ctx context.Context, _ interface{}) error {
				if err := m.git.Checkout(ctx, params.WorktreePath, branch); err != nil {
					return err
				}
				m.notifyBranchContext(ctx, params.WorktreePath, sessions.BranchContext{Branch: branch, Detached: false})
				return nil
			},
		},
		saga.Step{
			Name: "checkout_target_in_main",
			Execute: func(ctx context.Context) (interface{}, error) {
				return nil, m.git.Checkout(ctx, params.MainRepoPath, branch)
			},
			Rollback: func(ctx context.Context, _ interface{}) error {
				return m.git.Checkout(ctx, params.MainRepoPath, session.OriginalBranch)
			},
		},
		saga.Step{
			Name: "start_file_sync",
			Execute: func(ctx context.Context) (interface{}, error) {
				return nil, m.startSync(ctx, params.MainRepoPath, params.WorktreePath)
			},
			Rollback: func(ctx context.Context, _ interface{}) error {
				_, err := m.syncer.StopSync(ctx, params.MainRepoPath)
				return err
			},
		},
		saga.Step{
			Name: "record_focus_session",
			Execute: func(_ context.Context) (interface{}, error) {
				return nil, m.stateManager.SaveFocusSession(session)
			},
			Rollback: func(_ context.Context, _ interface{}) error {
				return m.stateManager.DeleteFocusSession(params.MainRepoPath)
			},
		},
		saga.Step{
			Name: "start_main_repo_watch",
			Execute: func(_ context.Context) (interface{}, error) {
				return nil, m.watcher.Watch(params.MainRepoPath)
			},
			Rollback: func(_ context.Context, _ interface{}) error {
				return m.watcher.Unwatch(params.MainRepoPath)
			},
		},
	)

	return saga.Run(ctx, m.logger, "focus_enable", steps, func() EnableOutput {
		return EnableOutput{Session: session, WasSwap: wasSwap}
	})
}

// enableFailure reports a precondition failure before any step ran.
func enableFailure(step string, err error) saga.Result[EnableOutput] {
	return saga.Result[EnableOutput]{
		Success:    false,
		Error:      err.Error(),
		FailedStep: step,
	}
}

// interruptSessions cancels running agent sessions bound to a path,
// best-effort.
func (m *realManager) interruptSessions(ctx context.Context, path string) {
	list, err := m.sessions.ListSessions(ctx, path)
	if err != nil {
		m.logger.Warn("failed to list agent sessions", "path", path, "error", err)
		return
	}
	for _, session := range list {
		if !session.Running {
			continue
		}
		if err := m.sessions.CancelSession(ctx, session.ID); err != nil {
			m.logger.Warn("failed to cancel agent session", "session", session.ID, "error", err)
		}
	}
}

// notifyBranchContext tells every session bound to a path about a branch
// context change, best-effort.
func (m *realManager) notifyBranchContext(ctx context.Context, path string, branchContext sessions.BranchContext) {
	list, err := m.sessions.ListSessions(ctx, path)
	if err != nil {
		m.logger.Warn("failed to list agent sessions", "path", path, "error", err)
		return
	}
	for _, session := range list {
		if err := m.sessions.NotifyBranchContext(ctx, session.ID, branchContext); err != nil {
			m.logger.Warn("failed to notify agent session", "session", session.ID, "error", err)
		}
	}
}

// startSync starts background sync, converting an unsuccessful RPC response
// into an error.
func (m *realManager) startSync(ctx context.Context, mainRepoPath, worktreePath string) error {
	response, err := m.syncer.StartSync(ctx, mainRepoPath, worktreePath)
	if err != nil {
		return err
	}
	if !response.Success {
		return fmt.Errorf("%w: %s", ErrSyncRejected, response.Error)
	}
	return nil
}
