package focus

import (
	"context"
	"fmt"
	"strings"

	"github.com/twigtool/twig/pkg/saga"
	"github.com/twigtool/twig/pkg/sessions"
)

// Disable mirrors Enable in reverse: stop watching, stop sync, clean the main
// working tree, restore the original branch, reattach the worktree's branch,
// pop the recorded stash, and delete the session. A stash-pop conflict is
// surfaced as a warning rather than a failure, since the main repository is
// otherwise already correctly restored.
func (m *realManager) Disable(ctx context.Context, mainRepoPath string) saga.Result[DisableOutput] {
	session, err := m.stateManager.GetFocusSession(mainRepoPath)
	if err != nil {
		return saga.Result[DisableOutput]{
			Success:    false,
			Error:      fmt.Errorf("%w: %s", ErrNoSessionToDisable, mainRepoPath).Error(),
			FailedStep: "load_focus_session",
		}
	}

	var warning string

	steps := []saga.Step{
		{
			Name: "stop_main_repo_watch",
			Execute: func(_ context.Context) (interface{}, error) {
				return nil, m.watcher.Unwatch(mainRepoPath)
			},
			Rollback: func(_ context.Context, _ interface{}) error {
				return m.watcher.Watch(mainRepoPath)
			},
		},
		{
			Name: "stop_file_sync",
			Execute: func(ctx context.Context) (interface{}, error) {
				response, err := m.syncer.StopSync(ctx, mainRepoPath)
				if err != nil {
					return nil, err
				}
				if !response.Success {
					return nil, fmt.Errorf("%w: %s", ErrSyncRejected, response.Error)
				}
				return nil, nil
			},
			Rollback: func(ctx context.Context, _ interface{}) error {
				return m.startSync(ctx, mainRepoPath, session.WorktreePath)
			},
		},
		saga.ReadOnly("clean_main_worktree", func(ctx context.Context) error {
			// Changes made while focused live on the worktree's branch and
			// have been synced there; the main copy is residue.
			if err := m.git.Checkout(ctx, mainRepoPath, "--", "."); err != nil {
				return err
			}
			return m.git.Clean(ctx, mainRepoPath, "-fd")
		}),
		{
			Name: "checkout_original_branch",
			Execute: func(ctx context.Context) (interface{}, error) {
				return nil, m.git.Checkout(ctx, mainRepoPath, session.OriginalBranch)
			},
			Rollback: func(ctx context.Context, _ interface{}) error {
				return m.git.Checkout(ctx, mainRepoPath, session.Branch)
			},
		},
		{
			Name: "reattach_worktree_branch",
			Execute: func(ctx context.Context) (interface{}, error) {
				if err := m.git.Checkout(ctx, session.WorktreePath, session.Branch); err != nil {
					return nil, err
				}
				m.notifyBranchContext(ctx, session.WorktreePath,
					sessions.BranchContext{Branch: session.Branch, Detached: false})
				return nil, nil
			},
			Rollback: func(ctx context.Context, _ interface{}) error {
				if err := m.git.Checkout(ctx, session.WorktreePath, "--detach"); err != nil {
					return err
				}
				m.notifyBranchContext(ctx, session.WorktreePath,
					sessions.BranchContext{Branch: session.Branch, Detached: true})
				return nil
			},
		},
		saga.ReadOnly("pop_main_stash", func(ctx context.Context) error {
			if session.MainStashRef == "" {
				return nil
			}
			if err := m.popStashBySHA(ctx, mainRepoPath, session.MainStashRef); err != nil {
				// The main repo is already on its original branch; a conflicted
				// pop is recoverable by hand and must not fail the disable.
				warning = fmt.Sprintf("stash pop failed: %v", err)
				m.logger.Warn("stash pop failed during focus disable",
					"repo", mainRepoPath, "stash", session.MainStashRef, "error", err)
			}
			return nil
		}),
		{
			Name: "delete_focus_session",
			Execute: func(_ context.Context) (interface{}, error) {
				return nil, m.stateManager.DeleteFocusSession(mainRepoPath)
			},
			Rollback: func(_ context.Context, _ interface{}) error {
				return m.stateManager.SaveFocusSession(*session)
			},
		},
	}

	return saga.Run(ctx, m.logger, "focus_disable", steps, func() DisableOutput {
		return DisableOutput{Warning: warning}
	})
}

// popStashBySHA locates the stash entry whose commit matches sha and pops it.
func (m *realManager) popStashBySHA(ctx context.Context, repoPath, sha string) error {
	entries, err := m.git.StashList(ctx, repoPath)
	if err != nil {
		return err
	}

	for i := range entries {
		ref := fmt.Sprintf("stash@{%d}", i)
		entrySHA, err := m.git.RevParse(ctx, repoPath, ref)
		if err != nil {
			return err
		}
		if strings.TrimSpace(entrySHA) == sha {
			_, err := m.git.Stash(ctx, repoPath, "pop", ref)
			return err
		}
	}
	return fmt.Errorf("stash entry %s not found", sha)
}
