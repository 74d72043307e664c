package focus

import (
	"context"
	"errors"
	"fmt"

	"github.com/twigtool/twig/pkg/saga"
	"github.com/twigtool/twig/pkg/state"
)

// Restore re-validates a persisted session at process startup. Corrupt or
// stale sessions (self-referential branch, missing worktree, detached main
// HEAD, manual branch switch) are self-healed by deletion rather than
// reported as failures, since re-running enable recovers cleanly. A branch
// that was merely renamed while the app was closed is detected by comparing
// commit SHAs and the session is updated in place.
func (m *realManager) Restore(ctx context.Context, mainRepoPath string) saga.Result[RestoreOutput] {
	var session *state.FocusSession
	resolved := false
	output := RestoreOutput{}

	// discard deletes the session and resolves the run without error.
	discard := func(reason string) error {
		if err := m.stateManager.DeleteFocusSession(mainRepoPath); err != nil {
			return err
		}
		m.logger.Warn("discarded focus session", "repo", mainRepoPath, "reason", reason)
		output = RestoreOutput{Restored: false, Reason: reason}
		resolved = true
		return nil
	}

	steps := []saga.Step{
		saga.ReadOnly("load_focus_session", func(_ context.Context) error {
			loaded, err := m.stateManager.GetFocusSession(mainRepoPath)
			if errors.Is(err, state.ErrFocusSessionNotFound) {
				output = RestoreOutput{Restored: false, Reason: "no persisted session"}
				resolved = true
				return nil
			}
			if err != nil {
				return err
			}
			session = loaded
			return nil
		}),
		saga.ReadOnly("validate_session_invariants", func(_ context.Context) error {
			if resolved {
				return nil
			}
			if session.OriginalBranch == session.Branch {
				return discard("session points to itself")
			}
			return nil
		}),
		saga.ReadOnly("validate_worktree_exists", func(_ context.Context) error {
			if resolved {
				return nil
			}
			exists, err := m.fs.Exists(session.WorktreePath)
			if err != nil {
				return err
			}
			if !exists {
				return discard("worktree no longer exists")
			}
			return nil
		}),
		saga.ReadOnly("validate_main_branch", func(ctx context.Context) error {
			if resolved {
				return nil
			}

			currentBranch, err := m.git.CurrentBranch(ctx, mainRepoPath)
			if err != nil {
				return err
			}
			if currentBranch == "HEAD" {
				return discard("main repository is in detached HEAD")
			}
			if currentBranch == session.Branch {
				return nil
			}

			// Branch name changed: a rename keeps the commit, a manual
			// checkout does not.
			currentSHA, err := m.git.RevParse(ctx, mainRepoPath, "HEAD")
			if err != nil {
				return err
			}
			if currentSHA != session.CommitSHA {
				return discard(fmt.Sprintf("main repository is on %s, not %s", currentBranch, session.Branch))
			}

			m.logger.Info("focused branch was renamed", "from", session.Branch, "to", currentBranch)
			session.Branch = currentBranch
			return m.stateManager.SaveFocusSession(*session)
		}),
		{
			Name: "restart_file_sync",
			Execute: func(ctx context.Context) (interface{}, error) {
				if resolved {
					return nil, nil
				}
				return nil, m.startSync(ctx, mainRepoPath, session.WorktreePath)
			},
			Rollback: func(ctx context.Context, _ interface{}) error {
				if resolved {
					return nil
				}
				_, err := m.syncer.StopSync(ctx, mainRepoPath)
				return err
			},
		},
		saga.ReadOnly("restart_main_repo_watch", func(_ context.Context) error {
			if resolved {
				return nil
			}
			if err := m.watcher.Watch(mainRepoPath); err != nil {
				return err
			}
			output = RestoreOutput{Restored: true}
			return nil
		}),
	}

	return saga.Run(ctx, m.logger, "focus_restore", steps, func() RestoreOutput {
		return output
	})
}
