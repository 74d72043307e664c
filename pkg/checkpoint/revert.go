package checkpoint

import (
	"context"
	"fmt"

	"github.com/twigtool/twig/pkg/saga"
	"github.com/twigtool/twig/pkg/state"
)

// Revert restores the repository to a captured checkpoint. A backup snapshot
// of the pre-revert state is taken first so every mutation step can roll back
// by re-applying it; re-application is idempotent, which keeps nested
// compensation safe.
func (m *realManager) Revert(ctx context.Context, repoPath, checkpointID string) saga.Result[state.Checkpoint] {
	var checkpoint state.Checkpoint
	var backup snapshot

	steps := []saga.Step{
		saga.ReadOnly("check_git_busy", func(ctx context.Context) error {
			return m.checkBusy(ctx, repoPath)
		}),
		saga.ReadOnly("load_checkpoint", func(_ context.Context) error {
			loaded, err := m.stateManager.GetCheckpoint(repoPath, checkpointID)
			if err != nil {
				return err
			}
			checkpoint = *loaded
			return nil
		}),
		saga.ReadOnly("backup_current_state", func(ctx context.Context) error {
			snap, err := m.captureSnapshot(ctx, repoPath)
			if err != nil {
				return fmt.Errorf("failed to back up current state: %w", err)
			}
			backup = snap
			return nil
		}),
		{
			Name: "restore_index",
			Execute: func(ctx context.Context) (interface{}, error) {
				if _, err := m.git.Raw(ctx, repoPath, "read-tree", checkpoint.IndexTree); err != nil {
					return nil, fmt.Errorf("failed to restore index: %w", err)
				}
				return nil, nil
			},
			Rollback: func(ctx context.Context, _ interface{}) error {
				_, err := m.git.Raw(ctx, repoPath, "read-tree", backup.IndexTree)
				return err
			},
		},
		{
			Name: "restore_worktree_files",
			Execute: func(ctx context.Context) (interface{}, error) {
				return nil, m.checkoutTree(ctx, repoPath, checkpoint.WorktreeTree)
			},
			Rollback: func(ctx context.Context, _ interface{}) error {
				return m.applyWorkingState(ctx, repoPath, backup)
			},
		},
		{
			Name: "restore_untracked_files",
			Execute: func(ctx context.Context) (interface{}, error) {
				return nil, m.materializeTree(ctx, repoPath, checkpoint.UntrackedTree)
			},
			Rollback: func(ctx context.Context, _ interface{}) error {
				return m.applyWorkingState(ctx, repoPath, backup)
			},
		},
		{
			Name: "remove_extraneous_files",
			Execute: func(ctx context.Context) (interface{}, error) {
				return nil, m.removeExtraneous(ctx, repoPath, snapshot{
					IndexTree:     checkpoint.IndexTree,
					WorktreeTree:  checkpoint.WorktreeTree,
					UntrackedTree: checkpoint.UntrackedTree,
				})
			},
			Rollback: func(ctx context.Context, _ interface{}) error {
				return m.applyWorkingState(ctx, repoPath, backup)
			},
		},
	}

	result := saga.Run(ctx, m.logger, "checkpoint_revert", steps, func() state.Checkpoint {
		return checkpoint
	})
	if result.Success {
		m.logger.Info("checkpoint reverted", "repo", repoPath, "id", checkpointID)
	}
	return result
}
