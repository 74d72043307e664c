package checkpoint

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/twigtool/twig/pkg/saga"
	"github.com/twigtool/twig/pkg/state"
)

// Capture snapshots the repository's index, worktree and untracked files as
// three trees pinned under refs/twig/checkpoints/<id>/.
func (m *realManager) Capture(ctx context.Context, repoPath string) saga.Result[state.Checkpoint] {
	checkpoint := state.Checkpoint{
		CheckpointID: uuid.NewString(),
		Timestamp:    time.Now(),
	}

	steps := []saga.Step{
		saga.ReadOnly("check_git_busy", func(ctx context.Context) error {
			return m.checkBusy(ctx, repoPath)
		}),
		saga.ReadOnly("capture_index_tree", func(ctx context.Context) error {
			tree, err := m.git.Raw(ctx, repoPath, "write-tree")
			if err != nil {
				return fmt.Errorf("failed to write index tree: %w", err)
			}
			checkpoint.IndexTree = tree
			return nil
		}),
		saga.ReadOnly("capture_worktree_tree", func(ctx context.Context) error {
			tree, err := m.captureWorktreeTree(ctx, repoPath, checkpoint.IndexTree)
			if err != nil {
				return err
			}
			checkpoint.WorktreeTree = tree
			return nil
		}),
		saga.ReadOnly("capture_untracked_tree", func(ctx context.Context) error {
			tree, err := m.captureUntrackedTree(ctx, repoPath)
			if err != nil {
				return err
			}
			checkpoint.UntrackedTree = tree
			return nil
		}),
		{
			Name: "pin_checkpoint_refs",
			Execute: func(ctx context.Context) (interface{}, error) {
				return nil, m.pinRefs(ctx, repoPath, checkpoint)
			},
			Rollback: func(ctx context.Context, _ interface{}) error {
				return m.deleteRefs(ctx, repoPath, checkpoint.CheckpointID)
			},
		},
		{
			Name: "record_checkpoint",
			Execute: func(_ context.Context) (interface{}, error) {
				return nil, m.stateManager.AddCheckpoint(repoPath, checkpoint)
			},
			Rollback: func(_ context.Context, _ interface{}) error {
				return m.stateManager.RemoveCheckpoint(repoPath, checkpoint.CheckpointID)
			},
		},
	}

	result := saga.Run(ctx, m.logger, "checkpoint_capture", steps, func() state.Checkpoint {
		return checkpoint
	})
	if result.Success {
		m.logger.Info("checkpoint captured", "repo", repoPath, "id", checkpoint.CheckpointID)
	}
	return result
}

// pinRefs anchors the checkpoint's trees so garbage collection cannot reap them.
func (m *realManager) pinRefs(ctx context.Context, repoPath string, checkpoint state.Checkpoint) error {
	refs := map[string]string{
		refPrefix + checkpoint.CheckpointID + "/index":     checkpoint.IndexTree,
		refPrefix + checkpoint.CheckpointID + "/worktree":  checkpoint.WorktreeTree,
		refPrefix + checkpoint.CheckpointID + "/untracked": checkpoint.UntrackedTree,
	}
	for ref, tree := range refs {
		if _, err := m.git.Raw(ctx, repoPath, "update-ref", ref, tree); err != nil {
			return fmt.Errorf("failed to pin %s: %w", ref, err)
		}
	}
	return nil
}

// deleteRefs removes a checkpoint's pinning refs.
func (m *realManager) deleteRefs(ctx context.Context, repoPath, checkpointID string) error {
	for _, name := range []string{"index", "worktree", "untracked"} {
		ref := refPrefix + checkpointID + "/" + name
		if _, err := m.git.Raw(ctx, repoPath, "update-ref", "-d", ref); err != nil {
			return fmt.Errorf("failed to delete %s: %w", ref, err)
		}
	}
	return nil
}
