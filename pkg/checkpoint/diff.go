package checkpoint

import (
	"context"
	"fmt"

	godiff "github.com/sourcegraph/go-diff/diff"

	"github.com/twigtool/twig/pkg/saga"
)

// Diff computes a structured diff between two checkpoints, or between a
// checkpoint and the current repository state when params.To is empty.
// Ignored paths never enter a checkpoint, so they are excluded by construction.
func (m *realManager) Diff(ctx context.Context, repoPath string, params DiffParams) saga.Result[Diff] {
	var fromTree, toTree string
	var result Diff

	steps := []saga.Step{
		saga.ReadOnly("resolve_from_checkpoint", func(ctx context.Context) error {
			tree, err := m.combinedCheckpointTree(ctx, repoPath, params.From)
			if err != nil {
				return err
			}
			fromTree = tree
			return nil
		}),
		saga.ReadOnly("resolve_to_state", func(ctx context.Context) error {
			if params.To != "" {
				tree, err := m.combinedCheckpointTree(ctx, repoPath, params.To)
				if err != nil {
					return err
				}
				toTree = tree
				return nil
			}

			// Current state: build an ephemeral snapshot, no refs, no metadata.
			snap, err := m.captureSnapshot(ctx, repoPath)
			if err != nil {
				return err
			}
			tree, err := m.combineTrees(ctx, repoPath, snap.WorktreeTree, snap.UntrackedTree)
			if err != nil {
				return err
			}
			toTree = tree
			return nil
		}),
		saga.ReadOnly("compute_diff", func(ctx context.Context) error {
			raw, err := m.git.Raw(ctx, repoPath, "diff", fromTree, toTree)
			if err != nil {
				return fmt.Errorf("failed to diff trees: %w", err)
			}

			files, err := godiff.ParseMultiFileDiff([]byte(raw))
			if err != nil {
				return fmt.Errorf("failed to parse diff: %w", err)
			}
			result = Diff{Raw: raw, Files: files}
			return nil
		}),
	}

	return saga.Run(ctx, m.logger, "checkpoint_diff", steps, func() Diff {
		return result
	})
}

// combinedCheckpointTree loads a checkpoint and overlays its untracked tree
// onto its worktree tree.
func (m *realManager) combinedCheckpointTree(ctx context.Context, repoPath, checkpointID string) (string, error) {
	checkpoint, err := m.stateManager.GetCheckpoint(repoPath, checkpointID)
	if err != nil {
		return "", err
	}
	return m.combineTrees(ctx, repoPath, checkpoint.WorktreeTree, checkpoint.UntrackedTree)
}

// Delete removes a checkpoint and its pinning refs. Deleting an unknown id
// fails loudly rather than silently.
func (m *realManager) Delete(ctx context.Context, repoPath, checkpointID string) error {
	if _, err := m.stateManager.GetCheckpoint(repoPath, checkpointID); err != nil {
		return err
	}

	if err := m.deleteRefs(ctx, repoPath, checkpointID); err != nil {
		return err
	}
	if err := m.stateManager.RemoveCheckpoint(repoPath, checkpointID); err != nil {
		return err
	}

	m.logger.Info("checkpoint deleted", "repo", repoPath, "id", checkpointID)
	return nil
}
