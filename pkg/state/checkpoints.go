package state

import (
	"fmt"
	"sort"
)

// AddCheckpoint records checkpoint metadata for a repository.
func (s *realManager) AddCheckpoint(repoPath string, checkpoint Checkpoint) error {
	state, err := s.loadState()
	if err != nil {
		return fmt.Errorf("failed to load state: %w", err)
	}

	state.Checkpoints[repoPath] = append(state.Checkpoints[repoPath], checkpoint)
	return s.saveState(state)
}

// GetCheckpoint retrieves checkpoint metadata by id.
func (s *realManager) GetCheckpoint(repoPath, checkpointID string) (*Checkpoint, error) {
	state, err := s.loadState()
	if err != nil {
		return nil, fmt.Errorf("failed to load state: %w", err)
	}

	for _, checkpoint := range state.Checkpoints[repoPath] {
		if checkpoint.CheckpointID == checkpointID {
			return &checkpoint, nil
		}
	}

	return nil, fmt.Errorf("%w: %s", ErrCheckpointNotFound, checkpointID)
}

// ListCheckpoints lists a repository's checkpoints sorted by capture time,
// newest first.
func (s *realManager) ListCheckpoints(repoPath string) ([]Checkpoint, error) {
	state, err := s.loadState()
	if err != nil {
		return nil, fmt.Errorf("failed to load state: %w", err)
	}

	checkpoints := append([]Checkpoint(nil), state.Checkpoints[repoPath]...)
	sort.Slice(checkpoints, func(i, j int) bool {
		return checkpoints[i].Timestamp.After(checkpoints[j].Timestamp)
	})
	return checkpoints, nil
}

// RemoveCheckpoint removes checkpoint metadata by id. It fails loudly when
// the checkpoint does not exist.
func (s *realManager) RemoveCheckpoint(repoPath, checkpointID string) error {
	state, err := s.loadState()
	if err != nil {
		return fmt.Errorf("failed to load state: %w", err)
	}

	found := false
	var remaining []Checkpoint
	for _, checkpoint := range state.Checkpoints[repoPath] {
		if checkpoint.CheckpointID == checkpointID {
			found = true
			continue
		}
		remaining = append(remaining, checkpoint)
	}

	if !found {
		return fmt.Errorf("%w: %s", ErrCheckpointNotFound, checkpointID)
	}

	if len(remaining) == 0 {
		delete(state.Checkpoints, repoPath)
	} else {
		state.Checkpoints[repoPath] = remaining
	}
	return s.saveState(state)
}
