package state

import "fmt"

// AddWorktree adds a worktree entry to the state file.
func (s *realManager) AddWorktree(info WorktreeInfo) error {
	state, err := s.loadState()
	if err != nil {
		return fmt.Errorf("failed to load state: %w", err)
	}

	for _, worktree := range state.Worktrees {
		if worktree.WorktreePath == info.WorktreePath {
			return fmt.Errorf("%w: %s", ErrWorktreeAlreadyTracked, info.WorktreePath)
		}
	}

	state.Worktrees = append(state.Worktrees, info)
	return s.saveState(state)
}

// RemoveWorktree removes a worktree entry from the state file.
func (s *realManager) RemoveWorktree(worktreePath string) error {
	state, err := s.loadState()
	if err != nil {
		return fmt.Errorf("failed to load state: %w", err)
	}

	found := false
	var remaining []WorktreeInfo
	for _, worktree := range state.Worktrees {
		if worktree.WorktreePath == worktreePath {
			found = true
			continue
		}
		remaining = append(remaining, worktree)
	}

	if !found {
		return fmt.Errorf("%w: %s", ErrWorktreeNotFound, worktreePath)
	}

	state.Worktrees = remaining
	return s.saveState(state)
}

// GetWorktree retrieves a specific worktree entry.
func (s *realManager) GetWorktree(worktreePath string) (*WorktreeInfo, error) {
	state, err := s.loadState()
	if err != nil {
		return nil, fmt.Errorf("failed to load state: %w", err)
	}

	for _, worktree := range state.Worktrees {
		if worktree.WorktreePath == worktreePath {
			return &worktree, nil
		}
	}

	return nil, fmt.Errorf("%w: %s", ErrWorktreeNotFound, worktreePath)
}

// ListWorktrees lists all tracked worktrees.
func (s *realManager) ListWorktrees() ([]WorktreeInfo, error) {
	state, err := s.loadState()
	if err != nil {
		return nil, fmt.Errorf("failed to load state: %w", err)
	}

	return state.Worktrees, nil
}
