package state

import "fmt"

// SaveFocusSession stores or replaces the focus session for a main repository.
func (s *realManager) SaveFocusSession(session FocusSession) error {
	state, err := s.loadState()
	if err != nil {
		return fmt.Errorf("failed to load state: %w", err)
	}

	state.FocusSessions[session.MainRepoPath] = session
	return s.saveState(state)
}

// GetFocusSession retrieves the focus session for a main repository.
func (s *realManager) GetFocusSession(mainRepoPath string) (*FocusSession, error) {
	state, err := s.loadState()
	if err != nil {
		return nil, fmt.Errorf("failed to load state: %w", err)
	}

	session, ok := state.FocusSessions[mainRepoPath]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrFocusSessionNotFound, mainRepoPath)
	}
	return &session, nil
}

// DeleteFocusSession removes the focus session for a main repository.
func (s *realManager) DeleteFocusSession(mainRepoPath string) error {
	state, err := s.loadState()
	if err != nil {
		return fmt.Errorf("failed to load state: %w", err)
	}

	if _, ok := state.FocusSessions[mainRepoPath]; !ok {
		return fmt.Errorf("%w: %s", ErrFocusSessionNotFound, mainRepoPath)
	}

	delete(state.FocusSessions, mainRepoPath)
	return s.saveState(state)
}
