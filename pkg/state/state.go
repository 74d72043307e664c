// Package state provides the twig bookkeeping file (state.yaml).
package state

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/twigtool/twig/pkg/fs"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=state.go -destination=mocks/state.gen.go -package=mocks

// BranchOwnership indicates whether a worktree owns its branch.
type BranchOwnership string

// Branch ownership values.
const (
	// OwnershipCreated marks worktrees that own a newly minted twig/ branch.
	OwnershipCreated BranchOwnership = "created"
	// OwnershipBorrowed marks worktrees attached to a pre-existing branch.
	OwnershipBorrowed BranchOwnership = "borrowed"
)

// WorktreeInfo represents a managed worktree entry in the state file.
type WorktreeInfo struct {
	WorktreePath    string          `yaml:"worktree_path"`
	WorktreeName    string          `yaml:"worktree_name"`
	BranchName      string          `yaml:"branch_name"`
	BaseBranch      string          `yaml:"base_branch,omitempty"`
	CreatedAt       time.Time       `yaml:"created_at"`
	BranchOwnership BranchOwnership `yaml:"branch_ownership"`
}

// FocusSession records an active focus, keyed by the main repository path.
// A session whose OriginalBranch equals Branch is corrupt and must be
// discarded by the caller.
type FocusSession struct {
	MainRepoPath   string `yaml:"main_repo_path"`
	WorktreePath   string `yaml:"worktree_path"`
	Branch         string `yaml:"branch"`
	OriginalBranch string `yaml:"original_branch"`
	// MainStashRef is the SHA of the stash commit created on enable, empty
	// when the main repository was clean.
	MainStashRef string `yaml:"main_stash_ref,omitempty"`
	CommitSHA    string `yaml:"commit_sha"`
}

// Checkpoint is the metadata of a captured repository snapshot. The actual
// content lives in the repository's object store as three trees pinned under
// refs/twig/checkpoints/<id>/.
type Checkpoint struct {
	CheckpointID  string    `yaml:"checkpoint_id"`
	Timestamp     time.Time `yaml:"timestamp"`
	IndexTree     string    `yaml:"index_tree"`
	WorktreeTree  string    `yaml:"worktree_tree"`
	UntrackedTree string    `yaml:"untracked_tree"`
}

// State represents the state.yaml file structure.
type State struct {
	Worktrees     []WorktreeInfo          `yaml:"worktrees"`
	FocusSessions map[string]FocusSession `yaml:"focus_sessions"`
	Checkpoints   map[string][]Checkpoint `yaml:"checkpoints"`
}

// Manager interface provides state file management functionality.
type Manager interface {
	// AddWorktree adds a worktree entry to the state file.
	AddWorktree(info WorktreeInfo) error
	// RemoveWorktree removes a worktree entry from the state file.
	RemoveWorktree(worktreePath string) error
	// GetWorktree retrieves a specific worktree entry.
	GetWorktree(worktreePath string) (*WorktreeInfo, error)
	// ListWorktrees lists all tracked worktrees.
	ListWorktrees() ([]WorktreeInfo, error)

	// SaveFocusSession stores or replaces the focus session for a main repository.
	SaveFocusSession(session FocusSession) error
	// GetFocusSession retrieves the focus session for a main repository.
	GetFocusSession(mainRepoPath string) (*FocusSession, error)
	// DeleteFocusSession removes the focus session for a main repository.
	DeleteFocusSession(mainRepoPath string) error

	// AddCheckpoint records checkpoint metadata for a repository.
	AddCheckpoint(repoPath string, checkpoint Checkpoint) error
	// GetCheckpoint retrieves checkpoint metadata by id.
	GetCheckpoint(repoPath, checkpointID string) (*Checkpoint, error)
	// ListCheckpoints lists a repository's checkpoints, newest first.
	ListCheckpoints(repoPath string) ([]Checkpoint, error)
	// RemoveCheckpoint removes checkpoint metadata by id.
	RemoveCheckpoint(repoPath, checkpointID string) error
}

type realManager struct {
	fs        fs.FS
	statePath string
}

// NewManager creates a new state Manager persisting to the given file path.
func NewManager(fs fs.FS, statePath string) Manager {
	return &realManager{
		fs:        fs,
		statePath: statePath,
	}
}

// loadState reads the state file, returning an empty state if it does not exist.
func (s *realManager) loadState() (*State, error) {
	exists, err := s.fs.Exists(s.statePath)
	if err != nil {
		return nil, fmt.Errorf("failed to check state file: %w", err)
	}

	state := &State{
		FocusSessions: make(map[string]FocusSession),
		Checkpoints:   make(map[string][]Checkpoint),
	}
	if !exists {
		return state, nil
	}

	data, err := s.fs.ReadFile(s.statePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read state file: %w", err)
	}

	if err := yaml.Unmarshal(data, state); err != nil {
		return nil, fmt.Errorf("failed to parse state file: %w", err)
	}

	if state.FocusSessions == nil {
		state.FocusSessions = make(map[string]FocusSession)
	}
	if state.Checkpoints == nil {
		state.Checkpoints = make(map[string][]Checkpoint)
	}
	return state, nil
}

// saveState writes the state file atomically.
func (s *realManager) saveState(state *State) error {
	data, err := yaml.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to marshal state: %w", err)
	}

	if err := s.fs.WriteFileAtomic(s.statePath, data, 0644); err != nil {
		return fmt.Errorf("failed to write state file: %w", err)
	}
	return nil
}
