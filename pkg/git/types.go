package git

// WorktreeAddParams contains parameters for WorktreeAdd.
type WorktreeAddParams struct {
	RepoPath     string
	WorktreePath string
	// Branch is the branch to check out in the new worktree.
	Branch string
	// NewBranch, when non-empty, is created at Branch (or HEAD if Branch is empty).
	NewBranch string
	// Detach creates the worktree detached at CommitIsh.
	Detach    bool
	CommitIsh string
}

// WorktreeListEntry represents one entry of `git worktree list --porcelain`.
type WorktreeListEntry struct {
	Path     string
	Head     string
	Branch   string
	Detached bool
	Bare     bool
}

// Operation identifies an in-progress multi-step git operation.
type Operation string

// Operations detectable through git's own marker files.
const (
	OperationRebase     Operation = "rebase"
	OperationMerge      Operation = "merge"
	OperationCherryPick Operation = "cherry-pick"
	OperationRevert     Operation = "revert"
)

// BusyState reports whether a multi-step git operation is in progress.
type BusyState struct {
	Busy      bool
	Operation Operation
}
