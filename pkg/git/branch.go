package git

import (
	"context"
)

// BranchExists checks if a local branch exists.
func (g *realGit) BranchExists(ctx context.Context, repoPath, branch string) (bool, error) {
	_, err := g.run(ctx, repoPath, nil, "show-ref", "--verify", "--quiet", "refs/heads/"+branch)
	if err != nil {
		// show-ref exits non-zero when the reference does not exist
		return false, nil
	}
	return true, nil
}

// DeleteBranch deletes a local branch.
func (g *realGit) DeleteBranch(ctx context.Context, repoPath, branch string, force bool) error {
	flag := "-d"
	if force {
		flag = "-D"
	}
	_, err := g.run(ctx, repoPath, nil, "branch", flag, branch)
	return err
}

// SymbolicRef resolves a symbolic reference (e.g. refs/remotes/origin/HEAD).
func (g *realGit) SymbolicRef(ctx context.Context, repoPath, name string) (string, error) {
	return g.runTrimmed(ctx, repoPath, nil, "symbolic-ref", name)
}
