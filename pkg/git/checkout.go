package git

import (
	"context"
)

// Checkout executes `git checkout` with the given arguments.
func (g *realGit) Checkout(ctx context.Context, repoPath string, args ...string) error {
	_, err := g.run(ctx, repoPath, nil, append([]string{"checkout"}, args...)...)
	return err
}

// CurrentBranch returns the current branch name, or "HEAD" when detached.
func (g *realGit) CurrentBranch(ctx context.Context, repoPath string) (string, error) {
	return g.runTrimmed(ctx, repoPath, nil, "rev-parse", "--abbrev-ref", "HEAD")
}

// Add adds the given paths to the staging area.
func (g *realGit) Add(ctx context.Context, repoPath string, paths ...string) error {
	args := append([]string{"add", "--"}, paths...)
	_, err := g.run(ctx, repoPath, nil, args...)
	return err
}

// Rm executes `git rm` with the given arguments.
func (g *realGit) Rm(ctx context.Context, repoPath string, args ...string) error {
	_, err := g.run(ctx, repoPath, nil, append([]string{"rm"}, args...)...)
	return err
}

// Clean executes `git clean` with the given arguments.
func (g *realGit) Clean(ctx context.Context, repoPath string, args ...string) error {
	_, err := g.run(ctx, repoPath, nil, append([]string{"clean"}, args...)...)
	return err
}

// Commit creates a new commit with the specified message.
func (g *realGit) Commit(ctx context.Context, repoPath, message string) error {
	_, err := g.run(ctx, repoPath, nil, "commit", "-m", message)
	return err
}
