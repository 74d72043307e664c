package git

import (
	"context"
	"strings"
)

// Status executes `git status` in the specified repository.
func (g *realGit) Status(ctx context.Context, repoPath string) (string, error) {
	return g.run(ctx, repoPath, nil, "status")
}

// StatusPorcelain executes `git status --porcelain`, optionally limited to paths.
func (g *realGit) StatusPorcelain(ctx context.Context, repoPath string, paths ...string) (string, error) {
	args := []string{"status", "--porcelain"}
	if len(paths) > 0 {
		args = append(args, "--")
		args = append(args, paths...)
	}
	return g.run(ctx, repoPath, nil, args...)
}

// IsClean reports whether the repository has no staged, unstaged or untracked changes.
func (g *realGit) IsClean(ctx context.Context, repoPath string) (bool, error) {
	output, err := g.StatusPorcelain(ctx, repoPath)
	if err != nil {
		return false, err
	}
	return strings.TrimSpace(output) == "", nil
}
