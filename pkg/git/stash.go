package git

import (
	"context"
	"strings"
)

// Stash executes `git stash` with the given arguments.
func (g *realGit) Stash(ctx context.Context, repoPath string, args ...string) (string, error) {
	return g.runTrimmed(ctx, repoPath, nil, append([]string{"stash"}, args...)...)
}

// StashList returns the stash list, one entry per line.
func (g *realGit) StashList(ctx context.Context, repoPath string) ([]string, error) {
	output, err := g.run(ctx, repoPath, nil, "stash", "list")
	if err != nil {
		return nil, err
	}

	var entries []string
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			entries = append(entries, line)
		}
	}
	return entries, nil
}
