package worktree

import (
	"context"
	"fmt"
	"math/rand/v2"
	"path/filepath"
	"time"
)

// maxNameAttempts bounds the collision-avoidance retries before falling back
// to a timestamp-suffixed name.
const maxNameAttempts = 20

var adjectives = []string{
	"amber", "bold", "brisk", "calm", "clever", "crisp", "daring", "eager",
	"fleet", "gentle", "keen", "lively", "lucky", "mellow", "nimble", "quiet",
	"rapid", "sleek", "steady", "sunny", "swift", "tidy", "vivid", "wise",
}

var colors = []string{
	"azure", "coral", "crimson", "emerald", "golden", "indigo", "ivory",
	"jade", "magenta", "maroon", "olive", "russet", "sable", "scarlet",
	"silver", "teal",
}

var animals = []string{
	"badger", "bison", "crane", "falcon", "ferret", "finch", "heron", "ibex",
	"lemur", "lynx", "marten", "marmot", "otter", "owl", "panther", "puffin",
	"raven", "salmon", "stoat", "swallow", "tapir", "viper", "vole", "wren",
}

// randomName draws a three-word adjective-color-animal name.
func randomName() string {
	return fmt.Sprintf("%s-%s-%s",
		adjectives[rand.IntN(len(adjectives))],
		colors[rand.IntN(len(colors))],
		animals[rand.IntN(len(animals))])
}

// GenerateUniqueName returns a three-word worktree name that collides with no
// existing worktree or twig branch.
func (m *realManager) GenerateUniqueName(ctx context.Context) (string, error) {
	for attempt := 0; attempt < maxNameAttempts; attempt++ {
		name := randomName()

		taken, err := m.nameInUse(ctx, name)
		if err != nil {
			return "", err
		}
		if !taken {
			return name, nil
		}
		m.logger.Debug("worktree name collision, retrying", "name", name, "attempt", attempt+1)
	}

	// Word lists exhausted; a timestamp suffix cannot collide.
	name := fmt.Sprintf("%s-%d", randomName(), time.Now().Unix())
	m.logger.Warn("worktree name attempts exhausted, using timestamp fallback", "name", name)
	return name, nil
}

// nameInUse checks the candidate against both the worktree directory and the
// twig branch namespace.
func (m *realManager) nameInUse(ctx context.Context, name string) (bool, error) {
	exists, err := m.fs.Exists(filepath.Join(m.worktreesDir, name))
	if err != nil {
		return false, fmt.Errorf("failed to check worktree directory: %w", err)
	}
	if exists {
		return true, nil
	}

	branchExists, err := m.git.BranchExists(ctx, m.repoPath, BranchPrefix+name)
	if err != nil {
		return false, fmt.Errorf("failed to check branch existence: %w", err)
	}
	return branchExists, nil
}
