package git

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// run executes a git command in repoPath and returns its stdout.
// Extra environment variables are appended to the current environment.
func (g *realGit) run(ctx context.Context, repoPath string, env []string, args ...string) (string, error) {
	output, err := g.runBytes(ctx, repoPath, env, args...)
	return string(output), err
}

// runBytes is run without the string conversion, for binary-safe output.
func (g *realGit) runBytes(ctx context.Context, repoPath string, env []string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = repoPath
	if len(env) > 0 {
		cmd.Env = append(os.Environ(), env...)
	}

	output, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		stderr := ""
		if errors.As(err, &exitErr) {
			stderr = strings.TrimSpace(string(exitErr.Stderr))
		}
		if strings.Contains(stderr, "not a git repository") {
			return nil, fmt.Errorf("%w: %s", ErrNotARepository, repoPath)
		}
		return nil, fmt.Errorf("git command failed: %w (command: git %s, output: %s)",
			err, strings.Join(args, " "), stderr)
	}

	return output, nil
}

// runTrimmed executes a git command and returns its stdout with surrounding
// whitespace removed.
func (g *realGit) runTrimmed(ctx context.Context, repoPath string, env []string, args ...string) (string, error) {
	output, err := g.run(ctx, repoPath, env, args...)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(output), nil
}
