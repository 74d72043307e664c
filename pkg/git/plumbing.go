package git

import (
	"context"
	"strings"
)

// RevParse executes `git rev-parse` with the given arguments.
func (g *realGit) RevParse(ctx context.Context, repoPath string, args ...string) (string, error) {
	return g.runTrimmed(ctx, repoPath, nil, append([]string{"rev-parse"}, args...)...)
}

// GitDir returns the absolute path of the repository's git directory.
func (g *realGit) GitDir(ctx context.Context, repoPath string) (string, error) {
	dir, err := g.RevParse(ctx, repoPath, "--absolute-git-dir")
	if err != nil {
		return "", err
	}
	return dir, nil
}

// LsFiles executes `git ls-files` and returns one path per line.
func (g *realGit) LsFiles(ctx context.Context, repoPath string, args ...string) ([]string, error) {
	output, err := g.run(ctx, repoPath, nil, append([]string{"ls-files"}, args...)...)
	if err != nil {
		return nil, err
	}

	var paths []string
	for _, line := range strings.Split(output, "\n") {
		if line != "" {
			paths = append(paths, line)
		}
	}
	return paths, nil
}

// CatFileBlob returns the raw content of a blob object.
func (g *realGit) CatFileBlob(ctx context.Context, repoPath, oid string) ([]byte, error) {
	return g.runBytes(ctx, repoPath, nil, "cat-file", "blob", oid)
}

// Raw executes an arbitrary git command and returns its trimmed output.
func (g *realGit) Raw(ctx context.Context, repoPath string, args ...string) (string, error) {
	return g.runTrimmed(ctx, repoPath, nil, args...)
}

// RawEnv executes an arbitrary git command with extra environment variables.
func (g *realGit) RawEnv(ctx context.Context, repoPath string, env []string, args ...string) (string, error) {
	return g.runTrimmed(ctx, repoPath, env, args...)
}
