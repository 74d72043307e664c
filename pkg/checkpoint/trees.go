package checkpoint

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Tree entry modes of interest.
const (
	modeExecutable = "100755"
	modeSymlink    = "120000"
	modeGitlink    = "160000"
)

// treeEntry is one blob-level line of `git ls-tree -r`.
type treeEntry struct {
	Mode string
	Type string
	OID  string
	Path string
}

// snapshot is the three-tree representation of a repository's mutable state.
type snapshot struct {
	IndexTree     string
	WorktreeTree  string
	UntrackedTree string
}

// checkBusy refuses to proceed while a rebase, merge, cherry-pick or revert
// is in progress, naming the blocking operation.
func (m *realManager) checkBusy(ctx context.Context, repoPath string) error {
	busy, err := m.git.BusyState(ctx, repoPath)
	if err != nil {
		return err
	}
	if busy.Busy {
		return fmt.Errorf("%w: %s in progress", ErrGitBusy, busy.Operation)
	}
	return nil
}

// withTempIndex runs fn with a GIT_INDEX_FILE environment pointing at a fresh
// throwaway index inside the git directory, removing it afterwards. The
// user's real index is never touched.
func (m *realManager) withTempIndex(ctx context.Context, repoPath string, fn func(env []string) error) error {
	gitDir, err := m.git.GitDir(ctx, repoPath)
	if err != nil {
		return err
	}

	indexPath := filepath.Join(gitDir, "twig-index-"+uuid.NewString())
	defer func() {
		_ = m.fs.Remove(indexPath)
	}()

	return fn([]string{"GIT_INDEX_FILE=" + indexPath})
}

// captureSnapshot records the three trees describing the repository's current
// mutable state. Only object-store writes happen; nothing user-visible moves.
func (m *realManager) captureSnapshot(ctx context.Context, repoPath string) (snapshot, error) {
	var snap snapshot

	indexTree, err := m.git.Raw(ctx, repoPath, "write-tree")
	if err != nil {
		return snap, fmt.Errorf("failed to write index tree: %w", err)
	}
	snap.IndexTree = indexTree

	snap.WorktreeTree, err = m.captureWorktreeTree(ctx, repoPath, indexTree)
	if err != nil {
		return snap, err
	}

	snap.UntrackedTree, err = m.captureUntrackedTree(ctx, repoPath)
	if err != nil {
		return snap, err
	}

	return snap, nil
}

// captureWorktreeTree records the tracked working-tree content as a tree,
// by staging into a throwaway index seeded from the captured index tree.
func (m *realManager) captureWorktreeTree(ctx context.Context, repoPath, indexTree string) (string, error) {
	var tree string
	err := m.withTempIndex(ctx, repoPath, func(env []string) error {
		if _, err := m.git.RawEnv(ctx, repoPath, env, "read-tree", indexTree); err != nil {
			return fmt.Errorf("failed to seed temporary index: %w", err)
		}
		// -u limits staging to tracked files; untracked content is captured
		// separately as its own tree.
		if _, err := m.git.RawEnv(ctx, repoPath, env, "add", "-u"); err != nil {
			return fmt.Errorf("failed to stage working tree: %w", err)
		}
		out, err := m.git.RawEnv(ctx, repoPath, env, "write-tree")
		if err != nil {
			return fmt.Errorf("failed to write worktree tree: %w", err)
		}
		tree = out
		return nil
	})
	return tree, err
}

// captureUntrackedTree records untracked, non-ignored files as
// content-addressed blobs assembled into a tree.
func (m *realManager) captureUntrackedTree(ctx context.Context, repoPath string) (string, error) {
	paths, err := m.git.LsFiles(ctx, repoPath, "--others", "--exclude-standard")
	if err != nil {
		return "", fmt.Errorf("failed to list untracked files: %w", err)
	}

	var tree string
	err = m.withTempIndex(ctx, repoPath, func(env []string) error {
		for _, path := range paths {
			oid, err := m.git.Raw(ctx, repoPath, "hash-object", "-w", "--", path)
			if err != nil {
				return fmt.Errorf("failed to hash untracked file %s: %w", path, err)
			}

			mode := "100644"
			if info, err := m.fs.Stat(filepath.Join(repoPath, path)); err == nil {
				if info.Mode()&os.ModeSymlink != 0 {
					mode = modeSymlink
				} else if info.Mode().Perm()&0111 != 0 {
					mode = modeExecutable
				}
			}

			if _, err := m.git.RawEnv(ctx, repoPath, env, "update-index", "--add",
				"--cacheinfo", mode+","+oid+","+path); err != nil {
				return fmt.Errorf("failed to index untracked file %s: %w", path, err)
			}
		}

		out, err := m.git.RawEnv(ctx, repoPath, env, "write-tree")
		if err != nil {
			return fmt.Errorf("failed to write untracked tree: %w", err)
		}
		tree = out
		return nil
	})
	return tree, err
}

// treeEntries lists the blob-level entries of a tree.
func (m *realManager) treeEntries(ctx context.Context, repoPath, tree string) ([]treeEntry, error) {
	output, err := m.git.Raw(ctx, repoPath, "ls-tree", "-r", "--full-tree", tree)
	if err != nil {
		return nil, fmt.Errorf("failed to list tree %s: %w", tree, err)
	}

	var entries []treeEntry
	for _, line := range strings.Split(output, "\n") {
		if line == "" {
			continue
		}
		// Format: "<mode> <type> <oid>\t<path>"
		meta, path, ok := strings.Cut(line, "\t")
		if !ok {
			continue
		}
		fields := strings.Fields(meta)
		if len(fields) != 3 {
			continue
		}
		entries = append(entries, treeEntry{Mode: fields[0], Type: fields[1], OID: fields[2], Path: path})
	}
	return entries, nil
}

// checkoutTree writes a tree's content into the working directory through a
// throwaway index, overwriting tracked files to match.
func (m *realManager) checkoutTree(ctx context.Context, repoPath, tree string) error {
	return m.withTempIndex(ctx, repoPath, func(env []string) error {
		if _, err := m.git.RawEnv(ctx, repoPath, env, "read-tree", tree); err != nil {
			return fmt.Errorf("failed to read tree %s: %w", tree, err)
		}
		if _, err := m.git.RawEnv(ctx, repoPath, env, "checkout-index", "--all", "--force"); err != nil {
			return fmt.Errorf("failed to check out tree %s: %w", tree, err)
		}
		return nil
	})
}

// materializeTree writes a tree's blobs directly to the filesystem,
// byte-for-byte. Gitlinks (submodule pointers) and symlinks are left to git.
func (m *realManager) materializeTree(ctx context.Context, repoPath, tree string) error {
	entries, err := m.treeEntries(ctx, repoPath, tree)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		if entry.Mode == modeGitlink || entry.Mode == modeSymlink {
			continue
		}

		content, err := m.git.CatFileBlob(ctx, repoPath, entry.OID)
		if err != nil {
			return fmt.Errorf("failed to read blob for %s: %w", entry.Path, err)
		}

		perm := os.FileMode(0644)
		if entry.Mode == modeExecutable {
			perm = 0755
		}
		if err := m.fs.WriteFile(filepath.Join(repoPath, entry.Path), content, perm); err != nil {
			return fmt.Errorf("failed to write %s: %w", entry.Path, err)
		}
	}
	return nil
}

// applyWorkingState makes the working directory match a snapshot: tracked
// files from the worktree tree, untracked files from the untracked tree, and
// nothing else. Safe to invoke repeatedly.
func (m *realManager) applyWorkingState(ctx context.Context, repoPath string, snap snapshot) error {
	if err := m.checkoutTree(ctx, repoPath, snap.WorktreeTree); err != nil {
		return err
	}
	if err := m.materializeTree(ctx, repoPath, snap.UntrackedTree); err != nil {
		return err
	}
	return m.removeExtraneous(ctx, repoPath, snap)
}

// removeExtraneous deletes working-directory files that are part of neither
// the snapshot's worktree tree nor its untracked tree. Submodule working
// state is left untouched.
func (m *realManager) removeExtraneous(ctx context.Context, repoPath string, snap snapshot) error {
	keep := make(map[string]struct{})
	for _, tree := range []string{snap.WorktreeTree, snap.UntrackedTree} {
		entries, err := m.treeEntries(ctx, repoPath, tree)
		if err != nil {
			return err
		}
		for _, entry := range entries {
			keep[entry.Path] = struct{}{}
		}
	}

	current, err := m.git.LsFiles(ctx, repoPath, "--cached", "--others", "--exclude-standard")
	if err != nil {
		return fmt.Errorf("failed to list current files: %w", err)
	}

	for _, path := range current {
		if _, ok := keep[path]; ok {
			continue
		}
		if err := m.fs.Remove(filepath.Join(repoPath, path)); err != nil && !m.fs.IsNotExist(err) {
			return fmt.Errorf("failed to remove %s: %w", path, err)
		}
	}
	return nil
}

// combineTrees overlays untracked blobs onto a worktree tree, producing one
// tree describing the complete visible file set. Used for diffing.
func (m *realManager) combineTrees(ctx context.Context, repoPath, worktreeTree, untrackedTree string) (string, error) {
	untracked, err := m.treeEntries(ctx, repoPath, untrackedTree)
	if err != nil {
		return "", err
	}

	var tree string
	err = m.withTempIndex(ctx, repoPath, func(env []string) error {
		if _, err := m.git.RawEnv(ctx, repoPath, env, "read-tree", worktreeTree); err != nil {
			return fmt.Errorf("failed to read worktree tree: %w", err)
		}
		for _, entry := range untracked {
			if _, err := m.git.RawEnv(ctx, repoPath, env, "update-index", "--add",
				"--cacheinfo", entry.Mode+","+entry.OID+","+entry.Path); err != nil {
				return fmt.Errorf("failed to overlay %s: %w", entry.Path, err)
			}
		}
		out, err := m.git.RawEnv(ctx, repoPath, env, "write-tree")
		if err != nil {
			return fmt.Errorf("failed to write combined tree: %w", err)
		}
		tree = out
		return nil
	})
	return tree, err
}
