//go:build unit

package worktree

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/twigtool/twig/pkg/git"
	"github.com/twigtool/twig/pkg/state"
)

func TestList_FiltersUnmanagedEntries(t *testing.T) {
	manager, mocks := newTestManager(t)

	mocks.git.EXPECT().WorktreeList(gomock.Any(), "/home/user/repo").Return([]git.WorktreeListEntry{
		{Path: "/home/user/repo", Branch: "main"},
		{Path: "/home/user/repo.git", Bare: true},
		{Path: "/home/user/elsewhere/scratch", Branch: "scratch"},
		{Path: "/home/user/.twig/worktrees/repo/calm-azure-otter", Branch: "twig/calm-azure-otter"},
	}, nil)
	mocks.state.EXPECT().GetWorktree("/home/user/.twig/worktrees/repo/calm-azure-otter").
		Return(nil, fmt.Errorf("%w", state.ErrWorktreeNotFound))

	infos, err := manager.List(context.Background())
	require.NoError(t, err)
	require.Len(t, infos, 1)
	assert.Equal(t, "calm-azure-otter", infos[0].WorktreeName)
	assert.Equal(t, state.OwnershipCreated, infos[0].BranchOwnership)
}

func TestList_PrefersTrackedMetadata(t *testing.T) {
	manager, mocks := newTestManager(t)
	tracked := state.WorktreeInfo{
		WorktreePath:    "/home/user/.twig/worktrees/repo/calm-azure-otter",
		WorktreeName:    "calm-azure-otter",
		BranchName:      "twig/calm-azure-otter",
		BaseBranch:      "main",
		BranchOwnership: state.OwnershipCreated,
	}

	mocks.git.EXPECT().WorktreeList(gomock.Any(), "/home/user/repo").Return([]git.WorktreeListEntry{
		{Path: tracked.WorktreePath, Branch: tracked.BranchName},
	}, nil)
	mocks.state.EXPECT().GetWorktree(tracked.WorktreePath).Return(&tracked, nil)

	infos, err := manager.List(context.Background())
	require.NoError(t, err)
	require.Len(t, infos, 1)
	assert.Equal(t, "main", infos[0].BaseBranch)
}

func TestList_InfersBorrowedOwnership(t *testing.T) {
	manager, mocks := newTestManager(t)
	path := "/home/user/.twig/worktrees/repo/feature-login"

	mocks.git.EXPECT().WorktreeList(gomock.Any(), "/home/user/repo").Return([]git.WorktreeListEntry{
		{Path: path, Branch: "feature/login"},
	}, nil)
	mocks.state.EXPECT().GetWorktree(path).Return(nil, fmt.Errorf("%w", state.ErrWorktreeNotFound))

	infos, err := manager.List(context.Background())
	require.NoError(t, err)
	require.Len(t, infos, 1)
	assert.Equal(t, state.OwnershipBorrowed, infos[0].BranchOwnership)
}

func TestCleanupOrphaned_PartialFailureDoesNotAbortSweep(t *testing.T) {
	manager, mocks := newTestManager(t)
	keep := "/home/user/.twig/worktrees/repo/keep-me"
	broken := "/home/user/.twig/worktrees/repo/broken"
	orphan := "/home/user/.twig/worktrees/repo/orphan"

	mocks.git.EXPECT().WorktreeList(gomock.Any(), "/home/user/repo").Return([]git.WorktreeListEntry{
		{Path: keep, Branch: "twig/keep-me"},
		{Path: broken, Branch: "twig/broken"},
		{Path: orphan, Branch: "twig/orphan"},
	}, nil)
	mocks.state.EXPECT().GetWorktree(gomock.Any()).
		Return(nil, fmt.Errorf("%w", state.ErrWorktreeNotFound)).Times(3)

	// broken: git remove fails and so does the manual fallback.
	mocks.fs.EXPECT().IsDir(broken+"/.git").Return(false, nil)
	mocks.git.EXPECT().WorktreeRemove(gomock.Any(), "/home/user/repo", broken, true).
		Return(errors.New("locked"))
	mocks.fs.EXPECT().RemoveAll(broken).Return(errors.New("permission denied"))

	// orphan: deleted cleanly.
	mocks.fs.EXPECT().IsDir(orphan+"/.git").Return(false, nil)
	mocks.git.EXPECT().WorktreeRemove(gomock.Any(), "/home/user/repo", orphan, true).Return(nil)
	mocks.state.EXPECT().RemoveWorktree(orphan).Return(nil)

	results, err := manager.CleanupOrphaned(context.Background(), []string{keep})
	require.NoError(t, err)
	require.Len(t, results, 2)

	byPath := map[string]CleanupResult{}
	for _, result := range results {
		byPath[result.WorktreePath] = result
	}
	assert.False(t, byPath[broken].Deleted)
	assert.Contains(t, byPath[broken].Error, "permission denied")
	assert.True(t, byPath[orphan].Deleted)
	assert.Empty(t, byPath[orphan].Error)
}

func TestEnsureLocal_AlreadyExists(t *testing.T) {
	manager, mocks := newTestManager(t)
	localPath := "/home/user/.twig/worktrees/repo/repo-local"

	mocks.git.EXPECT().WorktreeList(gomock.Any(), "/home/user/repo").Return([]git.WorktreeListEntry{
		{Path: localPath, Detached: true},
	}, nil)

	path, err := manager.EnsureLocal(context.Background())
	require.NoError(t, err)
	assert.Equal(t, localPath, path)
}

func TestEnsureLocal_CreatesDetachedWorktree(t *testing.T) {
	manager, mocks := newTestManager(t)
	localPath := "/home/user/.twig/worktrees/repo/repo-local"
	head := "abcdef1234567890abcdef1234567890abcdef12"

	mocks.git.EXPECT().WorktreeList(gomock.Any(), "/home/user/repo").Return(nil, nil)
	mocks.git.EXPECT().RevParse(gomock.Any(), "/home/user/repo", "HEAD").Return(head, nil)
	mocks.fs.EXPECT().MkdirAll(gomock.Any(), gomock.Any()).Return(nil)
	mocks.git.EXPECT().WorktreeAdd(gomock.Any(), git.WorktreeAddParams{
		RepoPath:     "/home/user/repo",
		WorktreePath: localPath,
		Detach:       true,
		CommitIsh:    head,
	}).Return(nil)

	path, err := manager.EnsureLocal(context.Background())
	require.NoError(t, err)
	assert.Equal(t, localPath, path)
}

func TestRemoveLocal_NoopWhenAbsent(t *testing.T) {
	manager, mocks := newTestManager(t)

	mocks.git.EXPECT().WorktreeList(gomock.Any(), "/home/user/repo").Return(nil, nil)

	require.NoError(t, manager.RemoveLocal(context.Background()))
}
