//go:build unit

package checkpoint

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	fsmocks "github.com/twigtool/twig/pkg/fs/mocks"
	"github.com/twigtool/twig/pkg/git"
	gitmocks "github.com/twigtool/twig/pkg/git/mocks"
	"github.com/twigtool/twig/pkg/state"
	statemocks "github.com/twigtool/twig/pkg/state/mocks"
)

const testRepo = "/home/user/repo"

type managerMocks struct {
	fs    *fsmocks.MockFS
	git   *gitmocks.MockGit
	state *statemocks.MockManager
}

func newTestManager(t *testing.T) (*realManager, managerMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	mocks := managerMocks{
		fs:    fsmocks.NewMockFS(ctrl),
		git:   gitmocks.NewMockGit(ctrl),
		state: statemocks.NewMockManager(ctrl),
	}

	manager := NewManager(NewManagerParams{
		FS:           mocks.fs,
		Git:          mocks.git,
		StateManager: mocks.state,
	})
	return manager.(*realManager), mocks
}

// expectTempIndex covers the throwaway-index scaffolding shared by every
// tree-capture helper.
func expectTempIndex(mocks managerMocks) {
	mocks.git.EXPECT().GitDir(gomock.Any(), testRepo).Return("/home/user/repo/.git", nil).AnyTimes()
	mocks.fs.EXPECT().Remove(gomock.Cond(func(path string) bool {
		return strings.HasPrefix(path, "/home/user/repo/.git/twig-index-")
	})).Return(nil).AnyTimes()
}

func TestCapture_Success(t *testing.T) {
	manager, mocks := newTestManager(t)
	expectTempIndex(mocks)

	mocks.git.EXPECT().BusyState(gomock.Any(), testRepo).Return(git.BusyState{}, nil)
	mocks.git.EXPECT().Raw(gomock.Any(), testRepo, "write-tree").Return("aaaa", nil)

	// Tracked working-tree content staged into a throwaway index.
	mocks.git.EXPECT().RawEnv(gomock.Any(), testRepo, gomock.Any(), "read-tree", "aaaa").Return("", nil)
	mocks.git.EXPECT().RawEnv(gomock.Any(), testRepo, gomock.Any(), "add", "-u").Return("", nil)
	gomock.InOrder(
		mocks.git.EXPECT().RawEnv(gomock.Any(), testRepo, gomock.Any(), "write-tree").Return("bbbb", nil),
		mocks.git.EXPECT().RawEnv(gomock.Any(), testRepo, gomock.Any(), "write-tree").Return("cccc", nil),
	)

	// One untracked file, hashed and indexed by cacheinfo.
	mocks.git.EXPECT().LsFiles(gomock.Any(), testRepo, "--others", "--exclude-standard").
		Return([]string{"notes.txt"}, nil)
	mocks.git.EXPECT().Raw(gomock.Any(), testRepo, "hash-object", "-w", "--", "notes.txt").
		Return("oid123", nil)
	mocks.fs.EXPECT().Stat("/home/user/repo/notes.txt").Return(nil, os.ErrNotExist)
	mocks.git.EXPECT().RawEnv(gomock.Any(), testRepo, gomock.Any(),
		"update-index", "--add", "--cacheinfo", "100644,oid123,notes.txt").Return("", nil)

	mocks.git.EXPECT().Raw(gomock.Any(), testRepo, "update-ref", gomock.Any(), gomock.Any()).
		Return("", nil).Times(3)
	mocks.state.EXPECT().AddCheckpoint(testRepo, gomock.Any()).DoAndReturn(
		func(_ string, checkpoint state.Checkpoint) error {
			assert.Equal(t, "aaaa", checkpoint.IndexTree)
			assert.Equal(t, "bbbb", checkpoint.WorktreeTree)
			assert.Equal(t, "cccc", checkpoint.UntrackedTree)
			return nil
		})

	result := manager.Capture(context.Background(), testRepo)
	require.True(t, result.Success, result.Error)
	assert.NotEmpty(t, result.Data.CheckpointID)
	assert.Equal(t, "aaaa", result.Data.IndexTree)
	assert.Equal(t, "bbbb", result.Data.WorktreeTree)
	assert.Equal(t, "cccc", result.Data.UntrackedTree)
}

func TestCapture_RefusedWhileRebaseInProgress(t *testing.T) {
	manager, mocks := newTestManager(t)

	mocks.git.EXPECT().BusyState(gomock.Any(), testRepo).
		Return(git.BusyState{Busy: true, Operation: git.OperationRebase}, nil)

	result := manager.Capture(context.Background(), testRepo)
	assert.False(t, result.Success)
	assert.Equal(t, "check_git_busy", result.FailedStep)
	assert.Contains(t, result.Error, "rebase in progress")
}

func TestCapture_RecordFailureUnpinsRefs(t *testing.T) {
	manager, mocks := newTestManager(t)
	expectTempIndex(mocks)

	mocks.git.EXPECT().BusyState(gomock.Any(), testRepo).Return(git.BusyState{}, nil)
	mocks.git.EXPECT().Raw(gomock.Any(), testRepo, "write-tree").Return("aaaa", nil)
	mocks.git.EXPECT().RawEnv(gomock.Any(), testRepo, gomock.Any(), "read-tree", "aaaa").Return("", nil)
	mocks.git.EXPECT().RawEnv(gomock.Any(), testRepo, gomock.Any(), "add", "-u").Return("", nil)
	mocks.git.EXPECT().RawEnv(gomock.Any(), testRepo, gomock.Any(), "write-tree").Return("bbbb", nil).Times(2)
	mocks.git.EXPECT().LsFiles(gomock.Any(), testRepo, "--others", "--exclude-standard").Return(nil, nil)

	mocks.git.EXPECT().Raw(gomock.Any(), testRepo, "update-ref", gomock.Any(), gomock.Any()).
		Return("", nil).Times(3)
	mocks.state.EXPECT().AddCheckpoint(testRepo, gomock.Any()).Return(errors.New("state file locked"))

	// The pinning step is compensated; RemoveCheckpoint must never run.
	mocks.git.EXPECT().Raw(gomock.Any(), testRepo, "update-ref", "-d", gomock.Any()).
		Return("", nil).Times(3)

	result := manager.Capture(context.Background(), testRepo)
	assert.False(t, result.Success)
	assert.Equal(t, "record_checkpoint", result.FailedStep)
	assert.Empty(t, result.RollbackWarnings)
}

func TestList_DelegatesToState(t *testing.T) {
	manager, mocks := newTestManager(t)
	checkpoints := []state.Checkpoint{{CheckpointID: "newer"}, {CheckpointID: "older"}}

	mocks.state.EXPECT().ListCheckpoints(testRepo).Return(checkpoints, nil)

	got, err := manager.List(testRepo)
	require.NoError(t, err)
	assert.Equal(t, checkpoints, got)
}

func TestDelete_UnknownCheckpointFailsLoudly(t *testing.T) {
	manager, mocks := newTestManager(t)

	mocks.state.EXPECT().GetCheckpoint(testRepo, "missing").
		Return(nil, state.ErrCheckpointNotFound)

	err := manager.Delete(context.Background(), testRepo, "missing")
	assert.ErrorIs(t, err, state.ErrCheckpointNotFound)
}

func TestDelete_RemovesRefsAndMetadata(t *testing.T) {
	manager, mocks := newTestManager(t)

	mocks.state.EXPECT().GetCheckpoint(testRepo, "cp-1").
		Return(&state.Checkpoint{CheckpointID: "cp-1"}, nil)
	for _, name := range []string{"index", "worktree", "untracked"} {
		mocks.git.EXPECT().Raw(gomock.Any(), testRepo,
			"update-ref", "-d", refPrefix+"cp-1/"+name).Return("", nil)
	}
	mocks.state.EXPECT().RemoveCheckpoint(testRepo, "cp-1").Return(nil)

	require.NoError(t, manager.Delete(context.Background(), testRepo, "cp-1"))
}
