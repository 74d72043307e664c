//go:build unit

package focus

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/twigtool/twig/pkg/filesync"
	"github.com/twigtool/twig/pkg/state"
)

func TestRestore_NoPersistedSession(t *testing.T) {
	manager, mocks := newTestManager(t)

	mocks.state.EXPECT().GetFocusSession(mainRepo).Return(nil, state.ErrFocusSessionNotFound)

	result := manager.Restore(context.Background(), mainRepo)
	require.True(t, result.Success)
	assert.False(t, result.Data.Restored)
	assert.Equal(t, "no persisted session", result.Data.Reason)
}

func TestRestore_SelfReferentialSessionIsDiscarded(t *testing.T) {
	manager, mocks := newTestManager(t)
	session := testSession()
	session.OriginalBranch = session.Branch

	mocks.state.EXPECT().GetFocusSession(mainRepo).Return(session, nil)
	mocks.state.EXPECT().DeleteFocusSession(mainRepo).Return(nil)

	result := manager.Restore(context.Background(), mainRepo)
	require.True(t, result.Success)
	assert.False(t, result.Data.Restored)
	assert.Contains(t, result.Data.Reason, "points to itself")
}

func TestRestore_MissingWorktreeIsDiscarded(t *testing.T) {
	manager, mocks := newTestManager(t)
	session := testSession()

	mocks.state.EXPECT().GetFocusSession(mainRepo).Return(session, nil)
	mocks.fs.EXPECT().Exists(worktreePath).Return(false, nil)
	mocks.state.EXPECT().DeleteFocusSession(mainRepo).Return(nil)

	result := manager.Restore(context.Background(), mainRepo)
	require.True(t, result.Success)
	assert.False(t, result.Data.Restored)
	assert.Contains(t, result.Data.Reason, "worktree no longer exists")
}

func TestRestore_DetachedMainHeadIsDiscarded(t *testing.T) {
	manager, mocks := newTestManager(t)
	session := testSession()

	mocks.state.EXPECT().GetFocusSession(mainRepo).Return(session, nil)
	mocks.fs.EXPECT().Exists(worktreePath).Return(true, nil)
	mocks.git.EXPECT().CurrentBranch(gomock.Any(), mainRepo).Return("HEAD", nil)
	mocks.state.EXPECT().DeleteFocusSession(mainRepo).Return(nil)

	result := manager.Restore(context.Background(), mainRepo)
	require.True(t, result.Success)
	assert.False(t, result.Data.Restored)
	assert.Contains(t, result.Data.Reason, "detached HEAD")
}

func TestRestore_ManualBranchSwitchIsDiscarded(t *testing.T) {
	manager, mocks := newTestManager(t)
	session := testSession()

	mocks.state.EXPECT().GetFocusSession(mainRepo).Return(session, nil)
	mocks.fs.EXPECT().Exists(worktreePath).Return(true, nil)
	mocks.git.EXPECT().CurrentBranch(gomock.Any(), mainRepo).Return("hotfix", nil)
	mocks.git.EXPECT().RevParse(gomock.Any(), mainRepo, "HEAD").
		Return("1111111111111111111111111111111111111111", nil)
	mocks.state.EXPECT().DeleteFocusSession(mainRepo).Return(nil)

	result := manager.Restore(context.Background(), mainRepo)
	require.True(t, result.Success)
	assert.False(t, result.Data.Restored)
	assert.Contains(t, result.Data.Reason, "hotfix")
}

func TestRestore_RenamedBranchIsAdopted(t *testing.T) {
	manager, mocks := newTestManager(t)
	session := testSession()

	mocks.state.EXPECT().GetFocusSession(mainRepo).Return(session, nil)
	mocks.fs.EXPECT().Exists(worktreePath).Return(true, nil)
	mocks.git.EXPECT().CurrentBranch(gomock.Any(), mainRepo).Return("twig/renamed", nil)
	// Same commit: the branch was renamed, not switched.
	mocks.git.EXPECT().RevParse(gomock.Any(), mainRepo, "HEAD").Return(session.CommitSHA, nil)
	mocks.state.EXPECT().SaveFocusSession(gomock.Any()).DoAndReturn(
		func(updated state.FocusSession) error {
			assert.Equal(t, "twig/renamed", updated.Branch)
			return nil
		})
	mocks.syncer.EXPECT().StartSync(gomock.Any(), mainRepo, worktreePath).
		Return(filesync.Response{Success: true}, nil)
	mocks.watcher.EXPECT().Watch(mainRepo).Return(nil)

	result := manager.Restore(context.Background(), mainRepo)
	require.True(t, result.Success, result.Error)
	assert.True(t, result.Data.Restored)
}

func TestRestore_ValidSessionRestartsInfrastructure(t *testing.T) {
	manager, mocks := newTestManager(t)
	session := testSession()

	mocks.state.EXPECT().GetFocusSession(mainRepo).Return(session, nil)
	mocks.fs.EXPECT().Exists(worktreePath).Return(true, nil)
	mocks.git.EXPECT().CurrentBranch(gomock.Any(), mainRepo).Return(focusBranch, nil)
	mocks.syncer.EXPECT().StartSync(gomock.Any(), mainRepo, worktreePath).
		Return(filesync.Response{Success: true}, nil)
	mocks.watcher.EXPECT().Watch(mainRepo).Return(nil)

	result := manager.Restore(context.Background(), mainRepo)
	require.True(t, result.Success, result.Error)
	assert.True(t, result.Data.Restored)
	assert.Empty(t, result.Data.Reason)
}

func TestRestore_WatchFailureStopsSync(t *testing.T) {
	manager, mocks := newTestManager(t)
	session := testSession()

	mocks.state.EXPECT().GetFocusSession(mainRepo).Return(session, nil)
	mocks.fs.EXPECT().Exists(worktreePath).Return(true, nil)
	mocks.git.EXPECT().CurrentBranch(gomock.Any(), mainRepo).Return(focusBranch, nil)
	mocks.syncer.EXPECT().StartSync(gomock.Any(), mainRepo, worktreePath).
		Return(filesync.Response{Success: true}, nil)
	mocks.watcher.EXPECT().Watch(mainRepo).Return(errors.New("inotify limit reached"))

	mocks.syncer.EXPECT().StopSync(gomock.Any(), mainRepo).Return(filesync.Response{Success: true}, nil)

	result := manager.Restore(context.Background(), mainRepo)
	assert.False(t, result.Success)
	assert.Equal(t, "restart_main_repo_watch", result.FailedStep)
}
