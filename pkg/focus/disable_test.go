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

// expectDisableBody covers the common disable sequence up to the stash pop.
func expectDisableBody(mocks managerMocks, session *state.FocusSession) {
	mocks.watcher.EXPECT().Unwatch(mainRepo).Return(nil)
	mocks.syncer.EXPECT().StopSync(gomock.Any(), mainRepo).Return(filesync.Response{Success: true}, nil)
	mocks.git.EXPECT().Checkout(gomock.Any(), mainRepo, "--", ".").Return(nil)
	mocks.git.EXPECT().Clean(gomock.Any(), mainRepo, "-fd").Return(nil)
	mocks.git.EXPECT().Checkout(gomock.Any(), mainRepo, session.OriginalBranch).Return(nil)
	mocks.git.EXPECT().Checkout(gomock.Any(), session.WorktreePath, session.Branch).Return(nil)
}

func TestDisable_NoSession(t *testing.T) {
	manager, mocks := newTestManager(t)

	mocks.state.EXPECT().GetFocusSession(mainRepo).Return(nil, state.ErrFocusSessionNotFound)

	result := manager.Disable(context.Background(), mainRepo)
	assert.False(t, result.Success)
	assert.Equal(t, "load_focus_session", result.FailedStep)
	assert.Contains(t, result.Error, ErrNoSessionToDisable.Error())
}

func TestDisable_SuccessWithoutStash(t *testing.T) {
	manager, mocks := newTestManager(t)
	expectNoAgentSessions(mocks)
	session := testSession()

	mocks.state.EXPECT().GetFocusSession(mainRepo).Return(session, nil)
	expectDisableBody(mocks, session)
	mocks.state.EXPECT().DeleteFocusSession(mainRepo).Return(nil)

	result := manager.Disable(context.Background(), mainRepo)
	require.True(t, result.Success, result.Error)
	assert.Empty(t, result.Data.Warning)
}

func TestDisable_PopsExactStashBySHA(t *testing.T) {
	manager, mocks := newTestManager(t)
	expectNoAgentSessions(mocks)
	session := testSession()
	session.MainStashRef = "5555555555555555555555555555555555555555"

	mocks.state.EXPECT().GetFocusSession(mainRepo).Return(session, nil)
	expectDisableBody(mocks, session)

	// A newer stash was pushed meanwhile; ours is the second entry.
	mocks.git.EXPECT().StashList(gomock.Any(), mainRepo).Return([]string{
		"stash@{0}: On main: unrelated",
		"stash@{1}: On main: twig-focus 2026-03-01T12:00:00Z",
	}, nil)
	mocks.git.EXPECT().RevParse(gomock.Any(), mainRepo, "stash@{0}").
		Return("9999999999999999999999999999999999999999", nil)
	mocks.git.EXPECT().RevParse(gomock.Any(), mainRepo, "stash@{1}").
		Return(session.MainStashRef, nil)
	mocks.git.EXPECT().Stash(gomock.Any(), mainRepo, "pop", "stash@{1}").Return("", nil)

	mocks.state.EXPECT().DeleteFocusSession(mainRepo).Return(nil)

	result := manager.Disable(context.Background(), mainRepo)
	require.True(t, result.Success, result.Error)
	assert.Empty(t, result.Data.Warning)
}

func TestDisable_StashPopConflictBecomesWarning(t *testing.T) {
	manager, mocks := newTestManager(t)
	expectNoAgentSessions(mocks)
	session := testSession()
	session.MainStashRef = "5555555555555555555555555555555555555555"

	mocks.state.EXPECT().GetFocusSession(mainRepo).Return(session, nil)
	expectDisableBody(mocks, session)

	mocks.git.EXPECT().StashList(gomock.Any(), mainRepo).Return([]string{
		"stash@{0}: On main: twig-focus 2026-03-01T12:00:00Z",
	}, nil)
	mocks.git.EXPECT().RevParse(gomock.Any(), mainRepo, "stash@{0}").
		Return(session.MainStashRef, nil)
	mocks.git.EXPECT().Stash(gomock.Any(), mainRepo, "pop", "stash@{0}").
		Return("", errors.New("CONFLICT (content): merge conflict in main.go"))

	mocks.state.EXPECT().DeleteFocusSession(mainRepo).Return(nil)

	result := manager.Disable(context.Background(), mainRepo)
	require.True(t, result.Success, result.Error)
	assert.Contains(t, result.Data.Warning, "stash pop failed")
}

func TestDisable_MissingStashEntryBecomesWarning(t *testing.T) {
	manager, mocks := newTestManager(t)
	expectNoAgentSessions(mocks)
	session := testSession()
	session.MainStashRef = "5555555555555555555555555555555555555555"

	mocks.state.EXPECT().GetFocusSession(mainRepo).Return(session, nil)
	expectDisableBody(mocks, session)

	// The user dropped the stash by hand while focused.
	mocks.git.EXPECT().StashList(gomock.Any(), mainRepo).Return(nil, nil)

	mocks.state.EXPECT().DeleteFocusSession(mainRepo).Return(nil)

	result := manager.Disable(context.Background(), mainRepo)
	require.True(t, result.Success, result.Error)
	assert.Contains(t, result.Data.Warning, "not found")
}

func TestDisable_CheckoutFailureRollsBack(t *testing.T) {
	manager, mocks := newTestManager(t)
	expectNoAgentSessions(mocks)
	session := testSession()

	mocks.state.EXPECT().GetFocusSession(mainRepo).Return(session, nil)
	mocks.watcher.EXPECT().Unwatch(mainRepo).Return(nil)
	mocks.syncer.EXPECT().StopSync(gomock.Any(), mainRepo).Return(filesync.Response{Success: true}, nil)
	mocks.git.EXPECT().Checkout(gomock.Any(), mainRepo, "--", ".").Return(nil)
	mocks.git.EXPECT().Clean(gomock.Any(), mainRepo, "-fd").Return(nil)
	mocks.git.EXPECT().Checkout(gomock.Any(), mainRepo, "main").
		Return(errors.New("local changes would be overwritten"))

	// Compensation: sync and watching come back.
	mocks.syncer.EXPECT().StartSync(gomock.Any(), mainRepo, session.WorktreePath).
		Return(filesync.Response{Success: true}, nil)
	mocks.watcher.EXPECT().Watch(mainRepo).Return(nil)

	result := manager.Disable(context.Background(), mainRepo)
	assert.False(t, result.Success)
	assert.Equal(t, "checkout_original_branch", result.FailedStep)
	assert.Empty(t, result.RollbackWarnings)
}
