//go:build unit

package git

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProbeBusyState_CleanRepository(t *testing.T) {
	gitDir := t.TempDir()

	state := probeBusyState(gitDir)

	assert.False(t, state.Busy)
	assert.Empty(t, state.Operation)
}

func TestProbeBusyState_RebaseMerge(t *testing.T) {
	gitDir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(gitDir, "rebase-merge"), 0755))

	state := probeBusyState(gitDir)

	assert.True(t, state.Busy)
	assert.Equal(t, OperationRebase, state.Operation)
}

func TestProbeBusyState_RebaseApply(t *testing.T) {
	gitDir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(gitDir, "rebase-apply"), 0755))

	state := probeBusyState(gitDir)

	assert.True(t, state.Busy)
	assert.Equal(t, OperationRebase, state.Operation)
}

func TestProbeBusyState_Merge(t *testing.T) {
	gitDir := t.TempDir()
	sha := []byte("1234567890abcdef1234567890abcdef12345678\n")
	require.NoError(t, os.WriteFile(filepath.Join(gitDir, "MERGE_HEAD"), sha, 0644))

	state := probeBusyState(gitDir)

	assert.True(t, state.Busy)
	assert.Equal(t, OperationMerge, state.Operation)
}

func TestProbeBusyState_CherryPick(t *testing.T) {
	gitDir := t.TempDir()
	sha := []byte("1234567890abcdef1234567890abcdef12345678\n")
	require.NoError(t, os.WriteFile(filepath.Join(gitDir, "CHERRY_PICK_HEAD"), sha, 0644))

	state := probeBusyState(gitDir)

	assert.True(t, state.Busy)
	assert.Equal(t, OperationCherryPick, state.Operation)
}

func TestProbeBusyState_Revert(t *testing.T) {
	gitDir := t.TempDir()
	sha := []byte("1234567890abcdef1234567890abcdef12345678\n")
	require.NoError(t, os.WriteFile(filepath.Join(gitDir, "REVERT_HEAD"), sha, 0644))

	state := probeBusyState(gitDir)

	assert.True(t, state.Busy)
	assert.Equal(t, OperationRevert, state.Operation)
}

func TestProbeBusyState_RebaseWinsOverMerge(t *testing.T) {
	gitDir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(gitDir, "rebase-merge"), 0755))
	sha := []byte("1234567890abcdef1234567890abcdef12345678\n")
	require.NoError(t, os.WriteFile(filepath.Join(gitDir, "MERGE_HEAD"), sha, 0644))

	state := probeBusyState(gitDir)

	assert.True(t, state.Busy)
	assert.Equal(t, OperationRebase, state.Operation)
}
