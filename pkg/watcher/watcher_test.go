//go:build integration

package watcher

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/twigtool/twig/pkg/logger"
)

func TestWatch_NotifiesOnFileChange(t *testing.T) {
	dir := t.TempDir()

	changed := make(chan string, 1)
	w := NewWatcher(func(repoPath string) {
		select {
		case changed <- repoPath:
		default:
		}
	}, logger.NewNoopLogger())
	defer func() {
		require.NoError(t, w.Close())
	}()

	require.NoError(t, w.Watch(dir))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "main.go"), []byte("package main\n"), 0644))

	select {
	case path := <-changed:
		assert.Equal(t, dir, path)
	case <-time.After(3 * time.Second):
		t.Fatal("expected a change notification")
	}
}

func TestWatch_AlreadyWatchedPathIsNoop(t *testing.T) {
	dir := t.TempDir()

	w := NewWatcher(nil, logger.NewNoopLogger())
	defer func() {
		require.NoError(t, w.Close())
	}()

	require.NoError(t, w.Watch(dir))
	require.NoError(t, w.Watch(dir))
}

func TestWatch_MissingPathFails(t *testing.T) {
	w := NewWatcher(nil, logger.NewNoopLogger())
	defer func() {
		require.NoError(t, w.Close())
	}()

	err := w.Watch(filepath.Join(t.TempDir(), "does-not-exist"))
	assert.Error(t, err)
}

func TestUnwatch_StopsNotifications(t *testing.T) {
	dir := t.TempDir()

	changed := make(chan string, 8)
	w := NewWatcher(func(repoPath string) {
		changed <- repoPath
	}, logger.NewNoopLogger())
	defer func() {
		require.NoError(t, w.Close())
	}()

	require.NoError(t, w.Watch(dir))
	require.NoError(t, w.Unwatch(dir))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("hello\n"), 0644))

	select {
	case <-changed:
		t.Fatal("expected no notification after unwatch")
	case <-time.After(500 * time.Millisecond):
	}
}

func TestScheduleChange_AfterUnwatchIsDropped(t *testing.T) {
	dir := t.TempDir()

	changed := make(chan string, 1)
	w := NewWatcher(func(repoPath string) {
		changed <- repoPath
	}, logger.NewNoopLogger()).(*realWatcher)
	defer func() {
		require.NoError(t, w.Close())
	}()

	require.NoError(t, w.Watch(dir))
	w.mu.Lock()
	watch := w.watches[dir]
	w.mu.Unlock()
	require.NoError(t, w.Unwatch(dir))

	// An event raced past Unwatch must not re-arm the debounce timer.
	w.scheduleChange(dir, watch)

	select {
	case <-changed:
		t.Fatal("expected no notification for an unwatched path")
	case <-time.After(w.debounce * 3):
	}
}

func TestUnwatch_UnknownPathIsNoop(t *testing.T) {
	w := NewWatcher(nil, logger.NewNoopLogger())
	defer func() {
		require.NoError(t, w.Close())
	}()

	assert.NoError(t, w.Unwatch("/nowhere"))
}

func TestClose_StopsAllWatches(t *testing.T) {
	w := NewWatcher(nil, logger.NewNoopLogger())

	require.NoError(t, w.Watch(t.TempDir()))
	require.NoError(t, w.Watch(t.TempDir()))

	assert.NoError(t, w.Close())
}
