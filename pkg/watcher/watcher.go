// Package watcher provides filesystem watching for focused main repositories.
package watcher

import (
	"fmt"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/twigtool/twig/pkg/logger"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=watcher.go -destination=mocks/watcher.gen.go -package=mocks

// Watcher starts and stops change watching on main repositories while a
// focus session is active.
type Watcher interface {
	// Watch starts watching the given repository path. Watching an already
	// watched path is a no-op.
	Watch(repoPath string) error

	// Unwatch stops watching the given repository path. Unwatching a path
	// that is not watched is a no-op.
	Unwatch(repoPath string) error

	// Close stops all watches and releases resources.
	Close() error
}

// repoWatch holds the per-repository watch state, including the debounce
// timer as an explicit field with a start/cancel lifecycle.
type repoWatch struct {
	watcher  *fsnotify.Watcher
	done     chan struct{}
	debounce *time.Timer
}

type realWatcher struct {
	mu       sync.Mutex
	watches  map[string]*repoWatch
	onChange func(repoPath string)
	debounce time.Duration
	logger   logger.Logger
}

// NewWatcher creates a Watcher invoking onChange (debounced) when a watched
// repository's files change. onChange may be nil.
func NewWatcher(onChange func(repoPath string), log logger.Logger) Watcher {
	if log == nil {
		log = logger.NewNoopLogger()
	}
	return &realWatcher{
		watches:  make(map[string]*repoWatch),
		onChange: onChange,
		debounce: 250 * time.Millisecond,
		logger:   log,
	}
}

// Watch starts watching the given repository path.
func (w *realWatcher) Watch(repoPath string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if _, ok := w.watches[repoPath]; ok {
		return nil
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := fsw.Add(repoPath); err != nil {
		_ = fsw.Close()
		return fmt.Errorf("failed to watch %s: %w", repoPath, err)
	}

	watch := &repoWatch{
		watcher: fsw,
		done:    make(chan struct{}),
	}
	w.watches[repoPath] = watch

	go w.loop(repoPath, watch)
	w.logger.Debug("watching repository", "path", repoPath)
	return nil
}

// Unwatch stops watching the given repository path.
func (w *realWatcher) Unwatch(repoPath string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	watch, ok := w.watches[repoPath]
	if !ok {
		return nil
	}
	delete(w.watches, repoPath)

	close(watch.done)
	if watch.debounce != nil {
		watch.debounce.Stop()
	}
	if err := watch.watcher.Close(); err != nil {
		return fmt.Errorf("failed to close watcher for %s: %w", repoPath, err)
	}
	w.logger.Debug("stopped watching repository", "path", repoPath)
	return nil
}

// Close stops all watches and releases resources.
func (w *realWatcher) Close() error {
	w.mu.Lock()
	paths := make([]string, 0, len(w.watches))
	for path := range w.watches {
		paths = append(paths, path)
	}
	w.mu.Unlock()

	for _, path := range paths {
		if err := w.Unwatch(path); err != nil {
			return err
		}
	}
	return nil
}

// loop consumes fsnotify events for one repository until Unwatch.
func (w *realWatcher) loop(repoPath string, watch *repoWatch) {
	for {
		select {
		case <-watch.done:
			return
		case event, ok := <-watch.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) != 0 {
				w.scheduleChange(repoPath, watch)
			}
		case err, ok := <-watch.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("watcher error", "path", repoPath, "error", err)
		}
	}
}

// scheduleChange (re)arms the debounce timer for a repository. Events raced
// with Unwatch are dropped so onChange never fires for an unwatched path.
func (w *realWatcher) scheduleChange(repoPath string, watch *repoWatch) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.watches[repoPath] != watch {
		return
	}

	if watch.debounce != nil {
		watch.debounce.Stop()
	}
	watch.debounce = time.AfterFunc(w.debounce, func() {
		if w.onChange != nil {
			w.onChange(repoPath)
		}
	})
}
