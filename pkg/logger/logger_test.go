//go:build integration

package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoopLogger(t *testing.T) {
	log := NewNoopLogger()

	// This should not panic or produce any output
	log.Debug("debug message")
	log.Info("info message", "key", "value")
	log.Warn("warn message")
	log.Error("error message", "error", "boom")
}

func TestDefaultLogger_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "twig.log")

	log := NewDefaultLogger(Options{FilePath: path})
	log.Info("focus session enabled", "repo", "/home/user/repo")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "focus session enabled")
	assert.Contains(t, string(data), "/home/user/repo")
}

func TestDefaultLogger_DebugLevelFollowsVerbose(t *testing.T) {
	path := filepath.Join(t.TempDir(), "twig.log")

	log := NewDefaultLogger(Options{FilePath: path})
	log.Debug("quiet message")

	verbosePath := filepath.Join(t.TempDir(), "twig.log")
	verbose := NewDefaultLogger(Options{Verbose: true, FilePath: verbosePath})
	verbose.Debug("verbose message")

	data, err := os.ReadFile(verbosePath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "verbose message")

	if quiet, err := os.ReadFile(path); err == nil {
		assert.NotContains(t, string(quiet), "quiet message")
	}
}

func TestDefaultLogger_ThreadSafety(t *testing.T) {
	log := NewDefaultLogger(Options{})

	done := make(chan bool, 10)
	for i := 0; i < 10; i++ {
		go func(id int) {
			log.Info("concurrent message", "goroutine", id)
			done <- true
		}(i)
	}

	for i := 0; i < 10; i++ {
		<-done
	}
}
