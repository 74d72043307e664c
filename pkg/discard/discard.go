// Package discard provides single-file undo of working changes, branching by
// file status with per-branch backup discipline.
package discard

import (
	"context"
	"fmt"
	"strings"

	"github.com/twigtool/twig/pkg/fs"
	"github.com/twigtool/twig/pkg/git"
	"github.com/twigtool/twig/pkg/logger"
	"github.com/twigtool/twig/pkg/saga"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=discard.go -destination=mocks/discard.gen.go -package=mocks

// FileStatus classifies a file's pending change.
type FileStatus string

// File status values, dispatched exhaustively.
const (
	StatusModified  FileStatus = "modified"
	StatusAdded     FileStatus = "added"
	StatusDeleted   FileStatus = "deleted"
	StatusRenamed   FileStatus = "renamed"
	StatusUntracked FileStatus = "untracked"
)

// Params selects the file whose changes are discarded.
type Params struct {
	RepoPath string
	FilePath string
}

// Output reports what was discarded.
type Output struct {
	FilePath string
	Status   FileStatus
}

// Manager interface provides single-file discard capability.
type Manager interface {
	// Discard undoes the pending change of one file.
	Discard(ctx context.Context, params Params) saga.Result[Output]
}

// NewManagerParams contains parameters for creating a new Manager instance.
type NewManagerParams struct {
	FS     fs.FS
	Git    git.Git
	Logger logger.Logger
}

type realManager struct {
	fs     fs.FS
	git    git.Git
	logger logger.Logger
}

// NewManager creates a new discard Manager instance.
func NewManager(params NewManagerParams) Manager {
	log := params.Logger
	if log == nil {
		log = logger.NewNoopLogger()
	}
	return &realManager{
		fs:     params.FS,
		git:    params.Git,
		logger: log,
	}
}

// detectStatus classifies the file from `git status --porcelain`.
func (m *realManager) detectStatus(ctx context.Context, params Params) (FileStatus, error) {
	output, err := m.git.StatusPorcelain(ctx, params.RepoPath, params.FilePath)
	if err != nil {
		return "", err
	}

	line := strings.TrimRight(strings.SplitN(output, "\n", 2)[0], "\r")
	if len(line) < 2 {
		return "", fmt.Errorf("%w: %s", ErrNoPendingChange, params.FilePath)
	}

	staged, unstaged := line[0], line[1]
	switch {
	case staged == '?' && unstaged == '?':
		return StatusUntracked, nil
	case staged == 'R' || unstaged == 'R':
		return StatusRenamed, nil
	case staged == 'A':
		return StatusAdded, nil
	case staged == 'D' || unstaged == 'D':
		return StatusDeleted, nil
	case staged == 'M' || unstaged == 'M':
		return StatusModified, nil
	default:
		return StatusModified, nil
	}
}
