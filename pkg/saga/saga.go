// Package saga provides a generic ordered-step executor with automatic
// reverse-order compensation on failure. It approximates a transaction over
// non-transactional external systems such as the git CLI and the filesystem.
package saga

import (
	"context"
	"fmt"

	"github.com/twigtool/twig/pkg/logger"
)

// Step is one unit of work in a saga. Execute performs the forward action and
// may capture a result for its Rollback. Rollback compensates a successfully
// completed Execute; it is only ever invoked for steps whose Execute returned
// nil error, in strict reverse completion order. A nil Rollback marks the
// step as read-only.
type Step struct {
	Name     string
	Execute  func(ctx context.Context) (interface{}, error)
	Rollback func(ctx context.Context, captured interface{}) error
}

// ReadOnly creates a step with no rollback, for queries or actions whose
// effect is already self-reconciling.
func ReadOnly(name string, execute func(ctx context.Context) error) Step {
	return Step{
		Name: name,
		Execute: func(ctx context.Context) (interface{}, error) {
			return nil, execute(ctx)
		},
	}
}

// Result is the outcome of a saga run. A saga never lets a failure escape as
// a panic or error past its boundary; failures are reported here.
type Result[T any] struct {
	Success    bool
	Data       T
	Error      string
	FailedStep string

	// RollbackWarnings lists rollback failures encountered while compensating
	// a failed run, or non-fatal warnings attached to a successful run. They
	// never replace the primary error.
	RollbackWarnings []string
}

// Succeed builds a successful result.
func Succeed[T any](data T) Result[T] {
	return Result[T]{Success: true, Data: data}
}

// completedStep records a finished step and the result captured by its
// Execute, as an explicit stack entry rather than closure state.
type completedStep struct {
	step     Step
	captured interface{}
}

// Run executes the steps in order. On a step failure, every previously
// completed step is rolled back in reverse completion order; rollback errors
// are logged and collected as warnings, never escalated, so they cannot mask
// the original failure. On success the result payload is taken from out.
func Run[T any](ctx context.Context, log logger.Logger, name string, steps []Step, out func() T) Result[T] {
	if log == nil {
		log = logger.NewNoopLogger()
	}

	completed := make([]completedStep, 0, len(steps))

	for _, step := range steps {
		log.Debug("saga step starting", "saga", name, "step", step.Name)

		captured, err := runStep(ctx, step)
		if err != nil {
			log.Error("saga step failed", "saga", name, "step", step.Name, "error", err)
			warnings := rollback(ctx, log, name, completed)
			return Result[T]{
				Success:          false,
				Error:            err.Error(),
				FailedStep:       step.Name,
				RollbackWarnings: warnings,
			}
		}

		log.Debug("saga step succeeded", "saga", name, "step", step.Name)
		completed = append(completed, completedStep{step: step, captured: captured})
	}

	result := Succeed(out())
	log.Info("saga completed", "saga", name, "steps", len(steps))
	return result
}

// runStep executes a single step, converting panics into errors so that a
// misbehaving step cannot skip compensation.
func runStep(ctx context.Context, step Step) (captured interface{}, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("step %s panicked: %v", step.Name, r)
		}
	}()
	return step.Execute(ctx)
}

// rollback compensates completed steps in strict LIFO order. Each rollback
// may assume every later step has already been undone. Errors are swallowed
// into the returned warnings list.
func rollback(ctx context.Context, log logger.Logger, name string, completed []completedStep) []string {
	var warnings []string

	for i := len(completed) - 1; i >= 0; i-- {
		entry := completed[i]
		if entry.step.Rollback == nil {
			continue
		}

		log.Debug("saga step rolling back", "saga", name, "step", entry.step.Name)
		if err := rollbackStep(ctx, entry); err != nil {
			log.Warn("saga rollback failed", "saga", name, "step", entry.step.Name, "error", err)
			warnings = append(warnings, fmt.Sprintf("rollback of %s failed: %v", entry.step.Name, err))
		}
	}

	return warnings
}

// rollbackStep invokes a single rollback, converting panics into errors.
func rollbackStep(ctx context.Context, entry completedStep) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("rollback panicked: %v", r)
		}
	}()
	return entry.step.Rollback(ctx, entry.captured)
}
