//go:build unit

package saga

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func execOK(log *[]string, name string) func(ctx context.Context) (interface{}, error) {
	return func(_ context.Context) (interface{}, error) {
		*log = append(*log, "exec:"+name)
		return nil, nil
	}
}

func rollbackOK(log *[]string, name string) func(ctx context.Context, captured interface{}) error {
	return func(_ context.Context, _ interface{}) error {
		*log = append(*log, "rollback:"+name)
		return nil
	}
}

func TestRun_AllStepsSucceed(t *testing.T) {
	var log []string

	result := Run(context.Background(), nil, "test", []Step{
		{Name: "a", Execute: execOK(&log, "a"), Rollback: rollbackOK(&log, "a")},
		{Name: "b", Execute: execOK(&log, "b"), Rollback: rollbackOK(&log, "b")},
	}, func() string { return "done" })

	assert.True(t, result.Success)
	assert.Equal(t, "done", result.Data)
	assert.Empty(t, result.Error)
	assert.Empty(t, result.FailedStep)
	assert.Empty(t, result.RollbackWarnings)
	assert.Equal(t, []string{"exec:a", "exec:b"}, log)
}

func TestRun_FailureRollsBackInReverseOrder(t *testing.T) {
	var log []string

	result := Run(context.Background(), nil, "test", []Step{
		{Name: "a", Execute: execOK(&log, "a"), Rollback: rollbackOK(&log, "a")},
		{Name: "b", Execute: execOK(&log, "b"), Rollback: rollbackOK(&log, "b")},
		{
			Name: "c",
			Execute: func(_ context.Context) (interface{}, error) {
				log = append(log, "exec:c")
				return nil, errors.New("boom")
			},
			Rollback: rollbackOK(&log, "c"),
		},
	}, func() string { return "unused" })

	assert.False(t, result.Success)
	assert.Equal(t, "boom", result.Error)
	assert.Equal(t, "c", result.FailedStep)
	assert.Empty(t, result.RollbackWarnings)
	// The failed step's own rollback must not run; completed steps unwind LIFO.
	assert.Equal(t, []string{"exec:a", "exec:b", "exec:c", "rollback:b", "rollback:a"}, log)
}

func TestRun_FirstStepFailureRollsBackNothing(t *testing.T) {
	var log []string

	result := Run(context.Background(), nil, "test", []Step{
		{
			Name: "a",
			Execute: func(_ context.Context) (interface{}, error) {
				return nil, errors.New("immediate")
			},
			Rollback: rollbackOK(&log, "a"),
		},
	}, func() struct{} { return struct{}{} })

	assert.False(t, result.Success)
	assert.Equal(t, "a", result.FailedStep)
	assert.Empty(t, log)
}

func TestRun_CapturedValueReachesRollback(t *testing.T) {
	var got interface{}

	result := Run(context.Background(), nil, "test", []Step{
		{
			Name: "capture",
			Execute: func(_ context.Context) (interface{}, error) {
				return "stash@{0}", nil
			},
			Rollback: func(_ context.Context, captured interface{}) error {
				got = captured
				return nil
			},
		},
		ReadOnly("fail", func(_ context.Context) error {
			return errors.New("boom")
		}),
	}, func() struct{} { return struct{}{} })

	assert.False(t, result.Success)
	assert.Equal(t, "stash@{0}", got)
}

func TestRun_ReadOnlyStepsAreSkippedDuringRollback(t *testing.T) {
	var log []string

	result := Run(context.Background(), nil, "test", []Step{
		ReadOnly("query", func(_ context.Context) error {
			log = append(log, "exec:query")
			return nil
		}),
		{Name: "mutate", Execute: execOK(&log, "mutate"), Rollback: rollbackOK(&log, "mutate")},
		ReadOnly("fail", func(_ context.Context) error {
			return errors.New("boom")
		}),
	}, func() struct{} { return struct{}{} })

	assert.False(t, result.Success)
	assert.Equal(t, []string{"exec:query", "exec:mutate", "rollback:mutate"}, log)
}

func TestRun_RollbackErrorsBecomeWarnings(t *testing.T) {
	result := Run(context.Background(), nil, "test", []Step{
		{
			Name:    "a",
			Execute: func(_ context.Context) (interface{}, error) { return nil, nil },
			Rollback: func(_ context.Context, _ interface{}) error {
				return errors.New("undo failed")
			},
		},
		{
			Name:    "b",
			Execute: func(_ context.Context) (interface{}, error) { return nil, nil },
			Rollback: func(_ context.Context, _ interface{}) error {
				return nil
			},
		},
		ReadOnly("fail", func(_ context.Context) error {
			return errors.New("boom")
		}),
	}, func() struct{} { return struct{}{} })

	assert.False(t, result.Success)
	assert.Equal(t, "boom", result.Error)
	assert.Len(t, result.RollbackWarnings, 1)
	assert.Contains(t, result.RollbackWarnings[0], "rollback of a failed")
	assert.Contains(t, result.RollbackWarnings[0], "undo failed")
}

func TestRun_PanicInStepTriggersRollback(t *testing.T) {
	var rolledBack bool

	result := Run(context.Background(), nil, "test", []Step{
		{
			Name:    "a",
			Execute: func(_ context.Context) (interface{}, error) { return nil, nil },
			Rollback: func(_ context.Context, _ interface{}) error {
				rolledBack = true
				return nil
			},
		},
		ReadOnly("explode", func(_ context.Context) error {
			panic("unexpected")
		}),
	}, func() struct{} { return struct{}{} })

	assert.False(t, result.Success)
	assert.Equal(t, "explode", result.FailedStep)
	assert.Contains(t, result.Error, "panicked")
	assert.True(t, rolledBack)
}

func TestRun_PanicInRollbackBecomesWarning(t *testing.T) {
	result := Run(context.Background(), nil, "test", []Step{
		{
			Name:    "a",
			Execute: func(_ context.Context) (interface{}, error) { return nil, nil },
			Rollback: func(_ context.Context, _ interface{}) error {
				panic("rollback exploded")
			},
		},
		ReadOnly("fail", func(_ context.Context) error {
			return errors.New("boom")
		}),
	}, func() struct{} { return struct{}{} })

	assert.False(t, result.Success)
	assert.Len(t, result.RollbackWarnings, 1)
	assert.Contains(t, result.RollbackWarnings[0], "panicked")
}

func TestSucceed(t *testing.T) {
	result := Succeed(42)

	assert.True(t, result.Success)
	assert.Equal(t, 42, result.Data)
	assert.Empty(t, result.Error)
}
