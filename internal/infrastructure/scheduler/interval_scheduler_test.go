package scheduler

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type countingTask struct {
	name  string
	runs  atomic.Int32
	block chan struct{}
}

func (t *countingTask) Name() string { return t.name }

func (t *countingTask) Run(ctx context.Context) error {
	t.runs.Add(1)
	if t.block != nil {
		select {
		case <-t.block:
		case <-ctx.Done():
		}
	}
	return nil
}

func TestSchedulerRunsTaskImmediatelyAndOnTicks(t *testing.T) {
	s := NewIntervalScheduler(zap.NewNop())
	task := &countingTask{name: "counter"}
	require.NoError(t, s.Add(task, 20*time.Millisecond))

	require.NoError(t, s.Start(context.Background()))
	defer func() { _ = s.Stop(context.Background()) }()

	assert.Eventually(t, func() bool {
		return task.runs.Load() >= 3
	}, time.Second, 5*time.Millisecond)
}

func TestSchedulerSkipsOverlappingCycles(t *testing.T) {
	s := NewIntervalScheduler(zap.NewNop())
	task := &countingTask{name: "slow", block: make(chan struct{})}
	require.NoError(t, s.Add(task, 10*time.Millisecond))

	require.NoError(t, s.Start(context.Background()))

	// the first cycle blocks; ticks keep firing but must not stack
	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, int32(1), task.runs.Load())

	close(task.block)
	require.NoError(t, s.Stop(context.Background()))
}

func TestSchedulerRejectsAddWhileRunning(t *testing.T) {
	s := NewIntervalScheduler(zap.NewNop())
	require.NoError(t, s.Add(&countingTask{name: "a"}, time.Hour))
	require.NoError(t, s.Start(context.Background()))
	defer func() { _ = s.Stop(context.Background()) }()

	err := s.Add(&countingTask{name: "b"}, time.Hour)
	assert.ErrorIs(t, err, ErrSchedulerRunning)
}

func TestSchedulerStopIsIdempotent(t *testing.T) {
	s := NewIntervalScheduler(zap.NewNop())
	require.NoError(t, s.Add(&countingTask{name: "a"}, time.Hour))
	require.NoError(t, s.Start(context.Background()))

	require.NoError(t, s.Stop(context.Background()))
	require.NoError(t, s.Stop(context.Background()))
}
