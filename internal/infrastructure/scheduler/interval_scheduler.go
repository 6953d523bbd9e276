package scheduler

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"
)

// ErrSchedulerRunning is returned when adding tasks to a started scheduler
var ErrSchedulerRunning = errors.New("scheduler is already running")

// Task is a unit of periodic background work
type Task interface {
	// Name identifies the task in logs
	Name() string
	// Run executes one cycle of the task
	Run(ctx context.Context) error
}

type entry struct {
	task     Task
	interval time.Duration
	running  sync.Mutex
}

// IntervalScheduler runs each registered task on a fixed interval. A
// cycle that is still running when the next tick fires is skipped, so a
// slow sweep never stacks up behind itself.
type IntervalScheduler struct {
	logger  *zap.Logger
	entries []*entry

	cancel    context.CancelFunc
	wg        sync.WaitGroup
	mu        sync.Mutex
	isRunning bool
}

// NewIntervalScheduler creates a new IntervalScheduler
func NewIntervalScheduler(logger *zap.Logger) *IntervalScheduler {
	return &IntervalScheduler{logger: logger}
}

// Add registers a task to run on the given interval. Tasks must be
// added before Start.
func (s *IntervalScheduler) Add(task Task, interval time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.isRunning {
		return ErrSchedulerRunning
	}
	s.entries = append(s.entries, &entry{task: task, interval: interval})
	return nil
}

// Start launches one goroutine per task. Each task runs once
// immediately, then on every interval tick.
func (s *IntervalScheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.isRunning {
		s.mu.Unlock()
		return nil
	}
	s.isRunning = true
	s.mu.Unlock()

	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel

	for _, e := range s.entries {
		s.wg.Add(1)
		go s.loop(ctx, e)
	}

	s.logger.Info("Interval scheduler started", zap.Int("tasks", len(s.entries)))
	return nil
}

// Stop gracefully stops the scheduler, waiting for in-flight cycles
// until the context expires.
func (s *IntervalScheduler) Stop(ctx context.Context) error {
	s.mu.Lock()
	if !s.isRunning {
		s.mu.Unlock()
		return nil
	}
	s.isRunning = false
	s.mu.Unlock()

	if s.cancel != nil {
		s.cancel()
	}

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		s.logger.Info("Interval scheduler stopped gracefully")
		return nil
	case <-ctx.Done():
		s.logger.Warn("Interval scheduler stop timed out")
		return ctx.Err()
	}
}

func (s *IntervalScheduler) loop(ctx context.Context, e *entry) {
	defer s.wg.Done()

	s.logger.Info("Task scheduled",
		zap.String("task", e.task.Name()),
		zap.Duration("interval", e.interval),
	)

	s.runOnce(ctx, e)

	ticker := time.NewTicker(e.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Debug("Task loop stopping", zap.String("task", e.task.Name()))
			return
		case <-ticker.C:
			s.runOnce(ctx, e)
		}
	}
}

func (s *IntervalScheduler) runOnce(ctx context.Context, e *entry) {
	if !e.running.TryLock() {
		s.logger.Warn("Task cycle skipped, previous cycle still running",
			zap.String("task", e.task.Name()),
		)
		return
	}
	defer e.running.Unlock()

	start := time.Now()
	if err := e.task.Run(ctx); err != nil {
		s.logger.Error("Task cycle failed",
			zap.String("task", e.task.Name()),
			zap.Duration("elapsed", time.Since(start)),
			zap.Error(err),
		)
		return
	}
	s.logger.Info("Task cycle completed",
		zap.String("task", e.task.Name()),
		zap.Duration("elapsed", time.Since(start)),
	)
}
