package scheduler

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Scheduler runs a task at a fixed interval until stopped.
// Used for housekeeping only; market data is never fetched in the background.
type Scheduler struct {
	name     string
	interval time.Duration
	task     func(context.Context)
	logger   *zap.Logger
	wg       sync.WaitGroup
	mu       sync.Mutex
	running  bool
	cancel   context.CancelFunc
}

// New creates a new Scheduler instance
func New(name string, interval time.Duration, task func(context.Context), logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Scheduler{
		name:     name,
		interval: interval,
		task:     task,
		logger:   logger.With(zap.String("task", name)),
	}
}

// Start begins executing the task at the configured interval
func (s *Scheduler) Start(ctx context.Context, firstRunImmediately bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return
	}

	ctx, s.cancel = context.WithCancel(ctx)
	s.running = true

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		if firstRunImmediately {
			s.runOnce(ctx)
		}

		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				s.runOnce(ctx)
			case <-ctx.Done():
				return
			}
		}
	}()

	s.logger.Debug("scheduler started", zap.Duration("interval", s.interval))
}

// runOnce executes the task; a panicking task is logged and the loop keeps going
func (s *Scheduler) runOnce(ctx context.Context) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("scheduled task panicked", zap.Any("panic", r))
		}
	}()
	s.task(ctx)
}

// Stop terminates the periodic task execution and waits for the current run
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return
	}

	if s.cancel != nil {
		s.cancel()
	}
	s.wg.Wait()
	s.running = false
	s.logger.Debug("scheduler stopped")
}

// IsRunning returns true if the task loop is active
func (s *Scheduler) IsRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}
