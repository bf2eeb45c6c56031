package cron

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Task is a unit of periodic maintenance.
type Task struct {
	Name     string
	Interval time.Duration
	Run      func(ctx context.Context) error
}

// Scheduler runs each registered task on its own ticker until the context
// passed to Start is cancelled.
type Scheduler struct {
	mu    sync.Mutex
	tasks []Task
	wg    sync.WaitGroup
}

func NewScheduler() *Scheduler {
	return &Scheduler{}
}

func (s *Scheduler) Register(t Task) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tasks = append(s.tasks, t)
	slog.Info("maintenance task registered", "name", t.Name, "interval", t.Interval)
}

func (s *Scheduler) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, t := range s.tasks {
		s.wg.Add(1)
		go s.loop(ctx, t)
	}
	slog.Info("maintenance scheduler started", "tasks", len(s.tasks))
}

// Wait blocks until every task loop has returned.
func (s *Scheduler) Wait() {
	s.wg.Wait()
}

// RunAll executes every task once, in registration order.
func (s *Scheduler) RunAll(ctx context.Context) {
	s.mu.Lock()
	tasks := append([]Task(nil), s.tasks...)
	s.mu.Unlock()

	for _, t := range tasks {
		run(ctx, t)
	}
}

func (s *Scheduler) loop(ctx context.Context, t Task) {
	defer s.wg.Done()

	ticker := time.NewTicker(t.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			run(ctx, t)
		}
	}
}

func run(ctx context.Context, t Task) {
	start := time.Now()
	if err := t.Run(ctx); err != nil {
		slog.Error("maintenance task failed", "name", t.Name, "error", err, "duration", time.Since(start))
		return
	}
	slog.Debug("maintenance task done", "name", t.Name, "duration", time.Since(start))
}
