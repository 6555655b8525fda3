package cron

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

type job struct {
	name     string
	interval time.Duration
	run      func(ctx context.Context) error
}

// Scheduler runs each registered job in its own goroutine on a fixed
// interval. Jobs receive the scheduler's context and wind down with it.
type Scheduler struct {
	mu     sync.Mutex
	jobs   []job
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewScheduler() *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{ctx: ctx, cancel: cancel}
}

// AddJob registers a job. Jobs added after Start are not picked up.
func (s *Scheduler) AddJob(name string, interval time.Duration, fn func(ctx context.Context) error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.jobs = append(s.jobs, job{name: name, interval: interval, run: fn})
	slog.Info("Cron job registered", "name", name, "interval", interval)
}

// Start launches every registered job. Each runs once immediately, then on
// its interval.
func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, jb := range s.jobs {
		s.wg.Add(1)
		go s.loop(jb)
	}
	slog.Info("Cron scheduler started", "job_count", len(s.jobs))
}

// Stop cancels the job context and waits for in-flight runs to return.
func (s *Scheduler) Stop() {
	s.cancel()
	s.wg.Wait()
	slog.Info("Cron scheduler stopped")
}

func (s *Scheduler) loop(jb job) {
	defer s.wg.Done()

	ticker := time.NewTicker(jb.interval)
	defer ticker.Stop()

	s.run(jb)
	for {
		select {
		case <-s.ctx.Done():
			return
		case <-ticker.C:
			s.run(jb)
		}
	}
}

func (s *Scheduler) run(jb job) {
	start := time.Now()
	if err := jb.run(s.ctx); err != nil {
		slog.Error("Cron job failed", "name", jb.name, "error", err, "duration", time.Since(start))
		return
	}
	slog.Debug("Cron job completed", "name", jb.name, "duration", time.Since(start))
}
