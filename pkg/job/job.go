// Package job runs periodic background tasks.
package job

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"
	"sync"
	"time"
)

type Func func(ctx context.Context) error

type job struct {
	name     string
	interval time.Duration
	fn       Func
}

type Service struct {
	jobs []job
	wg   *sync.WaitGroup
}

func NewService() *Service {
	return &Service{
		wg: &sync.WaitGroup{},
	}
}

// RegisterJob adds a job that runs right after Start and then every interval.
func (s *Service) RegisterJob(name string, interval time.Duration, fn Func) *Service {
	return s.TryRegisterJob(true, name, interval, fn)
}

// TryRegisterJob registers the job only when it is enabled and has a positive interval.
func (s *Service) TryRegisterJob(isEnabled bool, name string, interval time.Duration, fn Func) *Service {
	if !isEnabled || interval <= 0 {
		return s
	}

	s.jobs = append(s.jobs, job{
		name:     name,
		interval: interval,
		fn:       fn,
	})

	return s
}

func (s *Service) Start(ctx context.Context) {
	for _, j := range s.jobs {
		s.wg.Add(1)

		go s.run(ctx, j)
	}
}

func (s *Service) run(ctx context.Context, j job) {
	defer s.wg.Done()

	l := slog.Default().With("job", j.name)

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		started := time.Now()

		err := runSafe(ctx, l, j.fn)
		if err != nil {
			l.ErrorContext(ctx, "job failed", "error", err, "duration", time.Since(started).String())
		} else {
			l.DebugContext(ctx, "job done", "duration", time.Since(started).String())
		}

		select {
		case <-ctx.Done():
			l.DebugContext(ctx, "job stopped")
			return
		case <-ticker.C:
		}
	}
}

func runSafe(ctx context.Context, l *slog.Logger, fn Func) (err error) {
	defer func() {
		if r := recover(); r != nil {
			l.ErrorContext(ctx, "job panic", "stack", string(debug.Stack()))
			err = fmt.Errorf("panic: %v", r)
		}
	}()

	return fn(ctx)
}

// Stop waits for running jobs to return after their context is cancelled.
func (s *Service) Stop() {
	s.wg.Wait()
}
