package background

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"debase-landing/pkg/logger"
)

type Config struct {
	Workers   int
	QueueSize int
}

type Job struct {
	Name       string
	Run        func(ctx context.Context) error
	Delay      time.Duration
	Timeout    time.Duration
	MaxRetries int
	Backoff    time.Duration
}

var (
	ErrNotStarted       = errors.New("scheduler not started")
	ErrAlreadyScheduled = errors.New("job already scheduled")
	errStopping         = errors.New("scheduler is shutting down")
)

// Scheduler runs one-off jobs on a fixed pool of workers. A job name can be
// queued at most once at a time through ScheduleUnique.
type Scheduler struct {
	cfg Config

	mu      sync.Mutex
	ctx     context.Context
	cancel  context.CancelFunc
	started bool
	pending map[string]struct{}

	queue   chan task
	workers sync.WaitGroup
}

type task struct {
	job     Job
	attempt int
	unique  bool
}

var (
	metricsOnce sync.Once
	jobRuns     *prometheus.CounterVec
	jobDuration *prometheus.HistogramVec
)

func initMetrics() {
	metricsOnce.Do(func() {
		jobRuns = promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: "debase_landing",
			Subsystem: "background",
			Name:      "job_runs_total",
			Help:      "Background job executions by outcome",
		}, []string{"job", "status"})

		jobDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "debase_landing",
			Subsystem: "background",
			Name:      "job_duration_seconds",
			Help:      "Duration of background job executions",
			Buckets:   prometheus.DefBuckets,
		}, []string{"job"})
	})
}

func NewScheduler(cfg Config) *Scheduler {
	initMetrics()

	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = 8
	}

	return &Scheduler{
		cfg:     cfg,
		queue:   make(chan task, cfg.QueueSize),
		pending: make(map[string]struct{}),
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return
	}
	s.ctx, s.cancel = context.WithCancel(ctx)
	s.started = true

	for i := 0; i < s.cfg.Workers; i++ {
		s.workers.Add(1)
		go s.work()
	}
}

func (s *Scheduler) work() {
	defer s.workers.Done()

	for {
		select {
		case <-s.ctx.Done():
			return
		case t := <-s.queue:
			s.execute(t)
		}
	}
}

func (s *Scheduler) execute(t task) {
	if t.job.Delay > 0 {
		timer := time.NewTimer(t.job.Delay)
		select {
		case <-timer.C:
		case <-s.ctx.Done():
			timer.Stop()
			s.finish(t, context.Canceled)
			return
		}
	}

	err := s.run(t)
	if err != nil && t.attempt <= t.job.MaxRetries && !errors.Is(err, context.Canceled) {
		retry := t
		retry.attempt++
		retry.job.Delay = t.job.Backoff
		if s.requeue(retry) {
			logger.Warn("Background job failed, retrying", map[string]interface{}{"job": t.job.Name, "attempt": t.attempt, "error": err.Error()})
			return
		}
	}
	s.finish(t, err)
}

func (s *Scheduler) run(t task) (err error) {
	start := time.Now()
	status := "success"

	ctx := s.ctx
	if t.job.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, t.job.Timeout)
		defer cancel()
	}

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
		if err != nil {
			status = "failure"
			if errors.Is(err, context.Canceled) {
				status = "canceled"
			}
		}
		jobDuration.WithLabelValues(t.job.Name).Observe(time.Since(start).Seconds())
		jobRuns.WithLabelValues(t.job.Name, status).Inc()
	}()

	return t.job.Run(ctx)
}

func (s *Scheduler) enqueue(t task) bool {
	select {
	case <-s.ctx.Done():
		return false
	case s.queue <- t:
		return true
	}
}

// requeue does not block. A retry that does not fit in the queue is dropped
// and the job finishes with its last error.
func (s *Scheduler) requeue(t task) bool {
	select {
	case <-s.ctx.Done():
		return false
	case s.queue <- t:
		return true
	default:
		logger.Warn("Background queue full, dropping retry", map[string]interface{}{"job": t.job.Name, "attempt": t.attempt})
		return false
	}
}

func (s *Scheduler) finish(t task, err error) {
	if t.unique {
		s.mu.Lock()
		delete(s.pending, t.job.Name)
		s.mu.Unlock()
	}

	fields := map[string]interface{}{"job": t.job.Name, "attempt": t.attempt}
	switch {
	case err == nil:
		logger.Debug("Background job completed", fields)
	case errors.Is(err, context.Canceled):
		logger.Warn("Background job canceled", fields)
	default:
		logger.Error(err, "Background job failed", fields)
	}
}

func (s *Scheduler) Schedule(job Job) error {
	return s.schedule(job, false)
}

func (s *Scheduler) ScheduleUnique(job Job) error {
	return s.schedule(job, true)
}

func (s *Scheduler) schedule(job Job, unique bool) error {
	if job.Name == "" {
		return errors.New("job name is required")
	}
	if job.Run == nil {
		return errors.New("job runner is required")
	}

	s.mu.Lock()
	if !s.started {
		s.mu.Unlock()
		return ErrNotStarted
	}
	if unique {
		if _, ok := s.pending[job.Name]; ok {
			s.mu.Unlock()
			return ErrAlreadyScheduled
		}
		s.pending[job.Name] = struct{}{}
	}
	s.mu.Unlock()

	if !s.enqueue(task{job: job, attempt: 1, unique: unique}) {
		if unique {
			s.mu.Lock()
			delete(s.pending, job.Name)
			s.mu.Unlock()
		}
		return errStopping
	}
	return nil
}

// Pending reports how many unique jobs are queued or running.
func (s *Scheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

func (s *Scheduler) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	if !s.started {
		s.mu.Unlock()
		return nil
	}
	cancel := s.cancel
	s.mu.Unlock()

	cancel()

	done := make(chan struct{})
	go func() {
		s.workers.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
