// Package sweep runs the periodic overdue pass: on a fixed interval it
// auto-completes pending orders whose due time lies more than a grace
// period in the past. Whether that is sensible business behavior is a
// policy question, so both interval and grace are configuration, not
// constants.
package sweep

import (
	"log/slog"
	"sync"
	"time"
)

const (
	// DefaultInterval is how often the sweeper scans the collection.
	DefaultInterval = time.Minute

	// DefaultGrace is how far past due a pending order may be before it
	// is silently treated as fulfilled.
	DefaultGrace = 60 * time.Minute
)

// Target is the slice of the store the sweeper needs.
type Target interface {
	SweepOverdue(grace time.Duration) (int, error)
}

// Sweeper periodically sweeps a store. Start and Stop are safe to call
// from any goroutine; Stop waits briefly for the worker to drain.
type Sweeper struct {
	target   Target
	interval time.Duration
	grace    time.Duration
	logger   *slog.Logger

	mu   sync.Mutex
	stop chan struct{}
	done chan struct{}
}

// Option configures a Sweeper.
type Option func(*Sweeper)

// WithInterval overrides the scan interval.
func WithInterval(d time.Duration) Option {
	return func(s *Sweeper) { s.interval = d }
}

// WithGrace overrides the overdue grace period.
func WithGrace(d time.Duration) Option {
	return func(s *Sweeper) { s.grace = d }
}

// WithLogger sets the structured logger. Nil means slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Sweeper) { s.logger = logger }
}

// New creates a sweeper for the given target.
func New(target Target, opts ...Option) *Sweeper {
	s := &Sweeper{
		target:   target,
		interval: DefaultInterval,
		grace:    DefaultGrace,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	return s
}

// Start launches the worker goroutine. Calling Start on a running sweeper
// is a no-op.
func (s *Sweeper) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stop != nil {
		return
	}
	s.stop = make(chan struct{})
	s.done = make(chan struct{})
	go s.run(s.stop, s.done)
}

// Stop shuts the worker down and waits up to two seconds for it.
func (s *Sweeper) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stop == nil {
		return
	}
	close(s.stop)
	select {
	case <-s.done:
	case <-time.After(2 * time.Second):
	}
	s.stop = nil
	s.done = nil
}

func (s *Sweeper) run(stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.sweepOnce()
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			s.sweepOnce()
		}
	}
}

func (s *Sweeper) sweepOnce() {
	swept, err := s.target.SweepOverdue(s.grace)
	if err != nil {
		s.logger.Warn("sweep pass failed", "error", err)
		return
	}
	if swept > 0 {
		s.logger.Info("sweep pass complete", "swept", swept, "grace", s.grace)
	}
}
