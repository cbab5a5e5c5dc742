package herald

import (
	"context"
	"log/slog"
	"time"
)

// Reaper periodically evicts sessions whose form was never submitted.
type Reaper struct {
	sessions *Sessions
	ttl      time.Duration
	interval time.Duration
	logger   *slog.Logger
}

// ReaperOption configures a Reaper.
type ReaperOption func(*Reaper)

// WithTTL sets the maximum session age. Default SessionTTL.
func WithTTL(d time.Duration) ReaperOption {
	return func(r *Reaper) {
		if d > 0 {
			r.ttl = d
		}
	}
}

// WithInterval sets the sweep period. Default SessionTTL.
func WithInterval(d time.Duration) ReaperOption {
	return func(r *Reaper) {
		if d > 0 {
			r.interval = d
		}
	}
}

// WithReaperLogger sets the logger. If nil or not set, logs are discarded.
func WithReaperLogger(l *slog.Logger) ReaperOption {
	return func(r *Reaper) {
		if l != nil {
			r.logger = l
		}
	}
}

// NewReaper creates a Reaper over sessions, timed by the sessions' clock.
func NewReaper(sessions *Sessions, opts ...ReaperOption) *Reaper {
	r := &Reaper{
		sessions: sessions,
		ttl:      SessionTTL,
		interval: SessionTTL,
		logger:   discardLogger(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Sweep evicts expired sessions once and returns how many were removed.
func (r *Reaper) Sweep() int {
	n := r.sessions.Sweep(r.ttl)
	if n > 0 {
		r.logger.Debug("expired sessions evicted", "count", n)
	}
	return n
}

// Run sweeps every interval until ctx is cancelled. It returns ctx.Err().
func (r *Reaper) Run(ctx context.Context) error {
	ticker := r.sessions.Clock().Ticker(r.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			r.Sweep()
		}
	}
}
