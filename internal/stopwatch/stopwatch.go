// Package stopwatch logs messages annotated with the time elapsed since a
// starting point. A nil *Stopwatch is valid; all methods are no-ops.
//
package stopwatch

import (
	"log/slog"
	"time"
)

// DefaultInterval is the default minimum delay between two throttled messages.
//
const DefaultInterval = time.Second

// Stopwatch measures and logs elapsed time.
//
type Stopwatch struct {
	// Interval is the minimum delay between two messages logged by Tick.
	Interval time.Duration

	log   *slog.Logger
	now   func() time.Time
	start time.Time
	last  time.Time
}

// Start returns a new running stopwatch logging to log. It returns nil if log
// is nil.
//
func Start(log *slog.Logger) *Stopwatch {
	return start(log, time.Now)
}

func start(log *slog.Logger, now func() time.Time) *Stopwatch {
	if log == nil {
		return nil
	}
	t := now()
	return &Stopwatch{Interval: DefaultInterval, log: log, now: now, start: t, last: t}
}

// Elapsed returns the time elapsed since the stopwatch was started.
//
func (s *Stopwatch) Elapsed() time.Duration {
	if s == nil {
		return 0
	}
	return s.now().Sub(s.start)
}

// Log logs msg at info level with the elapsed time.
//
func (s *Stopwatch) Log(msg string, args ...any) {
	if s == nil {
		return
	}
	s.log.Info(msg, append(args, slog.Duration("elapsed", s.Elapsed()))...)
}

// Tick logs msg at debug level unless a message was logged by Tick less than
// Interval ago. It reports whether the message was logged.
//
func (s *Stopwatch) Tick(msg string, args ...any) bool {
	if s == nil {
		return false
	}
	t := s.now()
	if t.Sub(s.last) < s.Interval {
		return false
	}
	s.last = t
	s.log.Debug(msg, append(args, slog.Duration("elapsed", t.Sub(s.start)))...)
	return true
}

// Stop logs msg with the total elapsed time and returns it.
//
func (s *Stopwatch) Stop(msg string, args ...any) time.Duration {
	if s == nil {
		return 0
	}
	d := s.Elapsed()
	s.log.Info(msg, append(args, slog.Duration("elapsed", d))...)
	return d
}
