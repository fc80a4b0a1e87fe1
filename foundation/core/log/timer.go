// File: timer.go
// Title: Performance Timer
// Description: Measures how long an engine call took and logs it on Stop.
// Version: v0.1.0
// Created: 2026-03-02
// Modified: 2026-03-02
//
// Change History:
// - 2026-03-02 v0.1.0: Initial implementation with performance timing

package log

import (
	"time"
)

// Timer represents a performance timer for measuring operation duration
type Timer struct {
	logger    *Logger
	operation string
	startTime time.Time
	fields    Fields
	level     Level
	stopped   bool
}

// NewTimer creates a new timer for the given operation
func NewTimer(logger *Logger, operation string) *Timer {
	return &Timer{
		logger:    logger,
		operation: operation,
		startTime: time.Now(),
		fields:    make(Fields),
		level:     LevelDebug,
	}
}

// WithLevel sets the log level for the timer completion message
func (t *Timer) WithLevel(level Level) *Timer {
	t.level = level
	return t
}

// WithField adds a field to be logged when the timer completes
func (t *Timer) WithField(key string, value interface{}) *Timer {
	t.fields[key] = value
	return t
}

// Elapsed returns the elapsed time since the timer was started
func (t *Timer) Elapsed() time.Duration {
	return time.Since(t.startTime)
}

// Stop stops the timer and logs the elapsed time
func (t *Timer) Stop() time.Duration {
	if t.stopped {
		return 0
	}

	elapsed := t.Elapsed()
	t.stopped = true

	t.fields["operation"] = t.operation
	t.fields["duration_ms"] = float64(elapsed.Nanoseconds()) / 1e6

	if t.logger != nil {
		t.logger.log(t.level, t.operation+" completed", nil, t.fields)
	}

	return elapsed
}

// StopWithError stops the timer and logs err through LogError-style routing
func (t *Timer) StopWithError(err error) time.Duration {
	if t.stopped {
		return 0
	}

	elapsed := t.Elapsed()
	t.stopped = true

	t.fields["operation"] = t.operation
	t.fields["duration_ms"] = float64(elapsed.Nanoseconds()) / 1e6
	t.fields["success"] = false

	if t.logger != nil {
		t.logger.WarnWithErr(t.operation+" failed", err, t.fields)
	}

	return elapsed
}

// IsStopped reports whether Stop or StopWithError was called
func (t *Timer) IsStopped() bool {
	return t.stopped
}
