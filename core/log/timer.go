// File: timer.go
// Title: Operation Timer
// Description: Measures how long an operation takes and logs the result
//              through the owning Logger when it is stopped.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-12
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-12 v0.1.0: Initial implementation
// - 2026-10-15 v0.1.1: Configurable failure level for StopWithResult

package log

import (
	"time"
)

// Timer measures the duration of a single operation
type Timer struct {
	logger       *Logger
	operation    string
	startTime    time.Time
	fields       Fields
	level        Level
	failureLevel Level
	stopped      bool
}

// NewTimer creates a new timer for the given operation
func NewTimer(logger *Logger, operation string) *Timer {
	return &Timer{
		logger:       logger,
		operation:    operation,
		startTime:    time.Now(),
		fields:       make(Fields),
		level:        LevelDebug,
		failureLevel: LevelWarn,
	}
}

// WithLevel sets the level of the completion message
func (t *Timer) WithLevel(level Level) *Timer {
	t.level = level
	return t
}

// WithFailureLevel sets the minimum level used when StopWithResult reports
// a failure. Passing the timer's own level keeps failures at that level.
func (t *Timer) WithFailureLevel(level Level) *Timer {
	t.failureLevel = level
	return t
}

// WithField adds a field logged when the timer stops
func (t *Timer) WithField(key string, value interface{}) *Timer {
	t.fields[key] = value
	return t
}

// WithFields adds fields logged when the timer stops
func (t *Timer) WithFields(fields Fields) *Timer {
	t.fields = t.fields.Merge(fields)
	return t
}

// Elapsed returns the time since the timer was started
func (t *Timer) Elapsed() time.Duration {
	return time.Since(t.startTime)
}

// Stop stops the timer and logs "<operation> completed". Calling Stop a
// second time logs nothing and returns zero.
func (t *Timer) Stop() time.Duration {
	return t.finish(t.level, t.operation+" completed", nil)
}

// StopWithError stops the timer and logs "<operation> failed" at error level
func (t *Timer) StopWithError(err error) time.Duration {
	t.fields["success"] = false
	return t.finish(LevelError, t.operation+" failed", err)
}

// StopWithResult stops the timer and logs whether the operation succeeded.
// Failures are logged at warn level or above unless WithFailureLevel
// lowered that floor.
func (t *Timer) StopWithResult(success bool, result interface{}) time.Duration {
	t.fields["success"] = success
	if result != nil {
		t.fields["result"] = result
	}

	if success {
		return t.finish(t.level, t.operation+" completed successfully", nil)
	}
	return t.finish(max(t.level, t.failureLevel), t.operation+" completed with errors", nil)
}

func (t *Timer) finish(level Level, message string, err error) time.Duration {
	if t.stopped {
		return 0
	}
	t.stopped = true

	elapsed := t.Elapsed()
	t.fields["operation"] = t.operation

	if t.logger != nil {
		t.logger.logEntry(level, message, err, elapsed, t.fields)
	}

	return elapsed
}
