// File: timer_test.go
// Title: Timer Tests
// Description: Tests for operation timing.
// Version: v0.1.0
// Created: 2026-03-02
// Modified: 2026-03-02

package log

import (
	"errors"
	"strings"
	"testing"
)

func TestTimerStop(t *testing.T) {
	logger, buf := newBufferLogger(LevelDebug)

	timer := logger.StartTimer("bootstrap").WithField("resamples", 1000)
	elapsed := timer.Stop()

	if elapsed < 0 {
		t.Errorf("elapsed = %v, want >= 0", elapsed)
	}
	if !timer.IsStopped() {
		t.Error("IsStopped() = false after Stop")
	}
	out := buf.String()
	if !strings.Contains(out, "bootstrap completed") || !strings.Contains(out, "resamples=1000") {
		t.Errorf("unexpected timer output %q", out)
	}

	if timer.Stop() != 0 {
		t.Error("second Stop should return 0")
	}
}

func TestTimerStopWithError(t *testing.T) {
	logger, buf := newBufferLogger(LevelInfo)

	logger.StartTimer("quantile").StopWithError(errors.New("no bracket"))

	out := buf.String()
	if !strings.Contains(out, "quantile failed") || !strings.Contains(out, "success=false") {
		t.Errorf("unexpected timer output %q", out)
	}
}

func TestTimerLevel(t *testing.T) {
	logger, buf := newBufferLogger(LevelInfo)
	logger.StartTimer("quiet").Stop()
	if buf.Len() != 0 {
		t.Errorf("debug-level timer should be filtered: %q", buf.String())
	}
	logger.StartTimer("loud").WithLevel(LevelInfo).Stop()
	if !strings.Contains(buf.String(), "loud completed") {
		t.Errorf("info-level timer missing: %q", buf.String())
	}
}
