// File: level_test.go
// Title: Log Level Tests
// Description: Tests for level names, parsing and filtering.
// Version: v0.1.0
// Created: 2026-03-02
// Modified: 2026-03-02

package log

import "testing"

func TestLevelString(t *testing.T) {
	tests := []struct {
		level Level
		str   string
		short string
	}{
		{LevelTrace, "trace", "TRC"},
		{LevelDebug, "debug", "DBG"},
		{LevelInfo, "info", "INF"},
		{LevelWarn, "warn", "WRN"},
		{LevelError, "error", "ERR"},
		{LevelFatal, "fatal", "FTL"},
		{Level(99), "unknown", "???"},
	}

	for _, tt := range tests {
		t.Run(tt.str, func(t *testing.T) {
			if got := tt.level.String(); got != tt.str {
				t.Errorf("String() = %q, want %q", got, tt.str)
			}
			if got := tt.level.ShortString(); got != tt.short {
				t.Errorf("ShortString() = %q, want %q", got, tt.short)
			}
		})
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    Level
		wantErr bool
	}{
		{"debug", LevelDebug, false},
		{" INFO ", LevelInfo, false},
		{"warning", LevelWarn, false},
		{"err", LevelError, false},
		{"trc", LevelTrace, false},
		{"loud", LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestShouldLog(t *testing.T) {
	if !LevelError.ShouldLog(LevelInfo) {
		t.Error("error should log at info threshold")
	}
	if LevelDebug.ShouldLog(LevelInfo) {
		t.Error("debug should not log at info threshold")
	}
	if len(AllLevels()) != 6 {
		t.Errorf("AllLevels() has %d levels, want 6", len(AllLevels()))
	}
}
