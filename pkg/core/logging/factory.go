// ============================================================================
// SnakeMath - Numerical Mathematics Engine
// ============================================================================
//
// Package:     logging
// Description: Factory functions for creating host-side loggers
// Created:     2026-03-13
// License:     MIT
// ============================================================================

package logging

import (
	"io"
	"os"

	"github.com/google/uuid"

	smlog "github.com/Cal-ly/SnakeMath-sub002/foundation/core/log"
)

// LoggerConfig holds configuration for creating loggers
type LoggerConfig struct {
	// Component name, e.g. "cli" or "explorer"
	Name string

	// Log level (trace, debug, info, warn, error, fatal)
	Level string

	// Output format: json, text or console (default: console)
	Format string

	// RunID tags every entry; a fresh one is generated when empty
	RunID string

	// Output defaults to stderr so command output on stdout stays clean
	Output io.Writer

	// Additional outputs besides Output
	AdditionalOutputs []io.Writer
}

// DefaultLoggerConfig returns a default configuration
func DefaultLoggerConfig(name string) LoggerConfig {
	return LoggerConfig{
		Name:   name,
		Level:  "warn",
		Format: "console",
	}
}

// NewRunID returns a random identifier for one process run
func NewRunID() string {
	return uuid.NewString()
}

// NewLogger creates a foundation logger from cfg. Unknown levels and
// formats fall back to warn and console.
func NewLogger(cfg LoggerConfig) *smlog.Logger {
	var output io.Writer = os.Stderr
	if cfg.Output != nil {
		output = cfg.Output
	}
	if len(cfg.AdditionalOutputs) > 0 {
		writers := append([]io.Writer{output}, cfg.AdditionalOutputs...)
		output = io.MultiWriter(writers...)
	}

	runID := cfg.RunID
	if runID == "" {
		runID = NewRunID()
	}

	return smlog.NewWithConfig(smlog.Config{
		Level:  parseLevel(cfg.Level),
		Format: parseFormat(cfg.Format),
		Output: output,
		Name:   cfg.Name,
		RunID:  runID,
	})
}

// NewSimpleLogger creates a logger with the default configuration
func NewSimpleLogger(name string) *smlog.Logger {
	return NewLogger(DefaultLoggerConfig(name))
}

// parseLevel converts a string level to smlog.Level
func parseLevel(level string) smlog.Level {
	l, err := smlog.ParseLevel(level)
	if err != nil {
		return smlog.LevelWarn
	}
	return l
}

func parseFormat(format string) smlog.Format {
	f, err := smlog.ParseFormat(format)
	if err != nil {
		return smlog.FormatConsole
	}
	return f
}

// Logger wraps the foundation logger with key-value pair methods
type Logger struct {
	*smlog.Logger
	name string
}

// New creates a key-value logger with the default configuration
func New(name string) *Logger {
	return Wrap(NewSimpleLogger(name), name)
}

// Wrap adapts an existing foundation logger
func Wrap(l *smlog.Logger, name string) *Logger {
	return &Logger{Logger: l, name: name}
}

// Name returns the component name
func (l *Logger) Name() string {
	return l.name
}

// WithLevel returns a new logger with the specified level
func (l *Logger) WithLevel(level Level) *Logger {
	return &Logger{
		Logger: l.Logger.WithLevel(level.foundation()),
		name:   l.name,
	}
}

// Debug logs a debug message with key-value pairs
func (l *Logger) Debug(msg string, keysAndValues ...interface{}) {
	l.Logger.Debug(msg, toFields(keysAndValues...))
}

// Info logs an info message with key-value pairs
func (l *Logger) Info(msg string, keysAndValues ...interface{}) {
	l.Logger.Info(msg, toFields(keysAndValues...))
}

// Warn logs a warning message with key-value pairs
func (l *Logger) Warn(msg string, keysAndValues ...interface{}) {
	l.Logger.Warn(msg, toFields(keysAndValues...))
}

// Error logs an error message with key-value pairs
func (l *Logger) Error(msg string, keysAndValues ...interface{}) {
	l.Logger.Error(msg, toFields(keysAndValues...))
}

// toFields converts key-value pairs to smlog.Fields
func toFields(keysAndValues ...interface{}) smlog.Fields {
	if len(keysAndValues) == 0 {
		return nil
	}

	fields := make(smlog.Fields)
	for i := 0; i < len(keysAndValues)-1; i += 2 {
		key, ok := keysAndValues[i].(string)
		if !ok {
			continue
		}
		fields[key] = keysAndValues[i+1]
	}
	return fields
}
