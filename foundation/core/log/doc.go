// Package log provides structured logging for SnakeMath hosts.
//
// Package: log
// Title: SnakeMath Structured Logging
// Description: Leveled, structured logging with JSON, text and console
//              formats. The numerical engines never log; the engine facade,
//              the CLI and the terminal explorer do, through loggers built
//              by pkg/core/logging.
// Version: v0.2.0
// Created: 2026-03-02
// Modified: 2026-04-14
//
// Usage:
//
//	logger := log.NewWithConfig(log.Config{Level: log.LevelDebug, Format: log.FormatText}).
//	    WithName("engine").
//	    WithRunID(runID)
//
//	logger.Info("riemann sum computed", log.Fields{"method": "simpson", "n": 10})
//
//	timer := logger.StartTimer("bootstrap")
//	// ... resample
//	timer.Stop()
//
//	// Domain errors are logged at debug, caller bugs at error
//	logger.LogError(err)
package log
