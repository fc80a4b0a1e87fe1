// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for errors. The logger maps severities to
//              log levels, so expected mathematical conditions stay quiet while
//              contract violations surface as errors.
// Version: v0.1.0
// Created: 2026-03-02
// Modified: 2026-03-02
//
// Change History:
// - 2026-03-02 v0.1.0: Initial implementation with severity levels

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates an expected condition such as a domain error on user input
	SeverityLow Severity = iota

	// SeverityMedium indicates an error that affects a result but has a rendered fallback
	SeverityMedium

	// SeverityHigh indicates a caller bug or broken configuration
	SeverityHigh

	// SeverityCritical indicates an internal invariant was violated
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// Level returns the numeric level of the severity (0-3)
func (s Severity) Level() int {
	return int(s)
}

// ShouldAlert returns true if this severity level should trigger alerts
func (s Severity) ShouldAlert() bool {
	return s >= SeverityHigh
}

// GetSeverityFromCode determines appropriate severity level based on error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeInternal:
		return SeverityCritical

	case CodeInvalidInput, CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return SeverityHigh

	case CodeNonConvergence, CodeUnknown:
		return SeverityMedium

	case CodeDomainError, CodeUndefinedResult, CodeNotFound,
		CodeValidationFailed, CodeValueOutOfRange, CodeInvalidLength:
		return SeverityLow

	default:
		return SeverityMedium
	}
}
