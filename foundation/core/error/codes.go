// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes used across the SnakeMath engine. The three
//              mathematical codes (domain, undefined, non-convergence) form the
//              taxonomy callers switch on to render an explanatory state instead
//              of a number.
// Version: v0.2.0
// Created: 2026-03-02
// Modified: 2026-04-14
//
// Change History:
// - 2026-03-02 v0.1.0: Initial code set
// - 2026-04-14 v0.2.0: Added configuration and lookup codes

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"

	// Mathematical taxonomy
	CodeDomainError     Code = "DOMAIN_ERROR"     // invalid parameter (sigma <= 0, p outside [0,1], odd n for Simpson)
	CodeUndefinedResult Code = "UNDEFINED_RESULT" // constant series correlation, vertical regression line, unreachable point
	CodeNonConvergence  Code = "NON_CONVERGENCE"  // iteration cap reached without meeting tolerance

	// Configuration
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeMissingConfig Code = "MISSING_CONFIG"
	CodeInvalidConfig Code = "INVALID_CONFIG"

	// Validation
	CodeValidationFailed Code = "VALIDATION_FAILED"
	CodeValueOutOfRange  Code = "VALUE_OUT_OF_RANGE"
	CodeInvalidLength    Code = "INVALID_LENGTH"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput,
		CodeDomainError, CodeUndefinedResult, CodeNonConvergence,
		CodeConfigError, CodeMissingConfig, CodeInvalidConfig,
		CodeValidationFailed, CodeValueOutOfRange, CodeInvalidLength:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeDomainError, CodeUndefinedResult, CodeNonConvergence:
		return "math"
	case CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return "configuration"
	case CodeValidationFailed, CodeValueOutOfRange, CodeInvalidLength:
		return "validation"
	default:
		return "generic"
	}
}

// IsMathematical reports whether the code describes an expected mathematical
// condition rather than a caller bug.
func (c Code) IsMathematical() bool {
	return c.Category() == "math"
}

// Explanation returns the short state label a widget shows instead of a value.
func (c Code) Explanation() string {
	switch c {
	case CodeDomainError:
		return "invalid parameter"
	case CodeUndefinedResult:
		return "undefined"
	case CodeNonConvergence:
		return "did not converge"
	case CodeInvalidLength:
		return "insufficient data"
	case CodeNotFound:
		return "not found"
	default:
		return "error"
	}
}
