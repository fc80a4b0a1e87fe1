// File: error.go
// Title: Core Error Implementation
// Description: Implements the main Error type with a code, severity, operation
//              and details. Errors carry no timestamps or stack traces so that
//              every engine result, including its error, is reproducible
//              bit for bit from the same inputs.
// Version: v0.2.0
// Created: 2026-03-02
// Modified: 2026-04-14
//
// Change History:
// - 2026-03-02 v0.1.0: Initial implementation with contextual errors
// - 2026-04-14 v0.2.0: Taxonomy constructors and errors.As helpers

package error

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
)

// MaxErrorChainDepth limits the depth of error wrapping
const MaxErrorChainDepth = 15

// Error represents a structured error with context, codes, and metadata
type Error struct {
	message   string
	cause     error
	code      Code
	severity  Severity
	details   map[string]interface{}
	context   string
	operation string
}

// New creates a new Error with the given message
func New(message string) *Error {
	return &Error{
		message:  message,
		code:     CodeUnknown,
		severity: SeverityMedium,
		details:  make(map[string]interface{}),
	}
}

// Newf creates a new Error with a formatted message
func Newf(format string, args ...interface{}) *Error {
	return New(fmt.Sprintf(format, args...))
}

// Domain creates a DOMAIN_ERROR for an invalid parameter.
func Domain(operation, message string) *Error {
	return New(message).WithCode(CodeDomainError).WithOperation(operation)
}

// Undefined creates an UNDEFINED_RESULT error.
func Undefined(operation, message string) *Error {
	return New(message).WithCode(CodeUndefinedResult).WithOperation(operation)
}

// NonConvergence creates a NON_CONVERGENCE error recording the iteration cap.
func NonConvergence(operation, message string, iterations int) *Error {
	return New(message).
		WithCode(CodeNonConvergence).
		WithOperation(operation).
		WithDetail("iterations", iterations)
}

// InvalidInput creates an INVALID_INPUT error for a contract violation.
func InvalidInput(operation, message string) *Error {
	return New(message).WithCode(CodeInvalidInput).WithOperation(operation)
}

// getErrorChainDepth calculates the depth of an error chain
func getErrorChainDepth(err error) int {
	depth := 0
	current := err

	for current != nil && depth < MaxErrorChainDepth*2 {
		depth++
		if smErr, ok := current.(*Error); ok {
			current = smErr.cause
		} else {
			break
		}
	}

	return depth
}

// Wrap wraps an existing error with additional context
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}

	if depth := getErrorChainDepth(err); depth >= MaxErrorChainDepth {
		rootCause := getRootCause(err)
		return &Error{
			message:  fmt.Sprintf("%s (chain truncated at depth %d): %s", message, MaxErrorChainDepth, rootCause.Error()),
			code:     GetCode(rootCause),
			severity: SeverityHigh,
			details:  map[string]interface{}{"truncated": true, "original_depth": depth},
		}
	}

	// Keep code and details of a wrapped engine error
	if smErr, ok := err.(*Error); ok {
		wrapped := &Error{
			message:   message,
			cause:     smErr,
			code:      smErr.code,
			severity:  smErr.severity,
			details:   make(map[string]interface{}, len(smErr.details)),
			operation: smErr.operation,
		}
		for k, v := range smErr.details {
			wrapped.details[k] = v
		}
		return wrapped
	}

	return &Error{
		message:  message,
		cause:    err,
		code:     CodeUnknown,
		severity: SeverityMedium,
		details:  make(map[string]interface{}),
	}
}

// getRootCause returns the deepest error in a chain
func getRootCause(err error) error {
	current := err
	last := err

	for current != nil {
		last = current
		if smErr, ok := current.(*Error); ok {
			current = smErr.cause
		} else {
			break
		}
	}

	return last
}

// Error implements the standard error interface
func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s", e.message, e.cause.Error())
	}
	return e.message
}

// Unwrap returns the underlying cause for error unwrapping
func (e *Error) Unwrap() error {
	return e.cause
}

// Is matches another *Error by code when the target carries no message,
// so errors.Is(err, &Error{code: CodeDomainError}) style checks work.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.message == "" {
		return t.code == e.code
	}
	return t == e
}

// WithCode sets the error code
func (e *Error) WithCode(code Code) *Error {
	e.code = code
	if e.severity == SeverityMedium {
		e.severity = GetSeverityFromCode(code)
	}
	return e
}

// WithSeverity sets the error severity
func (e *Error) WithSeverity(severity Severity) *Error {
	e.severity = severity
	return e
}

// WithDetail adds a key-value detail to the error
func (e *Error) WithDetail(key string, value interface{}) *Error {
	e.details[key] = value
	return e
}

// WithDetails adds multiple key-value details to the error
func (e *Error) WithDetails(details map[string]interface{}) *Error {
	for k, v := range details {
		e.details[k] = v
	}
	return e
}

// WithContext sets the context information
func (e *Error) WithContext(context string) *Error {
	e.context = context
	return e
}

// WithOperation sets the operation that caused the error
func (e *Error) WithOperation(operation string) *Error {
	e.operation = operation
	return e
}

// Code returns the error code
func (e *Error) Code() Code {
	return e.code
}

// Severity returns the error severity
func (e *Error) Severity() Severity {
	return e.severity
}

// Message returns the message without the cause chain
func (e *Error) Message() string {
	return e.message
}

// Details returns a copy of the error details
func (e *Error) Details() map[string]interface{} {
	result := make(map[string]interface{}, len(e.details))
	for k, v := range e.details {
		result[k] = v
	}
	return result
}

// Detail returns a single detail value
func (e *Error) Detail(key string) (interface{}, bool) {
	v, ok := e.details[key]
	return v, ok
}

// Context returns the error context
func (e *Error) Context() string {
	return e.context
}

// Operation returns the operation that caused the error
func (e *Error) Operation() string {
	return e.operation
}

// RootCause returns the root cause of the error chain
func (e *Error) RootCause() error {
	return getRootCause(e)
}

// String returns a detailed string representation of the error
func (e *Error) String() string {
	var parts []string

	parts = append(parts, fmt.Sprintf("Error: %s", e.message))
	parts = append(parts, fmt.Sprintf("Code: %s", e.code))
	parts = append(parts, fmt.Sprintf("Severity: %s", e.severity))

	if e.context != "" {
		parts = append(parts, fmt.Sprintf("Context: %s", e.context))
	}

	if e.operation != "" {
		parts = append(parts, fmt.Sprintf("Operation: %s", e.operation))
	}

	if len(e.details) > 0 {
		keys := make([]string, 0, len(e.details))
		for k := range e.details {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		detailStrs := make([]string, 0, len(keys))
		for _, k := range keys {
			detailStrs = append(detailStrs, fmt.Sprintf("%s=%v", k, e.details[k]))
		}
		parts = append(parts, fmt.Sprintf("Details: {%s}", strings.Join(detailStrs, ", ")))
	}

	if e.cause != nil {
		parts = append(parts, fmt.Sprintf("Cause: %s", e.cause.Error()))
	}

	return strings.Join(parts, "\n")
}

// MarshalJSON implements json.Marshaler for structured logging
func (e *Error) MarshalJSON() ([]byte, error) {
	data := map[string]interface{}{
		"message":  e.message,
		"code":     e.code,
		"severity": e.severity.String(),
		"details":  e.details,
	}

	if e.context != "" {
		data["context"] = e.context
	}

	if e.operation != "" {
		data["operation"] = e.operation
	}

	if e.cause != nil {
		data["cause"] = e.cause.Error()
	}

	return json.Marshal(data)
}

// HasCode checks if an error, or any error it wraps, has a specific code
func HasCode(err error, code Code) bool {
	var smErr *Error
	for err != nil {
		if !errors.As(err, &smErr) {
			return false
		}
		if smErr.code == code {
			return true
		}
		err = smErr.cause
	}
	return false
}

// GetCode returns the error code from an error, or CodeUnknown if not an engine error
func GetCode(err error) Code {
	var smErr *Error
	if errors.As(err, &smErr) {
		return smErr.code
	}
	return CodeUnknown
}

// GetSeverity returns the error severity, or SeverityMedium if not an engine error
func GetSeverity(err error) Severity {
	var smErr *Error
	if errors.As(err, &smErr) {
		return smErr.severity
	}
	return SeverityMedium
}

// IsDomain reports whether err is a DOMAIN_ERROR
func IsDomain(err error) bool { return HasCode(err, CodeDomainError) }

// IsUndefined reports whether err is an UNDEFINED_RESULT
func IsUndefined(err error) bool { return HasCode(err, CodeUndefinedResult) }

// IsNonConvergence reports whether err is a NON_CONVERGENCE error
func IsNonConvergence(err error) bool { return HasCode(err, CodeNonConvergence) }

// IsInvalidInput reports whether err signals a caller bug
func IsInvalidInput(err error) bool { return HasCode(err, CodeInvalidInput) }
