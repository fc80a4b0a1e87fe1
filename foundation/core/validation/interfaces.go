// File: interfaces.go
// Title: Core Validation Interfaces and Types
// Description: Defines the Validator interface and the structured result type
//              shared by parameter checks across the engine packages.
// Version: v0.2.0
// Created: 2026-03-03
// Modified: 2026-04-14
//
// Change History:
// - 2026-03-03 v0.1.0: Initial validation interfaces implementation
// - 2026-04-14 v0.2.0: Results convert to coded engine errors

package validation

import (
	"fmt"
	"strings"

	smerror "github.com/Cal-ly/SnakeMath-sub002/foundation/core/error"
)

// Validation error codes
const (
	CodeFinite   = "VALIDATION_FINITE"   // NaN or infinite value
	CodeRange    = "VALIDATION_RANGE"    // value outside an allowed interval
	CodePositive = "VALIDATION_POSITIVE" // value must be > 0
	CodeInteger  = "VALIDATION_INTEGER"  // value must be a whole number
	CodeParity   = "VALIDATION_PARITY"   // value must be even
	CodeLength   = "VALIDATION_LENGTH"   // slice shorter than required
	CodeType     = "VALIDATION_TYPE"     // value of an unsupported type
	CodeCustom   = "VALIDATION_CUSTOM"   // custom rule
)

// Validator defines the interface for all validation functions
type Validator interface {
	Validate(value interface{}) ValidationResult
}

// ValidatorFunc is a function type that implements the Validator interface
type ValidatorFunc func(value interface{}) ValidationResult

// Validate implements the Validator interface for ValidatorFunc
func (f ValidatorFunc) Validate(value interface{}) ValidationResult {
	return f(value)
}

// ValidationResult represents the result of a validation operation
type ValidationResult struct {
	Valid   bool                   `json:"valid"`
	Errors  []ValidationError      `json:"errors,omitempty"`
	Context map[string]interface{} `json:"context,omitempty"`
}

// ValidationError represents a single validation error
type ValidationError struct {
	Code     string      `json:"code"`
	Field    string      `json:"field,omitempty"`
	Message  string      `json:"message"`
	Value    interface{} `json:"value,omitempty"`
	Expected interface{} `json:"expected,omitempty"`
}

// NewValidationResult creates a successful validation result
func NewValidationResult() ValidationResult {
	return ValidationResult{Valid: true}
}

// NewValidationError creates a failed validation result with a single error
func NewValidationError(code, message string) ValidationResult {
	return ValidationResult{
		Valid:  false,
		Errors: []ValidationError{{Code: code, Message: message}},
	}
}

// NewValidationErrorWithValue creates a failed result recording the offending value
func NewValidationErrorWithValue(code, message string, value, expected interface{}) ValidationResult {
	return ValidationResult{
		Valid: false,
		Errors: []ValidationError{{
			Code:     code,
			Message:  message,
			Value:    value,
			Expected: expected,
		}},
	}
}

// AddError adds an error to an existing validation result
func (r *ValidationResult) AddError(code, message string) *ValidationResult {
	r.Valid = false
	r.Errors = append(r.Errors, ValidationError{Code: code, Message: message})
	return r
}

// WithContext adds context information to the validation result
func (r *ValidationResult) WithContext(key string, value interface{}) *ValidationResult {
	if r.Context == nil {
		r.Context = make(map[string]interface{})
	}
	r.Context[key] = value
	return r
}

// WithField stamps every error in the result with the field name
func (r ValidationResult) WithField(field string) ValidationResult {
	for i := range r.Errors {
		if r.Errors[i].Field == "" {
			r.Errors[i].Field = field
		}
	}
	return r
}

// FirstError returns the first validation error, or nil if validation passed
func (r ValidationResult) FirstError() *ValidationError {
	if len(r.Errors) == 0 {
		return nil
	}
	return &r.Errors[0]
}

// ErrorMessages returns all error messages as a slice of strings
func (r ValidationResult) ErrorMessages() []string {
	messages := make([]string, len(r.Errors))
	for i, err := range r.Errors {
		if err.Field != "" {
			messages[i] = err.Field + ": " + err.Message
		} else {
			messages[i] = err.Message
		}
	}
	return messages
}

// HasError checks if the result contains a specific error code
func (r ValidationResult) HasError(code string) bool {
	for _, err := range r.Errors {
		if err.Code == code {
			return true
		}
	}
	return false
}

// ToError converts a failed result to a DOMAIN_ERROR; nil when valid.
func (r ValidationResult) ToError(operation string) error {
	return r.ToErrorWithCode(smerror.CodeDomainError, operation)
}

// ToErrorWithCode converts a failed result to an engine error with the given code.
func (r ValidationResult) ToErrorWithCode(code smerror.Code, operation string) error {
	if r.Valid {
		return nil
	}

	first := r.FirstError()
	if first == nil {
		return smerror.New("validation failed").WithCode(code).WithOperation(operation)
	}

	err := smerror.New(strings.Join(r.ErrorMessages(), "; ")).
		WithCode(code).
		WithOperation(operation).
		WithDetail("validation_code", first.Code)

	if first.Field != "" {
		err = err.WithDetail("field", first.Field)
	}
	if first.Value != nil {
		err = err.WithDetail("value", first.Value)
	}
	if first.Expected != nil {
		err = err.WithDetail("expected", first.Expected)
	}
	if len(r.Errors) > 1 {
		err = err.WithDetail("totalErrors", len(r.Errors))
	}

	return err
}

// String returns a human-readable representation of the validation result
func (r ValidationResult) String() string {
	if r.Valid {
		return "ValidationResult{valid: true}"
	}

	parts := []string{"ValidationResult{valid: false"}
	if len(r.Errors) > 0 {
		parts = append(parts, fmt.Sprintf("errors: %d", len(r.Errors)))
		parts = append(parts, fmt.Sprintf("first: %s", r.Errors[0].Message))
		if r.Errors[0].Field != "" {
			parts = append(parts, fmt.Sprintf("field: %s", r.Errors[0].Field))
		}
	}
	return strings.Join(parts, ", ") + "}"
}

// Combine merges multiple validation results into a single result
func Combine(results ...ValidationResult) ValidationResult {
	combined := NewValidationResult()

	for _, result := range results {
		if !result.Valid {
			combined.Valid = false
			combined.Errors = append(combined.Errors, result.Errors...)
		}
		for key, value := range result.Context {
			combined.WithContext(key, value)
		}
	}

	return combined
}
