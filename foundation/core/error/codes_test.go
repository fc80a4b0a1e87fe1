// File: codes_test.go
// Title: Error Code and Severity Tests
// Description: Tests for code validation, categories and the severity mapping.
// Version: v0.1.0
// Created: 2026-03-02
// Modified: 2026-03-02

package error

import "testing"

func TestCodeIsValid(t *testing.T) {
	valid := []Code{CodeUnknown, CodeDomainError, CodeUndefinedResult, CodeNonConvergence, CodeInvalidConfig}
	for _, c := range valid {
		if !c.IsValid() {
			t.Errorf("%s.IsValid() = false, want true", c)
		}
	}
	if Code("NOPE").IsValid() {
		t.Error("unknown code reported valid")
	}
}

func TestCodeCategory(t *testing.T) {
	tests := []struct {
		code Code
		want string
	}{
		{CodeDomainError, "math"},
		{CodeUndefinedResult, "math"},
		{CodeNonConvergence, "math"},
		{CodeInvalidConfig, "configuration"},
		{CodeValueOutOfRange, "validation"},
		{CodeInvalidInput, "generic"},
	}
	for _, tt := range tests {
		t.Run(tt.code.String(), func(t *testing.T) {
			if got := tt.code.Category(); got != tt.want {
				t.Errorf("Category() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCodeExplanation(t *testing.T) {
	if got := CodeUndefinedResult.Explanation(); got != "undefined" {
		t.Errorf("Explanation() = %q, want undefined", got)
	}
	if got := CodeInvalidLength.Explanation(); got != "insufficient data" {
		t.Errorf("Explanation() = %q, want insufficient data", got)
	}
	if !CodeNonConvergence.IsMathematical() || CodeInvalidInput.IsMathematical() {
		t.Error("IsMathematical() misclassified")
	}
}

func TestSeverity(t *testing.T) {
	tests := []struct {
		sev   Severity
		str   string
		alert bool
	}{
		{SeverityLow, "low", false},
		{SeverityMedium, "medium", false},
		{SeverityHigh, "high", true},
		{SeverityCritical, "critical", true},
		{Severity(42), "unknown", true},
	}
	for _, tt := range tests {
		t.Run(tt.str, func(t *testing.T) {
			if tt.sev.String() != tt.str {
				t.Errorf("String() = %q, want %q", tt.sev.String(), tt.str)
			}
			if tt.sev.ShouldAlert() != tt.alert {
				t.Errorf("ShouldAlert() = %v, want %v", tt.sev.ShouldAlert(), tt.alert)
			}
		})
	}
}

func TestGetSeverityFromCode(t *testing.T) {
	if GetSeverityFromCode(CodeInternal) != SeverityCritical {
		t.Error("INTERNAL should be critical")
	}
	if GetSeverityFromCode(CodeDomainError) != SeverityLow {
		t.Error("DOMAIN_ERROR should be low")
	}
	if GetSeverityFromCode(Code("X")) != SeverityMedium {
		t.Error("unknown codes default to medium")
	}
}
