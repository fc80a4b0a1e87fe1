// File: error_test.go
// Title: Error Module Tests
// Description: Tests for error creation, wrapping, codes, severity and the
//              taxonomy helpers used by the engines.
// Version: v0.2.0
// Created: 2026-03-02
// Modified: 2026-04-14
//
// Change History:
// - 2026-03-02 v0.1.0: Initial implementation
// - 2026-04-14 v0.2.0: Taxonomy helper coverage

package error

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	msg := "test error message"
	err := New(msg)

	if err == nil {
		t.Fatal("New() returned nil")
	}

	if err.Error() != msg {
		t.Errorf("Error() = %q, want %q", err.Error(), msg)
	}

	if err.Code() != CodeUnknown {
		t.Errorf("Code() = %v, want %v", err.Code(), CodeUnknown)
	}

	if err.Severity() != SeverityMedium {
		t.Errorf("Severity() = %v, want %v", err.Severity(), SeverityMedium)
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		message string
		wantNil bool
		wantMsg string
	}{
		{
			name:    "wrap nil error",
			err:     nil,
			message: "wrapper message",
			wantNil: true,
		},
		{
			name:    "wrap standard error",
			err:     errors.New("original error"),
			message: "wrapper message",
			wantMsg: "wrapper message: original error",
		},
		{
			name:    "wrap engine error",
			err:     Domain("normal.New", "sigma must be positive"),
			message: "building distribution",
			wantMsg: "building distribution: sigma must be positive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := Wrap(tt.err, tt.message)

			if tt.wantNil {
				if wrapped != nil {
					t.Errorf("Wrap() = %v, want nil", wrapped)
				}
				return
			}

			if wrapped == nil {
				t.Fatal("Wrap() returned nil")
			}

			if wrapped.Error() != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", wrapped.Error(), tt.wantMsg)
			}

			if smErr, ok := tt.err.(*Error); ok {
				if wrapped.Code() != smErr.Code() {
					t.Errorf("Code() = %v, want %v", wrapped.Code(), smErr.Code())
				}
				if wrapped.Operation() != smErr.Operation() {
					t.Errorf("Operation() = %v, want %v", wrapped.Operation(), smErr.Operation())
				}
			}
		})
	}
}

func TestErrorChaining(t *testing.T) {
	original := errors.New("root cause")
	middle := Wrap(original, "middle layer")
	top := Wrap(middle, "top layer")

	expected := "top layer: middle layer: root cause"
	if top.Error() != expected {
		t.Errorf("Error() = %q, want %q", top.Error(), expected)
	}

	if !errors.Is(top, middle) {
		t.Error("errors.Is(top, middle) should be true")
	}
	if !errors.Is(top, original) {
		t.Error("errors.Is(top, original) should be true")
	}
	if top.RootCause() != original {
		t.Errorf("RootCause() = %v, want %v", top.RootCause(), original)
	}
}

func TestChainTruncation(t *testing.T) {
	var err error = Undefined("regression.Fit", "vertical line")
	for i := 0; i < MaxErrorChainDepth+2; i++ {
		err = Wrap(err, fmt.Sprintf("layer %d", i))
	}

	smErr := err.(*Error)
	if v, ok := smErr.Detail("truncated"); !ok || v != true {
		t.Errorf("expected truncated detail, got %v", smErr.Details())
	}
	if smErr.Code() != CodeUndefinedResult {
		t.Errorf("Code() = %v, want %v", smErr.Code(), CodeUndefinedResult)
	}
}

func TestTaxonomyConstructors(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		code     Code
		severity Severity
		check    func(error) bool
	}{
		{"domain", Domain("op", "bad sigma"), CodeDomainError, SeverityLow, IsDomain},
		{"undefined", Undefined("op", "constant series"), CodeUndefinedResult, SeverityLow, IsUndefined},
		{"non-convergence", NonConvergence("op", "bisection", 200), CodeNonConvergence, SeverityMedium, IsNonConvergence},
		{"invalid input", InvalidInput("op", "length mismatch"), CodeInvalidInput, SeverityHigh, IsInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Code() != tt.code {
				t.Errorf("Code() = %v, want %v", tt.err.Code(), tt.code)
			}
			if tt.err.Severity() != tt.severity {
				t.Errorf("Severity() = %v, want %v", tt.err.Severity(), tt.severity)
			}
			if tt.err.Operation() != "op" {
				t.Errorf("Operation() = %q, want %q", tt.err.Operation(), "op")
			}
			if !tt.check(tt.err) {
				t.Error("taxonomy helper returned false for its own code")
			}
			if !tt.check(fmt.Errorf("context: %w", tt.err)) {
				t.Error("taxonomy helper should see through fmt wrapping")
			}
		})
	}
}

func TestNonConvergenceIterationsDetail(t *testing.T) {
	err := NonConvergence("quantile", "no bracket", 200)
	v, ok := err.Detail("iterations")
	if !ok || v != 200 {
		t.Errorf("iterations detail = %v, want 200", v)
	}
}

func TestErrorsIsByCode(t *testing.T) {
	err := Wrap(Domain("simpson", "odd n"), "integrate")
	if !errors.Is(err, &Error{code: CodeDomainError}) {
		t.Error("errors.Is should match on code for a message-less target")
	}
	if errors.Is(err, &Error{code: CodeUndefinedResult}) {
		t.Error("errors.Is matched the wrong code")
	}
}

func TestHasCodeOnForeignError(t *testing.T) {
	if HasCode(errors.New("plain"), CodeDomainError) {
		t.Error("plain error should not have an engine code")
	}
	if GetCode(errors.New("plain")) != CodeUnknown {
		t.Error("GetCode of plain error should be UNKNOWN")
	}
	if GetSeverity(errors.New("plain")) != SeverityMedium {
		t.Error("GetSeverity of plain error should be medium")
	}
}

func TestWithMethods(t *testing.T) {
	err := New("base").
		WithCode(CodeValueOutOfRange).
		WithSeverity(SeverityHigh).
		WithDetail("param", "p").
		WithDetails(map[string]interface{}{"value": 1.5}).
		WithContext("binomial").
		WithOperation("distribution.NewBinomial")

	if err.Severity() != SeverityHigh {
		t.Errorf("Severity() = %v, want %v", err.Severity(), SeverityHigh)
	}
	details := err.Details()
	if details["param"] != "p" || details["value"] != 1.5 {
		t.Errorf("Details() = %v", details)
	}
	details["param"] = "mutated"
	if v, _ := err.Detail("param"); v != "p" {
		t.Error("Details() must return a copy")
	}
	if err.Context() != "binomial" {
		t.Errorf("Context() = %q", err.Context())
	}
}

func TestString(t *testing.T) {
	err := Domain("uniform", "a must be below b").WithDetail("b", 1).WithDetail("a", 2)
	s := err.String()
	for _, want := range []string{"Error: a must be below b", "Code: DOMAIN_ERROR", "Operation: uniform", "Details: {a=2, b=1}"} {
		if !strings.Contains(s, want) {
			t.Errorf("String() missing %q in %q", want, s)
		}
	}
}

func TestMarshalJSON(t *testing.T) {
	err := Wrap(errors.New("boom"), "outer").WithCode(CodeInternal).WithOperation("op")

	data, jerr := json.Marshal(err)
	if jerr != nil {
		t.Fatalf("Marshal() error = %v", jerr)
	}

	var decoded map[string]interface{}
	if jerr := json.Unmarshal(data, &decoded); jerr != nil {
		t.Fatalf("Unmarshal() error = %v", jerr)
	}

	if decoded["code"] != "INTERNAL" {
		t.Errorf("code = %v, want INTERNAL", decoded["code"])
	}
	if decoded["cause"] != "boom" {
		t.Errorf("cause = %v, want boom", decoded["cause"])
	}
	if _, ok := decoded["timestamp"]; ok {
		t.Error("marshalled errors must not carry timestamps")
	}
}

func TestDeterministicRendering(t *testing.T) {
	build := func() string {
		return Domain("normal", "sigma").WithDetail("sigma", -1.0).WithDetail("mu", 0.0).String()
	}
	if build() != build() {
		t.Error("identical errors should render identically")
	}
}
