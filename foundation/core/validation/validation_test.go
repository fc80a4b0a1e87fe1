// File: validation_test.go
// Title: Validation Framework Tests
// Description: Tests for results, chains, numeric validators and ParamCheck.
// Version: v0.2.0
// Created: 2026-03-03
// Modified: 2026-04-14

package validation

import (
	"math"
	"strings"
	"testing"

	smerror "github.com/Cal-ly/SnakeMath-sub002/foundation/core/error"
)

func TestValidationResult(t *testing.T) {
	t.Run("NewValidationResult creates valid result", func(t *testing.T) {
		result := NewValidationResult()
		if !result.Valid {
			t.Error("Expected valid result")
		}
		if len(result.Errors) != 0 {
			t.Error("Expected no errors")
		}
	})

	t.Run("AddError invalidates result", func(t *testing.T) {
		result := NewValidationResult()
		result.AddError(CodeRange, "out of range")
		if result.Valid {
			t.Error("Expected invalid result after adding error")
		}
		if !result.HasError(CodeRange) {
			t.Error("Expected CodeRange to be present")
		}
	})

	t.Run("FirstError returns first error", func(t *testing.T) {
		result := NewValidationResult()
		result.AddError(CodeFinite, "first error")
		result.AddError(CodeRange, "second error")

		first := result.FirstError()
		if first == nil || first.Message != "first error" {
			t.Errorf("FirstError() = %v, want first error", first)
		}
	})

	t.Run("FirstError is nil on valid result", func(t *testing.T) {
		if NewValidationResult().FirstError() != nil {
			t.Error("Expected nil first error")
		}
	})

	t.Run("ErrorMessages prefixes field", func(t *testing.T) {
		result := NewValidationError(CodePositive, "must be positive").WithField("sigma")
		msgs := result.ErrorMessages()
		if len(msgs) != 1 || msgs[0] != "sigma: must be positive" {
			t.Errorf("ErrorMessages() = %v", msgs)
		}
	})

	t.Run("String on invalid result", func(t *testing.T) {
		result := NewValidationError(CodeRange, "bad")
		if !strings.Contains(result.String(), "valid: false") {
			t.Errorf("String() = %q", result.String())
		}
	})
}

func TestCombine(t *testing.T) {
	ok := NewValidationResult()
	bad1 := NewValidationError(CodeRange, "a")
	bad2 := NewValidationError(CodeFinite, "b")

	combined := Combine(ok, bad1, bad2)
	if combined.Valid {
		t.Error("Combine() should be invalid")
	}
	if len(combined.Errors) != 2 {
		t.Errorf("Combine() errors = %d, want 2", len(combined.Errors))
	}

	if !Combine(ok, ok).Valid {
		t.Error("Combine of valid results should be valid")
	}
}

func TestNumericValidators(t *testing.T) {
	tests := []struct {
		name      string
		validator Validator
		value     interface{}
		valid     bool
	}{
		{"finite ok", Finite(), 1.5, true},
		{"finite NaN", Finite(), math.NaN(), false},
		{"finite Inf", Finite(), math.Inf(-1), false},
		{"positive ok", Positive(), 0.1, true},
		{"positive zero", Positive(), 0.0, false},
		{"positive NaN", Positive(), math.NaN(), false},
		{"non-negative zero", NonNegative(), 0, true},
		{"non-negative negative", NonNegative(), -1, false},
		{"at most ok", AtMost(5), 5, true},
		{"at most over", AtMost(5), 5.1, false},
		{"range inclusive", Range(0, 1), 1.0, true},
		{"range outside", Range(0, 1), 1.01, false},
		{"open range boundary", OpenRange(0, 1), 0.0, false},
		{"open range inside", OpenRange(0, 1), 0.95, true},
		{"probability ok", Probability(), 0.5, true},
		{"probability negative", Probability(), -0.1, false},
		{"open unit one", OpenUnit(), 1.0, false},
		{"integer ok", Integer(), 4.0, true},
		{"integer fraction", Integer(), 4.5, false},
		{"even ok", Even(), 10, true},
		{"even odd", Even(), 7, false},
		{"int type", Positive(), 3, true},
		{"wrong type", Positive(), "3", false},
		{"min length ok", MinLength(2), []float64{1, 2}, true},
		{"min length short", MinLength(2), []float64{1}, false},
		{"min length wrong type", MinLength(1), 4, false},
		{"custom ok", Custom("must be small", func(v float64) bool { return v < 10 }), 3, true},
		{"custom fails", Custom("must be small", func(v float64) bool { return v < 10 }), 30, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.validator.Validate(tt.value)
			if result.Valid != tt.valid {
				t.Errorf("Validate(%v).Valid = %v, want %v (%v)", tt.value, result.Valid, tt.valid, result.ErrorMessages())
			}
		})
	}
}

func TestValidatorChain(t *testing.T) {
	t.Run("collects all errors by default", func(t *testing.T) {
		chain := NewValidatorChain("sigma").Add(Positive(), AtLeast(1))
		result := chain.Validate(-1.0)
		if len(result.Errors) != 2 {
			t.Errorf("errors = %d, want 2", len(result.Errors))
		}
		if result.Context["validatorChain"] != "sigma" {
			t.Errorf("context = %v", result.Context)
		}
	})

	t.Run("stops on first error", func(t *testing.T) {
		chain := NewValidatorChain().Add(Finite(), Positive()).StopOnFirstError(true)
		result := chain.Validate(math.NaN())
		if len(result.Errors) != 1 || result.Errors[0].Code != CodeFinite {
			t.Errorf("errors = %v, want single CodeFinite", result.Errors)
		}
	})

	t.Run("AddFunc and Length", func(t *testing.T) {
		chain := NewValidatorChain("x").AddFunc(func(interface{}) ValidationResult {
			return NewValidationResult()
		})
		if chain.Length() != 1 {
			t.Errorf("Length() = %d, want 1", chain.Length())
		}
		if chain.Name() != "x" {
			t.Errorf("Name() = %q, want x", chain.Name())
		}
		if !strings.Contains(chain.String(), "validators: 1") {
			t.Errorf("String() = %q", chain.String())
		}
	})
}

func TestParamCheck(t *testing.T) {
	t.Run("valid parameters", func(t *testing.T) {
		err := NewParamCheck("test.op").
			Field("mu", 0.0, Finite()).
			Field("sigma", 1.0, Finite(), Positive()).
			Err()
		if err != nil {
			t.Errorf("Err() = %v, want nil", err)
		}
	})

	t.Run("invalid parameter yields domain error", func(t *testing.T) {
		err := NewParamCheck("test.op").
			Field("mu", 0.0, Finite()).
			Field("sigma", -2.0, Finite(), Positive()).
			Err()
		if err == nil {
			t.Fatal("Err() = nil, want error")
		}
		if !smerror.IsDomain(err) {
			t.Errorf("code = %v, want DOMAIN_ERROR", smerror.GetCode(err))
		}
		smErr := err.(*smerror.Error)
		if smErr.Operation() != "test.op" {
			t.Errorf("Operation() = %q, want test.op", smErr.Operation())
		}
		if field, _ := smErr.Detail("field"); field != "sigma" {
			t.Errorf("field detail = %v, want sigma", field)
		}
		if !strings.Contains(err.Error(), "sigma: must be positive") {
			t.Errorf("Error() = %q", err.Error())
		}
	})

	t.Run("NaN reported once per field", func(t *testing.T) {
		result := NewParamCheck("test.op").
			Field("p", math.NaN(), Finite(), Probability()).
			Result()
		if len(result.Errors) != 1 {
			t.Errorf("errors = %d, want 1", len(result.Errors))
		}
	})

	t.Run("custom code conversion", func(t *testing.T) {
		err := NewValidationError(CodeLength, "too short").ToErrorWithCode(smerror.CodeInvalidInput, "op")
		if !smerror.IsInvalidInput(err) {
			t.Errorf("code = %v, want INVALID_INPUT", smerror.GetCode(err))
		}
	})
}
