// File: numeric.go
// Title: Numeric Validators
// Description: Validators for distribution parameters, partition counts,
//              confidence levels and sample sizes.
// Version: v0.1.0
// Created: 2026-03-03
// Modified: 2026-03-03
//
// Change History:
// - 2026-03-03 v0.1.0: Initial numeric validators

package validation

import (
	"fmt"
	"math"
	"reflect"
)

// ConvertToFloat64 converts numeric types to float64
func ConvertToFloat64(value interface{}) (float64, error) {
	switch v := value.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int32:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case uint:
		return float64(v), nil
	case uint32:
		return float64(v), nil
	case uint64:
		return float64(v), nil
	default:
		return 0, fmt.Errorf("cannot convert %T to float64", value)
	}
}

// GetValueLength returns the length of strings, slices, arrays, or maps,
// or -1 for unsupported types.
func GetValueLength(value interface{}) int {
	if value == nil {
		return 0
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map, reflect.String:
		return rv.Len()
	default:
		return -1
	}
}

// numeric wraps a float rule into a Validator handling conversion failures
func numeric(rule func(v float64) ValidationResult) Validator {
	return ValidatorFunc(func(value interface{}) ValidationResult {
		v, err := ConvertToFloat64(value)
		if err != nil {
			return NewValidationErrorWithValue(CodeType, err.Error(), value, "number")
		}
		return rule(v)
	})
}

// Finite rejects NaN and infinities
func Finite() Validator {
	return numeric(func(v float64) ValidationResult {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return NewValidationErrorWithValue(CodeFinite, "must be a finite number", v, "finite")
		}
		return NewValidationResult()
	})
}

// Positive requires v > 0
func Positive() Validator {
	return numeric(func(v float64) ValidationResult {
		if !(v > 0) {
			return NewValidationErrorWithValue(CodePositive, "must be positive", v, "> 0")
		}
		return NewValidationResult()
	})
}

// NonNegative requires v >= 0
func NonNegative() Validator {
	return AtLeast(0)
}

// AtLeast requires v >= min
func AtLeast(min float64) Validator {
	return numeric(func(v float64) ValidationResult {
		if !(v >= min) {
			return NewValidationErrorWithValue(CodeRange, fmt.Sprintf("must be at least %g", min), v, fmt.Sprintf(">= %g", min))
		}
		return NewValidationResult()
	})
}

// AtMost requires v <= max
func AtMost(max float64) Validator {
	return numeric(func(v float64) ValidationResult {
		if !(v <= max) {
			return NewValidationErrorWithValue(CodeRange, fmt.Sprintf("must be at most %g", max), v, fmt.Sprintf("<= %g", max))
		}
		return NewValidationResult()
	})
}

// Range requires min <= v <= max
func Range(min, max float64) Validator {
	return numeric(func(v float64) ValidationResult {
		if !(v >= min && v <= max) {
			return NewValidationErrorWithValue(CodeRange, fmt.Sprintf("must be in [%g, %g]", min, max), v, fmt.Sprintf("[%g, %g]", min, max))
		}
		return NewValidationResult()
	})
}

// OpenRange requires min < v < max
func OpenRange(min, max float64) Validator {
	return numeric(func(v float64) ValidationResult {
		if !(v > min && v < max) {
			return NewValidationErrorWithValue(CodeRange, fmt.Sprintf("must be in (%g, %g)", min, max), v, fmt.Sprintf("(%g, %g)", min, max))
		}
		return NewValidationResult()
	})
}

// Probability requires 0 <= p <= 1
func Probability() Validator {
	return Range(0, 1)
}

// OpenUnit requires 0 < v < 1, as for confidence levels and alpha
func OpenUnit() Validator {
	return OpenRange(0, 1)
}

// Integer requires a whole number
func Integer() Validator {
	return numeric(func(v float64) ValidationResult {
		if v != math.Trunc(v) {
			return NewValidationErrorWithValue(CodeInteger, "must be a whole number", v, "integer")
		}
		return NewValidationResult()
	})
}

// Even requires an even whole number
func Even() Validator {
	return numeric(func(v float64) ValidationResult {
		if math.Mod(v, 2) != 0 {
			return NewValidationErrorWithValue(CodeParity, "must be even", v, "even")
		}
		return NewValidationResult()
	})
}

// MinLength requires a slice, array, map or string with at least n elements
func MinLength(n int) Validator {
	return ValidatorFunc(func(value interface{}) ValidationResult {
		l := GetValueLength(value)
		if l < 0 {
			return NewValidationErrorWithValue(CodeType, fmt.Sprintf("cannot take length of %T", value), nil, "collection")
		}
		if l < n {
			return NewValidationErrorWithValue(CodeLength, fmt.Sprintf("needs at least %d values, got %d", n, l), l, n)
		}
		return NewValidationResult()
	})
}

// Custom wraps a predicate into a validator with the given message
func Custom(message string, ok func(v float64) bool) Validator {
	return numeric(func(v float64) ValidationResult {
		if !ok(v) {
			return NewValidationErrorWithValue(CodeCustom, message, v, nil)
		}
		return NewValidationResult()
	})
}
