// File: stats_test.go
// Title: Descriptive Statistics Tests
// Description: Tests for summation, moments, quantiles and fences.
// Version: v0.2.0
// Created: 2026-03-04
// Modified: 2026-04-02

package mathx

import (
	"math"
	"testing"

	smerror "github.com/Cal-ly/SnakeMath-sub002/foundation/core/error"
)

func TestSum(t *testing.T) {
	// 1 + 1e100 + 1 - 1e100 loses both ones with naive summation
	values := []float64{1, 1e100, 1, -1e100}
	if got := Sum(values); got != 2 {
		t.Errorf("Sum() = %v, want 2", got)
	}
	if Sum(nil) != 0 {
		t.Error("Sum(nil) should be 0")
	}
}

func TestMeanVariance(t *testing.T) {
	values := []float64{2, 4, 4, 4, 5, 5, 7, 9}

	mean, err := Mean(values)
	if err != nil || mean != 5 {
		t.Errorf("Mean() = %v, %v, want 5", mean, err)
	}

	pv, _ := Variance(values, false)
	if !ApproxEqualGeometric(pv, 4) {
		t.Errorf("population Variance() = %v, want 4", pv)
	}

	sv, _ := Variance(values, true)
	if !ApproxEqualGeometric(sv, 32.0/7.0) {
		t.Errorf("sample Variance() = %v, want %v", sv, 32.0/7.0)
	}

	sd, _ := StdDev(values, false)
	if !ApproxEqualGeometric(sd, 2) {
		t.Errorf("StdDev() = %v, want 2", sd)
	}
}

func TestVarianceOfConstantSeries(t *testing.T) {
	for _, c := range []float64{0.1, 0.7, 1e-300, -3.3} {
		for _, n := range []int{2, 3, 6} {
			values := make([]float64, n)
			for i := range values {
				values[i] = c
			}
			for _, sample := range []bool{true, false} {
				if v, err := Variance(values, sample); err != nil || v != 0 {
					t.Errorf("Variance(%d×%v, sample=%v) = %v, %v, want exactly 0", n, c, sample, v, err)
				}
			}
		}
	}
	if !IsConstant(nil) || !IsConstant([]float64{0.1}) || IsConstant([]float64{0.1, 0.2}) {
		t.Error("IsConstant() misclassified a trivial input")
	}
	if IsConstant([]float64{math.NaN(), math.NaN()}) {
		t.Error("IsConstant(NaN, NaN) = true, want false")
	}
}

func TestEmptyInputs(t *testing.T) {
	if _, err := Mean(nil); !smerror.IsUndefined(err) {
		t.Errorf("Mean(nil) error = %v, want UNDEFINED_RESULT", err)
	}
	if _, err := Variance([]float64{1}, true); !smerror.IsUndefined(err) {
		t.Errorf("sample Variance of one value error = %v", err)
	}
	if v, err := Variance([]float64{1}, false); err != nil || v != 0 {
		t.Errorf("population Variance of one value = %v, %v", v, err)
	}
	if _, err := StdDev(nil, false); !smerror.IsUndefined(err) {
		t.Errorf("StdDev(nil) error = %v", err)
	}
	if _, err := Min(nil); err == nil {
		t.Error("Min(nil) should fail")
	}
	if _, err := Max(nil); err == nil {
		t.Error("Max(nil) should fail")
	}
	if _, _, _, err := Quartiles(nil); err == nil {
		t.Error("Quartiles(nil) should fail")
	}
}

func TestMustMeanPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustMean(nil) did not panic")
		}
	}()
	MustMean(nil)
}

func TestMinMax(t *testing.T) {
	values := []float64{3, -1, 7, 2}
	if m, _ := Min(values); m != -1 {
		t.Errorf("Min() = %v, want -1", m)
	}
	if m, _ := Max(values); m != 7 {
		t.Errorf("Max() = %v, want 7", m)
	}
}

func TestQuantile(t *testing.T) {
	values := []float64{5, 1, 4, 2, 3}

	tests := []struct {
		p, want float64
	}{
		{0, 1},
		{0.25, 2},
		{0.5, 3},
		{0.75, 4},
		{1, 5},
		{0.1, 1.4},
	}
	for _, tt := range tests {
		got, err := Quantile(values, tt.p)
		if err != nil || !ApproxEqualGeometric(got, tt.want) {
			t.Errorf("Quantile(%v) = %v, %v, want %v", tt.p, got, err, tt.want)
		}
	}

	if values[0] != 5 {
		t.Error("Quantile must not reorder its input")
	}

	if _, err := Quantile(values, 1.5); !smerror.IsDomain(err) {
		t.Errorf("Quantile(1.5) error = %v, want DOMAIN_ERROR", err)
	}
	if m, _ := Median([]float64{1, 2, 3, 4}); m != 2.5 {
		t.Errorf("Median() = %v, want 2.5", m)
	}
}

func TestFences(t *testing.T) {
	values := []float64{1, 2, 3, 4, 5, 6, 7, 8, 100}
	q1, _, q3, _ := Quartiles(values)
	iqr, _ := IQR(values)
	if iqr != q3-q1 {
		t.Errorf("IQR() = %v, want %v", iqr, q3-q1)
	}

	lo, hi, err := Fences(values)
	if err != nil {
		t.Fatalf("Fences() error = %v", err)
	}
	if lo != q1-1.5*iqr || hi != q3+1.5*iqr {
		t.Errorf("Fences() = %v, %v", lo, hi)
	}
	if !(100 > hi) {
		t.Errorf("100 should lie above the upper fence %v", hi)
	}
	if math.IsNaN(lo) {
		t.Error("lower fence is NaN")
	}
}

func BenchmarkSum(b *testing.B) {
	values := Linspace(0, 1, 10000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Sum(values)
	}
}

func BenchmarkQuantile(b *testing.B) {
	rng := NewRand(1)
	values := make([]float64, 5000)
	for i := range values {
		values[i] = rng.NormFloat64()
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = Quantile(values, 0.975)
	}
}
