// File: stats.go
// Title: Descriptive Statistics
// Description: Compensated summation, moments, order statistics and Tukey
//              fences over float64 samples. Functions never modify their
//              input; order statistics sort a copy.
// Version: v0.2.0
// Created: 2026-03-04
// Modified: 2026-04-02
//
// Change History:
// - 2026-03-04 v0.1.0: Sum, Mean, Min, Max
// - 2026-04-02 v0.2.0: Variance, quantiles, quartiles and fences

package mathx

import (
	"math"
	"sort"

	smerror "github.com/Cal-ly/SnakeMath-sub002/foundation/core/error"
)

// Sum returns the Neumaier-compensated sum of values
func Sum(values []float64) float64 {
	sum, c := 0.0, 0.0
	for _, v := range values {
		t := sum + v
		if math.Abs(sum) >= math.Abs(v) {
			c += (sum - t) + v
		} else {
			c += (v - t) + sum
		}
		sum = t
	}
	return sum + c
}

// Mean calculates the arithmetic mean; an empty slice is UNDEFINED_RESULT.
func Mean(values []float64) (float64, error) {
	if len(values) == 0 {
		return 0, smerror.Undefined("mathx.Mean", "cannot calculate mean of empty slice")
	}
	return Sum(values) / float64(len(values)), nil
}

// MustMean calculates the mean, panicking on an empty slice
func MustMean(values []float64) float64 {
	m, err := Mean(values)
	if err != nil {
		panic(err)
	}
	return m
}

// Variance calculates the sample (n-1) or population (n) variance using a
// two-pass algorithm.
func Variance(values []float64, sample bool) (float64, error) {
	n := len(values)
	if n == 0 || (sample && n < 2) {
		return 0, smerror.Undefined("mathx.Variance", "not enough values for variance").
			WithDetail("n", n).
			WithDetail("sample", sample)
	}
	if IsConstant(values) {
		return 0, nil
	}
	mean := Sum(values) / float64(n)
	dev := make([]float64, n)
	for i, v := range values {
		d := v - mean
		dev[i] = d * d
	}
	denom := float64(n)
	if sample {
		denom--
	}
	return Sum(dev) / denom, nil
}

// IsConstant reports whether all values are identical
func IsConstant(values []float64) bool {
	for _, v := range values[min(1, len(values)):] {
		if v != values[0] {
			return false
		}
	}
	return true
}

// StdDev is the square root of Variance
func StdDev(values []float64, sample bool) (float64, error) {
	v, err := Variance(values, sample)
	if err != nil {
		return 0, smerror.Wrap(err, "standard deviation").WithOperation("mathx.StdDev")
	}
	return math.Sqrt(v), nil
}

// Min finds the minimum value
func Min(values []float64) (float64, error) {
	if len(values) == 0 {
		return 0, smerror.Undefined("mathx.Min", "cannot find minimum of empty slice")
	}
	m := values[0]
	for _, v := range values[1:] {
		if v < m {
			m = v
		}
	}
	return m, nil
}

// Max finds the maximum value
func Max(values []float64) (float64, error) {
	if len(values) == 0 {
		return 0, smerror.Undefined("mathx.Max", "cannot find maximum of empty slice")
	}
	m := values[0]
	for _, v := range values[1:] {
		if v > m {
			m = v
		}
	}
	return m, nil
}

// Sorted returns an ascending copy of values
func Sorted(values []float64) []float64 {
	out := make([]float64, len(values))
	copy(out, values)
	sort.Float64s(out)
	return out
}

// Quantile returns the p-quantile by linear interpolation between order
// statistics (Hyndman-Fan type 7).
func Quantile(values []float64, p float64) (float64, error) {
	if len(values) == 0 {
		return 0, smerror.Undefined("mathx.Quantile", "cannot calculate quantile of empty slice")
	}
	if !(p >= 0 && p <= 1) {
		return 0, smerror.Domain("mathx.Quantile", "probability must be in [0, 1]").WithDetail("p", p)
	}
	return quantileSorted(Sorted(values), p), nil
}

// quantileSorted is Quantile on already sorted, non-empty data
func quantileSorted(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 1 {
		return sorted[0]
	}
	h := float64(n-1) * p
	lo := int(math.Floor(h))
	if lo >= n-1 {
		return sorted[n-1]
	}
	return sorted[lo] + (h-float64(lo))*(sorted[lo+1]-sorted[lo])
}

// Median returns the 0.5 quantile
func Median(values []float64) (float64, error) {
	return Quantile(values, 0.5)
}

// Quartiles returns Q1, the median and Q3
func Quartiles(values []float64) (q1, q2, q3 float64, err error) {
	if len(values) == 0 {
		return 0, 0, 0, smerror.Undefined("mathx.Quartiles", "cannot calculate quartiles of empty slice")
	}
	sorted := Sorted(values)
	return quantileSorted(sorted, 0.25), quantileSorted(sorted, 0.5), quantileSorted(sorted, 0.75), nil
}

// IQR returns Q3 - Q1
func IQR(values []float64) (float64, error) {
	q1, _, q3, err := Quartiles(values)
	if err != nil {
		return 0, err
	}
	return q3 - q1, nil
}

// Fences returns the Tukey outlier fences Q1 - 1.5·IQR and Q3 + 1.5·IQR
func Fences(values []float64) (lower, upper float64, err error) {
	q1, _, q3, err := Quartiles(values)
	if err != nil {
		return 0, 0, err
	}
	iqr := q3 - q1
	return q1 - 1.5*iqr, q3 + 1.5*iqr, nil
}
