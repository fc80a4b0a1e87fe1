// File: tolerance.go
// Title: Floating-Point Tolerance Policy
// Description: Named tolerance classes used across the engines, approximate
//              equality, finite-difference step helpers and the canonical
//              geometric offsets used to approach a limit point.
// Version: v0.1.0
// Created: 2026-03-04
// Modified: 2026-03-04
//
// Change History:
// - 2026-03-04 v0.1.0: Initial tolerance policy

package mathx

import "math"

// Limit convergence tolerances
const (
	LimitAbsTol = 1e-6
	LimitRelTol = 1e-4
)

// Derivative and geometric equality tolerances
const (
	GeometricAbsTol = 1e-9
	GeometricRelTol = 1e-9
)

// StatTol bounds statistical approximations; it matches the accuracy of the
// rational error-function approximation used by the normal CDF.
const StatTol = 1e-7

// Root finding
const (
	RootTol           = 1e-10
	MaxRootIterations = 200
)

// DefaultStep is the finite-difference step used when none is given
const DefaultStep = 1e-5

// DivergenceThreshold is the magnitude a monotone sequence must exceed
// before it is reported as diverging to infinity.
const DivergenceThreshold = 1e6

var limitOffsets = [...]float64{0.5, 0.2, 0.1, 0.05, 0.01, 0.005, 0.001, 1e-4, 1e-5, 1e-6, 1e-7, 1e-8}

// LimitOffsets returns a fresh copy of the offsets used to approach a point,
// from farthest to closest.
func LimitOffsets() []float64 {
	out := make([]float64, len(limitOffsets))
	copy(out, limitOffsets[:])
	return out
}

// ApproxEqual reports whether a and b agree within an absolute or a relative
// tolerance. NaN is never equal to anything; equal infinities are equal.
func ApproxEqual(a, b, absTol, relTol float64) bool {
	if math.IsNaN(a) || math.IsNaN(b) {
		return false
	}
	if math.IsInf(a, 0) || math.IsInf(b, 0) {
		return a == b
	}
	diff := math.Abs(a - b)
	if diff <= absTol {
		return true
	}
	return diff <= relTol*math.Max(math.Abs(a), math.Abs(b))
}

// ApproxEqualLimit compares with the limit convergence tolerances
func ApproxEqualLimit(a, b float64) bool {
	return ApproxEqual(a, b, LimitAbsTol, LimitRelTol)
}

// ApproxEqualGeometric compares with the geometric tolerances
func ApproxEqualGeometric(a, b float64) bool {
	return ApproxEqual(a, b, GeometricAbsTol, GeometricRelTol)
}

// ScaledStep scales h by the magnitude of x so relative resolution holds
// away from the origin: h * max(1, |x|).
func ScaledStep(x, h float64) float64 {
	if h <= 0 {
		h = DefaultStep
	}
	return h * math.Max(1, math.Abs(x))
}

// GeometricSequence returns count terms start, start*ratio, start*ratio², ...
func GeometricSequence(start, ratio float64, count int) []float64 {
	if count <= 0 {
		return nil
	}
	out := make([]float64, count)
	v := start
	for i := range out {
		out[i] = v
		v *= ratio
	}
	return out
}

// IsFinite reports whether x is neither NaN nor infinite
func IsFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// Clamp limits x to [lo, hi]. NaN passes through unchanged.
func Clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// Linspace returns n evenly spaced values from a to b inclusive
func Linspace(a, b float64, n int) []float64 {
	switch {
	case n <= 0:
		return nil
	case n == 1:
		return []float64{a}
	}
	out := make([]float64, n)
	step := (b - a) / float64(n-1)
	for i := range out {
		out[i] = a + float64(i)*step
	}
	out[n-1] = b
	return out
}
