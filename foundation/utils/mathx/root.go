// File: root.go
// Title: Bracketing Root Finder
// Description: Bisection for monotone functions, used to invert CDFs and to
//              refine derivative sign changes.
// Version: v0.1.0
// Created: 2026-03-05
// Modified: 2026-03-05

package mathx

import (
	"math"

	smerror "github.com/Cal-ly/SnakeMath-sub002/foundation/core/error"
)

// Bisect finds x in [lo, hi] with f(x) = target, assuming f(lo)-target and
// f(hi)-target differ in sign. It stops once the bracket is narrower than tol
// or f(x) hits target exactly. A bracket without a sign change is a
// DOMAIN_ERROR; exhausting maxIter is NON_CONVERGENCE.
func Bisect(f func(float64) float64, lo, hi, target, tol float64, maxIter int) (float64, error) {
	const op = "mathx.Bisect"

	if tol <= 0 {
		tol = RootTol
	}
	if maxIter <= 0 {
		maxIter = MaxRootIterations
	}
	if lo > hi {
		lo, hi = hi, lo
	}

	flo := f(lo) - target
	fhi := f(hi) - target
	if math.IsNaN(flo) || math.IsNaN(fhi) {
		return 0, smerror.Undefined(op, "function undefined at bracket endpoint").
			WithDetail("lo", lo).
			WithDetail("hi", hi)
	}
	if flo == 0 {
		return lo, nil
	}
	if fhi == 0 {
		return hi, nil
	}
	if (flo > 0) == (fhi > 0) {
		return 0, smerror.Domain(op, "bracket does not contain a sign change").
			WithDetail("lo", lo).
			WithDetail("hi", hi)
	}

	for i := 0; i < maxIter; i++ {
		mid := lo + (hi-lo)/2
		fmid := f(mid) - target
		if fmid == 0 || (hi-lo)/2 < tol {
			return mid, nil
		}
		if (fmid > 0) == (flo > 0) {
			lo, flo = mid, fmid
		} else {
			hi = mid
		}
	}

	return 0, smerror.NonConvergence(op, "bisection did not reach tolerance", maxIter).
		WithDetail("lo", lo).
		WithDetail("hi", hi)
}
