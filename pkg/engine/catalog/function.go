// ============================================================================
// SnakeMath - Numerical Mathematics Engine
// ============================================================================
//
// Package:     catalog
// Description: Evaluable functions with display forms, exact derivatives,
//              antiderivatives, domain predicates and labeled points
// Created:     2026-03-06
// License:     MIT
// ============================================================================

package catalog

import (
	"math"
	"slices"
)

// Evaluable is anything the engines can sample. Evaluate returns NaN where
// the function is undefined; it must not panic.
type Evaluable interface {
	Evaluate(x float64) float64
}

// Func adapts a plain function to Evaluable. Panics are turned into NaN.
type Func func(float64) float64

// Evaluate implements Evaluable
func (f Func) Evaluate(x float64) (y float64) {
	defer func() {
		if recover() != nil {
			y = math.NaN()
		}
	}()
	return f(x)
}

// SafeEval evaluates fn at x and reports whether the value is a finite real
// number. Domain failures, NaN, infinities and panics all yield ok=false.
func SafeEval(fn Evaluable, x float64) (y float64, ok bool) {
	defer func() {
		if recover() != nil {
			y, ok = 0, false
		}
	}()
	y = fn.Evaluate(x)
	if math.IsNaN(y) || math.IsInf(y, 0) {
		return 0, false
	}
	return y, true
}

// Tag groups functions by the widget that features them
type Tag string

// Widget tags
const (
	TagLimits      Tag = "limits"
	TagContinuity  Tag = "continuity"
	TagDerivatives Tag = "derivatives"
	TagIntegrals   Tag = "integrals"
)

// Point is a labeled x position worth showing, such as a hole or an extremum
type Point struct {
	X     float64 `json:"x" yaml:"x"`
	Label string  `json:"label" yaml:"label"`
}

// Function is a catalog preset
type Function struct {
	ID       string `json:"id" yaml:"id"`
	Name     string `json:"name" yaml:"name"`
	Notation string `json:"notation" yaml:"notation"`
	GoCode   string `json:"go_code" yaml:"go_code"`

	// Eval is the raw expression. Use Evaluate, which applies Domain.
	Eval func(float64) float64 `json:"-" yaml:"-"`

	// Derivative is the exact derivative, if known.
	Derivative func(float64) float64 `json:"-" yaml:"-"`

	// Integral is an antiderivative valid on every interval inside Domain.
	Integral func(float64) float64 `json:"-" yaml:"-"`

	// Domain reports membership; nil means all reals.
	Domain func(float64) bool `json:"-" yaml:"-"`

	InterestingPoints []Point `json:"interesting_points,omitempty" yaml:"interesting_points,omitempty"`
	Tags              []Tag   `json:"tags" yaml:"tags"`
}

// InDomain reports whether x belongs to the function's domain
func (f *Function) InDomain(x float64) bool {
	if math.IsNaN(x) {
		return false
	}
	return f.Domain == nil || f.Domain(x)
}

// Evaluate returns f(x), or NaN outside the domain or when Eval panics
func (f *Function) Evaluate(x float64) (y float64) {
	if !f.InDomain(x) {
		return math.NaN()
	}
	defer func() {
		if recover() != nil {
			y = math.NaN()
		}
	}()
	return f.Eval(x)
}

// ExactDerivative returns f'(x) when an exact derivative is known and defined
func (f *Function) ExactDerivative(x float64) (float64, bool) {
	if f.Derivative == nil || !f.InDomain(x) {
		return 0, false
	}
	return SafeEval(Func(f.Derivative), x)
}

// ExactIntegral returns F(b) - F(a) when an antiderivative is known and the
// whole interval lies inside the domain.
func (f *Function) ExactIntegral(a, b float64) (float64, bool) {
	if f.Integral == nil {
		return 0, false
	}
	lo, hi := math.Min(a, b), math.Max(a, b)
	for _, p := range f.InterestingPoints {
		if p.X > lo && p.X < hi && !f.InDomain(p.X) && f.singularAt(p.X) {
			return 0, false
		}
	}
	fa, okA := SafeEval(Func(f.Integral), a)
	fb, okB := SafeEval(Func(f.Integral), b)
	if !okA || !okB {
		return 0, false
	}
	return fb - fa, true
}

// singularAt reports whether f is unbounded near x, which makes an
// integral across x improper.
func (f *Function) singularAt(x float64) bool {
	const probe = 1e-9
	l, okL := SafeEval(f, x-probe)
	r, okR := SafeEval(f, x+probe)
	return !okL || !okR || math.Abs(l) > 1e6 || math.Abs(r) > 1e6
}

// HasTag reports whether the function carries tag
func (f *Function) HasTag(tag Tag) bool {
	return slices.Contains(f.Tags, tag)
}

// HasDerivative reports whether an exact derivative is known
func (f *Function) HasDerivative() bool { return f.Derivative != nil }

// HasIntegral reports whether an antiderivative is known
func (f *Function) HasIntegral() bool { return f.Integral != nil }
