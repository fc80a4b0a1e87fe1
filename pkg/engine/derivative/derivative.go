// ============================================================================
// SnakeMath - Numerical Mathematics Engine
// ============================================================================
//
// Package:     derivative
// Description: Finite-difference derivatives, tangent and secant lines
// Created:     2026-03-08
// License:     MIT
// ============================================================================

package derivative

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/diff/fd"

	smerror "github.com/Cal-ly/SnakeMath-sub002/foundation/core/error"
	"github.com/Cal-ly/SnakeMath-sub002/foundation/utils/mathx"
	"github.com/Cal-ly/SnakeMath-sub002/pkg/engine/catalog"
)

// Method is a finite-difference stencil
type Method string

// Methods. Central is O(h²); forward and backward are O(h).
const (
	Central  Method = "central"
	Forward  Method = "forward"
	Backward Method = "backward"
)

// DefaultSecondStep is the step for second differences, larger than
// DefaultStep because rounding error grows with 1/h².
const DefaultSecondStep = 1e-4

// ParseMethod converts a string into a Method. The empty string means Central.
func ParseMethod(s string) (Method, error) {
	switch Method(s) {
	case "", Central:
		return Central, nil
	case Forward, Backward:
		return Method(s), nil
	}
	return "", smerror.InvalidInput("derivative.ParseMethod",
		fmt.Sprintf("unknown method %q (want central, forward or backward)", s))
}

func (m Method) formula() fd.Formula {
	switch m {
	case Forward:
		return fd.Forward
	case Backward:
		return fd.Backward
	}
	return fd.Central
}

// Result is a numerical derivative at a point
type Result struct {
	X      float64 `json:"x" yaml:"x"`
	Method Method  `json:"method" yaml:"method"`
	Step   float64 `json:"step" yaml:"step"`
	Slope  float64 `json:"slope" yaml:"slope"`
}

// sampler evaluates fn for gonum and remembers whether any sample was undefined
type sampler struct {
	fn        catalog.Evaluable
	undefined bool
	at        float64
}

func (s *sampler) eval(x float64) float64 {
	y, ok := catalog.SafeEval(s.fn, x)
	if !ok {
		if !s.undefined {
			s.at = x
		}
		s.undefined = true
		return math.NaN()
	}
	return y
}

func normalizeStep(h, def float64) float64 {
	if !(h > 0) || math.IsInf(h, 0) {
		return def
	}
	return h
}

func checkInput(op string, fn catalog.Evaluable, x float64) error {
	if fn == nil {
		return smerror.InvalidInput(op, "function is nil")
	}
	if !mathx.IsFinite(x) {
		return smerror.Domain(op, "x must be finite")
	}
	return nil
}

// EvaluateDerivative approximates f'(x) with the given stencil and step.
// An empty method means Central; h <= 0 means mathx.DefaultStep.
func EvaluateDerivative(fn catalog.Evaluable, x float64, method Method, h float64) (Result, error) {
	const op = "derivative.EvaluateDerivative"
	if err := checkInput(op, fn, x); err != nil {
		return Result{}, err
	}
	method, err := ParseMethod(string(method))
	if err != nil {
		return Result{}, err
	}
	h = normalizeStep(h, mathx.DefaultStep)

	s := &sampler{fn: fn}
	settings := &fd.Settings{Formula: method.formula(), Step: h}
	if method != Central {
		settings.OriginKnown = true
		settings.OriginValue = s.eval(x)
	}
	slope := fd.Derivative(s.eval, x, settings)
	if s.undefined || !mathx.IsFinite(slope) {
		return Result{}, smerror.Undefined(op, "function undefined at a stencil point").
			WithDetail("x", x).
			WithDetail("sample", s.at).
			WithDetail("method", string(method))
	}
	return Result{X: x, Method: method, Step: h, Slope: slope}, nil
}

// Slope is EvaluateDerivative with the defaults, returning only the slope
func Slope(fn catalog.Evaluable, x float64) (float64, error) {
	r, err := EvaluateDerivative(fn, x, Central, 0)
	return r.Slope, err
}

// SecondDerivative approximates f''(x) with the central second difference
func SecondDerivative(fn catalog.Evaluable, x, h float64) (float64, error) {
	const op = "derivative.SecondDerivative"
	if err := checkInput(op, fn, x); err != nil {
		return 0, err
	}
	h = normalizeStep(h, DefaultSecondStep)

	s := &sampler{fn: fn}
	v := fd.Derivative(s.eval, x, &fd.Settings{Formula: fd.Central2nd, Step: h})
	if s.undefined || !mathx.IsFinite(v) {
		return 0, smerror.Undefined(op, "function undefined at a stencil point").
			WithDetail("x", x).
			WithDetail("sample", s.at)
	}
	return v, nil
}
