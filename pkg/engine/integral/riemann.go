// ============================================================================
// SnakeMath - Numerical Mathematics Engine
// ============================================================================
//
// Package:     integral
// Description: Riemann sums, trapezoidal and Simpson rules with convergence
//              tracking
// Created:     2026-03-09
// License:     MIT
// ============================================================================

package integral

import (
	"fmt"
	"math"

	smerror "github.com/Cal-ly/SnakeMath-sub002/foundation/core/error"
	"github.com/Cal-ly/SnakeMath-sub002/foundation/utils/mathx"
	"github.com/Cal-ly/SnakeMath-sub002/pkg/engine/catalog"
)

// Method selects the quadrature rule
type Method string

// Methods
const (
	Left        Method = "left"
	Right       Method = "right"
	Midpoint    Method = "midpoint"
	Trapezoidal Method = "trapezoidal"
	Simpson     Method = "simpson"
)

// MaxPartitions caps n so that every sum stays interactive
const MaxPartitions = 200

// Methods lists every method in display order
func Methods() []Method {
	return []Method{Left, Right, Midpoint, Trapezoidal, Simpson}
}

// ParseMethod converts a string into a Method
func ParseMethod(s string) (Method, error) {
	for _, m := range Methods() {
		if string(m) == s {
			return m, nil
		}
	}
	if s == "trapezoid" {
		return Trapezoidal, nil
	}
	return "", smerror.InvalidInput("integral.ParseMethod",
		fmt.Sprintf("unknown method %q", s))
}

// Rectangle is one subinterval as drawn by a widget. Height times width is
// the subinterval's contribution to the sum; Y0 and Y1 are the endpoint
// values for trapezoids and equal Height otherwise.
type Rectangle struct {
	X0      float64 `json:"x0" yaml:"x0"`
	X1      float64 `json:"x1" yaml:"x1"`
	SampleX float64 `json:"sample_x" yaml:"sample_x"`
	Height  float64 `json:"height" yaml:"height"`
	Y0      float64 `json:"y0" yaml:"y0"`
	Y1      float64 `json:"y1" yaml:"y1"`
}

// RiemannSum is an approximate definite integral. Exact and Error are set
// only when HasExact is true.
type RiemannSum struct {
	A          float64     `json:"a" yaml:"a"`
	B          float64     `json:"b" yaml:"b"`
	N          int         `json:"n" yaml:"n"`
	Method     Method      `json:"method" yaml:"method"`
	DeltaX     float64     `json:"delta_x" yaml:"delta_x"`
	Value      float64     `json:"value" yaml:"value"`
	Exact      float64     `json:"exact,omitempty" yaml:"exact,omitempty"`
	HasExact   bool        `json:"has_exact" yaml:"has_exact"`
	Error      float64     `json:"error,omitempty" yaml:"error,omitempty"`
	Rectangles []Rectangle `json:"rectangles,omitempty" yaml:"rectangles,omitempty"`
}

// exactIntegrator is implemented by catalog functions with a known antiderivative
type exactIntegrator interface {
	ExactIntegral(a, b float64) (float64, bool)
}

func (r *RiemannSum) attachExact(exact float64) {
	r.Exact = exact
	r.HasExact = true
	r.Error = math.Abs(r.Value - exact)
}

func validate(op string, fn catalog.Evaluable, a, b float64, n int, method Method) (Method, error) {
	if fn == nil {
		return "", smerror.InvalidInput(op, "function is nil")
	}
	m, err := ParseMethod(string(method))
	if err != nil {
		return "", err
	}
	if !mathx.IsFinite(a) || !mathx.IsFinite(b) {
		return "", smerror.Domain(op, "integration bounds must be finite").
			WithDetail("a", a).
			WithDetail("b", b)
	}
	if n < 1 || n > MaxPartitions {
		return "", smerror.Domain(op, fmt.Sprintf("n must be between 1 and %d", MaxPartitions)).
			WithDetail("n", n)
	}
	if m == Simpson && n%2 != 0 {
		return "", smerror.Domain(op, "Simpson's rule requires an even number of subintervals").
			WithDetail("n", n)
	}
	return m, nil
}

// ComputeRiemannSum approximates the signed integral of fn over [a, b] with n
// equal subintervals. a > b integrates in the reverse orientation and a == b
// gives zero. When fn knows its antiderivative the exact value and error are
// attached.
func ComputeRiemannSum(fn catalog.Evaluable, a, b float64, n int, method Method) (RiemannSum, error) {
	res, err := riemann(fn, a, b, n, method)
	if err != nil {
		return res, err
	}
	if ex, ok := fn.(exactIntegrator); ok {
		if v, ok := ex.ExactIntegral(a, b); ok {
			res.attachExact(v)
		}
	}
	return res, nil
}

// ComputeRiemannSumExact is ComputeRiemannSum with a caller-supplied exact value
func ComputeRiemannSumExact(fn catalog.Evaluable, a, b float64, n int, method Method, exact float64) (RiemannSum, error) {
	res, err := riemann(fn, a, b, n, method)
	if err != nil {
		return res, err
	}
	res.attachExact(exact)
	return res, nil
}

func riemann(fn catalog.Evaluable, a, b float64, n int, method Method) (RiemannSum, error) {
	const op = "integral.ComputeRiemannSum"
	m, err := validate(op, fn, a, b, n, method)
	if err != nil {
		return RiemannSum{}, err
	}

	res := RiemannSum{A: a, B: b, N: n, Method: m}
	if a == b {
		return res, nil
	}
	dx := (b - a) / float64(n)
	res.DeltaX = dx

	// node i; the last node is b exactly
	node := func(i int) float64 {
		if i == n {
			return b
		}
		return a + float64(i)*dx
	}
	eval := func(x float64) (float64, error) {
		y, ok := catalog.SafeEval(fn, x)
		if !ok {
			return 0, smerror.Undefined(op, "function undefined at a sample point").
				WithDetail("x", x).
				WithDetail("method", string(m))
		}
		return y, nil
	}

	res.Rectangles = make([]Rectangle, n)
	switch m {
	case Left, Right, Midpoint:
		heights := make([]float64, n)
		for i := 0; i < n; i++ {
			x0, x1 := node(i), node(i+1)
			sx := x0
			switch m {
			case Right:
				sx = x1
			case Midpoint:
				sx = x0 + dx/2
			}
			y, err := eval(sx)
			if err != nil {
				return RiemannSum{}, err
			}
			heights[i] = y
			res.Rectangles[i] = Rectangle{X0: x0, X1: x1, SampleX: sx, Height: y, Y0: y, Y1: y}
		}
		res.Value = dx * mathx.Sum(heights)

	case Trapezoidal:
		ys, err := nodeValues(n, node, eval)
		if err != nil {
			return RiemannSum{}, err
		}
		heights := make([]float64, n)
		for i := 0; i < n; i++ {
			heights[i] = (ys[i] + ys[i+1]) / 2
			res.Rectangles[i] = Rectangle{
				X0: node(i), X1: node(i + 1), SampleX: node(i) + dx/2,
				Height: heights[i], Y0: ys[i], Y1: ys[i+1],
			}
		}
		res.Value = dx * mathx.Sum(heights)

	case Simpson:
		ys, err := nodeValues(n, node, eval)
		if err != nil {
			return RiemannSum{}, err
		}
		terms := make([]float64, n+1)
		for i, y := range ys {
			switch {
			case i == 0 || i == n:
				terms[i] = y
			case i%2 == 1:
				terms[i] = 4 * y
			default:
				terms[i] = 2 * y
			}
		}
		res.Value = dx / 3 * mathx.Sum(terms)

		// each panel of two subintervals is drawn as two bars of equal
		// height whose area equals the panel's parabola area
		for i := 0; i < n; i += 2 {
			h := (ys[i] + 4*ys[i+1] + ys[i+2]) / 6
			mid := node(i + 1)
			res.Rectangles[i] = Rectangle{X0: node(i), X1: mid, SampleX: mid, Height: h, Y0: ys[i], Y1: ys[i+1]}
			res.Rectangles[i+1] = Rectangle{X0: mid, X1: node(i + 2), SampleX: mid, Height: h, Y0: ys[i+1], Y1: ys[i+2]}
		}
	}
	return res, nil
}

func nodeValues(n int, node func(int) float64, eval func(float64) (float64, error)) ([]float64, error) {
	ys := make([]float64, n+1)
	for i := range ys {
		y, err := eval(node(i))
		if err != nil {
			return nil, err
		}
		ys[i] = y
	}
	return ys, nil
}
