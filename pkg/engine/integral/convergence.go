package integral

import (
	"math"

	"gonum.org/v1/gonum/integrate"

	smerror "github.com/Cal-ly/SnakeMath-sub002/foundation/core/error"
	"github.com/Cal-ly/SnakeMath-sub002/foundation/utils/mathx"
	"github.com/Cal-ly/SnakeMath-sub002/pkg/engine/catalog"
)

// ReferenceSamples is the number of samples behind ReferenceIntegral
const ReferenceSamples = 20001

// DefaultPartitions is the n sequence used when ConvergenceSequence gets none
var DefaultPartitions = []int{2, 4, 8, 16, 32, 64, 128}

// Reference kinds
const (
	ReferenceExact     = "exact"
	ReferenceNumerical = "numerical"
)

// ConvergencePoint is one n of a convergence sequence
type ConvergencePoint struct {
	N     int     `json:"n" yaml:"n"`
	Value float64 `json:"value" yaml:"value"`
	Error float64 `json:"error" yaml:"error"`
}

// Convergence shows a rule approaching the reference value as n grows
type Convergence struct {
	Method        Method             `json:"method" yaml:"method"`
	Reference     float64            `json:"reference" yaml:"reference"`
	ReferenceKind string             `json:"reference_kind" yaml:"reference_kind"`
	Points        []ConvergencePoint `json:"points" yaml:"points"`
}

// ReferenceIntegral approximates the integral of fn over [a, b] with
// composite Simpson on ReferenceSamples points.
func ReferenceIntegral(fn catalog.Evaluable, a, b float64) (float64, error) {
	const op = "integral.ReferenceIntegral"
	if fn == nil {
		return 0, smerror.InvalidInput(op, "function is nil")
	}
	if !mathx.IsFinite(a) || !mathx.IsFinite(b) {
		return 0, smerror.Domain(op, "integration bounds must be finite")
	}
	if a == b {
		return 0, nil
	}
	lo, hi := math.Min(a, b), math.Max(a, b)
	xs := mathx.Linspace(lo, hi, ReferenceSamples)
	ys := make([]float64, len(xs))
	for i, x := range xs {
		y, ok := catalog.SafeEval(fn, x)
		if !ok {
			return 0, smerror.Undefined(op, "function undefined at a sample point").WithDetail("x", x)
		}
		ys[i] = y
	}
	v := integrate.Simpsons(xs, ys)
	if a > b {
		v = -v
	}
	return v, nil
}

// ConvergenceSequence evaluates the same integral at each n in ns. The
// reference is exact when given, else the function's antiderivative when it
// knows one, else ReferenceIntegral.
func ConvergenceSequence(fn catalog.Evaluable, a, b float64, method Method, ns []int, exact *float64) (Convergence, error) {
	const op = "integral.ConvergenceSequence"
	if len(ns) == 0 {
		ns = DefaultPartitions
	}
	m, err := ParseMethod(string(method))
	if err != nil {
		return Convergence{}, err
	}
	for _, n := range ns {
		if _, err := validate(op, fn, a, b, n, m); err != nil {
			return Convergence{}, err
		}
	}

	conv := Convergence{Method: m, ReferenceKind: ReferenceExact}
	switch {
	case exact != nil:
		conv.Reference = *exact
	default:
		ref, ok := 0.0, false
		if ex, isEx := fn.(exactIntegrator); isEx {
			ref, ok = ex.ExactIntegral(a, b)
		}
		if !ok {
			if ref, err = ReferenceIntegral(fn, a, b); err != nil {
				return Convergence{}, err
			}
			conv.ReferenceKind = ReferenceNumerical
		}
		conv.Reference = ref
	}

	conv.Points = make([]ConvergencePoint, 0, len(ns))
	for _, n := range ns {
		r, err := riemann(fn, a, b, n, m)
		if err != nil {
			return Convergence{}, err
		}
		conv.Points = append(conv.Points, ConvergencePoint{
			N:     n,
			Value: r.Value,
			Error: math.Abs(r.Value - conv.Reference),
		})
	}
	return conv, nil
}
