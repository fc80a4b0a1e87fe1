package derivative

import (
	"math"
	"sort"

	smerror "github.com/Cal-ly/SnakeMath-sub002/foundation/core/error"
	"github.com/Cal-ly/SnakeMath-sub002/foundation/utils/mathx"
	"github.com/Cal-ly/SnakeMath-sub002/pkg/engine/catalog"
)

// Kind labels a critical point
type Kind string

// Kinds
const (
	Minimum    Kind = "minimum"
	Maximum    Kind = "maximum"
	Inflection Kind = "inflection"
	None       Kind = "none"
)

// Scan settings
const (
	DefaultSamples = 200
	MaxSamples     = 10000

	// CriticalSlopeTol is how close to zero f'(x) must be for x to count
	// as critical.
	CriticalSlopeTol = 1e-6

	dedupTol     = 1e-7
	neighborStep = 1e-4
)

// CriticalPoint is a point where f' vanishes
type CriticalPoint struct {
	X     float64 `json:"x" yaml:"x"`
	Y     float64 `json:"y" yaml:"y"`
	Slope float64 `json:"slope" yaml:"slope"`
	Kind  Kind    `json:"kind" yaml:"kind"`
}

func signOf(v, tol float64) int {
	switch {
	case v > tol:
		return 1
	case v < -tol:
		return -1
	}
	return 0
}

// ClassifyCriticalPoint labels x from the sign of f' just left and right of it.
// Points where f' is not approximately zero are None.
func ClassifyCriticalPoint(fn catalog.Evaluable, x float64) (CriticalPoint, error) {
	const op = "derivative.ClassifyCriticalPoint"
	slope, err := Slope(fn, x)
	if err != nil {
		return CriticalPoint{}, err
	}
	y, ok := catalog.SafeEval(fn, x)
	if !ok {
		return CriticalPoint{}, smerror.Undefined(op, "function undefined at x").WithDetail("x", x)
	}

	cp := CriticalPoint{X: x, Y: y, Slope: slope, Kind: None}
	if math.Abs(slope) > CriticalSlopeTol {
		return cp, nil
	}

	delta := neighborStep * math.Max(1, math.Abs(x))
	left, err := Slope(fn, x-delta)
	if err != nil {
		return CriticalPoint{}, err
	}
	right, err := Slope(fn, x+delta)
	if err != nil {
		return CriticalPoint{}, err
	}

	tol := mathx.GeometricAbsTol * math.Max(1, math.Abs(y))
	l, r := signOf(left, tol), signOf(right, tol)
	switch {
	case l < 0 && r > 0:
		cp.Kind = Minimum
	case l > 0 && r < 0:
		cp.Kind = Maximum
	case l != 0 && l == r:
		cp.Kind = Inflection
	}
	return cp, nil
}

func checkInterval(op string, fn catalog.Evaluable, a, b float64, samples int) (int, error) {
	if fn == nil {
		return 0, smerror.InvalidInput(op, "function is nil")
	}
	if !mathx.IsFinite(a) || !mathx.IsFinite(b) || a >= b {
		return 0, smerror.Domain(op, "interval must be finite with a < b").
			WithDetail("a", a).
			WithDetail("b", b)
	}
	if samples <= 0 {
		samples = DefaultSamples
	}
	if samples < 2 || samples > MaxSamples {
		return 0, smerror.Domain(op, "samples out of range").
			WithDetail("samples", samples).
			WithDetail("max", MaxSamples)
	}
	return samples, nil
}

// bracket is an interval whose endpoints have opposite signs of g
type bracket struct{ lo, hi float64 }

// scan samples g on a grid over [a, b]. It returns the grid points where g is
// zero within tol and the brackets around each sign change, skipping
// over zero runs and undefined samples.
func scan(g func(float64) (float64, bool), a, b float64, samples int, tol func(float64) float64) (zeros []float64, brackets []bracket) {
	lastSign, lastX := 0, 0.0
	for _, x := range mathx.Linspace(a, b, samples+1) {
		v, ok := g(x)
		if !ok {
			lastSign = 0
			continue
		}
		s := signOf(v, tol(x))
		if s == 0 {
			zeros = append(zeros, x)
			continue
		}
		if lastSign != 0 && s != lastSign {
			brackets = append(brackets, bracket{lastX, x})
		}
		lastSign, lastX = s, x
	}
	return zeros, brackets
}

// refine bisects each bracket of g to a root
func refine(g func(float64) (float64, bool), brackets []bracket) []float64 {
	f := func(x float64) float64 {
		v, ok := g(x)
		if !ok {
			return math.NaN()
		}
		return v
	}
	roots := make([]float64, 0, len(brackets))
	for _, br := range brackets {
		x, err := mathx.Bisect(f, br.lo, br.hi, 0, mathx.RootTol, mathx.MaxRootIterations)
		if err == nil {
			roots = append(roots, x)
		}
	}
	return roots
}

func dedup(xs []float64) []float64 {
	sort.Float64s(xs)
	out := xs[:0]
	for _, x := range xs {
		if len(out) > 0 && math.Abs(x-out[len(out)-1]) <= dedupTol*math.Max(1, math.Abs(x)) {
			continue
		}
		out = append(out, x)
	}
	return out
}

// FindCriticalPoints scans [a, b] for sign changes and zeros of f', refines
// each by bisection and returns the classified extrema and stationary
// inflections in ascending order. samples <= 0 means DefaultSamples.
func FindCriticalPoints(fn catalog.Evaluable, a, b float64, samples int) ([]CriticalPoint, error) {
	samples, err := checkInterval("derivative.FindCriticalPoints", fn, a, b, samples)
	if err != nil {
		return nil, err
	}

	fprime := func(x float64) (float64, bool) {
		s, err := Slope(fn, x)
		return s, err == nil
	}
	zeros, brackets := scan(fprime, a, b, samples, func(float64) float64 { return CriticalSlopeTol })
	candidates := dedup(append(zeros, refine(fprime, brackets)...))

	var out []CriticalPoint
	for _, x := range candidates {
		cp, err := ClassifyCriticalPoint(fn, x)
		if err != nil || cp.Kind == None {
			continue
		}
		out = append(out, cp)
	}
	return out, nil
}

// FindInflectionPoints scans [a, b] for sign changes of f''. Points are
// returned with Kind Inflection and the first-derivative slope.
func FindInflectionPoints(fn catalog.Evaluable, a, b float64, samples int) ([]CriticalPoint, error) {
	samples, err := checkInterval("derivative.FindInflectionPoints", fn, a, b, samples)
	if err != nil {
		return nil, err
	}

	second := func(x float64) (float64, bool) {
		v, err := SecondDerivative(fn, x, 0)
		return v, err == nil
	}
	// second differences carry rounding noise proportional to |f|/h²
	noise := func(x float64) float64 {
		y, _ := catalog.SafeEval(fn, x)
		return 1e-6 * math.Max(1, math.Abs(y))
	}
	_, brackets := scan(second, a, b, samples, noise)

	var out []CriticalPoint
	for _, x := range dedup(refine(second, brackets)) {
		y, okY := catalog.SafeEval(fn, x)
		slope, err := Slope(fn, x)
		if !okY || err != nil {
			continue
		}
		out = append(out, CriticalPoint{X: x, Y: y, Slope: slope, Kind: Inflection})
	}
	return out, nil
}
