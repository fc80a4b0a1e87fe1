package derivative

import (
	"math"

	smerror "github.com/Cal-ly/SnakeMath-sub002/foundation/core/error"
	"github.com/Cal-ly/SnakeMath-sub002/foundation/utils/mathx"
	"github.com/Cal-ly/SnakeMath-sub002/pkg/engine/catalog"
)

// DefaultSecantSteps are the shrinking h values of SecantSequence
var DefaultSecantSteps = []float64{1, 0.5, 0.1, 0.05, 0.01, 0.001}

// Line is a tangent or secant through (X0, Y0) and (X1, Y1)
type Line struct {
	X0        float64 `json:"x0" yaml:"x0"`
	Y0        float64 `json:"y0" yaml:"y0"`
	X1        float64 `json:"x1" yaml:"x1"`
	Y1        float64 `json:"y1" yaml:"y1"`
	Slope     float64 `json:"slope" yaml:"slope"`
	Intercept float64 `json:"intercept" yaml:"intercept"`
}

// At evaluates the line at x
func (l Line) At(x float64) float64 {
	return l.Slope*x + l.Intercept
}

func lineThrough(x0, y0, slope float64) Line {
	return Line{
		X0:        x0,
		Y0:        y0,
		X1:        x0 + 1,
		Y1:        y0 + slope,
		Slope:     slope,
		Intercept: y0 - slope*x0,
	}
}

// TangentLine returns the line through (x, f(x)) with the default numerical slope
func TangentLine(fn catalog.Evaluable, x float64) (Line, error) {
	return TangentLineWith(fn, x, Central, 0)
}

// TangentLineWith is TangentLine with an explicit stencil and step
func TangentLineWith(fn catalog.Evaluable, x float64, method Method, h float64) (Line, error) {
	const op = "derivative.TangentLine"
	d, err := EvaluateDerivative(fn, x, method, h)
	if err != nil {
		return Line{}, err
	}
	y, ok := catalog.SafeEval(fn, x)
	if !ok {
		return Line{}, smerror.Undefined(op, "function undefined at the point of tangency").
			WithDetail("x", x)
	}
	return lineThrough(x, y, d.Slope), nil
}

// SecantLine returns the line through (x, f(x)) and (x+h, f(x+h))
func SecantLine(fn catalog.Evaluable, x, h float64) (Line, error) {
	const op = "derivative.SecantLine"
	if err := checkInput(op, fn, x); err != nil {
		return Line{}, err
	}
	if h == 0 || !mathx.IsFinite(h) {
		return Line{}, smerror.Domain(op, "secant step must be finite and non-zero").
			WithDetail("h", h)
	}
	y0, ok0 := catalog.SafeEval(fn, x)
	y1, ok1 := catalog.SafeEval(fn, x+h)
	if !ok0 || !ok1 {
		return Line{}, smerror.Undefined(op, "function undefined at a secant endpoint").
			WithDetail("x", x).
			WithDetail("h", h)
	}
	slope := (y1 - y0) / h
	return Line{
		X0:        x,
		Y0:        y0,
		X1:        x + h,
		Y1:        y1,
		Slope:     slope,
		Intercept: y0 - slope*x,
	}, nil
}

// Secant is one step of SecantSequence
type Secant struct {
	H     float64 `json:"h" yaml:"h"`
	Line  Line    `json:"line" yaml:"line"`
	Error float64 `json:"error" yaml:"error"`
}

// SecantSequence builds secants at DefaultSecantSteps, each with its slope
// error against the tangent slope. Steps whose endpoint leaves the domain are
// skipped.
func SecantSequence(fn catalog.Evaluable, x float64) ([]Secant, error) {
	return SecantSequenceWith(fn, x, DefaultSecantSteps)
}

// SecantSequenceWith is SecantSequence with custom steps
func SecantSequenceWith(fn catalog.Evaluable, x float64, steps []float64) ([]Secant, error) {
	tangent, err := EvaluateDerivative(fn, x, Central, 0)
	if err != nil {
		return nil, err
	}
	out := make([]Secant, 0, len(steps))
	for _, h := range steps {
		line, err := SecantLine(fn, x, h)
		if smerror.IsUndefined(err) {
			continue
		}
		if err != nil {
			return nil, err
		}
		out = append(out, Secant{H: h, Line: line, Error: math.Abs(line.Slope - tangent.Slope)})
	}
	return out, nil
}
