package regression

import (
	"math"

	smerror "github.com/Cal-ly/SnakeMath-sub002/foundation/core/error"
	"github.com/Cal-ly/SnakeMath-sub002/foundation/utils/mathx"
)

// parameters in a simple linear model
const parameters = 2

// leverageTol treats hᵢ within this of 1 as full leverage
const leverageTol = 1e-12

// Leverage is hᵢ = 1/n + (xᵢ − x̄)²/Sxx
func Leverage(x []float64, i int) (float64, error) {
	const op = "regression.Leverage"
	if i < 0 || i >= len(x) {
		return 0, smerror.InvalidInput(op, "index out of range").
			WithDetail("index", i).
			WithDetail("n", len(x))
	}
	if len(x) < 2 {
		return 0, smerror.InvalidInput(op, "need at least two points").WithDetail("n", len(x))
	}
	return leverage(op, x, mathx.MustMean(x), i)
}

func leverage(op string, x []float64, meanX float64, i int) (float64, error) {
	if mathx.IsConstant(x) {
		return 0, smerror.Undefined(op, "x has zero variance")
	}
	var sxx float64
	for _, v := range x {
		sxx += (v - meanX) * (v - meanX)
	}
	if sxx == 0 {
		return 0, smerror.Undefined(op, "x has zero variance")
	}
	d := x[i] - meanX
	return 1/float64(len(x)) + d*d/sxx, nil
}

// cook is Dᵢ = eᵢ²/(p·s²) · hᵢ/(1−hᵢ)². A point with full leverage
// determines the fit alone and gets +Inf.
func cook(e, s2, h float64) float64 {
	switch {
	case h >= 1-leverageTol:
		return math.Inf(1)
	case s2 == 0:
		return 0
	}
	return e * e / (parameters * s2) * h / ((1 - h) * (1 - h))
}

// CooksDistance measures how much the fit moves when point i is left out
func CooksDistance(x, y []float64, i int) (float64, error) {
	const op = "regression.CooksDistance"
	if i < 0 || i >= len(x) {
		return 0, smerror.InvalidInput(op, "index out of range").
			WithDetail("index", i).
			WithDetail("n", len(x))
	}
	ds, err := cooksDistances(op, x, y)
	if err != nil {
		return 0, err
	}
	return ds[i], nil
}

// CooksDistances returns Dᵢ for every point
func CooksDistances(x, y []float64) ([]float64, error) {
	return cooksDistances("regression.CooksDistances", x, y)
}

func cooksDistances(op string, x, y []float64) ([]float64, error) {
	m, err := LinearRegression(x, y)
	if err != nil {
		return nil, smerror.Wrap(err, "fit for influence").WithOperation(op)
	}
	if m.N <= parameters {
		return nil, smerror.Undefined(op, "need more than two points").WithDetail("n", m.N)
	}
	s2 := sse(m.Residuals) / float64(m.N-parameters)
	out := make([]float64, m.N)
	for i := range out {
		h, err := leverage(op, x, m.MeanX, i)
		if err != nil {
			return nil, err
		}
		out[i] = cook(m.Residuals[i], s2, h)
	}
	return out, nil
}

// Influence describes one point flagged by InfluentialPoints
type Influence struct {
	Index    int     `json:"index" yaml:"index"`
	X        float64 `json:"x" yaml:"x"`
	Y        float64 `json:"y" yaml:"y"`
	Leverage float64 `json:"leverage" yaml:"leverage"`
	Cook     float64 `json:"cook" yaml:"cook"`
}

// InfluentialThreshold is the 4/n cut-off for Cook's distance
func InfluentialThreshold(n int) float64 {
	return 4 / float64(n)
}

// InfluentialPoints returns the points with Dᵢ > 4/n in index order
func InfluentialPoints(x, y []float64) ([]Influence, error) {
	const op = "regression.InfluentialPoints"
	ds, err := cooksDistances(op, x, y)
	if err != nil {
		return nil, err
	}
	meanX := mathx.MustMean(x)
	cut := InfluentialThreshold(len(x))
	var out []Influence
	for i, d := range ds {
		if d <= cut {
			continue
		}
		h, _ := leverage(op, x, meanX, i)
		out = append(out, Influence{Index: i, X: x[i], Y: y[i], Leverage: h, Cook: d})
	}
	return out, nil
}
