// ============================================================================
// SnakeMath - Numerical Mathematics Engine
// ============================================================================
//
// Package:     regression
// Description: Pearson correlation, ordinary least squares, residuals,
//              leverage and Cook's distance
// Created:     2026-03-12
// License:     MIT
// ============================================================================

package regression

import (
	"fmt"
	"math"

	smerror "github.com/Cal-ly/SnakeMath-sub002/foundation/core/error"
	"github.com/Cal-ly/SnakeMath-sub002/foundation/utils/mathx"
)

// moments holds the centered sums of a paired sample
type moments struct {
	n             int
	meanX, meanY  float64
	sxx, syy, sxy float64
}

// checkPair enforces equal lengths, n >= 2 and finite values
func checkPair(op string, x, y []float64) error {
	if len(x) != len(y) {
		return smerror.InvalidInput(op, "x and y must have the same length").
			WithDetail("len_x", len(x)).
			WithDetail("len_y", len(y))
	}
	if len(x) < 2 {
		return smerror.InvalidInput(op, "need at least two points").WithDetail("n", len(x))
	}
	for i := range x {
		if !mathx.IsFinite(x[i]) || !mathx.IsFinite(y[i]) {
			return smerror.Domain(op, "values must be finite").WithDetail("index", i)
		}
	}
	return nil
}

// centered sums the deviations. A constant series contributes exact zeros.
func centered(x, y []float64) moments {
	m := moments{n: len(x), meanX: mathx.MustMean(x), meanY: mathx.MustMean(y)}
	constX, constY := mathx.IsConstant(x), mathx.IsConstant(y)
	for i := range x {
		dx, dy := x[i]-m.meanX, y[i]-m.meanY
		if constX {
			dx = 0
		}
		if constY {
			dy = 0
		}
		m.sxx += dx * dx
		m.syy += dy * dy
		m.sxy += dx * dy
	}
	return m
}

// PearsonCorrelation returns r in [-1, 1]. A series with zero variance has
// no correlation and yields UNDEFINED_RESULT.
func PearsonCorrelation(x, y []float64) (float64, error) {
	const op = "regression.PearsonCorrelation"
	if err := checkPair(op, x, y); err != nil {
		return 0, err
	}
	m := centered(x, y)
	switch {
	case m.sxx == 0:
		return 0, smerror.Undefined(op, "x has zero variance")
	case m.syy == 0:
		return 0, smerror.Undefined(op, "y has zero variance")
	}
	return mathx.Clamp(m.sxy/math.Sqrt(m.sxx*m.syy), -1, 1), nil
}

// Model is a fitted least-squares line y = Intercept + Slope·x
type Model struct {
	Slope         float64   `json:"slope" yaml:"slope"`
	Intercept     float64   `json:"intercept" yaml:"intercept"`
	R             float64   `json:"r" yaml:"r"`
	RSquared      float64   `json:"r_squared" yaml:"r_squared"`
	StandardError float64   `json:"standard_error" yaml:"standard_error"`
	Residuals     []float64 `json:"residuals" yaml:"residuals"`
	N             int       `json:"n" yaml:"n"`
	MeanX         float64   `json:"mean_x" yaml:"mean_x"`
	MeanY         float64   `json:"mean_y" yaml:"mean_y"`
}

// Predict evaluates the fitted line at x
func (m Model) Predict(x float64) float64 {
	return m.Intercept + m.Slope*x
}

func (m Model) String() string {
	return fmt.Sprintf("y = %.4f + %.4f·x (r=%.4f, r²=%.4f, n=%d)", m.Intercept, m.Slope, m.R, m.RSquared, m.N)
}

// LinearRegression fits y on x by ordinary least squares. Constant x (a
// vertical line) is UNDEFINED_RESULT. Constant y gives r = r² = 0. With two
// points the standard error is reported as 0.
func LinearRegression(x, y []float64) (Model, error) {
	const op = "regression.LinearRegression"
	if err := checkPair(op, x, y); err != nil {
		return Model{}, err
	}
	mo := centered(x, y)
	if mo.sxx == 0 {
		return Model{}, smerror.Undefined(op, "x has zero variance, the line is vertical")
	}

	m := Model{N: mo.n, MeanX: mo.meanX, MeanY: mo.meanY}
	m.Slope = mo.sxy / mo.sxx
	m.Intercept = mo.meanY - m.Slope*mo.meanX
	if mo.syy > 0 {
		m.R = mathx.Clamp(mo.sxy/math.Sqrt(mo.sxx*mo.syy), -1, 1)
		m.RSquared = m.R * m.R
	}
	m.Residuals = CalculateResiduals(x, y, m.Slope, m.Intercept)
	if mo.n > 2 {
		m.StandardError, _ = StandardErrorOfEstimate(m.Residuals)
	}
	return m, nil
}

// CalculateResiduals returns yᵢ − (intercept + slope·xᵢ). Extra elements of
// the longer slice are ignored.
func CalculateResiduals(x, y []float64, slope, intercept float64) []float64 {
	n := min(len(x), len(y))
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		out[i] = y[i] - (intercept + slope*x[i])
	}
	return out
}

// StandardErrorOfEstimate is √(SSE/(n−2))
func StandardErrorOfEstimate(residuals []float64) (float64, error) {
	n := len(residuals)
	if n <= 2 {
		return 0, smerror.Undefined("regression.StandardErrorOfEstimate", "need more than two residuals").
			WithDetail("n", n)
	}
	return math.Sqrt(sse(residuals) / float64(n-2)), nil
}

func sse(residuals []float64) float64 {
	sq := make([]float64, len(residuals))
	for i, e := range residuals {
		sq[i] = e * e
	}
	return mathx.Sum(sq)
}
