// ============================================================================
// SnakeMath - Numerical Mathematics Engine
// ============================================================================
//
// Package:     catalog
// Description: Built-in function presets
// Created:     2026-03-06
// License:     MIT
// ============================================================================

package catalog

import "math"

var (
	allTags        = []Tag{TagLimits, TagContinuity, TagDerivatives, TagIntegrals}
	smoothTags     = []Tag{TagLimits, TagDerivatives, TagIntegrals}
	continuityTags = []Tag{TagLimits, TagContinuity}
)

func nonZero(x float64) bool  { return x != 0 }
func positive(x float64) bool { return x > 0 }

func presets() []*Function {
	return []*Function{
		{
			ID:         "square",
			Name:       "Square",
			Notation:   "f(x) = x²",
			GoCode:     "func(x float64) float64 { return x * x }",
			Eval:       func(x float64) float64 { return x * x },
			Derivative: func(x float64) float64 { return 2 * x },
			Integral:   func(x float64) float64 { return x * x * x / 3 },
			InterestingPoints: []Point{
				{X: 0, Label: "minimum"},
				{X: 2, Label: "limit example"},
			},
			Tags: allTags,
		},
		{
			ID:                "cube",
			Name:              "Cube",
			Notation:          "f(x) = x³",
			GoCode:            "func(x float64) float64 { return x * x * x }",
			Eval:              func(x float64) float64 { return x * x * x },
			Derivative:        func(x float64) float64 { return 3 * x * x },
			Integral:          func(x float64) float64 { return x * x * x * x / 4 },
			InterestingPoints: []Point{{X: 0, Label: "inflection"}},
			Tags:              smoothTags,
		},
		{
			ID:         "linear",
			Name:       "Linear",
			Notation:   "f(x) = 2x + 1",
			GoCode:     "func(x float64) float64 { return 2*x + 1 }",
			Eval:       func(x float64) float64 { return 2*x + 1 },
			Derivative: func(float64) float64 { return 2 },
			Integral:   func(x float64) float64 { return x*x + x },
			Tags:       smoothTags,
		},
		{
			ID:         "sin",
			Name:       "Sine",
			Notation:   "f(x) = sin x",
			GoCode:     "math.Sin",
			Eval:       math.Sin,
			Derivative: math.Cos,
			Integral:   func(x float64) float64 { return -math.Cos(x) },
			InterestingPoints: []Point{
				{X: 0, Label: "zero"},
				{X: math.Pi / 2, Label: "maximum"},
			},
			Tags: smoothTags,
		},
		{
			ID:                "cos",
			Name:              "Cosine",
			Notation:          "f(x) = cos x",
			GoCode:            "math.Cos",
			Eval:              math.Cos,
			Derivative:        func(x float64) float64 { return -math.Sin(x) },
			Integral:          math.Sin,
			InterestingPoints: []Point{{X: 0, Label: "maximum"}},
			Tags:              smoothTags,
		},
		{
			ID:         "exp",
			Name:       "Exponential",
			Notation:   "f(x) = eˣ",
			GoCode:     "math.Exp",
			Eval:       math.Exp,
			Derivative: math.Exp,
			Integral:   math.Exp,
			Tags:       smoothTags,
		},
		{
			ID:         "ln",
			Name:       "Natural logarithm",
			Notation:   "f(x) = ln x",
			GoCode:     "math.Log",
			Eval:       math.Log,
			Derivative: func(x float64) float64 { return 1 / x },
			Integral:   func(x float64) float64 { return x*math.Log(x) - x },
			Domain:     positive,
			InterestingPoints: []Point{
				{X: 0, Label: "vertical asymptote"},
				{X: 1, Label: "zero"},
			},
			Tags: allTags,
		},
		{
			ID:                "reciprocal",
			Name:              "Reciprocal",
			Notation:          "f(x) = 1/x",
			GoCode:            "func(x float64) float64 { return 1 / x }",
			Eval:              func(x float64) float64 { return 1 / x },
			Derivative:        func(x float64) float64 { return -1 / (x * x) },
			Domain:            nonZero,
			InterestingPoints: []Point{{X: 0, Label: "infinite discontinuity"}},
			Tags:              []Tag{TagLimits, TagContinuity, TagDerivatives},
		},
		{
			ID:                "inverse-square",
			Name:              "Inverse square",
			Notation:          "f(x) = 1/x²",
			GoCode:            "func(x float64) float64 { return 1 / (x * x) }",
			Eval:              func(x float64) float64 { return 1 / (x * x) },
			Derivative:        func(x float64) float64 { return -2 / (x * x * x) },
			Domain:            nonZero,
			InterestingPoints: []Point{{X: 0, Label: "infinite discontinuity"}},
			Tags:              continuityTags,
		},
		{
			ID:                "sqrt",
			Name:              "Square root",
			Notation:          "f(x) = √x",
			GoCode:            "math.Sqrt",
			Eval:              math.Sqrt,
			Derivative:        func(x float64) float64 { return 0.5 / math.Sqrt(x) },
			Integral:          func(x float64) float64 { return 2.0 / 3.0 * x * math.Sqrt(x) },
			Domain:            func(x float64) bool { return x >= 0 },
			InterestingPoints: []Point{{X: 0, Label: "domain endpoint"}},
			Tags:              allTags,
		},
		{
			ID:       "abs",
			Name:     "Absolute value",
			Notation: "f(x) = |x|",
			GoCode:   "math.Abs",
			Eval:     math.Abs,
			Derivative: func(x float64) float64 {
				if x == 0 {
					return math.NaN()
				}
				return math.Copysign(1, x)
			},
			Integral:          func(x float64) float64 { return x * math.Abs(x) / 2 },
			InterestingPoints: []Point{{X: 0, Label: "corner"}},
			Tags:              allTags,
		},
		{
			ID:         "cubic",
			Name:       "Cubic",
			Notation:   "f(x) = x³ − 3x",
			GoCode:     "func(x float64) float64 { return x*x*x - 3*x }",
			Eval:       func(x float64) float64 { return x*x*x - 3*x },
			Derivative: func(x float64) float64 { return 3*x*x - 3 },
			Integral:   func(x float64) float64 { return x*x*x*x/4 - 1.5*x*x },
			InterestingPoints: []Point{
				{X: -1, Label: "local maximum"},
				{X: 0, Label: "inflection"},
				{X: 1, Label: "local minimum"},
			},
			Tags: smoothTags,
		},
		{
			ID:         "quartic",
			Name:       "Quartic",
			Notation:   "f(x) = x⁴ − 2x²",
			GoCode:     "func(x float64) float64 { return x*x*x*x - 2*x*x }",
			Eval:       func(x float64) float64 { return x*x*x*x - 2*x*x },
			Derivative: func(x float64) float64 { return 4*x*x*x - 4*x },
			Integral:   func(x float64) float64 { return x*x*x*x*x/5 - 2*x*x*x/3 },
			InterestingPoints: []Point{
				{X: -1, Label: "local minimum"},
				{X: 0, Label: "local maximum"},
				{X: 1, Label: "local minimum"},
			},
			Tags: smoothTags,
		},
		{
			ID:         "gaussian",
			Name:       "Gaussian",
			Notation:   "f(x) = e^(−x²)",
			GoCode:     "func(x float64) float64 { return math.Exp(-x * x) }",
			Eval:       func(x float64) float64 { return math.Exp(-x * x) },
			Derivative: func(x float64) float64 { return -2 * x * math.Exp(-x*x) },
			Integral:   func(x float64) float64 { return math.Sqrt(math.Pi) / 2 * math.Erf(x) },
			InterestingPoints: []Point{
				{X: 0, Label: "maximum"},
				{X: -1 / math.Sqrt2, Label: "inflection"},
				{X: 1 / math.Sqrt2, Label: "inflection"},
			},
			Tags: smoothTags,
		},
		{
			ID:                "removable",
			Name:              "Removable discontinuity",
			Notation:          "f(x) = (x² − 1)/(x − 1)",
			GoCode:            "func(x float64) float64 { return (x*x - 1) / (x - 1) }",
			Eval:              func(x float64) float64 { return (x*x - 1) / (x - 1) },
			Derivative:        func(float64) float64 { return 1 },
			Integral:          func(x float64) float64 { return x*x/2 + x },
			Domain:            func(x float64) bool { return x != 1 },
			InterestingPoints: []Point{{X: 1, Label: "hole"}},
			Tags:              allTags,
		},
		{
			ID:       "sinc",
			Name:     "Sinc",
			Notation: "f(x) = sin(x)/x",
			GoCode:   "func(x float64) float64 { return math.Sin(x) / x }",
			Eval:     func(x float64) float64 { return math.Sin(x) / x },
			Derivative: func(x float64) float64 {
				return (x*math.Cos(x) - math.Sin(x)) / (x * x)
			},
			Domain:            nonZero,
			InterestingPoints: []Point{{X: 0, Label: "hole"}},
			Tags:              continuityTags,
		},
		{
			ID:       "step",
			Name:     "Unit step",
			Notation: "f(x) = 0 for x < 0, 1 for x ≥ 0",
			GoCode:   "func(x float64) float64 { if x < 0 { return 0 }; return 1 }",
			Eval: func(x float64) float64 {
				if x < 0 {
					return 0
				}
				return 1
			},
			Integral:          func(x float64) float64 { return math.Max(x, 0) },
			InterestingPoints: []Point{{X: 0, Label: "jump"}},
			Tags:              []Tag{TagLimits, TagContinuity, TagIntegrals},
		},
		{
			ID:                "sin-inverse",
			Name:              "Topologist's sine",
			Notation:          "f(x) = sin(1/x)",
			GoCode:            "func(x float64) float64 { return math.Sin(1 / x) }",
			Eval:              func(x float64) float64 { return math.Sin(1 / x) },
			Domain:            nonZero,
			InterestingPoints: []Point{{X: 0, Label: "oscillation"}},
			Tags:              continuityTags,
		},
		{
			ID:       "floor",
			Name:     "Floor",
			Notation: "f(x) = ⌊x⌋",
			GoCode:   "math.Floor",
			Eval:     math.Floor,
			InterestingPoints: []Point{
				{X: 0, Label: "jump"},
				{X: 1, Label: "jump"},
			},
			Tags: []Tag{TagLimits, TagContinuity, TagIntegrals},
		},
	}
}
