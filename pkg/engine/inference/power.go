package inference

import (
	"math"

	smerror "github.com/Cal-ly/SnakeMath-sub002/foundation/core/error"
	"github.com/Cal-ly/SnakeMath-sub002/foundation/core/validation"
	"github.com/Cal-ly/SnakeMath-sub002/pkg/engine/distribution"
)

// Power is the probability of rejecting H0 when the standardized effect is
// effect, using the one-sample z approximation with noncentrality d·√n.
func Power(effect float64, n int, alpha float64, alt Alternative) (float64, error) {
	const op = "inference.Power"
	if err := checkPower(op, effect, n, alpha, alt); err != nil {
		return 0, err
	}
	return powerAt(effect*math.Sqrt(float64(n)), alpha, alt)
}

// PowerTwoSample is Power for two equal groups of nPerGroup, noncentrality d·√(n/2)
func PowerTwoSample(effect float64, nPerGroup int, alpha float64, alt Alternative) (float64, error) {
	const op = "inference.PowerTwoSample"
	if err := checkPower(op, effect, nPerGroup, alpha, alt); err != nil {
		return 0, err
	}
	return powerAt(effect*math.Sqrt(float64(nPerGroup)/2), alpha, alt)
}

func checkPower(op string, effect float64, n int, alpha float64, alt Alternative) error {
	if err := checkAlpha(op, alpha, alt); err != nil {
		return err
	}
	return validation.NewParamCheck(op).
		Field("effect", effect, validation.Finite()).
		Field("n", n, validation.AtLeast(1)).
		Err()
}

func powerAt(delta, alpha float64, alt Alternative) (float64, error) {
	phi := distribution.StandardNormal.CDF
	switch alt {
	case Greater:
		z, err := distribution.StandardNormal.Quantile(1 - alpha)
		if err != nil {
			return 0, err
		}
		return phi(delta - z), nil
	case Less:
		z, err := distribution.StandardNormal.Quantile(1 - alpha)
		if err != nil {
			return 0, err
		}
		return phi(-delta - z), nil
	default:
		z, err := distribution.StandardNormal.Quantile(1 - alpha/2)
		if err != nil {
			return 0, err
		}
		return phi(delta-z) + phi(-delta-z), nil
	}
}

// RequiredSampleSize is the smallest n reaching the target power in the
// one-sample z approximation, n = ⌈((z_α + z_β)/d)²⌉.
func RequiredSampleSize(effect, alpha, power float64, alt Alternative) (int, error) {
	const op = "inference.RequiredSampleSize"
	if err := checkAlpha(op, alpha, alt); err != nil {
		return 0, err
	}
	err := validation.NewParamCheck(op).
		Field("effect", effect, validation.Finite(), validation.Custom("effect must be non-zero", func(v float64) bool { return v != 0 })).
		Field("power", power, validation.OpenUnit()).
		Err()
	if err != nil {
		return 0, err
	}
	tail := 1 - alpha
	if alt == TwoSided {
		tail = 1 - alpha/2
	}
	za, err := distribution.StandardNormal.Quantile(tail)
	if err != nil {
		return 0, err
	}
	zb, err := distribution.StandardNormal.Quantile(power)
	if err != nil {
		return 0, err
	}
	n := math.Pow((za+zb)/effect, 2)
	return int(math.Ceil(n - 1e-9)), nil
}

// Magnitude is the conventional reading of an effect size
type Magnitude string

const (
	Negligible Magnitude = "negligible"
	Small      Magnitude = "small"
	Medium     Magnitude = "medium"
	Large      Magnitude = "large"
)

// InterpretEffect applies the 0.2 / 0.5 / 0.8 thresholds to |effect|
func InterpretEffect(effect float64) Magnitude {
	switch a := math.Abs(effect); {
	case a < 0.2:
		return Negligible
	case a < 0.5:
		return Small
	case a < 0.8:
		return Medium
	default:
		return Large
	}
}

// CohensD is the standardized mean difference with pooled SD
func CohensD(m1, s1 float64, n1 int, m2, s2 float64, n2 int) (float64, error) {
	const op = "inference.CohensD"
	err := validation.NewParamCheck(op).
		Field("m1", m1, validation.Finite()).
		Field("s1", s1, validation.Finite(), validation.NonNegative()).
		Field("n1", n1, validation.AtLeast(1)).
		Field("m2", m2, validation.Finite()).
		Field("s2", s2, validation.Finite(), validation.NonNegative()).
		Field("n2", n2, validation.AtLeast(1)).
		Err()
	if err != nil {
		return 0, err
	}
	if n1+n2 <= 2 {
		return 0, smerror.Undefined(op, "pooled SD needs more than two observations")
	}
	pooled := math.Sqrt((float64(n1-1)*s1*s1 + float64(n2-1)*s2*s2) / float64(n1+n2-2))
	if pooled == 0 {
		return 0, smerror.Undefined(op, "pooled SD is zero")
	}
	return (m1 - m2) / pooled, nil
}

// CohensH is the arcsine-transformed difference of two proportions
func CohensH(p1, p2 float64) (float64, error) {
	err := validation.NewParamCheck("inference.CohensH").
		Field("p1", p1, validation.Probability()).
		Field("p2", p2, validation.Probability()).
		Err()
	if err != nil {
		return 0, err
	}
	return 2*math.Asin(math.Sqrt(p1)) - 2*math.Asin(math.Sqrt(p2)), nil
}

// Effect is a computed effect size with its reading
type Effect struct {
	Measure   string    `json:"measure" yaml:"measure"`
	Value     float64   `json:"value" yaml:"value"`
	Magnitude Magnitude `json:"magnitude" yaml:"magnitude"`
}

// Groups describes two groups to compare. Implemented by MeanGroups and
// ProportionGroups.
type Groups interface {
	effect() (Effect, error)
}

// MeanGroups are two groups summarized by mean, SD and size
type MeanGroups struct {
	Mean1, SD1 float64
	N1         int
	Mean2, SD2 float64
	N2         int
}

func (g MeanGroups) effect() (Effect, error) {
	d, err := CohensD(g.Mean1, g.SD1, g.N1, g.Mean2, g.SD2, g.N2)
	return Effect{Measure: "cohen-d", Value: d, Magnitude: InterpretEffect(d)}, err
}

// ProportionGroups are two groups summarized by a proportion
type ProportionGroups struct {
	P1, P2 float64
}

func (g ProportionGroups) effect() (Effect, error) {
	h, err := CohensH(g.P1, g.P2)
	return Effect{Measure: "cohen-h", Value: h, Magnitude: InterpretEffect(h)}, err
}

// EffectSize picks Cohen's d or h from the kind of groups
func EffectSize(g Groups) (Effect, error) {
	if g == nil {
		return Effect{}, smerror.InvalidInput("inference.EffectSize", "groups are nil")
	}
	e, err := g.effect()
	if err != nil {
		return Effect{}, err
	}
	return e, nil
}
