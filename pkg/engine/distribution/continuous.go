package distribution

import (
	"math"
	"math/rand/v2"

	"github.com/aclements/go-moremath/stats"

	"github.com/Cal-ly/SnakeMath-sub002/foundation/core/validation"
	"github.com/Cal-ly/SnakeMath-sub002/foundation/utils/mathx"
)

// Exponential is the waiting time between events at rate Lambda
type Exponential struct {
	Lambda float64
}

// NewExponential validates lambda > 0
func NewExponential(lambda float64) (*Exponential, error) {
	err := validation.NewParamCheck("distribution.NewExponential").
		Field("lambda", lambda, validation.Finite(), validation.Positive()).
		Err()
	if err != nil {
		return nil, err
	}
	return &Exponential{Lambda: lambda}, nil
}

func (d Exponential) Family() Family    { return FamilyExponential }
func (d Exponential) Discrete() bool    { return false }
func (d Exponential) Mean() float64     { return 1 / d.Lambda }
func (d Exponential) Variance() float64 { return 1 / (d.Lambda * d.Lambda) }

func (d Exponential) Params() map[string]float64 {
	return map[string]float64{"lambda": d.Lambda}
}

func (d Exponential) Support() Support {
	return Support{Lower: 0, Upper: math.Inf(1)}
}

func (d Exponential) PDF(x float64) float64 {
	if x < 0 {
		return 0
	}
	return d.Lambda * math.Exp(-d.Lambda*x)
}

func (d Exponential) Density(x float64) float64 { return d.PDF(x) }

func (d Exponential) CDF(x float64) float64 {
	if x <= 0 {
		return 0
	}
	return -math.Expm1(-d.Lambda * x)
}

// Quantile is −ln(1−p)/λ. p = 1 is a DOMAIN_ERROR.
func (d Exponential) Quantile(p float64) (float64, error) {
	const op = "distribution.Exponential.Quantile"
	if err := checkProbability(op, p); err != nil {
		return 0, err
	}
	if p == 1 {
		return 0, unboundedTail(op, p)
	}
	return -math.Log1p(-p) / d.Lambda, nil
}

func (d Exponential) Sample(n int, rng *rand.Rand) ([]float64, error) {
	if err := checkSampleArgs("distribution.Exponential.Sample", n, rng); err != nil {
		return nil, err
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = rng.ExpFloat64() / d.Lambda
	}
	return out, nil
}

// Uniform is constant density on [A, B]
type Uniform struct {
	A float64
	B float64
}

// NewUniform validates finite bounds with a < b
func NewUniform(a, b float64) (*Uniform, error) {
	err := validation.NewParamCheck("distribution.NewUniform").
		Field("a", a, validation.Finite()).
		Field("b", b, validation.Finite(), validation.Custom("must be greater than a", func(v float64) bool { return v > a })).
		Err()
	if err != nil {
		return nil, err
	}
	return &Uniform{A: a, B: b}, nil
}

func (d Uniform) Family() Family { return FamilyUniform }
func (d Uniform) Discrete() bool { return false }
func (d Uniform) Mean() float64  { return (d.A + d.B) / 2 }

func (d Uniform) Variance() float64 {
	w := d.B - d.A
	return w * w / 12
}

func (d Uniform) Params() map[string]float64 {
	return map[string]float64{"a": d.A, "b": d.B}
}

func (d Uniform) Support() Support { return Support{Lower: d.A, Upper: d.B} }

func (d Uniform) PDF(x float64) float64 {
	if x < d.A || x > d.B {
		return 0
	}
	return 1 / (d.B - d.A)
}

func (d Uniform) Density(x float64) float64 { return d.PDF(x) }

func (d Uniform) CDF(x float64) float64 {
	return mathx.Clamp((x-d.A)/(d.B-d.A), 0, 1)
}

func (d Uniform) Quantile(p float64) (float64, error) {
	if err := checkProbability("distribution.Uniform.Quantile", p); err != nil {
		return 0, err
	}
	return d.A + p*(d.B-d.A), nil
}

func (d Uniform) Sample(n int, rng *rand.Rand) ([]float64, error) {
	if err := checkSampleArgs("distribution.Uniform.Sample", n, rng); err != nil {
		return nil, err
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = d.A + rng.Float64()*(d.B-d.A)
	}
	return out, nil
}

// StudentT is Student's t distribution with DF degrees of freedom, the
// reference distribution of the t tests.
type StudentT struct {
	DF float64
}

// NewStudentT validates df > 0
func NewStudentT(df float64) (*StudentT, error) {
	err := validation.NewParamCheck("distribution.NewStudentT").
		Field("df", df, validation.Finite(), validation.Positive()).
		Err()
	if err != nil {
		return nil, err
	}
	return &StudentT{DF: df}, nil
}

func (d StudentT) Family() Family { return FamilyStudentT }
func (d StudentT) Discrete() bool { return false }

// Mean is 0, the center of symmetry; the mean proper exists only for DF > 1.
func (d StudentT) Mean() float64 { return 0 }

// Variance is DF/(DF−2), infinite for DF <= 2
func (d StudentT) Variance() float64 {
	if d.DF <= 2 {
		return math.Inf(1)
	}
	return d.DF / (d.DF - 2)
}

func (d StudentT) Params() map[string]float64 {
	return map[string]float64{"df": d.DF}
}

func (d StudentT) Support() Support {
	return Support{Lower: math.Inf(-1), Upper: math.Inf(1)}
}

func (d StudentT) dist() stats.TDist { return stats.TDist{V: d.DF} }

func (d StudentT) PDF(x float64) float64     { return d.dist().PDF(x) }
func (d StudentT) Density(x float64) float64 { return d.PDF(x) }

func (d StudentT) CDF(x float64) float64 {
	switch {
	case math.IsInf(x, -1):
		return 0
	case math.IsInf(x, 1):
		return 1
	case x == 0:
		return 0.5
	}
	return d.dist().CDF(x)
}

// Quantile brackets the root by doubling and bisects, using symmetry for
// the lower half. p of 0 or 1 is a DOMAIN_ERROR.
func (d StudentT) Quantile(p float64) (float64, error) {
	const op = "distribution.StudentT.Quantile"
	if err := checkProbability(op, p); err != nil {
		return 0, err
	}
	switch {
	case p == 0 || p == 1:
		return 0, unboundedTail(op, p)
	case p == 0.5:
		return 0, nil
	case p < 0.5:
		q, err := d.Quantile(1 - p)
		return -q, err
	}

	hi := 1.0
	for d.CDF(hi) < p {
		hi *= 2
		if hi > 1e300 {
			return 0, unboundedTail(op, p)
		}
	}
	return mathx.Bisect(d.CDF, 0, hi, p, mathx.RootTol*math.Max(1, hi), mathx.MaxRootIterations)
}

// Sample uses inverse transform sampling
func (d StudentT) Sample(n int, rng *rand.Rand) ([]float64, error) {
	if err := checkSampleArgs("distribution.StudentT.Sample", n, rng); err != nil {
		return nil, err
	}
	out := make([]float64, n)
	for i := range out {
		q, err := d.Quantile(uniformOpen(rng))
		if err != nil {
			return nil, err
		}
		out[i] = q
	}
	return out, nil
}
