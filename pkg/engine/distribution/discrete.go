package distribution

import (
	"math"
	"math/rand/v2"
	"sort"

	smerror "github.com/Cal-ly/SnakeMath-sub002/foundation/core/error"
	"github.com/Cal-ly/SnakeMath-sub002/foundation/core/validation"
)

// Parameter caps that keep CDF summation bounded
const (
	MaxTrials = 1_000_000
	MaxLambda = 1_000_000
)

func lgamma(x float64) float64 {
	v, _ := math.Lgamma(x)
	return v
}

// densityAt returns the PMF at x when x is a whole number and 0 otherwise
func densityAt(pmf func(int) float64, x float64) float64 {
	if x != math.Trunc(x) || math.Abs(x) > math.MaxInt32 {
		return 0
	}
	return pmf(int(x))
}

// cdfUpTo sums pmf(0..k) and clamps round-off to 1. Quantile searches
// accumulate in the same order so the two always agree.
func cdfUpTo(pmf func(int) float64, k int) float64 {
	acc := 0.0
	for i := 0; i <= k; i++ {
		acc += pmf(i)
	}
	return math.Min(1, acc)
}

// sampleTable draws n values by binary search in a cumulative table
func sampleTable(cum []float64, n int, rng *rand.Rand) []float64 {
	out := make([]float64, n)
	last := len(cum) - 1
	for i := range out {
		u := rng.Float64()
		k := sort.Search(len(cum), func(j int) bool { return cum[j] > u })
		if k > last {
			k = last
		}
		out[i] = float64(k)
	}
	return out
}

// Binomial counts successes in N independent trials with probability P
type Binomial struct {
	N int
	P float64
}

// NewBinomial validates 0 <= n <= MaxTrials and p in [0, 1]
func NewBinomial(n int, p float64) (*Binomial, error) {
	err := validation.NewParamCheck("distribution.NewBinomial").
		Field("n", n, validation.Range(0, MaxTrials)).
		Field("p", p, validation.Probability()).
		Err()
	if err != nil {
		return nil, err
	}
	return &Binomial{N: n, P: p}, nil
}

func (d Binomial) Family() Family { return FamilyBinomial }
func (d Binomial) Discrete() bool { return true }
func (d Binomial) Mean() float64  { return float64(d.N) * d.P }

func (d Binomial) Params() map[string]float64 {
	return map[string]float64{"n": float64(d.N), "p": d.P}
}

func (d Binomial) Support() Support {
	return Support{Lower: 0, Upper: float64(d.N), Discrete: true}
}

func (d Binomial) Variance() float64 { return float64(d.N) * d.P * (1 - d.P) }

// PMF is evaluated in log space so large N does not overflow
func (d Binomial) PMF(k int) float64 {
	if k < 0 || k > d.N {
		return 0
	}
	switch d.P {
	case 0:
		if k == 0 {
			return 1
		}
		return 0
	case 1:
		if k == d.N {
			return 1
		}
		return 0
	}
	n, kf := float64(d.N), float64(k)
	logC := lgamma(n+1) - lgamma(kf+1) - lgamma(n-kf+1)
	return math.Exp(logC + kf*math.Log(d.P) + (n-kf)*math.Log1p(-d.P))
}

func (d Binomial) Density(x float64) float64 { return densityAt(d.PMF, x) }

func (d Binomial) CDF(x float64) float64 {
	switch {
	case math.IsNaN(x):
		return math.NaN()
	case x < 0:
		return 0
	case x >= float64(d.N):
		return 1
	}
	return cdfUpTo(d.PMF, int(math.Floor(x)))
}

// Quantile returns the smallest k with CDF(k) >= p
func (d Binomial) Quantile(p float64) (float64, error) {
	if err := checkProbability("distribution.Binomial.Quantile", p); err != nil {
		return 0, err
	}
	cum := 0.0
	for k := 0; k < d.N; k++ {
		cum += d.PMF(k)
		if math.Min(1, cum) >= p {
			return float64(k), nil
		}
	}
	return float64(d.N), nil
}

func (d Binomial) Sample(n int, rng *rand.Rand) ([]float64, error) {
	if err := checkSampleArgs("distribution.Binomial.Sample", n, rng); err != nil {
		return nil, err
	}
	cum := make([]float64, d.N+1)
	acc := 0.0
	for k := range cum {
		acc += d.PMF(k)
		cum[k] = acc
	}
	cum[d.N] = 1
	return sampleTable(cum, n, rng), nil
}

// Poisson counts events at rate Lambda
type Poisson struct {
	Lambda float64
}

// NewPoisson validates 0 < lambda <= MaxLambda
func NewPoisson(lambda float64) (*Poisson, error) {
	err := validation.NewParamCheck("distribution.NewPoisson").
		Field("lambda", lambda, validation.Finite(), validation.Positive(), validation.AtMost(MaxLambda)).
		Err()
	if err != nil {
		return nil, err
	}
	return &Poisson{Lambda: lambda}, nil
}

func (d Poisson) Family() Family    { return FamilyPoisson }
func (d Poisson) Discrete() bool    { return true }
func (d Poisson) Mean() float64     { return d.Lambda }
func (d Poisson) Variance() float64 { return d.Lambda }

func (d Poisson) Params() map[string]float64 {
	return map[string]float64{"lambda": d.Lambda}
}

func (d Poisson) Support() Support {
	return Support{Lower: 0, Upper: math.Inf(1), Discrete: true}
}

// PMF is λᵏe^(−λ)/k! computed in log space
func (d Poisson) PMF(k int) float64 {
	if k < 0 {
		return 0
	}
	kf := float64(k)
	return math.Exp(kf*math.Log(d.Lambda) - d.Lambda - lgamma(kf+1))
}

func (d Poisson) Density(x float64) float64 { return densityAt(d.PMF, x) }

func (d Poisson) CDF(x float64) float64 {
	switch {
	case math.IsNaN(x):
		return math.NaN()
	case x < 0:
		return 0
	case x > d.tailLimit():
		return 1
	}
	return cdfUpTo(d.PMF, int(math.Floor(x)))
}

// tailLimit is a k beyond which the remaining mass is below double precision
func (d Poisson) tailLimit() float64 {
	return math.Ceil(d.Lambda + 40*math.Sqrt(d.Lambda) + 40)
}

// Quantile returns the smallest k with CDF(k) >= p. p = 1 is a DOMAIN_ERROR.
func (d Poisson) Quantile(p float64) (float64, error) {
	const op = "distribution.Poisson.Quantile"
	if err := checkProbability(op, p); err != nil {
		return 0, err
	}
	if p == 1 {
		return 0, unboundedTail(op, p)
	}
	limit := int(d.tailLimit())
	cum := 0.0
	for k := 0; k <= limit; k++ {
		cum += d.PMF(k)
		if math.Min(1, cum) >= p {
			return float64(k), nil
		}
	}
	return 0, smerror.NonConvergence(op, "quantile search passed the tail limit", limit).
		WithDetail("p", p)
}

func (d Poisson) Sample(n int, rng *rand.Rand) ([]float64, error) {
	if err := checkSampleArgs("distribution.Poisson.Sample", n, rng); err != nil {
		return nil, err
	}
	limit := int(d.tailLimit())
	cum := make([]float64, 0, limit+1)
	acc := 0.0
	for k := 0; k <= limit; k++ {
		acc += d.PMF(k)
		cum = append(cum, acc)
		if acc >= 1 {
			break
		}
	}
	return sampleTable(cum, n, rng), nil
}
