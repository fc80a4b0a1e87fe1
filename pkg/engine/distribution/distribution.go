// ============================================================================
// SnakeMath - Numerical Mathematics Engine
// ============================================================================
//
// Package:     distribution
// Description: Parametric probability distributions with density, CDF,
//              quantile and seeded sampling
// Created:     2026-03-10
// License:     MIT
// ============================================================================

package distribution

import (
	"fmt"
	"math"
	"math/rand/v2"
	"sort"
	"strings"

	smerror "github.com/Cal-ly/SnakeMath-sub002/foundation/core/error"
)

// Family names a distribution family
type Family string

// Families
const (
	FamilyNormal      Family = "normal"
	FamilyBinomial    Family = "binomial"
	FamilyPoisson     Family = "poisson"
	FamilyExponential Family = "exponential"
	FamilyUniform     Family = "uniform"
	FamilyStudentT    Family = "student-t"
)

// Families lists every supported family
func Families() []Family {
	return []Family{FamilyNormal, FamilyBinomial, FamilyPoisson, FamilyExponential, FamilyUniform, FamilyStudentT}
}

// MaxSampleSize caps a single Sample call
const MaxSampleSize = 1_000_000

// Distribution is the behavior shared by every family. CDF is defined on
// the whole real line; Density is the PDF for continuous families and the
// PMF at integer points for discrete ones.
type Distribution interface {
	Family() Family
	Params() map[string]float64
	Support() Support
	Discrete() bool
	Mean() float64
	Variance() float64
	Density(x float64) float64
	CDF(x float64) float64
	Quantile(p float64) (float64, error)
	Sample(n int, rng *rand.Rand) ([]float64, error)
}

// Continuous distributions have a probability density
type Continuous interface {
	Distribution
	PDF(x float64) float64
}

// DiscreteDistribution distributions have a probability mass on the integers
type DiscreteDistribution interface {
	Distribution
	PMF(k int) float64
}

// Support is the closed range [Lower, Upper] of possible values; bounds may
// be infinite.
type Support struct {
	Lower    float64
	Upper    float64
	Discrete bool
}

// Contains reports whether x is a possible value
func (s Support) Contains(x float64) bool {
	if x < s.Lower || x > s.Upper {
		return false
	}
	return !s.Discrete || x == math.Trunc(x)
}

func formatBound(v float64) string {
	switch {
	case math.IsInf(v, 1):
		return "∞"
	case math.IsInf(v, -1):
		return "-∞"
	}
	return fmt.Sprintf("%g", v)
}

// String renders the support in interval or integer-range notation
func (s Support) String() string {
	if s.Discrete {
		return fmt.Sprintf("{%s, …, %s}", formatBound(s.Lower), formatBound(s.Upper))
	}
	return fmt.Sprintf("[%s, %s]", formatBound(s.Lower), formatBound(s.Upper))
}

// MarshalText keeps infinite bounds serializable
func (s Support) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// New builds a distribution from a family name and named parameters.
// Missing parameters take the family's default; unknown ones are rejected.
//
//	normal: mu (0), sigma (1)          binomial: n (10), p (0.5)
//	poisson: lambda (1)                exponential: lambda (1)
//	uniform: a (0), b (1)              student-t: df (10)
func New(family Family, params map[string]float64) (Distribution, error) {
	const op = "distribution.New"

	defaults, ok := familyDefaults[family]
	if !ok {
		return nil, smerror.InvalidInput(op, fmt.Sprintf("unknown family %q", string(family))).
			WithDetail("known", familyNames())
	}
	merged := make(map[string]float64, len(defaults))
	for k, v := range defaults {
		merged[k] = v
	}
	for k, v := range params {
		if _, known := defaults[k]; !known {
			return nil, smerror.InvalidInput(op, fmt.Sprintf("unknown parameter %q for %s", k, family)).
				WithDetail("known", sortedKeys(defaults))
		}
		merged[k] = v
	}

	switch family {
	case FamilyNormal:
		return checked(NewNormal(merged["mu"], merged["sigma"]))
	case FamilyBinomial:
		n := merged["n"]
		if n != math.Trunc(n) || math.IsInf(n, 0) || n > math.MaxInt32 {
			return nil, smerror.Domain(op, "binomial n must be a whole number").WithDetail("n", n)
		}
		return checked(NewBinomial(int(n), merged["p"]))
	case FamilyPoisson:
		return checked(NewPoisson(merged["lambda"]))
	case FamilyExponential:
		return checked(NewExponential(merged["lambda"]))
	case FamilyUniform:
		return checked(NewUniform(merged["a"], merged["b"]))
	default:
		return checked(NewStudentT(merged["df"]))
	}
}

// checked keeps a failed constructor's nil pointer from becoming a non-nil
// interface value.
func checked[D Distribution](d D, err error) (Distribution, error) {
	if err != nil {
		return nil, err
	}
	return d, nil
}

// ParseFamily converts a string into a Family
func ParseFamily(s string) (Family, error) {
	f := Family(strings.ToLower(s))
	if _, ok := familyDefaults[f]; ok {
		return f, nil
	}
	if f == "t" || f == "student" {
		return FamilyStudentT, nil
	}
	return "", smerror.InvalidInput("distribution.ParseFamily", fmt.Sprintf("unknown family %q", s))
}

var familyDefaults = map[Family]map[string]float64{
	FamilyNormal:      {"mu": 0, "sigma": 1},
	FamilyBinomial:    {"n": 10, "p": 0.5},
	FamilyPoisson:     {"lambda": 1},
	FamilyExponential: {"lambda": 1},
	FamilyUniform:     {"a": 0, "b": 1},
	FamilyStudentT:    {"df": 10},
}

func familyNames() []string {
	out := make([]string, 0, len(familyDefaults))
	for _, f := range Families() {
		out = append(out, string(f))
	}
	return out
}

func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func checkSampleArgs(op string, n int, rng *rand.Rand) error {
	if rng == nil {
		return smerror.InvalidInput(op, "random source is nil")
	}
	if n < 0 || n > MaxSampleSize {
		return smerror.Domain(op, fmt.Sprintf("sample size must be between 0 and %d", MaxSampleSize)).
			WithDetail("n", n)
	}
	return nil
}

func checkProbability(op string, p float64) error {
	if !(p >= 0 && p <= 1) {
		return smerror.Domain(op, "probability must be in [0, 1]").WithDetail("p", p)
	}
	return nil
}

func unboundedTail(op string, p float64) error {
	return smerror.Domain(op, "quantile is unbounded at this probability").WithDetail("p", p)
}

// uniformOpen draws from (0, 1), never returning 0
func uniformOpen(rng *rand.Rand) float64 {
	for {
		if u := rng.Float64(); u > 0 {
			return u
		}
	}
}
