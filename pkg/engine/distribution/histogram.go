package distribution

import (
	"fmt"
	"math"

	smerror "github.com/Cal-ly/SnakeMath-sub002/foundation/core/error"
	"github.com/Cal-ly/SnakeMath-sub002/foundation/utils/mathx"
)

// MaxBins caps the number of histogram bins
const MaxBins = 1000

// Histogram counts values in equal-width bins over [Min, Max]. Densities are
// normalized so that their integral is 1.
type Histogram struct {
	Edges     []float64 `json:"edges" yaml:"edges"`
	Counts    []int     `json:"counts" yaml:"counts"`
	Densities []float64 `json:"densities" yaml:"densities"`
	Min       float64   `json:"min" yaml:"min"`
	Max       float64   `json:"max" yaml:"max"`
	Width     float64   `json:"width" yaml:"width"`
	Total     int       `json:"total" yaml:"total"`
}

// NewHistogram bins values. When every value is equal the range is widened
// to ±0.5 around it.
func NewHistogram(values []float64, bins int) (Histogram, error) {
	const op = "distribution.NewHistogram"
	if len(values) == 0 {
		return Histogram{}, smerror.Undefined(op, "no values to bin")
	}
	if bins < 1 || bins > MaxBins {
		return Histogram{}, smerror.Domain(op, fmt.Sprintf("bins must be between 1 and %d", MaxBins)).
			WithDetail("bins", bins)
	}
	for i, v := range values {
		if !mathx.IsFinite(v) {
			return Histogram{}, smerror.Domain(op, "values must be finite").WithDetail("index", i)
		}
	}

	lo, _ := mathx.Min(values)
	hi, _ := mathx.Max(values)
	if lo == hi {
		lo, hi = lo-0.5, hi+0.5
	}
	width := (hi - lo) / float64(bins)

	h := Histogram{
		Edges:     mathx.Linspace(lo, hi, bins+1),
		Counts:    make([]int, bins),
		Densities: make([]float64, bins),
		Min:       lo,
		Max:       hi,
		Width:     width,
		Total:     len(values),
	}
	for _, v := range values {
		h.Counts[h.bin(v)]++
	}
	for i, c := range h.Counts {
		h.Densities[i] = float64(c) / (float64(h.Total) * width)
	}
	return h, nil
}

// bin returns the index of the bin holding v; the last bin is closed
func (h Histogram) bin(v float64) int {
	i := int(math.Floor((v - h.Min) / h.Width))
	return int(mathx.Clamp(float64(i), 0, float64(len(h.Counts)-1)))
}

// Centers returns the midpoint of every bin
func (h Histogram) Centers() []float64 {
	out := make([]float64, len(h.Counts))
	for i := range out {
		out[i] = (h.Edges[i] + h.Edges[i+1]) / 2
	}
	return out
}
