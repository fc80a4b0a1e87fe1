package inference

import (
	smerror "github.com/Cal-ly/SnakeMath-sub002/foundation/core/error"
	"github.com/Cal-ly/SnakeMath-sub002/foundation/utils/mathx"
	"github.com/Cal-ly/SnakeMath-sub002/foundation/utils/slicex"
)

// Summary is the descriptive summary behind a box plot
type Summary struct {
	N          int       `json:"n" yaml:"n"`
	Mean       float64   `json:"mean" yaml:"mean"`
	SD         float64   `json:"sd" yaml:"sd"`
	Min        float64   `json:"min" yaml:"min"`
	Q1         float64   `json:"q1" yaml:"q1"`
	Median     float64   `json:"median" yaml:"median"`
	Q3         float64   `json:"q3" yaml:"q3"`
	Max        float64   `json:"max" yaml:"max"`
	IQR        float64   `json:"iqr" yaml:"iqr"`
	LowerFence float64   `json:"lower_fence" yaml:"lower_fence"`
	UpperFence float64   `json:"upper_fence" yaml:"upper_fence"`
	Outliers   []float64 `json:"outliers" yaml:"outliers"`
}

// Summarize computes the five-number summary, sample SD (0 for a single
// value) and Tukey fences. Outliers keep input order.
func Summarize(values []float64) (Summary, error) {
	if len(values) == 0 {
		return Summary{}, smerror.Undefined("inference.Summarize", "cannot summarize an empty sample")
	}
	for _, v := range values {
		if !mathx.IsFinite(v) {
			return Summary{}, smerror.Domain("inference.Summarize", "values must be finite").WithDetail("value", v)
		}
	}

	s := Summary{N: len(values), Mean: mathx.MustMean(values)}
	if s.N > 1 {
		s.SD, _ = mathx.StdDev(values, true)
	}
	s.Min, _ = mathx.Min(values)
	s.Max, _ = mathx.Max(values)
	s.Q1, s.Median, s.Q3, _ = mathx.Quartiles(values)
	s.IQR = s.Q3 - s.Q1
	s.LowerFence, s.UpperFence, _ = mathx.Fences(values)
	s.Outliers = slicex.Filter(values, func(v float64) bool {
		return v < s.LowerFence || v > s.UpperFence
	})
	return s, nil
}
