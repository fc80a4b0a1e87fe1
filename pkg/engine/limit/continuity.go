package limit

import (
	"fmt"

	smerror "github.com/Cal-ly/SnakeMath-sub002/foundation/core/error"
	"github.com/Cal-ly/SnakeMath-sub002/foundation/utils/mathx"
	"github.com/Cal-ly/SnakeMath-sub002/pkg/engine/catalog"
)

// Classification of a function's behavior at a point
type Classification string

// Classifications
const (
	Continuous  Classification = "continuous"
	Removable   Classification = "removable"
	Jump        Classification = "jump"
	Infinite    Classification = "infinite"
	Oscillating Classification = "oscillating"
)

// Describe returns the explanatory label a widget shows for the class
func (c Classification) Describe() string {
	switch c {
	case Continuous:
		return "continuous"
	case Removable:
		return "removable discontinuity"
	case Jump:
		return "jump discontinuity"
	case Infinite:
		return "infinite discontinuity"
	case Oscillating:
		return "oscillating discontinuity"
	}
	return fmt.Sprintf("unknown (%s)", string(c))
}

// Continuity is the result of ClassifyContinuity. Value is f(point) and is
// zero when Defined is false.
type Continuity struct {
	Point          float64        `json:"point" yaml:"point"`
	Classification Classification `json:"classification" yaml:"classification"`
	Left           *Side          `json:"left" yaml:"left"`
	Right          *Side          `json:"right" yaml:"right"`
	Value          float64        `json:"value" yaml:"value"`
	Defined        bool           `json:"defined" yaml:"defined"`
}

// ClassifyContinuity compares the one-sided limits with f(point). f is
// evaluated defensively: domain failures never raise. A point that neither
// side can approach is UNDEFINED_RESULT.
func ClassifyContinuity(fn catalog.Evaluable, point float64) (Continuity, error) {
	const op = "limit.ClassifyContinuity"
	res, err := EvaluateLimit(fn, point, Both)
	if err != nil {
		return Continuity{}, smerror.Wrap(err, "classify continuity")
	}
	if res.Left.Behavior == Undefined && res.Right.Behavior == Undefined {
		return Continuity{}, smerror.Undefined(op, "point is unreachable from either side").
			WithDetail("point", point)
	}
	value, defined := catalog.SafeEval(fn, point)

	c := Continuity{
		Point:   point,
		Left:    res.Left,
		Right:   res.Right,
		Value:   value,
		Defined: defined,
	}
	c.Classification = classifyContinuity(res.Left, res.Right, value, defined)
	return c, nil
}

func classifyContinuity(l, r *Side, value float64, defined bool) Classification {
	matches := func(limit float64) bool {
		return defined && mathx.ApproxEqualLimit(value, limit)
	}

	// At a domain boundary only the reachable side counts
	if l.Behavior == Undefined || r.Behavior == Undefined {
		other := l
		if l.Behavior == Undefined {
			other = r
		}
		switch {
		case other.Behavior == Converges && matches(other.Value):
			return Continuous
		case other.Behavior == Converges:
			return Removable
		case other.Behavior.Diverges():
			return Infinite
		}
		return Oscillating
	}

	switch {
	case l.Behavior == Converges && r.Behavior == Converges:
		if !mathx.ApproxEqualLimit(l.Value, r.Value) {
			return Jump
		}
		if matches((l.Value + r.Value) / 2) {
			return Continuous
		}
		return Removable
	case l.Behavior.Diverges() || r.Behavior.Diverges():
		return Infinite
	}
	return Oscillating
}
