// ============================================================================
// SnakeMath - Numerical Mathematics Engine
// ============================================================================
//
// Package:     limit
// Description: One- and two-sided numerical limits over a geometric
//              approach sequence
// Created:     2026-03-07
// License:     MIT
// ============================================================================

package limit

import (
	"fmt"
	"math"

	smerror "github.com/Cal-ly/SnakeMath-sub002/foundation/core/error"
	"github.com/Cal-ly/SnakeMath-sub002/foundation/utils/mathx"
	"github.com/Cal-ly/SnakeMath-sub002/pkg/engine/catalog"
)

// Direction selects which side(s) of the point are approached
type Direction string

// Directions
const (
	Both  Direction = "both"
	Left  Direction = "left"
	Right Direction = "right"
)

// ParseDirection converts a string into a Direction. The empty string means Both.
func ParseDirection(s string) (Direction, error) {
	switch Direction(s) {
	case "", Both:
		return Both, nil
	case Left, Right:
		return Direction(s), nil
	}
	return "", smerror.InvalidInput("limit.ParseDirection",
		fmt.Sprintf("unknown direction %q (want both, left or right)", s))
}

// Behavior describes how a sequence of samples behaves as it nears the point
type Behavior string

// Behaviors
const (
	Converges        Behavior = "converges"
	DivergesPositive Behavior = "diverges-positive"
	DivergesNegative Behavior = "diverges-negative"
	Oscillates       Behavior = "oscillates"
	Undefined        Behavior = "undefined"
	SidesDisagree    Behavior = "sides-disagree"
)

// Diverges reports whether the behavior is an infinite limit of either sign
func (b Behavior) Diverges() bool {
	return b == DivergesPositive || b == DivergesNegative
}

// Contraction rule for slowly converging sides such as √x at 0⁺
const (
	ContractionRatio = 0.5
	ContractionTol   = 1e-3
	contractionSteps = 3
)

// Options tune the approach sequence and convergence tolerances. Zero
// values select the defaults from mathx.
type Options struct {
	Offsets []float64
	AbsTol  float64
	RelTol  float64
}

func (o Options) withDefaults() Options {
	if len(o.Offsets) == 0 {
		o.Offsets = mathx.LimitOffsets()
	}
	if o.AbsTol <= 0 {
		o.AbsTol = mathx.LimitAbsTol
	}
	if o.RelTol <= 0 {
		o.RelTol = mathx.LimitRelTol
	}
	return o
}

func (o Options) validate() error {
	for i, h := range o.Offsets {
		if !(h > 0) || math.IsInf(h, 0) {
			return smerror.InvalidInput("limit.Options", "offsets must be positive and finite").
				WithDetail("index", i)
		}
		if i > 0 && h >= o.Offsets[i-1] {
			return smerror.InvalidInput("limit.Options", "offsets must be strictly decreasing").
				WithDetail("index", i)
		}
	}
	if len(o.Offsets) < 2 {
		return smerror.InvalidInput("limit.Options", "at least two offsets are required")
	}
	return nil
}

// Sample is one point of the approach sequence. Y is zero when Defined is false.
type Sample struct {
	Offset  float64 `json:"offset" yaml:"offset"`
	X       float64 `json:"x" yaml:"x"`
	Y       float64 `json:"y" yaml:"y"`
	Defined bool    `json:"defined" yaml:"defined"`
}

// Side is the one-sided analysis toward the point
type Side struct {
	Direction Direction `json:"direction" yaml:"direction"`
	Samples   []Sample  `json:"samples" yaml:"samples"`
	Behavior  Behavior  `json:"behavior" yaml:"behavior"`
	Value     float64   `json:"value" yaml:"value"`
}

// Exists reports whether the side has a finite limit
func (s *Side) Exists() bool {
	return s != nil && s.Behavior == Converges
}

// Result is the outcome of a limit evaluation. Value is meaningful only when
// Exists is true; it is zero otherwise so that no NaN reaches a caller.
type Result struct {
	Point     float64   `json:"point" yaml:"point"`
	Direction Direction `json:"direction" yaml:"direction"`
	Left      *Side     `json:"left,omitempty" yaml:"left,omitempty"`
	Right     *Side     `json:"right,omitempty" yaml:"right,omitempty"`
	Value     float64   `json:"value" yaml:"value"`
	Exists    bool      `json:"exists" yaml:"exists"`
	Behavior  Behavior  `json:"behavior" yaml:"behavior"`
}

// String renders the limit for display
func (r Result) String() string {
	switch r.Behavior {
	case Converges:
		return fmt.Sprintf("%g", r.Value)
	case DivergesPositive:
		return "+∞"
	case DivergesNegative:
		return "−∞"
	}
	return "does not exist (" + string(r.Behavior) + ")"
}

// EvaluateLimit approaches point from the given direction along the default
// offsets and reports the limit, if any.
func EvaluateLimit(fn catalog.Evaluable, point float64, direction Direction) (Result, error) {
	return EvaluateLimitWith(fn, point, direction, Options{})
}

// EvaluateLimitWith is EvaluateLimit with a custom approach sequence or tolerances
func EvaluateLimitWith(fn catalog.Evaluable, point float64, direction Direction, opts Options) (Result, error) {
	const op = "limit.EvaluateLimit"
	if fn == nil {
		return Result{}, smerror.InvalidInput(op, "function is nil")
	}
	if !mathx.IsFinite(point) {
		return Result{}, smerror.Domain(op, "limit point must be finite")
	}
	if _, err := ParseDirection(string(direction)); err != nil {
		return Result{}, err
	}
	if direction == "" {
		direction = Both
	}
	opts = opts.withDefaults()
	if err := opts.validate(); err != nil {
		return Result{}, err
	}

	res := Result{Point: point, Direction: direction}
	switch direction {
	case Left:
		res.Left = approach(fn, point, Left, opts)
		res.Behavior, res.Value = res.Left.Behavior, res.Left.Value
	case Right:
		res.Right = approach(fn, point, Right, opts)
		res.Behavior, res.Value = res.Right.Behavior, res.Right.Value
	default:
		res.Left = approach(fn, point, Left, opts)
		res.Right = approach(fn, point, Right, opts)
		res.Behavior, res.Value = combine(res.Left, res.Right, opts)
	}
	res.Exists = res.Behavior == Converges
	if !res.Exists {
		res.Value = 0
	}
	return res, nil
}

// combine merges two one-sided results into the two-sided limit
func combine(l, r *Side, opts Options) (Behavior, float64) {
	switch {
	case l.Behavior == Converges && r.Behavior == Converges:
		if mathx.ApproxEqual(l.Value, r.Value, opts.AbsTol, opts.RelTol) {
			return Converges, (l.Value + r.Value) / 2
		}
		return SidesDisagree, 0
	case l.Behavior.Diverges() && l.Behavior == r.Behavior:
		return l.Behavior, 0
	case l.Behavior == Undefined && r.Behavior == Undefined:
		return Undefined, 0
	case l.Behavior == Undefined || r.Behavior == Undefined:
		// a two-sided limit needs both sides inside the domain
		return Undefined, 0
	case l.Behavior == Oscillates || r.Behavior == Oscillates:
		return Oscillates, 0
	}
	return SidesDisagree, 0
}

// approach samples one side and classifies it
func approach(fn catalog.Evaluable, point float64, dir Direction, opts Options) *Side {
	sign := 1.0
	if dir == Left {
		sign = -1
	}
	side := &Side{Direction: dir, Samples: make([]Sample, len(opts.Offsets))}
	for i, h := range opts.Offsets {
		x := point + sign*h
		y, ok := catalog.SafeEval(fn, x)
		side.Samples[i] = Sample{Offset: h, X: x, Y: y, Defined: ok}
	}
	side.Behavior, side.Value = classify(side.Samples, opts)
	return side
}

func classify(samples []Sample, opts Options) (Behavior, float64) {
	defined := 0
	for _, s := range samples {
		if s.Defined {
			defined++
		}
	}
	if defined == 0 {
		return Undefined, 0
	}

	n := len(samples)
	last := samples[n-1]
	prev := samples[n-2]
	if last.Defined && prev.Defined {
		if mathx.ApproxEqual(last.Y, prev.Y, opts.AbsTol, opts.RelTol) {
			return Converges, last.Y
		}
		if v, ok := contracts(samples); ok {
			return Converges, v
		}
	}

	if defined == n && monotoneMagnitude(samples) && blowsUp(samples) {
		if last.Y < 0 {
			return DivergesNegative, 0
		}
		return DivergesPositive, 0
	}
	if !last.Defined {
		return Undefined, 0
	}
	return Oscillates, 0
}

// contracts reports whether the trailing differences shrink geometrically
// down to ContractionTol. The returned value is the Aitken extrapolation of
// the tail, which removes the bias of stopping at a finite offset.
func contracts(samples []Sample) (float64, bool) {
	n := len(samples)
	if n < contractionSteps+2 {
		return 0, false
	}
	tail := samples[n-contractionSteps-2:]
	diffs := make([]float64, 0, len(tail)-1)
	for i := 1; i < len(tail); i++ {
		if !tail[i].Defined || !tail[i-1].Defined {
			return 0, false
		}
		diffs = append(diffs, tail[i].Y-tail[i-1].Y)
	}
	for i := 1; i < len(diffs); i++ {
		if math.Abs(diffs[i]) > ContractionRatio*math.Abs(diffs[i-1]) {
			return 0, false
		}
	}
	y := tail[len(tail)-1].Y
	d := diffs[len(diffs)-1]
	if math.Abs(d) > ContractionTol*math.Max(1, math.Abs(y)) {
		return 0, false
	}
	if r := d / diffs[len(diffs)-2]; r > 0 && r < 1 {
		y += d * r / (1 - r)
	}
	return y, true
}

// monotoneMagnitude reports whether |f| never decreases along the sequence
func monotoneMagnitude(samples []Sample) bool {
	for i := 1; i < len(samples); i++ {
		if math.Abs(samples[i].Y) < math.Abs(samples[i-1].Y) {
			return false
		}
	}
	return true
}

// blowsUp reports whether a monotone sequence is heading to infinity: either
// it is already past the threshold or its growth is not slowing down.
func blowsUp(samples []Sample) bool {
	n := len(samples)
	last := math.Abs(samples[n-1].Y)
	if last >= mathx.DivergenceThreshold {
		return true
	}
	if n < 3 {
		return false
	}
	inc := last - math.Abs(samples[n-2].Y)
	prevInc := math.Abs(samples[n-2].Y) - math.Abs(samples[n-3].Y)
	return inc > 0 && inc >= (1-mathx.GeometricRelTol)*prevInc
}
