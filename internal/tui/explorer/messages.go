package explorer

import (
	"github.com/Cal-ly/SnakeMath-sub002/pkg/engine/derivative"
	"github.com/Cal-ly/SnakeMath-sub002/pkg/engine/integral"
	"github.com/Cal-ly/SnakeMath-sub002/pkg/engine/limit"
)

// inputs is everything one recomputation depends on
type inputs struct {
	id        string
	x         float64
	method    derivative.Method
	h         float64
	n         int
	sumMethod integral.Method
}

// snapshot holds the results for one set of inputs. A failed operation
// leaves its error and a zero value.
type snapshot struct {
	in inputs

	limit      limit.Result
	limitErr   error
	continuity limit.Continuity
	contErr    error
	slope      derivative.Result
	slopeErr   error
	tangent    derivative.Line
	tangentErr error
	sum        integral.RiemannSum
	sumErr     error
}

// computedMsg delivers a snapshot; seq identifies the key press it answers
type computedMsg struct {
	seq  int
	snap snapshot
}
