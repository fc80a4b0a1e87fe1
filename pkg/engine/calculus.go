package engine

import (
	"github.com/Cal-ly/SnakeMath-sub002/pkg/engine/derivative"
	"github.com/Cal-ly/SnakeMath-sub002/pkg/engine/integral"
	"github.com/Cal-ly/SnakeMath-sub002/pkg/engine/limit"
)

func (e *Engine) limitOptions() limit.Options {
	return limit.Options{
		Offsets: e.settings.Limit.Offsets,
		AbsTol:  e.settings.Limit.AbsTol,
		RelTol:  e.settings.Limit.RelTol,
	}
}

// Limit estimates the limit of a catalog function at point
func (e *Engine) Limit(id string, point float64, dir limit.Direction) (limit.Result, error) {
	fn, err := e.Function(id)
	if err != nil {
		return limit.Result{}, err
	}
	opts := e.limitOptions()
	return memo(e, "limit", func() (limit.Result, error) {
		return limit.EvaluateLimitWith(fn, point, dir, opts)
	}, id, point, string(dir), opts.Offsets, opts.AbsTol, opts.RelTol)
}

// Continuity classifies a catalog function at point
func (e *Engine) Continuity(id string, point float64) (limit.Continuity, error) {
	fn, err := e.Function(id)
	if err != nil {
		return limit.Continuity{}, err
	}
	return memo(e, "continuity", func() (limit.Continuity, error) {
		return limit.ClassifyContinuity(fn, point)
	}, id, point)
}

// derivativeArgs fills an empty method and a zero step from the settings
func (e *Engine) derivativeArgs(method derivative.Method, h float64) (derivative.Method, float64, error) {
	if method == "" {
		m, err := derivative.ParseMethod(e.settings.Derivative.Method)
		if err != nil {
			return "", 0, err
		}
		method = m
	}
	if h == 0 {
		h = e.settings.Derivative.Step
	}
	return method, h, nil
}

// Derivative estimates f'(x) with a difference quotient
func (e *Engine) Derivative(id string, x float64, method derivative.Method, h float64) (derivative.Result, error) {
	fn, err := e.Function(id)
	if err != nil {
		return derivative.Result{}, err
	}
	method, h, err = e.derivativeArgs(method, h)
	if err != nil {
		return derivative.Result{}, err
	}
	return memo(e, "derivative", func() (derivative.Result, error) {
		return derivative.EvaluateDerivative(fn, x, method, h)
	}, id, x, string(method), h)
}

// Tangent returns the tangent line at x
func (e *Engine) Tangent(id string, x float64, method derivative.Method, h float64) (derivative.Line, error) {
	fn, err := e.Function(id)
	if err != nil {
		return derivative.Line{}, err
	}
	method, h, err = e.derivativeArgs(method, h)
	if err != nil {
		return derivative.Line{}, err
	}
	return memo(e, "tangent", func() (derivative.Line, error) {
		return derivative.TangentLineWith(fn, x, method, h)
	}, id, x, string(method), h)
}

// Secants returns secant lines through x for shrinking steps
func (e *Engine) Secants(id string, x float64) ([]derivative.Secant, error) {
	fn, err := e.Function(id)
	if err != nil {
		return nil, err
	}
	return memo(e, "secants", func() ([]derivative.Secant, error) {
		return derivative.SecantSequence(fn, x)
	}, id, x)
}

// CriticalPoints scans [a, b] for zeros of the first derivative
func (e *Engine) CriticalPoints(id string, a, b float64, samples int) ([]derivative.CriticalPoint, error) {
	fn, err := e.Function(id)
	if err != nil {
		return nil, err
	}
	return memo(e, "critical", func() ([]derivative.CriticalPoint, error) {
		return derivative.FindCriticalPoints(fn, a, b, samples)
	}, id, a, b, samples)
}

// InflectionPoints scans [a, b] for sign changes of the second derivative
func (e *Engine) InflectionPoints(id string, a, b float64, samples int) ([]derivative.CriticalPoint, error) {
	fn, err := e.Function(id)
	if err != nil {
		return nil, err
	}
	return memo(e, "inflection", func() ([]derivative.CriticalPoint, error) {
		return derivative.FindInflectionPoints(fn, a, b, samples)
	}, id, a, b, samples)
}

func (e *Engine) integralMethod(method integral.Method) (integral.Method, error) {
	if method != "" {
		return method, nil
	}
	return integral.ParseMethod(e.settings.Integral.Method)
}

// Riemann approximates the integral of a catalog function over [a, b].
// A zero n uses the configured partition count.
func (e *Engine) Riemann(id string, a, b float64, n int, method integral.Method) (integral.RiemannSum, error) {
	fn, err := e.Function(id)
	if err != nil {
		return integral.RiemannSum{}, err
	}
	if method, err = e.integralMethod(method); err != nil {
		return integral.RiemannSum{}, err
	}
	if n == 0 {
		n = e.settings.Integral.Partitions
	}
	return memo(e, "riemann", func() (integral.RiemannSum, error) {
		return integral.ComputeRiemannSum(fn, a, b, n, method)
	}, id, a, b, n, string(method))
}

// Convergence tabulates the approximation error for each partition count
func (e *Engine) Convergence(id string, a, b float64, method integral.Method, ns []int) (integral.Convergence, error) {
	fn, err := e.Function(id)
	if err != nil {
		return integral.Convergence{}, err
	}
	if method, err = e.integralMethod(method); err != nil {
		return integral.Convergence{}, err
	}
	return memo(e, "convergence", func() (integral.Convergence, error) {
		return integral.ConvergenceSequence(fn, a, b, method, ns, nil)
	}, id, a, b, string(method), ns)
}
