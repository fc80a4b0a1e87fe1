// Package error provides the structured error type used across SnakeMath.
//
// Package: error
// Title: SnakeMath Error Handling
// Description: Coded errors with severity, operation and details. The engine
//              distinguishes three expected mathematical conditions from
//              caller bugs:
//
//   - DOMAIN_ERROR: an invalid parameter (negative standard deviation,
//     probability outside [0,1], Simpson's rule with odd n)
//   - UNDEFINED_RESULT: no meaningful value exists (correlation of a constant
//     series, vertical regression line, limit at an unreachable point)
//   - NON_CONVERGENCE: an iterative procedure hit its cap without meeting
//     its tolerance
//
// Everything else that reaches a caller as INVALID_INPUT signals a contract
// violation such as mismatched slice lengths.
//
// Version: v0.2.0
// Created: 2026-03-02
// Modified: 2026-04-14
//
// Usage:
//
//	import smerror "github.com/Cal-ly/SnakeMath-sub002/foundation/core/error"
//
//	if sigma <= 0 {
//	    return nil, smerror.Domain("distribution.NewNormal", "sigma must be positive").
//	        WithDetail("sigma", sigma)
//	}
//
//	if smerror.IsUndefined(err) {
//	    render("undefined")
//	}
package error
