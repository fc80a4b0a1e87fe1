// Package catalog holds the fixed set of function presets the engines
// evaluate.
//
// A preset carries its expression twice for display (Notation for math
// rendering, GoCode for the code panel), the callable Eval, an optional exact
// Derivative and antiderivative Integral, a Domain predicate and labeled
// InterestingPoints such as holes, jumps and extrema.
//
// Evaluation outside the domain yields NaN from Evaluate; SafeEval wraps any
// Evaluable and reports (value, ok) without ever panicking. The engines take
// Evaluable, so callers may also pass a Func for ad hoc functions in tests.
package catalog
