// File: doc.go
// Title: Package Documentation for mathx
// Description: Numeric primitives shared by the SnakeMath engines.
// Version: v0.3.0
// Created: 2026-03-04
// Modified: 2026-04-02
//
// Change History:
// - 2026-03-04 v0.1.0: Tolerances and summation
// - 2026-04-02 v0.3.0: Order statistics, root finding and seeded randomness

// Package mathx provides the numeric primitives the engines are built on.
//
// Tolerance policy. Three named classes keep comparisons consistent:
//
//   - limit convergence: LimitAbsTol (1e-6) or LimitRelTol (1e-4)
//   - derivative and geometric equality: GeometricAbsTol and GeometricRelTol (1e-9)
//   - statistical approximation: StatTol (1e-7)
//
// Root finding uses RootTol (1e-10) with at most MaxRootIterations (200)
// bisection steps.
//
// Statistics. Sum uses Neumaier compensation; Mean, Variance and the order
// statistics return UNDEFINED_RESULT errors for empty input instead of NaN.
// Quantile follows the linear interpolation definition used by R's default
// (type 7), so Quartiles and Fences agree with common textbook tools.
//
// Randomness. NewRand is the only constructor of random sources; every
// sampling routine in the engines takes the *rand.Rand it returns, so results
// are reproducible from a seed.
package mathx
