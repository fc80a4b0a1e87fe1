// Package integral approximates definite integrals with the Riemann-sum
// family: left, right and midpoint sums, the trapezoidal rule and Simpson's
// rule. Every sum is signed, so negative values of f contribute negative
// area and a > b reverses the orientation.
//
// Partition counts are capped at MaxPartitions. ConvergenceSequence shows
// the error shrinking as n grows, against an exact value when one is known
// and a high-resolution Simpson reference otherwise.
package integral
