// Package regression fits and diagnoses simple linear relationships:
// Pearson correlation, ordinary least squares with residuals and standard
// error, leverage, Cook's distance and the Anscombe quartet presets.
//
// Degenerate inputs are explicit errors. Mismatched lengths or fewer than
// two points are INVALID_INPUT, and zero variance where a ratio needs it is
// UNDEFINED_RESULT rather than NaN.
package regression
