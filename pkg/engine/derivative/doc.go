// Package derivative computes numerical derivatives with central, forward
// and backward differences, builds tangent and secant lines, and locates
// and classifies critical points.
//
// Central differences are O(h²); the one-sided stencils are O(h) and carry
// roughly one decimal digit less at the default step of 1e-5. Stencils are
// evaluated through gonum's diff/fd package.
package derivative
