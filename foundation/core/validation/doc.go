// Package validation provides composable parameter validation.
//
// Package: validation
// Title: SnakeMath Parameter Validation
// Description: Validators return structured results instead of errors so
//              several problems can be reported at once. ParamCheck runs a
//              chain per named parameter and converts failures into a
//              DOMAIN_ERROR, which is how every distribution constructor and
//              sampling routine rejects invalid parameters before using them.
// Version: v0.2.0
// Created: 2026-03-03
// Modified: 2026-04-14
//
// Usage:
//
//	err := validation.NewParamCheck("distribution.NewBinomial").
//	    Field("n", n, validation.NonNegative()).
//	    Field("p", p, validation.Finite(), validation.Probability()).
//	    Err()
//	if err != nil {
//	    return nil, err
//	}
package validation
