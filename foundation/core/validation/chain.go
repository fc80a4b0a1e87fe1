// File: chain.go
// Title: Validator Chain Implementation
// Description: Composable validator chains combining several rules for one
//              value, and ParamCheck, which runs chains over named parameters
//              and converts the outcome into a DOMAIN_ERROR.
// Version: v0.2.0
// Created: 2026-03-03
// Modified: 2026-04-14
//
// Change History:
// - 2026-03-03 v0.1.0: Initial validator chain implementation
// - 2026-04-14 v0.2.0: ParamCheck builder for engine constructors

package validation

import (
	"fmt"
)

// ValidatorChain represents a chain of validators executed sequentially
type ValidatorChain struct {
	validators       []Validator
	name             string
	stopOnFirstError bool
}

// NewValidatorChain creates a new validator chain with an optional name
func NewValidatorChain(name ...string) *ValidatorChain {
	chainName := ""
	if len(name) > 0 {
		chainName = name[0]
	}

	return &ValidatorChain{name: chainName}
}

// Add adds validators to the chain
func (c *ValidatorChain) Add(validators ...Validator) *ValidatorChain {
	c.validators = append(c.validators, validators...)
	return c
}

// AddFunc adds a validator function to the chain
func (c *ValidatorChain) AddFunc(fn ValidatorFunc) *ValidatorChain {
	c.validators = append(c.validators, fn)
	return c
}

// StopOnFirstError configures the chain to stop on the first validation error.
// By default, chains collect all validation errors.
func (c *ValidatorChain) StopOnFirstError(stop bool) *ValidatorChain {
	c.stopOnFirstError = stop
	return c
}

// Validate executes all validators in the chain and returns combined results
func (c *ValidatorChain) Validate(value interface{}) ValidationResult {
	results := make([]ValidationResult, 0, len(c.validators))

	for _, validator := range c.validators {
		result := validator.Validate(value)
		results = append(results, result)

		if c.stopOnFirstError && !result.Valid {
			break
		}
	}

	combined := Combine(results...)
	if c.name != "" && !combined.Valid {
		combined.WithContext("validatorChain", c.name)
	}
	return combined
}

// Length returns the number of validators in the chain
func (c *ValidatorChain) Length() int {
	return len(c.validators)
}

// Name returns the chain name
func (c *ValidatorChain) Name() string {
	return c.name
}

// String returns a string representation of the validator chain
func (c *ValidatorChain) String() string {
	name := c.name
	if name == "" {
		name = "unnamed"
	}
	return fmt.Sprintf("ValidatorChain{name: %s, validators: %d, stopOnFirstError: %v}",
		name, len(c.validators), c.stopOnFirstError)
}

// ParamCheck validates the named parameters of one operation.
//
//	err := validation.NewParamCheck("distribution.NewNormal").
//	    Field("mu", mu, validation.Finite()).
//	    Field("sigma", sigma, validation.Finite(), validation.Positive()).
//	    Err()
type ParamCheck struct {
	operation string
	results   []ValidationResult
}

// NewParamCheck starts a parameter check for operation
func NewParamCheck(operation string) *ParamCheck {
	return &ParamCheck{operation: operation}
}

// Field runs the validators against value, stopping at the first failure
// for that field so a NaN is not also reported as out of range.
func (p *ParamCheck) Field(name string, value interface{}, validators ...Validator) *ParamCheck {
	result := NewValidatorChain(name).Add(validators...).StopOnFirstError(true).Validate(value)
	p.results = append(p.results, result.WithField(name))
	return p
}

// Result returns the combined result of all fields checked so far
func (p *ParamCheck) Result() ValidationResult {
	return Combine(p.results...)
}

// Err returns nil when every field passed and a DOMAIN_ERROR otherwise
func (p *ParamCheck) Err() error {
	return p.Result().ToError(p.operation)
}
