// File: chain.go
// Title: Validator Chain Implementation
// Description: Provides composable validator chains that combine multiple
//              validation rules into a single validator.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-25 v0.1.0: Initial validator chain implementation
// - 2026-10-18 v0.2.0: Stop on first error by default, ValidatedValue on success

package validation

import "fmt"

// Chain represents a sequence of validators executed in order
type Chain struct {
	validators       []Validator
	name             string
	stopOnFirstError bool
}

// NewChain creates a new validator chain with an optional name
func NewChain(name ...string) *Chain {
	chainName := ""
	if len(name) > 0 {
		chainName = name[0]
	}

	return &Chain{
		validators:       make([]Validator, 0),
		name:             chainName,
		stopOnFirstError: true,
	}
}

// Add adds a validator to the chain
func (c *Chain) Add(validator Validator) *Chain {
	c.validators = append(c.validators, validator)
	return c
}

// AddFunc adds a validator function to the chain
func (c *Chain) AddFunc(fn ValidatorFunc) *Chain {
	c.validators = append(c.validators, fn)
	return c
}

// StopOnFirstError configures whether the chain stops on the first failure.
// Chains stop by default.
func (c *Chain) StopOnFirstError(stop bool) *Chain {
	c.stopOnFirstError = stop
	return c
}

// Validate executes the validators in order and returns the combined result
func (c *Chain) Validate(input string) ValidationResult {
	results := make([]ValidationResult, 0, len(c.validators))

	for _, validator := range c.validators {
		result := validator.Validate(input)
		results = append(results, result)

		if c.stopOnFirstError && !result.Valid {
			break
		}
	}

	combined := Combine(results...)
	if combined.Valid {
		return Success(input)
	}
	return combined
}

// Length returns the number of validators in the chain
func (c *Chain) Length() int {
	return len(c.validators)
}

// Name returns the chain name
func (c *Chain) Name() string {
	return c.name
}

// String returns a string representation of the validator chain
func (c *Chain) String() string {
	name := c.name
	if name == "" {
		name = "unnamed"
	}
	return fmt.Sprintf("Chain{name: %s, validators: %d, stopOnFirstError: %v}",
		name, len(c.validators), c.stopOnFirstError)
}
