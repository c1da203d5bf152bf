// File: doc.go
// Title: Core Validation Framework Package Documentation
// Description: Provides the validation result types, the Validator interface
//              and composable chains used by every devkit input validator.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-25 v0.1.0: Initial validation framework implementation
// - 2026-10-18 v0.2.0: String inputs, ValidatedValue, shared error codes

/*
Package validation provides the core validation framework infrastructure for devkit.

This package contains no tool-specific validators; those live in
utils/validationx. It offers:

  - ValidationResult and ValidationError for structured results
  - the Validator interface and ValidatorFunc adapter
  - Chain for composing rules that stop at the first failure
  - reusable building blocks: Required, Pattern, IntRange

# Results

A successful result carries the original input unchanged:

	result := validation.Success("SGVsbG8=")
	fmt.Println(*result.ValidatedValue) // SGVsbG8=

Failures carry one ValidationError per problem, each with a code from
core/error:

	result := validation.Failure("input", mdwerror.CodeEmptyRequired, "Input is required")
	if err := result.ToError(); err != nil {
		return err
	}

# Chains

	chain := validation.NewChain("base64").
		Add(validation.Required("input")).
		Add(validation.Pattern("input", base64Re, "Invalid Base64 format"))

	result := chain.Validate(input)

A chain stops at the first failing rule. ValidatedValue is set on the
combined result only when every rule passed.
*/
package validation
