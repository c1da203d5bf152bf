// Package validationx validates raw tool input before conversion.
//
// Package: validationx
// Title: Tool Input Validation
// Description: One validator per input kind, each composed from the
//              validation.Chain building blocks, plus the Validate
//              dispatcher used by the caller layer.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with comprehensive validation utilities
// - 2026-10-18 v0.2.0: Rebuilt around conversion input kinds
//
// Every validator runs the same steps and stops at the first failure:
//
//  1. Blank input (only Unicode whitespace) fails with EMPTY_REQUIRED.
//  2. A wrong character set or shape fails with INVALID_FORMAT.
//  3. A number outside its bounds fails with OUT_OF_RANGE.
//
// Date strings that no layout accepts fail with PARSE_ERROR. A successful
// result's ValidatedValue is the input exactly as given; validators never
// trim or normalise.
//
// Usage:
//
//	result := validationx.Validate(input, validationx.KindNumberBase,
//		validationx.Config{FromBase: mathx.Hexadecimal})
//	if !result.Valid {
//		return result.ToError()
//	}
//	converted, err := mathx.ConvertToAllBases(result.Value(), mathx.Hexadecimal)
//
// This package is the only foundation package that imports the tool
// packages; it reuses their enum types, digit patterns and bounds so that
// validation and conversion cannot disagree.
package validationx
