// File: doc.go
// Title: Package Documentation for mathx
// Description: Package mathx converts integer literals between number bases.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with decimal arithmetic and business functions
// - 2025-01-26 v0.2.0: Enhanced documentation with comprehensive structure and examples
// - 2026-10-18 v0.3.0: Package refocused on number base conversion

// Package mathx converts non-negative integer literals among bases 2, 8, 10
// and 16.
//
// Overview
//
// Values are parsed into a math/big integer, so there is no upper limit on
// magnitude. Output is canonical: leading zeros are dropped, zero renders as
// "0" and hexadecimal digits are uppercase. Input hexadecimal digits may be
// in either case.
//
// Usage Examples
//
//	result, err := mathx.ConvertToAllBases("255", mathx.Decimal)
//	// result.Binary == "11111111", result.Hexadecimal == "FF"
//
//	hex, err := mathx.ConvertBase("777", mathx.Octal, mathx.Hexadecimal)
//	// hex == "1FF"
//
// Error Handling
//
// An empty value, a sign, a prefix such as "0x" or any digit outside the
// base's digit set fails with INVALID_FORMAT. A base other than the four
// supported ones fails with UNSUPPORTED_OPTION. Use NumberBase.Pattern to
// pre-validate input with the same digit set.
package mathx
