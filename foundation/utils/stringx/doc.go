// File: doc.go
// Title: Package Documentation for stringx
// Description: Package stringx provides the case converter and Unicode-safe
//              string helpers of the devkit toolkit.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core string utilities
// - 2025-01-26 v0.2.0: Enhanced documentation with comprehensive structure and examples
// - 2026-10-18 v0.3.0: Case converter tool, random helpers moved to randx

// Package stringx provides case conversion and string helpers.
//
// # Case conversion
//
// ConvertCase dispatches on a CaseFormat:
//
//	stringx.ConvertCase("hello world", stringx.Lowercase) // "hello world"
//	stringx.ConvertCase("hello world", stringx.Uppercase) // "HELLO WORLD"
//	stringx.ConvertCase("hello world", stringx.TitleCase) // "Hello World"
//	stringx.ConvertCase("hello world", stringx.CamelCase) // "helloWorld"
//
// Lowercase and uppercase use the full Unicode mappings of
// golang.org/x/text/cases, so "straße" becomes "STRASSE". Title case treats
// every run of letters, digits and underscores as a word. Camel case splits on
// any run of characters that are neither letters nor digits.
//
// The identifier styles ToSnakeCase, ToKebabCase and ToPascalCase also split
// on lower-to-upper transitions, so "myVariable" and "my variable" convert
// identically.
//
// All conversions are total: they never fail and return "" for empty input.
//
// # Helpers
//
// IsBlank, Capitalize, CharCount, Truncate and FirstNonBlank are
// small Unicode-safe helpers used by the Lorem generator and the caller layer.
package stringx
