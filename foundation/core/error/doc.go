// Package error provides the structured error type of the devkit library.
//
// Package: error
// Title: devkit Error Handling Framework
// Description: Every failure the conversion library can report is an input error
//              the caller can correct. This package gives those failures a
//              machine-readable Code, a derived Severity and a user-facing
//              message, while remaining a plain Go error.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors and codes
// - 2026-10-18 v0.2.0: Conversion taxonomy (EMPTY_REQUIRED, INVALID_FORMAT,
//                       OUT_OF_RANGE, PARSE_ERROR, UNSUPPORTED_OPTION)
//
// Usage:
//
//	import mdwerror "github.com/msto63/devkit/foundation/core/error"
//
//	err := mdwerror.New("invalid Base64 string").
//		WithCode(mdwerror.CodeInvalidFormat).
//		WithModule("encodingx").
//		WithOperation("DecodeBase64")
//
//	if mdwerror.HasCode(err, mdwerror.CodeInvalidFormat) {
//		fmt.Println(mdwerror.CodeInvalidFormat.Message())
//	}
package error
