// File: codes.go
// Title: Error Code Definitions
// Description: Defines standardized error codes for consistent error classification
//              across the devkit conversion library. Every library error is a
//              caller-correctable input error; the codes let callers render the
//              right message without parsing error strings.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core error codes
// - 2026-10-18 v0.2.0: Reduced to the conversion taxonomy, added user messages

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Input validation codes
	CodeEmptyRequired     Code = "EMPTY_REQUIRED"
	CodeInvalidFormat     Code = "INVALID_FORMAT"
	CodeOutOfRange        Code = "OUT_OF_RANGE"
	CodeParseError        Code = "PARSE_ERROR"
	CodeUnsupportedOption Code = "UNSUPPORTED_OPTION"

	// Caller layer codes
	CodeConversionFailed Code = "CONVERSION_FAILED"
	CodeClipboardFailed  Code = "CLIPBOARD_FAILED"
	CodeConfigError      Code = "CONFIG_ERROR"

	CodeUnknown Code = "UNKNOWN"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeEmptyRequired, CodeInvalidFormat, CodeOutOfRange, CodeParseError,
		CodeUnsupportedOption, CodeConversionFailed, CodeClipboardFailed,
		CodeConfigError, CodeUnknown:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeEmptyRequired, CodeInvalidFormat, CodeOutOfRange, CodeParseError:
		return "validation"
	case CodeUnsupportedOption:
		return "programming"
	case CodeConversionFailed, CodeClipboardFailed:
		return "operation"
	case CodeConfigError:
		return "configuration"
	default:
		return "generic"
	}
}

// Message returns the user-facing message for the code.
// Unknown codes fall back to the generic message.
func (c Code) Message() string {
	switch c {
	case CodeInvalidFormat:
		return "Invalid input format"
	case CodeOutOfRange:
		return "Value is out of acceptable range"
	case CodeEmptyRequired:
		return "This field is required"
	case CodeParseError:
		return "Unable to parse input"
	case CodeUnsupportedOption:
		return "Unsupported option"
	case CodeConversionFailed:
		return "Conversion operation failed"
	case CodeClipboardFailed:
		return "Failed to copy to clipboard"
	case CodeConfigError:
		return "Invalid configuration"
	default:
		return "An unexpected error occurred"
	}
}

// MessageWithContext appends context to the user-facing message
func (c Code) MessageWithContext(context string) string {
	if context == "" {
		return c.Message()
	}
	return c.Message() + ": " + context
}
