// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for errors so the caller layer can decide
//              how loudly to report a failure. Library input errors are low;
//              programming errors such as unsupported options are high.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with severity levels
// - 2026-10-18 v0.2.0: Severity mapping for the conversion codes

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates invalid user input that the user can correct
	SeverityLow Severity = iota

	// SeverityMedium indicates a failed operation in the caller layer
	SeverityMedium

	// SeverityHigh indicates a programming error (unsupported enum tag)
	SeverityHigh

	// SeverityCritical is reserved for failures that stop the process
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// Level returns the numeric level of the severity (0-3)
func (s Severity) Level() int {
	return int(s)
}

// GetSeverityFromCode determines appropriate severity level based on error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeEmptyRequired, CodeInvalidFormat, CodeOutOfRange, CodeParseError:
		return SeverityLow
	case CodeUnsupportedOption:
		return SeverityHigh
	default:
		return SeverityMedium
	}
}
