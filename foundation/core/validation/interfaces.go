// File: interfaces.go
// Title: Core Validation Interfaces and Types
// Description: Defines the Validator interface and the result and error types
//              shared by all devkit validators.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial validation interfaces implementation
// - 2026-10-18 v0.2.0: String inputs, ValidatedValue, codes from core/error

package validation

import (
	"fmt"
	"strings"

	mdwerror "github.com/msto63/devkit/foundation/core/error"
)

// Validator defines the interface for all validation functions
type Validator interface {
	// Validate checks input and returns a structured result. It never
	// modifies the input.
	Validate(input string) ValidationResult
}

// ValidatorFunc is a function type that implements the Validator interface
type ValidatorFunc func(input string) ValidationResult

// Validate implements the Validator interface for ValidatorFunc
func (f ValidatorFunc) Validate(input string) ValidationResult {
	return f(input)
}

// ValidationResult represents the result of a validation operation.
// ValidatedValue is non-nil iff Valid is true.
type ValidationResult struct {
	Valid          bool              `json:"valid"`
	ValidatedValue *string           `json:"validatedValue,omitempty"`
	Errors         []ValidationError `json:"errors,omitempty"`
}

// ValidationError represents a single validation error
type ValidationError struct {
	Field   string        `json:"field"`
	Message string        `json:"message"`
	Code    mdwerror.Code `json:"code"`
}

// Success creates a successful result holding input unchanged
func Success(input string) ValidationResult {
	value := input
	return ValidationResult{
		Valid:          true,
		ValidatedValue: &value,
	}
}

// Failure creates a failed result with a single error
func Failure(field string, code mdwerror.Code, message string) ValidationResult {
	return ValidationResult{
		Valid: false,
		Errors: []ValidationError{
			{Field: field, Message: message, Code: code},
		},
	}
}

// AddError adds an error to an existing validation result
func (r *ValidationResult) AddError(field string, code mdwerror.Code, message string) *ValidationResult {
	r.Valid = false
	r.ValidatedValue = nil
	r.Errors = append(r.Errors, ValidationError{
		Field:   field,
		Message: message,
		Code:    code,
	})
	return r
}

// Value returns the validated value, or "" for a failed result
func (r ValidationResult) Value() string {
	if r.ValidatedValue == nil {
		return ""
	}
	return *r.ValidatedValue
}

// FirstError returns the first validation error, or nil if validation passed
func (r ValidationResult) FirstError() *ValidationError {
	if len(r.Errors) == 0 {
		return nil
	}
	return &r.Errors[0]
}

func (r ValidationResult) errorMessages() []string {
	messages := make([]string, len(r.Errors))
	for i, err := range r.Errors {
		messages[i] = err.Message
	}
	return messages
}

// HasError checks if the result contains a specific error code
func (r ValidationResult) HasError(code mdwerror.Code) bool {
	for _, err := range r.Errors {
		if err.Code == code {
			return true
		}
	}
	return false
}

// ToError converts the validation result to a standard error.
// Returns nil if validation passed.
func (r ValidationResult) ToError() error {
	if r.Valid {
		return nil
	}

	if len(r.Errors) == 0 {
		return mdwerror.New("validation failed").
			WithCode(mdwerror.CodeUnknown)
	}

	first := r.Errors[0]
	err := mdwerror.New(first.Message).
		WithCode(first.Code).
		WithModule("validation")

	if first.Field != "" {
		err = err.WithDetail("field", first.Field)
	}

	if len(r.Errors) > 1 {
		err = err.WithDetail("totalErrors", len(r.Errors))
		err = err.WithDetail("allMessages", r.errorMessages())
	}

	return err
}

// String returns a human-readable representation of the validation result
func (r ValidationResult) String() string {
	if r.Valid {
		return "ValidationResult{valid: true}"
	}

	var parts []string
	parts = append(parts, "ValidationResult{valid: false")

	if len(r.Errors) > 0 {
		parts = append(parts, fmt.Sprintf("errors: %d", len(r.Errors)))
		first := r.Errors[0]
		parts = append(parts, fmt.Sprintf("first: %s", first.Message))
		if first.Field != "" {
			parts = append(parts, fmt.Sprintf("field: %s", first.Field))
		}
	}

	return strings.Join(parts, ", ") + "}"
}

// String returns a human-readable representation of a validation error
func (e ValidationError) String() string {
	var parts []string

	if e.Field != "" {
		parts = append(parts, fmt.Sprintf("field:%s", e.Field))
	}
	parts = append(parts, fmt.Sprintf("code:%s", e.Code))
	parts = append(parts, fmt.Sprintf("message:%s", e.Message))

	return fmt.Sprintf("ValidationError{%s}", strings.Join(parts, ", "))
}

// FormatValidationErrors joins the messages of errs with ". "
func FormatValidationErrors(errs []ValidationError) string {
	messages := make([]string, len(errs))
	for i, err := range errs {
		messages[i] = err.Message
	}
	return strings.Join(messages, ". ")
}

// Combine merges multiple validation results into a single result.
// The combined ValidatedValue is taken from the last valid input when every
// result passed.
func Combine(results ...ValidationResult) ValidationResult {
	combined := ValidationResult{Valid: true}

	for _, result := range results {
		if !result.Valid {
			combined.Valid = false
			combined.Errors = append(combined.Errors, result.Errors...)
			continue
		}
		if result.ValidatedValue != nil {
			combined.ValidatedValue = result.ValidatedValue
		}
	}

	if !combined.Valid {
		combined.ValidatedValue = nil
	}
	return combined
}
