// File: utils.go
// Title: Shared Error Handling Utilities
// Description: Provides the ErrorBuilder and the standard constructors used by
//              all devkit foundation modules for consistent error patterns.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of shared error utilities
// - 2025-07-26 v0.1.1: Enhanced OutOfRange function with "validation failed:" prefix
// - 2026-10-18 v0.2.0: Constructors per conversion code, module stored on the error

package errors

import (
	stderrors "errors"
	"fmt"

	mdwerror "github.com/msto63/devkit/foundation/core/error"
)

// ErrorBuilder provides a fluent interface for building standardized errors
type ErrorBuilder struct {
	module    string
	operation string
	message   string
	cause     error
	details   map[string]interface{}
	code      mdwerror.Code
}

// NewErrorBuilder creates a new error builder for the specified module
func NewErrorBuilder(module string) *ErrorBuilder {
	return &ErrorBuilder{
		module:  module,
		details: make(map[string]interface{}),
		code:    mdwerror.CodeUnknown,
	}
}

// Operation sets the operation name for the error
func (eb *ErrorBuilder) Operation(operation string) *ErrorBuilder {
	eb.operation = operation
	return eb
}

// Message sets the error message
func (eb *ErrorBuilder) Message(message string) *ErrorBuilder {
	eb.message = message
	return eb
}

// Messagef sets the error message with formatting
func (eb *ErrorBuilder) Messagef(format string, args ...interface{}) *ErrorBuilder {
	eb.message = fmt.Sprintf(format, args...)
	return eb
}

// Cause sets the underlying cause of the error
func (eb *ErrorBuilder) Cause(cause error) *ErrorBuilder {
	eb.cause = cause
	return eb
}

// Detail adds a detail key-value pair to the error
func (eb *ErrorBuilder) Detail(key string, value interface{}) *ErrorBuilder {
	eb.details[key] = value
	return eb
}

// Code sets the error code
func (eb *ErrorBuilder) Code(code mdwerror.Code) *ErrorBuilder {
	eb.code = code
	return eb
}

// Build creates the final error
func (eb *ErrorBuilder) Build() *mdwerror.Error {
	if eb.message == "" {
		eb.message = eb.code.Message()
	}

	var err *mdwerror.Error
	if eb.cause != nil {
		err = mdwerror.Wrap(eb.cause, eb.message)
	} else {
		err = mdwerror.New(eb.message)
	}

	return err.
		WithCode(eb.code).
		WithModule(eb.module).
		WithOperation(eb.operation).
		WithDetails(eb.details)
}

// =============================================================================
// STANDARD ERROR CREATION FUNCTIONS
// =============================================================================
// One constructor per code. Use these instead of fmt.Errorf() or errors.New()
// so the caller layer can map every failure to a user-facing message.

// EmptyRequired reports a blank required input
func EmptyRequired(module, operation, field string) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("%s is required", field).
		Code(mdwerror.CodeEmptyRequired).
		Detail("field", field).
		Build()
}

// InvalidFormat reports input whose character set or shape is wrong
func InvalidFormat(module, operation string, input interface{}, expected string) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("invalid format: expected %s", expected).
		Code(mdwerror.CodeInvalidFormat).
		Detail("input", input).
		Detail("expected_format", expected).
		Build()
}

// OutOfRange reports a value outside [min, max]
func OutOfRange(module, operation string, value, min, max interface{}) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("validation failed: value %v out of range [%v, %v]", value, min, max).
		Code(mdwerror.CodeOutOfRange).
		Detail("value", value).
		Detail("min", min).
		Detail("max", max).
		Build()
}

// ParseError reports input that could not be parsed; cause may be nil
func ParseError(module, operation string, input interface{}, cause error) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("unable to parse %q", fmt.Sprint(input)).
		Cause(cause).
		Code(mdwerror.CodeParseError).
		Detail("input", input).
		Build()
}

// Unsupported reports an enum tag the module does not handle
func Unsupported(module, operation string, option interface{}) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("unsupported option %v", option).
		Code(mdwerror.CodeUnsupportedOption).
		Detail("option", option).
		Build()
}

// ConversionFailed wraps a failure of an otherwise valid conversion
func ConversionFailed(module, operation string, cause error) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("%s.%s failed", module, operation).
		Cause(cause).
		Code(mdwerror.CodeConversionFailed).
		Build()
}

// Utility functions for error analysis

// ExtractDetails extracts all details from a devkit error in the chain
func ExtractDetails(err error) map[string]interface{} {
	var e *mdwerror.Error
	if stderrors.As(err, &e) {
		return e.Details()
	}
	return nil
}

// ExtractModule extracts the module name from an error
func ExtractModule(err error) string {
	var e *mdwerror.Error
	if stderrors.As(err, &e) {
		return e.Module()
	}
	return ""
}

// ExtractOperation extracts the operation name from an error
func ExtractOperation(err error) string {
	var e *mdwerror.Error
	if stderrors.As(err, &e) {
		return e.Operation()
	}
	return ""
}

// IsModuleOperation checks if error is from specific module and operation
func IsModuleOperation(err error, module, operation string) bool {
	return ExtractModule(err) == module && ExtractOperation(err) == operation
}
