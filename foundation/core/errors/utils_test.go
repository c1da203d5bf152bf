// File: utils_test.go
// Title: Shared Error Handling Utilities Tests
// Description: Tests for the error builder and the standard constructors.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-18

package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	mdwerror "github.com/msto63/devkit/foundation/core/error"
)

func TestErrorBuilder(t *testing.T) {
	t.Run("basic error creation", func(t *testing.T) {
		err := NewErrorBuilder("testmodule").
			Operation("test_op").
			Message("test error").
			Detail("key", "value").
			Code(mdwerror.CodeUnsupportedOption).
			Build()

		if err == nil {
			t.Fatal("Expected error, got nil")
		}
		if err.Module() != "testmodule" {
			t.Errorf("Expected module 'testmodule', got %v", err.Module())
		}
		if err.Operation() != "test_op" {
			t.Errorf("Expected operation 'test_op', got %v", err.Operation())
		}
		if err.Details()["key"] != "value" {
			t.Errorf("Expected detail key 'value', got %v", err.Details()["key"])
		}
		if err.Severity() != mdwerror.SeverityHigh {
			t.Errorf("Expected high severity, got %v", err.Severity())
		}
	})

	t.Run("error with cause", func(t *testing.T) {
		cause := errors.New("underlying error")
		err := NewErrorBuilder("testmodule").
			Operation("test_op").
			Cause(cause).
			Build()

		if !errors.Is(err, cause) {
			t.Error("Expected error to wrap the cause")
		}
	})

	t.Run("message defaults to code message", func(t *testing.T) {
		err := NewErrorBuilder("testmodule").
			Code(mdwerror.CodeOutOfRange).
			Build()

		if err.Message() != mdwerror.CodeOutOfRange.Message() {
			t.Errorf("Expected default message, got %q", err.Message())
		}
	})
}

func TestStandardConstructors(t *testing.T) {
	tests := []struct {
		name string
		err  *mdwerror.Error
		code mdwerror.Code
	}{
		{"EmptyRequired", EmptyRequired(ModuleValidationx, "Validate", "input"), mdwerror.CodeEmptyRequired},
		{"InvalidFormat", InvalidFormat(ModuleEncodingx, "DecodeBase64", "***", "Base64"), mdwerror.CodeInvalidFormat},
		{"OutOfRange", OutOfRange(ModuleLoremx, "Generate", 10001, 1, 10000), mdwerror.CodeOutOfRange},
		{"ParseError", ParseError(ModuleTimex, "ParseDate", "not a date", nil), mdwerror.CodeParseError},
		{"Unsupported", Unsupported(ModuleHashx, "Generate", "CRC32"), mdwerror.CodeUnsupportedOption},
		{"ConversionFailed", ConversionFailed(ModuleToolkit, "Run", errors.New("boom")), mdwerror.CodeConversionFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Code() != tt.code {
				t.Errorf("Code() = %v, want %v", tt.err.Code(), tt.code)
			}
			if tt.err.Module() == "" {
				t.Error("Module() should be set")
			}
			if !IsKnownModule(tt.err.Module()) {
				t.Errorf("module %q is not registered", tt.err.Module())
			}
		})
	}
}

func TestOutOfRange_Message(t *testing.T) {
	err := OutOfRange(ModuleUUIDx, "GenerateMultiple", 0, 1, 100)
	if !strings.HasPrefix(err.Error(), "validation failed:") {
		t.Errorf("unexpected message %q", err.Error())
	}
	if err.Details()["max"] != 100 {
		t.Errorf("max detail = %v, want 100", err.Details()["max"])
	}
}

func TestExtractHelpers(t *testing.T) {
	base := InvalidFormat(ModuleMathx, "ConvertToAllBases", "12", "binary digits")
	wrapped := fmt.Errorf("caller: %w", base)

	if got := ExtractModule(wrapped); got != ModuleMathx {
		t.Errorf("ExtractModule() = %q, want %q", got, ModuleMathx)
	}
	if got := ExtractOperation(wrapped); got != "ConvertToAllBases" {
		t.Errorf("ExtractOperation() = %q", got)
	}
	if !IsModuleOperation(wrapped, ModuleMathx, "ConvertToAllBases") {
		t.Error("IsModuleOperation() = false, want true")
	}
	if ExtractDetails(errors.New("plain")) != nil {
		t.Error("ExtractDetails() on a plain error should be nil")
	}
}
