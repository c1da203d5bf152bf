// File: case_test.go
// Title: Unit Tests for Case Conversion Functions
// Description: Unit tests for the case converter formats and the identifier
//              styles, including Unicode input and separator-only edge cases.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial test implementation for case conversions
// - 2026-10-18 v0.3.0: Case converter formats and ParseCaseFormat

package stringx

import (
	"testing"

	mdwerror "github.com/msto63/devkit/foundation/core/error"
)

func TestConvertCase(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		format   CaseFormat
		expected string
	}{
		{"lowercase ascii", "Hello WORLD", Lowercase, "hello world"},
		{"lowercase unicode", "ÄÖÜ Straße", Lowercase, "äöü straße"},
		{"uppercase ascii", "hello world", Uppercase, "HELLO WORLD"},
		{"uppercase expands sharp s", "straße", Uppercase, "STRASSE"},
		{"titlecase words", "hello WORLD", TitleCase, "Hello World"},
		{"titlecase keeps separators", "foo-bar  baz", TitleCase, "Foo-Bar  Baz"},
		{"titlecase underscore is word char", "snake_CASE word", TitleCase, "Snake_case Word"},
		{"titlecase digits", "3rd place", TitleCase, "3rd Place"},
		{"titlecase unicode", "élan vital", TitleCase, "Élan Vital"},
		{"camelcase spaces", "hello world", CamelCase, "helloWorld"},
		{"camelcase mixed separators", "  foo-BAR_baz  ", CamelCase, "fooBarBaz"},
		{"camelcase separators only", " -_- ", CamelCase, ""},
		{"camelcase empty", "", CamelCase, ""},
		{"camelcase unicode", "grüße aus köln", CamelCase, "grüßeAusKöln"},
		{"snakecase", "hello world", SnakeCase, "hello_world"},
		{"kebabcase", "helloWorld", KebabCase, "hello-world"},
		{"pascalcase", "my_variable_name", PascalCase, "MyVariableName"},
		{"unknown format", "Same", CaseFormat(99), "Same"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ConvertCase(tt.input, tt.format)
			if result != tt.expected {
				t.Errorf("ConvertCase(%q, %s) = %q, expected %q", tt.input, tt.format, result, tt.expected)
			}
		})
	}
}

func TestToLower_Idempotent(t *testing.T) {
	inputs := []string{"", "Hello World", "ÀÉÎÕÜ", "MiXeD 123 _-", "ΣΊΣΥΦΟΣ"}
	for _, input := range inputs {
		once := ToLower(input)
		if twice := ToLower(once); twice != once {
			t.Errorf("ToLower not idempotent for %q: %q != %q", input, twice, once)
		}
	}
}

func TestToSnakeCase(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty string", "", ""},
		{"single word", "hello", "hello"},
		{"camelCase", "helloWorld", "hello_world"},
		{"PascalCase", "HelloWorld", "hello_world"},
		{"with spaces", "hello world", "hello_world"},
		{"kebab-case", "hello-world", "hello_world"},
		{"repeated separators", "hello  --  world", "hello_world"},
		{"digits", "version2Update", "version2_update"},
		{"unicode", "größeFehler", "größe_fehler"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := ToSnakeCase(tt.input); result != tt.expected {
				t.Errorf("ToSnakeCase(%q) = %q, expected %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestToKebabCase(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"MyVariableName", "my-variable-name"},
		{"my_variable_name", "my-variable-name"},
		{"already-kebab", "already-kebab"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if result := ToKebabCase(tt.input); result != tt.expected {
				t.Errorf("ToKebabCase(%q) = %q, expected %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestToPascalCase(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"my_variable_name", "MyVariableName"},
		{"myVariable", "MyVariable"},
		{"hello world", "HelloWorld"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if result := ToPascalCase(tt.input); result != tt.expected {
				t.Errorf("ToPascalCase(%q) = %q, expected %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestParseCaseFormat(t *testing.T) {
	tests := []struct {
		input    string
		expected CaseFormat
		wantErr  bool
	}{
		{"lowercase", Lowercase, false},
		{"UPPERCASE", Uppercase, false},
		{"Title Case", TitleCase, false},
		{"camelCase", CamelCase, false},
		{"snake_case", SnakeCase, false},
		{"kebab-case", KebabCase, false},
		{"pascal", Lowercase, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseCaseFormat(tt.input)
			if tt.wantErr {
				if !mdwerror.HasCode(err, mdwerror.CodeUnsupportedOption) {
					t.Errorf("ParseCaseFormat(%q) error = %v, want UNSUPPORTED_OPTION", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseCaseFormat(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.expected {
				t.Errorf("ParseCaseFormat(%q) = %s, expected %s", tt.input, got, tt.expected)
			}
		})
	}
}

func TestCaseFormat_StringRoundTrip(t *testing.T) {
	for _, f := range CaseFormats() {
		parsed, err := ParseCaseFormat(f.String())
		if err != nil || parsed != f {
			t.Errorf("ParseCaseFormat(%q) = %s, %v", f.String(), parsed, err)
		}
	}
}
