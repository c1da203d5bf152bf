// File: base_test.go
// Title: Number Base Conversion Tests
// Description: Known answers, canonical output, round trips, arbitrary
//              precision and rejection of invalid digits.
// Author: msto63
// Version: v0.3.1
// Created: 2026-10-18
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-18 v0.3.0: Base conversion tests
// - 2026-10-19 v0.3.1: Surrounding whitespace on the input literal

package mathx

import (
	"strings"
	"testing"

	mdwerror "github.com/msto63/devkit/foundation/core/error"
)

func TestConvertToAllBases(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		from     NumberBase
		expected BaseResult
	}{
		{"decimal 255", "255", Decimal, BaseResult{"11111111", "377", "255", "FF"}},
		{"lowercase hex", "ff", Hexadecimal, BaseResult{"11111111", "377", "255", "FF"}},
		{"binary", "1010", Binary, BaseResult{"1010", "12", "10", "A"}},
		{"octal", "777", Octal, BaseResult{"111111111", "777", "511", "1FF"}},
		{"zero", "0", Decimal, BaseResult{"0", "0", "0", "0"}},
		{"leading zeros", "000101", Binary, BaseResult{"101", "5", "5", "5"}},
		{"leading space", " 12", Decimal, BaseResult{"1100", "14", "12", "C"}},
		{"surrounding whitespace", "\t101 \n", Binary, BaseResult{"101", "5", "5", "5"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ConvertToAllBases(tt.value, tt.from)
			if err != nil {
				t.Fatalf("ConvertToAllBases(%q, %s) failed: %v", tt.value, tt.from, err)
			}
			if result != tt.expected {
				t.Errorf("ConvertToAllBases(%q, %s) = %+v, expected %+v", tt.value, tt.from, result, tt.expected)
			}
		})
	}
}

func TestConvertToAllBases_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		value string
		from  NumberBase
	}{
		{"empty", "", Decimal},
		{"whitespace only", "   ", Decimal},
		{"binary digit 2", "102", Binary},
		{"octal digit 8", "78", Octal},
		{"hex letter G", "FG", Hexadecimal},
		{"sign", "-5", Decimal},
		{"prefix", "0x1F", Hexadecimal},
		{"inner whitespace", "1 2", Decimal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ConvertToAllBases(tt.value, tt.from)
			if !mdwerror.HasCode(err, mdwerror.CodeInvalidFormat) {
				t.Errorf("ConvertToAllBases(%q, %s) expected INVALID_FORMAT, got %v", tt.value, tt.from, err)
			}
		})
	}
}

func TestConvertToAllBases_UnknownBase(t *testing.T) {
	_, err := ConvertToAllBases("12", NumberBase(3))
	if !mdwerror.HasCode(err, mdwerror.CodeUnsupportedOption) {
		t.Errorf("expected UNSUPPORTED_OPTION, got %v", err)
	}
}

func TestConvertToAllBases_ArbitraryPrecision(t *testing.T) {
	// 2^53 and beyond are exact
	result, err := ConvertToAllBases("9007199254740993", Decimal)
	if err != nil {
		t.Fatalf("ConvertToAllBases failed: %v", err)
	}
	if result.Hexadecimal != "20000000000001" {
		t.Errorf("hexadecimal = %q, expected %q", result.Hexadecimal, "20000000000001")
	}

	huge := "1" + strings.Repeat("0", 200)
	result, err = ConvertToAllBases(huge, Binary)
	if err != nil {
		t.Fatalf("ConvertToAllBases failed: %v", err)
	}
	if result.Binary != huge {
		t.Errorf("binary = %q, expected the input back", result.Binary)
	}
	if expected := "1" + strings.Repeat("0", 50); result.Hexadecimal != expected {
		t.Errorf("hexadecimal = %q, expected %q", result.Hexadecimal, expected)
	}
}

func TestConvertBase_RoundTrip(t *testing.T) {
	values := []string{"0", "1", "42", "65535", "18446744073709551616"}
	for _, v := range values {
		for _, b := range NumberBases() {
			converted, err := ConvertBase(v, Decimal, b)
			if err != nil {
				t.Fatalf("ConvertBase(%q, 10, %s) failed: %v", v, b, err)
			}
			back, err := ConvertBase(converted, b, Decimal)
			if err != nil {
				t.Fatalf("ConvertBase(%q, %s, 10) failed: %v", converted, b, err)
			}
			if back != v {
				t.Errorf("round trip of %q through base %s = %q", v, b, back)
			}
		}
	}
}

func TestConvertBase_Canonical(t *testing.T) {
	result, err := ConvertBase("00ff", Hexadecimal, Hexadecimal)
	if err != nil {
		t.Fatalf("ConvertBase failed: %v", err)
	}
	if result != "FF" {
		t.Errorf("ConvertBase(\"00ff\") = %q, expected %q", result, "FF")
	}

	result, err = ConvertBase(" 255 ", Decimal, Hexadecimal)
	if err != nil {
		t.Fatalf("ConvertBase with surrounding spaces failed: %v", err)
	}
	if result != "FF" {
		t.Errorf("ConvertBase(\" 255 \") = %q, expected %q", result, "FF")
	}

	_, err = ConvertBase("1", Decimal, NumberBase(12))
	if !mdwerror.HasCode(err, mdwerror.CodeUnsupportedOption) {
		t.Errorf("expected UNSUPPORTED_OPTION, got %v", err)
	}
}

func TestNumberBase_Metadata(t *testing.T) {
	if name := Hexadecimal.Name(); name != "Hexadecimal" {
		t.Errorf("Name() = %q", name)
	}
	if desc := Binary.Description(); desc != "Base 2 (0-1)" {
		t.Errorf("Description() = %q", desc)
	}
	if s := Octal.String(); s != "8" {
		t.Errorf("String() = %q", s)
	}
	if NumberBase(5).Pattern() != nil {
		t.Error("Pattern() of an unsupported base should be nil")
	}
	if NumberBase(5).IsValid() {
		t.Error("IsValid() of base 5 should be false")
	}
}

func TestParseNumberBase(t *testing.T) {
	tests := []struct {
		input    string
		expected NumberBase
		wantErr  bool
	}{
		{"2", Binary, false},
		{"Binary", Binary, false},
		{"oct", Octal, false},
		{" 10 ", Decimal, false},
		{"HEX", Hexadecimal, false},
		{"36", Decimal, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result, err := ParseNumberBase(tt.input)
			if tt.wantErr {
				if !mdwerror.HasCode(err, mdwerror.CodeUnsupportedOption) {
					t.Errorf("ParseNumberBase(%q) expected UNSUPPORTED_OPTION, got %v", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseNumberBase(%q) failed: %v", tt.input, err)
			}
			if result != tt.expected {
				t.Errorf("ParseNumberBase(%q) = %s, expected %s", tt.input, result, tt.expected)
			}
		})
	}
}
