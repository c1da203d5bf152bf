// File: validationx_test.go
// Title: Tool Input Validator Tests
// Description: Table-driven tests for every validation kind and the
//              dispatcher.
// Author: msto63
// Version: v0.2.1
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-18 v0.2.0: Conversion input kinds
// - 2026-10-19 v0.2.1: Number-base input with surrounding whitespace

package validationx

import (
	"testing"

	mdwerror "github.com/msto63/devkit/foundation/core/error"
	"github.com/msto63/devkit/foundation/utils/loremx"
	"github.com/msto63/devkit/foundation/utils/mathx"
)

type validationCase struct {
	name  string
	input string
	kind  Kind
	cfg   Config
	code  mdwerror.Code // empty for valid input
}

func runCases(t *testing.T, cases []validationCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result := Validate(tc.input, tc.kind, tc.cfg)
			if tc.code == "" {
				if !result.Valid {
					t.Fatalf("Validate(%q) unexpected errors: %s", tc.input, result)
				}
				if result.ValidatedValue == nil {
					t.Fatalf("Validate(%q) returned no validated value", tc.input)
				}
				if *result.ValidatedValue != tc.input {
					t.Errorf("validated value = %q, expected the input %q unchanged", *result.ValidatedValue, tc.input)
				}
				return
			}
			if result.Valid {
				t.Fatalf("Validate(%q) = valid, expected %s", tc.input, tc.code)
			}
			if result.ValidatedValue != nil {
				t.Errorf("failed validation carried value %q", *result.ValidatedValue)
			}
			if len(result.Errors) != 1 {
				t.Fatalf("expected 1 error, got %d: %s", len(result.Errors), result)
			}
			if result.Errors[0].Code != tc.code {
				t.Errorf("error code = %s, expected %s", result.Errors[0].Code, tc.code)
			}
			if result.Errors[0].Message == "" {
				t.Error("error message is empty")
			}
		})
	}
}

func TestValidate_Text(t *testing.T) {
	runCases(t, []validationCase{
		{"empty", "", KindText, Config{}, ""},
		{"whitespace kept", "  hello  ", KindText, Config{}, ""},
	})
}

func TestValidate_Base64(t *testing.T) {
	runCases(t, []validationCase{
		{"padded", "SGVsbG8=", KindBase64, Config{}, ""},
		{"unpadded", "SGVsbG8", KindBase64, Config{}, ""},
		{"blank", " \t", KindBase64, Config{}, mdwerror.CodeEmptyRequired},
		{"bad alphabet", "***", KindBase64, Config{}, mdwerror.CodeInvalidFormat},
		{"url alphabet", "SGV-bG8_", KindBase64, Config{}, mdwerror.CodeInvalidFormat},
		{"bad length", "SGVsb", KindBase64, Config{}, mdwerror.CodeInvalidFormat},
		{"too much padding", "SGVsbG8===", KindBase64, Config{}, mdwerror.CodeInvalidFormat},
	})
}

func TestValidateBase64_Named(t *testing.T) {
	result := ValidateBase64("***")
	if result.Valid {
		t.Fatal("ValidateBase64(\"***\") = valid")
	}
	if !result.HasError(mdwerror.CodeInvalidFormat) {
		t.Errorf("expected INVALID_FORMAT, got %s", result)
	}
}

func TestValidate_NumberBase(t *testing.T) {
	runCases(t, []validationCase{
		{"binary", "1010", KindNumberBase, Config{FromBase: mathx.Binary}, ""},
		{"binary with 2", "102", KindNumberBase, Config{FromBase: mathx.Binary}, mdwerror.CodeInvalidFormat},
		{"binary leading space", " 101", KindNumberBase, Config{FromBase: mathx.Binary}, ""},
		{"octal", "777", KindNumberBase, Config{FromBase: mathx.Octal}, ""},
		{"octal with 8", "78", KindNumberBase, Config{FromBase: mathx.Octal}, mdwerror.CodeInvalidFormat},
		{"decimal default", "255", KindNumberBase, Config{}, ""},
		{"decimal surrounding whitespace", "\t255 \n", KindNumberBase, Config{}, ""},
		{"decimal inner space", "2 55", KindNumberBase, Config{}, mdwerror.CodeInvalidFormat},
		{"decimal letters", "25a", KindNumberBase, Config{}, mdwerror.CodeInvalidFormat},
		{"hex mixed case", "fF09", KindNumberBase, Config{FromBase: mathx.Hexadecimal}, ""},
		{"hex with g", "FG", KindNumberBase, Config{FromBase: mathx.Hexadecimal}, mdwerror.CodeInvalidFormat},
		{"blank", "", KindNumberBase, Config{FromBase: mathx.Hexadecimal}, mdwerror.CodeEmptyRequired},
		{"whitespace only", "   ", KindNumberBase, Config{FromBase: mathx.Hexadecimal}, mdwerror.CodeEmptyRequired},
		{"unknown base", "12", KindNumberBase, Config{FromBase: mathx.NumberBase(7)}, mdwerror.CodeUnsupportedOption},
	})
}

func TestValidateNumberBase_Message(t *testing.T) {
	result := ValidateNumberBase("102", mathx.Binary)
	first := result.FirstError()
	if first == nil {
		t.Fatal("expected an error")
	}
	expected := "Invalid binary number. Only digits valid for base 2 are allowed."
	if first.Message != expected {
		t.Errorf("message = %q, expected %q", first.Message, expected)
	}
}

func TestValidate_Timestamp(t *testing.T) {
	runCases(t, []validationCase{
		{"seconds", "1700000000", KindTimestamp, Config{}, ""},
		{"milliseconds", "1700000000000", KindTimestamp, Config{}, ""},
		{"zero", "0", KindTimestamp, Config{}, ""},
		{"max safe", "9007199254740991", KindTimestamp, Config{}, ""},
		{"above max safe", "9007199254740992", KindTimestamp, Config{}, mdwerror.CodeOutOfRange},
		{"negative", "-1", KindTimestamp, Config{}, mdwerror.CodeOutOfRange},
		{"int64 overflow", "99999999999999999999", KindTimestamp, Config{}, mdwerror.CodeOutOfRange},
		{"not a number", "soon", KindTimestamp, Config{}, mdwerror.CodeInvalidFormat},
		{"fraction", "1.5", KindTimestamp, Config{}, mdwerror.CodeInvalidFormat},
		{"blank", "  ", KindTimestamp, Config{}, mdwerror.CodeEmptyRequired},
	})
}

func TestValidate_DateString(t *testing.T) {
	runCases(t, []validationCase{
		{"iso", "2023-11-14T22:13:20Z", KindDateString, Config{}, ""},
		{"date only", "2023-11-14", KindDateString, Config{}, ""},
		{"garbage", "next tuesday", KindDateString, Config{}, mdwerror.CodeParseError},
		{"blank", "", KindDateString, Config{}, mdwerror.CodeEmptyRequired},
	})
}

func TestValidate_LoremQuantity(t *testing.T) {
	runCases(t, []validationCase{
		{"words", "10000", KindLoremQuantity, Config{Unit: loremx.Words}, ""},
		{"too many words", "10001", KindLoremQuantity, Config{Unit: loremx.Words}, mdwerror.CodeOutOfRange},
		{"sentences max", "1000", KindLoremQuantity, Config{Unit: loremx.Sentences}, ""},
		{"too many paragraphs", "101", KindLoremQuantity, Config{Unit: loremx.Paragraphs}, mdwerror.CodeOutOfRange},
		{"zero", "0", KindLoremQuantity, Config{Unit: loremx.Paragraphs}, mdwerror.CodeOutOfRange},
		{"not a number", "five", KindLoremQuantity, Config{}, mdwerror.CodeInvalidFormat},
		{"blank", "", KindLoremQuantity, Config{}, mdwerror.CodeEmptyRequired},
		{"unknown unit", "5", KindLoremQuantity, Config{Unit: loremx.Unit(9)}, mdwerror.CodeUnsupportedOption},
	})
}

func TestValidate_UUID(t *testing.T) {
	runCases(t, []validationCase{
		{"lowercase", "3f2b8c1e-4d5a-4b6c-9e7f-0a1b2c3d4e5f", KindUUID, Config{}, ""},
		{"uppercase", "3F2B8C1E-4D5A-4B6C-9E7F-0A1B2C3D4E5F", KindUUID, Config{}, ""},
		{"version 1", "3f2b8c1e-4d5a-1b6c-9e7f-0a1b2c3d4e5f", KindUUID, Config{}, mdwerror.CodeInvalidFormat},
		{"blank", "", KindUUID, Config{}, mdwerror.CodeEmptyRequired},
	})
}

func TestValidate_UUIDCount(t *testing.T) {
	runCases(t, []validationCase{
		{"one", "1", KindUUIDCount, Config{}, ""},
		{"hundred", "100", KindUUIDCount, Config{}, ""},
		{"too many", "101", KindUUIDCount, Config{}, mdwerror.CodeOutOfRange},
		{"zero", "0", KindUUIDCount, Config{}, mdwerror.CodeOutOfRange},
	})
}

func TestValidate_UnknownKind(t *testing.T) {
	result := Validate("x", Kind(42), Config{})
	if result.Valid {
		t.Fatal("unknown kind validated")
	}
	if !result.HasError(mdwerror.CodeUnsupportedOption) {
		t.Errorf("expected UNSUPPORTED_OPTION, got %s", result)
	}
	if s := Kind(42).String(); s != "unknown" {
		t.Errorf("Kind(42).String() = %q, expected %q", s, "unknown")
	}
}

func TestValidate_ToError(t *testing.T) {
	err := ValidateBase64("***").ToError()
	if err == nil {
		t.Fatal("ToError() = nil for an invalid result")
	}
	if !mdwerror.HasCode(err, mdwerror.CodeInvalidFormat) {
		t.Errorf("expected INVALID_FORMAT, got %v", err)
	}
}
