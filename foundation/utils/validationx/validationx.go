// File: validationx.go
// Title: Tool Input Validators
// Description: Per-kind validators for conversion tool input, built from
//              validation.Chain (required, then pattern, then range) and a
//              Validate dispatcher selecting one by Kind.
// Author: msto63
// Version: v0.2.1
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with comprehensive validation utilities
// - 2026-10-18 v0.2.0: Rebuilt around conversion input kinds
// - 2026-10-19 v0.2.1: Number-base digits are checked on the trimmed input

package validationx

import (
	"fmt"
	"strings"

	mdwerror "github.com/msto63/devkit/foundation/core/error"
	"github.com/msto63/devkit/foundation/core/validation"
	"github.com/msto63/devkit/foundation/utils/encodingx"
	"github.com/msto63/devkit/foundation/utils/loremx"
	"github.com/msto63/devkit/foundation/utils/mathx"
	"github.com/msto63/devkit/foundation/utils/timex"
	"github.com/msto63/devkit/foundation/utils/uuidx"
)

// Kind selects the validator applied by Validate
type Kind int

const (
	KindText Kind = iota
	KindBase64
	KindNumberBase
	KindTimestamp
	KindDateString
	KindLoremQuantity
	KindUUID
	KindUUIDCount
)

var kindNames = map[Kind]string{
	KindText:          "text",
	KindBase64:        "base64",
	KindNumberBase:    "number-base",
	KindTimestamp:     "timestamp",
	KindDateString:    "date-string",
	KindLoremQuantity: "lorem-quantity",
	KindUUID:          "uuid",
	KindUUIDCount:     "uuid-count",
}

// String returns the kind tag
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Kinds returns all kinds
func Kinds() []Kind {
	return []Kind{KindText, KindBase64, KindNumberBase, KindTimestamp, KindDateString, KindLoremQuantity, KindUUID, KindUUIDCount}
}

// Config carries the context some kinds need
type Config struct {
	// FromBase is the base of a KindNumberBase value; zero means Decimal
	FromBase mathx.NumberBase
	// Unit bounds a KindLoremQuantity value
	Unit loremx.Unit
}

const inputField = "input"

// Validate applies the validator for kind. Successful results carry the
// input unchanged; an unknown kind yields UNSUPPORTED_OPTION.
func Validate(input string, kind Kind, cfg Config) validation.ValidationResult {
	switch kind {
	case KindText:
		return ValidateText(input)
	case KindBase64:
		return ValidateBase64(input)
	case KindNumberBase:
		return ValidateNumberBase(input, cfg.FromBase)
	case KindTimestamp:
		return ValidateTimestamp(input)
	case KindDateString:
		return ValidateDateString(input)
	case KindLoremQuantity:
		return ValidateLoremQuantity(input, cfg.Unit)
	case KindUUID:
		return ValidateUUID(input)
	case KindUUIDCount:
		return ValidateUUIDCount(input)
	default:
		return validation.Failure("kind", mdwerror.CodeUnsupportedOption,
			fmt.Sprintf("Unsupported validation kind %d", int(kind)))
	}
}

// ValidateText accepts any input, including the empty string
func ValidateText(input string) validation.ValidationResult {
	return validation.Success(input)
}

// ValidateBase64 checks the alphabet and that the length and padding can be
// decoded
func ValidateBase64(input string) validation.ValidationResult {
	return validation.NewChain("base64").
		Add(validation.Required(inputField)).
		Add(validation.Pattern(inputField, encodingx.Base64Pattern,
			"Invalid Base64 string. Must contain only A-Z, a-z, 0-9, +, /, and optional = padding.")).
		AddFunc(func(s string) validation.ValidationResult {
			if !encodingx.IsValidBase64(s) {
				return validation.Failure(inputField, mdwerror.CodeInvalidFormat,
					"Invalid Base64 string. Length or padding is incorrect.")
			}
			return validation.Success(s)
		}).
		Validate(input)
}

// ValidateNumberBase checks that input, ignoring surrounding whitespace, only
// uses digits of base from. The untrimmed input is returned.
func ValidateNumberBase(input string, from mathx.NumberBase) validation.ValidationResult {
	if from == 0 {
		from = mathx.Decimal
	}
	if !from.IsValid() {
		return validation.Failure("base", mdwerror.CodeUnsupportedOption,
			fmt.Sprintf("Unsupported number base %d", int(from)))
	}

	message := fmt.Sprintf("Invalid %s number. Only digits valid for base %d are allowed.",
		strings.ToLower(from.Name()), int(from))

	pattern := from.Pattern()
	return validation.NewChain("number-base").
		Add(validation.Required(inputField)).
		AddFunc(func(s string) validation.ValidationResult {
			if !pattern.MatchString(strings.TrimSpace(s)) {
				return validation.Failure(inputField, mdwerror.CodeInvalidFormat, message)
			}
			return validation.Success(s)
		}).
		Validate(input)
}

// ValidateTimestamp checks for an integer in [0, 2^53-1]
func ValidateTimestamp(input string) validation.ValidationResult {
	return validation.NewChain("timestamp").
		Add(validation.Required("timestamp")).
		Add(validation.IntRange("timestamp", 0, timex.MaxTimestamp)).
		Validate(input)
}

// ValidateDateString checks that timex.ParseDate accepts input
func ValidateDateString(input string) validation.ValidationResult {
	return validation.NewChain("date-string").
		Add(validation.Required(inputField)).
		AddFunc(func(s string) validation.ValidationResult {
			if _, err := timex.ParseDate(s); err != nil {
				return validation.Failure(inputField, mdwerror.CodeParseError,
					"Invalid date format. Please enter a valid date string.")
			}
			return validation.Success(s)
		}).
		Validate(input)
}

// ValidateLoremQuantity checks the count against the bounds of unit
func ValidateLoremQuantity(input string, unit loremx.Unit) validation.ValidationResult {
	if !unit.IsValid() {
		return validation.Failure("unit", mdwerror.CodeUnsupportedOption,
			fmt.Sprintf("Unsupported unit %s", unit))
	}
	min, max := unit.Bounds()

	return validation.NewChain("lorem-quantity").
		Add(validation.Required("quantity")).
		Add(validation.IntRange("quantity", int64(min), int64(max))).
		Validate(input)
}

// ValidateUUID checks for a version 4 UUID in canonical form
func ValidateUUID(input string) validation.ValidationResult {
	return validation.NewChain("uuid").
		Add(validation.Required(inputField)).
		AddFunc(func(s string) validation.ValidationResult {
			if !uuidx.IsValid(s) {
				return validation.Failure(inputField, mdwerror.CodeInvalidFormat,
					"Invalid UUID. Expected a version 4 UUID such as 3f2b8c1e-4d5a-4b6c-9e7f-0a1b2c3d4e5f.")
			}
			return validation.Success(s)
		}).
		Validate(input)
}

// ValidateUUIDCount checks a batch size within [uuidx.MinBatch, uuidx.MaxBatch]
func ValidateUUIDCount(input string) validation.ValidationResult {
	return validation.NewChain("uuid-count").
		Add(validation.Required("count")).
		Add(validation.IntRange("count", uuidx.MinBatch, uuidx.MaxBatch)).
		Validate(input)
}
