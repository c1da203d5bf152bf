// File: common.go
// Title: Validation Building Blocks
// Description: Generic rules that tool validators compose into chains:
//              required, regular expression pattern and integer range.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-25 v0.1.0: Initial validation framework utilities
// - 2026-10-18 v0.2.0: Rules for string inputs

package validation

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	mdwerror "github.com/msto63/devkit/foundation/core/error"
)

// IsBlank reports whether s is empty after trimming Unicode whitespace
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// Required fails with EMPTY_REQUIRED when the input is blank
func Required(field string) Validator {
	return ValidatorFunc(func(input string) ValidationResult {
		if IsBlank(input) {
			return Failure(field, mdwerror.CodeEmptyRequired, fmt.Sprintf("%s is required", capitalize(field)))
		}
		return Success(input)
	})
}

// Pattern fails with INVALID_FORMAT when the input does not match re
func Pattern(field string, re *regexp.Regexp, message string) Validator {
	return ValidatorFunc(func(input string) ValidationResult {
		if !re.MatchString(input) {
			return Failure(field, mdwerror.CodeInvalidFormat, message)
		}
		return Success(input)
	})
}

// IntRange parses the input as a base-10 integer and checks min <= n <= max.
// Non-integers fail with INVALID_FORMAT, values outside the range with
// OUT_OF_RANGE.
func IntRange(field string, min, max int64) Validator {
	return ValidatorFunc(func(input string) ValidationResult {
		n, err := strconv.ParseInt(strings.TrimSpace(input), 10, 64)
		if err != nil {
			var numErr *strconv.NumError
			if errors.As(err, &numErr) && numErr.Err == strconv.ErrRange {
				return Failure(field, mdwerror.CodeOutOfRange,
					fmt.Sprintf("%s must be between %d and %d", capitalize(field), min, max))
			}
			return Failure(field, mdwerror.CodeInvalidFormat,
				fmt.Sprintf("%s must be a whole number", capitalize(field)))
		}
		if n < min || n > max {
			return Failure(field, mdwerror.CodeOutOfRange,
				fmt.Sprintf("%s must be between %d and %d", capitalize(field), min, max))
		}
		return Success(input)
	})
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
