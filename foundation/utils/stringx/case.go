// File: case.go
// Title: String Case Conversion Utilities
// Description: Implements the case converter tool (lowercase, UPPERCASE,
//              Title Case, camelCase) and the identifier styles snake_case,
//              kebab-case and PascalCase. All conversions are total and
//              Unicode-aware.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with case conversion utilities
// - 2026-10-18 v0.3.0: CaseFormat dispatcher, x/text case mapping, word-run
//                       based title and camel case

package stringx

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	mdwerrors "github.com/msto63/devkit/foundation/core/errors"
)

// CaseFormat selects a case conversion
type CaseFormat int

const (
	Lowercase CaseFormat = iota
	Uppercase
	TitleCase
	CamelCase
	SnakeCase
	KebabCase
	PascalCase
)

var caseFormatNames = map[CaseFormat]string{
	Lowercase:  "lowercase",
	Uppercase:  "uppercase",
	TitleCase:  "titlecase",
	CamelCase:  "camelcase",
	SnakeCase:  "snakecase",
	KebabCase:  "kebabcase",
	PascalCase: "pascalcase",
}

// String returns the lowercase tag of the format
func (f CaseFormat) String() string {
	if name, ok := caseFormatNames[f]; ok {
		return name
	}
	return "unknown"
}

// CaseFormats returns all supported formats in display order
func CaseFormats() []CaseFormat {
	return []CaseFormat{Lowercase, Uppercase, TitleCase, CamelCase, SnakeCase, KebabCase, PascalCase}
}

// ParseCaseFormat parses a format tag. Separators and case are ignored, so
// "camelCase", "camel-case" and "CAMELCASE" are all accepted.
func ParseCaseFormat(s string) (CaseFormat, error) {
	key := strings.Map(func(r rune) rune {
		if r == '-' || r == '_' || unicode.IsSpace(r) {
			return -1
		}
		return unicode.ToLower(r)
	}, s)

	for f, name := range caseFormatNames {
		if key == name {
			return f, nil
		}
	}
	return Lowercase, mdwerrors.Unsupported(mdwerrors.ModuleStringx, "ParseCaseFormat", s)
}

// ConvertCase converts text to the given format. Unknown formats return the
// text unchanged.
func ConvertCase(text string, format CaseFormat) string {
	switch format {
	case Lowercase:
		return ToLower(text)
	case Uppercase:
		return ToUpper(text)
	case TitleCase:
		return ToTitleCase(text)
	case CamelCase:
		return ToCamelCase(text)
	case SnakeCase:
		return ToSnakeCase(text)
	case KebabCase:
		return ToKebabCase(text)
	case PascalCase:
		return ToPascalCase(text)
	default:
		return text
	}
}

// ToLower applies full Unicode lowercase mapping.
// Example: "HELLO Wörld" -> "hello wörld"
func ToLower(s string) string {
	// Casers keep state and are not safe for concurrent use.
	return cases.Lower(language.Und).String(s)
}

// ToUpper applies full Unicode uppercase mapping, including expansions.
// Example: "straße" -> "STRASSE"
func ToUpper(s string) string {
	return cases.Upper(language.Und).String(s)
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

func isAlnumRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// ToTitleCase uppercases the first character of every run of word characters
// (letters, digits, underscore) and lowercases the rest of the run. Other
// characters are left untouched.
// Example: "hello WORLD-foo" -> "Hello World-Foo"
func ToTitleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	inWord := false
	for _, r := range s {
		if !isWordRune(r) {
			inWord = false
			b.WriteRune(r)
			continue
		}
		if inWord {
			b.WriteString(ToLower(string(r)))
		} else {
			b.WriteString(ToUpper(string(r)))
			inWord = true
		}
	}
	return b.String()
}

// words splits s on runs of non-alphanumeric characters
func words(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool { return !isAlnumRune(r) })
}

func capitalizeLowerRest(word string) string {
	runes := []rune(word)
	return ToUpper(string(runes[0])) + ToLower(string(runes[1:]))
}

// ToCamelCase lowercases the first word and capitalizes each following word,
// joining them without separators. Words are split on any run of
// non-alphanumeric characters. Separator-only input yields "".
// Example: "hello world" -> "helloWorld", "foo-BAR_baz" -> "fooBarBaz"
func ToCamelCase(s string) string {
	parts := words(s)
	if len(parts) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(ToLower(parts[0]))
	for _, w := range parts[1:] {
		b.WriteString(capitalizeLowerRest(w))
	}
	return b.String()
}

// ToPascalCase capitalizes every word and joins them without separators.
// Existing lower-to-upper transitions start a new word.
// Example: "my_variable_name" -> "MyVariableName", "myVariable" -> "MyVariable"
func ToPascalCase(s string) string {
	var b strings.Builder
	for _, w := range splitIdentifier(s) {
		b.WriteString(capitalizeLowerRest(w))
	}
	return b.String()
}

// splitIdentifier splits on separators and on lower-to-upper transitions so
// that "myVariableName" and "my variable name" produce the same words.
func splitIdentifier(s string) []string {
	var (
		result  []string
		current []rune
		prev    rune
	)
	flush := func() {
		if len(current) > 0 {
			result = append(result, string(current))
			current = current[:0]
		}
	}

	for _, r := range s {
		if !isAlnumRune(r) {
			flush()
			prev = 0
			continue
		}
		if unicode.IsUpper(r) && prev != 0 && (unicode.IsLower(prev) || unicode.IsDigit(prev)) {
			flush()
		}
		current = append(current, r)
		prev = r
	}
	flush()
	return result
}

func joinLower(s, sep string) string {
	parts := splitIdentifier(s)
	for i, p := range parts {
		parts[i] = ToLower(p)
	}
	return strings.Join(parts, sep)
}

// ToSnakeCase converts a string to snake_case.
// Example: "MyVariableName" -> "my_variable_name", "hello world" -> "hello_world"
func ToSnakeCase(s string) string {
	return joinLower(s, "_")
}

// ToKebabCase converts a string to kebab-case.
// Example: "MyVariableName" -> "my-variable-name"
func ToKebabCase(s string) string {
	return joinLower(s, "-")
}
