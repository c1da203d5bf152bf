// File: base.go
// Title: Number Base Conversion
// Description: Converts non-negative integer literals among bases 2, 8, 10
//              and 16 with arbitrary precision. Output is canonical: no
//              leading zeros, uppercase hexadecimal digits.
// Author: msto63
// Version: v0.3.1
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with decimal arithmetic
// - 2026-10-18 v0.3.0: Replaced business arithmetic with base conversion on
//                       math/big
// - 2026-10-19 v0.3.1: Ignore whitespace around the input literal

package mathx

import (
	"math/big"
	"regexp"
	"strconv"
	"strings"
	"sync"

	mdwerrors "github.com/msto63/devkit/foundation/core/errors"
)

// NumberBase is a supported radix
type NumberBase int

const (
	Binary      NumberBase = 2
	Octal       NumberBase = 8
	Decimal     NumberBase = 10
	Hexadecimal NumberBase = 16
)

var (
	binaryPattern      = regexp.MustCompile(`^[01]+$`)
	octalPattern       = regexp.MustCompile(`^[0-7]+$`)
	decimalPattern     = regexp.MustCompile(`^[0-9]+$`)
	hexadecimalPattern = regexp.MustCompile(`^[0-9A-Fa-f]+$`)
)

// intPool pools *big.Int instances used while converting
var intPool = sync.Pool{
	New: func() interface{} {
		return new(big.Int)
	},
}

func getInt() *big.Int {
	i := intPool.Get().(*big.Int)
	i.SetInt64(0)
	return i
}

func putInt(i *big.Int) {
	if i != nil {
		intPool.Put(i)
	}
}

// NumberBases returns the supported bases in ascending order
func NumberBases() []NumberBase {
	return []NumberBase{Binary, Octal, Decimal, Hexadecimal}
}

// IsValid reports whether b is one of the supported bases
func (b NumberBase) IsValid() bool {
	switch b {
	case Binary, Octal, Decimal, Hexadecimal:
		return true
	default:
		return false
	}
}

// Name returns the display name, e.g. "Hexadecimal"
func (b NumberBase) Name() string {
	switch b {
	case Binary:
		return "Binary"
	case Octal:
		return "Octal"
	case Decimal:
		return "Decimal"
	case Hexadecimal:
		return "Hexadecimal"
	default:
		return "Unknown"
	}
}

// Description returns the radix and digit set, e.g. "Base 16 (0-9, A-F)"
func (b NumberBase) Description() string {
	switch b {
	case Binary:
		return "Base 2 (0-1)"
	case Octal:
		return "Base 8 (0-7)"
	case Decimal:
		return "Base 10 (0-9)"
	case Hexadecimal:
		return "Base 16 (0-9, A-F)"
	default:
		return "Unknown base"
	}
}

// Pattern returns the digit-set expression for the base, or nil
func (b NumberBase) Pattern() *regexp.Regexp {
	switch b {
	case Binary:
		return binaryPattern
	case Octal:
		return octalPattern
	case Decimal:
		return decimalPattern
	case Hexadecimal:
		return hexadecimalPattern
	default:
		return nil
	}
}

// String returns the radix as a decimal number
func (b NumberBase) String() string {
	return strconv.Itoa(int(b))
}

// ParseNumberBase accepts a radix ("16") or a name ("hex", "Hexadecimal")
func ParseNumberBase(s string) (NumberBase, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "2", "bin", "binary":
		return Binary, nil
	case "8", "oct", "octal":
		return Octal, nil
	case "10", "dec", "decimal":
		return Decimal, nil
	case "16", "hex", "hexadecimal":
		return Hexadecimal, nil
	default:
		return Decimal, mdwerrors.Unsupported(mdwerrors.ModuleMathx, "ParseNumberBase", s)
	}
}

// BaseResult holds one value rendered in every supported base
type BaseResult struct {
	Binary      string `json:"binary"`
	Octal       string `json:"octal"`
	Decimal     string `json:"decimal"`
	Hexadecimal string `json:"hexadecimal"`
}

// Get returns the rendering for base b
func (r BaseResult) Get(b NumberBase) string {
	switch b {
	case Binary:
		return r.Binary
	case Octal:
		return r.Octal
	case Decimal:
		return r.Decimal
	case Hexadecimal:
		return r.Hexadecimal
	default:
		return ""
	}
}

// parse reads value in base from into n. Surrounding whitespace is ignored.
func parse(n *big.Int, value string, from NumberBase, operation string) error {
	value = strings.TrimSpace(value)
	if !from.IsValid() {
		return mdwerrors.Unsupported(mdwerrors.ModuleMathx, operation, int(from))
	}
	if !from.Pattern().MatchString(value) {
		return mdwerrors.InvalidFormat(mdwerrors.ModuleMathx, operation, value, from.Description()+" digits")
	}
	if _, ok := n.SetString(value, int(from)); !ok {
		return mdwerrors.InvalidFormat(mdwerrors.ModuleMathx, operation, value, from.Description()+" digits")
	}
	return nil
}

func format(n *big.Int, to NumberBase) string {
	s := n.Text(int(to))
	if to == Hexadecimal {
		return strings.ToUpper(s)
	}
	return s
}

// ConvertToAllBases renders value, written in base from, in all four bases.
// There is no upper limit on the magnitude.
//
// Example: ConvertToAllBases("255", Decimal) ->
// {Binary: "11111111", Octal: "377", Decimal: "255", Hexadecimal: "FF"}
func ConvertToAllBases(value string, from NumberBase) (BaseResult, error) {
	n := getInt()
	defer putInt(n)

	if err := parse(n, value, from, "ConvertToAllBases"); err != nil {
		return BaseResult{}, err
	}

	return BaseResult{
		Binary:      format(n, Binary),
		Octal:       format(n, Octal),
		Decimal:     format(n, Decimal),
		Hexadecimal: format(n, Hexadecimal),
	}, nil
}

// ConvertBase converts value from one base to another
func ConvertBase(value string, from, to NumberBase) (string, error) {
	if !to.IsValid() {
		return "", mdwerrors.Unsupported(mdwerrors.ModuleMathx, "ConvertBase", int(to))
	}

	n := getInt()
	defer putInt(n)

	if err := parse(n, value, from, "ConvertBase"); err != nil {
		return "", err
	}
	return format(n, to), nil
}
