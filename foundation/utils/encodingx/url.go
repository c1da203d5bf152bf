// File: url.go
// Title: URL Percent-Encoding
// Description: Percent-encoding of UTF-8 text for use in URL components.
// Author: msto63
// Version: v0.1.1
// Created: 2026-10-18
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation
// - 2026-10-19 v0.1.1: Reject escapes that decode to invalid UTF-8

package encodingx

import (
	"net/url"
	"strings"
	"unicode/utf8"

	mdwerror "github.com/msto63/devkit/foundation/core/error"
	mdwerrors "github.com/msto63/devkit/foundation/core/errors"
)

const upperHex = "0123456789ABCDEF"

func isUnreserved(c byte) bool {
	switch {
	case 'A' <= c && c <= 'Z', 'a' <= c && c <= 'z', '0' <= c && c <= '9':
		return true
	case c == '-', c == '_', c == '.', c == '~':
		return true
	}
	return false
}

// EncodeURL percent-encodes every byte of text outside A-Z a-z 0-9 - _ . ~
// using uppercase hexadecimal digits.
func EncodeURL(text string) string {
	n := 0
	for i := 0; i < len(text); i++ {
		if !isUnreserved(text[i]) {
			n++
		}
	}
	if n == 0 {
		return text
	}

	var b strings.Builder
	b.Grow(len(text) + 2*n)
	for i := 0; i < len(text); i++ {
		c := text[i]
		if isUnreserved(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperHex[c>>4])
		b.WriteByte(upperHex[c&0x0F])
	}
	return b.String()
}

// DecodeURL reverses EncodeURL. Escapes may use either hex case. '+' is kept
// as is. A '%' that is not followed by two hex digits, or escapes whose bytes
// are not valid UTF-8, is INVALID_FORMAT.
func DecodeURL(text string) (string, error) {
	decoded, err := url.PathUnescape(text)
	if err != nil {
		return "", mdwerrors.NewErrorBuilder(mdwerrors.ModuleEncodingx).
			Operation("DecodeURL").
			Message("invalid URL-encoded string").
			Cause(err).
			Code(mdwerror.CodeInvalidFormat).
			Detail("input", text).
			Build()
	}
	if !utf8.ValidString(decoded) {
		return "", mdwerrors.NewErrorBuilder(mdwerrors.ModuleEncodingx).
			Operation("DecodeURL").
			Message("URL-encoded bytes are not valid UTF-8").
			Code(mdwerror.CodeInvalidFormat).
			Detail("input", text).
			Build()
	}
	return decoded, nil
}
