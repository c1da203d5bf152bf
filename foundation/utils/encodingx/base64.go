// File: base64.go
// Title: Base64 Codec
// Description: Standard-alphabet Base64 over UTF-8 text with browser
//              compatible decoding of unpadded input.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

package encodingx

import (
	"encoding/base64"
	"regexp"
	"strings"

	mdwerror "github.com/msto63/devkit/foundation/core/error"
	mdwerrors "github.com/msto63/devkit/foundation/core/errors"
)

// Base64Pattern matches the character set accepted by DecodeBase64.
// Length and padding rules are checked separately.
var Base64Pattern = regexp.MustCompile(`^[A-Za-z0-9+/]*={0,2}$`)

const expectedBase64 = "Base64 (A-Z, a-z, 0-9, +, / with up to two = padding characters)"

// EncodeBase64 encodes the UTF-8 bytes of text with the standard alphabet and
// padding. The empty string encodes to "".
func EncodeBase64(text string) string {
	return base64.StdEncoding.EncodeToString([]byte(text))
}

// DecodeBase64 decodes standard-alphabet Base64 into text. Padding is optional
// when the unpadded length is 2 or 3 modulo 4. Invalid UTF-8 in the decoded
// bytes is replaced by U+FFFD.
func DecodeBase64(b64 string) (string, error) {
	raw, err := decodeBase64Bytes(b64)
	if err != nil {
		return "", err
	}
	return strings.ToValidUTF8(string(raw), "\uFFFD"), nil
}

// IsValidBase64 reports whether DecodeBase64 would accept s
func IsValidBase64(s string) bool {
	_, err := decodeBase64Bytes(s)
	return err == nil
}

func decodeBase64Bytes(b64 string) ([]byte, error) {
	const op = "DecodeBase64"

	if !Base64Pattern.MatchString(b64) {
		return nil, mdwerrors.InvalidFormat(mdwerrors.ModuleEncodingx, op, b64, expectedBase64)
	}

	body := strings.TrimRight(b64, "=")
	padding := len(b64) - len(body)

	switch {
	case padding == 0:
		if len(body)%4 == 1 {
			return nil, mdwerrors.InvalidFormat(mdwerrors.ModuleEncodingx, op, b64, expectedBase64).
				WithDetail("reason", "length")
		}
		raw, err := base64.RawStdEncoding.DecodeString(body)
		if err != nil {
			return nil, wrapBase64Error(b64, err)
		}
		return raw, nil
	default:
		if len(b64)%4 != 0 {
			return nil, mdwerrors.InvalidFormat(mdwerrors.ModuleEncodingx, op, b64, expectedBase64).
				WithDetail("reason", "padding")
		}
		raw, err := base64.StdEncoding.DecodeString(b64)
		if err != nil {
			return nil, wrapBase64Error(b64, err)
		}
		return raw, nil
	}
}

func wrapBase64Error(input string, cause error) error {
	return mdwerrors.NewErrorBuilder(mdwerrors.ModuleEncodingx).
		Operation("DecodeBase64").
		Message("invalid Base64 string").
		Cause(cause).
		Code(mdwerror.CodeInvalidFormat).
		Detail("input", input).
		Build()
}
