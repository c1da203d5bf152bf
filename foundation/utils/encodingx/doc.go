// File: doc.go
// Title: Package Documentation for encodingx
// Description: Package encodingx provides the Base64 and URL codecs of the
//              devkit toolkit.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation with Base64 and percent-encoding

// Package encodingx provides UTF-8 aware Base64 and URL encoding.
//
// Encoding operates on the UTF-8 bytes of the input and never fails.
// Decoding reports malformed input as INVALID_FORMAT:
//
//	encoded := encodingx.EncodeBase64("Hello, 世界")   // "SGVsbG8sIOS4lueVjA=="
//	decoded, err := encodingx.DecodeBase64(encoded) // "Hello, 世界", nil
//
//	escaped := encodingx.EncodeURL("a b&c")           // "a%20b%26c"
//	plain, err := encodingx.DecodeURL(escaped)        // "a b&c", nil
//
// DecodeBase64 accepts unpadded input whose length is 2 or 3 modulo 4, the
// same inputs a browser's atob accepts. Decoded bytes that are not valid UTF-8
// are returned with U+FFFD replacement characters instead of an error.
//
// DecodeURL does not treat '+' as a space. EncodeURL keeps only the RFC 3986
// unreserved characters A-Z a-z 0-9 - _ . ~ and escapes every other byte
// with uppercase hexadecimal digits, so DecodeURL(EncodeURL(s)) == s holds for
// every string.
package encodingx
