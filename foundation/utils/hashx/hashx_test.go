// File: hashx_test.go
// Title: Unit Tests for the Hash Dispatcher
// Description: Known-answer digests, lengths, algorithm parsing and backend
//              injection.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-19

package hashx

import (
	"crypto/sha256"
	"regexp"
	"testing"

	mdwerror "github.com/msto63/devkit/foundation/core/error"
)

func TestGenerate_KnownAnswers(t *testing.T) {
	tests := []struct {
		input    string
		alg      Algorithm
		expected string
	}{
		{"", MD5, "d41d8cd98f00b204e9800998ecf8427e"},
		{"", SHA1, "da39a3ee5e6b4b0d3255bfef95601890afd80709"},
		{"", SHA256, "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"},
		{"hello", MD5, "5d41402abc4b2a76b9719d911017c592"},
		{"hello", SHA1, "aaf4c61ddcc5e8a2dabede0f3b482cd9aea9434d"},
		{"hello", SHA256, "2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824"},
		{"hello", SHA512, "9b71d224bd62f3785d96d46ad3ea3d73319bfbc2890caadae2dff72519673ca72323c3d99ba5c11d7c7acc6e14b8c5da0c4663475c2e5c3adef46f73bcdec043"},
		{"hello", SHA3_256, "3338be694f50c5f338814986cdf0686453a888b84f424d792af4b9202398f392"},
		{"hello", BLAKE2b_256, "324dcf027dd4a30a932c441f365a25e86b173defa4b8e58948253471b81b72cf"},
		{"héllo wörld", SHA256, "a1003f7d04a4115711d0b48a2eaf1359ce565d2d2a6fd65098dfcffadeeef59f"},
		{"héllo wörld", MD5, "ed0c22cc110ede12327851863c078138"},
	}

	for _, tt := range tests {
		t.Run(tt.alg.String()+"/"+tt.input, func(t *testing.T) {
			result, err := Generate(tt.input, tt.alg)
			if err != nil {
				t.Fatalf("Generate(%q, %s) failed: %v", tt.input, tt.alg, err)
			}
			if result != tt.expected {
				t.Errorf("Generate(%q, %s) = %s, expected %s", tt.input, tt.alg, result, tt.expected)
			}
		})
	}
}

func TestGenerate_LengthAndDeterminism(t *testing.T) {
	lowerHex := regexp.MustCompile(`^[0-9a-f]+$`)
	expectedLengths := map[Algorithm]int{
		MD5: 32, SHA1: 40, SHA256: 64, SHA512: 128,
		SHA3_256: 64, SHA3_512: 128, BLAKE2b_256: 64,
	}

	for _, alg := range Algorithms() {
		t.Run(alg.String(), func(t *testing.T) {
			if alg.HexLength() != expectedLengths[alg] {
				t.Errorf("HexLength() = %d, expected %d", alg.HexLength(), expectedLengths[alg])
			}
			for _, input := range []string{"", "a", "The quick brown fox", "日本語"} {
				first, err := Generate(input, alg)
				if err != nil {
					t.Fatalf("Generate(%q) failed: %v", input, err)
				}
				second, err := Generate(input, alg)
				if err != nil {
					t.Fatalf("Generate(%q) failed: %v", input, err)
				}

				if first != second {
					t.Errorf("digest of %q not deterministic: %s != %s", input, first, second)
				}
				if len(first) != alg.HexLength() {
					t.Errorf("digest of %q has length %d, expected %d", input, len(first), alg.HexLength())
				}
				if !lowerHex.MatchString(first) {
					t.Errorf("digest %q is not lowercase hex", first)
				}
			}
		})
	}
}

func TestGenerate_Unsupported(t *testing.T) {
	_, err := Generate("hello", Algorithm(99))
	if !mdwerror.HasCode(err, mdwerror.CodeUnsupportedOption) {
		t.Errorf("expected UNSUPPORTED_OPTION, got %v", err)
	}
	if n := Algorithm(99).HexLength(); n != 0 {
		t.Errorf("HexLength() of unknown algorithm = %d, expected 0", n)
	}
}

func TestParseAlgorithm(t *testing.T) {
	tests := []struct {
		input    string
		expected Algorithm
		wantErr  bool
	}{
		{"MD5", MD5, false},
		{"sha-1", SHA1, false},
		{"SHA256", SHA256, false},
		{" sha-512 ", SHA512, false},
		{"sha3-256", SHA3_256, false},
		{"SHA3_512", SHA3_512, false},
		{"blake2b", BLAKE2b_256, false},
		{"BLAKE2b-256", BLAKE2b_256, false},
		{"crc32", MD5, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result, err := ParseAlgorithm(tt.input)
			if tt.wantErr {
				if !mdwerror.HasCode(err, mdwerror.CodeUnsupportedOption) {
					t.Errorf("ParseAlgorithm(%q) expected UNSUPPORTED_OPTION, got %v", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseAlgorithm(%q) failed: %v", tt.input, err)
			}
			if result != tt.expected {
				t.Errorf("ParseAlgorithm(%q) = %s, expected %s", tt.input, result, tt.expected)
			}
		})
	}
}

func TestDispatcher_Backends(t *testing.T) {
	// MD5 routed through SHA-256 shows the table is consulted
	d := NewDispatcher(
		WithBackend(MD5, sha256.New),
		WithoutBackend(SHA1),
	)

	result, err := d.Generate("hello", MD5)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if result != "2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824" {
		t.Errorf("replaced backend not used, got %s", result)
	}

	if d.Supports(SHA1) {
		t.Error("Supports(SHA1) = true after WithoutBackend")
	}
	if _, err := d.Generate("hello", SHA1); !mdwerror.HasCode(err, mdwerror.CodeUnsupportedOption) {
		t.Errorf("expected UNSUPPORTED_OPTION for removed backend, got %v", err)
	}

	all := d.GenerateAll("hello")
	if len(all) != len(Algorithms())-1 {
		t.Fatalf("GenerateAll returned %d digests, expected %d", len(all), len(Algorithms())-1)
	}
	for _, digest := range all {
		if digest.Algorithm == SHA1 {
			t.Error("GenerateAll included the removed SHA1 backend")
		}
	}
}

func TestGenerateAll(t *testing.T) {
	all := GenerateAll("")
	if len(all) != len(Algorithms()) {
		t.Fatalf("GenerateAll returned %d digests, expected %d", len(all), len(Algorithms()))
	}
	if all[0].Name != "MD5" {
		t.Errorf("first digest name = %q, expected MD5", all[0].Name)
	}
	if all[0].Hex != "d41d8cd98f00b204e9800998ecf8427e" {
		t.Errorf("first digest = %s", all[0].Hex)
	}
}
