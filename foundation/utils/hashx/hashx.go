// File: hashx.go
// Title: Hash Dispatcher
// Description: Hex digests of UTF-8 text through a table of pluggable
//              algorithm backends. MD5, SHA-1, SHA-256 and SHA-512 come from
//              the standard library; SHA3 and BLAKE2b from golang.org/x/crypto.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

// Package hashx computes lowercase hexadecimal digests of text.
//
//	digest, err := hashx.Generate("hello", hashx.SHA256)
//	// 2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824
//
// Digests are deterministic, defined for the empty string and have a fixed
// length per algorithm (Algorithm.HexLength). An algorithm without a
// registered backend fails with UNSUPPORTED_OPTION.
package hashx

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"hash"
	"strings"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"

	mdwerrors "github.com/msto63/devkit/foundation/core/errors"
)

// Algorithm identifies a digest algorithm
type Algorithm int

const (
	MD5 Algorithm = iota
	SHA1
	SHA256
	SHA512
	SHA3_256
	SHA3_512
	BLAKE2b_256
)

type algorithmInfo struct {
	name      string
	hexLength int
}

var algorithms = map[Algorithm]algorithmInfo{
	MD5:         {"MD5", 32},
	SHA1:        {"SHA-1", 40},
	SHA256:      {"SHA-256", 64},
	SHA512:      {"SHA-512", 128},
	SHA3_256:    {"SHA3-256", 64},
	SHA3_512:    {"SHA3-512", 128},
	BLAKE2b_256: {"BLAKE2b-256", 64},
}

// String returns the display name, e.g. "SHA-256"
func (a Algorithm) String() string {
	if info, ok := algorithms[a]; ok {
		return info.name
	}
	return "unknown"
}

// HexLength returns the length of the hex digest, or 0 for unknown algorithms
func (a Algorithm) HexLength() int {
	return algorithms[a].hexLength
}

// Algorithms returns every known algorithm in display order
func Algorithms() []Algorithm {
	return []Algorithm{MD5, SHA1, SHA256, SHA512, SHA3_256, SHA3_512, BLAKE2b_256}
}

// ParseAlgorithm accepts display names case-insensitively, with or without
// the dash: "sha-256", "SHA256", "sha3-512", "blake2b".
func ParseAlgorithm(s string) (Algorithm, error) {
	key := normalizeName(s)
	if key == "blake2b" {
		return BLAKE2b_256, nil
	}
	for _, a := range Algorithms() {
		if normalizeName(a.String()) == key {
			return a, nil
		}
	}
	return MD5, mdwerrors.Unsupported(mdwerrors.ModuleHashx, "ParseAlgorithm", s)
}

func normalizeName(s string) string {
	return strings.ToLower(strings.NewReplacer("-", "", "_", "", " ", "").Replace(strings.TrimSpace(s)))
}

// Backend creates a fresh hash state for one digest
type Backend func() hash.Hash

// Option configures a Dispatcher
type Option func(*Dispatcher)

// WithBackend registers or replaces the backend for alg
func WithBackend(alg Algorithm, backend Backend) Option {
	return func(d *Dispatcher) {
		d.backends[alg] = backend
	}
}

// WithoutBackend removes the backend for alg
func WithoutBackend(alg Algorithm) Option {
	return func(d *Dispatcher) {
		delete(d.backends, alg)
	}
}

// Dispatcher routes digest requests to the backend registered for each
// algorithm. The backend table is fixed after construction, so a Dispatcher
// is safe for concurrent use.
type Dispatcher struct {
	backends map[Algorithm]Backend
}

// NewDispatcher returns a dispatcher with all default backends, modified by opts
func NewDispatcher(opts ...Option) *Dispatcher {
	d := &Dispatcher{
		backends: map[Algorithm]Backend{
			MD5:         md5.New,
			SHA1:        sha1.New,
			SHA256:      sha256.New,
			SHA512:      sha512.New,
			SHA3_256:    func() hash.Hash { return sha3.New256() },
			SHA3_512:    func() hash.Hash { return sha3.New512() },
			BLAKE2b_256: newBlake2b256,
		},
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func newBlake2b256() hash.Hash {
	// New256 only fails for keys longer than 64 bytes.
	h, _ := blake2b.New256(nil)
	return h
}

// Supports reports whether a backend is registered for alg
func (d *Dispatcher) Supports(alg Algorithm) bool {
	_, ok := d.backends[alg]
	return ok
}

// Generate returns the lowercase hex digest of the UTF-8 bytes of text
func (d *Dispatcher) Generate(text string, alg Algorithm) (string, error) {
	backend, ok := d.backends[alg]
	if !ok {
		return "", mdwerrors.Unsupported(mdwerrors.ModuleHashx, "Generate", alg)
	}

	h := backend()
	h.Write([]byte(text))
	return hex.EncodeToString(h.Sum(nil)), nil
}

// Digest pairs an algorithm with its result
type Digest struct {
	Algorithm Algorithm `json:"-"`
	Name      string    `json:"algorithm"`
	Hex       string    `json:"hash"`
}

// GenerateAll returns the digest for every supported algorithm in display order
func (d *Dispatcher) GenerateAll(text string) []Digest {
	result := make([]Digest, 0, len(d.backends))
	for _, alg := range Algorithms() {
		hexDigest, err := d.Generate(text, alg)
		if err != nil {
			continue
		}
		result = append(result, Digest{Algorithm: alg, Name: alg.String(), Hex: hexDigest})
	}
	return result
}

var defaultDispatcher = NewDispatcher()

// Generate uses the default dispatcher
func Generate(text string, alg Algorithm) (string, error) {
	return defaultDispatcher.Generate(text, alg)
}

// GenerateAll uses the default dispatcher
func GenerateAll(text string) []Digest {
	return defaultDispatcher.GenerateAll(text)
}
