// File: uuidx.go
// Title: UUID v4 Generator
// Description: RFC 4122 version 4 identifiers drawn from an injected random
//              source, with an optional reduced-security fallback when the
//              secure source fails.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation on github.com/google/uuid

// Package uuidx generates random (version 4) UUIDs.
//
//	id, err := uuidx.Generate()                // e.g. "3f2b8c1e-4d5a-4b6c-9e7f-0a1b2c3d4e5f"
//	ids, err := uuidx.GenerateMultiple(10)     // 10 independent values
//
// A Generator uses randx.NewSecureSource by default. When the secure source
// fails and the fallback is enabled, values are drawn from a time-seeded PRNG
// instead and Degraded reports true. Such values are unique in practice but
// must not be used as secrets.
package uuidx

import (
	"regexp"
	"sync"

	"github.com/google/uuid"

	mdwerrors "github.com/msto63/devkit/foundation/core/errors"
	"github.com/msto63/devkit/foundation/utils/randx"
)

const (
	// MinBatch and MaxBatch bound GenerateMultiple
	MinBatch = 1
	MaxBatch = 100
)

var v4Pattern = regexp.MustCompile(`(?i)^[0-9a-f]{8}-[0-9a-f]{4}-4[0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`)

// IsValid reports whether s is a canonical version 4 UUID in either case
func IsValid(s string) bool {
	return v4Pattern.MatchString(s)
}

// Generator produces version 4 UUIDs
type Generator struct {
	source   randx.Source
	fallback bool

	mu       sync.Mutex
	degraded bool
	backup   randx.Source
}

// Option configures a Generator
type Option func(*Generator)

// WithSource replaces the secure source
func WithSource(source randx.Source) Option {
	return func(g *Generator) {
		g.source = source
	}
}

// WithFallback enables or disables the time-seeded fallback. It is enabled
// by default.
func WithFallback(enabled bool) Option {
	return func(g *Generator) {
		g.fallback = enabled
	}
}

// NewGenerator returns a generator using the secure source
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		source:   randx.NewSecureSource(),
		fallback: true,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate returns one lowercase canonical version 4 UUID
func (g *Generator) Generate() (string, error) {
	id, err := uuid.NewRandomFromReader(g.source)
	if err == nil {
		return id.String(), nil
	}
	if !g.fallback {
		return "", mdwerrors.ConversionFailed(mdwerrors.ModuleUUIDx, "Generate", err)
	}

	id, err = uuid.NewRandomFromReader(g.backupSource())
	if err != nil {
		return "", mdwerrors.ConversionFailed(mdwerrors.ModuleUUIDx, "Generate", err)
	}
	return id.String(), nil
}

// GenerateMultiple returns count independent UUIDs. count must be within
// [MinBatch, MaxBatch]; values are not deduplicated.
func (g *Generator) GenerateMultiple(count int) ([]string, error) {
	if count < MinBatch || count > MaxBatch {
		return nil, mdwerrors.OutOfRange(mdwerrors.ModuleUUIDx, "GenerateMultiple", count, MinBatch, MaxBatch)
	}

	ids := make([]string, 0, count)
	for i := 0; i < count; i++ {
		id, err := g.Generate()
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// Degraded reports whether any value so far came from the fallback source
func (g *Generator) Degraded() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.degraded
}

func (g *Generator) backupSource() randx.Source {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.degraded = true
	if g.backup == nil {
		g.backup = randx.NewTimeSeededSource()
	}
	return g.backup
}

var defaultGenerator = NewGenerator()

// Generate uses the default secure generator
func Generate() (string, error) {
	return defaultGenerator.Generate()
}

// GenerateMultiple uses the default secure generator
func GenerateMultiple(count int) ([]string, error) {
	return defaultGenerator.GenerateMultiple(count)
}
