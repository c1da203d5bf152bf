// File: lorem.go
// Title: Lorem Ipsum Generator
// Description: Pseudo-random Latin placeholder text measured in words,
//              sentences or paragraphs, drawn from an injected random source.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

package loremx

import (
	"strings"

	mdwerrors "github.com/msto63/devkit/foundation/core/errors"
	"github.com/msto63/devkit/foundation/utils/randx"
	"github.com/msto63/devkit/foundation/utils/stringx"
)

// Unit selects what Generate counts
type Unit int

const (
	Words Unit = iota
	Sentences
	Paragraphs
)

// Sentence and paragraph shape, inclusive bounds
const (
	MinWordsPerSentence      = 8
	MaxWordsPerSentence      = 15
	MinSentencesPerParagraph = 4
	MaxSentencesPerParagraph = 8
)

// String returns the lowercase unit tag
func (u Unit) String() string {
	switch u {
	case Words:
		return "words"
	case Sentences:
		return "sentences"
	case Paragraphs:
		return "paragraphs"
	default:
		return "unknown"
	}
}

// Bounds returns the accepted count range for the unit
func (u Unit) Bounds() (min, max int) {
	switch u {
	case Words:
		return 1, 10000
	case Sentences:
		return 1, 1000
	case Paragraphs:
		return 1, 100
	default:
		return 0, 0
	}
}

// IsValid reports whether u is a known unit
func (u Unit) IsValid() bool {
	switch u {
	case Words, Sentences, Paragraphs:
		return true
	default:
		return false
	}
}

// Units returns all units in display order
func Units() []Unit {
	return []Unit{Words, Sentences, Paragraphs}
}

// ParseUnit accepts the unit tag in any case, singular or plural
func ParseUnit(s string) (Unit, error) {
	key := strings.TrimSuffix(strings.ToLower(strings.TrimSpace(s)), "s")
	switch key {
	case "word":
		return Words, nil
	case "sentence":
		return Sentences, nil
	case "paragraph":
		return Paragraphs, nil
	default:
		return Words, mdwerrors.Unsupported(mdwerrors.ModuleLoremx, "ParseUnit", s)
	}
}

// Generator builds placeholder text
type Generator struct {
	source randx.Source
}

// NewGenerator returns a generator drawing from source. A nil source selects
// the secure source.
func NewGenerator(source randx.Source) *Generator {
	if source == nil {
		source = randx.NewSecureSource()
	}
	return &Generator{source: source}
}

// Generate returns count units of text. Words output ends with a period;
// sentences are joined by single spaces and paragraphs by a blank line.
func (g *Generator) Generate(count int, unit Unit) (string, error) {
	if !unit.IsValid() {
		return "", mdwerrors.Unsupported(mdwerrors.ModuleLoremx, "Generate", unit)
	}
	if min, max := unit.Bounds(); count < min || count > max {
		return "", mdwerrors.OutOfRange(mdwerrors.ModuleLoremx, "Generate", count, min, max)
	}

	var (
		text string
		err  error
	)
	switch unit {
	case Words:
		text, err = g.sentence(count)
	case Sentences:
		text, err = g.sentences(count)
	case Paragraphs:
		text, err = g.paragraphs(count)
	}
	if err != nil {
		return "", mdwerrors.ConversionFailed(mdwerrors.ModuleLoremx, "Generate", err)
	}
	return text, nil
}

func (g *Generator) between(min, max int) (int, error) {
	n, err := g.source.Intn(max - min + 1)
	if err != nil {
		return 0, err
	}
	return min + n, nil
}

func (g *Generator) words(count int) ([]string, error) {
	words := make([]string, count)
	for i := range words {
		idx, err := g.source.Intn(len(vocabulary))
		if err != nil {
			return nil, err
		}
		words[i] = vocabulary[idx]
	}
	return words, nil
}

// sentence returns count words, capitalized and terminated
func (g *Generator) sentence(count int) (string, error) {
	words, err := g.words(count)
	if err != nil {
		return "", err
	}
	words[0] = stringx.Capitalize(words[0])
	return strings.Join(words, " ") + ".", nil
}

func (g *Generator) sentences(count int) (string, error) {
	parts := make([]string, count)
	for i := range parts {
		n, err := g.between(MinWordsPerSentence, MaxWordsPerSentence)
		if err != nil {
			return "", err
		}
		if parts[i], err = g.sentence(n); err != nil {
			return "", err
		}
	}
	return strings.Join(parts, " "), nil
}

func (g *Generator) paragraphs(count int) (string, error) {
	parts := make([]string, count)
	for i := range parts {
		n, err := g.between(MinSentencesPerParagraph, MaxSentencesPerParagraph)
		if err != nil {
			return "", err
		}
		if parts[i], err = g.sentences(n); err != nil {
			return "", err
		}
	}
	return strings.Join(parts, "\n\n"), nil
}

var defaultGenerator = NewGenerator(nil)

// Generate uses a generator backed by the secure source
func Generate(count int, unit Unit) (string, error) {
	return defaultGenerator.Generate(count, unit)
}
