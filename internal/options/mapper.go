// Package options resolves free-form categorical values into the fixed
// select vocabularies used for persistence. Resolution is total: any input
// string maps to a member of the field's option set.
package options

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"seo-audit-backend/internal/shared/telemetry"
)

//go:embed vocab.yaml
var vocabYAML []byte

// FieldVocab is one field's select vocabulary.
type FieldVocab struct {
	Options  []string          `yaml:"options"`
	Synonyms map[string]string `yaml:"synonyms"`
	Fallback string            `yaml:"fallback"`
}

// Vocab maps field name -> vocabulary.
type Vocab map[string]FieldVocab

// ParseVocab decodes a vocabulary table and validates that every synonym
// target and fallback is a member of its field's option set.
func ParseVocab(raw []byte) (Vocab, error) {
	var vocab Vocab
	if err := yaml.Unmarshal(raw, &vocab); err != nil {
		return nil, fmt.Errorf("parse vocabulary: %w", err)
	}
	for field, fv := range vocab {
		if len(fv.Options) == 0 {
			return nil, fmt.Errorf("vocabulary field %q has no options", field)
		}
		if fv.Fallback != "" && !containsFold(fv.Options, fv.Fallback) {
			return nil, fmt.Errorf("vocabulary field %q: fallback %q not in options", field, fv.Fallback)
		}
		for synonym, target := range fv.Synonyms {
			if !containsFold(fv.Options, target) {
				return nil, fmt.Errorf("vocabulary field %q: synonym %q maps outside options", field, synonym)
			}
		}
	}
	return vocab, nil
}

// Mapper resolves raw values against a vocabulary. Safe for concurrent use.
type Mapper struct {
	vocab Vocab
}

// NewMapper constructs a Mapper over a parsed vocabulary.
func NewMapper(vocab Vocab) (*Mapper, error) {
	if len(vocab) == 0 {
		return nil, fmt.Errorf("vocabulary is empty")
	}
	return &Mapper{vocab: vocab}, nil
}

var (
	defaultOnce   sync.Once
	defaultMapper *Mapper
)

// Default returns the process-wide mapper built from the embedded
// vocabulary. A broken embed panics at first use.
func Default() *Mapper {
	defaultOnce.Do(func() {
		vocab, err := ParseVocab(vocabYAML)
		if err != nil {
			panic(fmt.Sprintf("options: embedded vocabulary invalid: %v", err))
		}
		m, err := NewMapper(vocab)
		if err != nil {
			panic(fmt.Sprintf("options: embedded vocabulary invalid: %v", err))
		}
		defaultMapper = m
	})
	return defaultMapper
}

// Map resolves a raw value for a known field. Unknown fields return the
// raw value unchanged.
func (m *Mapper) Map(raw, field string) string {
	fv, ok := m.vocab[field]
	if !ok {
		return raw
	}
	return m.resolve(raw, fv.Options, fv.Synonyms, fv.Fallback, field)
}

// MapTo resolves a raw value against an explicit option set, using the
// field's synonym table and fallback when the field is known.
func (m *Mapper) MapTo(raw string, validOptions []string, field string) string {
	if len(validOptions) == 0 {
		return raw
	}
	var synonyms map[string]string
	var fallback string
	if fv, ok := m.vocab[field]; ok {
		synonyms = fv.Synonyms
		if containsFold(validOptions, fv.Fallback) {
			fallback = fv.Fallback
		}
	}
	return m.resolve(raw, validOptions, synonyms, fallback, field)
}

func (m *Mapper) resolve(raw string, options []string, synonyms map[string]string, fallback, field string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		if fallback != "" {
			return fallback
		}
		return options[0]
	}
	lowered := strings.ToLower(trimmed)

	// 1. Exact option match.
	for _, opt := range options {
		if strings.ToLower(opt) == lowered {
			return opt
		}
	}

	// 2. Synonym table.
	for synonym, target := range synonyms {
		if strings.ToLower(synonym) == lowered && containsFold(options, target) {
			return canonical(options, target)
		}
	}

	// 3. Substring either direction.
	for _, opt := range options {
		optLower := strings.ToLower(opt)
		if strings.Contains(optLower, lowered) || strings.Contains(lowered, optLower) {
			return opt
		}
	}

	// 4. Token overlap.
	rawWords := wordSet(lowered)
	bestScore := 0.0
	best := ""
	for _, opt := range options {
		optWords := wordSet(strings.ToLower(opt))
		var common int
		for w := range rawWords {
			if _, ok := optWords[w]; ok {
				common++
			}
		}
		denom := len(rawWords)
		if len(optWords) > denom {
			denom = len(optWords)
		}
		if denom == 0 {
			continue
		}
		score := float64(common) / float64(denom)
		if score > bestScore {
			bestScore = score
			best = opt
		}
	}
	if bestScore > 0.3 {
		return best
	}

	// 5. Fallback, else first option.
	telemetry.Warn("options.unresolved_categorical", map[string]any{
		"field": field,
		"raw":   raw,
	})
	if fallback != "" {
		return fallback
	}
	return options[0]
}

func canonical(options []string, value string) string {
	for _, opt := range options {
		if strings.EqualFold(opt, value) {
			return opt
		}
	}
	return value
}

func containsFold(options []string, value string) bool {
	for _, opt := range options {
		if strings.EqualFold(opt, value) {
			return true
		}
	}
	return false
}

func wordSet(s string) map[string]struct{} {
	words := make(map[string]struct{})
	for _, w := range strings.Fields(s) {
		words[w] = struct{}{}
	}
	return words
}
