// Package skills extracts canonical skill names from normalized resume text
// using a controlled vocabulary.
package skills

import (
	"slices"

	"github.com/poiesic/resumatch/nlp"
	"github.com/poiesic/resumatch/taxonomy"
)

// Extractor matches vocabulary phrases as whole words. It is safe for concurrent use.
type Extractor struct {
	matchers []*nlp.PhraseMatcher
}

// Option configures an Extractor.
type Option func(*Extractor) error

// WithVocabulary replaces the default vocabulary.
func WithVocabulary(phrases ...string) Option {
	return func(e *Extractor) error {
		matchers, err := compile(phrases)
		if err != nil {
			return err
		}
		e.matchers = matchers
		return nil
	}
}

// NewExtractor creates an Extractor over taxonomy.SkillVocabulary unless
// WithVocabulary is given.
func NewExtractor(opts ...Option) (*Extractor, error) {
	e := &Extractor{}
	for _, opt := range opts {
		if err := opt(e); err != nil {
			return nil, err
		}
	}
	if e.matchers == nil {
		matchers, err := compile(taxonomy.SkillVocabulary())
		if err != nil {
			return nil, err
		}
		e.matchers = matchers
	}
	return e, nil
}

func compile(phrases []string) ([]*nlp.PhraseMatcher, error) {
	matchers := make([]*nlp.PhraseMatcher, 0, len(phrases))
	for _, phrase := range phrases {
		m, err := nlp.CompilePhrase(phrase, true)
		if err != nil {
			return nil, err
		}
		matchers = append(matchers, m)
	}
	return matchers, nil
}

// Extract returns the canonical form of every vocabulary phrase found in
// normalized text. The result is a sorted set and is empty, not nil, when
// nothing matches.
func (e *Extractor) Extract(normalized string) []string {
	found := make([]string, 0)
	if normalized == "" {
		return found
	}

	seen := make(map[string]bool)
	for _, m := range e.matchers {
		if !m.Match(normalized) {
			continue
		}
		skill := taxonomy.CanonicalSkill(m.Phrase())
		if !seen[skill] {
			seen[skill] = true
			found = append(found, skill)
		}
	}
	slices.Sort(found)
	return found
}
