// Package category assigns a single category label to normalized resume text.
package category

import (
	"strings"

	"github.com/poiesic/resumatch/nlp"
	"github.com/poiesic/resumatch/taxonomy"
)

type compiledCategory struct {
	label    string
	keywords []*nlp.PhraseMatcher
}

// Categorizer applies an ordered first-match policy over a category taxonomy.
// It is safe for concurrent use.
type Categorizer struct {
	categories []compiledCategory
	roleWords  []string
}

// Option configures a Categorizer.
type Option func(*Categorizer) error

// WithTaxonomy replaces the default taxonomy. Order is significant.
func WithTaxonomy(categories ...taxonomy.Category) Option {
	return func(c *Categorizer) error {
		compiled, err := compile(categories)
		if err != nil {
			return err
		}
		c.categories = compiled
		return nil
	}
}

// WithRoleWords replaces the generic role words used for the Other fallback.
func WithRoleWords(words ...string) Option {
	return func(c *Categorizer) error {
		c.roleWords = words
		return nil
	}
}

// NewCategorizer creates a Categorizer over taxonomy.Categories unless
// WithTaxonomy is given.
func NewCategorizer(opts ...Option) (*Categorizer, error) {
	c := &Categorizer{
		roleWords: taxonomy.RoleWords(),
	}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	if c.categories == nil {
		compiled, err := compile(taxonomy.Categories())
		if err != nil {
			return nil, err
		}
		c.categories = compiled
	}
	return c, nil
}

func compile(categories []taxonomy.Category) ([]compiledCategory, error) {
	out := make([]compiledCategory, 0, len(categories))
	for _, cat := range categories {
		cc := compiledCategory{label: cat.Label}
		for _, kw := range cat.Keywords {
			m, err := nlp.CompilePhrase(kw, false)
			if err != nil {
				return nil, err
			}
			cc.keywords = append(cc.keywords, m)
		}
		out = append(out, cc)
	}
	return out, nil
}

// Categorize returns the label of the first category, in taxonomy order,
// with a keyword occurring as a whole word in text. Without a match it
// returns taxonomy.LabelOther when text contains a generic role word and
// taxonomy.LabelUncategorized otherwise.
func (c *Categorizer) Categorize(normalized string) string {
	text := strings.ToLower(normalized)

	for _, cat := range c.categories {
		for _, kw := range cat.keywords {
			if kw.Match(text) {
				return cat.label
			}
		}
	}

	// Plain substring test, so "managerial" counts.
	for _, w := range c.roleWords {
		if strings.Contains(text, w) {
			return taxonomy.LabelOther
		}
	}

	return taxonomy.LabelUncategorized
}
