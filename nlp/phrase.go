package nlp

import (
	"regexp"
	"strings"
)

// Phrase boundaries are ASCII word characters, matching what survives normalization.
// Unlike \b, a phrase that ends in a symbol ("c++") still matches at end of text.
const (
	leftBoundary  = `(?:^|[^a-z0-9_])`
	rightBoundary = `(?:[^a-z0-9_]|$)`
)

// PhraseMatcher tests whether a phrase occurs as a whole word sequence in text.
type PhraseMatcher struct {
	phrase string
	re     *regexp.Regexp
}

// CompilePhrase builds a case-insensitive whole-word matcher for phrase.
// When flexibleDots is set, each "." in the phrase also matches a single
// whitespace character or nothing, so "node.js" matches "node js" and "nodejs".
func CompilePhrase(phrase string, flexibleDots bool) (*PhraseMatcher, error) {
	body := regexp.QuoteMeta(strings.ToLower(phrase))
	if flexibleDots {
		body = strings.ReplaceAll(body, `\.`, `[.\s]?`)
	}
	re, err := regexp.Compile(`(?i)` + leftBoundary + body + rightBoundary)
	if err != nil {
		return nil, err
	}
	return &PhraseMatcher{phrase: phrase, re: re}, nil
}

// MustCompilePhrase is like CompilePhrase but panics on error.
func MustCompilePhrase(phrase string, flexibleDots bool) *PhraseMatcher {
	m, err := CompilePhrase(phrase, flexibleDots)
	if err != nil {
		panic(err)
	}
	return m
}

// Phrase returns the phrase the matcher was compiled from.
func (m *PhraseMatcher) Phrase() string {
	return m.phrase
}

// Match reports whether the phrase occurs in text.
func (m *PhraseMatcher) Match(text string) bool {
	return m.re.MatchString(text)
}
