package nlp

import (
	"sync"

	"github.com/aaaton/golem/v4"
	"github.com/aaaton/golem/v4/dicts/en"
)

// Lemmatizer reduces a lowercase word to its dictionary base form.
// Implementations must be safe for concurrent use and return the word
// unchanged when it is unknown.
type Lemmatizer interface {
	Lemma(word string) string
}

// LemmatizerFunc adapts a plain function to the Lemmatizer interface.
type LemmatizerFunc func(word string) string

// Lemma calls f(word).
func (f LemmatizerFunc) Lemma(word string) string {
	return f(word)
}

// IdentityLemmatizer returns every word unchanged.
var IdentityLemmatizer Lemmatizer = LemmatizerFunc(func(word string) string { return word })

var (
	englishOnce       sync.Once
	englishLemmatizer *golem.Lemmatizer
	englishErr        error
)

// EnglishLemmatizer returns the shared English dictionary lemmatizer.
// The dictionary is decompressed on first use and reused afterwards.
func EnglishLemmatizer() (Lemmatizer, error) {
	englishOnce.Do(func() {
		englishLemmatizer, englishErr = golem.New(en.New())
	})
	if englishErr != nil {
		return nil, englishErr
	}
	return englishLemmatizer, nil
}
