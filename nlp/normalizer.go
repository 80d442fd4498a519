package nlp

import (
	"regexp"
	"slices"
	"strings"
	"unicode"
)

var (
	urlPattern     = regexp.MustCompile(`http\S+|www\S+|https\S+`)
	socialPattern  = regexp.MustCompile(`[@#]\w+`)
	disallowedChar = regexp.MustCompile(`[^a-zA-Z0-9\s.+\-]`)
)

// Normalizer turns raw document text into a canonical, space-separated
// sequence of lowercase lemmas. It is safe for concurrent use.
type Normalizer struct {
	lemmatizer Lemmatizer
	stopWords  map[string]bool
	protected  map[string]bool
}

// Option configures a Normalizer.
type Option func(*Normalizer) error

// WithLemmatizer sets the lemmatizer.
// Default is the shared English dictionary lemmatizer.
func WithLemmatizer(l Lemmatizer) Option {
	return func(n *Normalizer) error {
		if l == nil {
			l = IdentityLemmatizer
		}
		n.lemmatizer = l
		return nil
	}
}

// WithStopWords replaces the stop-word set.
// Default is the NLTK English list.
func WithStopWords(words ...string) Option {
	return func(n *Normalizer) error {
		n.stopWords = make(map[string]bool, len(words))
		for _, w := range words {
			n.stopWords[strings.ToLower(w)] = true
		}
		return nil
	}
}

// WithProtectedTerms keeps the given tokens out of lemmatization so that
// vocabulary words such as "data" or "sales" survive normalization verbatim.
// Multi-word terms are split and each token is protected.
func WithProtectedTerms(terms ...string) Option {
	return func(n *Normalizer) error {
		if n.protected == nil {
			n.protected = make(map[string]bool)
		}
		for _, term := range terms {
			for _, tok := range strings.Fields(strings.ToLower(term)) {
				n.protected[tok] = true
			}
		}
		return nil
	}
}

// NewNormalizer creates a Normalizer.
func NewNormalizer(opts ...Option) (*Normalizer, error) {
	n := &Normalizer{
		stopWords: EnglishStopWords(),
	}

	for _, opt := range opts {
		if err := opt(n); err != nil {
			return nil, err
		}
	}

	if n.lemmatizer == nil {
		lemmatizer, err := EnglishLemmatizer()
		if err != nil {
			return nil, err
		}
		n.lemmatizer = lemmatizer
	}

	return n, nil
}

// Normalize cleans raw text and returns its lemmas joined by single spaces.
//
// Steps, in order: strip URLs and @mention/#hashtag tokens, drop characters
// other than ASCII letters, digits, whitespace, '.', '+' and '-', lowercase,
// tokenize, remove stop words, lemmatize. Tokens listed by WithProtectedTerms
// skip lemmatization. Empty input yields "" and the result is a fixed point:
// Normalize(Normalize(x)) == Normalize(x).
func (n *Normalizer) Normalize(raw string) string {
	if raw == "" {
		return ""
	}

	text := urlPattern.ReplaceAllString(raw, "")
	text = socialPattern.ReplaceAllString(text, "")
	text = disallowedChar.ReplaceAllString(text, "")
	text = strings.ToLower(text)

	tokens := Tokenize(text)
	out := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if n.stopWords[tok] {
			continue
		}
		if lemma := n.lemmatize(tok); lemma != "" {
			out = append(out, lemma)
		}
	}

	return strings.Join(out, " ")
}

// maxLemmaSteps bounds the lemma chain followed by lemmatize.
const maxLemmaSteps = 8

// lemmatize follows tok's lemma chain (settings -> setting -> set) until the
// lemmatizer maps the form to itself, so normalized text normalizes to
// itself. A lemma outside the raw-text character set ends the chain at the
// current form. It returns "" when the chain reaches a stop word.
func (n *Normalizer) lemmatize(tok string) string {
	chain := []string{tok}
	cur := tok
	for range maxLemmaSteps {
		if n.protected[cur] {
			return cur
		}
		next := filterLemma(n.lemmatizer.Lemma(cur))
		if next == "" || next == cur {
			return cur
		}
		if i := slices.Index(chain, next); i >= 0 {
			// A cycle resolves to its smallest member from any entry point.
			return slices.Min(chain[i:])
		}
		if n.stopWords[next] {
			return ""
		}
		chain = append(chain, next)
		cur = next
	}
	return cur
}

// filterLemma checks a lemma against the raw-text character set. Lemmas
// carrying characters the filter would strip, or spanning several words,
// are unusable and yield "".
func filterLemma(lemma string) string {
	if disallowedChar.MatchString(lemma) || strings.ContainsFunc(lemma, unicode.IsSpace) {
		return ""
	}
	return cleanToken(strings.ToLower(lemma))
}

// Tokenize splits lowercase text into word tokens. Surrounding '.' and '-'
// are trimmed and tokens without a letter or digit are discarded, so
// "node.js." yields "node.js" and a lone "-" bullet yields nothing.
func Tokenize(text string) []string {
	fields := strings.Fields(text)
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if tok := cleanToken(f); tok != "" {
			tokens = append(tokens, tok)
		}
	}
	return tokens
}

func cleanToken(s string) string {
	s = strings.Trim(s, ".-")
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') {
			return s
		}
	}
	return ""
}
