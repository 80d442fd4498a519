package similarity

import (
	"context"
	"math"
	"regexp"
	"strings"
)

// Tokens are runs of two or more word characters.
var termPattern = regexp.MustCompile(`[\p{L}\p{N}_]{2,}`)

// Lexical scores two texts by the cosine of their TF-IDF vectors, with
// document frequencies taken from the pair itself. Weights are raw term
// counts times smoothed idf, ln((1+n)/(1+df))+1, and vectors are
// L2-normalized. Two texts without a shared term score 0.
type Lexical struct{}

var _ Backend = Lexical{}

// NewLexical returns the lexical backend.
func NewLexical() Lexical {
	return Lexical{}
}

// Similarity returns the TF-IDF cosine similarity of a and b in [0, 1].
func (Lexical) Similarity(_ context.Context, a, b string) float64 {
	ta := termCounts(a)
	tb := termCounts(b)
	if len(ta) == 0 || len(tb) == 0 {
		return 0
	}

	const n = 2.0
	idf := func(term string) float64 {
		df := 0.0
		if ta[term] > 0 {
			df++
		}
		if tb[term] > 0 {
			df++
		}
		return math.Log((1+n)/(1+df)) + 1
	}

	var dot, na, nb float64
	for term, ca := range ta {
		wa := float64(ca) * idf(term)
		na += wa * wa
		if cb, ok := tb[term]; ok {
			dot += wa * float64(cb) * idf(term)
		}
	}
	for term, cb := range tb {
		wb := float64(cb) * idf(term)
		nb += wb * wb
	}

	return clamp(dot/(math.Sqrt(na)*math.Sqrt(nb)), 0, 1)
}

func termCounts(text string) map[string]int {
	counts := make(map[string]int)
	for _, term := range termPattern.FindAllString(strings.ToLower(text), -1) {
		counts[term]++
	}
	return counts
}
