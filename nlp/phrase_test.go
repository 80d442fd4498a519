package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPhraseMatcher(t *testing.T) {
	tests := []struct {
		name         string
		phrase       string
		flexibleDots bool
		text         string
		want         bool
	}{
		{"whole word", "hr", true, "hr generalist", true},
		{"not inside a word", "hr", true, "shred paper", false},
		{"prefix is not a match", "java", true, "javascript developer", false},
		{"multi word", "machine learning", true, "applied machine learning engineer", true},
		{"multi word split", "machine learning", true, "machine and learning", false},
		{"dotted literal", "node.js", true, "node.js developer", true},
		{"dot as space", "node.js", true, "node js developer", true},
		{"dot removed", "node.js", true, "nodejs developer", true},
		{"strict dots reject space", "next.js", false, "next js", false},
		{"strict dots accept literal", "next.js", false, "built with next.js", true},
		{"symbol suffix at end", "c++", true, "senior c++", true},
		{"symbol suffix mid text", "c++", true, "c++ developer", true},
		{"single letter", "r", true, "python r sql", true},
		{"single letter inside word", "r", true, "rust", false},
		{"case insensitive", "aws", true, "AWS certified", true},
		{"hyphenated", "problem-solving", true, "strong problem-solving skills", true},
		{"empty text", "python", true, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := CompilePhrase(tt.phrase, tt.flexibleDots)
			require.NoError(t, err)
			assert.Equal(t, tt.want, m.Match(tt.text))
			assert.Equal(t, tt.phrase, m.Phrase())
		})
	}
}

func TestMustCompilePhrase(t *testing.T) {
	assert.NotPanics(t, func() {
		MustCompilePhrase("ui/ux", true)
		MustCompilePhrase("r&d", false)
		MustCompilePhrase("c#", true)
	})
}
