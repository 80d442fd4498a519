package similarity

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLexicalSimilarity(t *testing.T) {
	lex := NewLexical()
	ctx := context.Background()

	tests := []struct {
		name string
		a    string
		b    string
		want float64
	}{
		{"one shared term", "python developer", "python engineer", 0.33609689},
		{"identical", "senior python developer", "senior python developer", 1},
		{"case folded", "Python Developer", "python developer", 1},
		{"disjoint", "python developer", "marketing manager", 0},
		{"empty left", "", "python developer", 0},
		{"empty both", "", "", 0},
		{"single character terms ignored", "c r", "c r", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, lex.Similarity(ctx, tt.a, tt.b), 1e-6)
		})
	}
}

func TestLexicalSimilarity_Symmetric(t *testing.T) {
	lex := NewLexical()
	ctx := context.Background()

	a := "go developer with kubernetes and aws experience"
	b := "senior go engineer aws"
	assert.InDelta(t, lex.Similarity(ctx, a, b), lex.Similarity(ctx, b, a), 1e-12)
}

func TestRescale(t *testing.T) {
	assert.Equal(t, 0.0, Rescale(-1))
	assert.Equal(t, 0.5, Rescale(0))
	assert.Equal(t, 1.0, Rescale(1))
}
