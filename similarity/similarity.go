package similarity

import "context"

// Backend computes the similarity of two texts in [-1, 1].
// Implementations never fail; a backend that cannot compute a value
// degrades to a simpler measure internally.
type Backend interface {
	Similarity(ctx context.Context, a, b string) float64
}

// Rescale maps a similarity in [-1, 1] to [0, 1].
func Rescale(s float64) float64 {
	return (s + 1) / 2
}
