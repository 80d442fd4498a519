// Package similarity provides the semantic similarity measure used by scoring.
//
// Two backends implement Backend:
//
//   - Embedding: cosine similarity of embedding vectors from an ai.Embedder,
//     loaded lazily exactly once
//   - Lexical: TF-IDF cosine similarity over the two texts being compared
//
// Embedding degrades to Lexical when the embedding service cannot be loaded
// (for the rest of the process) or when a single request fails (for that
// call). Callers never see an error from either backend.
package similarity
