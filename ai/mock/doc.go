// Package mock provides test double implementations of AI service interfaces.
//
// The mocks allow tests to run without an embedding service and make
// similarity deterministic.
//
// # Usage in Tests
//
//	mockEmbedder := mock.NewMockEmbedder()
//	mockEmbedder.EmbedTextsFunc = func(ctx context.Context, texts []string) ([][]float32, error) {
//	    return nil, errors.New("service down")
//	}
//	provider := mock.NewMockProviderWithEmbedder(mockEmbedder)
//
//	count := mockEmbedder.CallCount()
//
// # Default Behavior
//
//   - MockEmbedder: Returns deterministic unit vectors based on text hash
//   - MockProvider: Wraps a MockEmbedder with a fast-failing config
package mock
