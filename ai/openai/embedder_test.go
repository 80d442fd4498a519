package openai

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/poiesic/resumatch/ai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeDocuments stands in for the langchaingo embedder.
type fakeDocuments struct {
	calls   int
	drop    bool
	failErr error
}

func (f *fakeDocuments) EmbedDocuments(ctx context.Context, texts []string) ([][]float32, error) {
	f.calls++
	if f.failErr != nil {
		return nil, f.failErr
	}
	vectors := make([][]float32, 0, len(texts))
	for _, text := range texts {
		vectors = append(vectors, []float32{float32(len(text)), 1})
	}
	if f.drop {
		vectors = vectors[:len(vectors)-1]
	}
	return vectors, nil
}

func (f *fakeDocuments) EmbedQuery(ctx context.Context, text string) ([]float32, error) {
	vectors, err := f.EmbedDocuments(ctx, []string{text})
	if err != nil {
		return nil, err
	}
	return vectors[0], nil
}

func newFakeEmbedder(docs *fakeDocuments) *Embedder {
	return &Embedder{embedder: docs, logger: slog.Default()}
}

func TestEmbedder_EmbedTexts(t *testing.T) {
	ctx := context.Background()

	t.Run("job and resume embedded together", func(t *testing.T) {
		docs := &fakeDocuments{}
		e := newFakeEmbedder(docs)

		vectors, err := e.EmbedTexts(ctx, []string{"backend engineer", "python developer sql"})
		require.NoError(t, err)
		require.Len(t, vectors, 2)
		assert.Equal(t, []float32{16, 1}, vectors[0])
		assert.Equal(t, []float32{20, 1}, vectors[1])
		assert.Equal(t, 1, docs.calls)
	})

	t.Run("blank text rejected before any request", func(t *testing.T) {
		docs := &fakeDocuments{}
		e := newFakeEmbedder(docs)

		_, err := e.EmbedTexts(ctx, []string{"backend engineer", " \n\t"})
		assert.ErrorIs(t, err, ErrEmptyText)
		assert.Contains(t, err.Error(), "text 2 of 2")
		assert.Zero(t, docs.calls)
	})

	t.Run("missing vectors", func(t *testing.T) {
		e := newFakeEmbedder(&fakeDocuments{drop: true})

		_, err := e.EmbedTexts(ctx, []string{"a resume", "a job"})
		assert.ErrorIs(t, err, ErrVectorCount)
	})

	t.Run("service error passed through", func(t *testing.T) {
		boom := errors.New("connection refused")
		e := newFakeEmbedder(&fakeDocuments{failErr: boom})

		_, err := e.EmbedTexts(ctx, []string{"a resume"})
		assert.ErrorIs(t, err, boom)
	})
}

func TestEmbedder_EmbedText(t *testing.T) {
	ctx := context.Background()
	e := newFakeEmbedder(&fakeDocuments{})

	vector, err := e.EmbedText(ctx, "resume")
	require.NoError(t, err)
	assert.Equal(t, []float32{6, 1}, vector)

	_, err = e.EmbedText(ctx, "")
	assert.ErrorIs(t, err, ErrEmptyText)
}

func TestNewProvider(t *testing.T) {
	t.Run("invalid config", func(t *testing.T) {
		_, err := NewProvider(&ai.Config{})
		assert.Error(t, err)
	})

	t.Run("valid config makes no request", func(t *testing.T) {
		config := ai.NewConfig(ai.WithEmbeddingHost("http://127.0.0.1:1"))

		provider, err := NewProvider(config)
		require.NoError(t, err)
		defer provider.Close()

		assert.Same(t, config, provider.Config())
		assert.NotNil(t, provider.Embedder())
	})
}
