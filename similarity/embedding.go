package similarity

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/poiesic/resumatch/ai"
	"github.com/poiesic/resumatch/retry"
)

// State describes the embedding capability.
type State int32

const (
	// StatePending means the embedding service has not been loaded yet.
	StatePending State = iota
	// StateAvailable means embeddings are used for similarity.
	StateAvailable
	// StateDegraded means loading failed and lexical similarity is used
	// for the rest of the process lifetime.
	StateDegraded
)

func (s State) String() string {
	switch s {
	case StatePending:
		return "pending"
	case StateAvailable:
		return "available"
	case StateDegraded:
		return "degraded"
	default:
		return fmt.Sprintf("State(%d)", int32(s))
	}
}

var (
	// ErrLoaderRequired is returned when no embedder loader is provided.
	ErrLoaderRequired = errors.New("embedder loader required")

	// ErrFallbackRequired is returned when WithFallback is given nil.
	ErrFallbackRequired = errors.New("fallback backend required")
)

// Loader produces a ready embedder or reports that none is available.
type Loader func(ctx context.Context) (ai.Embedder, error)

// probeText is embedded once to verify the service answers.
const probeText = "resume"

// ProviderLoader returns a Loader that probes the provider's embedder,
// retrying with backoff per the provider's config.
func ProviderLoader(provider ai.AIProvider) Loader {
	return func(ctx context.Context) (ai.Embedder, error) {
		if provider == nil {
			return nil, errors.New("no AI provider configured")
		}
		cfg := provider.Config()
		embedder := provider.Embedder()

		err := retry.WithBackoff(ctx, func() error {
			vec, err := embedder.EmbedText(ctx, probeText)
			if err != nil {
				return err
			}
			if len(vec) == 0 {
				return errors.New("embedding service returned an empty vector")
			}
			return nil
		}, cfg.LoadAttempts, cfg.RetryDelay)
		if err != nil {
			return nil, fmt.Errorf("embedding service unavailable: %w", err)
		}
		return embedder, nil
	}
}

// Embedding is a Backend that compares texts by the cosine similarity of
// their embeddings. The embedder is loaded once, on first use; if loading
// fails every later call uses the fallback. A failed embedding request
// after a successful load falls back for that call only.
type Embedding struct {
	loader   Loader
	fallback Backend
	logger   *slog.Logger

	once     sync.Once
	embedder ai.Embedder
	state    atomic.Int32
}

var _ Backend = (*Embedding)(nil)

// Option configures an Embedding backend.
type Option func(*Embedding) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(e *Embedding) error {
		if logger == nil {
			logger = slog.Default()
		}
		e.logger = logger
		return nil
	}
}

// WithFallback sets the backend used when embeddings are unavailable.
// Default is Lexical.
func WithFallback(b Backend) Option {
	return func(e *Embedding) error {
		if b == nil {
			return ErrFallbackRequired
		}
		e.fallback = b
		return nil
	}
}

// NewEmbedding creates an embedding backend. No request is made until the
// first call to Similarity.
func NewEmbedding(loader Loader, opts ...Option) (*Embedding, error) {
	if loader == nil {
		return nil, ErrLoaderRequired
	}

	e := &Embedding{
		loader:   loader,
		fallback: NewLexical(),
		logger:   slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(e); err != nil {
			return nil, err
		}
	}
	e.logger = e.logger.With("component", "similarity")

	return e, nil
}

// State reports the current capability state.
func (e *Embedding) State() State {
	return State(e.state.Load())
}

// Load initializes the embedder if that has not happened yet and reports
// the resulting state. Concurrent callers block until loading finishes.
func (e *Embedding) Load(ctx context.Context) State {
	e.once.Do(func() {
		// Loading outlives the caller that happened to trigger it.
		embedder, err := e.loader(context.WithoutCancel(ctx))
		if err != nil || embedder == nil {
			e.logger.Warn("embeddings unavailable, using lexical similarity", "err", err)
			e.state.Store(int32(StateDegraded))
			return
		}
		e.embedder = embedder
		e.state.Store(int32(StateAvailable))
		e.logger.Debug("embedding backend ready")
	})
	return e.State()
}

// Similarity returns the cosine similarity of the embeddings of a and b,
// or the fallback similarity when embeddings cannot be computed.
func (e *Embedding) Similarity(ctx context.Context, a, b string) float64 {
	if e.Load(ctx) != StateAvailable {
		return e.fallback.Similarity(ctx, a, b)
	}

	vectors, err := e.embedder.EmbedTexts(ctx, []string{a, b})
	if err == nil && (len(vectors) != 2 || len(vectors[0]) == 0 || len(vectors[0]) != len(vectors[1])) {
		err = fmt.Errorf("unexpected embedding shape for %d texts", 2)
	}
	if err != nil {
		e.logger.Warn("embedding failed, using lexical similarity for this pair", "err", err)
		return e.fallback.Similarity(ctx, a, b)
	}

	return Cosine(vectors[0], vectors[1])
}
