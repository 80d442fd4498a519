// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package resumatch

import (
	"errors"
	"io"
	"log/slog"

	"github.com/poiesic/resumatch/ai"
	"github.com/poiesic/resumatch/ai/openai"
	"github.com/poiesic/resumatch/ingestion"
	"github.com/poiesic/resumatch/nlp"
	"github.com/poiesic/resumatch/reprocess"
	"github.com/poiesic/resumatch/scoring"
	"github.com/poiesic/resumatch/screening"
	"github.com/poiesic/resumatch/similarity"
	"github.com/poiesic/resumatch/storage"
	"github.com/poiesic/resumatch/storage/badger"
)

// Database wires storage, resume analysis and scoring together.
type Database struct {
	repos    *badger.Repositories
	analyzer *ingestion.Analyzer
	provider ai.AIProvider
	backend  similarity.Backend
	scorer   *scoring.Scorer
	logger   *slog.Logger
}

// DatabaseOption configures a Database.
type DatabaseOption func(*databaseOptions)

type databaseOptions struct {
	aiConfig      *ai.Config
	provider      ai.AIProvider
	noEmbeddings  bool
	inMemory      bool
	logger        *slog.Logger
	normalizerOps []nlp.Option
}

// WithAIConfig sets the embedding service configuration.
// Default is ai.DefaultConfig().
func WithAIConfig(cfg *ai.Config) DatabaseOption {
	return func(o *databaseOptions) {
		o.aiConfig = cfg
	}
}

// WithAIProvider uses provider for embeddings instead of building one
// from the AI config. The Database closes it.
func WithAIProvider(provider ai.AIProvider) DatabaseOption {
	return func(o *databaseOptions) {
		o.provider = provider
	}
}

// WithoutEmbeddings scores semantic similarity lexically and never
// contacts an embedding service.
func WithoutEmbeddings() DatabaseOption {
	return func(o *databaseOptions) {
		o.noEmbeddings = true
	}
}

// InMemory keeps all data in memory. The path passed to NewDatabase is ignored.
func InMemory() DatabaseOption {
	return func(o *databaseOptions) {
		o.inMemory = true
	}
}

// WithLogger sets the logger handed to every component.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) DatabaseOption {
	return func(o *databaseOptions) {
		o.logger = logger
	}
}

// WithNormalizerOptions adds options for the resume text normalizer.
func WithNormalizerOptions(opts ...nlp.Option) DatabaseOption {
	return func(o *databaseOptions) {
		o.normalizerOps = append(o.normalizerOps, opts...)
	}
}

// NewDatabase opens (or creates) the database at filePath.
func NewDatabase(filePath string, opts ...DatabaseOption) (*Database, error) {
	options := &databaseOptions{
		aiConfig: ai.DefaultConfig(),
	}
	for _, opt := range opts {
		opt(options)
	}
	logger := options.logger
	if logger == nil {
		logger = slog.Default()
	}

	backend, err := badger.OpenBackend(filePath, options.inMemory)
	if err != nil {
		return nil, err
	}

	repos, err := badger.NewRepositories(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	analyzer, err := ingestion.NewDefaultAnalyzer(options.normalizerOps...)
	if err != nil {
		repos.Close()
		return nil, err
	}

	db := &Database{
		repos:    repos,
		analyzer: analyzer,
		backend:  similarity.NewLexical(),
		logger:   logger,
	}

	if !options.noEmbeddings {
		provider := options.provider
		if provider == nil {
			provider, err = openai.NewProvider(options.aiConfig)
			if err != nil {
				repos.Close()
				return nil, err
			}
		}
		db.provider = provider

		db.backend, err = similarity.NewEmbedding(similarity.ProviderLoader(provider),
			similarity.WithLogger(logger))
		if err != nil {
			db.Close()
			return nil, err
		}
	}

	db.scorer, err = scoring.NewScorer(scoring.WithBackend(db.backend), scoring.WithLogger(logger))
	if err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

// Close releases the AI provider and the storage.
func (db *Database) Close() error {
	var errs []error
	if db.provider != nil {
		if err := db.provider.Close(); err != nil {
			db.logger.Error("error closing AI provider", "err", err)
			errs = append(errs, err)
		}
	}
	if err := db.repos.Close(); err != nil {
		db.logger.Error("error closing storage", "err", err)
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

func (db *Database) ResumeRepository() storage.ResumeRepository {
	return db.repos.Resumes
}

func (db *Database) JobRepository() storage.JobRepository {
	return db.repos.Jobs
}

func (db *Database) ScreeningRepository() storage.ScreeningRepository {
	return db.repos.Screenings
}

func (db *Database) CheckpointRepository() storage.CheckpointRepository {
	return db.repos.Checkpoints
}

// Analyzer returns the analyzer used for ingestion and reprocessing.
func (db *Database) Analyzer() *ingestion.Analyzer {
	return db.analyzer
}

// Scorer returns the scorer used by screeners.
func (db *Database) Scorer() *scoring.Scorer {
	return db.scorer
}

// SimilarityState reports whether embeddings are in use. It is
// StateDegraded when embeddings are disabled.
func (db *Database) SimilarityState() similarity.State {
	if e, ok := db.backend.(*similarity.Embedding); ok {
		return e.State()
	}
	return similarity.StateDegraded
}

func (db *Database) NewIngestionPipeline(opts ...ingestion.Option) (*ingestion.Pipeline, error) {
	base := []ingestion.Option{ingestion.WithLogger(db.logger)}
	return ingestion.NewPipeline(db.repos.Resumes, db.analyzer, append(base, opts...)...)
}

// NewScreener returns a screener over the stored resumes that persists
// its results.
func (db *Database) NewScreener(opts ...screening.Option) (*screening.Screener, error) {
	base := []screening.Option{
		screening.WithLogger(db.logger),
		screening.WithResumeRepository(db.repos.Resumes),
		screening.WithResultRepository(db.repos.Screenings),
	}
	return screening.NewScreener(db.scorer, append(base, opts...)...)
}

// NewReprocessor returns a checkpointed reprocessor writing progress to progress.
func (db *Database) NewReprocessor(config *reprocess.Config, progress io.Writer, opts ...reprocess.Option) (*reprocess.Reprocessor, error) {
	base := []reprocess.Option{
		reprocess.WithLogger(db.logger),
		reprocess.WithCheckpoints(db.repos.Checkpoints),
	}
	return reprocess.NewReprocessor(db.repos.Resumes, db.analyzer, config, progress, append(base, opts...)...)
}
