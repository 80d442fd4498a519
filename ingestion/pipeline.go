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


package ingestion

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"strings"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/resumatch/core"
	"github.com/poiesic/resumatch/extract"
	"github.com/poiesic/resumatch/storage"
)

// Document is a resume whose text has already been extracted.
type Document struct {
	Filename string
	Text     string
}

// Failure records a document that could not be ingested.
type Failure struct {
	Filename string
	Err      error
}

// Report is the outcome of one ingestion call.
type Report struct {
	// Records holds the stored records in input order.
	Records  []*core.ResumeRecord
	Failures []Failure
}

// Pipeline orchestrates the ingestion of resume documents.
type Pipeline struct {
	repository storage.ResumeRepository
	analyzer   *Analyzer
	extractor  *extract.Extractor
	pool       *ants.Pool
	logger     *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline) error

// WithPoolSize sets the worker pool size for concurrent processing.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(p *Pipeline) error {
		if size < 1 {
			size = 1
		}

		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		if p.pool != nil {
			p.pool.Release()
		}
		p.pool = pool
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) error {
		if logger == nil {
			logger = slog.Default()
		}
		p.logger = logger
		return nil
	}
}

// WithExtractor sets the extractor used by IngestFiles.
// Default is extract.NewExtractor().
func WithExtractor(e *extract.Extractor) Option {
	return func(p *Pipeline) error {
		if e != nil {
			p.extractor = e
		}
		return nil
	}
}

// NewPipeline creates a new ingestion pipeline.
func NewPipeline(repository storage.ResumeRepository, analyzer *Analyzer, opts ...Option) (*Pipeline, error) {
	if repository == nil {
		return nil, ErrResumeRepositoryRequired
	}
	if analyzer == nil {
		return nil, ErrAnalyzerRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}

	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	p := &Pipeline{
		repository: repository,
		analyzer:   analyzer,
		pool:       pool,
		logger:     slog.Default(),
	}

	for _, opt := range opts {
		if optErr := opt(p); optErr != nil {
			p.Release()
			return nil, optErr
		}
	}

	if p.extractor == nil {
		p.extractor = extract.NewExtractor(extract.WithLogger(p.logger))
	}
	p.logger = p.logger.With("component", "ingestion")

	return p, nil
}

// Ingest analyzes and stores documents. Documents without text are
// reported in the Failures of the returned report. The error is non-nil
// only when storing the records fails or ctx is done.
func (p *Pipeline) Ingest(ctx context.Context, docs ...Document) (*Report, error) {
	names := make([]string, len(docs))
	for i, doc := range docs {
		names[i] = doc.Filename
	}
	return p.run(ctx, names, func(i int) string {
		return docs[i].Text
	})
}

// IngestFiles extracts text from the files at paths and ingests them.
func (p *Pipeline) IngestFiles(ctx context.Context, paths ...string) (*Report, error) {
	return p.run(ctx, paths, func(i int) string {
		return p.extractor.ExtractFile(paths[i])
	})
}

func (p *Pipeline) run(ctx context.Context, filenames []string, load func(i int) string) (*Report, error) {
	n := len(filenames)
	records := make([]*core.ResumeRecord, n)
	failures := make([]error, n)

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		if err := ctx.Err(); err != nil {
			wg.Wait()
			return nil, err
		}

		wg.Add(1)
		err := p.pool.Submit(func() {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					failures[i] = fmt.Errorf("panic while analyzing: %v", r)
				}
			}()

			text := load(i)
			if strings.TrimSpace(text) == "" {
				failures[i] = ErrNoTextExtracted
				return
			}

			record := &core.ResumeRecord{Filename: filenames[i], RawText: text}
			p.analyzer.Analyze(record)
			records[i] = record
		})
		if err != nil {
			wg.Done()
			failures[i] = fmt.Errorf("submit: %w", err)
		}
	}
	wg.Wait()

	report := &Report{}
	var toStore []*core.ResumeRecord
	for i := 0; i < n; i++ {
		if failures[i] != nil {
			p.logger.Warn("document not ingested", "file", filenames[i], "err", failures[i])
			report.Failures = append(report.Failures, Failure{Filename: filenames[i], Err: failures[i]})
			continue
		}
		toStore = append(toStore, records[i])
	}

	if len(toStore) > 0 {
		stored, err := p.repository.AddResumes(ctx, toStore...)
		if err != nil {
			return nil, fmt.Errorf("failed to store resumes: %w", err)
		}
		report.Records = stored
	}

	p.logger.Info("ingestion finished", "stored", len(report.Records), "failed", len(report.Failures))
	return report, nil
}

// Release releases resources including worker pools.
// The pipeline should not be used after calling Release.
func (p *Pipeline) Release() {
	if p.pool != nil {
		p.pool.Release()
	}
}
