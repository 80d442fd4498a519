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


package reprocess

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/poiesic/resumatch/core"
	"github.com/poiesic/resumatch/ingestion"
	"github.com/poiesic/resumatch/storage"
)

// CheckpointName identifies reprocessing runs in the checkpoint repository.
const CheckpointName = "reprocess"

// Config holds configuration for a reprocessing run.
type Config struct {
	// BatchSize is the number of resumes processed per batch
	BatchSize int

	// ReportInterval is how often to report progress (number of resumes)
	ReportInterval int

	// MaxRetries is the maximum number of attempts to store a batch
	MaxRetries int

	// RetryDelay is the base delay for exponential backoff
	RetryDelay time.Duration
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		BatchSize:      100,
		ReportInterval: 100,
		MaxRetries:     3,
		RetryDelay:     1 * time.Second,
	}
}

// Summary describes a finished run.
type Summary struct {
	// Total is the number of stored resumes when the run started.
	Total int
	// Processed counts resumes processed, including those done by an
	// earlier interrupted run.
	Processed int
	// ResumedAfter is the last resume ID of the checkpoint the run
	// continued from, or zero.
	ResumedAfter core.ID
	Elapsed      time.Duration
}

// Reprocessor recomputes derived fields for every stored resume.
type Reprocessor struct {
	resumes     storage.ResumeRepository
	checkpoints storage.CheckpointRepository
	config      *Config
	progress    io.Writer
	logger      *slog.Logger
	processor   *BatchProcessor
	iterator    *RecordIterator
}

// Option configures a Reprocessor.
type Option func(*Reprocessor) error

// WithCheckpoints enables saving progress after each batch, and continuing
// from the saved position on the next run.
func WithCheckpoints(repo storage.CheckpointRepository) Option {
	return func(r *Reprocessor) error {
		r.checkpoints = repo
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(r *Reprocessor) error {
		if logger == nil {
			logger = slog.Default()
		}
		r.logger = logger
		return nil
	}
}

// NewReprocessor creates a new reprocessor.
// progress: where to write progress output (typically os.Stderr)
func NewReprocessor(resumes storage.ResumeRepository, analyzer *ingestion.Analyzer, config *Config, progress io.Writer, opts ...Option) (*Reprocessor, error) {
	if resumes == nil {
		return nil, ErrResumeRepositoryRequired
	}
	if analyzer == nil {
		return nil, ErrAnalyzerRequired
	}
	if config == nil {
		config = DefaultConfig()
	}
	if progress == nil {
		progress = io.Discard
	}

	r := &Reprocessor{
		resumes:   resumes,
		config:    config,
		progress:  progress,
		logger:    slog.Default(),
		processor: NewBatchProcessor(resumes, analyzer, config.MaxRetries, config.RetryDelay),
		iterator:  NewRecordIterator(resumes, config.BatchSize),
	}

	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, err
		}
	}
	r.logger = r.logger.With("component", "reprocess")

	return r, nil
}

// Run reprocesses all stored resumes. When checkpoints are enabled and an
// earlier run was interrupted, only resumes after its last batch are
// processed. The checkpoint is cleared once every resume is done.
func (r *Reprocessor) Run(ctx context.Context) (*Summary, error) {
	total, err := r.resumes.CountResumes(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count resumes: %w", err)
	}

	summary := &Summary{Total: total}
	if total == 0 {
		fmt.Fprintf(r.progress, "No resumes found in database (0 records)\n")
		return summary, nil
	}

	checkpoint, err := r.loadCheckpoint(ctx)
	if err != nil {
		return nil, err
	}
	if checkpoint.LastID != 0 {
		summary.ResumedAfter = checkpoint.LastID
		fmt.Fprintf(r.progress, "Resuming after resume %d (%d already processed)\n",
			checkpoint.LastID, checkpoint.Processed)
	}

	fmt.Fprintf(r.progress, "Starting reprocessing of %d resumes (batch size: %d)\n",
		total, r.iterator.batchSize)

	tracker := NewProgressTracker(r.progress, total, r.config.ReportInterval)
	tracker.Start()
	tracker.Update(checkpoint.Processed)

	err = r.iterator.ForEach(ctx, checkpoint.LastID, func(records []*core.ResumeRecord) error {
		if err := r.processor.Process(ctx, records); err != nil {
			return fmt.Errorf("failed to process batch: %w", err)
		}

		checkpoint.LastID = records[len(records)-1].ID
		checkpoint.Processed += len(records)
		if err := r.saveCheckpoint(ctx, checkpoint); err != nil {
			return err
		}

		tracker.Update(checkpoint.Processed)
		return nil
	})
	if err != nil {
		r.logger.Error("reprocessing stopped", "processed", checkpoint.Processed, "err", err)
		return nil, err
	}

	if r.checkpoints != nil {
		if err := r.checkpoints.ClearCheckpoint(ctx, CheckpointName); err != nil {
			return nil, fmt.Errorf("failed to clear checkpoint: %w", err)
		}
	}

	tracker.Finish()

	summary.Processed = checkpoint.Processed
	summary.Elapsed = tracker.Elapsed()
	fmt.Fprintf(r.progress, "Reprocessing complete. Processed %d resumes in %v\n",
		summary.Processed, summary.Elapsed.Round(time.Millisecond))
	r.logger.Info("reprocessing complete", "processed", summary.Processed, "elapsed", summary.Elapsed)

	return summary, nil
}

func (r *Reprocessor) loadCheckpoint(ctx context.Context) (*core.Checkpoint, error) {
	fresh := &core.Checkpoint{ProcessorType: CheckpointName}
	if r.checkpoints == nil {
		return fresh, nil
	}

	checkpoint, err := r.checkpoints.LoadCheckpoint(ctx, CheckpointName)
	if err != nil {
		return nil, fmt.Errorf("failed to load checkpoint: %w", err)
	}
	if checkpoint == nil {
		return fresh, nil
	}
	return checkpoint, nil
}

func (r *Reprocessor) saveCheckpoint(ctx context.Context, checkpoint *core.Checkpoint) error {
	if r.checkpoints == nil {
		return nil
	}
	if err := r.checkpoints.SaveCheckpoint(ctx, checkpoint); err != nil {
		return fmt.Errorf("failed to save checkpoint: %w", err)
	}
	return nil
}
