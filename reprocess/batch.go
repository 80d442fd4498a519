package reprocess

import (
	"context"
	"fmt"
	"time"

	"github.com/poiesic/resumatch/core"
	"github.com/poiesic/resumatch/ingestion"
	"github.com/poiesic/resumatch/retry"
	"github.com/poiesic/resumatch/storage"
)

// BatchProcessor re-analyzes batches of resumes and stores the result.
type BatchProcessor struct {
	repo           storage.ResumeRepository
	analyzer       *ingestion.Analyzer
	maxRetries     int
	retryBaseDelay time.Duration
}

// NewBatchProcessor creates a new batch processor.
// maxRetries: maximum number of attempts to store a batch
// retryBaseDelay: base delay for exponential backoff
func NewBatchProcessor(repo storage.ResumeRepository, analyzer *ingestion.Analyzer, maxRetries int, retryBaseDelay time.Duration) *BatchProcessor {
	return &BatchProcessor{
		repo:           repo,
		analyzer:       analyzer,
		maxRetries:     maxRetries,
		retryBaseDelay: retryBaseDelay,
	}
}

// Process recomputes the derived fields of records and updates them in storage.
// Records with no raw text keep their stored fields.
func (bp *BatchProcessor) Process(ctx context.Context, records []*core.ResumeRecord) error {
	if len(records) == 0 {
		return nil
	}

	for _, record := range records {
		if core.ValidateResumeRecord(record) != nil {
			continue
		}
		bp.analyzer.Analyze(record)
	}

	err := retry.WithBackoff(ctx, func() error {
		_, err := bp.repo.UpdateResumes(ctx, records...)
		return err
	}, bp.maxRetries, bp.retryBaseDelay)
	if err != nil {
		return fmt.Errorf("failed to update %d resumes after %d attempts: %w", len(records), bp.maxRetries, err)
	}

	return nil
}
