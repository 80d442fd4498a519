package badger

import (
	"cmp"
	"context"
	"slices"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/poiesic/resumatch/core"
	"github.com/poiesic/resumatch/storage"
)

// ScreeningRepository implements storage.ScreeningRepository for BadgerDB.
// Results are keyed under a per-job prefix so a job's results are read
// with one prefix scan.
type ScreeningRepository struct {
	backend *Backend
}

var _ storage.ScreeningRepository = (*ScreeningRepository)(nil)

// NewScreeningRepository creates a new ScreeningRepository.
func NewScreeningRepository(backend *Backend) (*ScreeningRepository, error) {
	if backend == nil {
		return nil, ErrBackendRequired
	}
	return &ScreeningRepository{backend: backend}, nil
}

// Close releases resources. ScreeningRepository has no resources to release.
func (r *ScreeningRepository) Close() error {
	return nil
}

// WithTransaction delegates to the backend.
func (r *ScreeningRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.backend.WithTransaction(ctx, fn)
}

// AddScreeningResults stores screening results.
func (r *ScreeningRepository) AddScreeningResults(ctx context.Context, results ...*core.ScreeningResult) ([]*core.ScreeningResult, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		now := time.Now().UTC().Truncate(time.Microsecond)
		for _, result := range results {
			if strings.TrimSpace(result.JobID) == "" {
				return storage.ErrInvalidQuery
			}
			if result.ID == "" {
				result.ID = uuid.NewString()
			}
			if result.CreatedAt.IsZero() {
				result.CreatedAt = now
			}

			value := storage.MarshalScreeningResult(result)
			if err := tx.Set(makeScreeningKey(result.JobID, result.ID), value); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)

	return results, err
}

// GetScreeningResults retrieves all results for a job, best score first.
func (r *ScreeningRepository) GetScreeningResults(ctx context.Context, jobID string) ([]*core.ScreeningResult, error) {
	var results []*core.ScreeningResult
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		return scanPrefix(tx, makeScreeningJobPrefix(jobID), nil, func(_, val []byte) (bool, error) {
			result, err := storage.UnmarshalScreeningResult(val)
			if err != nil {
				return false, err
			}
			if result.JobID == jobID {
				results = append(results, result)
			}
			return true, nil
		})
	}, false)
	if err != nil {
		return nil, err
	}

	slices.SortStableFunc(results, func(a, b *core.ScreeningResult) int {
		if c := cmp.Compare(b.Score, a.Score); c != 0 {
			return c
		}
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.ResumeID, b.ResumeID)
	})

	return results, nil
}

// DeleteScreeningResults removes all results for a job.
func (r *ScreeningRepository) DeleteScreeningResults(ctx context.Context, jobID string) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		var keys [][]byte
		err := scanPrefix(tx, makeScreeningJobPrefix(jobID), nil, func(key, _ []byte) (bool, error) {
			keys = append(keys, key)
			return true, nil
		})
		if err != nil {
			return err
		}
		for _, key := range keys {
			if err := tx.Delete(key); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}
