package badger

import (
	"context"
	"strings"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/resumatch/core"
	"github.com/poiesic/resumatch/storage"
)

// JobRepository implements storage.JobRepository for BadgerDB.
type JobRepository struct {
	backend *Backend
}

var _ storage.JobRepository = (*JobRepository)(nil)

// NewJobRepository creates a new JobRepository.
func NewJobRepository(backend *Backend) (*JobRepository, error) {
	if backend == nil {
		return nil, ErrBackendRequired
	}
	return &JobRepository{backend: backend}, nil
}

// Close releases resources. JobRepository has no resources to release.
func (r *JobRepository) Close() error {
	return nil
}

// WithTransaction delegates to the backend.
func (r *JobRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.backend.WithTransaction(ctx, fn)
}

// SaveJob creates or replaces a job requirement.
func (r *JobRepository) SaveJob(ctx context.Context, job *core.JobRequirement) error {
	if job == nil || strings.TrimSpace(job.ID) == "" {
		return storage.ErrInvalidQuery
	}
	if err := core.ValidateJobRequirement(job); err != nil {
		return err
	}
	value := storage.MarshalJobRequirement(job)
	return r.backend.WithTx(func(tx *badger.Txn) error {
		if err := tx.Set(makeJobKey(job.ID), value); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// GetJob retrieves a job requirement by ID.
func (r *JobRepository) GetJob(ctx context.Context, id string) (*core.JobRequirement, error) {
	var job *core.JobRequirement
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		val, err := getValue(tx, makeJobKey(id))
		if err != nil {
			return err
		}
		if val == nil {
			return storage.ErrNotFound
		}
		job, err = storage.UnmarshalJobRequirement(val)
		return err
	}, false)
	return job, err
}

// ListJobs retrieves all job requirements ordered by ID.
func (r *JobRepository) ListJobs(ctx context.Context) ([]*core.JobRequirement, error) {
	var jobs []*core.JobRequirement
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		return scanPrefix(tx, []byte(jobRequirementPrefix), nil, func(_, val []byte) (bool, error) {
			job, err := storage.UnmarshalJobRequirement(val)
			if err != nil {
				return false, err
			}
			jobs = append(jobs, job)
			return true, nil
		})
	}, false)
	return jobs, err
}
