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


package storage

import (
	"context"

	"github.com/poiesic/resumatch/core"
)

// Repository provides common storage operations shared across all repositories.
// Implementations must be thread-safe and support concurrent access.
type Repository interface {
	// WithTransaction executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	// If fn returns nil, the transaction is committed.
	// The context passed to fn may contain transaction state.
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error

	// Close closes the storage backend and releases resources.
	Close() error
}

// ResumeRepository provides operations for managing resume records.
type ResumeRepository interface {
	Repository
	// AddResumes adds one or more resume records to storage.
	// For records with ID=0, the ID is derived from RawText, so adding the
	// same document twice replaces the earlier record.
	// Sets InsertedAt, keeping the original value when the record already exists.
	// Returns the records with IDs and timestamps populated.
	AddResumes(ctx context.Context, records ...*core.ResumeRecord) ([]*core.ResumeRecord, error)

	// UpdateResumes updates existing resume records.
	// Updates the UpdatedAt timestamp automatically.
	// Returns ErrNotFound if any record doesn't exist.
	UpdateResumes(ctx context.Context, records ...*core.ResumeRecord) ([]*core.ResumeRecord, error)

	// DeleteResumes removes resume records by their IDs.
	// Returns ErrNotFound if any record doesn't exist.
	DeleteResumes(ctx context.Context, ids ...core.ID) error

	// GetResume retrieves a single resume record by ID.
	// Returns ErrNotFound if the record doesn't exist.
	GetResume(ctx context.Context, id core.ID) (*core.ResumeRecord, error)

	// GetResumes retrieves multiple resume records by their IDs.
	// Returns only the records that exist (no error for missing records).
	GetResumes(ctx context.Context, ids ...core.ID) ([]*core.ResumeRecord, error)

	// ListResumes retrieves up to limit records with IDs greater than after,
	// ordered by ID. A limit <= 0 returns all remaining records.
	ListResumes(ctx context.Context, after core.ID, limit int) ([]*core.ResumeRecord, error)

	// CountResumes returns the number of stored resume records.
	CountResumes(ctx context.Context) (int, error)
}

// JobRepository provides operations for managing job requirements.
type JobRepository interface {
	Repository
	// SaveJob creates or replaces a job requirement.
	// Jobs failing core.ValidateJobRequirement are rejected.
	SaveJob(ctx context.Context, job *core.JobRequirement) error

	// GetJob retrieves a job requirement by ID.
	// Returns ErrNotFound if the job doesn't exist.
	GetJob(ctx context.Context, id string) (*core.JobRequirement, error)

	// ListJobs retrieves all job requirements ordered by ID.
	ListJobs(ctx context.Context) ([]*core.JobRequirement, error)
}

// ScreeningRepository provides operations for managing screening results.
type ScreeningRepository interface {
	Repository
	// AddScreeningResults stores screening results.
	// Results without an ID get a new random one; CreatedAt is set if zero.
	AddScreeningResults(ctx context.Context, results ...*core.ScreeningResult) ([]*core.ScreeningResult, error)

	// GetScreeningResults retrieves all results for a job,
	// ordered by score descending, then by creation time.
	GetScreeningResults(ctx context.Context, jobID string) ([]*core.ScreeningResult, error)

	// DeleteScreeningResults removes all results for a job.
	DeleteScreeningResults(ctx context.Context, jobID string) error
}

// CheckpointRepository persists progress of resumable batch jobs.
type CheckpointRepository interface {
	// SaveCheckpoint persists a checkpoint for a processor type.
	SaveCheckpoint(ctx context.Context, checkpoint *core.Checkpoint) error

	// LoadCheckpoint retrieves the checkpoint for a processor type.
	// Returns nil, nil if no checkpoint exists.
	LoadCheckpoint(ctx context.Context, processorType string) (*core.Checkpoint, error)

	// ClearCheckpoint removes the checkpoint for a processor type.
	ClearCheckpoint(ctx context.Context, processorType string) error
}
