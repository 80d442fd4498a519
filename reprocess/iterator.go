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

	"github.com/poiesic/resumatch/core"
	"github.com/poiesic/resumatch/storage"
)

// DefaultBatchSize is the number of resumes fetched per batch when none is given.
const DefaultBatchSize = 100

// RecordIterator pages through stored resumes in ID order.
type RecordIterator struct {
	repo      storage.ResumeRepository
	batchSize int
}

// NewRecordIterator creates a new record iterator.
// A batchSize <= 0 uses DefaultBatchSize.
func NewRecordIterator(repo storage.ResumeRepository, batchSize int) *RecordIterator {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	return &RecordIterator{
		repo:      repo,
		batchSize: batchSize,
	}
}

// ForEach calls fn with each batch of resumes whose ID is greater than
// after. Only one batch is held in memory at a time. Iteration stops on
// the first error from fn or the repository, or when ctx is done.
func (it *RecordIterator) ForEach(ctx context.Context, after core.ID, fn func([]*core.ResumeRecord) error) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		batch, err := it.repo.ListResumes(ctx, after, it.batchSize)
		if err != nil {
			return err
		}
		if len(batch) == 0 {
			return nil
		}

		if err := fn(batch); err != nil {
			return err
		}

		if len(batch) < it.batchSize {
			return nil
		}
		after = batch[len(batch)-1].ID
	}
}
