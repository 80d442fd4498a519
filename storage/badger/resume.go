package badger

import (
	"context"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/resumatch/core"
	"github.com/poiesic/resumatch/storage"
)

// ResumeRepository implements storage.ResumeRepository for BadgerDB.
type ResumeRepository struct {
	backend *Backend
}

var _ storage.ResumeRepository = (*ResumeRepository)(nil)

// NewResumeRepository creates a new ResumeRepository.
func NewResumeRepository(backend *Backend) (*ResumeRepository, error) {
	if backend == nil {
		return nil, ErrBackendRequired
	}
	return &ResumeRepository{
		backend: backend,
	}, nil
}

// Close releases resources. ResumeRepository has no resources to release.
func (r *ResumeRepository) Close() error {
	return nil
}

// WithTransaction delegates to the backend.
func (r *ResumeRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.backend.WithTransaction(ctx, fn)
}

// AddResumes adds one or more resume records to storage.
func (r *ResumeRepository) AddResumes(ctx context.Context, records ...*core.ResumeRecord) ([]*core.ResumeRecord, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		// Stored timestamps have microsecond precision.
		now := time.Now().UTC().Truncate(time.Microsecond)
		for _, record := range records {
			// Use content-based ID if not set
			if record.ID == 0 {
				record.ID = core.IDFromContent(record.RawText)
			}

			key := makeResumeKey(record.ID)
			existing, err := readResume(tx, key)
			if err != nil {
				return err
			}
			if existing != nil {
				record.InsertedAt = existing.InsertedAt
			} else if record.InsertedAt.IsZero() {
				record.InsertedAt = now
			}
			record.UpdatedAt = now

			if err := writeResume(tx, key, record); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)

	return records, err
}

// UpdateResumes updates existing resume records.
func (r *ResumeRepository) UpdateResumes(ctx context.Context, records ...*core.ResumeRecord) ([]*core.ResumeRecord, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		now := time.Now().UTC().Truncate(time.Microsecond)
		for _, record := range records {
			key := makeResumeKey(record.ID)

			old, err := readResume(tx, key)
			if err != nil {
				return err
			}
			if old == nil {
				return storage.ErrNotFound
			}

			record.InsertedAt = old.InsertedAt
			record.UpdatedAt = now
			if err := writeResume(tx, key, record); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)

	return records, err
}

// DeleteResumes removes resume records by their IDs.
func (r *ResumeRepository) DeleteResumes(ctx context.Context, ids ...core.ID) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		for _, id := range ids {
			key := makeResumeKey(id)

			record, err := readResume(tx, key)
			if err != nil {
				return err
			}
			if record == nil {
				return storage.ErrNotFound
			}

			if err := tx.Delete(key); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// GetResume retrieves a single resume record by ID.
func (r *ResumeRepository) GetResume(ctx context.Context, id core.ID) (*core.ResumeRecord, error) {
	var result *core.ResumeRecord
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		var err error
		result, err = readResume(tx, makeResumeKey(id))
		if err != nil {
			return err
		}
		if result == nil {
			return storage.ErrNotFound
		}
		return nil
	}, false)
	return result, err
}

// GetResumes retrieves multiple resume records by their IDs.
func (r *ResumeRepository) GetResumes(ctx context.Context, ids ...core.ID) ([]*core.ResumeRecord, error) {
	var result []*core.ResumeRecord
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, id := range ids {
			record, err := readResume(tx, makeResumeKey(id))
			if err != nil {
				return err
			}
			if record != nil {
				result = append(result, record)
			}
		}
		return nil
	}, false)
	return result, err
}

// ListResumes retrieves records with IDs greater than after, in ID order.
func (r *ResumeRepository) ListResumes(ctx context.Context, after core.ID, limit int) ([]*core.ResumeRecord, error) {
	var results []*core.ResumeRecord
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		var seek []byte
		if after > 0 {
			seek = makeResumeKey(after)
		}
		return scanPrefix(tx, []byte(resumeRecordPrefix), seek, func(key, val []byte) (bool, error) {
			id, err := resumeIDFromKey(key)
			if err != nil {
				return false, err
			}
			if after > 0 && id <= after {
				return true, nil
			}
			if err := ctx.Err(); err != nil {
				return false, err
			}

			record, err := storage.UnmarshalResumeRecord(val)
			if err != nil {
				return false, err
			}
			results = append(results, record)
			return limit <= 0 || len(results) < limit, nil
		})
	}, false)

	return results, err
}

// CountResumes returns the number of stored resume records.
func (r *ResumeRepository) CountResumes(ctx context.Context) (int, error) {
	var n int
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		n = countPrefix(tx, []byte(resumeRecordPrefix))
		return nil
	}, false)
	return n, err
}

// readResume reads a resume record from the transaction.
func readResume(tx *badger.Txn, key []byte) (*core.ResumeRecord, error) {
	val, err := getValue(tx, key)
	if err != nil || val == nil {
		return nil, err
	}
	return storage.UnmarshalResumeRecord(val)
}

func writeResume(tx *badger.Txn, key []byte, record *core.ResumeRecord) error {
	return tx.Set(key, storage.MarshalResumeRecord(record))
}
