package reprocess

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/poiesic/resumatch/core"
	"github.com/poiesic/resumatch/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// flakyRepository fails the first failures calls to UpdateResumes.
type flakyRepository struct {
	storage.ResumeRepository
	failures int
	calls    int
}

func (f *flakyRepository) UpdateResumes(ctx context.Context, records ...*core.ResumeRecord) ([]*core.ResumeRecord, error) {
	f.calls++
	if f.calls <= f.failures {
		return nil, errors.New("store unavailable")
	}
	return f.ResumeRepository.UpdateResumes(ctx, records...)
}

func TestBatchProcessor_Process(t *testing.T) {
	repos := setupTestDB(t)
	seedStale(t, repos, 3)
	ctx := context.Background()

	records, err := repos.Resumes.GetResumes(ctx, 1, 2, 3)
	require.NoError(t, err)

	bp := NewBatchProcessor(repos.Resumes, newTestAnalyzer(t), 3, time.Millisecond)
	require.NoError(t, bp.Process(ctx, records))

	stored, err := repos.Resumes.GetResume(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "python developer number 2 sql docker", stored.NormalizedText)
	assert.ElementsMatch(t, []string{"python", "sql", "docker"}, stored.Skills)
	assert.Equal(t, "Tech", stored.Category)
	assert.Equal(t, "resume-2.pdf", stored.Filename)
}

func TestBatchProcessor_EmptyBatch(t *testing.T) {
	repo := &flakyRepository{}
	bp := NewBatchProcessor(repo, newTestAnalyzer(t), 3, time.Millisecond)

	require.NoError(t, bp.Process(context.Background(), nil))
	assert.Zero(t, repo.calls)
}

func TestBatchProcessor_Retry(t *testing.T) {
	repos := setupTestDB(t)
	seedStale(t, repos, 2)
	ctx := context.Background()

	records, err := repos.Resumes.GetResumes(ctx, 1, 2)
	require.NoError(t, err)

	t.Run("recovers after transient failures", func(t *testing.T) {
		repo := &flakyRepository{ResumeRepository: repos.Resumes, failures: 2}
		bp := NewBatchProcessor(repo, newTestAnalyzer(t), 3, time.Millisecond)

		require.NoError(t, bp.Process(ctx, records))
		assert.Equal(t, 3, repo.calls)
	})

	t.Run("gives up after max retries", func(t *testing.T) {
		repo := &flakyRepository{ResumeRepository: repos.Resumes, failures: 5}
		bp := NewBatchProcessor(repo, newTestAnalyzer(t), 3, time.Millisecond)

		err := bp.Process(ctx, records)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "after 3 attempts")
		assert.Equal(t, 3, repo.calls)
	})
}

func TestBatchProcessor_MissingRecord(t *testing.T) {
	repos := setupTestDB(t)

	bp := NewBatchProcessor(repos.Resumes, newTestAnalyzer(t), 1, time.Millisecond)
	err := bp.Process(context.Background(), []*core.ResumeRecord{{ID: 42, RawText: "python"}})
	assert.ErrorIs(t, err, storage.ErrNotFound)
}
