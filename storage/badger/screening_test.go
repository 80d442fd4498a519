package badger

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/poiesic/resumatch/core"
	"github.com/poiesic/resumatch/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScreeningRepository_AddAndGet(t *testing.T) {
	repos := newTestRepos(t)
	ctx := context.Background()

	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	results := []*core.ScreeningResult{
		{JobID: "job-a", ResumeID: 1, Score: 40, CreatedAt: base},
		{JobID: "job-a", ResumeID: 2, Score: 90, CreatedAt: base},
		{JobID: "job-a", ResumeID: 3, Score: 90, CreatedAt: base.Add(-time.Hour)},
		{JobID: "job-b", ResumeID: 1, Score: 100},
	}

	added, err := repos.Screenings.AddScreeningResults(ctx, results...)
	require.NoError(t, err)
	for _, r := range added {
		_, err := uuid.Parse(r.ID)
		assert.NoError(t, err)
		assert.False(t, r.CreatedAt.IsZero())
	}

	got, err := repos.Screenings.GetScreeningResults(ctx, "job-a")
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, core.ID(3), got[0].ResumeID, "equal scores order by creation time")
	assert.Equal(t, core.ID(2), got[1].ResumeID)
	assert.Equal(t, core.ID(1), got[2].ResumeID)

	got, err = repos.Screenings.GetScreeningResults(ctx, "job-b")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 100, got[0].Score)
}

func TestScreeningRepository_JobPrefixesDoNotOverlap(t *testing.T) {
	repos := newTestRepos(t)
	ctx := context.Background()

	_, err := repos.Screenings.AddScreeningResults(ctx,
		&core.ScreeningResult{JobID: "a", ResumeID: 1},
		&core.ScreeningResult{JobID: "a:b", ResumeID: 2},
	)
	require.NoError(t, err)

	got, err := repos.Screenings.GetScreeningResults(ctx, "a")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, core.ID(1), got[0].ResumeID)
}

func TestScreeningRepository_Delete(t *testing.T) {
	repos := newTestRepos(t)
	ctx := context.Background()

	_, err := repos.Screenings.AddScreeningResults(ctx,
		&core.ScreeningResult{JobID: "job-a", ResumeID: 1},
		&core.ScreeningResult{JobID: "job-a", ResumeID: 2},
		&core.ScreeningResult{JobID: "job-b", ResumeID: 3},
	)
	require.NoError(t, err)

	require.NoError(t, repos.Screenings.DeleteScreeningResults(ctx, "job-a"))

	got, err := repos.Screenings.GetScreeningResults(ctx, "job-a")
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = repos.Screenings.GetScreeningResults(ctx, "job-b")
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestScreeningRepository_RequiresJobID(t *testing.T) {
	repos := newTestRepos(t)

	_, err := repos.Screenings.AddScreeningResults(context.Background(), &core.ScreeningResult{ResumeID: 1})
	assert.ErrorIs(t, err, storage.ErrInvalidQuery)
}
