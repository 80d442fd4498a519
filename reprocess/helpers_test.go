package reprocess

import (
	"context"
	"fmt"
	"testing"

	"github.com/poiesic/resumatch/category"
	"github.com/poiesic/resumatch/core"
	"github.com/poiesic/resumatch/ingestion"
	"github.com/poiesic/resumatch/nlp"
	"github.com/poiesic/resumatch/skills"
	"github.com/poiesic/resumatch/storage/badger"
	"github.com/stretchr/testify/require"
)

func newTestAnalyzer(t *testing.T) *ingestion.Analyzer {
	t.Helper()
	normalizer, err := nlp.NewNormalizer(nlp.WithLemmatizer(nlp.IdentityLemmatizer))
	require.NoError(t, err)
	extractor, err := skills.NewExtractor()
	require.NoError(t, err)
	categorizer, err := category.NewCategorizer()
	require.NoError(t, err)
	analyzer, err := ingestion.NewAnalyzer(normalizer, extractor, categorizer)
	require.NoError(t, err)
	return analyzer
}

func setupTestDB(t *testing.T) *badger.Repositories {
	t.Helper()
	repos, err := badger.NewMemoryRepositories()
	require.NoError(t, err)
	t.Cleanup(func() { repos.Close() })
	return repos
}

// seedStale stores n resumes with IDs 1..n whose derived fields are stale.
func seedStale(t *testing.T, repos *badger.Repositories, n int) {
	t.Helper()
	records := make([]*core.ResumeRecord, n)
	for i := range records {
		records[i] = &core.ResumeRecord{
			ID:             core.ID(i + 1),
			Filename:       fmt.Sprintf("resume-%d.pdf", i+1),
			RawText:        fmt.Sprintf("Python developer number %d with SQL and Docker", i+1),
			NormalizedText: "stale",
			Category:       "Other",
		}
	}
	_, err := repos.Resumes.AddResumes(context.Background(), records...)
	require.NoError(t, err)
}
