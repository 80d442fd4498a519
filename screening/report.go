package screening

import (
	"cmp"
	"slices"

	"github.com/poiesic/resumatch/core"
)

// Failure records a resume that could not be scored.
type Failure struct {
	ResumeID core.ID
	Err      error
}

// Report is the outcome of screening a set of resumes against one job.
type Report struct {
	JobID string
	// Results are ordered by score, best first; equal scores by resume ID.
	Results  []core.MatchResult
	Failures []Failure
	// Stored holds the persisted results when a result repository is configured.
	Stored []*core.ScreeningResult
}

// Top returns the n best results. n <= 0 or n beyond the number of
// results returns all of them.
func (r *Report) Top(n int) []core.MatchResult {
	if n <= 0 || n >= len(r.Results) {
		return r.Results
	}
	return r.Results[:n]
}

func sortResults(results []core.MatchResult) {
	slices.SortFunc(results, func(a, b core.MatchResult) int {
		if c := cmp.Compare(b.Score, a.Score); c != 0 {
			return c
		}
		return cmp.Compare(a.ResumeID, b.ResumeID)
	})
}

func sortFailures(failures []Failure) {
	slices.SortFunc(failures, func(a, b Failure) int {
		return cmp.Compare(a.ResumeID, b.ResumeID)
	})
}
