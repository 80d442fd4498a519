// Package screening scores a batch of resumes against one job.
//
// A Screener fans the (job, resume) pairs out to a bounded worker pool.
// The job is validated once up front, so a malformed experience
// requirement fails the whole call before anything is scored. After that,
// a resume whose scoring fails or panics is recorded in the report's
// Failures and the rest of the batch carries on.
//
// Basic usage:
//
//	scorer, _ := scoring.NewScorer(scoring.WithBackend(backend))
//	screener, _ := screening.NewScreener(scorer,
//	    screening.WithResumeRepository(resumes),
//	    screening.WithResultRepository(results))
//	defer screener.Release()
//
//	report, err := screener.ScreenStored(ctx, job)
//	for _, r := range report.Top(10) {
//	    fmt.Println(r.ResumeID, r.Score)
//	}
//
// A Monitor passed to ScreenWithMonitor observes each step.
package screening
