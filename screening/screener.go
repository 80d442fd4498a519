package screening

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/resumatch/core"
	"github.com/poiesic/resumatch/scoring"
	"github.com/poiesic/resumatch/storage"
)

// Screener scores resumes against a job concurrently.
type Screener struct {
	scorer  *scoring.Scorer
	resumes storage.ResumeRepository
	results storage.ScreeningRepository
	pool    *ants.Pool
	logger  *slog.Logger
}

// Option configures a Screener.
type Option func(*Screener) error

// WithPoolSize sets the number of resumes scored at once.
// Default is runtime.NumCPU(), with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(s *Screener) error {
		if size < 1 {
			size = 1
		}
		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		if s.pool != nil {
			s.pool.Release()
		}
		s.pool = pool
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Screener) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// WithResumeRepository sets where ScreenStored loads resumes from.
func WithResumeRepository(repo storage.ResumeRepository) Option {
	return func(s *Screener) error {
		s.resumes = repo
		return nil
	}
}

// WithResultRepository enables persisting each successful result.
func WithResultRepository(repo storage.ScreeningRepository) Option {
	return func(s *Screener) error {
		s.results = repo
		return nil
	}
}

// NewScreener creates a new screener.
func NewScreener(scorer *scoring.Scorer, opts ...Option) (*Screener, error) {
	if scorer == nil {
		return nil, ErrScorerRequired
	}

	poolSize := max(runtime.NumCPU(), 1)
	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	s := &Screener{
		scorer: scorer,
		pool:   pool,
		logger: slog.Default(),
	}

	for _, opt := range opts {
		if optErr := opt(s); optErr != nil {
			s.Release()
			return nil, optErr
		}
	}
	s.logger = s.logger.With("component", "screening")

	return s, nil
}

// Screen scores resumes against job.
func (s *Screener) Screen(ctx context.Context, job core.JobRequirement, resumes []*core.ResumeRecord) (*Report, error) {
	return s.ScreenWithMonitor(ctx, job, resumes, nil)
}

// ScreenStored scores stored resumes against job: the given IDs, or every
// stored resume when none are given. IDs that do not exist are reported
// as failures.
func (s *Screener) ScreenStored(ctx context.Context, job core.JobRequirement, ids ...core.ID) (*Report, error) {
	return s.ScreenStoredWithMonitor(ctx, job, nil, ids...)
}

// ScreenStoredWithMonitor is ScreenStored with monitoring.
func (s *Screener) ScreenStoredWithMonitor(ctx context.Context, job core.JobRequirement, monitor Monitor, ids ...core.ID) (*Report, error) {
	if s.resumes == nil {
		return nil, ErrResumeRepositoryRequired
	}
	if err := core.ValidateJobRequirement(&job); err != nil {
		return nil, err
	}

	var (
		resumes []*core.ResumeRecord
		err     error
	)
	if len(ids) == 0 {
		resumes, err = s.resumes.ListResumes(ctx, 0, 0)
	} else {
		resumes, err = s.resumes.GetResumes(ctx, ids...)
	}
	if err != nil {
		s.logger.Error("error loading resumes", "err", err)
		return nil, err
	}

	report, err := s.ScreenWithMonitor(ctx, job, resumes, monitor)
	if err != nil {
		return nil, err
	}

	found := make(map[core.ID]bool, len(resumes))
	for _, r := range resumes {
		found[r.ID] = true
	}
	for _, id := range ids {
		if !found[id] {
			report.Failures = append(report.Failures, Failure{ResumeID: id, Err: storage.ErrNotFound})
		}
	}
	sortFailures(report.Failures)

	return report, nil
}

// ScreenWithMonitor scores resumes against job with monitoring.
// The returned error is non-nil only when job is invalid, ctx is done
// before every resume was submitted, or persisting results fails.
func (s *Screener) ScreenWithMonitor(ctx context.Context, job core.JobRequirement, resumes []*core.ResumeRecord, monitor Monitor) (*Report, error) {
	if monitor == nil {
		monitor = &noopMonitor{}
	}
	if err := core.ValidateJobRequirement(&job); err != nil {
		return nil, err
	}

	monitor.Start(job, len(resumes))

	var (
		mu     sync.Mutex
		wg     sync.WaitGroup
		report = &Report{JobID: job.ID}
	)
	fail := func(id core.ID, err error) {
		s.logger.Warn("resume not scored", "job", job.ID, "resume", id, "err", err)
		monitor.Failed(id, err)
		mu.Lock()
		report.Failures = append(report.Failures, Failure{ResumeID: id, Err: err})
		mu.Unlock()
	}

	for _, resume := range resumes {
		if resume == nil {
			continue
		}
		if err := ctx.Err(); err != nil {
			wg.Wait()
			return nil, err
		}

		wg.Add(1)
		err := s.pool.Submit(func() {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					fail(resume.ID, fmt.Errorf("panic while scoring: %v", r))
				}
			}()

			result, err := s.scorer.Score(ctx, job, *resume)
			if err != nil {
				fail(resume.ID, err)
				return
			}
			monitor.Scored(result)
			mu.Lock()
			report.Results = append(report.Results, result)
			mu.Unlock()
		})
		if err != nil {
			wg.Done()
			fail(resume.ID, fmt.Errorf("submit: %w", err))
		}
	}
	wg.Wait()

	sortResults(report.Results)
	sortFailures(report.Failures)

	if s.results != nil && len(report.Results) > 0 {
		stored, err := s.persist(ctx, job, resumes, report.Results)
		if err != nil {
			s.logger.Error("error storing screening results", "job", job.ID, "err", err)
			return nil, err
		}
		report.Stored = stored
	}

	s.logger.Info("screening finished", "job", job.ID, "scored", len(report.Results), "failed", len(report.Failures))
	monitor.Finish(report)

	return report, nil
}

func (s *Screener) persist(ctx context.Context, job core.JobRequirement, resumes []*core.ResumeRecord, results []core.MatchResult) ([]*core.ScreeningResult, error) {
	filenames := make(map[core.ID]string, len(resumes))
	for _, r := range resumes {
		if r != nil {
			filenames[r.ID] = r.Filename
		}
	}

	rows := make([]*core.ScreeningResult, len(results))
	for i, r := range results {
		rows[i] = NewScreeningResult(job, r, filenames[r.ResumeID])
	}
	return s.results.AddScreeningResults(ctx, rows...)
}

// NewScreeningResult converts a match into its stored form. The score is
// truncated to a whole number.
func NewScreeningResult(job core.JobRequirement, m core.MatchResult, filename string) *core.ScreeningResult {
	return &core.ScreeningResult{
		JobID:           m.JobID,
		ResumeID:        m.ResumeID,
		Filename:        filename,
		Score:           int(m.Score),
		MatchedSkills:   m.MatchedSkills,
		DepartmentMatch: m.DepartmentMatch,
		ExperienceLevel: job.Experience,
		Category:        m.Category,
	}
}

// Release releases the worker pool.
// The screener should not be used after calling Release.
func (s *Screener) Release() {
	if s.pool != nil {
		s.pool.Release()
	}
}
