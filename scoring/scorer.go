package scoring

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strings"

	"github.com/poiesic/resumatch/core"
	"github.com/poiesic/resumatch/similarity"
)

// Factor weights. They sum to 1.
const (
	WeightSemantic   = 0.15
	WeightSkill      = 0.75
	WeightExperience = 0.10

	// DepartmentBoost multiplies the score of a resume that mentions the
	// job's department.
	DepartmentBoost = 1.05

	MaxScore = 100.0
)

// Scorer scores resumes against jobs.
type Scorer struct {
	backend similarity.Backend
	logger  *slog.Logger
}

// Option configures a Scorer.
type Option func(*Scorer) error

// WithBackend sets the similarity backend for the semantic factor.
// Default is similarity.Lexical.
func WithBackend(b similarity.Backend) Option {
	return func(s *Scorer) error {
		if b == nil {
			return ErrBackendRequired
		}
		s.backend = b
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Scorer) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// NewScorer creates a scorer.
func NewScorer(opts ...Option) (*Scorer, error) {
	s := &Scorer{
		backend: similarity.NewLexical(),
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}
	s.logger = s.logger.With("component", "scoring")
	return s, nil
}

// Breakdown holds the individual factors behind a score.
type Breakdown struct {
	Semantic   float64 // rescaled to [0, 1]
	Skill      float64 // after the ratio curve, may exceed 1
	Experience float64 // 0 when the job has no requirement
	SkillRatio float64 // matched / required before the curve
}

// Score computes the match of resume against job.
// The only error is core.ErrInvalidExperienceSpec for a malformed
// experience requirement.
func (s *Scorer) Score(ctx context.Context, job core.JobRequirement, resume core.ResumeRecord) (core.MatchResult, error) {
	result, _, err := s.ScoreWithBreakdown(ctx, job, resume)
	return result, err
}

// ScoreWithBreakdown is Score, also returning the factors.
func (s *Scorer) ScoreWithBreakdown(ctx context.Context, job core.JobRequirement, resume core.ResumeRecord) (core.MatchResult, Breakdown, error) {
	required, applies, err := core.ParseExperienceSpec(job.Experience)
	if err != nil {
		return core.MatchResult{}, Breakdown{}, fmt.Errorf("job %s: %w", job.ID, err)
	}

	var b Breakdown

	matched := MatchSkills(job.RequiredSkills, resume.Skills)
	if len(job.RequiredSkills) > 0 {
		b.SkillRatio = float64(len(matched)) / float64(len(job.RequiredSkills))
	}
	b.Skill = SkillFactor(b.SkillRatio)

	if applies {
		b.Experience = ExperienceFactor(required, job.Description, resume.NormalizedText)
	}

	b.Semantic = similarity.Rescale(s.backend.Similarity(ctx, job.Description, resume.NormalizedText))

	const totalWeight = WeightSemantic + WeightSkill + WeightExperience
	score := (b.Semantic*WeightSemantic + b.Skill*WeightSkill + b.Experience*WeightExperience) / totalWeight * MaxScore

	department := strings.ToLower(strings.TrimSpace(job.Department))
	departmentMatch := department != "" && strings.Contains(strings.ToLower(resume.NormalizedText), department)
	if departmentMatch {
		score *= DepartmentBoost
	}

	score = math.Max(0, math.Min(MaxScore, score))

	s.logger.Debug("scored resume",
		"job", job.ID,
		"resume", resume.ID,
		"score", score,
		"semantic", b.Semantic,
		"skill", b.Skill,
		"experience", b.Experience)

	return core.MatchResult{
		JobID:           job.ID,
		ResumeID:        resume.ID,
		Score:           score,
		MatchedSkills:   matched,
		DepartmentMatch: departmentMatch,
		Category:        resume.Category,
	}, b, nil
}
