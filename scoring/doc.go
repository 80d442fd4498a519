// Package scoring computes the match score of a resume against a job.
//
// A score combines three factors with fixed weights:
//
//	semantic    0.15  rescaled similarity of job description and resume text
//	skill       0.75  share of required skills found among extracted skills
//	experience  0.10  fit of stated years of experience (0 when the job has none)
//
// The weighted sum is scaled to 0-100, boosted by 5% when the resume mentions
// the job's department, and clamped to [0, 100].
//
// Scoring a pair has no side effects and is safe for concurrent use.
package scoring
