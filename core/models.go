package core

//go:generate go run ../cmd/musgen

import (
	"encoding/binary"
	"time"

	"golang.org/x/crypto/blake2b"
)

// ID is a unique identifier for domain entities.
// Resume IDs are derived from their raw text so re-ingesting a document is idempotent.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// JobRequirement describes a job posting that resumes are screened against.
type JobRequirement struct {
	ID             string   `json:"id" mapstructure:"id"`
	Title          string   `json:"title" mapstructure:"title"`
	Description    string   `json:"description" mapstructure:"description"`
	RequiredSkills []string `json:"required_skills" mapstructure:"required_skills"`
	// Experience is "", "Any", "a-b", "a-b+" or "a+" (years).
	Experience string `json:"experience" mapstructure:"experience"`
	Department string `json:"department" mapstructure:"department"`
}

// ResumeRecord is a candidate document with the fields derived from its text at ingestion.
type ResumeRecord struct {
	ID             ID        `json:"id"`
	Filename       string    `json:"filename"`
	RawText        string    `json:"raw_text"`
	NormalizedText string    `json:"normalized_text"`
	Skills         []string  `json:"skills"`   // canonical skill set, sorted
	Category       string    `json:"category"` // single category label
	InsertedAt     time.Time `json:"inserted_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// MatchResult is the outcome of scoring one resume against one job.
type MatchResult struct {
	JobID           string
	ResumeID        ID
	Score           float64 // in [0,100]
	MatchedSkills   []string
	DepartmentMatch bool
	Category        string
}

// ScreeningResult is a persisted MatchResult.
type ScreeningResult struct {
	ID              string    `json:"id"`
	JobID           string    `json:"job_id"`
	ResumeID        ID        `json:"resume_id"`
	Filename        string    `json:"filename"`
	Score           int       `json:"score"` // truncated toward zero
	MatchedSkills   []string  `json:"matched_skills"`
	DepartmentMatch bool      `json:"department_match"`
	ExperienceLevel string    `json:"experience_level"`
	Category        string    `json:"category"`
	CreatedAt       time.Time `json:"created_at"`
}

// Checkpoint records how far a resumable batch job has progressed.
type Checkpoint struct {
	ProcessorType string    `json:"processor_type"`
	LastID        ID        `json:"last_id"`
	Processed     int       `json:"processed"`
	UpdatedAt     time.Time `json:"updated_at"`
}
