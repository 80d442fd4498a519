package scoring

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/poiesic/resumatch/core"
)

var resumeExperiencePattern = regexp.MustCompile(
	`(?i)(\d+)(?:\s*-\s*(\d+))?\+?\s*(?:year|yr)s?(?:\s*of)?\s*experience`)

// seniorityTerms is checked in order; the first term present in both the
// job description and the resume decides the score.
var seniorityTerms = []struct {
	term  string
	score float64
}{
	{"senior", 0.9},
	{"junior", 0.9},
	{"entry-level", 0.9},
	{"lead", 0.85},
	{"manager", 0.8},
}

const defaultExperienceScore = 0.6

// ResumeExperience finds the first "<n>[-<m>] years of experience" mention
// in text and returns it as a range.
func ResumeExperience(text string) (core.ExperienceRange, bool) {
	m := resumeExperiencePattern.FindStringSubmatch(text)
	if m == nil {
		return core.ExperienceRange{}, false
	}
	lo := years(m[1])
	hi := lo
	if m[2] != "" {
		hi = years(m[2])
	}
	return core.ExperienceRange{Min: lo, Max: hi}, true
}

// years parses a run of digits, saturating at math.MaxInt on overflow.
func years(digits string) int {
	n, err := strconv.Atoi(digits)
	if errors.Is(err, strconv.ErrRange) {
		return math.MaxInt
	}
	return n
}

// ExperienceFactor scores how well the resume's experience fits required.
// When the resume states no years of experience, shared seniority terms
// between description and resumeText are used instead.
func ExperienceFactor(required core.ExperienceRange, description, resumeText string) float64 {
	if stated, ok := ResumeExperience(resumeText); ok {
		switch {
		case required.Overlaps(stated):
			return 1.0
		case stated.Min > required.Max:
			return 0.8
		case stated.Max < required.Min:
			return 0.4
		default:
			return defaultExperienceScore
		}
	}

	desc := strings.ToLower(description)
	resume := strings.ToLower(resumeText)
	for _, s := range seniorityTerms {
		if strings.Contains(desc, s.term) && strings.Contains(resume, s.term) {
			return s.score
		}
	}
	return defaultExperienceScore
}
