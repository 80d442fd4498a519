package core

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// ExperienceAny is the experience requirement meaning "no requirement".
const ExperienceAny = "Any"

// Unbounded is the upper bound used for open-ended ranges such as "5+".
const Unbounded = math.MaxInt

// ExperienceRange is an inclusive range of years.
type ExperienceRange struct {
	Min int
	Max int
}

// Overlaps reports whether r and other share at least one year.
func (r ExperienceRange) Overlaps(other ExperienceRange) bool {
	return r.Min <= other.Max && other.Min <= r.Max
}

// String renders the range in the same notation it is parsed from.
func (r ExperienceRange) String() string {
	if r.Max == Unbounded {
		return fmt.Sprintf("%d+", r.Min)
	}
	if r.Min == r.Max {
		return strconv.Itoa(r.Min)
	}
	return fmt.Sprintf("%d-%d", r.Min, r.Max)
}

var experienceSpecPattern = regexp.MustCompile(`^(\d+)\s*(?:-\s*(\d+))?\s*(\+)?$`)

// ParseExperienceSpec parses a job's experience requirement.
// The boolean result is false when the requirement is empty or "Any",
// in which case the experience factor does not apply.
//
// Accepted forms: "a-b" (inclusive), "a-b+" (at least a, no upper bound)
// and "a+" (at least a). A bare number places no bound at all.
func ParseExperienceSpec(spec string) (ExperienceRange, bool, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" || strings.EqualFold(spec, ExperienceAny) {
		return ExperienceRange{}, false, nil
	}

	m := experienceSpecPattern.FindStringSubmatch(spec)
	if m == nil {
		return ExperienceRange{}, false, fmt.Errorf("%w: %q", ErrInvalidExperienceSpec, spec)
	}

	lo, err := strconv.Atoi(m[1])
	if err != nil {
		return ExperienceRange{}, false, fmt.Errorf("%w: %q: %w", ErrInvalidExperienceSpec, spec, err)
	}
	if m[2] == "" && m[3] == "" {
		return ExperienceRange{Min: 0, Max: Unbounded}, true, nil
	}
	hi := lo
	if m[2] != "" {
		hi, err = strconv.Atoi(m[2])
		if err != nil {
			return ExperienceRange{}, false, fmt.Errorf("%w: %q: %w", ErrInvalidExperienceSpec, spec, err)
		}
	}
	if m[3] != "" {
		hi = Unbounded
	}
	if hi < lo {
		return ExperienceRange{}, false, fmt.Errorf("%w: %q: upper bound below lower bound", ErrInvalidExperienceSpec, spec)
	}

	return ExperienceRange{Min: lo, Max: hi}, true, nil
}
