package scoring

import "strings"

// MatchSkills returns the required skills that match an extracted skill.
// A required skill matches when either lowercased string contains the other,
// so "java" matches "core java" and also "javascript". Results keep the
// order of required and are lowercased.
func MatchSkills(required, extracted []string) []string {
	have := make([]string, len(extracted))
	for i, s := range extracted {
		have[i] = strings.ToLower(s)
	}

	matched := make([]string, 0, len(required))
	for _, r := range required {
		want := strings.ToLower(r)
		for _, h := range have {
			if strings.Contains(h, want) || strings.Contains(want, h) {
				matched = append(matched, want)
				break
			}
		}
	}
	return matched
}

// SkillFactor applies the match-ratio curve: strong matches (above 0.7)
// are boosted by 20% and weak matches (below 0.3) lose 15%.
func SkillFactor(ratio float64) float64 {
	switch {
	case ratio > 0.7:
		return ratio * 1.2
	case ratio < 0.3:
		return ratio * 0.85
	default:
		return ratio
	}
}
