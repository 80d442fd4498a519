// Package taxonomy holds the static skill vocabulary and category taxonomy
// used to derive structured fields from resume text.
//
// The tables are immutable. Accessors return copies so callers may reorder
// or extend them without affecting other users.
package taxonomy

import (
	"slices"
	"strings"
)

const (
	// LabelOther is assigned when no category keyword matched but the text
	// names a generic role.
	LabelOther = "Other"

	// LabelUncategorized is assigned when nothing matched at all.
	LabelUncategorized = "Uncategorized"
)

// Category is a labelled list of keywords.
type Category struct {
	Label    string
	Keywords []string
}

// SkillVocabulary returns the skill phrases in declaration order.
func SkillVocabulary() []string {
	return slices.Clone(skillVocabulary)
}

// Categories returns the category taxonomy in priority order.
func Categories() []Category {
	out := make([]Category, len(categories))
	for i, c := range categories {
		out[i] = Category{Label: c.Label, Keywords: slices.Clone(c.Keywords)}
	}
	return out
}

// RoleWords returns the generic role words that trigger LabelOther.
func RoleWords() []string {
	return slices.Clone(roleWords)
}

// CanonicalSkill returns the canonical display form of a vocabulary phrase.
// Dots are removed so "node.js" and "node js" both report as "nodejs".
func CanonicalSkill(phrase string) string {
	return strings.ReplaceAll(phrase, ".", "")
}

// Terms returns every distinct token that appears in a vocabulary phrase
// or category keyword, in first-seen order.
func Terms() []string {
	seen := make(map[string]bool)
	var out []string
	add := func(phrase string) {
		for _, tok := range strings.Fields(phrase) {
			if !seen[tok] {
				seen[tok] = true
				out = append(out, tok)
			}
		}
	}
	for _, phrase := range skillVocabulary {
		add(phrase)
	}
	for _, c := range categories {
		for _, kw := range c.Keywords {
			add(kw)
		}
	}
	return out
}
