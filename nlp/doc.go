// Package nlp provides the text normalization primitives shared by skill
// extraction, categorization and scoring.
//
// A Normalizer produces the canonical form every derived field is computed
// from. PhraseMatcher implements the whole-word phrase test used against
// that canonical form.
//
//	n, err := nlp.NewNormalizer(nlp.WithProtectedTerms(taxonomy.Terms()...))
//	if err != nil {
//	    return err
//	}
//	text := n.Normalize("Senior Python developer, 5+ years of experience")
//	// "senior python developer 5+ year experience"
package nlp
