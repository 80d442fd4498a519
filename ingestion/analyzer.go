// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package ingestion

import (
	"github.com/poiesic/resumatch/category"
	"github.com/poiesic/resumatch/core"
	"github.com/poiesic/resumatch/nlp"
	"github.com/poiesic/resumatch/skills"
	"github.com/poiesic/resumatch/taxonomy"
)

// Analyzer derives the cached fields of a resume from its raw text.
// It is safe for concurrent use.
type Analyzer struct {
	normalizer  *nlp.Normalizer
	skills      *skills.Extractor
	categorizer *category.Categorizer
}

// NewAnalyzer creates an analyzer from its parts.
func NewAnalyzer(normalizer *nlp.Normalizer, extractor *skills.Extractor, categorizer *category.Categorizer) (*Analyzer, error) {
	if normalizer == nil || extractor == nil || categorizer == nil {
		return nil, ErrAnalyzerRequired
	}
	return &Analyzer{
		normalizer:  normalizer,
		skills:      extractor,
		categorizer: categorizer,
	}, nil
}

// NewDefaultAnalyzer creates an analyzer over the built-in skill vocabulary
// and category taxonomy, with the English lemmatizer. Vocabulary terms are
// kept out of lemmatization so phrases like "data science" survive.
func NewDefaultAnalyzer(opts ...nlp.Option) (*Analyzer, error) {
	base := []nlp.Option{nlp.WithProtectedTerms(taxonomy.Terms()...)}
	normalizer, err := nlp.NewNormalizer(append(base, opts...)...)
	if err != nil {
		return nil, err
	}
	extractor, err := skills.NewExtractor()
	if err != nil {
		return nil, err
	}
	categorizer, err := category.NewCategorizer()
	if err != nil {
		return nil, err
	}
	return NewAnalyzer(normalizer, extractor, categorizer)
}

// Analyze fills NormalizedText, Skills and Category of record from its RawText.
func (a *Analyzer) Analyze(record *core.ResumeRecord) {
	record.NormalizedText = a.normalizer.Normalize(record.RawText)
	record.Skills = a.skills.Extract(record.NormalizedText)
	record.Category = a.categorizer.Categorize(record.NormalizedText)
}

