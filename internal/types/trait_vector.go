// Package types provides type definitions for structured data used throughout the career-compass engine.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "sort"

// Canonical Big Five trait categories. Trait vectors may additionally carry
// auxiliary interest categories; these five are the ones the adaptation rules
// and default ranking weights know about.
const (
	CategoryOpenness          = "openness"
	CategoryConscientiousness = "conscientiousness"
	CategoryExtraversion      = "extraversion"
	CategoryAgreeableness     = "agreeableness"
	CategoryNeuroticism       = "neuroticism"
)

// BigFiveCategories lists the canonical categories in their conventional order.
func BigFiveCategories() []string {
	return []string{
		CategoryOpenness,
		CategoryConscientiousness,
		CategoryExtraversion,
		CategoryAgreeableness,
		CategoryNeuroticism,
	}
}

// TraitVector maps trait-category names to bounded numeric scores.
// User vectors are on the questionnaire's 1.0-5.0 scale; field ideal vectors
// are authored on a 0-100 scale. A category absent from the map means
// "not measured", which is distinct from a minimum score.
type TraitVector map[string]float64

// NewTraitVector returns a copy of the given scores so the caller's map
// cannot mutate the vector afterwards.
func NewTraitVector(scores map[string]float64) TraitVector {
	tv := make(TraitVector, len(scores))
	for category, score := range scores {
		tv[category] = score
	}
	return tv
}

// Get returns the score for a category and whether it was measured.
func (tv TraitVector) Get(category string) (float64, bool) {
	score, ok := tv[category]
	return score, ok
}

// Has reports whether the category was measured.
func (tv TraitVector) Has(category string) bool {
	_, ok := tv[category]
	return ok
}

// Categories returns the measured category names in lexicographic order,
// so iteration over a vector is deterministic.
func (tv TraitVector) Categories() []string {
	categories := make([]string, 0, len(tv))
	for category := range tv {
		categories = append(categories, category)
	}
	sort.Strings(categories)
	return categories
}

// Clone returns an independent copy of the vector.
func (tv TraitVector) Clone() TraitVector {
	return NewTraitVector(tv)
}

// IsEmpty reports whether no categories were measured.
func (tv TraitVector) IsEmpty() bool {
	return len(tv) == 0
}
