// Package ranking scores a user's trait vector against career-field profiles
// and produces ranked, explainable compatibility results.
package ranking

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/oguzhan/career-compass/internal/types"
)

// Default weighting of trait categories in the compatibility score. The bias
// toward openness and conscientiousness and away from the sociability-linked
// categories follows the heuristic that technical-field fit depends less on
// extraversion. This is a global default pending product confirmation;
// override via Options.Weights.
const (
	opennessWeight          = 1.3
	conscientiousnessWeight = 1.3
	extraversionWeight      = 0.7
	agreeablenessWeight     = 0.8
	neuroticismWeight       = 1.0
	auxiliaryWeight         = 1.0
)

// DefaultTolerance is the strength/weakness tolerance on the 0-100 scale.
// A category within tolerance of the field's requirement is neither a
// strength nor a weakness.
const DefaultTolerance = 10.0

// userScaleMin and userScaleMax bound the questionnaire trait scale that
// normalizeScore maps onto 0-100.
const (
	userScaleMin = 1.0
	userScaleMax = 5.0
)

// DefaultWeights returns the default per-category weight map.
func DefaultWeights() map[string]float64 {
	return map[string]float64{
		types.CategoryOpenness:          opennessWeight,
		types.CategoryConscientiousness: conscientiousnessWeight,
		types.CategoryExtraversion:      extraversionWeight,
		types.CategoryAgreeableness:     agreeablenessWeight,
		types.CategoryNeuroticism:       neuroticismWeight,
	}
}

// Options configures a ranking request.
type Options struct {
	// Weights maps category names to their contribution weight. Categories
	// absent from the map use a neutral weight. Nil means DefaultWeights.
	Weights map[string]float64
	// Tolerance for strength/weakness derivation on the 0-100 scale.
	// Zero means DefaultTolerance.
	Tolerance float64
	// TopN truncates the result list after sorting. Zero means no truncation.
	TopN int
	// Logger receives diagnostics for skipped catalog entries. Nil means no
	// logging.
	Logger *zap.Logger
}

// Rank computes a weighted compatibility score for every catalog field
// against the user's trait vector and returns results in descending score
// order, ties broken by field ID. An empty catalog yields an empty result;
// a field profile missing its ideal vector is skipped with a diagnostic,
// never aborting the remaining entries.
func Rank(user types.TraitVector, fields []types.FieldProfile, opts Options) []types.CompatibilityResult {
	weights := opts.Weights
	if weights == nil {
		weights = DefaultWeights()
	}
	tolerance := opts.Tolerance
	if tolerance == 0 {
		tolerance = DefaultTolerance
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	results := make([]types.CompatibilityResult, 0, len(fields))
	for i := range fields {
		field := &fields[i]
		if field.Ideal.IsEmpty() {
			logger.Warn("skipping catalog entry with no ideal trait vector",
				zap.String("field_id", field.ID))
			continue
		}

		result := scoreField(user, field, weights, tolerance)
		results = append(results, result)
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].FieldID < results[j].FieldID
	})

	if opts.TopN > 0 && len(results) > opts.TopN {
		results = results[:opts.TopN]
	}

	return results
}

// scoreField computes one field's compatibility result. Categories absent
// from either vector are excluded from both numerator and denominator so
// fields are not penalized for missing optional dimensions.
func scoreField(user types.TraitVector, field *types.FieldProfile, weights map[string]float64, tolerance float64) types.CompatibilityResult {
	var weightedSum, weightTotal float64
	var strengths, weaknesses []string

	for _, category := range field.Ideal.Categories() {
		fieldScore := field.Ideal[category]
		raw, measured := user.Get(category)
		if !measured {
			continue
		}
		userScore := normalizeScore(raw)

		similarity := 100 - math.Abs(userScore-fieldScore)
		if similarity < 0 {
			similarity = 0
		}

		weight, ok := weights[category]
		if !ok {
			weight = auxiliaryWeight
		}
		weightedSum += similarity * weight
		weightTotal += weight

		switch {
		case userScore >= fieldScore-tolerance:
			strengths = append(strengths, category)
		case userScore < fieldScore-2*tolerance:
			weaknesses = append(weaknesses, category)
		}
	}

	score := 0.0
	if weightTotal > 0 {
		score = weightedSum / weightTotal
	}

	return types.CompatibilityResult{
		FieldID:    field.ID,
		Score:      score,
		Strengths:  strengths,
		Weaknesses: weaknesses,
		Notes:      generateNotes(score, strengths, weaknesses),
		Profile:    field,
	}
}

// normalizeScore maps a 1-5 questionnaire score onto the 0-100 scale the
// catalog ideals are authored on.
func normalizeScore(v float64) float64 {
	if v < userScaleMin {
		v = userScaleMin
	}
	if v > userScaleMax {
		v = userScaleMax
	}
	return (v - userScaleMin) / (userScaleMax - userScaleMin) * 100
}

// generateNotes creates a brief explanation of the result for display.
func generateNotes(score float64, strengths, weaknesses []string) string {
	var parts []string

	switch {
	case score >= 80:
		parts = append(parts, "Strong personality fit")
	case score >= 60:
		parts = append(parts, "Moderate personality fit")
	default:
		parts = append(parts, "Weak personality fit")
	}

	if len(strengths) > 0 {
		parts = append(parts, fmt.Sprintf("Meets requirements in %s", strings.Join(strengths, ", ")))
	}
	if len(weaknesses) > 0 {
		parts = append(parts, fmt.Sprintf("Falls short in %s", strings.Join(weaknesses, ", ")))
	}

	return strings.Join(parts, ". ")
}
