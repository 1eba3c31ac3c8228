// Package adaptation derives the adaptation profile that conditions advisory
// requests: tone/framing directives from trait thresholds, preference
// inference from conversation history, and time-of-day activity framing.
// Everything here is a pure function of its inputs.
package adaptation

import "github.com/oguzhan/career-compass/internal/types"

// Trait thresholds on the 1-5 questionnaire scale. A dimension contributes a
// directive only when it crosses one of them, and at most one directive per
// dimension.
const (
	highThreshold = 3.5
	lowThreshold  = 2.5
)

// dimensionRule holds the directive texts for one trait dimension.
// For neuroticism the polarity is inverted: the low bucket is the resilient
// case, so its "low" text carries the high-stakes framing.
type dimensionRule struct {
	dimension string
	highText  string
	lowText   string
}

var dimensionRules = []dimensionRule{
	{
		dimension: types.CategoryOpenness,
		highText:  "Favor exploratory ideas and creative framing; this user enjoys novel approaches.",
		lowText:   "Favor structured, proven approaches; avoid presenting too many experimental options.",
	},
	{
		dimension: types.CategoryConscientiousness,
		highText:  "Offer detailed long-range plans with concrete milestones and checklists.",
		lowText:   "Keep guidance flexible and iterative; avoid rigid long-term commitments.",
	},
	{
		dimension: types.CategoryExtraversion,
		highText:  "Frame activities around collaboration, teams and communities.",
		lowText:   "Frame activities around independent, self-paced work.",
	},
	{
		dimension: types.CategoryAgreeableness,
		highText:  "Emphasize mentorship, community contribution and helping others grow.",
		lowText:   "Emphasize individual achievement and measurable personal progress.",
	},
	{
		dimension: types.CategoryNeuroticism,
		highText:  "Prefer stable, structured, low-stress options; avoid pressure framing.",
		lowText:   "Comfortable with high-stakes, fast-changing challenges; do not over-cushion advice.",
	},
}

// deriveDirectives returns the directives contributed by trait dimensions
// crossing their thresholds, in the fixed canonical dimension order.
func deriveDirectives(user types.TraitVector) []types.Directive {
	var directives []types.Directive
	for _, rule := range dimensionRules {
		score, measured := user.Get(rule.dimension)
		if !measured {
			continue
		}
		switch {
		case score > highThreshold:
			directives = append(directives, types.Directive{Dimension: rule.dimension, Text: rule.highText})
		case score < lowThreshold:
			directives = append(directives, types.Directive{Dimension: rule.dimension, Text: rule.lowText})
		}
	}
	return directives
}
