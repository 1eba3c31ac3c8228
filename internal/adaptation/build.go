package adaptation

import (
	"fmt"
	"strings"
	"time"

	"github.com/oguzhan/career-compass/internal/types"
)

// Build derives an adaptation profile from the user's trait vector, a recent
// conversation-history snippet and the current timestamp. It never fails:
// empty or malformed history yields the default preferences, and an empty
// trait vector yields no directives.
func Build(user types.TraitVector, history []string, now time.Time) types.AdaptationProfile {
	period := periodOf(now.Hour())
	framing := periodFramings[period]

	suggestions := append([]string(nil), framing.suggestions...)
	weekend := isWeekend(now)
	if weekend {
		suggestions = append(suggestions, weekendSuggestions...)
	}

	return types.AdaptationProfile{
		Directives:       deriveDirectives(user),
		Period:           period,
		EnergyLevel:      framing.energy,
		Suggestions:      suggestions,
		Weekend:          weekend,
		DetailPreference: inferDetailPreference(history),
		LearningStyle:    inferLearningStyle(history),
	}
}

// Render turns a profile into the directive text block injected into an
// advisory payload.
func Render(profile types.AdaptationProfile) string {
	var sb strings.Builder

	if len(profile.Directives) > 0 {
		sb.WriteString("Adaptation directives:\n")
		for _, directive := range profile.Directives {
			sb.WriteString(fmt.Sprintf("- %s\n", directive.Text))
		}
	}

	sb.WriteString(fmt.Sprintf("Detail preference: %s. Learning style: %s.\n",
		profile.DetailPreference, profile.LearningStyle))
	sb.WriteString(fmt.Sprintf("It is %s (energy: %s)", profile.Period, profile.EnergyLevel))
	if profile.Weekend {
		sb.WriteString(", on a weekend")
	}
	sb.WriteString(".\n")

	if len(profile.Suggestions) > 0 {
		sb.WriteString("Period-appropriate activities:\n")
		for _, suggestion := range profile.Suggestions {
			sb.WriteString(fmt.Sprintf("- %s\n", suggestion))
		}
	}

	return sb.String()
}
