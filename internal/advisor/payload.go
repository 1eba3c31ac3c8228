package advisor

import (
	"fmt"
	"strings"

	"github.com/oguzhan/career-compass/internal/adaptation"
	"github.com/oguzhan/career-compass/internal/prompts"
	"github.com/oguzhan/career-compass/internal/types"
)

// defaultHistoryWindow bounds how many trailing history messages go into the
// outbound payload.
const defaultHistoryWindow = 5

// buildPayload assembles the single outbound instruction payload from the
// category preamble, the rendered adaptation profile, the selected field,
// the numeric trait vector and the trailing history window.
func buildPayload(req Request, profile types.AdaptationProfile, window int) string {
	preamble := prompts.MustGet("advisory.json", preambleKey(req.Category))
	template := prompts.MustGet("advisory.json", "payload")

	return prompts.Format(template, map[string]string{
		"Preamble":   preamble,
		"Field":      req.fieldLabel(),
		"Traits":     renderTraits(req.User),
		"Adaptation": adaptation.Render(profile),
		"History":    renderHistory(req.History, window),
		"Message":    req.Message,
	})
}

func preambleKey(category types.AdvisoryCategory) string {
	switch category {
	case types.CategoryCasual, types.CategoryCareer, types.CategoryEducation, types.CategoryTechnical:
		return "preamble-" + string(category)
	default:
		return "preamble-" + string(types.CategoryCareer)
	}
}

// renderTraits renders the full trait vector numerically, in deterministic
// category order.
func renderTraits(user types.TraitVector) string {
	if user.IsEmpty() {
		return "- (no questionnaire data)"
	}
	var sb strings.Builder
	for i, category := range user.Categories() {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(fmt.Sprintf("- %s: %.1f/5", category, user[category]))
	}
	return sb.String()
}

// renderHistory renders the most recent window messages, oldest first.
func renderHistory(history []string, window int) string {
	if window <= 0 {
		window = defaultHistoryWindow
	}
	if len(history) > window {
		history = history[len(history)-window:]
	}
	if len(history) == 0 {
		return "- (none)"
	}
	var sb strings.Builder
	for i, message := range history {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString("- " + message)
	}
	return sb.String()
}
