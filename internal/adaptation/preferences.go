package adaptation

import "strings"

// preferenceRule maps a cue-phrase set to a preference label. Rules are
// evaluated in order; the first set with a hit wins. This is a best-effort
// heuristic over conversation history, not language understanding.
type preferenceRule struct {
	cues  []string
	label string
}

var detailRules = []preferenceRule{
	{
		label: "high",
		cues: []string{
			"in detail", "detailed", "step by step", "step-by-step",
			"explain more", "more detail", "thoroughly", "elaborate",
		},
	},
	{
		label: "low",
		cues: []string{
			"briefly", "in short", "short answer", "summary", "summarize",
			"quick answer", "tldr", "keep it short",
		},
	},
}

var learningStyleRules = []preferenceRule{
	{
		label: "practical",
		cues: []string{
			"hands-on", "hands on", "practice", "example", "exercise",
			"project", "build something", "try it", "tutorial",
		},
	},
	{
		label: "theoretical",
		cues: []string{
			"theory", "theoretical", "concept", "principle", "fundamentals",
			"how it works", "understand why", "background reading",
		},
	},
}

// inferDetailPreference scans history for detail-level cues.
// Absence of cues yields the "medium" default.
func inferDetailPreference(history []string) string {
	return classify(history, detailRules, "medium")
}

// inferLearningStyle scans history for learning-style cues.
// Absence of cues yields the "mixed" default.
func inferLearningStyle(history []string) string {
	return classify(history, learningStyleRules, "mixed")
}

func classify(history []string, rules []preferenceRule, fallback string) string {
	if len(history) == 0 {
		return fallback
	}
	text := strings.ToLower(strings.Join(history, " "))
	for _, rule := range rules {
		for _, cue := range rule.cues {
			if strings.Contains(text, cue) {
				return rule.label
			}
		}
	}
	return fallback
}
