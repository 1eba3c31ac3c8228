package advisor

import (
	"strings"
	"unicode"

	"github.com/oguzhan/career-compass/internal/prompts"
	"github.com/oguzhan/career-compass/internal/types"
)

// topicRule maps a keyword set to a topic. Rules are evaluated in fixed
// priority order; the first set with a hit wins. This is a heuristic for
// choosing a fallback template, not language understanding.
type topicRule struct {
	topic    types.Topic
	keywords []string
}

var topicRules = []topicRule{
	{types.TopicGreeting, []string{
		"hello", "hey", "hi", "greetings", "good morning", "good afternoon",
		"good evening", "merhaba", "selam",
	}},
	{types.TopicCareerPath, []string{
		"career", "careers", "path", "paths", "profession", "become a",
		"future", "roadmap", "kariyer",
	}},
	{types.TopicTechnology, []string{
		"technology", "technologies", "tech stack", "tool", "tools",
		"framework", "frameworks", "programming language", "software",
		"teknoloji",
	}},
	{types.TopicProjects, []string{
		"project", "projects", "portfolio", "side project", "build something",
		"proje",
	}},
	{types.TopicJobs, []string{
		"job", "jobs", "hiring", "interview", "interviews", "apply", "salary",
		"position", "vacancy", "resume", "cv",
	}},
	{types.TopicEducation, []string{
		"education", "course", "courses", "degree", "degrees", "university",
		"school", "study", "learn", "bootcamp", "certification", "eğitim",
	}},
	{types.TopicSkills, []string{
		"skill", "skills", "ability", "improve", "practice", "get better",
		"beceri",
	}},
}

// classifyTopic classifies a user message against the fixed keyword lexicon.
// A message matching nothing classifies as general.
func classifyTopic(message string) types.Topic {
	text := strings.ToLower(message)
	words := strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
	for _, rule := range topicRules {
		for _, keyword := range rule.keywords {
			if hasKeyword(text, words, keyword) {
				return rule.topic
			}
		}
	}
	return types.TopicGeneral
}

// hasKeyword matches multi-word cues as substrings and single-word cues
// against whole words only, so "path" does not fire on "empathy" and "hi"
// does not fire mid-word.
func hasKeyword(text string, words []string, keyword string) bool {
	if strings.Contains(keyword, " ") {
		return strings.Contains(text, keyword)
	}
	for _, word := range words {
		if word == keyword {
			return true
		}
	}
	return false
}

// fallbackText returns the deterministic templated response for a topic,
// parameterized by the selected field and the user's trait buckets. It has
// no external dependency and no failure path.
func fallbackText(topic types.Topic, field string, user types.TraitVector) string {
	template := prompts.MustGet("fallbacks.json", string(topic))
	return prompts.Format(template, map[string]string{
		"Field":        field,
		"ProjectStyle": projectStyle(user),
		"PlanStyle":    planStyle(user),
	})
}

// projectStyle buckets the openness score into a working-style phrase.
func projectStyle(user types.TraitVector) string {
	score, measured := user.Get(types.CategoryOpenness)
	switch {
	case measured && score > 3.5:
		return "creative, open-ended projects"
	case measured && score < 2.5:
		return "systematic, well-defined exercises"
	default:
		return "a mix of structured and creative work"
	}
}

// planStyle buckets the conscientiousness score into a planning phrase.
func planStyle(user types.TraitVector) string {
	score, measured := user.Get(types.CategoryConscientiousness)
	switch {
	case measured && score > 3.5:
		return "a detailed written plan"
	case measured && score < 2.5:
		return "small, flexible steps"
	default:
		return "a light weekly plan"
	}
}
