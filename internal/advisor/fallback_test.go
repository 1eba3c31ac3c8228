package advisor

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/oguzhan/career-compass/internal/types"
)

func TestClassifyTopic_LexiconHits(t *testing.T) {
	cases := map[string]types.Topic{
		"merhaba":                                 types.TopicGreeting,
		"Hello there":                             types.TopicGreeting,
		"selam, nasılsın":                         types.TopicGreeting,
		"which career path suits me":              types.TopicCareerPath,
		"what framework should I use":             types.TopicTechnology,
		"ideas for a side project":                types.TopicProjects,
		"how do I prepare for an interview":       types.TopicJobs,
		"is a university degree worth it":         types.TopicEducation,
		"how can I improve my weakest skill":      types.TopicSkills,
		"tell me something interesting":           types.TopicGeneral,
		"":                                        types.TopicGeneral,
	}

	for message, expected := range cases {
		assert.Equal(t, expected, classifyTopic(message), "message: %q", message)
	}
}

func TestClassifyTopic_PriorityOrder(t *testing.T) {
	// "career" outranks "course" because career-path is evaluated first.
	assert.Equal(t, types.TopicCareerPath, classifyTopic("which course fits my career"))
	// Greeting outranks everything.
	assert.Equal(t, types.TopicGreeting, classifyTopic("hello, what job should I get"))
}

func TestClassifyTopic_CaseInsensitive(t *testing.T) {
	assert.Equal(t, types.TopicJobs, classifyTopic("HOW DO I GET A JOB"))
}

func TestClassifyTopic_WholeWordMatchingOnly(t *testing.T) {
	// Keywords must not fire inside unrelated words.
	assert.Equal(t, types.TopicGeneral, classifyTopic("empathy matters a lot"))
	assert.Equal(t, types.TopicGeneral, classifyTopic("sushi time"))
	assert.Equal(t, types.TopicGeneral, classifyTopic("I feel sympathy for them"))

	// Plural forms still classify.
	assert.Equal(t, types.TopicJobs, classifyTopic("any good jobs out there"))
	assert.Equal(t, types.TopicProjects, classifyTopic("show me projects to try"))
}

func TestFallbackText_AllTopicsResolve(t *testing.T) {
	topics := []types.Topic{
		types.TopicGreeting, types.TopicCareerPath, types.TopicTechnology,
		types.TopicProjects, types.TopicJobs, types.TopicEducation,
		types.TopicSkills, types.TopicGeneral,
	}
	user := types.TraitVector{types.CategoryOpenness: 3.0}

	for _, topic := range topics {
		text := fallbackText(topic, "Software Engineering", user)
		assert.NotEmpty(t, text, "topic %s", topic)
		assert.NotContains(t, text, "{{.", "topic %s left unresolved placeholders", topic)
	}
}

func TestFallbackText_OpennessBuckets(t *testing.T) {
	creative := fallbackText(types.TopicProjects, "UX Design",
		types.TraitVector{types.CategoryOpenness: 4.5})
	systematic := fallbackText(types.TopicProjects, "UX Design",
		types.TraitVector{types.CategoryOpenness: 1.5})

	assert.Contains(t, creative, "creative")
	assert.Contains(t, systematic, "systematic")
	assert.NotEqual(t, creative, systematic)
}

func TestFallbackText_ConscientiousnessBuckets(t *testing.T) {
	detailed := fallbackText(types.TopicEducation, "Data Science",
		types.TraitVector{types.CategoryConscientiousness: 4.5})
	flexible := fallbackText(types.TopicEducation, "Data Science",
		types.TraitVector{types.CategoryConscientiousness: 1.5})

	assert.Contains(t, detailed, "detailed written plan")
	assert.Contains(t, flexible, "flexible steps")
}

func TestFallbackText_UnmeasuredTraitsUseNeutralBuckets(t *testing.T) {
	text := fallbackText(types.TopicCareerPath, "Teaching", types.TraitVector{})

	assert.Contains(t, text, "a mix of structured and creative work")
	assert.Contains(t, text, "a light weekly plan")
}

func TestFallbackText_Deterministic(t *testing.T) {
	user := types.TraitVector{types.CategoryOpenness: 4.0}

	first := fallbackText(types.TopicGeneral, "Finance & Accounting", user)
	second := fallbackText(types.TopicGeneral, "Finance & Accounting", user)

	assert.Equal(t, first, second)
}
