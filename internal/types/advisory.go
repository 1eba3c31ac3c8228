package types

// AdvisoryCategory tags the conversational context of an advisory request.
type AdvisoryCategory string

// Advisory request categories.
const (
	CategoryCasual    AdvisoryCategory = "casual"
	CategoryCareer    AdvisoryCategory = "career"
	CategoryEducation AdvisoryCategory = "education"
	CategoryTechnical AdvisoryCategory = "technical"
)

// AdvisorySource identifies how an advisory text was produced.
type AdvisorySource string

// Advisory outcome sources.
const (
	SourceModelGenerated    AdvisorySource = "model-generated"
	SourceFallbackTemplated AdvisorySource = "fallback-templated"
)

// Topic is the keyword-lexicon classification of a user message, used to
// select a fallback template. Classification is a heuristic, not a guarantee.
type Topic string

// Fallback topics, in classification priority order.
const (
	TopicGreeting   Topic = "greeting"
	TopicCareerPath Topic = "career-path"
	TopicTechnology Topic = "technology"
	TopicProjects   Topic = "projects"
	TopicJobs       Topic = "jobs"
	TopicEducation  Topic = "education"
	TopicSkills     Topic = "skills"
	TopicGeneral    Topic = "general"
)

// AdvisoryOutcome is the final text payload of one advisory request.
// Ownership passes to the chat/UI collaborator for display and storage.
type AdvisoryOutcome struct {
	ID       string         `json:"id"`
	Text     string         `json:"text"`
	Source   AdvisorySource `json:"source"`
	Topic    Topic          `json:"topic"`
	Attempts int            `json:"attempts"`
}
