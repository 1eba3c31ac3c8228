package types

// Period labels a time-of-day bucket used for activity framing.
type Period string

// Time-of-day periods. Bucketing: morning 06-12, afternoon 12-17,
// evening 17-21, night 21-06 (local hour).
const (
	PeriodMorning   Period = "morning"
	PeriodAfternoon Period = "afternoon"
	PeriodEvening   Period = "evening"
	PeriodNight     Period = "night"
)

// Detail-level preferences inferred from conversation history.
const (
	DetailHigh   = "high"
	DetailLow    = "low"
	DetailMedium = "medium"
)

// Learning-style preferences inferred from conversation history.
const (
	LearningPractical   = "practical"
	LearningTheoretical = "theoretical"
	LearningMixed       = "mixed"
)

// Directive is one tone/framing instruction contributed by a single trait
// dimension crossing its high or low threshold. A dimension contributes at
// most one directive per profile.
type Directive struct {
	Dimension string `json:"dimension"`
	Text      string `json:"text"`
}

// AdaptationProfile is the ephemeral adaptation layer derived from a trait
// vector, a conversation-history snippet and the current timestamp. It is a
// pure function of those inputs, recomputed on every advisory request and
// never persisted.
type AdaptationProfile struct {
	Directives       []Directive `json:"directives,omitempty"`
	Period           Period      `json:"period"`
	EnergyLevel      string      `json:"energy_level"`
	Suggestions      []string    `json:"suggestions,omitempty"`
	Weekend          bool        `json:"weekend"`
	DetailPreference string      `json:"detail_preference"`
	LearningStyle    string      `json:"learning_style"`
}
