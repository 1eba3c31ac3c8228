package types

// CompatibilityResult holds one field's compatibility against a user's trait
// vector. Strengths and weaknesses partition the shared category set: a
// category appears in at most one of the two lists; categories within
// tolerance of the field's requirement appear in neither.
type CompatibilityResult struct {
	FieldID string `json:"field_id"`
	// Score is the 0-100 weighted similarity between the user's normalized
	// trait vector and the field's ideal vector.
	Score      float64       `json:"score"`
	Strengths  []string      `json:"strengths,omitempty"`
	Weaknesses []string      `json:"weaknesses,omitempty"`
	Notes      string        `json:"notes,omitempty"`
	Profile    *FieldProfile `json:"profile,omitempty"`
}

// RankedFields is the ordered output of a ranking request, descending by
// score with ties broken by field ID.
type RankedFields struct {
	Ranked []CompatibilityResult `json:"ranked"`
}
