package types

// Question represents a single questionnaire item definition.
type Question struct {
	ID       string `json:"id,omitempty"`
	Text     string `json:"text,omitempty"`
	Category string `json:"category" validate:"required"`
	// Reverse marks an item phrased so a high raw answer indicates a low
	// trait value; the scorer remaps it before aggregation.
	Reverse bool `json:"reverse,omitempty"`
}

// QuestionnaireResponse pairs an ordered sequence of Likert answers with the
// parallel ordered sequence of question definitions they answer.
type QuestionnaireResponse struct {
	Answers   []int      `json:"answers"`
	Questions []Question `json:"questions"`
}
