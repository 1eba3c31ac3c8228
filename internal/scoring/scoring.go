package scoring

import (
	"fmt"
	"math"

	"github.com/oguzhan/career-compass/internal/types"
)

// Scale describes the discrete Likert scale the questionnaire uses.
type Scale struct {
	Min int
	Max int
}

// DefaultScale is the 1-5 Likert scale used by the standard questionnaire.
var DefaultScale = Scale{Min: 1, Max: 5}

// Score computes per-category trait averages from an ordered answer sequence
// and the parallel question definitions, using the default 1-5 scale.
// Reverse-scored items are remapped before accumulation. Categories with no
// observed questions are omitted from the result rather than defaulting to
// zero, distinguishing "not measured" from "measured as minimum".
func Score(answers []int, questions []types.Question) (types.TraitVector, error) {
	return ScoreWithScale(answers, questions, DefaultScale)
}

// ScoreResponse scores a bundled questionnaire response.
func ScoreResponse(resp types.QuestionnaireResponse) (types.TraitVector, error) {
	return Score(resp.Answers, resp.Questions)
}

// ScoreWithScale is Score with an explicit Likert scale.
func ScoreWithScale(answers []int, questions []types.Question, scale Scale) (types.TraitVector, error) {
	if scale.Min >= scale.Max {
		return nil, &ValidationError{Message: fmt.Sprintf("invalid scale [%d, %d]", scale.Min, scale.Max)}
	}
	if len(answers) != len(questions) {
		return nil, &ValidationError{
			Message: fmt.Sprintf("answer count %d does not match question count %d", len(answers), len(questions)),
		}
	}

	sums := make(map[string]float64)
	counts := make(map[string]int)

	for i, answer := range answers {
		if answer < scale.Min || answer > scale.Max {
			return nil, &ValidationError{
				Message: fmt.Sprintf("answer %d at position %d is outside the %d-%d scale", answer, i, scale.Min, scale.Max),
			}
		}
		question := questions[i]
		if question.Category == "" {
			return nil, &ValidationError{
				Message: fmt.Sprintf("question at position %d has no trait category", i),
			}
		}

		value := answer
		if question.Reverse {
			value = scale.Max + scale.Min - answer
		}

		sums[question.Category] += float64(value)
		counts[question.Category]++
	}

	vector := make(types.TraitVector, len(sums))
	for category, sum := range sums {
		vector[category] = roundOneDecimal(sum / float64(counts[category]))
	}

	return vector, nil
}

func roundOneDecimal(v float64) float64 {
	return math.Round(v*10) / 10
}
