package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oguzhan/career-compass/internal/types"
)

func writeTempJSON(t *testing.T, name string, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0644))
	return path
}

func TestRunScore_ValidInput(t *testing.T) {
	responses := types.QuestionnaireResponse{
		Questions: []types.Question{
			{ID: "q1", Category: types.CategoryOpenness},
			{ID: "q2", Category: types.CategoryOpenness, Reverse: true},
		},
		Answers: []int{4, 2},
	}

	scoreResponses = writeTempJSON(t, "responses.json", responses)
	scoreOutput = filepath.Join(t.TempDir(), "traits.json")

	err := runScore(nil, nil)
	require.NoError(t, err)

	content, err := os.ReadFile(scoreOutput)
	require.NoError(t, err)

	var traits types.TraitVector
	require.NoError(t, json.Unmarshal(content, &traits))
	assert.InDelta(t, 4.0, traits[types.CategoryOpenness], 0.001)
}

func TestRunScore_MissingResponsesFile(t *testing.T) {
	scoreResponses = "/nonexistent/responses.json"
	scoreOutput = filepath.Join(t.TempDir(), "traits.json")

	err := runScore(nil, nil)
	assert.Error(t, err)
}

func TestRunScore_MalformedResponsesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "responses.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))
	scoreResponses = path
	scoreOutput = filepath.Join(t.TempDir(), "traits.json")

	err := runScore(nil, nil)
	assert.Error(t, err)
}

func TestRunScore_MismatchedAnswersRejected(t *testing.T) {
	responses := types.QuestionnaireResponse{
		Questions: []types.Question{{ID: "q1", Category: types.CategoryOpenness}},
		Answers:   []int{4, 2},
	}

	scoreResponses = writeTempJSON(t, "responses.json", responses)
	scoreOutput = filepath.Join(t.TempDir(), "traits.json")

	err := runScore(nil, nil)
	assert.Error(t, err)
}
