package guidance

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oguzhan/career-compass/internal/llm"
	"github.com/oguzhan/career-compass/internal/types"
)

type fakeClient struct {
	err     error
	prompts []string
}

func (f *fakeClient) GenerateContent(_ context.Context, prompt string, _ llm.ModelTier) (string, error) {
	f.prompts = append(f.prompts, prompt)
	if f.err != nil {
		return "", f.err
	}
	return "model advice", nil
}

func (f *fakeClient) GetModel(llm.ModelTier) string { return "fake-model" }
func (f *fakeClient) Close() error                  { return nil }

func sampleTraits() types.TraitVector {
	return types.TraitVector{
		types.CategoryOpenness:          4.0,
		types.CategoryConscientiousness: 3.5,
		types.CategoryExtraversion:      2.0,
		types.CategoryAgreeableness:     3.0,
		types.CategoryNeuroticism:       2.5,
	}
}

func TestRun_TraitsOnlyProducesRankingAndAdaptation(t *testing.T) {
	result, err := Run(context.Background(), RunOptions{Traits: sampleTraits()})

	require.NoError(t, err)
	assert.NotEmpty(t, result.RunID)
	assert.NotEmpty(t, result.Ranked.Ranked)
	assert.NotEmpty(t, result.Adaptation.Period)
	assert.Nil(t, result.Outcome)
}

func TestRun_ScoresQuestionnaireResponses(t *testing.T) {
	responses := &types.QuestionnaireResponse{
		Questions: []types.Question{
			{ID: "q1", Category: types.CategoryOpenness},
			{ID: "q2", Category: types.CategoryConscientiousness},
		},
		Answers: []int{4, 2},
	}

	result, err := Run(context.Background(), RunOptions{Responses: responses})

	require.NoError(t, err)
	assert.InDelta(t, 4.0, result.Traits[types.CategoryOpenness], 0.001)
	assert.InDelta(t, 2.0, result.Traits[types.CategoryConscientiousness], 0.001)
}

func TestRun_ResponsesAndTraitsMutuallyExclusive(t *testing.T) {
	responses := &types.QuestionnaireResponse{
		Questions: []types.Question{{ID: "q1", Category: types.CategoryOpenness}},
		Answers:   []int{3},
	}

	_, err := Run(context.Background(), RunOptions{
		Responses: responses,
		Traits:    sampleTraits(),
	})

	assert.Error(t, err)
}

func TestRun_MissingInputRejected(t *testing.T) {
	_, err := Run(context.Background(), RunOptions{})

	assert.Error(t, err)
}

func TestRun_RankingIsDescending(t *testing.T) {
	result, err := Run(context.Background(), RunOptions{Traits: sampleTraits()})

	require.NoError(t, err)
	ranked := result.Ranked.Ranked
	for i := 1; i < len(ranked); i++ {
		assert.GreaterOrEqual(t, ranked[i-1].Score, ranked[i].Score)
	}
}

func TestRun_TopNLimitsRanking(t *testing.T) {
	result, err := Run(context.Background(), RunOptions{Traits: sampleTraits(), TopN: 3})

	require.NoError(t, err)
	assert.Len(t, result.Ranked.Ranked, 3)
}

func TestRun_AdvisoryUsesTopRankedField(t *testing.T) {
	client := &fakeClient{}

	result, err := Run(context.Background(), RunOptions{
		Traits:  sampleTraits(),
		Message: "which technologies should I learn",
		Client:  client,
	})

	require.NoError(t, err)
	require.NotNil(t, result.Outcome)
	assert.Equal(t, types.SourceModelGenerated, result.Outcome.Source)
	require.Len(t, client.prompts, 1)

	top := result.Ranked.Ranked[0]
	require.NotNil(t, top.Profile)
	assert.Contains(t, client.prompts[0], top.Profile.Name)
}

func TestRun_AdvisoryWithPinnedField(t *testing.T) {
	client := &fakeClient{}

	result, err := Run(context.Background(), RunOptions{
		Traits:  sampleTraits(),
		Message: "what should I study",
		FieldID: "teaching",
		Client:  client,
	})

	require.NoError(t, err)
	require.NotNil(t, result.Outcome)
	assert.Contains(t, client.prompts[0], "Teaching")
}

func TestRun_UnknownFieldIDRejected(t *testing.T) {
	_, err := Run(context.Background(), RunOptions{
		Traits:  sampleTraits(),
		Message: "hello",
		FieldID: "astronaut",
		Client:  &fakeClient{},
	})

	assert.Error(t, err)
}

func TestRun_AdvisoryWithoutClientRejected(t *testing.T) {
	_, err := Run(context.Background(), RunOptions{
		Traits:  sampleTraits(),
		Message: "hello",
	})

	assert.Error(t, err)
}

func TestRun_ModelFailureDegradesToFallback(t *testing.T) {
	client := &fakeClient{err: errors.New("googleapi: Error 400: bad request")}

	result, err := Run(context.Background(), RunOptions{
		Traits:  sampleTraits(),
		Message: "merhaba",
		Client:  client,
	})

	require.NoError(t, err)
	require.NotNil(t, result.Outcome)
	assert.Equal(t, types.SourceFallbackTemplated, result.Outcome.Source)
	assert.Equal(t, types.TopicGreeting, result.Outcome.Topic)
}

func TestRun_MaxAttemptsBoundsRetries(t *testing.T) {
	client := &fakeClient{err: errors.New("googleapi: Error 503: service unavailable")}

	result, err := Run(context.Background(), RunOptions{
		Traits:      sampleTraits(),
		Message:     "hello",
		Client:      client,
		MaxAttempts: 1,
	})

	require.NoError(t, err)
	assert.Len(t, client.prompts, 1)
	assert.Equal(t, types.SourceFallbackTemplated, result.Outcome.Source)
	assert.Equal(t, 1, result.Outcome.Attempts)
}

func TestRun_HistoryWindowBoundsPayload(t *testing.T) {
	client := &fakeClient{}

	_, err := Run(context.Background(), RunOptions{
		Traits:        sampleTraits(),
		Message:       "what should I study",
		History:       []string{"first message", "second message", "third message"},
		Client:        client,
		HistoryWindow: 2,
	})

	require.NoError(t, err)
	require.Len(t, client.prompts, 1)
	assert.Contains(t, client.prompts[0], "- second message")
	assert.Contains(t, client.prompts[0], "- third message")
	assert.NotContains(t, client.prompts[0], "- first message")
}

func TestRun_ProgressEventsEmittedInOrder(t *testing.T) {
	var steps []string

	_, err := Run(context.Background(), RunOptions{
		Traits:  sampleTraits(),
		Message: "hello",
		Client:  &fakeClient{},
		OnProgress: func(event ProgressEvent) {
			steps = append(steps, event.Step)
			assert.NotEmpty(t, event.RunID)
		},
	})

	require.NoError(t, err)
	assert.Equal(t, []string{StepTraitVector, StepRankedList, StepAdaptation, StepAdvisory}, steps)
}

func TestRun_InjectedClockReachesAdaptation(t *testing.T) {
	evening := time.Date(2026, 1, 5, 19, 0, 0, 0, time.UTC)

	result, err := Run(context.Background(), RunOptions{
		Traits: sampleTraits(),
		Now:    func() time.Time { return evening },
	})

	require.NoError(t, err)
	assert.Equal(t, types.PeriodEvening, result.Adaptation.Period)
}

func TestRun_MissingCatalogFileFails(t *testing.T) {
	_, err := Run(context.Background(), RunOptions{
		Traits:      sampleTraits(),
		CatalogPath: "/nonexistent/catalog.json",
	})

	assert.Error(t, err)
}
