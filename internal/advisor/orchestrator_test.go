package advisor

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

// stubClient scripts GenerateContent outcomes and records the prompts it saw.
type stubClient struct {
	script  []error // nil entry means success; exhausted script repeats last entry
	text    string
	calls   int
	prompts []string
}

func (s *stubClient) GenerateContent(_ context.Context, prompt string, _ llm.ModelTier) (string, error) {
	s.calls++
	s.prompts = append(s.prompts, prompt)
	var err error
	if len(s.script) > 0 {
		idx := s.calls - 1
		if idx >= len(s.script) {
			idx = len(s.script) - 1
		}
		err = s.script[idx]
	}
	if err != nil {
		return "", err
	}
	if s.text == "" {
		return "generated advice", nil
	}
	return s.text, nil
}

func (s *stubClient) GetModel(llm.ModelTier) string { return "stub-model" }
func (s *stubClient) Close() error                  { return nil }

var (
	errRateLimited = errors.New("googleapi: Error 429: rate limit exceeded")
	errUnavailable = errors.New("googleapi: Error 503: service unavailable")
	errPermanent   = errors.New("googleapi: Error 400: invalid request")
)

func testRequest() Request {
	return Request{
		Message:  "Which career path should I follow?",
		FieldID:  "data-science",
		Field:    &types.FieldProfile{ID: "data-science", Name: "Data Science"},
		User:     types.TraitVector{types.CategoryOpenness: 4.0},
		Category: types.CategoryCareer,
	}
}

func TestAdvise_SuccessFirstAttempt(t *testing.T) {
	client := &stubClient{}
	orchestrator := New(client, Options{Backoff: NoDelay{}})

	outcome, err := orchestrator.Advise(context.Background(), testRequest())

	require.NoError(t, err)
	assert.Equal(t, types.SourceModelGenerated, outcome.Source)
	assert.Equal(t, "generated advice", outcome.Text)
	assert.Equal(t, 1, outcome.Attempts)
	assert.Equal(t, 1, client.calls)
	assert.NotEmpty(t, outcome.ID)
}

func TestAdvise_RetryBoundExactlyThreeAttempts(t *testing.T) {
	client := &stubClient{script: []error{errRateLimited}}
	orchestrator := New(client, Options{Backoff: NoDelay{}})

	outcome, err := orchestrator.Advise(context.Background(), testRequest())

	require.NoError(t, err)
	assert.Equal(t, 3, client.calls)
	assert.Equal(t, types.SourceFallbackTemplated, outcome.Source)
	assert.NotEmpty(t, outcome.Text)
}

func TestAdvise_TransientThenSuccess(t *testing.T) {
	client := &stubClient{script: []error{errUnavailable, nil}}
	orchestrator := New(client, Options{Backoff: NoDelay{}})

	outcome, err := orchestrator.Advise(context.Background(), testRequest())

	require.NoError(t, err)
	assert.Equal(t, types.SourceModelGenerated, outcome.Source)
	assert.Equal(t, 2, outcome.Attempts)
	assert.Equal(t, 2, client.calls)
}

func TestAdvise_PermanentFailureNotRetried(t *testing.T) {
	client := &stubClient{script: []error{errPermanent}}
	orchestrator := New(client, Options{Backoff: NoDelay{}})

	outcome, err := orchestrator.Advise(context.Background(), testRequest())

	require.NoError(t, err)
	assert.Equal(t, 1, client.calls)
	assert.Equal(t, types.SourceFallbackTemplated, outcome.Source)
	assert.NotEmpty(t, outcome.Text)
}

func TestAdvise_FallbackAlwaysAvailable(t *testing.T) {
	client := &stubClient{script: []error{errPermanent}}
	orchestrator := New(client, Options{Backoff: NoDelay{}})

	req := testRequest()
	req.Message = "merhaba"

	outcome, err := orchestrator.Advise(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, types.SourceFallbackTemplated, outcome.Source)
	assert.Equal(t, types.TopicGreeting, outcome.Topic)
	assert.NotEmpty(t, outcome.Text)
	assert.Contains(t, outcome.Text, "Data Science")
}

func TestAdvise_EmptyMessageRejected(t *testing.T) {
	orchestrator := New(&stubClient{}, Options{Backoff: NoDelay{}})

	req := testRequest()
	req.Message = "   "

	_, err := orchestrator.Advise(context.Background(), req)

	assert.Error(t, err)
}

func TestAdvise_CancellationDuringBackoffStopsRetrying(t *testing.T) {
	client := &stubClient{script: []error{errUnavailable}}
	orchestrator := New(client, Options{
		Backoff: ProportionalBackoff{RateLimitBase: time.Second, UnavailableBase: time.Second},
	})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	outcome, err := orchestrator.Advise(ctx, testRequest())

	require.NoError(t, err)
	assert.Equal(t, 1, client.calls)
	assert.Equal(t, types.SourceFallbackTemplated, outcome.Source)
	assert.NotEmpty(t, outcome.Text)
}

func TestAdvise_PayloadContents(t *testing.T) {
	client := &stubClient{}
	orchestrator := New(client, Options{Backoff: NoDelay{}})

	req := testRequest()
	req.History = []string{"one", "two", "three", "four", "five", "six", "seven"}
	req.Category = types.CategoryTechnical

	_, err := orchestrator.Advise(context.Background(), req)

	require.NoError(t, err)
	require.Len(t, client.prompts, 1)
	prompt := client.prompts[0]
	assert.Contains(t, prompt, "Selected field: Data Science")
	assert.Contains(t, prompt, "- openness: 4.0/5")
	assert.Contains(t, prompt, req.Message)
	// History window keeps only the trailing five messages.
	assert.Contains(t, prompt, "- seven")
	assert.Contains(t, prompt, "- three")
	assert.NotContains(t, prompt, "- two\n")
	assert.NotContains(t, prompt, "- one\n")
	// Technical preamble, not the career one.
	assert.Contains(t, prompt, "senior practitioner")
}

func TestAdvise_PayloadIncludesDirectives(t *testing.T) {
	client := &stubClient{}
	orchestrator := New(client, Options{Backoff: NoDelay{}})

	req := testRequest()
	req.User = types.TraitVector{types.CategoryExtraversion: 4.8}

	_, err := orchestrator.Advise(context.Background(), req)

	require.NoError(t, err)
	assert.Contains(t, client.prompts[0], "collaboration")
}

func TestAdvise_TimeOfDayUsesInjectedClock(t *testing.T) {
	client := &stubClient{}
	night := time.Date(2026, 1, 5, 23, 0, 0, 0, time.UTC)
	orchestrator := New(client, Options{
		Backoff: NoDelay{},
		Now:     func() time.Time { return night },
	})

	_, err := orchestrator.Advise(context.Background(), testRequest())

	require.NoError(t, err)
	assert.Contains(t, client.prompts[0], "night")
}

func TestAdvise_ModelOutcomeStillTaggedWithTopic(t *testing.T) {
	client := &stubClient{}
	orchestrator := New(client, Options{Backoff: NoDelay{}})

	req := testRequest()
	req.Message = "what projects should I build for my portfolio"

	outcome, err := orchestrator.Advise(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, types.SourceModelGenerated, outcome.Source)
	assert.Equal(t, types.TopicProjects, outcome.Topic)
}

func TestProportionalBackoff_ClassAndAttemptOrdering(t *testing.T) {
	backoff := DefaultBackoff()

	rateFirst := backoff.Delay(llm.ClassRateLimited, 1)
	rateSecond := backoff.Delay(llm.ClassRateLimited, 2)
	unavailableFirst := backoff.Delay(llm.ClassUnavailable, 1)

	assert.Greater(t, rateSecond, rateFirst)
	assert.Greater(t, unavailableFirst, rateFirst)
}
