package advisor

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/oguzhan/career-compass/internal/adaptation"
	"github.com/oguzhan/career-compass/internal/llm"
	"github.com/oguzhan/career-compass/internal/logger"
	"github.com/oguzhan/career-compass/internal/types"
)

// defaultMaxAttempts bounds the retry loop: never more than three network
// calls per advisory request.
const defaultMaxAttempts = 3

// Request carries one advisory request from the chat collaborator.
type Request struct {
	Message  string
	FieldID  string
	Field    *types.FieldProfile // optional; used for display name in payloads and fallbacks
	User     types.TraitVector
	History  []string
	Category types.AdvisoryCategory
}

func (r Request) fieldLabel() string {
	if r.Field != nil && r.Field.Name != "" {
		return r.Field.Name
	}
	if r.FieldID != "" {
		return r.FieldID
	}
	return "your chosen field"
}

// Options configures an Orchestrator. The zero value is production-ready
// apart from the client itself.
type Options struct {
	// Backoff gates the delay between retry attempts. Nil means
	// DefaultBackoff.
	Backoff Backoff
	// Limiter optionally rate-limits outbound calls across requests.
	Limiter *rate.Limiter
	// Logger receives retry/fallback diagnostics. Nil means no logging.
	Logger *zap.Logger
	// Tier selects the model tier for advisory generation. Empty means
	// standard.
	Tier llm.ModelTier
	// MaxAttempts overrides the retry bound. Zero means the default of 3.
	MaxAttempts int
	// HistoryWindow overrides how many trailing messages enter the payload.
	// Zero means the default of 5.
	HistoryWindow int
	// Now overrides the clock used for time-of-day framing. Nil means
	// time.Now.
	Now func() time.Time
}

// Orchestrator assembles advisory payloads and executes them against the
// external language-model service with bounded retries and a deterministic
// fallback. Each call is independent; the orchestrator holds no per-request
// state and is safe for concurrent use.
type Orchestrator struct {
	client        llm.Client
	backoff       Backoff
	limiter       *rate.Limiter
	log           *zap.Logger
	tier          llm.ModelTier
	maxAttempts   int
	historyWindow int
	now           func() time.Time
}

// New creates an Orchestrator around the given client.
func New(client llm.Client, opts Options) *Orchestrator {
	backoff := opts.Backoff
	if backoff == nil {
		backoff = DefaultBackoff()
	}
	tier := opts.Tier
	if tier == "" {
		tier = llm.TierStandard
	}
	maxAttempts := opts.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = defaultMaxAttempts
	}
	historyWindow := opts.HistoryWindow
	if historyWindow <= 0 {
		historyWindow = defaultHistoryWindow
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &Orchestrator{
		client:        client,
		backoff:       backoff,
		limiter:       opts.Limiter,
		log:           logger.OrNop(opts.Logger),
		tier:          tier,
		maxAttempts:   maxAttempts,
		historyWindow: historyWindow,
		now:           now,
	}
}

// Advise produces an advisory outcome for the request. Degraded or
// unavailable external service never surfaces as an error: the fallback path
// always yields a usable outcome. The only error is invalid input.
func (o *Orchestrator) Advise(ctx context.Context, req Request) (types.AdvisoryOutcome, error) {
	if strings.TrimSpace(req.Message) == "" {
		return types.AdvisoryOutcome{}, fmt.Errorf("advisory request message is empty")
	}

	topic := classifyTopic(req.Message)
	profile := adaptation.Build(req.User, req.History, o.now())
	payload := buildPayload(req, profile, o.historyWindow)

	attempts := 0
	for attempt := 1; attempt <= o.maxAttempts; attempt++ {
		if err := o.reserve(ctx); err != nil {
			// Caller gave up while waiting for rate-limit headroom.
			break
		}

		attempts = attempt
		text, err := o.client.GenerateContent(ctx, payload, o.tier)
		if err == nil {
			return types.AdvisoryOutcome{
				ID:       uuid.NewString(),
				Text:     text,
				Source:   types.SourceModelGenerated,
				Topic:    topic,
				Attempts: attempts,
			}, nil
		}

		class := llm.Classify(err)
		o.log.Warn("advisory attempt failed",
			zap.Int("attempt", attempt),
			zap.String("class", string(class)),
			zap.Error(err))

		// Permanent failures will not self-resolve; no wasted retries.
		if !class.Transient() || attempt == o.maxAttempts {
			break
		}
		if err := sleep(ctx, o.backoff.Delay(class, attempt)); err != nil {
			break
		}
	}

	o.log.Info("advisory request degraded to fallback",
		zap.String("topic", string(topic)),
		zap.Int("attempts", attempts))

	return types.AdvisoryOutcome{
		ID:       uuid.NewString(),
		Text:     fallbackText(topic, req.fieldLabel(), req.User),
		Source:   types.SourceFallbackTemplated,
		Topic:    topic,
		Attempts: attempts,
	}, nil
}

// reserve waits for rate-limit headroom when a limiter is configured.
func (o *Orchestrator) reserve(ctx context.Context) error {
	if o.limiter == nil {
		return ctx.Err()
	}
	return o.limiter.Wait(ctx)
}
