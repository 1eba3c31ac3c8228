// Package advisor assembles advisory requests, invokes the external
// language-model service under a bounded retry policy, and guarantees a
// usable response via deterministic templated fallbacks.
package advisor

import (
	"context"
	"time"

	"github.com/oguzhan/career-compass/internal/llm"
)

// Backoff decides how long to wait before retrying a transient failure.
// It is caller-supplied so tests can inject zero-delay policies instead of
// sleeping real wall-clock time.
type Backoff interface {
	// Delay returns the wait before retry number attempt+1, given the
	// failure class of attempt (1-based).
	Delay(class llm.ErrorClass, attempt int) time.Duration
}

// ProportionalBackoff scales a per-class base delay by the attempt number.
// Service-unavailable failures get a longer base than rate limits,
// reflecting their longer expected recovery time.
type ProportionalBackoff struct {
	RateLimitBase   time.Duration
	UnavailableBase time.Duration
}

// DefaultBackoff returns the production backoff policy.
func DefaultBackoff() ProportionalBackoff {
	return ProportionalBackoff{
		RateLimitBase:   time.Second,
		UnavailableBase: 3 * time.Second,
	}
}

// Delay implements Backoff.
func (b ProportionalBackoff) Delay(class llm.ErrorClass, attempt int) time.Duration {
	if attempt < 1 {
		attempt = 1
	}
	base := b.RateLimitBase
	if class == llm.ClassUnavailable {
		base = b.UnavailableBase
	}
	return time.Duration(attempt) * base
}

// NoDelay is a Backoff that never waits. Intended for tests.
type NoDelay struct{}

// Delay implements Backoff.
func (NoDelay) Delay(llm.ErrorClass, int) time.Duration { return 0 }

// sleep blocks for the given delay, returning early with the context's error
// if it is cancelled first.
func sleep(ctx context.Context, delay time.Duration) error {
	if delay <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
