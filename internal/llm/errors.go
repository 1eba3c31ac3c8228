package llm

import "strings"

// ErrorClass buckets a provider failure for the orchestrator's retry policy.
type ErrorClass string

const (
	// ClassRateLimited covers quota and rate-limit rejections (429). These
	// recover quickly; short backoff.
	ClassRateLimited ErrorClass = "rate-limited"
	// ClassUnavailable covers server and network failures (5xx, timeouts).
	// These take longer to recover; longer backoff.
	ClassUnavailable ErrorClass = "unavailable"
	// ClassPermanent covers failures that will not self-resolve (malformed
	// request, authorization). Never retried.
	ClassPermanent ErrorClass = "permanent"
)

// Transient reports whether the class is worth retrying.
func (c ErrorClass) Transient() bool {
	return c == ClassRateLimited || c == ClassUnavailable
}

// Classify buckets a provider error by status-code and message inspection.
// Unknown errors classify permanent so they are never retried blindly.
func Classify(err error) ErrorClass {
	if err == nil {
		return ClassPermanent
	}
	msg := strings.ToLower(err.Error())

	switch {
	case strings.Contains(msg, "429"),
		strings.Contains(msg, "rate limit"),
		strings.Contains(msg, "quota"),
		strings.Contains(msg, "resource exhausted"):
		return ClassRateLimited
	case strings.Contains(msg, "500"),
		strings.Contains(msg, "internal server error"),
		strings.Contains(msg, "502"),
		strings.Contains(msg, "bad gateway"),
		strings.Contains(msg, "503"),
		strings.Contains(msg, "service unavailable"),
		strings.Contains(msg, "504"),
		strings.Contains(msg, "gateway timeout"),
		strings.Contains(msg, "deadline exceeded"),
		strings.Contains(msg, "timeout"),
		strings.Contains(msg, "connection refused"),
		strings.Contains(msg, "connection reset"),
		strings.Contains(msg, "broken pipe"):
		return ClassUnavailable
	default:
		return ClassPermanent
	}
}
