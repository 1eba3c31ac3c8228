// Package scoring converts questionnaire responses into averaged trait vectors.
package scoring

import "fmt"

// ValidationError represents malformed questionnaire input. It is fatal to
// the scoring call; the caller must not proceed to ranking with a partial
// vector.
type ValidationError struct {
	Message string
	Cause   error
}

func (e *ValidationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("questionnaire validation error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("questionnaire validation error: %s", e.Message)
}

func (e *ValidationError) Unwrap() error {
	return e.Cause
}
