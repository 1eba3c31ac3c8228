// Package logger provides zap construction and nil-safe helpers shared by
// the engine's components. Components accept a *zap.Logger and treat nil as
// a no-op logger, so library callers are never forced to configure logging.
package logger

import (
	"strings"

	"go.uber.org/zap"
)

// New builds the process logger. Verbose mode uses the human-readable
// development encoder at debug level.
func New(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// OrNop returns the given logger, or a no-op logger when nil.
func OrNop(log *zap.Logger) *zap.Logger {
	if log == nil {
		return zap.NewNop()
	}
	return log
}

// StringField describes a string-valued structured logging field.
type StringField struct {
	Key   string
	Value string
}

// StringFields converts key/value pairs into zap fields, trimming whitespace
// and omitting entries with empty keys or values.
func StringFields(fields ...StringField) []zap.Field {
	result := make([]zap.Field, 0, len(fields))
	for _, field := range fields {
		key := strings.TrimSpace(field.Key)
		if key == "" {
			continue
		}
		value := strings.TrimSpace(field.Value)
		if value == "" {
			continue
		}
		result = append(result, zap.String(key, value))
	}
	return result
}

// WithFields safely attaches the provided fields to the logger, defaulting
// to a no-op logger when nil.
func WithFields(log *zap.Logger, fields ...zap.Field) *zap.Logger {
	log = OrNop(log)
	if len(fields) == 0 {
		return log
	}
	return log.With(fields...)
}
