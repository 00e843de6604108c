// Package logging builds the zerolog logger used for diagnostics.
// Diagnostics never go to stdout, which carries only the report.
package logging

import (
	"context"
	"io"

	"github.com/rs/zerolog"
)

// New returns a timestamped logger writing to w at the given level.
// An unparsable or empty level falls back to info.
func New(w io.Writer, level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(w).With().Timestamp().Logger().Level(lvl)
}

// WithLogger returns a context carrying l with extra fields attached.
func WithLogger(ctx context.Context, l zerolog.Logger, fields map[string]interface{}) context.Context {
	return l.With().Fields(fields).Logger().WithContext(ctx)
}

// FromContext returns the logger stored in ctx, or a disabled logger.
func FromContext(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}
