package logging

import (
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Component creates a new logger with a component identifier.
// Uses the "cmp" key for consistency with zerolog conventions.
func Component(name string) zerolog.Logger {
	return log.With().Str("cmp", name).Logger()
}

// Elapsed records the time since start on e as whole milliseconds.
func Elapsed(e *zerolog.Event, start time.Time) *zerolog.Event {
	return e.Int64("elapsed_ms", time.Since(start).Milliseconds())
}
