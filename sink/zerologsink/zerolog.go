// Package zerologsink sends rendered lines to a github.com/rs/zerolog logger.
package zerologsink

import (
	"github.com/rs/zerolog"

	"github.com/Philipp01105/kvlog/core"
	"github.com/Philipp01105/kvlog/sink"
)

// CategoryKey is the zerolog field that carries the category
const CategoryKey = "logger"

// Sink adapts a zerolog logger to sink.Sink
type Sink struct {
	logger zerolog.Logger
}

// New creates a sink writing to l
func New(l zerolog.Logger) *Sink {
	return &Sink{logger: l}
}

// NewFactory returns a factory that tags every line with its category
func NewFactory(l zerolog.Logger) sink.Factory {
	return sink.FactoryFunc(func(category string) sink.Sink {
		return New(l.With().Str(CategoryKey, category).Logger())
	})
}

// Level maps a kvlog level onto zerolog's
func Level(level core.Level) zerolog.Level {
	switch {
	case level >= core.SevereLevel:
		return zerolog.ErrorLevel
	case level >= core.WarningLevel:
		return zerolog.WarnLevel
	case level >= core.ConfigLevel:
		return zerolog.InfoLevel
	case level == core.FineLevel:
		return zerolog.DebugLevel
	default:
		return zerolog.TraceLevel
	}
}

// Log implements sink.Sink. An attached error is written with Err.
func (s *Sink) Log(level core.Level, format string, args ...any) error {
	args, err := sink.SplitArgs(format, args)

	ev := s.logger.WithLevel(Level(level))
	if err != nil {
		ev = ev.Err(err)
	}
	ev.Msgf(format, args...)
	return nil
}
