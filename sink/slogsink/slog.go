// Package slogsink connects kvlog with log/slog in both directions.
//
// Sink writes rendered lines to a *slog.Logger. Handler is a
// slog.Handler that turns slog records into key="value" lines and
// emits them through any sink.Sink, so code written against slog can
// share a kvlog backend.
package slogsink

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Philipp01105/kvlog/core"
	"github.com/Philipp01105/kvlog/sink"
)

const (
	// CategoryKey is the attribute that carries the category
	CategoryKey = "logger"
	// ErrorKey is the attribute that carries an attached error
	ErrorKey = "error"
)

// Levels below slog.LevelDebug for the finer kvlog levels
const (
	LevelFinest = slog.Level(-8)
	LevelFiner  = slog.Level(-6)
	LevelConfig = slog.Level(-2)
)

// Level maps a kvlog level onto slog's
func Level(level core.Level) slog.Level {
	switch level {
	case core.AllLevel, core.FinestLevel:
		return LevelFinest
	case core.FinerLevel:
		return LevelFiner
	case core.FineLevel:
		return slog.LevelDebug
	case core.ConfigLevel:
		return LevelConfig
	case core.InfoLevel:
		return slog.LevelInfo
	case core.WarningLevel:
		return slog.LevelWarn
	default:
		return slog.LevelError
	}
}

// CoreLevel maps a slog level onto kvlog's
func CoreLevel(level slog.Level) core.Level {
	switch {
	case level >= slog.LevelError:
		return core.SevereLevel
	case level >= slog.LevelWarn:
		return core.WarningLevel
	case level >= slog.LevelInfo:
		return core.InfoLevel
	case level >= LevelConfig:
		return core.ConfigLevel
	case level >= slog.LevelDebug:
		return core.FineLevel
	case level >= LevelFiner:
		return core.FinerLevel
	default:
		return core.FinestLevel
	}
}

// Sink adapts a *slog.Logger to sink.Sink
type Sink struct {
	logger *slog.Logger
}

// New creates a sink writing to l
func New(l *slog.Logger) *Sink {
	return &Sink{logger: l}
}

// NewFactory returns a factory that tags every line with its category
func NewFactory(l *slog.Logger) sink.Factory {
	return sink.FactoryFunc(func(category string) sink.Sink {
		return New(l.With(CategoryKey, category))
	})
}

// Log implements sink.Sink. The line is only interpolated when the
// slog handler accepts the level.
func (s *Sink) Log(level core.Level, format string, args ...any) error {
	ctx := context.Background()
	lvl := Level(level)
	if !s.logger.Enabled(ctx, lvl) {
		return nil
	}

	args, err := sink.SplitArgs(format, args)
	msg := fmt.Sprintf(format, args...)
	if err != nil {
		s.logger.LogAttrs(ctx, lvl, msg, slog.Any(ErrorKey, err))
		return nil
	}
	s.logger.LogAttrs(ctx, lvl, msg)
	return nil
}
