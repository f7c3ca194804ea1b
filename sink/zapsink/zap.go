// Package zapsink sends rendered lines to a go.uber.org/zap logger.
//
// zap has no trace or config level; finer levels are written at Debug
// and CONFIG at Info. An attached error is added as a zap.Error field.
package zapsink

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Philipp01105/kvlog/core"
	"github.com/Philipp01105/kvlog/sink"
)

// Sink adapts a zap logger to sink.Sink
type Sink struct {
	logger *zap.Logger
}

// New creates a sink writing to l. zap's caller is resolved per line to
// the first frame outside kvlog, however many sinks wrap this one.
func New(l *zap.Logger) *Sink {
	return &Sink{logger: l}
}

// NewFactory returns a factory that names a child of l per category
func NewFactory(l *zap.Logger) sink.Factory {
	return sink.FactoryFunc(func(category string) sink.Sink {
		return New(l.Named(category))
	})
}

// Level maps a kvlog level onto zap's
func Level(level core.Level) zapcore.Level {
	switch {
	case level >= core.SevereLevel:
		return zapcore.ErrorLevel
	case level >= core.WarningLevel:
		return zapcore.WarnLevel
	case level >= core.ConfigLevel:
		return zapcore.InfoLevel
	default:
		return zapcore.DebugLevel
	}
}

// Log implements sink.Sink
func (s *Sink) Log(level core.Level, format string, args ...any) error {
	zl := Level(level)
	if !s.logger.Core().Enabled(zl) {
		return nil
	}
	args, err := sink.SplitArgs(format, args)

	var fields []zap.Field
	if err != nil {
		fields = append(fields, zap.Error(err))
	}

	log := s.logger.WithOptions(zap.AddCallerSkip(core.UserCallerDepth()))
	if ce := log.Check(zl, fmt.Sprintf(format, args...)); ce != nil {
		ce.Write(fields...)
	}
	return nil
}

// Sync flushes buffered entries
func (s *Sink) Sync() error {
	return s.logger.Sync()
}
