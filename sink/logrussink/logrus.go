// Package logrussink sends rendered lines to a github.com/sirupsen/logrus logger.
package logrussink

import (
	"github.com/sirupsen/logrus"

	"github.com/Philipp01105/kvlog/core"
	"github.com/Philipp01105/kvlog/sink"
)

// CategoryKey is the logrus field that carries the category
const CategoryKey = "logger"

// Sink adapts a logrus entry to sink.Sink
type Sink struct {
	entry *logrus.Entry
}

// New creates a sink writing through l
func New(l *logrus.Logger) *Sink {
	return &Sink{entry: logrus.NewEntry(l)}
}

// NewFactory returns a factory that tags every line with its category
func NewFactory(l *logrus.Logger) sink.Factory {
	return sink.FactoryFunc(func(category string) sink.Sink {
		return &Sink{entry: l.WithField(CategoryKey, category)}
	})
}

// Level maps a kvlog level onto logrus'
func Level(level core.Level) logrus.Level {
	switch {
	case level >= core.SevereLevel:
		return logrus.ErrorLevel
	case level >= core.WarningLevel:
		return logrus.WarnLevel
	case level >= core.ConfigLevel:
		return logrus.InfoLevel
	case level == core.FineLevel:
		return logrus.DebugLevel
	default:
		return logrus.TraceLevel
	}
}

// Log implements sink.Sink. An attached error goes through WithError.
func (s *Sink) Log(level core.Level, format string, args ...any) error {
	args, err := sink.SplitArgs(format, args)

	e := s.entry
	if err != nil {
		e = e.WithError(err)
	}
	e.Logf(Level(level), format, args...)
	return nil
}
