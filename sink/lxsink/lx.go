// Package lxsink sends rendered lines to a github.com/lixenwraith/log logger.
//
// The lixenwraith logger takes alternating keys and values; each line is
// written as "msg", <line>, followed by "logger" and "error" when set.
package lxsink

import (
	"fmt"
	"time"

	"github.com/lixenwraith/log"

	"github.com/Philipp01105/kvlog/core"
	"github.com/Philipp01105/kvlog/sink"
)

const (
	// MessageKey carries the interpolated line
	MessageKey = "msg"
	// CategoryKey carries the category
	CategoryKey = "logger"
	// ErrorKey carries an attached error
	ErrorKey = "error"
)

// Logger is the part of *log.Logger the sink writes to
type Logger interface {
	Debug(args ...any)
	Info(args ...any)
	Warn(args ...any)
	Error(args ...any)
}

// Sink adapts a lixenwraith logger to sink.Sink
type Sink struct {
	logger   Logger
	category string
}

// New creates a sink writing to l
func New(l Logger) *Sink {
	return &Sink{logger: l}
}

// NewFactory returns a factory that tags every line with its category
func NewFactory(l Logger) sink.Factory {
	return sink.FactoryFunc(func(category string) sink.Sink {
		return &Sink{logger: l, category: category}
	})
}

// NewLogger creates and initializes a lixenwraith logger. args are
// key=value overrides such as "enable_stdout=true" or "disable_file=true".
func NewLogger(args ...string) (*log.Logger, error) {
	l := log.NewLogger()
	if err := l.InitWithDefaults(args...); err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	return l, nil
}

// Shutdown flushes and stops l, waiting at most timeout
func Shutdown(l *log.Logger, timeout time.Duration) error {
	return l.Shutdown(timeout)
}

// Log implements sink.Sink
func (s *Sink) Log(level core.Level, format string, args ...any) error {
	args, err := sink.SplitArgs(format, args)

	kv := make([]any, 0, 6)
	kv = append(kv, MessageKey, fmt.Sprintf(format, args...))
	if s.category != "" {
		kv = append(kv, CategoryKey, s.category)
	}
	if err != nil {
		kv = append(kv, ErrorKey, err.Error())
	}

	switch {
	case level >= core.SevereLevel:
		s.logger.Error(kv...)
	case level >= core.WarningLevel:
		s.logger.Warn(kv...)
	case level >= core.ConfigLevel:
		s.logger.Info(kv...)
	default:
		s.logger.Debug(kv...)
	}
	return nil
}
