package sink

import (
	"go.uber.org/multierr"

	"github.com/Philipp01105/kvlog/core"
)

// Multi sends every line to several sinks
type Multi struct {
	sinks []Sink
}

// NewMulti creates a new multi-sink. Nil sinks are skipped.
func NewMulti(sinks ...Sink) *Multi {
	m := &Multi{sinks: make([]Sink, 0, len(sinks))}
	for _, s := range sinks {
		if s != nil {
			m.sinks = append(m.sinks, s)
		}
	}
	return m
}

// Log forwards the line to every child and combines their errors.
// Every child is called even when an earlier one fails.
func (m *Multi) Log(level core.Level, format string, args ...any) error {
	var err error
	for _, s := range m.sinks {
		err = multierr.Append(err, s.Log(level, format, args...))
	}
	return err
}

// MultiFactory resolves a category against several factories and
// fans out to all of the resulting sinks.
func MultiFactory(factories ...Factory) Factory {
	return FactoryFunc(func(category string) Sink {
		sinks := make([]Sink, 0, len(factories))
		for _, f := range factories {
			if f != nil {
				sinks = append(sinks, f.Sink(category))
			}
		}
		return NewMulti(sinks...)
	})
}
