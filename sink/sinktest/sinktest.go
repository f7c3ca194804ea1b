// Package sinktest provides sink.Sink test doubles.
//
// Recorder captures every call for later inspection; MockSink is a
// testify mock for tests that prefer expectations.
package sinktest

import (
	"fmt"
	"sync"

	"github.com/stretchr/testify/mock"

	"github.com/Philipp01105/kvlog/core"
	"github.com/Philipp01105/kvlog/sink"
)

// Call is one recorded Log invocation
type Call struct {
	Level  core.Level
	Format string
	Args   []any
}

// Message returns the interpolated line, without the attached error
func (c Call) Message() string {
	args, _ := sink.SplitArgs(c.Format, c.Args)
	return fmt.Sprintf(c.Format, args...)
}

// Err returns the attached error, if any
func (c Call) Err() error {
	_, err := sink.SplitArgs(c.Format, c.Args)
	return err
}

// Recorder is a sink.Sink that keeps every call. It is safe for
// concurrent use.
type Recorder struct {
	mu    sync.Mutex
	calls []Call
	err   error
}

// NewRecorder creates an empty recorder
func NewRecorder() *Recorder {
	return &Recorder{}
}

// FailWith makes every subsequent Log call return err
func (r *Recorder) FailWith(err error) {
	r.mu.Lock()
	r.err = err
	r.mu.Unlock()
}

// Log implements sink.Sink
func (r *Recorder) Log(level core.Level, format string, args ...any) error {
	c := Call{Level: level, Format: format, Args: append([]any(nil), args...)}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, c)
	return r.err
}

// Calls returns a copy of the recorded calls in order
func (r *Recorder) Calls() []Call {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Call(nil), r.calls...)
}

// Len returns the number of recorded calls
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.calls)
}

// Last returns the most recent call
func (r *Recorder) Last() (Call, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.calls) == 0 {
		return Call{}, false
	}
	return r.calls[len(r.calls)-1], true
}

// Reset forgets every recorded call
func (r *Recorder) Reset() {
	r.mu.Lock()
	r.calls = nil
	r.mu.Unlock()
}

// Factory hands out one Recorder per category
type Factory struct {
	mu        sync.Mutex
	recorders map[string]*Recorder
}

// NewFactory creates an empty recording factory
func NewFactory() *Factory {
	return &Factory{recorders: make(map[string]*Recorder)}
}

// Sink implements sink.Factory
func (f *Factory) Sink(category string) sink.Sink {
	return f.Recorder(category)
}

// Recorder returns the recorder for category, creating it on first use
func (f *Factory) Recorder(category string) *Recorder {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.recorders[category]
	if !ok {
		r = NewRecorder()
		f.recorders[category] = r
	}
	return r
}

// MockSink is a testify mock of sink.Sink. Expectations match the
// arguments as a single []any:
//
//	m.On("Log", core.InfoLevel, `k="%s"`, []any{"v"}).Return(nil)
type MockSink struct {
	mock.Mock
}

// Log implements sink.Sink
func (m *MockSink) Log(level core.Level, format string, args ...any) error {
	if args == nil {
		args = []any{}
	}
	ret := m.Called(level, format, args)
	return ret.Error(0)
}
