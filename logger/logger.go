package logger

import (
	"reflect"

	"github.com/Philipp01105/kvlog/core"
	"github.com/Philipp01105/kvlog/sink"
)

// RootCategory is the category used for a nil category and by Default
const RootCategory = "root"

// Logger is an immutable key/value line builder. Every setter returns a
// new Logger sharing the fields of its parent, so a Logger can be
// branched freely and used from many goroutines.
type Logger struct {
	sink   sink.Sink
	fields *core.Fields
	err    error
}

// New creates an empty Logger bound to the sink the current factory
// returns for category. See CategoryName for how category is named.
func New(category any) *Logger {
	return NewWithSink(CurrentFactory().Sink(CategoryName(category)))
}

// NewWithSink creates an empty Logger bound to s. A nil sink discards
// every line.
func NewWithSink(s sink.Sink) *Logger {
	return &Logger{sink: s}
}

// CategoryName resolves a category value to its name. A string is used
// as given, a reflect.Type and any other value are named after their
// type as "import/path.Type", and nil is RootCategory.
func CategoryName(category any) string {
	switch c := category.(type) {
	case nil:
		return RootCategory
	case string:
		return c
	case reflect.Type:
		return typeName(c)
	default:
		return typeName(reflect.TypeOf(c))
	}
}

func typeName(t reflect.Type) string {
	t = indirect(t)
	if t.Name() == "" || t.PkgPath() == "" {
		return t.String()
	}
	return t.PkgPath() + "." + t.Name()
}

func indirect(t reflect.Type) reflect.Type {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t
}

// Sink returns the sink lines are emitted to
func (l *Logger) Sink() sink.Sink {
	return l.sink
}

// Fields returns the accumulated fields in insertion order
func (l *Logger) Fields() []core.Field {
	return l.fields.Slice()
}

// Err returns the attached error, if any
func (l *Logger) Err() error {
	return l.err
}

// Render returns the format string and arguments Log would pass to the sink
func (l *Logger) Render() (string, []any) {
	return core.RenderChain(l.fields, l.err)
}

func (l *Logger) add(f core.Field) *Logger {
	return &Logger{sink: l.sink, fields: l.fields.Append(f), err: l.err}
}

func (l *Logger) attach(err error) *Logger {
	return &Logger{sink: l.sink, fields: l.fields, err: err}
}

// Log emits the line at level. Errors returned by the sink are passed
// through unchanged.
func (l *Logger) Log(level core.Level) error {
	return l.emit(level)
}

// emit must be called directly by every exported emission method so
// that backends skipping caller frames land on user code.
func (l *Logger) emit(level core.Level) error {
	if l.sink == nil {
		return nil
	}
	format, args := core.RenderChain(l.fields, l.err)
	return l.sink.Log(level, format, args...)
}

// Trace emits the line at TRACE (FINEST)
func (l *Logger) Trace() error {
	return l.emit(core.TraceLevel)
}

// Debug emits the line at DEBUG (FINE)
func (l *Logger) Debug() error {
	return l.emit(core.DebugLevel)
}

// Info emits the line at INFO
func (l *Logger) Info() error {
	return l.emit(core.InfoLevel)
}

// Warn emits the line at WARN (WARNING)
func (l *Logger) Warn() error {
	return l.emit(core.WarnLevel)
}

// Error emits the line at ERROR (SEVERE)
func (l *Logger) Error() error {
	return l.emit(core.ErrorLevel)
}

// All emits the line at ALL
func (l *Logger) All() error {
	return l.emit(core.AllLevel)
}

// Finest emits the line at FINEST
func (l *Logger) Finest() error {
	return l.emit(core.FinestLevel)
}

// Finer emits the line at FINER
func (l *Logger) Finer() error {
	return l.emit(core.FinerLevel)
}

// Fine emits the line at FINE
func (l *Logger) Fine() error {
	return l.emit(core.FineLevel)
}

// Config emits the line at CONFIG
func (l *Logger) Config() error {
	return l.emit(core.ConfigLevel)
}

// Warning emits the line at WARNING
func (l *Logger) Warning() error {
	return l.emit(core.WarningLevel)
}

// Severe emits the line at SEVERE
func (l *Logger) Severe() error {
	return l.emit(core.SevereLevel)
}
