package sink

import "github.com/Philipp01105/kvlog/core"

// Sink receives rendered log lines. format holds one printf verb per
// argument; a trailing error argument beyond the verbs is an attached
// error and should be reported as such rather than interpolated.
type Sink interface {
	Log(level core.Level, format string, args ...any) error
}

// Factory resolves the sink for a category (a package, type or
// component name).
type Factory interface {
	Sink(category string) Sink
}

// FactoryFunc adapts a function to the Factory interface
type FactoryFunc func(category string) Sink

// Sink calls f(category)
func (f FactoryFunc) Sink(category string) Sink {
	return f(category)
}

// Nop discards everything
var Nop Sink = nopSink{}

type nopSink struct{}

func (nopSink) Log(core.Level, string, ...any) error { return nil }

// CountPlaceholders returns the number of printf verbs in format.
// "%%" is a literal percent sign and does not count.
func CountPlaceholders(format string) int {
	n := 0
	for i := 0; i < len(format); i++ {
		if format[i] != '%' {
			continue
		}
		if i+1 < len(format) && format[i+1] == '%' {
			i++
			continue
		}
		n++
	}
	return n
}

// SplitArgs separates an attached error from the interpolation
// arguments. The last argument is treated as attached only when it is
// a non-nil error and there is no placeholder left for it.
func SplitArgs(format string, args []any) ([]any, error) {
	if len(args) == 0 {
		return args, nil
	}
	err, ok := args[len(args)-1].(error)
	if !ok || err == nil || len(args) <= CountPlaceholders(format) {
		return args, nil
	}
	return args[:len(args)-1], err
}
