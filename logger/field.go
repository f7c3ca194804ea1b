package logger

import (
	"github.com/Philipp01105/kvlog/core"
)

// With adds key="%s" with a single value. A nil value renders as null.
func (l *Logger) With(key string, value any) *Logger {
	return l.add(core.NewField(key, "", value))
}

// Withf adds a field with its own template. The template is part of the
// format string handed to the sink and must hold one placeholder per
// value. An empty template means a single placeholder.
//
// Values reach the sink as strings, so placeholders must be %s or %v;
// numeric verbs such as %d or %.1f print as %!d(string=...).
func (l *Logger) Withf(key, template string, values ...any) *Logger {
	return l.add(core.NewField(key, template, values...))
}

// WithRef is With for a nullable key. A nil key renders as null.
func (l *Logger) WithRef(key *string, value any) *Logger {
	return l.add(core.NewFieldRef(key, "", value))
}

// WithReff is Withf for a nullable key
func (l *Logger) WithReff(key *string, template string, values ...any) *Logger {
	return l.add(core.NewFieldRef(key, template, values...))
}

// WithKey adds a field named by the key vocabulary
func (l *Logger) WithKey(key Key, value any) *Logger {
	return l.With(key.String(), value)
}

// WithKeyf is Withf for the key vocabulary
func (l *Logger) WithKeyf(key Key, template string, values ...any) *Logger {
	return l.Withf(key.String(), template, values...)
}
