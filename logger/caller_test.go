package logger

import (
	"bytes"
	"regexp"
	"testing"

	"github.com/Philipp01105/kvlog/core"
	"github.com/Philipp01105/kvlog/sink"
)

func TestLogger_CallerThroughSinks(t *testing.T) {
	tests := []struct {
		name string
		wrap func(sink.Sink) sink.Sink
	}{
		{"console", func(s sink.Sink) sink.Sink { return s }},
		{"multi", func(s sink.Sink) sink.Sink { return sink.NewMulti(s) }},
		{"rate limited", func(s sink.Sink) sink.Sink { return sink.NewRateLimited(s, 100, 10, core.ErrorLevel) }},
	}
	want := regexp.MustCompile(`\[caller_test\.go:\d+\] app: k="v"`)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			c := sink.NewConsole(sink.ConsoleConfig{Writer: &buf, IncludeCaller: true, Color: sink.ColorNever})
			defer c.Close()

			if err := NewWithSink(tt.wrap(c.Named("app"))).With("k", "v").Info(); err != nil {
				t.Fatalf("Info() error = %v", err)
			}

			if !want.MatchString(buf.String()) {
				t.Errorf("Expected this file as caller, got: %s", buf.String())
			}
		})
	}
}
