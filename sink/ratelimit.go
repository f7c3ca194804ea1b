package sink

import (
	"golang.org/x/time/rate"

	"github.com/Philipp01105/kvlog/core"
)

// RateLimited forwards lines to another sink at a bounded rate. Lines
// over the limit are dropped and counted; lines at or above the bypass
// level always go through.
type RateLimited struct {
	next    Sink
	limiter *rate.Limiter
	bypass  core.Level
	stats   *Stats
}

// NewRateLimited allows perSecond lines on average with bursts of up to
// burst lines. A bypass of core.ErrorLevel keeps every error line.
func NewRateLimited(next Sink, perSecond float64, burst int, bypass core.Level) *RateLimited {
	if next == nil {
		next = Nop
	}
	return &RateLimited{
		next:    next,
		limiter: rate.NewLimiter(rate.Limit(perSecond), burst),
		bypass:  bypass,
		stats:   NewStats(),
	}
}

// Log implements Sink. A dropped line is not an error.
func (r *RateLimited) Log(level core.Level, format string, args ...any) error {
	if level < r.bypass && !r.limiter.Allow() {
		r.stats.IncrementDropped(level)
		return nil
	}
	r.stats.IncrementProcessed()
	return r.next.Log(level, format, args...)
}

// Stats returns a snapshot of forwarded and dropped lines
func (r *RateLimited) Stats() Snapshot {
	return r.stats.Snapshot()
}

// RateLimitFactory wraps every sink of f in its own limiter, so each
// category gets its own budget.
func RateLimitFactory(f Factory, perSecond float64, burst int, bypass core.Level) Factory {
	return FactoryFunc(func(category string) Sink {
		return NewRateLimited(f.Sink(category), perSecond, burst, bypass)
	})
}
