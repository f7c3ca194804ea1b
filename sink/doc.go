// Package sink defines where rendered log lines go.
//
// A Sink receives a printf-style format string and its positional
// arguments and is responsible for substitution and delivery. The
// logger package never configures a sink; it only calls Log once per
// emitted line. A Factory resolves the sink for a category and is
// what logger.New uses.
//
// By convention the last argument may be an attached error that has
// no placeholder of its own. SplitArgs separates it so that backends
// can report it as an error (with whatever stack or cause output they
// offer) instead of interpolating it.
//
// Built-in sinks:
//
//   - Console writes formatted lines to any io.Writer (default:
//     stdout), synchronously or through a bounded queue drained by a
//     background goroutine. When the queue is full a per-level
//     OverflowPolicy applies: DropNewest (default below ERROR),
//     DropOldest, or Block with a timeout (default for ERROR).
//   - Multi fans out to several sinks and combines their errors.
//   - RateLimited forwards a bounded number of lines per second and
//     counts the rest as dropped.
//
// Adapters for zap, logrus, zerolog, log/slog and lixenwraith/log live
// in the zapsink, logrussink, zerologsink, slogsink and lxsink
// subpackages, and test doubles in sinktest.
package sink
