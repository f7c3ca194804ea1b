// Package logger is the public API of kvlog. Most users only need to
// import this package.
//
// A Logger accumulates key/value fields and renders them to one line of
// the form key="value" key2="value2". It is immutable: With and every
// setter return a new Logger that shares the fields of its parent, so
// a base Logger can be branched per request without copying or locking.
//
//	log := logger.New(Service{})
//	req := log.Endpoint("/orders").RequestID(id)
//	req.Message("created").Success().Info()
//	req.ExceptionWithStackTrace("charge failed", err).Error()
//
// Nothing is formatted until an emission method (Info, Error, Fine, ...)
// is called. The Logger then hands a printf-style format string and
// its positional arguments to a sink.Sink, which does the interpolation:
//
//	format: endpoint="%s" message="%s" status="%s"
//	args:   [/orders created success]
//
// Keys keep only ASCII letters, digits, '_' and '.'; a field whose key
// is empty after that is dropped. Values are stringified (nil renders as
// null, slices as [a, b]) and cleaned of quotes and newlines. An error
// attached with ExceptionWithStackTrace is passed as the last raw
// argument so the backend can print it as an error.
//
// New resolves the sink from a package-level sink.Factory, by default a
// zap production logger. SetFactory swaps it for the console sink or
// the logrus, zerolog and slog adapters in the sink subpackages.
//
// Emission returns the sink's error unchanged. The builder itself never
// fails: malformed keys and values are normalized, not rejected.
package logger
