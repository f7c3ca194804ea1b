// Package formatter defines how the console sink serializes entries.
//
// It exposes two interfaces: Formatter, which returns a []byte, and
// WriterFormatter, which writes directly to an io.Writer. The console
// sink checks for WriterFormatter at construction time and prefers it
// when available.
//
// TextFormatter writes "<time> [LEVEL] <category>: <message>" using a
// pooled bytes.Buffer, with optional ANSI level colors and caller
// information. JSONFormatter builds one object per line with a pooled
// fastjson arena. Both report an attached error together with every
// error it wraps, the closest Go has to a stack of causes.
//
// Buffers larger than 64 KiB are not returned to the pool to prevent
// a single large log line from permanently inflating memory usage.
package formatter
