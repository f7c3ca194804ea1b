package formatter

import (
	"bytes"
	"io"
	"strconv"

	"github.com/Philipp01105/kvlog/core"
)

// TextFormatter formats log entries as human-readable text:
//
//	2026-10-18 08:07:26.123 [INFO] app.Service: message="Hello World"
//
// An attached error follows on its own line together with every
// error it wraps.
type TextFormatter struct {
	Config
}

// NewTextFormatter creates a new text formatter
func NewTextFormatter(cfg Config) *TextFormatter {
	if cfg.TimestampFormat == "" {
		cfg.TimestampFormat = "2006-01-02 15:04:05.000"
	}
	return &TextFormatter{Config: cfg}
}

// Format formats an entry as text
func (f *TextFormatter) Format(entry *core.Entry) ([]byte, error) {
	buf := getBuffer()
	defer putBuffer(buf)

	f.formatToBuffer(entry, buf)

	result := make([]byte, buf.Len())
	copy(result, buf.Bytes())
	return result, nil
}

// FormatTo formats an entry and writes it directly to the writer
func (f *TextFormatter) FormatTo(entry *core.Entry, w io.Writer) error {
	buf := getBuffer()
	f.formatToBuffer(entry, buf)
	_, err := w.Write(buf.Bytes())
	putBuffer(buf)
	return err
}

const colorReset = "\x1b[0m"

var levelColors = [...]string{
	core.AllLevel:     "\x1b[90m",
	core.FinestLevel:  "\x1b[90m",
	core.FinerLevel:   "\x1b[90m",
	core.FineLevel:    "\x1b[36m",
	core.ConfigLevel:  "\x1b[34m",
	core.InfoLevel:    "\x1b[32m",
	core.WarningLevel: "\x1b[33m",
	core.SevereLevel:  "\x1b[31m",
}

// formatToBuffer writes the formatted entry into the given buffer
func (f *TextFormatter) formatToBuffer(entry *core.Entry, buf *bytes.Buffer) {
	buf.Write(entry.Time.AppendFormat(buf.AvailableBuffer(), f.TimestampFormat))

	buf.WriteString(" [")
	colored := f.Color && entry.Level >= 0 && int(entry.Level) < len(levelColors)
	if colored {
		buf.WriteString(levelColors[entry.Level])
	}
	buf.WriteString(entry.Level.String())
	if colored {
		buf.WriteString(colorReset)
	}
	buf.WriteString("] ")

	if f.IncludeCaller && entry.Caller.Defined {
		buf.WriteByte('[')
		buf.WriteString(entry.Caller.ShortFile)
		buf.WriteByte(':')
		buf.WriteString(strconv.Itoa(entry.Caller.Line))
		buf.WriteString("] ")
	}

	if entry.Category != "" {
		buf.WriteString(entry.Category)
		buf.WriteString(": ")
	}

	buf.WriteString(entry.Message)

	if entry.Err != nil {
		buf.WriteString("\n\terror: ")
		buf.WriteString(entry.Err.Error())
		for _, cause := range causes(entry.Err) {
			buf.WriteString("\n\tcaused by: ")
			buf.WriteString(cause)
		}
	}

	buf.WriteByte('\n')
}
