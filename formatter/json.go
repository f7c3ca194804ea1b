package formatter

import (
	"io"
	"time"

	"github.com/valyala/fastjson"

	"github.com/Philipp01105/kvlog/core"
)

// JSONFormatter formats log entries as one JSON object per line
type JSONFormatter struct {
	Config
	arenas fastjson.ArenaPool
}

// NewJSONFormatter creates a new JSON formatter
func NewJSONFormatter(cfg Config) *JSONFormatter {
	if cfg.TimestampFormat == "" {
		cfg.TimestampFormat = time.RFC3339Nano
	}
	return &JSONFormatter{Config: cfg}
}

// Format formats an entry as JSON
func (f *JSONFormatter) Format(entry *core.Entry) ([]byte, error) {
	a := f.arenas.Get()
	defer f.arenas.Put(a)

	out := f.object(a, entry).MarshalTo(nil)
	return append(out, '\n'), nil
}

// FormatTo formats an entry as JSON and writes it directly to the writer
func (f *JSONFormatter) FormatTo(entry *core.Entry, w io.Writer) error {
	a := f.arenas.Get()
	buf := getBuffer()

	buf.Write(f.object(a, entry).MarshalTo(buf.AvailableBuffer()))
	buf.WriteByte('\n')
	_, err := w.Write(buf.Bytes())

	putBuffer(buf)
	f.arenas.Put(a)
	return err
}

func (f *JSONFormatter) object(a *fastjson.Arena, entry *core.Entry) *fastjson.Value {
	o := a.NewObject()
	o.Set("time", a.NewStringBytes(entry.Time.AppendFormat(nil, f.TimestampFormat)))
	o.Set("level", a.NewString(entry.Level.String()))
	if entry.Category != "" {
		o.Set("logger", a.NewString(entry.Category))
	}
	o.Set("message", a.NewString(entry.Message))

	if f.IncludeCaller && entry.Caller.Defined {
		caller := a.NewObject()
		caller.Set("file", a.NewString(entry.Caller.ShortFile))
		caller.Set("line", a.NewNumberInt(entry.Caller.Line))
		if entry.Caller.Function != "" {
			caller.Set("function", a.NewString(entry.Caller.Function))
		}
		o.Set("caller", caller)
	}

	if entry.Err != nil {
		o.Set("error", a.NewString(entry.Err.Error()))
		if cs := causes(entry.Err); len(cs) > 0 {
			arr := a.NewArray()
			for i, c := range cs {
				arr.SetArrayItem(i, a.NewString(c))
			}
			o.Set("causes", arr)
		}
	}
	return o
}
