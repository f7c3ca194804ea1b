package core

import "strings"

// Render turns fields into a format string and its positional arguments.
//
// Each valid field contributes key="template" to the format string,
// joined by single spaces in insertion order, and its cleaned string
// values to the argument list. Fields whose sanitized key is empty
// contribute nothing. A non-nil err is appended unchanged as the last
// argument.
func Render(fields []Field, err error) (string, []any) {
	var b strings.Builder
	args := make([]any, 0, len(fields)+1)

	for _, f := range fields {
		if !f.Valid() {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		f.appendFormat(&b)
		for _, v := range f.values {
			args = append(args, CleanValue(ValueString(v)))
		}
	}

	if err != nil {
		args = append(args, err)
	}
	return b.String(), args
}

// RenderChain is Render over a persistent chain.
func RenderChain(fs *Fields, err error) (string, []any) {
	return Render(fs.Slice(), err)
}
