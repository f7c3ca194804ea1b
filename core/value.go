package core

import (
	"fmt"
	"reflect"
	"strings"
)

var valueCleaner = strings.NewReplacer(`'`, "", `"`, "", "\n", " ")

// CleanValue removes single and double quotes, turns newlines into
// spaces and trims surrounding whitespace.
func CleanValue(s string) string {
	return strings.TrimSpace(valueCleaner.Replace(s))
}

// ValueString converts an arbitrary value to its rendered string form.
//
//   - nil, and nil pointers, maps, slices, funcs, chans and interfaces: "null"
//   - error and fmt.Stringer: their own string form
//   - slices and arrays: "[e1, e2, ...]", each element converted recursively
//   - everything else: fmt.Sprint
func ValueString(v any) string {
	switch t := v.(type) {
	case nil:
		return NullString
	case string:
		return t
	case error:
		if isNil(reflect.ValueOf(t)) {
			return NullString
		}
		return t.Error()
	case fmt.Stringer:
		if isNil(reflect.ValueOf(t)) {
			return NullString
		}
		return t.String()
	}

	rv := reflect.ValueOf(v)
	if isNil(rv) {
		return NullString
	}
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return sequenceString(rv)
	default:
		return fmt.Sprint(v)
	}
}

func sequenceString(rv reflect.Value) string {
	var b strings.Builder
	b.WriteByte('[')
	for i := 0; i < rv.Len(); i++ {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(ValueString(rv.Index(i).Interface()))
	}
	b.WriteByte(']')
	return b.String()
}

func isNil(rv reflect.Value) bool {
	switch rv.Kind() {
	case reflect.Invalid:
		return true
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}
