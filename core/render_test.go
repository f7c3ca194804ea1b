package core

import (
	"errors"
	"reflect"
	"testing"
)

func TestRender(t *testing.T) {
	boom := errors.New("boom")

	tests := []struct {
		name       string
		fields     []Field
		err        error
		wantFormat string
		wantArgs   []any
	}{
		{
			name:       "empty",
			wantFormat: "",
			wantArgs:   []any{},
		},
		{
			name:       "single field",
			fields:     []Field{NewField("key", "", "v")},
			wantFormat: `key="%s"`,
			wantArgs:   []any{"v"},
		},
		{
			name:       "null key",
			fields:     []Field{NewFieldRef(nil, "", "v")},
			wantFormat: `null="%s"`,
			wantArgs:   []any{"v"},
		},
		{
			name:       "null value",
			fields:     []Field{NewField("key", "", nil)},
			wantFormat: `key="%s"`,
			wantArgs:   []any{"null"},
		},
		{
			name:       "empty key only",
			fields:     []Field{NewField("", "", "v")},
			wantFormat: "",
			wantArgs:   []any{},
		},
		{
			name:       "empty key dropped between fields",
			fields:     []Field{NewField("a", "", "1"), NewField("", "", "x"), NewField("b", "", "2")},
			wantFormat: `a="%s" b="%s"`,
			wantArgs:   []any{"1", "2"},
		},
		{
			name: "multi value templates",
			fields: []Field{
				NewField("message1", "arg1 %s, arg2 %s", "x", "y"),
				NewField("message2", "arg1 %s, arg2 %s", "x", "y"),
			},
			wantFormat: `message1="arg1 %s, arg2 %s" message2="arg1 %s, arg2 %s"`,
			wantArgs:   []any{"x", "y", "x", "y"},
		},
		{
			name:       "template without values",
			fields:     []Field{NewField("k", "static")},
			wantFormat: `k="static"`,
			wantArgs:   []any{},
		},
		{
			name:       "attached error is last and raw",
			fields:     []Field{NewField("exception", "", "msg")},
			err:        boom,
			wantFormat: `exception="%s"`,
			wantArgs:   []any{"msg", boom},
		},
		{
			name:       "error without fields",
			err:        boom,
			wantFormat: "",
			wantArgs:   []any{boom},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			format, args := Render(tt.fields, tt.err)
			if format != tt.wantFormat {
				t.Errorf("format = %q, want %q", format, tt.wantFormat)
			}
			if !reflect.DeepEqual(args, tt.wantArgs) {
				t.Errorf("args = %#v, want %#v", args, tt.wantArgs)
			}
		})
	}
}

func TestFields_PersistentAppend(t *testing.T) {
	var base *Fields
	base = base.Append(NewField("base", "", 1))

	left := base.Append(NewField("left", "", 2))
	right := base.Append(NewField("right", "", 3))

	if base.Len() != 1 || left.Len() != 2 || right.Len() != 2 {
		t.Fatalf("unexpected lengths: base=%d left=%d right=%d", base.Len(), left.Len(), right.Len())
	}

	leftFormat, _ := RenderChain(left, nil)
	if leftFormat != `base="%s" left="%s"` {
		t.Errorf("left = %q", leftFormat)
	}
	rightFormat, _ := RenderChain(right, nil)
	if rightFormat != `base="%s" right="%s"` {
		t.Errorf("right = %q", rightFormat)
	}
	baseFormat, _ := RenderChain(base, nil)
	if baseFormat != `base="%s"` {
		t.Errorf("base = %q", baseFormat)
	}
}

func TestFields_NilChain(t *testing.T) {
	var fs *Fields
	if fs.Len() != 0 {
		t.Errorf("Len() = %d, want 0", fs.Len())
	}
	if got := fs.Slice(); len(got) != 0 {
		t.Errorf("Slice() = %v, want empty", got)
	}
}

func BenchmarkRender(b *testing.B) {
	fields := []Field{
		NewField("message", "", "hello world"),
		NewField("service", "", "users"),
		NewField("duration", "", 0.25),
		NewField("arguments", "", []any{"a", 1, true}),
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = Render(fields, nil)
	}
}
