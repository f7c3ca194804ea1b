package core

import "strings"

const (
	// NullString is how a missing key or value is rendered
	NullString = "null"
	// DefaultTemplate is the single placeholder a field uses when
	// no explicit template was given
	DefaultTemplate = "%s"
)

// Field is a single key/value(s) record. It is immutable once built.
type Field struct {
	key      string
	nullKey  bool
	template string
	values   []any
}

// NewField creates a field rendered as key="<template>" with the given values.
// An empty template selects DefaultTemplate.
func NewField(key, template string, values ...any) Field {
	if template == "" {
		template = DefaultTemplate
	}
	return Field{key: key, template: template, values: values}
}

// NewFieldRef is NewField for nullable keys. A nil key renders as "null".
func NewFieldRef(key *string, template string, values ...any) Field {
	if key == nil {
		f := NewField(NullString, template, values...)
		f.nullKey = true
		return f
	}
	return NewField(*key, template, values...)
}

// Key returns the sanitized key. Only ASCII letters, digits, '_' and
// '.' survive.
func (f Field) Key() string {
	if f.nullKey {
		return NullString
	}
	return SanitizeKey(f.key)
}

// RawKey returns the key as it was given
func (f Field) RawKey() string {
	return f.key
}

// Template returns the value template
func (f Field) Template() string {
	return f.template
}

// Values returns the raw values. The returned slice must not be modified.
func (f Field) Values() []any {
	return f.values
}

// Valid reports whether the field takes part in rendering
func (f Field) Valid() bool {
	return f.Key() != ""
}

// Format returns the field's share of the format string: key="template"
func (f Field) Format() string {
	var b strings.Builder
	f.appendFormat(&b)
	return b.String()
}

func (f Field) appendFormat(b *strings.Builder) {
	b.WriteString(f.Key())
	b.WriteString(`="`)
	b.WriteString(f.template)
	b.WriteByte('"')
}

// StringValues returns every value stringified and cleaned, in order
func (f Field) StringValues() []string {
	out := make([]string, len(f.values))
	for i, v := range f.values {
		out[i] = CleanValue(ValueString(v))
	}
	return out
}

// SanitizeKey strips every character that is not an ASCII letter,
// digit, underscore or period.
func SanitizeKey(key string) string {
	clean := true
	for i := 0; i < len(key); i++ {
		if !isKeyByte(key[i]) {
			clean = false
			break
		}
	}
	if clean {
		return key
	}

	b := make([]byte, 0, len(key))
	for i := 0; i < len(key); i++ {
		if isKeyByte(key[i]) {
			b = append(b, key[i])
		}
	}
	return string(b)
}

func isKeyByte(c byte) bool {
	return c >= 'a' && c <= 'z' ||
		c >= 'A' && c <= 'Z' ||
		c >= '0' && c <= '9' ||
		c == '_' || c == '.'
}
