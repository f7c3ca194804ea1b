package logger

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKey_String(t *testing.T) {
	want := []string{
		"package", "class", "endpoint", "service", "exception", "httpStatus",
		"httpMethod", "transaction", "value", "type", "session", "track",
		"request", "code", "method", "environment", "status", "message",
		"name", "duration", "language", "arguments", "id", "action", "day",
		"month", "year", "date", "time", "dateTime", "timeZone", "fail", "success",
	}

	keys := Keys()
	require.Len(t, keys, len(want))
	for i, k := range keys {
		assert.Equal(t, want[i], k.String())
	}
	assert.Equal(t, "", Key(200).String())
}

func TestLogger_WithKeyUnknownIsDropped(t *testing.T) {
	log, rec := newTestLogger()

	require.NoError(t, log.WithKey(Key(200), "v").Info())

	assert.Equal(t, "", lastCall(t, rec).Format)
}

func TestLogger_Setters(t *testing.T) {
	id := uuid.MustParse("9b2f0c8e-4f4a-4a0b-8f57-2a3c1d9e7b10")
	var nilFunc func()

	tests := []struct {
		name  string
		build func(*Logger) *Logger
		key   string
		value string
	}{
		{"Message", func(l *Logger) *Logger { return l.Message("hello") }, "message", "hello"},
		{"Endpoint", func(l *Logger) *Logger { return l.Endpoint("/api/orders") }, "endpoint", "/api/orders"},
		{"Service", func(l *Logger) *Logger { return l.Service("billing") }, "service", "billing"},
		{"Name", func(l *Logger) *Logger { return l.Name("alice") }, "name", "alice"},
		{"Duration", func(l *Logger) *Logger { return l.Duration(1.5) }, "duration", "1.5"},
		{"DurationInt", func(l *Logger) *Logger { return l.DurationInt(250) }, "duration", "250"},
		{"Status", func(l *Logger) *Logger { return l.Status("pending") }, "status", "pending"},
		{"Fail", (*Logger).Fail, "status", "fail"},
		{"Success", (*Logger).Success, "status", "success"},
		{"Action", func(l *Logger) *Logger { return l.Action("create") }, "action", "create"},
		{"Environment", func(l *Logger) *Logger { return l.Environment("prod") }, "environment", "prod"},
		{"Method", func(l *Logger) *Logger { return l.Method("Save") }, "method", "Save"},
		{"MethodOf", func(l *Logger) *Logger { return l.MethodOf(strings.ToUpper) }, "method", "strings.ToUpper"},
		{"MethodOf nil", func(l *Logger) *Logger { return l.MethodOf(nil) }, "method", "null"},
		{"MethodOf nil func", func(l *Logger) *Logger { return l.MethodOf(nilFunc) }, "method", "null"},
		{"Class", func(l *Logger) *Logger { return l.Class("Order") }, "class", "Order"},
		{"ClassOf", func(l *Logger) *Logger { return l.ClassOf(&service{}) }, "class", "github.com/Philipp01105/kvlog/logger.service"},
		{"ClassOf nil", func(l *Logger) *Logger { return l.ClassOf(nil) }, "class", "null"},
		{"Package", func(l *Logger) *Logger { return l.Package("orders") }, "package", "orders"},
		{"PackageOf", func(l *Logger) *Logger { return l.PackageOf(service{}) }, "package", "github.com/Philipp01105/kvlog/logger"},
		{"PackageOf nil", func(l *Logger) *Logger { return l.PackageOf(nil) }, "package", "null"},
		{"Code", func(l *Logger) *Logger { return l.Code("E42") }, "code", "E42"},
		{"CodeInt", func(l *Logger) *Logger { return l.CodeInt(404) }, "code", "404"},
		{"Track", func(l *Logger) *Logger { return l.Track("t-1") }, "track", "t-1"},
		{"TrackID", func(l *Logger) *Logger { return l.TrackID(id) }, "track", id.String()},
		{"Request", func(l *Logger) *Logger { return l.Request("r-1") }, "request", "r-1"},
		{"RequestID", func(l *Logger) *Logger { return l.RequestID(id) }, "request", id.String()},
		{"Session", func(l *Logger) *Logger { return l.Session("s-1") }, "session", "s-1"},
		{"SessionID", func(l *Logger) *Logger { return l.SessionID(id) }, "session", id.String()},
		{"ID", func(l *Logger) *Logger { return l.ID("42") }, "id", "42"},
		{"IDOf", func(l *Logger) *Logger { return l.IDOf(id) }, "id", id.String()},
		{"Transaction", func(l *Logger) *Logger { return l.Transaction("tx-1") }, "transaction", "tx-1"},
		{"TransactionID", func(l *Logger) *Logger { return l.TransactionID(id) }, "transaction", id.String()},
		{"Type", func(l *Logger) *Logger { return l.Type("invoice") }, "type", "invoice"},
		{"Value", func(l *Logger) *Logger { return l.Value("100") }, "value", "100"},
		{"HTTPMethod", func(l *Logger) *Logger { return l.HTTPMethod("POST") }, "httpMethod", "POST"},
		{"HTTPStatus", func(l *Logger) *Logger { return l.HTTPStatus("Created") }, "httpStatus", "Created"},
		{"HTTPStatusCode", func(l *Logger) *Logger { return l.HTTPStatusCode(201) }, "httpStatus", "201"},
		{"Language", func(l *Logger) *Logger { return l.Language("en") }, "language", "en"},
		{"Arguments", func(l *Logger) *Logger { return l.Arguments([]any{"a", 1, nil}) }, "arguments", "[a, 1, null]"},
		{"Arguments nil", func(l *Logger) *Logger { return l.Arguments(nil) }, "arguments", "null"},
		{"Exception", func(l *Logger) *Logger { return l.Exception("bad input") }, "exception", "bad input"},
		{"ExceptionErr", func(l *Logger) *Logger { return l.ExceptionErr(errors.New("boom")) }, "exception", "boom"},
		{"ExceptionErr nil", func(l *Logger) *Logger { return l.ExceptionErr(nil) }, "exception", "null"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log, rec := newTestLogger()
			require.NoError(t, tt.build(log).Info())

			call := lastCall(t, rec)
			assert.Equal(t, tt.key+`="%s"`, call.Format)
			assert.Equal(t, []any{tt.value}, call.Args)
			assert.NoError(t, call.Err())
		})
	}
}

func TestLogger_Messagef(t *testing.T) {
	log, rec := newTestLogger()

	require.NoError(t, log.Messagef("%s of %s", 3, 10).Info())

	call := lastCall(t, rec)
	assert.Equal(t, `message="%s of %s"`, call.Format)
	assert.Equal(t, `message="3 of 10"`, call.Message())
}

func TestLogger_ExceptionDoesNotAttach(t *testing.T) {
	log, rec := newTestLogger()

	require.NoError(t, log.ExceptionErr(errors.New("boom")).Error())

	assert.Equal(t, []any{"boom"}, lastCall(t, rec).Args)
}
