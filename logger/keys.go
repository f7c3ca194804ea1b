package logger

import (
	"reflect"
	"runtime"

	"github.com/google/uuid"
)

// Key is a well-known field name
type Key uint8

// Keys of the fixed vocabulary
const (
	KeyPackage Key = iota
	KeyClass
	KeyEndpoint
	KeyService
	KeyException
	KeyHTTPStatus
	KeyHTTPMethod
	KeyTransaction
	KeyValue
	KeyType
	KeySession
	KeyTrack
	KeyRequest
	KeyCode
	KeyMethod
	KeyEnvironment
	KeyStatus
	KeyMessage
	KeyName
	KeyDuration
	KeyLanguage
	KeyArguments
	KeyID
	KeyAction
	KeyDay
	KeyMonth
	KeyYear
	KeyDate
	KeyTime
	KeyDateTime
	KeyTimeZone
	KeyFail
	KeySuccess

	numKeys
)

var keyNames = [numKeys]string{
	KeyPackage:     "package",
	KeyClass:       "class",
	KeyEndpoint:    "endpoint",
	KeyService:     "service",
	KeyException:   "exception",
	KeyHTTPStatus:  "httpStatus",
	KeyHTTPMethod:  "httpMethod",
	KeyTransaction: "transaction",
	KeyValue:       "value",
	KeyType:        "type",
	KeySession:     "session",
	KeyTrack:       "track",
	KeyRequest:     "request",
	KeyCode:        "code",
	KeyMethod:      "method",
	KeyEnvironment: "environment",
	KeyStatus:      "status",
	KeyMessage:     "message",
	KeyName:        "name",
	KeyDuration:    "duration",
	KeyLanguage:    "language",
	KeyArguments:   "arguments",
	KeyID:          "id",
	KeyAction:      "action",
	KeyDay:         "day",
	KeyMonth:       "month",
	KeyYear:        "year",
	KeyDate:        "date",
	KeyTime:        "time",
	KeyDateTime:    "dateTime",
	KeyTimeZone:    "timeZone",
	KeyFail:        "fail",
	KeySuccess:     "success",
}

// String returns the literal key. An unknown Key is the empty string,
// which drops the field when rendering.
func (k Key) String() string {
	if k >= numKeys {
		return ""
	}
	return keyNames[k]
}

// Keys returns the whole vocabulary in declaration order
func Keys() []Key {
	keys := make([]Key, numKeys)
	for i := range keys {
		keys[i] = Key(i)
	}
	return keys
}

// Message adds message="<message>"
func (l *Logger) Message(message string) *Logger { return l.WithKey(KeyMessage, message) }

// Messagef adds a message with its own template, e.g.
//
//	l.Messagef("%s of %s", done, total)
//
// As with Withf, placeholders must be %s or %v.
func (l *Logger) Messagef(template string, values ...any) *Logger {
	return l.WithKeyf(KeyMessage, template, values...)
}

// Endpoint adds the endpoint being served or called
func (l *Logger) Endpoint(endpoint string) *Logger { return l.WithKey(KeyEndpoint, endpoint) }

// Service adds the service name
func (l *Logger) Service(service string) *Logger { return l.WithKey(KeyService, service) }

// Name adds a free-form name
func (l *Logger) Name(name string) *Logger { return l.WithKey(KeyName, name) }

// Duration adds a duration, e.g. seconds as a float
func (l *Logger) Duration(duration float64) *Logger { return l.WithKey(KeyDuration, duration) }

// DurationInt adds an integral duration, e.g. milliseconds
func (l *Logger) DurationInt(duration int64) *Logger { return l.WithKey(KeyDuration, duration) }

// Status adds a free-form status
func (l *Logger) Status(status string) *Logger { return l.WithKey(KeyStatus, status) }

// Fail sets status="fail"
func (l *Logger) Fail() *Logger { return l.WithKey(KeyStatus, KeyFail.String()) }

// Success sets status="success"
func (l *Logger) Success() *Logger { return l.WithKey(KeyStatus, KeySuccess.String()) }

// Action adds the action being performed
func (l *Logger) Action(action string) *Logger { return l.WithKey(KeyAction, action) }

// Environment adds the deployment environment, e.g. prod
func (l *Logger) Environment(environment string) *Logger {
	return l.WithKey(KeyEnvironment, environment)
}

// Method adds a method name
func (l *Logger) Method(method string) *Logger { return l.WithKey(KeyMethod, method) }

// MethodOf adds the fully qualified name of fn. Anything that is not a
// function is rendered as is; a nil function renders as null.
func (l *Logger) MethodOf(fn any) *Logger {
	rv := reflect.ValueOf(fn)
	if rv.Kind() != reflect.Func {
		return l.WithKey(KeyMethod, fn)
	}
	if rv.IsNil() {
		return l.WithKey(KeyMethod, nil)
	}
	if f := runtime.FuncForPC(rv.Pointer()); f != nil {
		return l.WithKey(KeyMethod, f.Name())
	}
	return l.WithKey(KeyMethod, nil)
}

// Class adds a type name
func (l *Logger) Class(class string) *Logger { return l.WithKey(KeyClass, class) }

// ClassOf adds the type name of v as "import/path.Type". Pointers are
// dereferenced; a nil v renders as null.
func (l *Logger) ClassOf(v any) *Logger {
	if v == nil {
		return l.WithKey(KeyClass, nil)
	}
	if t, ok := v.(reflect.Type); ok {
		return l.WithKey(KeyClass, typeName(t))
	}
	return l.WithKey(KeyClass, typeName(reflect.TypeOf(v)))
}

// Package adds a package or import path
func (l *Logger) Package(pkg string) *Logger { return l.WithKey(KeyPackage, pkg) }

// PackageOf adds the import path of the type of v; a nil v renders as null.
func (l *Logger) PackageOf(v any) *Logger {
	if v == nil {
		return l.WithKey(KeyPackage, nil)
	}
	t, ok := v.(reflect.Type)
	if !ok {
		t = reflect.TypeOf(v)
	}
	return l.WithKey(KeyPackage, indirect(t).PkgPath())
}

// Code adds a result or error code
func (l *Logger) Code(code string) *Logger { return l.WithKey(KeyCode, code) }

// CodeInt adds a numeric result or error code
func (l *Logger) CodeInt(code int) *Logger { return l.WithKey(KeyCode, code) }

// Track adds a tracking identifier
func (l *Logger) Track(track string) *Logger { return l.WithKey(KeyTrack, track) }

// TrackID adds a tracking UUID
func (l *Logger) TrackID(track uuid.UUID) *Logger { return l.WithKey(KeyTrack, track) }

// Request adds a request identifier
func (l *Logger) Request(request string) *Logger { return l.WithKey(KeyRequest, request) }

// RequestID adds a request UUID
func (l *Logger) RequestID(request uuid.UUID) *Logger { return l.WithKey(KeyRequest, request) }

// Session adds a session identifier
func (l *Logger) Session(session string) *Logger { return l.WithKey(KeySession, session) }

// SessionID adds a session UUID
func (l *Logger) SessionID(session uuid.UUID) *Logger { return l.WithKey(KeySession, session) }

// ID adds a generic identifier
func (l *Logger) ID(id string) *Logger { return l.WithKey(KeyID, id) }

// IDOf adds a generic UUID identifier
func (l *Logger) IDOf(id uuid.UUID) *Logger { return l.WithKey(KeyID, id) }

// Transaction adds a transaction identifier
func (l *Logger) Transaction(transaction string) *Logger {
	return l.WithKey(KeyTransaction, transaction)
}

// TransactionID adds a transaction UUID
func (l *Logger) TransactionID(transaction uuid.UUID) *Logger {
	return l.WithKey(KeyTransaction, transaction)
}

// Type adds a free-form type
func (l *Logger) Type(typ string) *Logger { return l.WithKey(KeyType, typ) }

// Value adds a free-form value
func (l *Logger) Value(value string) *Logger { return l.WithKey(KeyValue, value) }

// HTTPMethod adds the HTTP method, e.g. GET
func (l *Logger) HTTPMethod(method string) *Logger { return l.WithKey(KeyHTTPMethod, method) }

// HTTPStatus adds the HTTP status text
func (l *Logger) HTTPStatus(status string) *Logger { return l.WithKey(KeyHTTPStatus, status) }

// HTTPStatusCode adds the numeric HTTP status
func (l *Logger) HTTPStatusCode(status int) *Logger { return l.WithKey(KeyHTTPStatus, status) }

// Language adds a language tag, e.g. en-US
func (l *Logger) Language(language string) *Logger { return l.WithKey(KeyLanguage, language) }

// Arguments adds the arguments rendered as a list: arguments="[a, b]"
func (l *Logger) Arguments(arguments []any) *Logger {
	return l.WithKey(KeyArguments, arguments)
}

// Exception adds exception="<exception>" without attaching an error
func (l *Logger) Exception(exception string) *Logger {
	return l.WithKey(KeyException, exception)
}

// ExceptionErr adds the error text as exception. A nil err renders as null.
func (l *Logger) ExceptionErr(err error) *Logger {
	if err == nil {
		return l.WithKey(KeyException, nil)
	}
	return l.WithKey(KeyException, err.Error())
}

// ExceptionWithStackTrace adds exception="<message>" and attaches err,
// so backends print it as an error with their own stack or cause
// output. An empty message falls back to the error text.
func (l *Logger) ExceptionWithStackTrace(message string, err error) *Logger {
	if message != "" {
		return l.attach(err).WithKey(KeyException, message)
	}
	return l.attach(err).ExceptionErr(err)
}

// ErrWithStackTrace is ExceptionWithStackTrace using the error text
func (l *Logger) ErrWithStackTrace(err error) *Logger {
	return l.ExceptionWithStackTrace("", err)
}
