package core

import (
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"
)

// modulePrefix prefixes the function names of every package in this module
const modulePrefix = "github.com/Philipp01105/kvlog/"

// maxCallerDepth bounds the frames searched for the first user frame
const maxCallerDepth = 32

// Entry is a fully interpolated log line on its way to an output.
type Entry struct {
	Time     time.Time
	Level    Level
	Category string
	Message  string
	Err      error
	Caller   CallerInfo
}

// CallerInfo contains information about the caller
type CallerInfo struct {
	File      string
	ShortFile string
	Line      int
	Function  string
	Defined   bool
}

// entryPool is a pool of Entry objects to reduce allocations
var entryPool = sync.Pool{
	New: func() interface{} {
		return &Entry{}
	},
}

// GetEntry retrieves an Entry from the pool
func GetEntry() *Entry {
	e := entryPool.Get().(*Entry)
	e.Time = time.Now()
	e.Caller = CallerInfo{}
	return e
}

// PutEntry returns an Entry to the pool
func PutEntry(e *Entry) {
	if e == nil {
		return
	}
	e.Message = ""
	e.Category = ""
	e.Err = nil
	e.Caller = CallerInfo{}
	entryPool.Put(e)
}

// GetCaller retrieves caller information
func GetCaller(skip int) CallerInfo {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return CallerInfo{}
	}

	fn := runtime.FuncForPC(pc)
	var funcName string
	if fn != nil {
		funcName = fn.Name()
	}

	return CallerInfo{
		File:      file,
		ShortFile: filepath.Base(file),
		Line:      line,
		Function:  funcName,
		Defined:   true,
	}
}

// GetUserCaller returns the first frame above its caller that belongs to
// code outside this module. Frames of this module's tests count as user
// code. The result does not depend on how many sinks wrap each other.
func GetUserCaller() CallerInfo {
	frame, _, ok := userFrame(3)
	if !ok {
		return CallerInfo{}
	}
	return CallerInfo{
		File:      frame.File,
		ShortFile: filepath.Base(frame.File),
		Line:      frame.Line,
		Function:  frame.Function,
		Defined:   true,
	}
}

// UserCallerDepth returns the number of frames between its caller and the
// first frame outside this module, counting the caller itself. It suits
// skip options such as zap.AddCallerSkip.
func UserCallerDepth() int {
	_, depth, _ := userFrame(3)
	return depth
}

// userFrame walks the stack from skip, as passed to runtime.Callers, and
// returns the first user frame with the number of module frames before it.
func userFrame(skip int) (runtime.Frame, int, bool) {
	var pcs [maxCallerDepth]uintptr
	n := runtime.Callers(skip, pcs[:])
	frames := runtime.CallersFrames(pcs[:n])

	depth := 0
	for {
		frame, more := frames.Next()
		if frame.Function != "" && !moduleFrame(frame) {
			return frame, depth, true
		}
		depth++
		if !more {
			return runtime.Frame{}, depth, false
		}
	}
}

func moduleFrame(frame runtime.Frame) bool {
	return strings.HasPrefix(frame.Function, modulePrefix) &&
		!strings.HasSuffix(frame.File, "_test.go")
}
