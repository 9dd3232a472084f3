package errors

import (
	"fmt"
	"runtime"
	"strconv"
	"strings"
	"sync"
	"time"
)

var (
	handlerMu sync.RWMutex
	handler   ErrorHandler = NewLogHandler(false)
)

// SetHandler replaces the global error handler. Passing nil restores a
// non-verbose LogHandler on stderr.
func SetHandler(h ErrorHandler) {
	if h == nil {
		h = NewLogHandler(false)
	}
	handlerMu.Lock()
	handler = h
	handlerMu.Unlock()
}

func currentHandler() ErrorHandler {
	handlerMu.RLock()
	defer handlerMu.RUnlock()
	return handler
}

// Report hands err to the global handler, stamping it first if needed.
func Report(err *NativeError) {
	if err == nil {
		return
	}
	if err.Timestamp.IsZero() {
		err.Timestamp = time.Now()
	}
	currentHandler().HandleError(err)
}

// Invariant reports a broken invariant and panics with an *InvariantError.
func Invariant(op string, format string, args ...any) {
	raise(&InvariantError{Op: op, Detail: fmt.Sprintf(format, args...)})
}

// Must panics with an *InvariantError when err is non-nil. It guards calls
// that can only fail if the caller broke an invariant, such as layout
// service calls with node ids obtained from the same tree.
func Must(op string, err error) {
	if err != nil {
		raise(&InvariantError{Op: op, Detail: "unexpected failure", Err: err})
	}
}

func raise(inv *InvariantError) {
	Report(&NativeError{
		Op:         inv.Op,
		Kind:       KindInvariant,
		Err:        inv,
		StackTrace: stack(3),
	})
	panic(inv)
}

// Recover reports a panic in progress to the global handler and stops it.
// It must be deferred directly:
//
//	defer errors.Recover("app.Spawn")
func Recover(op string) {
	r := recover()
	if r == nil {
		return
	}
	currentHandler().HandlePanic(&PanicError{
		Op:         op,
		Value:      r,
		StackTrace: stack(3),
		Timestamp:  time.Now(),
	})
}

// stack formats the calling goroutine's stack, dropping the innermost skip
// frames.
func stack(skip int) string {
	var pcs [32]uintptr
	n := runtime.Callers(skip, pcs[:])
	frames := runtime.CallersFrames(pcs[:n])
	var sb strings.Builder
	for n > 0 {
		frame, more := frames.Next()
		sb.WriteString(frame.Function + "\n\t" + frame.File + ":" + strconv.Itoa(frame.Line) + "\n")
		if !more {
			break
		}
	}
	return sb.String()
}
