package errors

import (
	"fmt"
	"runtime"
	"strings"
	"sync"
	"time"
)

var (
	// DefaultHandler receives every reported error. It is a non-verbose
	// LogHandler until SetHandler replaces it.
	DefaultHandler ErrorHandler = &LogHandler{}

	handlerMu sync.RWMutex
)

// SetHandler installs h as the global error handler. Nil restores a
// non-verbose LogHandler.
func SetHandler(h ErrorHandler) {
	if h == nil {
		h = &LogHandler{}
	}
	handlerMu.Lock()
	DefaultHandler = h
	handlerMu.Unlock()
}

// dispatch stamps *ts when unset and hands the error to the current handler.
func dispatch(ts *time.Time, deliver func(ErrorHandler)) {
	if ts.IsZero() {
		*ts = time.Now()
	}
	if h := current(); h != nil {
		deliver(h)
	}
}

func current() ErrorHandler {
	handlerMu.RLock()
	defer handlerMu.RUnlock()
	return DefaultHandler
}

// Report sends err to the global handler, stamping its Timestamp if unset.
func Report(err *FrameError) {
	if err != nil {
		dispatch(&err.Timestamp, func(h ErrorHandler) { h.HandleError(err) })
	}
}

// ReportPanic sends err to the global handler, stamping its Timestamp if
// unset.
func ReportPanic(err *PanicError) {
	if err != nil {
		dispatch(&err.Timestamp, func(h ErrorHandler) { h.HandlePanic(err) })
	}
}

// ReportBuildError sends err to the global handler, stamping its Timestamp
// if unset.
func ReportBuildError(err *BuildError) {
	if err != nil {
		dispatch(&err.Timestamp, func(h ErrorHandler) { h.HandleBuildError(err) })
	}
}

// Recover reports a panic in progress and stops it. Use it directly with
// defer:
//
//	defer errors.Recover("ebitenhost.Draw")
func Recover(op string) {
	if r := recover(); r != nil {
		ReportPanic(panicked(op, r))
	}
}

// RecoverInto reports a panic like Recover and stores it in *errp as a
// *PanicError so callers with an error return can surface it.
//
//	func (g *Game) Update() (err error) {
//	    defer errors.RecoverInto("ebitenhost.Update", &err)
//	    ...
//	}
func RecoverInto(op string, errp *error) {
	r := recover()
	if r == nil {
		return
	}
	perr := panicked(op, r)
	ReportPanic(perr)
	if errp != nil {
		*errp = perr
	}
}

func panicked(op string, value any) *PanicError {
	return &PanicError{
		Op:         op,
		Value:      value,
		StackTrace: CaptureStack(),
		Timestamp:  time.Now(),
	}
}

// CaptureStack returns the caller's call stack, one "function\n\tfile:line"
// entry per frame, starting above CaptureStack's caller.
func CaptureStack() string {
	var pcs [32]uintptr
	n := runtime.Callers(3, pcs[:])
	if n == 0 {
		return ""
	}

	var sb strings.Builder
	frames := runtime.CallersFrames(pcs[:n])
	for more := true; more; {
		var frame runtime.Frame
		frame, more = frames.Next()
		fmt.Fprintf(&sb, "%s\n\t%s:%d\n", frame.Function, frame.File, frame.Line)
	}
	return sb.String()
}
