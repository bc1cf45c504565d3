// Package errors provides structured error reporting for mousearea trees.
package errors

import (
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindConfig indicates an invalid or unreadable configuration.
	KindConfig
	// KindParsing indicates an input parsing failure.
	KindParsing
	// KindRender indicates a drawing error.
	KindRender
	// KindPanic indicates a recovered panic.
	KindPanic
	// KindBuild indicates a content builder failure.
	KindBuild
	// KindStructure indicates a tree shape invariant was broken.
	KindStructure
)

var kindNames = [...]string{
	KindUnknown:   "unknown",
	KindConfig:    "config",
	KindParsing:   "parsing",
	KindRender:    "render",
	KindPanic:     "panic",
	KindBuild:     "build",
	KindStructure: "structure",
}

func (k ErrorKind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return kindNames[KindUnknown]
	}
	return kindNames[k]
}

// FrameError represents a structured error raised while driving a frame.
type FrameError struct {
	// Op is the operation that failed (e.g., "engine.HandlePointer").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *FrameError) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *FrameError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "ebitenhost.Update").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// BuildError represents a failure of a content builder.
type BuildError struct {
	// Widget is the type name of the widget whose builder failed.
	Widget string
	// Input describes the interaction state the builder was called with.
	Input string
	// Recovered is the panic value (nil for regular errors).
	Recovered any
	// Err is the underlying error (nil for panics).
	Err error
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *BuildError) Error() string {
	if e.Recovered != nil {
		return fmt.Sprintf("panic in %s builder (%s): %v", e.Widget, e.Input, e.Recovered)
	}
	if e.Err != nil {
		return fmt.Sprintf("error in %s builder (%s): %v", e.Widget, e.Input, e.Err)
	}
	return fmt.Sprintf("unknown error in %s builder (%s)", e.Widget, e.Input)
}

func (e *BuildError) Unwrap() error {
	return e.Err
}

// ArityError reports a tree position whose child count does not match what
// its widget declared.
type ArityError struct {
	// Widget is the type name of the widget owning the position.
	Widget string
	Want   int
	Got    int
}

func (e *ArityError) Error() string {
	if e.Widget == "" {
		return fmt.Sprintf("tree arity mismatch: want %d children, got %d", e.Want, e.Got)
	}
	return fmt.Sprintf("tree arity mismatch in %s: want %d children, got %d", e.Widget, e.Want, e.Got)
}

// ErrorHandler receives errors reported by the framework.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *FrameError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
	// HandleBuildError is called when a content builder fails.
	HandleBuildError(err *BuildError)
}
