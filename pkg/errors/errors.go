// Package errors provides structured error handling for the native toolkit.
//
// Errors fall into three groups. Invariant violations (stale layout nodes,
// child lists out of sync, a view type changing at a position that is not
// wrapped in core.Any) are programmer errors: they are reported and then
// panic. Expected absence (no computed layout yet, downcast mismatch) is
// returned as (value, bool) by the callers and never reaches this package.
// Resource failures (image decoding and similar leaf-level problems) are
// reported here and the leaf degrades to an empty visual state.
package errors

import (
	"errors"
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindPlatform indicates a failure inside a platform widget backend.
	KindPlatform
	// KindInvariant indicates a broken internal invariant.
	KindInvariant
	// KindResource indicates a leaf resource that could not be loaded.
	KindResource
	// KindConfig indicates an invalid configuration.
	KindConfig
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindPlatform:
		return "platform"
	case KindInvariant:
		return "invariant"
	case KindResource:
		return "resource"
	case KindConfig:
		return "config"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// NativeError represents a structured error in the toolkit.
type NativeError struct {
	// Op is the operation that failed (e.g., "views.Image.Build").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// View is the view type involved, if any.
	View string
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *NativeError) Error() string {
	if e.View != "" {
		return fmt.Sprintf("%s [%s] view=%s: %v", e.Op, e.Kind, e.View, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *NativeError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "app.Spawn").
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

// InvariantError is the panic value used for broken invariants. Recovering
// one is almost always wrong: the element tree may already be corrupt.
type InvariantError struct {
	Op     string
	Detail string
	Err    error
}

func (e *InvariantError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invariant violated in %s: %s: %v", e.Op, e.Detail, e.Err)
	}
	return fmt.Sprintf("invariant violated in %s: %s", e.Op, e.Detail)
}

func (e *InvariantError) Unwrap() error {
	return e.Err
}

// Is, As and New mirror the standard library so callers only need one
// errors import.
var (
	Is  = errors.Is
	As  = errors.As
	New = errors.New
)

// ErrorHandler receives errors reported by the toolkit.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *NativeError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
