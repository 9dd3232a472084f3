package core

import (
	"fmt"
	"reflect"

	"github.com/go-drift/native/pkg/errors"
)

// State is the opaque per-element data a view returns from Build. States
// are pointers so that Rebuild and Message can update them in place.
type State = any

// View describes one node of the UI for application data of type T.
//
// Build creates the element. Rebuild is called on the new view with the
// element and state of the previous one at the same position; it must
// mutate the existing widget rather than recreate it. Message and Teardown
// are called on the view that last built or rebuilt the element.
type View[T any] interface {
	Build(cx *Context, data *T) (Pod, State)
	Rebuild(el PodMut, state State, cx *Context, data *T)
	Message(el PodMut, state State, cx *Context, data *T, msg *Message) Action
	Teardown(el Pod, state State, cx *Context)
}

// Effect is a view that contributes no widget to its parent. Windows and
// message receivers are effects.
type Effect[T any] interface {
	BuildEffect(cx *Context, data *T) State
	RebuildEffect(state State, cx *Context, data *T)
	MessageEffect(state State, cx *Context, data *T, msg *Message) Action
	TeardownEffect(state State, cx *Context)
}

// StateOf asserts a state to the type its view stored. A mismatch means an
// element was paired with the wrong view, which is a programming error.
func StateOf[S any](op string, state State) S {
	s, ok := state.(S)
	if !ok {
		var want S
		errors.Invariant(op, "state is %T, want %T", state, want)
	}
	return s
}

func sameType(a, b any) bool {
	return reflect.TypeOf(a) == reflect.TypeOf(b)
}

// mustKeepType reports a broken invariant when a wrapper's contents change
// view type between passes.
func mustKeepType(op string, old, next any) {
	if !sameType(old, next) {
		errors.Invariant(op, "contents changed from %T to %T; wrap them with core.Any", old, next)
	}
}

func typeName(v any) string {
	return fmt.Sprintf("%T", v)
}
