package core

type anyView[T any] struct {
	view View[T]
}

type anyState[T any] struct {
	view  View[T]
	state State
}

// Any erases the concrete type of v so that the same position can hold
// different views across rebuilds. When the type stays the same the
// element is rebuilt in place; otherwise a new element is built, replaces
// the old one at the same index and the old one is torn down.
func Any[T any](v View[T]) View[T] {
	if a, ok := v.(anyView[T]); ok {
		return a
	}
	return anyView[T]{view: v}
}

func (a anyView[T]) Build(cx *Context, data *T) (Pod, State) {
	pod, state := a.view.Build(cx, data)
	return pod, &anyState[T]{view: a.view, state: state}
}

func (a anyView[T]) Rebuild(el PodMut, state State, cx *Context, data *T) {
	s := StateOf[*anyState[T]]("core.Any.Rebuild", state)
	if sameType(s.view, a.view) {
		a.view.Rebuild(el, s.state, cx, data)
		s.view = a.view
		return
	}

	pod, next := a.view.Build(cx, data)
	old := el.Replace(cx, pod)
	s.view.Teardown(old, s.state, cx)
	s.view, s.state = a.view, next
}

func (a anyView[T]) Message(el PodMut, state State, cx *Context, data *T, msg *Message) Action {
	s := StateOf[*anyState[T]]("core.Any.Message", state)
	return s.view.Message(el, s.state, cx, data, msg)
}

func (a anyView[T]) Teardown(el Pod, state State, cx *Context) {
	s := StateOf[*anyState[T]]("core.Any.Teardown", state)
	s.view.Teardown(el, s.state, cx)
}
