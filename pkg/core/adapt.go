package core

import "github.com/go-drift/native/pkg/errors"

// Map adapts a view over U to data of type T. focus selects the part of the
// data the view works on; it is called on every pass.
func Map[T, U any](v View[U], focus func(data *T) *U) View[T] {
	return mapView[T, U]{view: v, focus: focus}
}

type mapView[T, U any] struct {
	view  View[U]
	focus func(data *T) *U
}

type mapState[U any] struct {
	view  View[U]
	state State
}

func (m mapView[T, U]) Build(cx *Context, data *T) (Pod, State) {
	pod, state := m.view.Build(cx, m.focus(data))
	return pod, &mapState[U]{view: m.view, state: state}
}

func (m mapView[T, U]) Rebuild(el PodMut, state State, cx *Context, data *T) {
	s := StateOf[*mapState[U]]("core.Map.Rebuild", state)
	mustKeepType("core.Map.Rebuild", s.view, m.view)
	m.view.Rebuild(el, s.state, cx, m.focus(data))
	s.view = m.view
}

func (m mapView[T, U]) Message(el PodMut, state State, cx *Context, data *T, msg *Message) Action {
	s := StateOf[*mapState[U]]("core.Map.Message", state)
	return s.view.Message(el, s.state, cx, m.focus(data), msg)
}

func (m mapView[T, U]) Teardown(el Pod, state State, cx *Context) {
	s := StateOf[*mapState[U]]("core.Map.Teardown", state)
	s.view.Teardown(el, s.state, cx)
}

// Local is the data seen by a view built with WithState: the application
// data together with state owned by the element.
type Local[T, S any] struct {
	Data  *T
	State *S
}

// WithState keeps a value of type S alive for as long as the element
// exists. init creates it at build time; build is called on every pass to
// produce the contents.
func WithState[T, S any](init func(data *T) S, build func(data *T, state *S) View[Local[T, S]]) View[T] {
	return withState[T, S]{init: init, build: build}
}

type withState[T, S any] struct {
	init  func(data *T) S
	build func(data *T, state *S) View[Local[T, S]]
}

type withStateState[T, S any] struct {
	value S
	view  View[Local[T, S]]
	state State
}

func (w withState[T, S]) Build(cx *Context, data *T) (Pod, State) {
	s := &withStateState[T, S]{value: w.init(data)}
	s.view = w.build(data, &s.value)
	pod, state := s.view.Build(cx, &Local[T, S]{Data: data, State: &s.value})
	s.state = state
	return pod, s
}

func (w withState[T, S]) Rebuild(el PodMut, state State, cx *Context, data *T) {
	s := StateOf[*withStateState[T, S]]("core.WithState.Rebuild", state)
	v := w.build(data, &s.value)
	mustKeepType("core.WithState.Rebuild", s.view, v)
	v.Rebuild(el, s.state, cx, &Local[T, S]{Data: data, State: &s.value})
	s.view = v
}

func (w withState[T, S]) Message(el PodMut, state State, cx *Context, data *T, msg *Message) Action {
	s := StateOf[*withStateState[T, S]]("core.WithState.Message", state)
	return s.view.Message(el, s.state, cx, &Local[T, S]{Data: data, State: &s.value}, msg)
}

func (w withState[T, S]) Teardown(el Pod, state State, cx *Context) {
	s := StateOf[*withStateState[T, S]]("core.WithState.Teardown", state)
	s.view.Teardown(el, s.state, cx)
}

// Receive handles broadcast messages with a payload of type P. Matching
// messages are consumed.
func Receive[T, P any](handler func(data *T, payload P) Action) Effect[T] {
	return receive[T, P]{handler: handler}
}

type receive[T, P any] struct {
	handler func(data *T, payload P) Action
}

type receiveState[T, P any] struct {
	handler func(data *T, payload P) Action
}

func (r receive[T, P]) BuildEffect(cx *Context, data *T) State {
	return &receiveState[T, P]{handler: r.handler}
}

func (r receive[T, P]) RebuildEffect(state State, cx *Context, data *T) {
	StateOf[*receiveState[T, P]]("core.Receive.Rebuild", state).handler = r.handler
}

func (r receive[T, P]) MessageEffect(state State, cx *Context, data *T, msg *Message) Action {
	s := StateOf[*receiveState[T, P]]("core.Receive.Message", state)
	if p, ok := Take[P](msg); ok {
		return s.handler(data, p)
	}
	return Action{}
}

func (r receive[T, P]) TeardownEffect(state State, cx *Context) {}

// Effects groups effects. Like children of a container they are matched by
// position and must keep their types across rebuilds.
func Effects[T any](effects ...Effect[T]) Effect[T] {
	return effectSeq[T](effects)
}

type effectSeq[T any] []Effect[T]

type effectChild[T any] struct {
	effect Effect[T]
	state  State
}

type effectSeqState[T any] struct {
	children []effectChild[T]
}

func (e effectSeq[T]) BuildEffect(cx *Context, data *T) State {
	s := &effectSeqState[T]{}
	for _, eff := range e {
		if eff == nil {
			continue
		}
		s.children = append(s.children, effectChild[T]{effect: eff, state: eff.BuildEffect(cx, data)})
	}
	return s
}

func (e effectSeq[T]) RebuildEffect(state State, cx *Context, data *T) {
	s := StateOf[*effectSeqState[T]]("core.Effects.Rebuild", state)
	next := make([]Effect[T], 0, len(e))
	for _, eff := range e {
		if eff != nil {
			next = append(next, eff)
		}
	}
	m, n := len(s.children), len(next)
	for i := 0; i < min(m, n); i++ {
		child := &s.children[i]
		if !sameType(child.effect, next[i]) {
			errors.Invariant("core.Effects.Rebuild", "effect %d changed from %s to %s", i, typeName(child.effect), typeName(next[i]))
		}
		next[i].RebuildEffect(child.state, cx, data)
		child.effect = next[i]
	}
	for i := m; i < n; i++ {
		s.children = append(s.children, effectChild[T]{effect: next[i], state: next[i].BuildEffect(cx, data)})
	}
	for i := n; i < m; i++ {
		s.children[i].effect.TeardownEffect(s.children[i].state, cx)
	}
	if n < m {
		s.children = s.children[:n]
	}
}

func (e effectSeq[T]) MessageEffect(state State, cx *Context, data *T, msg *Message) Action {
	s := StateOf[*effectSeqState[T]]("core.Effects.Message", state)
	var action Action
	for _, child := range s.children {
		if msg.Taken() {
			break
		}
		action = action.Merge(child.effect.MessageEffect(child.state, cx, data, msg))
	}
	return action
}

func (e effectSeq[T]) TeardownEffect(state State, cx *Context) {
	s := StateOf[*effectSeqState[T]]("core.Effects.Teardown", state)
	for _, child := range s.children {
		child.effect.TeardownEffect(child.state, cx)
	}
	s.children = nil
}
