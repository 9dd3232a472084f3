package views

import (
	"time"

	"github.com/go-drift/native/pkg/animation"
	"github.com/go-drift/native/pkg/core"
)

// Animate keeps a value of type U that advances with animation frames.
//
// Init creates the value when the element is built. While ShouldAnimate
// reports true the enclosing window delivers frames; each frame calls Tick
// with the elapsed time and then rebuilds the contents from View. The
// element has no widget of its own.
type Animate[T, U any] struct {
	Init          func(data *T) U
	ShouldAnimate func(data *T, state *U) bool
	Tick          func(data *T, state *U, delta time.Duration)
	View          func(data *T, state *U) core.View[T]
}

type animateState[T, U any] struct {
	value     U
	animating bool

	view  core.View[T]
	state core.State

	shouldAnimate func(data *T, state *U) bool
	tick          func(data *T, state *U, delta time.Duration)
	build         func(data *T, state *U) core.View[T]
}

func (s *animateState[T, U]) update(cx *core.Context, data *T) {
	want := s.shouldAnimate != nil && s.shouldAnimate(data, &s.value)
	switch {
	case want && !s.animating:
		cx.StartAnimating()
	case !want && s.animating:
		cx.StopAnimating()
	}
	s.animating = want
}

func (s *animateState[T, U]) rebuild(el core.PodMut, cx *core.Context, data *T) {
	next := s.build(data, &s.value)
	rebuildChild("views.Animate.Rebuild", s.view, next, el, s.state, cx, data)
	s.view = next
}

func (a Animate[T, U]) Build(cx *core.Context, data *T) (core.Pod, core.State) {
	s := &animateState[T, U]{
		shouldAnimate: a.ShouldAnimate,
		tick:          a.Tick,
		build:         a.View,
	}
	if a.Init != nil {
		s.value = a.Init(data)
	}
	s.update(cx, data)
	s.view = a.View(data, &s.value)
	pod, state := s.view.Build(cx, data)
	s.state = state
	return pod, s
}

func (a Animate[T, U]) Rebuild(el core.PodMut, state core.State, cx *core.Context, data *T) {
	s := core.StateOf[*animateState[T, U]]("views.Animate.Rebuild", state)
	s.shouldAnimate, s.tick, s.build = a.ShouldAnimate, a.Tick, a.View
	s.update(cx, data)
	s.rebuild(el, cx, data)
}

func (a Animate[T, U]) Message(el core.PodMut, state core.State, cx *core.Context, data *T, msg *core.Message) core.Action {
	s := core.StateOf[*animateState[T, U]]("views.Animate.Message", state)
	if lc, ok := core.Get[core.Lifecycle](msg); ok && lc.Kind == core.LifecycleAnimate && s.animating {
		if s.tick != nil {
			s.tick(data, &s.value, lc.Delta)
		}
		s.update(cx, data)
		s.rebuild(el, cx, data)
	}
	return s.view.Message(el, s.state, cx, data, msg)
}

func (a Animate[T, U]) Teardown(el core.Pod, state core.State, cx *core.Context) {
	s := core.StateOf[*animateState[T, U]]("views.Animate.Teardown", state)
	if s.animating {
		cx.StopAnimating()
		s.animating = false
	}
	s.view.Teardown(el, s.state, cx)
}

// Transition eases a number toward Target. When Target changes, the value
// moves from where it is to the new target over Duration along Curve.
// The first build starts at Target.
type Transition[T any] struct {
	Target   float64
	Duration time.Duration
	// Curve defaults to animation.EaseInOut.
	Curve animation.Curve
	View  func(data *T, value float64) core.View[T]
}

type transition struct {
	value  float64
	target float64
	tween  *animation.Tween
}

func (t Transition[T]) animate() Animate[T, transition] {
	return Animate[T, transition]{
		Init: func(*T) transition {
			return transition{value: t.Target, target: t.Target}
		},
		ShouldAnimate: func(_ *T, tr *transition) bool {
			if tr.target != t.Target {
				curve := t.Curve
				if curve == nil {
					curve = animation.EaseInOut
				}
				tr.tween = animation.NewTween(tr.value, t.Target, t.Duration, curve)
				tr.value, tr.target = tr.tween.Value(), t.Target
			}
			return tr.tween != nil && !tr.tween.Done()
		},
		Tick: func(_ *T, tr *transition, delta time.Duration) {
			if tr.tween != nil {
				tr.value, _ = tr.tween.Update(delta)
			}
		},
		View: func(data *T, tr *transition) core.View[T] {
			return t.View(data, tr.value)
		},
	}
}

func (t Transition[T]) Build(cx *core.Context, data *T) (core.Pod, core.State) {
	return t.animate().Build(cx, data)
}

func (t Transition[T]) Rebuild(el core.PodMut, state core.State, cx *core.Context, data *T) {
	t.animate().Rebuild(el, state, cx, data)
}

func (t Transition[T]) Message(el core.PodMut, state core.State, cx *core.Context, data *T, msg *core.Message) core.Action {
	return t.animate().Message(el, state, cx, data, msg)
}

func (t Transition[T]) Teardown(el core.Pod, state core.State, cx *core.Context) {
	t.animate().Teardown(el, state, cx)
}
