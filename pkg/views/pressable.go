package views

import (
	"github.com/go-drift/native/pkg/core"
	"github.com/go-drift/native/pkg/platform"
)

// PressState is the interaction state a Pressable passes to Contents.
type PressState struct {
	Pressed bool
	Hovered bool
	Focused bool
}

// Pressable makes its contents respond to pointer presses, hover and
// focus. Contents is called again whenever the interaction state changes, so
// the contents can reflect it.
//
// OnPress fires when a press that started on the element is released on
// it. Leaving the element or a cancelled press clears the pressed state
// without firing.
type Pressable[T any] struct {
	Contents func(data *T, state PressState) core.View[T]
	OnPress  func(data *T) core.Action
	OnHover  func(data *T, hovered bool) core.Action
	OnFocus  func(data *T, focused bool) core.Action
}

type pressEvent struct{ press platform.Press }

type hoverEvent struct{ hovered bool }

type focusEvent struct{ focused bool }

type pressableState[T any] struct {
	id     core.ViewID
	widget platform.Pressable
	press  PressState

	contents core.Pod
	state    core.State
	view     core.View[T]

	build   func(data *T, state PressState) core.View[T]
	onPress func(data *T) core.Action
	onHover func(data *T, hovered bool) core.Action
	onFocus func(data *T, focused bool) core.Action

	size sizeCache
}

func (p Pressable[T]) Build(cx *core.Context, data *T) (core.Pod, core.State) {
	s := &pressableState[T]{
		id:      cx.NewViewID(),
		build:   p.Contents,
		onPress: p.OnPress,
		onHover: p.OnHover,
		onFocus: p.OnFocus,
	}
	s.view = p.Contents(data, s.press)
	s.contents, s.state = s.view.Build(cx, data)
	s.widget = cx.Platform.NewPressable(s.contents.Widget)

	proxy, id := cx.Proxy(), s.id
	s.widget.SetOnPress(func(press platform.Press) {
		proxy.Message(core.NewMessage(pressEvent{press: press}, id))
	})
	s.widget.SetOnHover(func(hovered bool) {
		proxy.Message(core.NewMessage(hoverEvent{hovered: hovered}, id))
	})
	s.widget.SetOnFocus(func(focused bool) {
		proxy.Message(core.NewMessage(focusEvent{focused: focused}, id))
	})
	return core.Pod{Node: s.contents.Node, Widget: s.widget}, s
}

// inner returns the cursor of the contents. The contents sit at the
// pressable's position in the layout tree but inside the pressable widget.
// sync must be called after using it since the contents may replace their
// node.
func (s *pressableState[T]) inner(el core.PodMut) core.PodMut {
	return el.Reparent(s.widget, &s.contents)
}

func (s *pressableState[T]) sync(el core.PodMut) {
	el.Pod.Node = s.contents.Node
}

func (s *pressableState[T]) rebuild(el core.PodMut, cx *core.Context, data *T) {
	next := s.build(data, s.press)
	rebuildChild("views.Pressable.Rebuild", s.view, next, s.inner(el), s.state, cx, data)
	s.view = next
	s.sync(el)
}

func (p Pressable[T]) Rebuild(el core.PodMut, state core.State, cx *core.Context, data *T) {
	s := core.StateOf[*pressableState[T]]("views.Pressable.Rebuild", state)
	s.build, s.onPress, s.onHover, s.onFocus = p.Contents, p.OnPress, p.OnHover, p.OnFocus
	s.rebuild(el, cx, data)
}

func (s *pressableState[T]) handle(data *T, msg *core.Message) (core.Action, bool) {
	if ev, ok := core.TakeTargeted[pressEvent](msg, s.id); ok {
		switch ev.press {
		case platform.PressDown:
			s.press.Pressed = true
		case platform.PressUp:
			wasPressed := s.press.Pressed
			s.press.Pressed = false
			if wasPressed && s.onPress != nil {
				return s.onPress(data), true
			}
		case platform.PressCancel:
			s.press.Pressed = false
		}
		return core.Action{}, true
	}
	if ev, ok := core.TakeTargeted[hoverEvent](msg, s.id); ok {
		s.press.Hovered = ev.hovered
		if !ev.hovered {
			s.press.Pressed = false
		}
		if s.onHover != nil {
			return s.onHover(data, ev.hovered), true
		}
		return core.Action{}, true
	}
	if ev, ok := core.TakeTargeted[focusEvent](msg, s.id); ok {
		s.press.Focused = ev.focused
		if s.onFocus != nil {
			return s.onFocus(data, ev.focused), true
		}
		return core.Action{}, true
	}
	return core.Action{}, false
}

func (p Pressable[T]) Message(el core.PodMut, state core.State, cx *core.Context, data *T, msg *core.Message) core.Action {
	s := core.StateOf[*pressableState[T]]("views.Pressable.Message", state)
	if action, ok := s.handle(data, msg); ok {
		s.rebuild(el, cx, data)
		return action
	}
	if isLayout(msg) {
		s.size.apply(cx, el.Node(), s.widget)
	}
	action := s.view.Message(s.inner(el), s.state, cx, data, msg)
	s.sync(el)
	return action
}

func (p Pressable[T]) Teardown(el core.Pod, state core.State, cx *core.Context) {
	s := core.StateOf[*pressableState[T]]("views.Pressable.Teardown", state)
	s.view.Teardown(s.contents, s.state, cx)
	s.widget.Teardown()
}
