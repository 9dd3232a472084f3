package views

import (
	"github.com/go-drift/native/pkg/core"
	"github.com/go-drift/native/pkg/layout"
	"github.com/go-drift/native/pkg/platform"
)

// Scroll clips its contents and lets the user scroll them along Direction.
// Contents are never shrunk along the scroll axis.
type Scroll[T any] struct {
	Direction layout.Direction
	Contents  core.View[T]
	Style     layout.Style
}

// VScroll returns a vertical Scroll.
func VScroll[T any](contents core.View[T]) Scroll[T] {
	return Scroll[T]{Direction: layout.Column, Contents: contents, Style: layout.DefaultStyle()}
}

// HScroll returns a horizontal Scroll.
func HScroll[T any](contents core.View[T]) Scroll[T] {
	return Scroll[T]{Direction: layout.Row, Contents: contents, Style: layout.DefaultStyle()}
}

type scrollState[T any] struct {
	widget   platform.Scroll
	contents core.Pod
	state    core.State
	view     core.View[T]

	direction layout.Direction
	style     layout.Style
	size      sizeCache
	content   layout.Size
}

func (s Scroll[T]) nodeStyle() layout.Style {
	style := s.Style
	style.Direction = s.Direction
	if s.Direction == layout.Row {
		style.Overflow.X = layout.OverflowScroll
	} else {
		style.Overflow.Y = layout.OverflowScroll
	}
	return style
}

func (st *scrollState[T]) inner(el core.PodMut) core.PodMut {
	return core.PodMut{ParentNode: el.Node(), Parent: st.widget, Index: 0, Pod: &st.contents}
}

func (s Scroll[T]) Build(cx *core.Context, data *T) (core.Pod, core.State) {
	contents, state := s.Contents.Build(cx, data)
	widget := cx.Platform.NewScroll(contents.Widget)
	widget.SetDirection(s.Direction)
	node := cx.NewLayoutNode(s.nodeStyle(), contents.Node)
	st := &scrollState[T]{
		widget:    widget,
		contents:  contents,
		state:     state,
		view:      s.Contents,
		direction: s.Direction,
		style:     s.Style,
	}
	return core.Pod{Node: node, Widget: widget}, st
}

func (s Scroll[T]) Rebuild(el core.PodMut, state core.State, cx *core.Context, data *T) {
	st := core.StateOf[*scrollState[T]]("views.Scroll.Rebuild", state)
	if s.Direction != st.direction || s.Style != st.style {
		cx.SetLayoutStyle(el.Node(), s.nodeStyle())
		if s.Direction != st.direction {
			st.widget.SetDirection(s.Direction)
		}
		st.direction, st.style = s.Direction, s.Style
	}
	rebuildChild("views.Scroll.Rebuild", st.view, s.Contents, st.inner(el), st.state, cx, data)
	st.view = s.Contents
}

func (s Scroll[T]) Message(el core.PodMut, state core.State, cx *core.Context, data *T, msg *core.Message) core.Action {
	st := core.StateOf[*scrollState[T]]("views.Scroll.Message", state)
	if isLayout(msg) {
		st.size.apply(cx, el.Node(), st.widget)
		if l, ok := cx.ComputedLayout(st.contents.Node); ok && l.Size != st.content {
			st.widget.SetContentSize(l.Size.Width, l.Size.Height)
			st.content = l.Size
		}
	}
	return st.view.Message(st.inner(el), st.state, cx, data, msg)
}

func (s Scroll[T]) Teardown(el core.Pod, state core.State, cx *core.Context) {
	st := core.StateOf[*scrollState[T]]("views.Scroll.Teardown", state)
	st.view.Teardown(st.contents, st.state, cx)
	st.widget.Teardown()
	cx.RemoveLayoutNode(el.Node)
}
