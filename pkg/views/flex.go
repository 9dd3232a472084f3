package views

import (
	"github.com/go-drift/native/pkg/core"
	"github.com/go-drift/native/pkg/graphics"
	"github.com/go-drift/native/pkg/layout"
	"github.com/go-drift/native/pkg/platform"
)

// Flex lays out its children in a row or a column.
//
// Children are reconciled by position. Set Keyed and wrap children with
// core.Key to match them by key instead, which keeps the elements of
// moved or surviving rows when rows are inserted or removed in the middle.
type Flex[T any] struct {
	Children []core.View[T]
	// Style is the layout style of the container. Row and Column start
	// from layout.DefaultStyle.
	Style layout.Style

	Background  graphics.Color
	BorderColor graphics.Color
	// CornerRadii are ordered top-left, top-right, bottom-right,
	// bottom-left.
	CornerRadii [4]float32

	Keyed bool
}

// Row returns a horizontal Flex.
func Row[T any](children ...core.View[T]) Flex[T] {
	return Flex[T]{Children: children, Style: layout.DefaultStyle()}
}

// Column returns a vertical Flex.
func Column[T any](children ...core.View[T]) Flex[T] {
	return Flex[T]{Children: children, Style: layout.ColumnStyle()}
}

// WithGap returns a copy of the flex with the gap between children set.
func (f Flex[T]) WithGap(gap float32) Flex[T] {
	f.Style.Gap = gap
	return f
}

// WithPadding returns a copy of the flex with uniform padding.
func (f Flex[T]) WithPadding(padding float32) Flex[T] {
	f.Style.Padding = layout.Uniform(padding)
	return f
}

// WithBackground returns a copy of the flex with the background color set.
func (f Flex[T]) WithBackground(color graphics.Color) Flex[T] {
	f.Background = color
	return f
}

// WithCorners returns a copy of the flex with all corners rounded.
func (f Flex[T]) WithCorners(radius float32) Flex[T] {
	f.CornerRadii = [4]float32{radius, radius, radius, radius}
	return f
}

type flexState[T any] struct {
	group    platform.Group
	children *core.GroupChildren
	seq      *core.Seq[T]

	style       layout.Style
	background  graphics.Color
	borderColor graphics.Color
	radii       [4]float32
}

func (f Flex[T]) Build(cx *core.Context, data *T) (core.Pod, core.State) {
	node := cx.NewLayoutNode(f.Style)
	group := cx.Platform.NewGroup()
	group.SetBackgroundColor(f.Background)
	group.SetBorderColor(f.BorderColor)
	group.SetCornerRadii(f.CornerRadii)

	s := &flexState[T]{
		group:       group,
		children:    core.NewGroupChildren(node, group),
		style:       f.Style,
		background:  f.Background,
		borderColor: f.BorderColor,
		radii:       f.CornerRadii,
	}
	s.seq = core.SeqBuild(f.Children, s.children.Elements(), cx, data)
	return core.Pod{Node: node, Widget: group}, s
}

func (f Flex[T]) Rebuild(el core.PodMut, state core.State, cx *core.Context, data *T) {
	s := core.StateOf[*flexState[T]]("views.Flex.Rebuild", state)
	if f.Style != s.style {
		cx.SetLayoutStyle(el.Node(), f.Style)
		s.style = f.Style
	}
	if f.Background != s.background {
		s.group.SetBackgroundColor(f.Background)
		s.background = f.Background
	}
	if f.BorderColor != s.borderColor {
		s.group.SetBorderColor(f.BorderColor)
		s.borderColor = f.BorderColor
	}
	if f.CornerRadii != s.radii {
		s.group.SetCornerRadii(f.CornerRadii)
		s.radii = f.CornerRadii
	}

	if f.Keyed {
		core.SeqRebuildKeyed(f.Children, s.seq, s.children.Elements(), cx, data)
	} else {
		core.SeqRebuild(f.Children, s.seq, s.children.Elements(), cx, data)
	}
}

func (f Flex[T]) Message(el core.PodMut, state core.State, cx *core.Context, data *T, msg *core.Message) core.Action {
	s := core.StateOf[*flexState[T]]("views.Flex.Message", state)
	if isLayout(msg) {
		s.children.ApplyLayout(cx)
	}
	return core.SeqMessage(s.seq, s.children.Elements(), cx, data, msg)
}

func (f Flex[T]) Teardown(el core.Pod, state core.State, cx *core.Context) {
	s := core.StateOf[*flexState[T]]("views.Flex.Teardown", state)
	core.SeqTeardown(s.seq, s.children.Elements(), cx)
	s.group.Teardown()
	cx.RemoveLayoutNode(el.Node)
}

// Children returns the element list of a flex element. It reports false if
// state does not belong to a Flex.
func Children[T any](state core.State) (*core.GroupChildren, bool) {
	s, ok := state.(*flexState[T])
	if !ok {
		return nil, false
	}
	return s.children, true
}
