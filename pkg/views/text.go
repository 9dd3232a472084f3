package views

import (
	"slices"

	"github.com/go-drift/native/pkg/core"
	"github.com/go-drift/native/pkg/graphics"
	"github.com/go-drift/native/pkg/layout"
	"github.com/go-drift/native/pkg/platform"
)

// Text displays a string.
//
// Without Spans the whole content uses Font, or graphics.DefaultFont when
// Font is the zero value. Reshaping is skipped when content, spans and
// wrap mode are unchanged.
type Text[T any] struct {
	Content string
	Font    graphics.Font
	// Spans style byte ranges of Content. They replace Font.
	Spans []graphics.TextSpan
	Wrap  graphics.Wrap
	Style layout.Style
}

type textState struct {
	widget  platform.Text
	content string
	spans   []graphics.TextSpan
	wrap    graphics.Wrap
	style   layout.Style
	size    sizeCache
}

func (t Text[T]) spans() []graphics.TextSpan {
	if len(t.Spans) > 0 {
		return t.Spans
	}
	font := t.Font
	if font == (graphics.Font{}) {
		font = graphics.DefaultFont()
	}
	return []graphics.TextSpan{{Font: font, Start: 0, End: len(t.Content)}}
}

func (t Text[T]) Build(cx *core.Context, data *T) (core.Pod, core.State) {
	spans := t.spans()
	widget, measurer := cx.Platform.NewText(t.Content, spans, t.Wrap)
	node := cx.NewLayoutLeaf(t.Style, measurer)
	s := &textState{
		widget:  widget,
		content: t.Content,
		spans:   spans,
		wrap:    t.Wrap,
		style:   t.Style,
	}
	return core.Pod{Node: node, Widget: widget}, s
}

func (t Text[T]) Rebuild(el core.PodMut, state core.State, cx *core.Context, data *T) {
	s := core.StateOf[*textState]("views.Text.Rebuild", state)
	if t.Style != s.style {
		cx.SetLayoutStyle(el.Node(), t.Style)
		s.style = t.Style
	}
	spans := t.spans()
	if t.Content == s.content && t.Wrap == s.wrap && slices.Equal(spans, s.spans) {
		return
	}
	measurer := s.widget.SetText(t.Content, spans, t.Wrap)
	cx.SetLayoutMeasurer(el.Node(), measurer)
	s.content, s.spans, s.wrap = t.Content, spans, t.Wrap
}

func (t Text[T]) Message(el core.PodMut, state core.State, cx *core.Context, data *T, msg *core.Message) core.Action {
	s := core.StateOf[*textState]("views.Text.Message", state)
	if isLayout(msg) {
		s.size.apply(cx, el.Node(), s.widget)
	}
	return core.Action{}
}

func (t Text[T]) Teardown(el core.Pod, state core.State, cx *core.Context) {
	s := core.StateOf[*textState]("views.Text.Teardown", state)
	s.widget.Teardown()
	cx.RemoveLayoutNode(el.Node)
}
