package views

import (
	"github.com/go-drift/native/pkg/core"
	"github.com/go-drift/native/pkg/graphics"
	"github.com/go-drift/native/pkg/layout"
	"github.com/go-drift/native/pkg/platform"
)

// TextInput is an editable text field.
//
// Text is pushed to the widget only when it differs from what the widget
// last showed, so echoing the value reported by OnChange back into Text
// does not reset the cursor.
type TextInput[T any] struct {
	Text            string
	Placeholder     string
	Font            graphics.Font
	PlaceholderFont graphics.Font
	Newline         platform.Newline
	AcceptTab       bool
	Style           layout.Style

	OnChange func(data *T, text string) core.Action
	OnSubmit func(data *T, text string) core.Action
}

type textChanged struct{ text string }

type textSubmitted struct{ text string }

type textInputState[T any] struct {
	id     core.ViewID
	widget platform.TextInput

	text            string
	placeholder     string
	font            graphics.Font
	placeholderFont graphics.Font
	newline         platform.Newline
	acceptTab       bool
	style           layout.Style
	size            sizeCache

	onChange func(data *T, text string) core.Action
	onSubmit func(data *T, text string) core.Action
}

func (t TextInput[T]) fonts() (graphics.Font, graphics.Font) {
	font, placeholder := t.Font, t.PlaceholderFont
	if font == (graphics.Font{}) {
		font = graphics.DefaultFont()
	}
	if placeholder == (graphics.Font{}) {
		placeholder = font
		placeholder.Color = font.Color.Fade(0.5)
	}
	return font, placeholder
}

func (t TextInput[T]) Build(cx *core.Context, data *T) (core.Pod, core.State) {
	font, placeholderFont := t.fonts()
	widget := cx.Platform.NewTextInput()
	widget.SetFont(font)
	widget.SetText(t.Text)
	widget.SetPlaceholderFont(placeholderFont)
	widget.SetPlaceholderText(t.Placeholder)
	widget.SetNewline(t.Newline)
	widget.SetAcceptTab(t.AcceptTab)

	s := &textInputState[T]{
		id:              cx.NewViewID(),
		widget:          widget,
		text:            t.Text,
		placeholder:     t.Placeholder,
		font:            font,
		placeholderFont: placeholderFont,
		newline:         t.Newline,
		acceptTab:       t.AcceptTab,
		style:           t.Style,
		onChange:        t.OnChange,
		onSubmit:        t.OnSubmit,
	}

	proxy, id := cx.Proxy(), s.id
	widget.SetOnChange(func(text string) {
		proxy.Message(core.NewMessage(textChanged{text: text}, id))
	})
	widget.SetOnSubmit(func(text string) {
		proxy.Message(core.NewMessage(textSubmitted{text: text}, id))
	})

	node := cx.NewLayoutLeaf(t.Style, widget.Measurer())
	return core.Pod{Node: node, Widget: widget}, s
}

func (t TextInput[T]) Rebuild(el core.PodMut, state core.State, cx *core.Context, data *T) {
	s := core.StateOf[*textInputState[T]]("views.TextInput.Rebuild", state)
	font, placeholderFont := t.fonts()
	relayout := false

	if t.Text != s.text {
		s.widget.SetText(t.Text)
		s.text = t.Text
		relayout = true
	}
	if t.Placeholder != s.placeholder {
		s.widget.SetPlaceholderText(t.Placeholder)
		s.placeholder = t.Placeholder
		relayout = true
	}
	if font != s.font {
		s.widget.SetFont(font)
		s.font = font
		relayout = true
	}
	if placeholderFont != s.placeholderFont {
		s.widget.SetPlaceholderFont(placeholderFont)
		s.placeholderFont = placeholderFont
		relayout = true
	}
	if t.Newline != s.newline {
		s.widget.SetNewline(t.Newline)
		s.newline = t.Newline
	}
	if t.AcceptTab != s.acceptTab {
		s.widget.SetAcceptTab(t.AcceptTab)
		s.acceptTab = t.AcceptTab
	}
	if t.Style != s.style {
		cx.SetLayoutStyle(el.Node(), t.Style)
		s.style = t.Style
	}
	if relayout {
		cx.SetLayoutMeasurer(el.Node(), s.widget.Measurer())
	}
	s.onChange, s.onSubmit = t.OnChange, t.OnSubmit
}

func (t TextInput[T]) Message(el core.PodMut, state core.State, cx *core.Context, data *T, msg *core.Message) core.Action {
	s := core.StateOf[*textInputState[T]]("views.TextInput.Message", state)
	if isLayout(msg) {
		s.size.apply(cx, el.Node(), s.widget)
		return core.Action{}
	}
	if m, ok := core.TakeTargeted[textChanged](msg, s.id); ok {
		s.text = m.text
		cx.SetLayoutMeasurer(el.Node(), s.widget.Measurer())
		if s.onChange != nil {
			return s.onChange(data, m.text)
		}
		return core.Action{}
	}
	if m, ok := core.TakeTargeted[textSubmitted](msg, s.id); ok && s.onSubmit != nil {
		return s.onSubmit(data, m.text)
	}
	return core.Action{}
}

func (t TextInput[T]) Teardown(el core.Pod, state core.State, cx *core.Context) {
	s := core.StateOf[*textInputState[T]]("views.TextInput.Teardown", state)
	s.widget.Teardown()
	cx.RemoveLayoutNode(el.Node)
}
