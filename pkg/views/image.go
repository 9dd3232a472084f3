package views

import (
	"bytes"

	"github.com/go-drift/native/pkg/core"
	"github.com/go-drift/native/pkg/errors"
	"github.com/go-drift/native/pkg/graphics"
	"github.com/go-drift/native/pkg/layout"
	"github.com/go-drift/native/pkg/platform"
)

// Image displays encoded image data. Data that cannot be decoded is
// reported and shown as an empty image.
type Image[T any] struct {
	Data []byte
	// Tint colors the image. The zero value leaves it untinted.
	Tint  graphics.Color
	Style layout.Style
}

type imageState struct {
	widget platform.Image
	data   []byte
	tint   graphics.Color
	style  layout.Style
	size   sizeCache
}

var emptyImage = layout.MeasureFunc(func(layout.Known, layout.Space) layout.Size {
	return layout.Size{}
})

func loadImage(op string, widget platform.Image, data []byte) layout.Measurer {
	measurer, err := widget.LoadData(data)
	if err != nil {
		errors.Report(&errors.NativeError{
			Op:   op,
			Kind: errors.KindResource,
			Err:  err,
		})
	}
	if measurer == nil {
		return emptyImage
	}
	return measurer
}

func (i Image[T]) Build(cx *core.Context, data *T) (core.Pod, core.State) {
	widget := cx.Platform.NewImage()
	widget.SetTint(i.Tint)
	measurer := loadImage("views.Image.Build", widget, i.Data)
	node := cx.NewLayoutLeaf(i.Style, measurer)
	s := &imageState{widget: widget, data: i.Data, tint: i.Tint, style: i.Style}
	return core.Pod{Node: node, Widget: widget}, s
}

func (i Image[T]) Rebuild(el core.PodMut, state core.State, cx *core.Context, data *T) {
	s := core.StateOf[*imageState]("views.Image.Rebuild", state)
	if i.Style != s.style {
		cx.SetLayoutStyle(el.Node(), i.Style)
		s.style = i.Style
	}
	if i.Tint != s.tint {
		s.widget.SetTint(i.Tint)
		s.tint = i.Tint
	}
	if !bytes.Equal(i.Data, s.data) {
		cx.SetLayoutMeasurer(el.Node(), loadImage("views.Image.Rebuild", s.widget, i.Data))
		s.data = i.Data
	}
}

func (i Image[T]) Message(el core.PodMut, state core.State, cx *core.Context, data *T, msg *core.Message) core.Action {
	s := core.StateOf[*imageState]("views.Image.Message", state)
	if isLayout(msg) {
		s.size.apply(cx, el.Node(), s.widget)
	}
	return core.Action{}
}

func (i Image[T]) Teardown(el core.Pod, state core.State, cx *core.Context) {
	s := core.StateOf[*imageState]("views.Image.Teardown", state)
	s.widget.Teardown()
	cx.RemoveLayoutNode(el.Node)
}
