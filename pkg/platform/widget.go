package platform

import (
	"time"

	"github.com/go-drift/native/pkg/graphics"
	"github.com/go-drift/native/pkg/layout"
)

// Widget is a native widget handle. Each element owns exactly one widget
// and releases it with Teardown.
type Widget interface {
	// Teardown destroys the native widget. The handle must not be used
	// afterwards.
	Teardown()
}

// Parent is implemented by widgets that hold child widgets. ReplaceChild
// swaps the child at index for another one without changing the number of
// children. Single-child widgets ignore the index.
type Parent interface {
	ReplaceChild(index int, child Widget)
}

// Sizer is implemented by widgets whose size is driven by the layout tree.
type Sizer interface {
	SetSize(width, height float32)
}

// Group is a container with ordered children.
type Group interface {
	Widget
	Parent
	Sizer

	InsertChild(index int, child Widget)
	RemoveChild(index int)
	SwapChildren(a, b int)

	// SetChildLayout positions the child at index relative to the group.
	SetChildLayout(index int, x, y, width, height float32)

	SetBackgroundColor(color graphics.Color)
	SetBorderColor(color graphics.Color)
	// Widths and radii are ordered top, right, bottom, left and top-left,
	// top-right, bottom-right, bottom-left.
	SetBorderWidth(width [4]float32)
	SetCornerRadii(radii [4]float32)
}

// Text displays a run of styled text. Each change returns a measurer for the
// new content.
type Text interface {
	Widget
	Sizer

	SetText(text string, spans []graphics.TextSpan, wrap graphics.Wrap) layout.Measurer
}

// Newline selects the key combination that inserts a line break in a text
// input. Any other combination submits.
type Newline int

const (
	NewlineNone Newline = iota
	NewlineEnter
	NewlineShiftEnter
)

// TextInput is an editable text field.
type TextInput interface {
	Widget
	Sizer

	SetOnChange(fn func(text string))
	SetOnSubmit(fn func(text string))

	SetNewline(newline Newline)
	SetAcceptTab(accept bool)

	SetFont(font graphics.Font)
	SetText(text string)
	SetPlaceholderFont(font graphics.Font)
	SetPlaceholderText(text string)

	Measurer() layout.Measurer
}

// Image displays encoded image data.
type Image interface {
	Widget
	Sizer

	// LoadData decodes data and displays it. On error the widget shows
	// nothing and the returned measurer reports an empty size.
	LoadData(data []byte) (layout.Measurer, error)
	// SetTint colors the image. Transparent removes the tint.
	SetTint(color graphics.Color)
}

// Scroll clips a single child and lets the user scroll it.
type Scroll interface {
	Widget
	Parent
	Sizer

	SetDirection(direction layout.Direction)
	SetContentSize(width, height float32)
}

// Press is a pointer button transition reported by a pressable widget.
type Press int

const (
	PressDown Press = iota
	PressUp
	PressCancel
)

func (p Press) String() string {
	switch p {
	case PressDown:
		return "down"
	case PressUp:
		return "up"
	case PressCancel:
		return "cancel"
	default:
		return "unknown"
	}
}

// Pressable wraps a single child and reports pointer and focus changes.
type Pressable interface {
	Widget
	Parent
	Sizer

	SetOnPress(fn func(press Press))
	SetOnHover(fn func(hovered bool))
	SetOnFocus(fn func(focused bool))
}

// Window is a top-level window with a single child.
type Window interface {
	Widget
	Parent

	// Size returns the current size of the content area.
	Size() (width, height float32)
	SetSize(width, height float32)
	SetMinSize(width, height float32)
	SetTitle(title string)

	SetOnResize(fn func())
	SetOnCloseRequested(fn func())

	// SetOnAnimationFrame registers the frame callback used while
	// animating. Delta is the time since the previous frame.
	SetOnAnimationFrame(fn func(delta time.Duration))
	StartAnimating()
	StopAnimating()
}
