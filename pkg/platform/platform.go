// Package platform defines the contract between the element tree and a
// native widget backend.
//
// A backend is any value implementing some of the factory interfaces below.
// New collects them into a Platform capability set; the element tree asks
// the Platform for widgets and never sees the backend type. Every widget
// kind is optional, but building a view whose kind is missing is a
// programming error and panics.
package platform

import (
	"github.com/go-drift/native/pkg/errors"
	"github.com/go-drift/native/pkg/graphics"
	"github.com/go-drift/native/pkg/layout"
)

// GroupFactory creates container widgets.
type GroupFactory interface {
	NewGroup() Group
}

// TextFactory creates text widgets together with a measurer for their
// initial content.
type TextFactory interface {
	NewText(text string, spans []graphics.TextSpan, wrap graphics.Wrap) (Text, layout.Measurer)
}

// TextInputFactory creates editable text fields.
type TextInputFactory interface {
	NewTextInput() TextInput
}

// ImageFactory creates image widgets.
type ImageFactory interface {
	NewImage() Image
}

// ScrollFactory creates scroll containers around an existing widget.
type ScrollFactory interface {
	NewScroll(contents Widget) Scroll
}

// PressableFactory creates pressable wrappers around an existing widget.
type PressableFactory interface {
	NewPressable(contents Widget) Pressable
}

// WindowFactory creates top-level windows.
type WindowFactory interface {
	NewWindow(contents Widget) Window
}

// LayerShellFactory creates windows anchored to the screen edges by the
// compositor. Only some backends provide it.
type LayerShellFactory interface {
	NewLayerShell(contents Widget) LayerShellWindow
}

// Quitter is implemented by backends that own a process-level event loop.
type Quitter interface {
	Quit()
}

// Platform is the capability set of a backend.
type Platform struct {
	Groups      GroupFactory
	Texts       TextFactory
	TextInputs  TextInputFactory
	Images      ImageFactory
	Scrolls     ScrollFactory
	Pressables  PressableFactory
	Windows     WindowFactory
	LayerShells LayerShellFactory
	Quitter     Quitter
}

// New collects the factories backend implements.
func New(backend any) *Platform {
	p := &Platform{}
	p.Groups, _ = backend.(GroupFactory)
	p.Texts, _ = backend.(TextFactory)
	p.TextInputs, _ = backend.(TextInputFactory)
	p.Images, _ = backend.(ImageFactory)
	p.Scrolls, _ = backend.(ScrollFactory)
	p.Pressables, _ = backend.(PressableFactory)
	p.Windows, _ = backend.(WindowFactory)
	p.LayerShells, _ = backend.(LayerShellFactory)
	p.Quitter, _ = backend.(Quitter)
	return p
}

func missing(kind string) {
	errors.Invariant("platform.New"+kind, "backend does not provide %s widgets", kind)
}

// NewGroup creates a container widget.
func (p *Platform) NewGroup() Group {
	if p.Groups == nil {
		missing("Group")
	}
	return p.Groups.NewGroup()
}

// NewText creates a text widget.
func (p *Platform) NewText(text string, spans []graphics.TextSpan, wrap graphics.Wrap) (Text, layout.Measurer) {
	if p.Texts == nil {
		missing("Text")
	}
	return p.Texts.NewText(text, spans, wrap)
}

// NewTextInput creates an editable text field.
func (p *Platform) NewTextInput() TextInput {
	if p.TextInputs == nil {
		missing("TextInput")
	}
	return p.TextInputs.NewTextInput()
}

// NewImage creates an image widget.
func (p *Platform) NewImage() Image {
	if p.Images == nil {
		missing("Image")
	}
	return p.Images.NewImage()
}

// NewScroll creates a scroll container around contents.
func (p *Platform) NewScroll(contents Widget) Scroll {
	if p.Scrolls == nil {
		missing("Scroll")
	}
	return p.Scrolls.NewScroll(contents)
}

// NewPressable creates a pressable wrapper around contents.
func (p *Platform) NewPressable(contents Widget) Pressable {
	if p.Pressables == nil {
		missing("Pressable")
	}
	return p.Pressables.NewPressable(contents)
}

// NewWindow creates a top-level window showing contents.
func (p *Platform) NewWindow(contents Widget) Window {
	if p.Windows == nil {
		missing("Window")
	}
	return p.Windows.NewWindow(contents)
}

// Quit asks the backend to leave its event loop. It is a no-op for
// backends without one.
func (p *Platform) Quit() {
	if p.Quitter != nil {
		p.Quitter.Quit()
	}
}
