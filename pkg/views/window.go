package views

import (
	"time"

	"github.com/go-drift/native/pkg/core"
	"github.com/go-drift/native/pkg/errors"
	"github.com/go-drift/native/pkg/layout"
	"github.com/go-drift/native/pkg/platform"
)

// WindowSizing selects who decides the size of a window.
type WindowSizing int

const (
	// UserControlled windows keep the size the user gives them. Their
	// minimum size follows the contents.
	UserControlled WindowSizing = iota
	// ContentFit windows are resized to the minimum size of their contents
	// after every layout.
	ContentFit
)

func (s WindowSizing) String() string {
	switch s {
	case UserControlled:
		return "user"
	case ContentFit:
		return "content"
	default:
		return "unknown"
	}
}

// LayerShellOptions turn a window into a desktop shell surface such as a
// panel or an overlay. Backends without layer-shell support fall back to a
// normal window.
type LayerShellOptions struct {
	Layer         platform.Layer
	Anchor        platform.Anchor
	Margins       [4]int
	ExclusiveZone platform.ExclusiveZone
	KeyboardInput platform.KeyboardInput
}

// Window is a top-level window showing Contents. It owns the root of the
// layout tree and recomputes the layout whenever its contents change or the
// window is resized. Closing the window quits the application.
type Window[T any] struct {
	Title  string
	Sizing WindowSizing
	// Width and Height are the initial size. Zero leaves the choice to the
	// backend.
	Width, Height float32
	Contents      core.View[T]
	LayerShell    *LayerShellOptions
}

// WindowAnimationFrame is delivered to a window by its backend while the
// window is animating.
type WindowAnimationFrame struct {
	Delta time.Duration
}

type windowResized struct{}

type windowCloseRequested struct{}

type windowState[T any] struct {
	id     core.ViewID
	window platform.Window
	layer  platform.LayerShellWindow
	root   layout.NodeID

	contents core.Pod
	state    core.State
	view     core.View[T]

	title         string
	sizing        WindowSizing
	width, height float32
	layerShell    LayerShellOptions

	minSize    layout.Size
	minSizeSet bool
	animating  int
}

// StartAnimating counts a request for frames. Frames start with the first
// request.
func (s *windowState[T]) StartAnimating() {
	s.animating++
	if s.animating == 1 && s.window != nil {
		s.window.StartAnimating()
	}
}

// StopAnimating releases a request for frames. Frames stop with the last
// release.
func (s *windowState[T]) StopAnimating() {
	if s.animating == 0 {
		errors.Logf("window %d: unbalanced StopAnimating", s.id)
		return
	}
	s.animating--
	if s.animating == 0 && s.window != nil {
		s.window.StopAnimating()
	}
}

func (s *windowState[T]) inner() core.PodMut {
	return core.PodMut{ParentNode: s.root, Parent: s.window, Index: 0, Pod: &s.contents}
}

func (w Window[T]) layerShell(cx *core.Context, contents platform.Widget) (platform.Window, platform.LayerShellWindow) {
	if w.LayerShell == nil {
		return cx.Platform.NewWindow(contents), nil
	}
	if cx.Platform.LayerShells == nil {
		errors.Report(&errors.NativeError{
			Op:   "views.Window.Build",
			Kind: errors.KindPlatform,
			Err:  errors.New("layer shell not supported by backend, using a normal window"),
		})
		return cx.Platform.NewWindow(contents), nil
	}
	ls := cx.Platform.LayerShells.NewLayerShell(contents)
	applyLayerShell(ls, *w.LayerShell)
	return ls, ls
}

func applyLayerShell(ls platform.LayerShellWindow, opts LayerShellOptions) {
	ls.SetLayer(opts.Layer)
	ls.SetAnchor(opts.Anchor)
	ls.SetMargins(opts.Margins)
	ls.SetExclusiveZone(opts.ExclusiveZone)
	ls.SetKeyboardInput(opts.KeyboardInput)
}

func (w Window[T]) BuildEffect(cx *core.Context, data *T) core.State {
	s := &windowState[T]{
		id:     cx.NewViewID(),
		view:   w.Contents,
		title:  w.Title,
		sizing: w.Sizing,
		width:  w.Width,
		height: w.Height,
	}
	if w.LayerShell != nil {
		s.layerShell = *w.LayerShell
	}

	cx.WithWindow(s.id, s, func() {
		s.contents, s.state = w.Contents.Build(cx, data)
		s.root = cx.NewLayoutNode(layout.ColumnStyle(), s.contents.Node)
		s.window, s.layer = w.layerShell(cx, s.contents.Widget)
	})

	s.window.SetTitle(w.Title)
	if w.Width > 0 && w.Height > 0 {
		s.window.SetSize(w.Width, w.Height)
	}

	proxy, id := cx.Proxy(), s.id
	s.window.SetOnResize(func() {
		proxy.Message(core.NewMessage(windowResized{}, id))
	})
	s.window.SetOnCloseRequested(func() {
		proxy.Message(core.NewMessage(windowCloseRequested{}, id))
	})
	s.window.SetOnAnimationFrame(func(delta time.Duration) {
		proxy.Message(core.NewMessage(WindowAnimationFrame{Delta: delta}, id))
	})
	if s.animating > 0 {
		s.window.StartAnimating()
	}
	return s
}

func (w Window[T]) RebuildEffect(state core.State, cx *core.Context, data *T) {
	s := core.StateOf[*windowState[T]]("views.Window.Rebuild", state)
	cx.WithWindow(s.id, s, func() {
		if w.Title != s.title {
			s.window.SetTitle(w.Title)
			s.title = w.Title
		}
		if w.Sizing != s.sizing {
			s.sizing = w.Sizing
			cx.Relayout()
		}
		if (w.Width != s.width || w.Height != s.height) && w.Width > 0 && w.Height > 0 {
			s.window.SetSize(w.Width, w.Height)
			s.width, s.height = w.Width, w.Height
			cx.Relayout()
		}
		if w.LayerShell != nil && s.layer != nil && *w.LayerShell != s.layerShell {
			applyLayerShell(s.layer, *w.LayerShell)
			s.layerShell = *w.LayerShell
		}
		rebuildChild("views.Window.Rebuild", s.view, w.Contents, s.inner(), s.state, cx, data)
		s.view = w.Contents
	})
}

// relayout runs the two layout passes. The first finds the smallest size
// the contents fit in and makes it the window's minimum; the second lays
// the contents out at the actual window size. Styles of the root are
// changed without going through the context so the passes do not request
// another relayout.
func (s *windowState[T]) relayout(cx *core.Context, data *T) core.Action {
	svc := cx.Layout()
	style := layout.ColumnStyle()
	errors.Must("views.Window.relayout", svc.SetStyle(s.root, style))
	cx.ComputeLayout(s.root, layout.Space{Width: layout.MinContent, Height: layout.MinContent})
	if l, ok := cx.ComputedLayout(s.root); ok {
		if !s.minSizeSet || l.Size != s.minSize {
			s.window.SetMinSize(l.Size.Width, l.Size.Height)
			s.minSize, s.minSizeSet = l.Size, true
		}
		if s.sizing == ContentFit {
			s.window.SetSize(l.Size.Width, l.Size.Height)
		}
	}

	width, height := s.window.Size()
	style.Size = layout.Dimensions{Width: layout.Length(width), Height: layout.Length(height)}
	errors.Must("views.Window.relayout", svc.SetStyle(s.root, style))
	cx.ComputeLayout(s.root, layout.DefiniteSpace(width, height))

	msg := core.Broadcast(core.Lifecycle{Kind: core.LifecycleLayout})
	return s.view.Message(s.inner(), s.state, cx, data, msg)
}

func (w Window[T]) MessageEffect(state core.State, cx *core.Context, data *T, msg *core.Message) core.Action {
	s := core.StateOf[*windowState[T]]("views.Window.Message", state)
	var action core.Action
	cx.WithWindow(s.id, s, func() {
		if _, ok := core.TakeTargeted[core.WindowRelayout](msg, s.id); ok {
			action = s.relayout(cx, data)
			return
		}
		if _, ok := core.TakeTargeted[windowResized](msg, s.id); ok {
			action = s.relayout(cx, data)
			return
		}
		if _, ok := core.TakeTargeted[windowCloseRequested](msg, s.id); ok {
			errors.Logf("window %d: close requested", s.id)
			action = core.Quit()
			return
		}
		if frame, ok := core.TakeTargeted[WindowAnimationFrame](msg, s.id); ok {
			lc := core.Broadcast(core.Lifecycle{Kind: core.LifecycleAnimate, Delta: frame.Delta})
			action = s.view.Message(s.inner(), s.state, cx, data, lc)
			return
		}
		action = s.view.Message(s.inner(), s.state, cx, data, msg)
	})
	return action
}

func (w Window[T]) TeardownEffect(state core.State, cx *core.Context) {
	s := core.StateOf[*windowState[T]]("views.Window.Teardown", state)
	s.view.Teardown(s.contents, s.state, cx)
	if s.animating > 0 {
		s.window.StopAnimating()
		s.animating = 0
	}
	s.window.Teardown()
	errors.Must("views.Window.Teardown", cx.Layout().RemoveNode(s.root))
}
