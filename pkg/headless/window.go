package headless

import (
	"time"

	"github.com/go-drift/native/pkg/platform"
)

// Size of a new window.
const (
	DefaultWindowWidth  = 800
	DefaultWindowHeight = 600
)

// Window is a headless top-level window.
type Window struct {
	base
	child     platform.Widget
	title     string
	minWidth  float32
	minHeight float32
	animating bool

	onResize func()
	onClose  func()
	onFrame  func(time.Duration)
}

// NewWindow implements platform.WindowFactory.
func (b *Backend) NewWindow(contents platform.Widget) platform.Window {
	return b.newWindow("Window", contents)
}

func (b *Backend) newWindow(kind string, contents platform.Widget) *Window {
	w := &Window{base: b.newBase(kind), child: contents}
	w.width, w.height = DefaultWindowWidth, DefaultWindowHeight
	b.register(w, w.id)
	b.windows = append(b.windows, w)
	return w
}

// Child returns the root widget of the window.
func (w *Window) Child() platform.Widget { return w.child }

// Title returns the window title.
func (w *Window) Title() string { return w.title }

// MinSize returns the minimum size set by the layout.
func (w *Window) MinSize() (width, height float32) { return w.minWidth, w.minHeight }

// Animating reports whether the window is delivering animation frames.
func (w *Window) Animating() bool { return w.animating }

func (w *Window) ReplaceChild(index int, child platform.Widget) {
	w.op("ReplaceChild")
	w.child = child
}

// SetSize resizes the window without reporting a resize, the way native
// toolkits treat programmatic resizes. The size never drops below the
// minimum.
func (w *Window) SetSize(width, height float32) {
	w.op("SetSize")
	w.width, w.height = max(width, w.minWidth), max(height, w.minHeight)
}

func (w *Window) SetMinSize(width, height float32) {
	w.op("SetMinSize")
	w.minWidth, w.minHeight = width, height
	w.width, w.height = max(w.width, width), max(w.height, height)
}

func (w *Window) SetTitle(title string) {
	w.op("SetTitle")
	w.title = title
}

func (w *Window) SetOnResize(fn func())                            { w.onResize = fn }
func (w *Window) SetOnCloseRequested(fn func())                    { w.onClose = fn }
func (w *Window) SetOnAnimationFrame(fn func(delta time.Duration)) { w.onFrame = fn }

func (w *Window) StartAnimating() {
	w.op("StartAnimating")
	w.animating = true
}

func (w *Window) StopAnimating() {
	w.op("StopAnimating")
	w.animating = false
}

func (w *Window) Teardown() {
	w.base.Teardown()
	for i, other := range w.b.windows {
		if other == w {
			w.b.windows = append(w.b.windows[:i], w.b.windows[i+1:]...)
			break
		}
	}
}

// Resize changes the size as the user would and reports it. The size is
// clamped to the minimum size.
func (w *Window) Resize(width, height float32) {
	w.width, w.height = max(width, w.minWidth), max(height, w.minHeight)
	if w.onResize != nil {
		w.onResize()
	}
}

// RequestClose reports that the user asked to close the window.
func (w *Window) RequestClose() {
	if w.onClose != nil {
		w.onClose()
	}
}

// Frame delivers an animation frame if the window is animating. It reports
// whether a frame was delivered.
func (w *Window) Frame(delta time.Duration) bool {
	if !w.animating || w.onFrame == nil {
		return false
	}
	w.onFrame(delta)
	return true
}

// LayerShell is a headless layer-shell surface.
type LayerShell struct {
	*Window
	Layer         platform.Layer
	Anchor        platform.Anchor
	Margins       [4]int
	ExclusiveZone platform.ExclusiveZone
	KeyboardInput platform.KeyboardInput
}

// NewLayerShell implements platform.LayerShellFactory.
func (b *Backend) NewLayerShell(contents platform.Widget) platform.LayerShellWindow {
	return &LayerShell{Window: b.newWindow("LayerShell", contents)}
}

func (l *LayerShell) SetLayer(layer platform.Layer) {
	l.op("SetLayer")
	l.Layer = layer
}

func (l *LayerShell) SetAnchor(anchor platform.Anchor) {
	l.op("SetAnchor")
	l.Anchor = anchor
}

func (l *LayerShell) SetMargins(margins [4]int) {
	l.op("SetMargins")
	l.Margins = margins
}

func (l *LayerShell) SetExclusiveZone(zone platform.ExclusiveZone) {
	l.op("SetExclusiveZone")
	l.ExclusiveZone = zone
}

func (l *LayerShell) SetKeyboardInput(input platform.KeyboardInput) {
	l.op("SetKeyboardInput")
	l.KeyboardInput = input
}
