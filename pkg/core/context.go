package core

import (
	"github.com/go-drift/native/pkg/errors"
	"github.com/go-drift/native/pkg/layout"
	"github.com/go-drift/native/pkg/platform"
)

// Animator is the animation frame source of a window. Calls are counted:
// frames run while more starts than stops have been requested.
type Animator interface {
	StartAnimating()
	StopAnimating()
}

type windowScope struct {
	id       ViewID
	animator Animator
	relayout bool
}

// Context is threaded through every Build, Rebuild, Message and Teardown
// call. It owns the layout tree and gives access to the platform, the
// proxy and the view id allocator. It is only used on the UI goroutine.
type Context struct {
	Platform *platform.Platform

	layout layout.Service
	proxy  Proxy
	ids    IDAllocator
	window *windowScope
}

// NewContext creates a context for one application instance.
func NewContext(p *platform.Platform, svc layout.Service, proxy Proxy) *Context {
	return &Context{Platform: p, layout: svc, proxy: proxy}
}

// Proxy returns the handle native callbacks capture.
func (cx *Context) Proxy() Proxy {
	return cx.proxy
}

// NewViewID allocates an id for an element being built.
func (cx *Context) NewViewID() ViewID {
	return cx.ids.Next()
}

// Layout returns the layout service.
func (cx *Context) Layout() layout.Service {
	return cx.layout
}

// WithWindow runs fn with the window id as the active layout controller
// and animator as the active frame source. Scopes nest; the previous
// controller is restored when fn returns.
func (cx *Context) WithWindow(id ViewID, animator Animator, fn func()) {
	prev := cx.window
	cx.window = &windowScope{id: id, animator: animator}
	defer func() { cx.window = prev }()
	fn()
}

// Relayout asks the active window to recompute its layout. Only the first
// request of a scope sends a message.
func (cx *Context) Relayout() {
	w := cx.window
	if w == nil || w.relayout {
		return
	}
	w.relayout = true
	cx.proxy.Message(NewMessage(WindowRelayout{}, w.id))
}

// StartAnimating asks the active window for animation frames.
func (cx *Context) StartAnimating() {
	if cx.window == nil || cx.window.animator == nil {
		errors.Logf("animation requested outside a window")
		return
	}
	cx.window.animator.StartAnimating()
}

// StopAnimating releases a StartAnimating request.
func (cx *Context) StopAnimating() {
	if cx.window == nil || cx.window.animator == nil {
		return
	}
	cx.window.animator.StopAnimating()
}

// NewLayoutNode creates a container node.
func (cx *Context) NewLayoutNode(style layout.Style, children ...layout.NodeID) layout.NodeID {
	id, err := cx.layout.NewNode(style, children...)
	errors.Must("core.NewLayoutNode", err)
	cx.Relayout()
	return id
}

// NewLayoutLeaf creates a measured leaf node.
func (cx *Context) NewLayoutLeaf(style layout.Style, measurer layout.Measurer) layout.NodeID {
	id, err := cx.layout.NewLeaf(style, measurer)
	errors.Must("core.NewLayoutLeaf", err)
	cx.Relayout()
	return id
}

// InsertLayoutChild inserts child at index of parent.
func (cx *Context) InsertLayoutChild(parent layout.NodeID, index int, child layout.NodeID) {
	errors.Must("core.InsertLayoutChild", cx.layout.InsertChild(parent, index, child))
	cx.Relayout()
}

// RemoveLayoutChild detaches the child at index of parent.
func (cx *Context) RemoveLayoutChild(parent layout.NodeID, index int) layout.NodeID {
	id, err := cx.layout.RemoveChildAt(parent, index)
	errors.Must("core.RemoveLayoutChild", err)
	cx.Relayout()
	return id
}

// ReplaceLayoutChild puts child at index of parent.
func (cx *Context) ReplaceLayoutChild(parent layout.NodeID, index int, child layout.NodeID) {
	_, err := cx.layout.ReplaceChild(parent, index, child)
	errors.Must("core.ReplaceLayoutChild", err)
	cx.Relayout()
}

// RemoveLayoutNode deletes node from the layout tree.
func (cx *Context) RemoveLayoutNode(node layout.NodeID) {
	errors.Must("core.RemoveLayoutNode", cx.layout.RemoveNode(node))
	cx.Relayout()
}

// SetLayoutStyle replaces the style of node.
func (cx *Context) SetLayoutStyle(node layout.NodeID, style layout.Style) {
	errors.Must("core.SetLayoutStyle", cx.layout.SetStyle(node, style))
	cx.Relayout()
}

// SetLayoutMeasurer replaces the measurer of a leaf node.
func (cx *Context) SetLayoutMeasurer(node layout.NodeID, measurer layout.Measurer) {
	errors.Must("core.SetLayoutMeasurer", cx.layout.SetMeasurer(node, measurer))
	cx.Relayout()
}

// LayoutChildren returns the children of node.
func (cx *Context) LayoutChildren(node layout.NodeID) []layout.NodeID {
	children, err := cx.layout.Children(node)
	errors.Must("core.LayoutChildren", err)
	return children
}

// ComputeLayout lays out the tree rooted at node.
func (cx *Context) ComputeLayout(node layout.NodeID, available layout.Space) {
	errors.Must("core.ComputeLayout", cx.layout.Compute(node, available))
}

// ComputedLayout returns the geometry of node, reporting false if it has
// not been laid out yet.
func (cx *Context) ComputedLayout(node layout.NodeID) (layout.Layout, bool) {
	l, err := cx.layout.Layout(node)
	if err != nil {
		if errors.Is(err, layout.ErrNotComputed) {
			return layout.Layout{}, false
		}
		errors.Must("core.ComputedLayout", err)
	}
	return l, true
}
