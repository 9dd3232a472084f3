package core

import (
	"github.com/go-drift/native/pkg/errors"
	"github.com/go-drift/native/pkg/layout"
	"github.com/go-drift/native/pkg/platform"
)

// Pod is an element: a layout node and the native widget built for it.
// Composite views such as pressables wrap their contents' widget and share
// the contents' layout node.
type Pod struct {
	Node   layout.NodeID
	Widget platform.Widget
}

// PodMut is a short-lived cursor to an element in its parent. It carries
// the parent's layout node, the parent widget and the element's index so
// that the element can be replaced in place. PodMuts are only valid for
// the duration of the call they are passed to.
type PodMut struct {
	ParentNode layout.NodeID
	Parent     platform.Parent
	Index      int
	Pod        *Pod

	// replaced is called after Replace so the container can forget state
	// kept for the previous element.
	replaced func()
}

// Node returns the element's layout node.
func (m PodMut) Node() layout.NodeID {
	return m.Pod.Node
}

// Widget returns the element's widget.
func (m PodMut) Widget() platform.Widget {
	return m.Pod.Widget
}

// Replace puts pod at the element's position in both the parent widget and
// the parent layout node and returns the previous element. The previous
// element is detached but not torn down.
func (m PodMut) Replace(cx *Context, pod Pod) Pod {
	if pod.Node == 0 || pod.Widget == nil {
		errors.Invariant("core.PodMut.Replace", "replacement element has no node or widget")
	}
	old := *m.Pod
	if m.ParentNode != 0 && old.Node != pod.Node {
		cx.ReplaceLayoutChild(m.ParentNode, m.Index, pod.Node)
	}
	if m.Parent != nil {
		m.Parent.ReplaceChild(m.Index, pod.Widget)
	}
	*m.Pod = pod
	if m.replaced != nil {
		m.replaced()
	}
	return old
}

// Reparent returns a cursor for a child element that shares this
// element's position in the layout tree but lives inside parent widget.
func (m PodMut) Reparent(parent platform.Parent, pod *Pod) PodMut {
	return PodMut{ParentNode: m.ParentNode, Parent: parent, Index: m.Index, Pod: pod}
}

// Downcast returns the element's widget as W. It reports false, leaving
// the pod untouched, when the widget has another type.
func Downcast[W platform.Widget](pod Pod) (W, bool) {
	w, ok := pod.Widget.(W)
	return w, ok
}
