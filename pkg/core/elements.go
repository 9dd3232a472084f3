package core

import (
	"slices"

	"github.com/go-drift/native/pkg/errors"
	"github.com/go-drift/native/pkg/layout"
	"github.com/go-drift/native/pkg/platform"
)

// Elements is a cursor over the children of a container. Next advances
// over existing children; Insert, Remove and Swap act at the cursor
// position and keep the widget children, the layout children and the
// element list in step.
type Elements interface {
	// Next returns the element at the cursor and advances it.
	Next(cx *Context) (PodMut, bool)
	// Insert adds pod at the cursor and advances past it.
	Insert(cx *Context, pod Pod)
	// Remove detaches the element at the cursor and returns it. The
	// element must still be torn down by the caller.
	Remove(cx *Context) Pod
	// Swap exchanges the element at the cursor with the one offset
	// positions after it.
	Swap(cx *Context, offset int)
}

type frame struct {
	x, y, width, height float32
	placed              bool
}

// GroupChildren is the element list of a container widget.
type GroupChildren struct {
	node   layout.NodeID
	group  platform.Group
	pods   []Pod
	frames []frame

	size        layout.Size
	border      [4]float32
	sizeApplied bool
}

// NewGroupChildren creates an empty element list for group whose layout
// node is node.
func NewGroupChildren(node layout.NodeID, group platform.Group) *GroupChildren {
	return &GroupChildren{node: node, group: group}
}

// Node returns the container's layout node.
func (g *GroupChildren) Node() layout.NodeID { return g.node }

// Group returns the container widget.
func (g *GroupChildren) Group() platform.Group { return g.group }

// Len returns the number of children.
func (g *GroupChildren) Len() int { return len(g.pods) }

// Pods returns a copy of the element list.
func (g *GroupChildren) Pods() []Pod { return slices.Clone(g.pods) }

// Elements returns a cursor positioned before the first child.
func (g *GroupChildren) Elements() Elements {
	return &groupElements{children: g}
}

// ApplyLayout copies the computed geometry of the container and its
// children to the widgets. Unchanged values are not sent again.
func (g *GroupChildren) ApplyLayout(cx *Context) {
	if l, ok := cx.ComputedLayout(g.node); ok {
		border := [4]float32{l.Border.Top, l.Border.Right, l.Border.Bottom, l.Border.Left}
		if !g.sizeApplied || g.size != l.Size {
			g.group.SetSize(l.Size.Width, l.Size.Height)
			g.size = l.Size
		}
		if !g.sizeApplied || g.border != border {
			g.group.SetBorderWidth(border)
			g.border = border
		}
		g.sizeApplied = true
	}
	for i, pod := range g.pods {
		l, ok := cx.ComputedLayout(pod.Node)
		if !ok {
			continue
		}
		f := frame{x: l.Location.X, y: l.Location.Y, width: l.Size.Width, height: l.Size.Height, placed: true}
		if g.frames[i] != f {
			g.group.SetChildLayout(i, f.x, f.y, f.width, f.height)
			g.frames[i] = f
		}
	}
}

type groupElements struct {
	children *GroupChildren
	index    int
}

func (e *groupElements) Next(cx *Context) (PodMut, bool) {
	g := e.children
	if e.index >= len(g.pods) {
		return PodMut{}, false
	}
	i := e.index
	m := PodMut{ParentNode: g.node, Parent: g.group, Index: i, Pod: &g.pods[i]}
	m.replaced = func() { g.frames[i] = frame{} }
	e.index++
	return m, true
}

func (e *groupElements) Insert(cx *Context, pod Pod) {
	g := e.children
	cx.InsertLayoutChild(g.node, e.index, pod.Node)
	g.group.InsertChild(e.index, pod.Widget)
	g.pods = slices.Insert(g.pods, e.index, pod)
	g.frames = slices.Insert(g.frames, e.index, frame{})
	e.index++
}

func (e *groupElements) Remove(cx *Context) Pod {
	g := e.children
	if e.index >= len(g.pods) {
		errors.Invariant("core.Elements.Remove", "index %d out of range of %d children", e.index, len(g.pods))
	}
	pod := g.pods[e.index]
	g.group.RemoveChild(e.index)
	if removed := cx.RemoveLayoutChild(g.node, e.index); removed != pod.Node {
		errors.Invariant("core.Elements.Remove", "layout child %d is node %d, element has node %d", e.index, removed, pod.Node)
	}
	g.pods = slices.Delete(g.pods, e.index, e.index+1)
	g.frames = slices.Delete(g.frames, e.index, e.index+1)
	return pod
}

func (e *groupElements) Swap(cx *Context, offset int) {
	g := e.children
	a, b := e.index, e.index+offset
	if offset == 0 {
		return
	}
	if offset < 0 || b >= len(g.pods) {
		errors.Invariant("core.Elements.Swap", "cannot swap %d with %d of %d children", a, b, len(g.pods))
	}
	cx.ReplaceLayoutChild(g.node, a, g.pods[b].Node)
	cx.ReplaceLayoutChild(g.node, b, g.pods[a].Node)
	g.group.SwapChildren(a, b)
	g.pods[a], g.pods[b] = g.pods[b], g.pods[a]
	g.frames[a], g.frames[b] = frame{}, frame{}
}
