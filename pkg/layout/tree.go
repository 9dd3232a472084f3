package layout

import (
	"fmt"
	"slices"
)

type node struct {
	style    Style
	measurer Measurer
	children []NodeID
	parent   NodeID

	layout   Layout
	computed bool
	cache    map[sizeKey]Size
}

// Tree is an in-process layout forest. It is not safe for concurrent use.
type Tree struct {
	nodes map[NodeID]*node
	next  NodeID
}

var _ Service = (*Tree)(nil)

// NewTree creates an empty layout forest.
func NewTree() *Tree {
	return &Tree{nodes: make(map[NodeID]*node)}
}

// Len returns the number of live nodes.
func (t *Tree) Len() int {
	return len(t.nodes)
}

func (t *Tree) get(id NodeID) (*node, error) {
	n, ok := t.nodes[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrInvalidNode, id)
	}
	return n, nil
}

func (t *Tree) alloc(n *node) NodeID {
	t.next++
	t.nodes[t.next] = n
	return t.next
}

// NewNode creates a container node with the given children. Children that
// already have a parent are detached from it first.
func (t *Tree) NewNode(style Style, children ...NodeID) (NodeID, error) {
	for _, child := range children {
		if _, err := t.get(child); err != nil {
			return 0, err
		}
	}
	id := t.alloc(&node{style: style})
	n := t.nodes[id]
	for _, child := range children {
		t.detach(child)
		t.nodes[child].parent = id
		n.children = append(n.children, child)
	}
	return id, nil
}

// NewLeaf creates a leaf node whose content is measured by measurer.
func (t *Tree) NewLeaf(style Style, measurer Measurer) (NodeID, error) {
	return t.alloc(&node{style: style, measurer: measurer}), nil
}

// InsertChild inserts child into parent's child list at index.
func (t *Tree) InsertChild(parent NodeID, index int, child NodeID) error {
	p, err := t.get(parent)
	if err != nil {
		return err
	}
	c, err := t.get(child)
	if err != nil {
		return err
	}
	if index < 0 || index > len(p.children) {
		return fmt.Errorf("%w: insert at %d of %d", ErrChildIndex, index, len(p.children))
	}
	t.detach(child)
	// detaching from the same parent may have shifted the list
	if index > len(p.children) {
		index = len(p.children)
	}
	p.children = slices.Insert(p.children, index, child)
	c.parent = parent
	return nil
}

// RemoveChildAt detaches the child at index and returns it. The child node
// stays alive.
func (t *Tree) RemoveChildAt(parent NodeID, index int) (NodeID, error) {
	p, err := t.get(parent)
	if err != nil {
		return 0, err
	}
	if index < 0 || index >= len(p.children) {
		return 0, fmt.Errorf("%w: remove at %d of %d", ErrChildIndex, index, len(p.children))
	}
	child := p.children[index]
	p.children = slices.Delete(p.children, index, index+1)
	t.nodes[child].parent = 0
	return child, nil
}

// ReplaceChild puts child at index and returns the detached previous child.
func (t *Tree) ReplaceChild(parent NodeID, index int, child NodeID) (NodeID, error) {
	p, err := t.get(parent)
	if err != nil {
		return 0, err
	}
	c, err := t.get(child)
	if err != nil {
		return 0, err
	}
	if index < 0 || index >= len(p.children) {
		return 0, fmt.Errorf("%w: replace at %d of %d", ErrChildIndex, index, len(p.children))
	}
	old := p.children[index]
	if old == child {
		return old, nil
	}
	if c.parent != 0 && c.parent != parent {
		t.detach(child)
	}
	p.children[index] = child
	c.parent = parent
	// the same child may also live at another index of this parent (swaps)
	if o, ok := t.nodes[old]; ok && !slices.Contains(p.children, old) {
		o.parent = 0
	}
	return old, nil
}

// RemoveNode deletes node, detaching it from its parent. Its children are
// orphaned, not deleted.
func (t *Tree) RemoveNode(id NodeID) error {
	n, err := t.get(id)
	if err != nil {
		return err
	}
	t.detach(id)
	for _, child := range n.children {
		if c, ok := t.nodes[child]; ok && c.parent == id {
			c.parent = 0
		}
	}
	delete(t.nodes, id)
	return nil
}

func (t *Tree) detach(id NodeID) {
	n := t.nodes[id]
	if n.parent == 0 {
		return
	}
	if p, ok := t.nodes[n.parent]; ok {
		if i := slices.Index(p.children, id); i >= 0 {
			p.children = slices.Delete(p.children, i, i+1)
		}
	}
	n.parent = 0
}

// SetStyle replaces the style of node.
func (t *Tree) SetStyle(id NodeID, style Style) error {
	n, err := t.get(id)
	if err != nil {
		return err
	}
	n.style = style
	return nil
}

// Style returns the style of node.
func (t *Tree) Style(id NodeID) (Style, error) {
	n, err := t.get(id)
	if err != nil {
		return Style{}, err
	}
	return n.style, nil
}

// SetMeasurer replaces the measurer of a leaf node.
func (t *Tree) SetMeasurer(id NodeID, measurer Measurer) error {
	n, err := t.get(id)
	if err != nil {
		return err
	}
	n.measurer = measurer
	return nil
}

// Children returns a copy of node's child list.
func (t *Tree) Children(id NodeID) ([]NodeID, error) {
	n, err := t.get(id)
	if err != nil {
		return nil, err
	}
	return slices.Clone(n.children), nil
}

// Parent returns the parent of node, or zero for roots.
func (t *Tree) Parent(id NodeID) (NodeID, error) {
	n, err := t.get(id)
	if err != nil {
		return 0, err
	}
	return n.parent, nil
}

// Layout returns the last computed layout of node.
func (t *Tree) Layout(id NodeID) (Layout, error) {
	n, err := t.get(id)
	if err != nil {
		return Layout{}, err
	}
	if !n.computed {
		return Layout{}, ErrNotComputed
	}
	return n.layout, nil
}

// Compute lays out the subtree rooted at node within the available space.
func (t *Tree) Compute(id NodeID, available Space) error {
	n, err := t.get(id)
	if err != nil {
		return err
	}
	t.clearCache(id)
	size := t.computeSize(id, Known{}, available, true)
	n.layout.Location = Point{}
	n.layout.Size = size
	n.computed = true
	return nil
}

func (t *Tree) clearCache(id NodeID) {
	n := t.nodes[id]
	n.cache = nil
	for _, child := range n.children {
		t.clearCache(child)
	}
}
