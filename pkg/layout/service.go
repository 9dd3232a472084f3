// Package layout provides the layout service used by the element tree.
//
// The element tree only talks to the Service interface: it creates nodes,
// keeps their child lists in sync with the widget tree and asks for computed
// geometry. Tree is the in-process implementation, a compact flexbox solver
// covering the subset of flexbox the built-in views use.
package layout

import "errors"

// NodeID identifies a node in a layout tree. The zero value is never a
// valid node.
type NodeID uint64

// Point is a position in logical pixels.
type Point struct {
	X float32
	Y float32
}

// Size is an extent in logical pixels.
type Size struct {
	Width  float32
	Height float32
}

// Layout is the computed geometry of a node. Location is relative to the
// parent's border box.
type Layout struct {
	Location    Point
	Size        Size
	Border      Edges
	Padding     Edges
	ContentSize Size
}

// SpaceKind tells how much room a node may take along one axis.
type SpaceKind int

const (
	SpaceDefinite SpaceKind = iota
	SpaceMinContent
	SpaceMaxContent
)

// AvailableSpace is the room offered to a node along one axis.
type AvailableSpace struct {
	Kind  SpaceKind
	Value float32
}

// Definite returns a fixed amount of available space.
func Definite(v float32) AvailableSpace {
	return AvailableSpace{Kind: SpaceDefinite, Value: v}
}

// MinContent asks nodes to take their smallest size that avoids overflow.
var MinContent = AvailableSpace{Kind: SpaceMinContent}

// MaxContent asks nodes to take their preferred unconstrained size.
var MaxContent = AvailableSpace{Kind: SpaceMaxContent}

// Space is the available space on both axes.
type Space struct {
	Width  AvailableSpace
	Height AvailableSpace
}

// DefiniteSpace returns a Space with fixed width and height.
func DefiniteSpace(width, height float32) Space {
	return Space{Width: Definite(width), Height: Definite(height)}
}

// Known holds the sizes already decided by the parent. A measurer must
// return them unchanged for the axes that are set.
type Known struct {
	Width     float32
	Height    float32
	HasWidth  bool
	HasHeight bool
}

// Measurer measures the content of a leaf node, such as a text run or an
// image. Sizes are content-box sizes.
type Measurer interface {
	Measure(known Known, available Space) Size
}

// MeasureFunc adapts a function to the Measurer interface.
type MeasureFunc func(known Known, available Space) Size

// Measure calls f.
func (f MeasureFunc) Measure(known Known, available Space) Size {
	return f(known, available)
}

var (
	// ErrInvalidNode is returned for ids that do not belong to the tree.
	ErrInvalidNode = errors.New("layout: invalid node")
	// ErrChildIndex is returned when a child index is out of range.
	ErrChildIndex = errors.New("layout: child index out of range")
	// ErrNotComputed is returned when a node has never been laid out.
	ErrNotComputed = errors.New("layout: layout not computed")
)

// Service is the contract the element tree relies on. All calls happen on
// the UI goroutine; implementations need no locking.
type Service interface {
	NewNode(style Style, children ...NodeID) (NodeID, error)
	NewLeaf(style Style, measurer Measurer) (NodeID, error)
	InsertChild(parent NodeID, index int, child NodeID) error
	RemoveChildAt(parent NodeID, index int) (NodeID, error)
	ReplaceChild(parent NodeID, index int, child NodeID) (NodeID, error)
	RemoveNode(node NodeID) error
	SetStyle(node NodeID, style Style) error
	SetMeasurer(node NodeID, measurer Measurer) error
	Children(node NodeID) ([]NodeID, error)
	Compute(node NodeID, available Space) error
	Layout(node NodeID) (Layout, error)
}
