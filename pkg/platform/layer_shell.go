package platform

// Layer is the compositor stacking layer of a layer-shell window.
type Layer int

const (
	LayerBackground Layer = iota
	LayerBottom
	LayerTop
	LayerOverlay
)

// Anchor is a set of screen edges a layer-shell window sticks to.
type Anchor uint8

const (
	AnchorTop Anchor = 1 << iota
	AnchorRight
	AnchorBottom
	AnchorLeft
)

// Has reports whether all edges in edge are set.
func (a Anchor) Has(edge Anchor) bool {
	return a&edge == edge
}

// ExclusiveZone is the screen area other windows must avoid. Auto lets the
// compositor derive it from the window size.
type ExclusiveZone struct {
	Auto bool
	Size int
}

// KeyboardInput selects when a layer-shell window receives keyboard focus.
type KeyboardInput int

const (
	KeyboardNever KeyboardInput = iota
	KeyboardExclusive
	KeyboardOnDemand
)

// LayerShellWindow is a window managed through the layer-shell protocol.
type LayerShellWindow interface {
	Window

	SetLayer(layer Layer)
	SetAnchor(anchor Anchor)
	// Margins are ordered top, right, bottom, left.
	SetMargins(margins [4]int)
	SetExclusiveZone(zone ExclusiveZone)
	SetKeyboardInput(input KeyboardInput)
}
